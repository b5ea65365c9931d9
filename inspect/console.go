package inspect

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/npillmayer/collections/deque"
	"golang.org/x/term"
)

// ColorMode selects whether output is colored.
type ColorMode int

const (
	ColorAuto   ColorMode = iota // color if the writer is a terminal
	ColorAlways                  // always emit color escape sequences
	ColorNever                   // plain text
)

// Options control console rendering.
type Options struct {
	Color   ColorMode
	Width   int  // line width in fixed-width positions; 0 selects 65
	Details bool // list every allocated block on a line of its own
}

type cellKind int

const (
	unusedCell cellKind = iota
	emptyCell
	partialCell
	fullCell
	markCell
)

var cellGlyphs = map[cellKind]string{
	unusedCell:  "·",
	emptyCell:   "░",
	partialCell: "▒",
	fullCell:    "█",
}

func makeDefaultPalette() map[cellKind]*color.Color {
	return map[cellKind]*color.Color{
		unusedCell:  color.New(color.FgHiBlack),
		emptyCell:   color.New(color.FgYellow),
		partialCell: color.New(color.FgCyan),
		fullCell:    color.New(color.FgBlue),
		markCell:    color.New(color.FgRed, color.Bold),
	}
}

// Print renders l to stdout, with options derived from the terminal.
func Print(l deque.Layout) error {
	return Fprint(os.Stdout, l, OptionsFromTerminal())
}

// Fprint renders l to w.
func Fprint(w io.Writer, l deque.Layout, opts Options) error {
	palette := makeDefaultPalette()
	colored := useColor(w, opts.Color)
	for _, c := range palette {
		if colored {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}
	width := opts.Width
	if width <= 0 {
		width = 65
	}
	var b strings.Builder
	fmt.Fprintf(&b, "deque: len=%d blocks=%d block=%d map=%d\n", l.Len, l.Blocks, l.BlockSize, l.MapLen)
	if l.MapLen == 0 {
		b.WriteString("no storage\n")
		_, err := io.WriteString(w, b.String())
		return err
	}
	fmt.Fprintf(&b, "capacity: front=%d back=%d\n", l.FrontCapacity, l.BackCapacity)
	const indent = "  "
	perRow := max(width-len(indent), 8)
	for row := 0; row < l.MapLen; row += perRow {
		end := min(row+perRow, l.MapLen)
		b.WriteString(indent)
		for i := row; i < end; i++ {
			k := kindOf(l.Slots[i], l.BlockSize)
			b.WriteString(palette[k].Sprint(cellGlyphs[k]))
		}
		b.WriteString("\n")
		b.WriteString(indent)
		for i := row; i < end; i++ {
			b.WriteString(palette[markCell].Sprint(markOf(l, i)))
		}
		b.WriteString("\n")
	}
	if opts.Details {
		for i, s := range l.Slots {
			if !s.Allocated {
				continue
			}
			fmt.Fprintf(&b, "%sslot %4d  [%d,%d)  %d/%d", indent, i, s.First, s.First+s.Live,
				s.Live, l.BlockSize)
			if m := strings.TrimSpace(markOf(l, i)); m != "" {
				b.WriteString("  " + m)
			}
			b.WriteString("\n")
		}
	}
	_, err := io.WriteString(w, b.String())
	if err != nil {
		tracer().Errorf("inspect: %s", err.Error())
	}
	return err
}

func kindOf(s deque.SlotInfo, bsize int) cellKind {
	switch {
	case !s.Allocated:
		return unusedCell
	case s.Live == 0:
		return emptyCell
	case s.Live == bsize:
		return fullCell
	}
	return partialCell
}

func markOf(l deque.Layout, slot int) string {
	switch {
	case slot == l.StartSlot && slot == l.FinishSlot:
		return "*"
	case slot == l.StartSlot:
		return "S"
	case slot == l.FinishSlot:
		return "F"
	}
	return " "
}

func useColor(w io.Writer, mode ColorMode) bool {
	switch mode {
	case ColorAlways:
		return true
	case ColorNever:
		return false
	}
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// OptionsFromTerminal creates rendering options from the properties of
// stdout: if it is a terminal, the line width is taken from the terminal.
func OptionsFromTerminal() Options {
	opts := Options{Color: ColorAuto, Width: 65}
	fd := int(os.Stdout.Fd())
	if term.IsTerminal(fd) {
		if w, _, err := term.GetSize(fd); err == nil {
			switch {
			case w > 30:
				opts.Width = w - 5
			case w > 10:
				opts.Width = w
			default:
				opts.Width = 10
			}
		}
	}
	tracer().Infof("inspect: setting line width to %d", opts.Width)
	return opts
}
