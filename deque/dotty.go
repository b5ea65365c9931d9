package deque

import (
	"fmt"
	"io"
	"strings"
)

// Dot writes the storage structure of d in Graphviz DOT format (for debugging
// purposes). The index map is drawn as a record with one field per slot, each
// allocated block as a box labeled with its live range.
func (d *Deque[T]) Dot(w io.Writer) error {
	l := d.Layout()
	var b strings.Builder
	b.WriteString("strict digraph {\n")
	b.WriteString("\tnode [fontname=Arial,fontsize=12];\n")
	b.WriteString("\trankdir=LR;\n")
	if l.MapLen == 0 {
		b.WriteString("\t\"map\" [label=\"∅\",shape=circle];\n")
	} else {
		fields := make([]string, l.MapLen)
		for i, s := range l.Slots {
			mark := ""
			switch {
			case i == l.StartSlot && i == l.FinishSlot:
				mark = " S/F"
			case i == l.StartSlot:
				mark = " S"
			case i == l.FinishSlot:
				mark = " F"
			}
			if !s.Allocated {
				mark = " ·"
			}
			fields[i] = fmt.Sprintf("<s%d> %d%s", i, i, mark)
		}
		fmt.Fprintf(&b, "\t\"map\" [shape=record,label=\"%s\"];\n", strings.Join(fields, "|"))
		var edges strings.Builder
		for i, s := range l.Slots {
			if !s.Allocated {
				continue
			}
			label := fmt.Sprintf("%d/%d\\n[%d,%d)", s.Live, l.BlockSize, s.First, s.First+s.Live)
			fmt.Fprintf(&b, "\t\"b%d\" [label=\"%s\"%s];\n", i, label, blockDotStyles(s, l.BlockSize))
			fmt.Fprintf(&edges, "\t\"map\":s%d -> \"b%d\";\n", i, i)
		}
		b.WriteString(edges.String())
	}
	b.WriteString("}\n")
	_, err := io.WriteString(w, b.String())
	if err != nil {
		tracer().Errorf("deque DOT: %s", err.Error())
	}
	return err
}

func blockDotStyles(s SlotInfo, bsize int) string {
	style := ",shape=box,style=filled"
	switch {
	case s.Live == 0:
		style += ",fillcolor=white"
	case s.Live == bsize:
		style += ",fillcolor=\"#4499FF\""
	default:
		style += ",fillcolor=\"#a3d7e4\""
	}
	return style
}
