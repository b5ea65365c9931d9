package inspect

import (
	"bytes"
	"strings"
	"testing"

	"github.com/npillmayer/collections/deque"
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/require"
)

type wide [8]int64

func layoutOf(t *testing.T, n int) deque.Layout {
	d, err := deque.FromSlice(deque.Config[wide]{}, make([]wide, n))
	require.Nil(t, err)
	return d.Layout()
}

func TestFprintPlain(t *testing.T) {
	var buf bytes.Buffer
	err := Fprint(&buf, layoutOf(t, 40), Options{Color: ColorNever})
	require.Nil(t, err)
	want := "deque: len=40 blocks=3 block=16 map=8\n" +
		"capacity: front=32 back=56\n" +
		"  ··██▒···\n" +
		"    S F   \n"
	require.Equal(t, want, buf.String())
}

func TestFprintDetails(t *testing.T) {
	var buf bytes.Buffer
	err := Fprint(&buf, layoutOf(t, 40), Options{Color: ColorNever, Details: true})
	require.Nil(t, err)
	out := buf.String()
	require.Contains(t, out, "  slot    2  [0,16)  16/16  S\n")
	require.Contains(t, out, "  slot    3  [0,16)  16/16\n")
	require.Contains(t, out, "  slot    4  [0,8)  8/16  F\n")
}

func TestFprintWrapsRows(t *testing.T) {
	var buf bytes.Buffer
	l := layoutOf(t, 1000)
	require.Equal(t, 65, l.MapLen)
	err := Fprint(&buf, l, Options{Color: ColorNever, Width: 10})
	require.Nil(t, err)
	lines := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
	require.Len(t, lines, 2+2*9)
}

func TestFprintEmptyAndColored(t *testing.T) {
	var buf bytes.Buffer
	var d deque.Deque[wide]
	require.Nil(t, Fprint(&buf, d.Layout(), Options{}))
	require.Equal(t, "deque: len=0 blocks=0 block=16 map=0\nno storage\n", buf.String())

	buf.Reset()
	require.Nil(t, Fprint(&buf, layoutOf(t, 17), Options{Color: ColorAlways}))
	require.Contains(t, buf.String(), "\x1b[")
	buf.Reset()
	require.Nil(t, Fprint(&buf, layoutOf(t, 17), Options{Color: ColorAuto}))
	require.NotContains(t, buf.String(), "\x1b[")
}

func TestOptionsFromTerminal(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New(t)
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelInfo)
	//
	opts := OptionsFromTerminal()
	require.True(t, opts.Width >= 10)
	require.Equal(t, ColorAuto, opts.Color)
}
