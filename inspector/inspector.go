// Package inspector is a terminal fragment viewer: it renders a decoded
// or encoded instr.Result's BinFrags/AsmFrags as two colour-coded rows,
// the terminal analogue of a syntax-highlighted bit layout, grounded in
// the teacher's debugger/tui.go panel-construction style.
package inspector

import (
	"fmt"
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"github.com/lookbusy1344/arm-emulator/instr"
)

// palette holds tview dynamic-color tag names (not tcell.Color values)
// cycled across fragments so adjacent bit-fields are visually distinct.
var palette = []string{
	"yellow",
	"aqua",
	"lime",
	"fuchsia",
	"orange",
	"white",
}

// Inspector is a single-screen tview application showing one
// instr.Result's fragment breakdown.
type Inspector struct {
	App *tview.Application

	Layout      *tview.Flex
	SummaryView *tview.TextView
	BitView     *tview.TextView
	FieldView   *tview.TextView
	AsmView     *tview.TextView

	result instr.Result
}

// New builds an Inspector for res but does not run it yet.
func New(res instr.Result) *Inspector {
	ins := &Inspector{
		App:    tview.NewApplication(),
		result: res,
	}
	ins.initializeViews()
	ins.buildLayout()
	ins.render()
	ins.setupKeyBindings()
	return ins
}

func (ins *Inspector) initializeViews() {
	ins.SummaryView = tview.NewTextView().SetDynamicColors(true)
	ins.SummaryView.SetBorder(true).SetTitle(" Instruction ")

	ins.BitView = tview.NewTextView().SetDynamicColors(true).SetWrap(false)
	ins.BitView.SetBorder(true).SetTitle(" Word (bit 31 -> 0) ")

	ins.FieldView = tview.NewTextView().SetDynamicColors(true).SetWrap(false)
	ins.FieldView.SetBorder(true).SetTitle(" Fields ")

	ins.AsmView = tview.NewTextView().SetDynamicColors(true).SetWrap(false)
	ins.AsmView.SetBorder(true).SetTitle(" Assembly ")
}

func (ins *Inspector) buildLayout() {
	ins.Layout = tview.NewFlex().
		SetDirection(tview.FlexRow).
		AddItem(ins.SummaryView, 3, 0, false).
		AddItem(ins.BitView, 3, 0, false).
		AddItem(ins.FieldView, 0, 1, false).
		AddItem(ins.AsmView, 3, 0, false)
}

func (ins *Inspector) setupKeyBindings() {
	ins.App.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		switch event.Key() {
		case tcell.KeyCtrlC, tcell.KeyEscape:
			ins.App.Stop()
			return nil
		}
		switch event.Rune() {
		case 'q':
			ins.App.Stop()
			return nil
		}
		return event
	})
}

// render paints the summary, bit, field and assembly views from the
// held Result. It is called once at construction; Results are
// immutable so there is nothing to refresh afterward.
func (ins *Inspector) render() {
	r := ins.result
	_, _ = fmt.Fprintf(ins.SummaryView, "hex=%s isa=%s fmt=%s\nasm: %s", r.Hex, r.Isa, r.Fmt, r.Asm)

	var bitLine strings.Builder
	var labelLine strings.Builder
	for i, f := range r.BinFrags {
		color := colorTag(i)
		fmt.Fprintf(&bitLine, "[%s]%s[white] ", color, f.Bits)
		width := len(f.Bits)
		label := pad(f.Field, width)
		fmt.Fprintf(&labelLine, "[%s]%s[white] ", color, label)
	}
	_, _ = fmt.Fprint(ins.BitView, bitLine.String())
	_, _ = fmt.Fprint(ins.FieldView, labelLine.String())

	var asmLine strings.Builder
	for i, f := range r.AsmFrags {
		color := colorTag(i)
		fmt.Fprintf(&asmLine, "[%s]%s[white] ", color, f.Assembly)
	}
	_, _ = fmt.Fprint(ins.AsmView, asmLine.String())
}

func colorTag(i int) string {
	return palette[i%len(palette)]
}

func pad(s string, width int) string {
	if len(s) >= width {
		return s[:width]
	}
	return s + strings.Repeat(" ", width-len(s))
}

// Run starts the tview event loop, blocking until the user quits
// (Ctrl-C, Esc, or 'q').
func (ins *Inspector) Run() error {
	return ins.App.SetRoot(ins.Layout, true).Run()
}
