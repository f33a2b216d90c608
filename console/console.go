// Package console renders decoded instructions and register state as text.
package console

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"

	"github.com/sarchlab/mipsdec/emu"
	"github.com/sarchlab/mipsdec/insts"
)

// RegsPerRow is the number of name/value cells per register dump row.
const RegsPerRow = 4

// FormatBinary renders a word as eight space-separated groups of four bits,
// most significant bit first.
func FormatBinary(word uint32) string {
	var sb strings.Builder
	sb.Grow(39)
	for i := 31; i >= 0; i-- {
		sb.WriteByte(byte('0' + (word>>uint(i))&1))
		if i%4 == 0 && i != 0 {
			sb.WriteByte(' ')
		}
	}
	return sb.String()
}

// Printer writes the per-instruction report.
type Printer struct {
	out           io.Writer
	showRegisters bool

	taken    *color.Color
	notTaken *color.Color
	unknown  *color.Color
}

// PrinterOption is a functional option for configuring the Printer.
type PrinterOption func(*Printer)

// WithRegisters enables or disables the register dump after each
// instruction.
func WithRegisters(show bool) PrinterOption {
	return func(p *Printer) {
		p.showRegisters = show
	}
}

// WithColor forces color on or off. Without it, color follows the
// terminal detection of the color package.
func WithColor(enabled bool) PrinterOption {
	return func(p *Printer) {
		for _, c := range []*color.Color{p.taken, p.notTaken, p.unknown} {
			if enabled {
				c.EnableColor()
			} else {
				c.DisableColor()
			}
		}
	}
}

// NewPrinter creates a Printer writing to out. The register dump is on by
// default.
func NewPrinter(out io.Writer, opts ...PrinterOption) *Printer {
	p := &Printer{
		out:           out,
		showRegisters: true,
		taken:         color.New(color.FgGreen),
		notTaken:      color.New(color.FgYellow),
		unknown:       color.New(color.FgRed),
	}

	for _, opt := range opts {
		opt(p)
	}

	return p
}

// PrintStep writes the binary word, the decoded line and, if enabled, the
// register file.
func (p *Printer) PrintStep(word uint32, result emu.StepResult, regFile *emu.RegFile) error {
	if _, err := fmt.Fprintf(p.out, "Instruction: %s\n", FormatBinary(word)); err != nil {
		return err
	}

	if _, err := fmt.Fprintln(p.out, p.decorate(result)); err != nil {
		return err
	}

	if p.showRegisters {
		return p.PrintRegisters(regFile)
	}

	return nil
}

// PrintRegisters writes every register as "name: value", four per row.
func (p *Printer) PrintRegisters(regFile *emu.RegFile) error {
	var sb strings.Builder

	sb.WriteString("\nRegister state:\n")
	for i := 0; i < insts.NumRegs; i++ {
		fmt.Fprintf(&sb, "%s: %d\t", insts.RegName(uint8(i)), regFile.ReadReg(uint8(i)))
		if (i+1)%RegsPerRow == 0 {
			sb.WriteByte('\n')
		}
	}
	sb.WriteByte('\n')

	_, err := io.WriteString(p.out, sb.String())
	return err
}

func (p *Printer) decorate(result emu.StepResult) string {
	switch {
	case result.Unknown():
		return p.unknown.Sprint(result.Text)
	case result.Branch && result.Taken:
		return strings.TrimSuffix(result.Text, emu.BranchTaken) + p.taken.Sprint(emu.BranchTaken)
	case result.Branch:
		return strings.TrimSuffix(result.Text, emu.BranchNotTaken) + p.notTaken.Sprint(emu.BranchNotTaken)
	}
	return result.Text
}
