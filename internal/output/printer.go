package output

import (
	"fmt"
	"io"

	"github.com/fatih/color"
)

// Printer writes the CLI's progress and summary output. App lines are bold,
// detail lines dimmed, verdict lines green or red.
type Printer struct {
	out     io.Writer
	app     *color.Color
	detail  *color.Color
	passFmt *color.Color
	failFmt *color.Color
}

func NewPrinter(out io.Writer) *Printer {
	if out == nil {
		out = io.Discard
	}
	return &Printer{
		out:     out,
		app:     color.New(color.Bold),
		detail:  color.New(color.Faint),
		passFmt: color.New(color.FgGreen),
		failFmt: color.New(color.FgRed),
	}
}

// App writes a bold application line.
func (p *Printer) App(text string) error {
	_, err := p.app.Fprintln(p.out, text)
	return err
}

func (p *Printer) Appf(format string, args ...any) error {
	return p.App(fmt.Sprintf(format, args...))
}

// Detail writes a dimmed secondary line.
func (p *Printer) Detail(text string) error {
	_, err := p.detail.Fprintln(p.out, text)
	return err
}

func (p *Printer) Detailf(format string, args ...any) error {
	return p.Detail(fmt.Sprintf(format, args...))
}

// Pass writes a green verdict line.
func (p *Printer) Pass(text string) error {
	_, err := p.passFmt.Fprintln(p.out, text)
	return err
}

func (p *Printer) Passf(format string, args ...any) error {
	return p.Pass(fmt.Sprintf(format, args...))
}

// Fail writes a red verdict line.
func (p *Printer) Fail(text string) error {
	_, err := p.failFmt.Fprintln(p.out, text)
	return err
}

func (p *Printer) Failf(format string, args ...any) error {
	return p.Fail(fmt.Sprintf(format, args...))
}
