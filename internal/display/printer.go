package display

import (
	"fmt"
	"io"

	"github.com/fatih/color"
)

// Printer writes styled output to the console
type Printer struct {
	out    io.Writer
	styles map[Kind]*color.Color

	banner  *color.Color
	info    *color.Color
	success *color.Color
	notice  *color.Color
	warn    *color.Color
	failure *color.Color
	muted   *color.Color
}

// NewPrinter creates a printer writing to out.
// When colored is false no escape sequences are emitted, whatever the terminal.
func NewPrinter(out io.Writer, colored bool) *Printer {
	p := &Printer{
		out: out,
		styles: map[Kind]*color.Color{
			KindBorder:     color.New(color.FgBlue),
			KindHeader:     color.New(color.FgBlue, color.Bold),
			KindAddress:    color.New(color.FgGreen),
			KindPrivateKey: color.New(color.FgRed),
			KindPublicKey:  color.New(color.FgCyan),
			KindMnemonic:   color.New(color.FgMagenta),
			KindBlank:      color.New(color.Reset),
		},
		banner:  color.New(color.FgCyan, color.Bold),
		info:    color.New(color.FgCyan),
		success: color.New(color.FgHiGreen),
		notice:  color.New(color.FgGreen),
		warn:    color.New(color.FgYellow, color.Bold),
		failure: color.New(color.FgRed),
		muted:   color.New(color.FgHiBlack),
	}

	all := []*color.Color{p.banner, p.info, p.success, p.notice, p.warn, p.failure, p.muted}
	for _, c := range p.styles {
		all = append(all, c)
	}
	for _, c := range all {
		if colored {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}
	return p
}

// Box prints the lines of a rendered box
func (p *Printer) Box(lines []Line) {
	for _, l := range lines {
		if l.Kind == KindBlank || l.Text == "" {
			fmt.Fprintln(p.out)
			continue
		}
		fmt.Fprintln(p.out, p.styles[l.Kind].Sprint(l.Text))
	}
}

// Banner prints the application banner
func (p *Printer) Banner() {
	fmt.Fprintln(p.out, p.banner.Sprint(banner))
}

// Prompt prints s without a trailing newline
func (p *Printer) Prompt(s string) {
	fmt.Fprint(p.out, p.warn.Sprint(s))
}

// Info prints an informational line
func (p *Printer) Info(format string, args ...any) {
	p.println(p.info, format, args...)
}

// Success prints a success line
func (p *Printer) Success(format string, args ...any) {
	p.println(p.success, format, args...)
}

// Notice prints a secondary success line
func (p *Printer) Notice(format string, args ...any) {
	p.println(p.notice, format, args...)
}

// Warn prints a highlighted warning line
func (p *Printer) Warn(format string, args ...any) {
	p.println(p.warn, format, args...)
}

// Error prints an error line
func (p *Printer) Error(format string, args ...any) {
	p.println(p.failure, format, args...)
}

// Plain prints s as is, used for QR codes
func (p *Printer) Plain(s string) {
	fmt.Fprint(p.out, s)
}

func (p *Printer) println(c *color.Color, format string, args ...any) {
	fmt.Fprintln(p.out, c.Sprintf(format, args...))
}
