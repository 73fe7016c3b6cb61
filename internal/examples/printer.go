package examples

import (
	"fmt"
	"io"

	"github.com/msto63/unitx/pkg/core/config"
)

// Printer writes floating-point quantities in a fixed notation
type Printer struct {
	w    io.Writer
	verb string
	prec int
}

// NewPrinter creates a printer for w from the output configuration
func NewPrinter(w io.Writer, out config.OutputConfig) *Printer {
	verb := out.Notation
	if verb == "" {
		verb = "g"
	}
	prec := out.Precision
	if prec <= 0 {
		prec = 6
	}
	return &Printer{w: w, verb: verb, prec: prec}
}

// Q formats a floating-point quantity or value, e.g. "31.2928 m/s"
func (p *Printer) Q(q fmt.Formatter) string {
	return fmt.Sprintf("%.*"+p.verb, p.prec, q)
}

// QP formats q with an explicit precision
func (p *Printer) QP(prec int, q fmt.Formatter) string {
	return fmt.Sprintf("%.*"+p.verb, prec, q)
}

// F formats a plain float in the configured notation
func (p *Printer) F(v float64) string {
	return fmt.Sprintf("%.*"+p.verb, p.prec, v)
}

// Printf writes a formatted line fragment
func (p *Printer) Printf(format string, args ...interface{}) {
	fmt.Fprintf(p.w, format, args...)
}

// Println writes its arguments followed by a newline
func (p *Printer) Println(args ...interface{}) {
	fmt.Fprintln(p.w, args...)
}
