package diag

import (
	"fmt"
	"io"
	"strings"

	"github.com/pterm/pterm"
)

// Reporter renders diagnostics against their source text. With NoColor
// set the output is plain text, which also keeps it stable in tests.
type Reporter struct {
	W       io.Writer
	NoColor bool
}

func NewReporter(w io.Writer) *Reporter {
	return &Reporter{W: w}
}

func (r *Reporter) red(s string) string {
	if r.NoColor {
		return s
	}
	return pterm.NewStyle(pterm.FgRed, pterm.Bold).Sprint(s)
}

func (r *Reporter) blue(s string) string {
	if r.NoColor {
		return s
	}
	return pterm.NewStyle(pterm.FgLightBlue, pterm.Bold).Sprint(s)
}

func (r *Reporter) bold(s string) string {
	if r.NoColor {
		return s
	}
	return pterm.NewStyle(pterm.Bold).Sprint(s)
}

func (r *Reporter) dim(s string) string {
	if r.NoColor {
		return s
	}
	return pterm.NewStyle(pterm.FgGray).Sprint(s)
}

// Report prints one diagnostic: a header, the location, the offending
// line between its neighbors, and a caret run under the bad span.
func (r *Reporter) Report(d *Diagnostic, source, filename string) {
	fmt.Fprintf(r.W, "%v%v %v\n", r.red("error"), r.bold(":"), r.bold(d.Message))
	fmt.Fprintf(r.W, "  %v %v:%v:%v\n", r.blue("-->"), filename, d.Line, d.Column)

	lines := strings.Split(source, "\n")
	if len(lines) > 0 && lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}

	switch {
	case d.Line == 0 && len(lines) > 0:
		r.reportAtEOF(d, lines)
	case d.Line > 0 && d.Line <= len(lines):
		r.reportAtLine(d, lines)
	}

	if d.Help != "" {
		fmt.Fprintf(r.W, "   %v %v: %v\n", r.blue("="), r.bold("ayuda"), d.Help)
	}
	fmt.Fprintln(r.W)
}

func (r *Reporter) reportAtLine(d *Diagnostic, lines []string) {
	idx := d.Line - 1
	width := numWidth(d.Line)
	gutter := strings.Repeat(" ", width)

	fmt.Fprintf(r.W, "%v %v\n", gutter, r.blue("|"))
	if idx > 0 {
		fmt.Fprintf(r.W, "%v %v %v\n", r.blue(pad(d.Line-1, width)), r.blue("|"), r.dim(lines[idx-1]))
	}
	fmt.Fprintf(r.W, "%v %v %v\n", r.blue(pad(d.Line, width)), r.blue("|"), lines[idx])

	carets := strings.Repeat("^", max(d.Length, 1))
	fmt.Fprintf(r.W, "%v %v %v%v %v\n",
		gutter, r.blue("|"),
		strings.Repeat(" ", d.Column), r.red(carets), r.red(d.Kind.label()))

	if idx+1 < len(lines) {
		fmt.Fprintf(r.W, "%v %v %v\n", r.blue(pad(d.Line+1, width)), r.blue("|"), r.dim(lines[idx+1]))
	}
	fmt.Fprintf(r.W, "%v %v\n", gutter, r.blue("|"))
}

// reportAtEOF points past the last line for errors at end of file.
func (r *Reporter) reportAtEOF(d *Diagnostic, lines []string) {
	last := len(lines)
	width := numWidth(last)
	gutter := strings.Repeat(" ", width)

	fmt.Fprintf(r.W, "%v %v\n", gutter, r.blue("|"))
	if last > 1 {
		fmt.Fprintf(r.W, "%v %v %v\n", r.blue(pad(last-1, width)), r.blue("|"), r.dim(lines[last-2]))
	}
	fmt.Fprintf(r.W, "%v %v %v\n", r.blue(pad(last, width)), r.blue("|"), lines[last-1])
	fmt.Fprintf(r.W, "%v %v %v%v %v (al final del archivo)\n",
		gutter, r.blue("|"),
		strings.Repeat(" ", len(lines[last-1])), r.red("^"), r.red(d.Kind.label()))
	fmt.Fprintf(r.W, "%v %v\n", gutter, r.blue("|"))
}

// ReportAll prints every diagnostic followed by a compilation summary.
func (r *Reporter) ReportAll(ds []*Diagnostic, source, filename string) {
	for _, d := range ds {
		r.Report(d, source, filename)
	}

	suffix := ""
	if len(ds) != 1 {
		suffix = "es"
	}
	fmt.Fprintf(r.W, "%v%v no se pudo compilar debido a %v error%v\n",
		r.red("error"), r.bold(":"), len(ds), suffix)
}

func numWidth(n int) int {
	w := len(fmt.Sprint(n))
	if w < 2 {
		return 2
	}
	return w
}

func pad(n, width int) string {
	return fmt.Sprintf("%*d", width, n)
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
