package diag

import (
	"bytes"
	"strings"
	"testing"
)

func TestDiagnostic_String(t *testing.T) {
	d := Semantic(3, 7, 4, "Máquina 'uno' ya fue definida")
	want := "Error Semántico en línea 3, columna 7: Máquina 'uno' ya fue definida"
	if got := d.String(); got != want {
		t.Errorf("String() = %#v, want %#v", got, want)
	}
}

func TestReporter_Report(t *testing.T) {
	src := "programa test;\ninicio\nfin."
	var b bytes.Buffer
	r := &Reporter{W: &b, NoColor: true}
	r.Report(Syntax(2, 1, 6, "se encontró inicio").WithHelp("se esperaba: ;"), src, "red.net")

	got := b.String()
	want := `error: se encontró inicio
  --> red.net:2:1
   |
 1 | programa test;
 2 | inicio
   |  ^^^^^^ error sintáctico
 3 | fin.
   |
   = ayuda: se esperaba: ;

`
	if got != want {
		t.Errorf("report = %#v, want %#v", got, want)
	}
}

func TestReporter_ReportAtEOF(t *testing.T) {
	src := "programa test;\ninicio"
	var b bytes.Buffer
	r := &Reporter{W: &b, NoColor: true}
	r.Report(Syntax(0, 0, 1, "se esperaba fin"), src, "red.net")

	got := b.String()
	for _, want := range []string{
		"--> red.net:0:0",
		"(al final del archivo)",
		" 2 | inicio",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("the report should contain %#v, got %#v", want, got)
		}
	}
}

func TestReporter_ReportAll(t *testing.T) {
	src := "programa test;\ninicio\nfin."
	tests := []struct {
		caption string
		ds      []*Diagnostic
		summary string
	}{
		{
			caption: "a single error",
			ds:      []*Diagnostic{Semantic(1, 10, 4, "algo")},
			summary: "error: no se pudo compilar debido a 1 error\n",
		},
		{
			caption: "several errors",
			ds: []*Diagnostic{
				Semantic(1, 10, 4, "algo"),
				Runtime(3, 1, 3, "otra cosa"),
			},
			summary: "error: no se pudo compilar debido a 2 errores\n",
		},
	}
	for _, tt := range tests {
		t.Run(tt.caption, func(t *testing.T) {
			var b bytes.Buffer
			r := &Reporter{W: &b, NoColor: true}
			r.ReportAll(tt.ds, src, "red.net")
			if !strings.HasSuffix(b.String(), tt.summary) {
				t.Errorf("the output should end with %#v, got %#v", tt.summary, b.String())
			}
		})
	}
}
