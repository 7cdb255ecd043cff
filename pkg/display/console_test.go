package display

import (
	"bytes"
	"strings"
	"testing"
)

func TestConsolePrintAndLog(t *testing.T) {
	out := &bytes.Buffer{}
	errw := &bytes.Buffer{}
	d := NewWriterDisplay(out, errw, strings.NewReader(""))
	defer d.Close()

	d.Print("report line\n")
	d.Log("diagnostic")

	if out.String() != "report line\n" {
		t.Errorf("out = %q", out.String())
	}
	if errw.String() != "diagnostic\n" {
		t.Errorf("err = %q", errw.String())
	}
}

func TestConfirm(t *testing.T) {
	cases := []struct {
		input string
		want  bool
	}{
		{"y\n", true},
		{"Y\n", true},
		{"yes\n", true},
		{"n\n", false},
		{"whatever\n", false},
		{"\n", false},
		{"", false}, // EOF
	}
	for _, c := range cases {
		out := &bytes.Buffer{}
		d := NewWriterDisplay(out, &bytes.Buffer{}, strings.NewReader(c.input))
		if got := d.Confirm("Purge? [y/N] "); got != c.want {
			t.Errorf("Confirm with input %q = %v, want %v", c.input, got, c.want)
		}
		if !strings.Contains(out.String(), "Purge? [y/N] ") {
			t.Errorf("prompt not printed, got %q", out.String())
		}
	}
}
