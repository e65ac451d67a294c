package coordinator

import (
	"bytes"
	"errors"
	"testing"

	"simfinclient/internal/fetcher"
)

func TestPrinter_JSON(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf, FormatJSON)

	err := p.Print(fetcher.Result{Key: "simfin:ticker:AAPL", Value: []map[string]any{{"simId": 111052}}})
	if err != nil {
		t.Fatalf("Print() returned unexpected error: %v", err)
	}

	if want := "simfin:ticker:AAPL: [{\"simId\":111052}]\n"; buf.String() != want {
		t.Errorf("output = %q, want %q", buf.String(), want)
	}
}

func TestPrinter_YAML(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf, FormatYAML)

	err := p.Print(fetcher.Result{Key: "simfin:company:1", Value: map[string]any{"name": "ACME", "simId": 1}})
	if err != nil {
		t.Fatalf("Print() returned unexpected error: %v", err)
	}

	want := "simfin:company:1:\n  name: ACME\n  simId: 1\n"
	if buf.String() != want {
		t.Errorf("output = %q, want %q", buf.String(), want)
	}
}

func TestPrinter_Error(t *testing.T) {
	for _, format := range []string{FormatJSON, FormatYAML} {
		var buf bytes.Buffer
		p := NewPrinter(&buf, format)

		if err := p.Print(fetcher.Result{Key: "k", Error: errors.New("boom")}); err != nil {
			t.Fatalf("Print() returned unexpected error: %v", err)
		}
		if want := "k: ERROR - boom\n"; buf.String() != want {
			t.Errorf("%s output = %q, want %q", format, buf.String(), want)
		}
	}
}

func TestNewPrinter_UnknownFormatFallsBackToJSON(t *testing.T) {
	p := NewPrinter(&bytes.Buffer{}, "xml")
	if p.format != FormatJSON {
		t.Errorf("format = %q, want %q", p.format, FormatJSON)
	}
}
