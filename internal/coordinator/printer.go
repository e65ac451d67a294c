package coordinator

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"

	"simfinclient/internal/fetcher"
)

// Output formats understood by Printer.
const (
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// Printer writes fetch results to w. It is not safe for concurrent use;
// the coordinator calls it from one goroutine at a time.
type Printer struct {
	w      io.Writer
	format string
}

// NewPrinter returns a printer for format. Unknown formats fall back to JSON.
func NewPrinter(w io.Writer, format string) *Printer {
	if format != FormatYAML {
		format = FormatJSON
	}
	return &Printer{w: w, format: format}
}

// Print writes one result.
func (p *Printer) Print(r fetcher.Result) error {
	if r.Error != nil {
		_, err := fmt.Fprintf(p.w, "%s: ERROR - %v\n", r.Key, r.Error)
		return err
	}

	switch p.format {
	case FormatYAML:
		return p.printYAML(r)
	default:
		return p.printJSON(r)
	}
}

func (p *Printer) printJSON(r fetcher.Result) error {
	b, err := json.Marshal(r.Value)
	if err != nil {
		return fmt.Errorf("failed to encode %s: %w", r.Key, err)
	}
	_, err = fmt.Fprintf(p.w, "%s: %s\n", r.Key, b)
	return err
}

func (p *Printer) printYAML(r fetcher.Result) error {
	b, err := yaml.Marshal(r.Value)
	if err != nil {
		return fmt.Errorf("failed to encode %s: %w", r.Key, err)
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "%s:\n", r.Key)
	for _, line := range strings.Split(strings.TrimRight(string(b), "\n"), "\n") {
		sb.WriteString("  ")
		sb.WriteString(line)
		sb.WriteByte('\n')
	}
	_, err = io.WriteString(p.w, sb.String())
	return err
}
