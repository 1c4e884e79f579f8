package commands

import (
	"encoding/json"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/aaustin-1965/app-ip-address/internal/pretty"
)

const (
	outputTable = "table"
	outputJSON  = "json"
	outputYAML  = "yaml"
)

func validateOutput(format string) error {
	switch format {
	case outputTable, outputJSON, outputYAML:
		return nil
	default:
		return fmt.Errorf("unknown output format %q", format)
	}
}

// result is one line of CLI output. Absent addresses stay nil so they encode
// as null, matching the HTTP API.
type result struct {
	Input string  `json:"input" yaml:"input"`
	IPv4  *string `json:"ipv4" yaml:"ipv4"`
	IPv6  *string `json:"ipv6" yaml:"ipv6"`
	Error string  `json:"error,omitempty" yaml:"error,omitempty"`
}

func (r result) failed() bool {
	return r.Error != ""
}

func countFailed(results []result) int {
	n := 0
	for _, r := range results {
		if r.failed() {
			n++
		}
	}
	return n
}

func writeResults(w io.Writer, format, title string, results []result) error {
	switch format {
	case outputJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(results)
	case outputYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(results); err != nil {
			return err
		}
		return enc.Close()
	}

	rows := make(pretty.Rows, 0, len(results))
	for _, r := range results {
		rows = append(rows, []interface{}{r.Input, deref(r.IPv4), deref(r.IPv6), r.Error})
	}
	pretty.Table{
		Title:  title,
		Header: pretty.Header{"input", "ipv4", "ipv6", "error"},
		Rows:   rows,
	}.Render(w)
	return nil
}

func deref(s *string) string {
	if s == nil {
		return "-"
	}
	return *s
}
