// Package report renders a probe run as JSON.
package report

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/vertti/verify-setup/pkg/probe"
	"github.com/vertti/verify-setup/pkg/version"
)

// Report is the JSON document written by --json.
type Report struct {
	Title  string  `json:"title"`
	Passed bool    `json:"passed"`
	Probes []Probe `json:"probes"`
}

// Probe is one probe's entry in a Report.
type Probe struct {
	Name    string `json:"name"`
	Command string `json:"command"`
	Passed  bool   `json:"passed"`
	Output  string `json:"output"`
	Version string `json:"version,omitempty"`
	Error   string `json:"error,omitempty"`
}

// Build pairs specs with the summary's results. Both are in probe order.
func Build(title string, specs []probe.Spec, summary probe.Summary) (Report, error) {
	if len(specs) != len(summary.Results) {
		return Report{}, fmt.Errorf("have %d results for %d probes", len(summary.Results), len(specs))
	}

	r := Report{Title: title, Passed: summary.Passed(), Probes: make([]Probe, len(specs))}
	for i, res := range summary.Results {
		p := Probe{
			Name:    res.Name,
			Command: specs[i].Command,
			Passed:  res.OK(),
			Output:  res.Output,
		}
		if res.OK() {
			p.Version = version.ExtractString(res.Output)
		}
		if res.Err != nil {
			p.Error = res.Err.Error()
		}
		r.Probes[i] = p
	}
	return r, nil
}

// Write encodes r as indented JSON followed by a newline.
func Write(w io.Writer, r Report) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	if err := enc.Encode(r); err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}
	return nil
}
