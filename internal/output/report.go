package output

import (
	"encoding/json"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/sedlib/sedvet/internal/sed"
)

// allGoodMessage is printed when no file failed.
const allGoodMessage = "Everything looks good"

// Report is the serialized form of a validation result. Failure paths are
// relative to Root.
type Report struct {
	Root         string        `json:"root" yaml:"root"`
	Subdirs      []string      `json:"subdirs" yaml:"subdirs"`
	FilesChecked int           `json:"filesChecked" yaml:"filesChecked"`
	OK           bool          `json:"ok" yaml:"ok"`
	Failures     []sed.Failure `json:"failures" yaml:"failures"`
}

// NewReport builds a Report from a validation result.
func NewReport(result *sed.Result) Report {
	failures := make([]sed.Failure, len(result.Failures))
	for i, f := range result.Failures {
		failures[i] = sed.Failure{Path: f.RelPath(result.Root), Reason: f.Reason}
	}
	return Report{
		Root:         result.Root,
		Subdirs:      result.Subdirs,
		FilesChecked: result.FilesChecked,
		OK:           result.OK(),
		Failures:     failures,
	}
}

// WriteReport writes result to w in the given format.
func WriteReport(w io.Writer, format OutputFormat, result *sed.Result) error {
	report := NewReport(result)

	switch format {
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(report)
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(report); err != nil {
			return fmt.Errorf("encoding yaml report: %w", err)
		}
		return enc.Close()
	case FormatTable:
		if report.OK {
			return writeLine(w, FormatCheckmark(allGoodMessage))
		}
		t := NewTable("FILE", "REASON")
		for _, f := range report.Failures {
			t.Row(f.Path, ReasonStyle(f.Reason).Render(f.Reason.String()))
		}
		return writeLine(w, t.String())
	default:
		if report.OK {
			return writeLine(w, FormatCheckmark(allGoodMessage))
		}
		for _, f := range report.Failures {
			if err := writeLine(w, FormatFailureLine(f.Path, f.Reason)); err != nil {
				return err
			}
		}
		return nil
	}
}

// FormatSummary renders the closing summary line for a result.
func FormatSummary(result *sed.Result) string {
	return StyleSummary.Render(fmt.Sprintf("Checked %d files", result.FilesChecked)) +
		StyleDim.Render(fmt.Sprintf(" (%d failures)", len(result.Failures)))
}

func writeLine(w io.Writer, s string) error {
	_, err := io.WriteString(w, s+"\n")
	return err
}
