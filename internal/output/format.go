package output

import "strings"

// OutputFormat specifies the report format.
type OutputFormat string

const (
	// FormatText outputs one line per failure.
	FormatText OutputFormat = "text"

	// FormatJSON outputs the report in JSON format.
	FormatJSON OutputFormat = "json"

	// FormatYAML outputs the report in YAML format.
	FormatYAML OutputFormat = "yaml"

	// FormatTable outputs failures as a table.
	FormatTable OutputFormat = "table"
)

// String returns the string representation of the output format.
func (f OutputFormat) String() string {
	return string(f)
}

// IsValid checks if the output format is valid.
func (f OutputFormat) IsValid() bool {
	switch f {
	case FormatText, FormatJSON, FormatYAML, FormatTable:
		return true
	default:
		return false
	}
}

// ParseOutputFormat parses a string into an OutputFormat.
// Returns FormatText if the string is empty or invalid.
func ParseOutputFormat(s string) OutputFormat {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "json":
		return FormatJSON
	case "yaml", "yml":
		return FormatYAML
	case "table":
		return FormatTable
	default:
		return FormatText
	}
}

// ValidFormats returns a slice of valid output format strings.
func ValidFormats() []string {
	return []string{"text", "json", "yaml", "table"}
}
