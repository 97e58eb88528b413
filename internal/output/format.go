package output

import "strings"

// Format specifies the template output format.
type Format string

const (
	// FormatYAML outputs templates as YAML.
	FormatYAML Format = "yaml"

	// FormatJSON outputs templates as CloudFormation JSON.
	FormatJSON Format = "json"

	// FormatDir outputs one template file per stack into a directory.
	FormatDir Format = "dir"
)

// String returns the string representation of the output format.
func (f Format) String() string {
	return string(f)
}

// IsValid checks if the output format is valid.
func (f Format) IsValid() bool {
	switch f {
	case FormatYAML, FormatJSON, FormatDir:
		return true
	default:
		return false
	}
}

// ParseFormat parses a string into a Format. Empty or unknown values fall
// back to YAML.
func ParseFormat(s string) Format {
	switch strings.ToLower(s) {
	case "yaml", "yml":
		return FormatYAML
	case "json":
		return FormatJSON
	case "dir", "directory":
		return FormatDir
	default:
		return FormatYAML
	}
}

// ValidFormats returns a slice of valid output format strings.
func ValidFormats() []string {
	return []string{"yaml", "json", "dir"}
}
