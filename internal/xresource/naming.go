package xresource

import (
	"regexp"
	"strings"
)

// nonAlphaNum matches every character that is not valid in a CloudFormation
// logical name.
var nonAlphaNum = regexp.MustCompile(`[^a-zA-Z0-9]`)

// LogicalName converts a compose resource name into a CloudFormation-safe
// logical name: non-alphanumeric characters are stripped and the first
// letter is upper-cased.
func LogicalName(name string) string {
	cleaned := nonAlphaNum.ReplaceAllString(name, "")
	if cleaned == "" {
		return cleaned
	}
	return strings.ToUpper(cleaned[:1]) + cleaned[1:]
}
