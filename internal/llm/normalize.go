package llm

import (
	"regexp"
	"strings"
)

var (
	fencePattern     = regexp.MustCompile("(?s)```(?:json)?\\s*(.*?)\\s*```")
	jsonArrayPattern = regexp.MustCompile("```json\\s*([\\s\\S]*?)\\s*```|(\\[[\\s\\S]*\\])")
)

// StripFences replaces every fenced code block with its contents and trims
// the result. The payload inside a fence is returned untouched.
func StripFences(content string) string {
	return strings.TrimSpace(fencePattern.ReplaceAllString(content, "${1}"))
}

// ExtractJSONArray finds the first ```json fenced block, or failing that the
// outermost [...] span, in free-form model output.
func ExtractJSONArray(content string) (string, bool) {
	m := jsonArrayPattern.FindStringSubmatch(content)
	if m == nil {
		return "", false
	}
	if m[1] != "" {
		return m[1], true
	}
	return m[2], m[2] != ""
}
