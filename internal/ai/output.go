package ai

import (
	"regexp"
	"strings"
)

var fenceRE = regexp.MustCompile("(?s)```(?:json)?\\s*\n?(.*?)\\s*```")

// ExtractJSON strips a markdown code fence from a completion, if present, so
// the remainder can be unmarshalled directly.
func ExtractJSON(output string) string {
	s := strings.TrimSpace(output)
	if strings.HasPrefix(s, "```") {
		if m := fenceRE.FindStringSubmatch(s); len(m) > 1 {
			s = strings.TrimSpace(m[1])
		}
	}
	return s
}

// ParseLines splits a line-per-suggestion completion, dropping blanks and
// stripping any bullet or numbering prefix the model added anyway.
func ParseLines(content string) []string {
	var suggestions []string
	for _, line := range strings.Split(content, "\n") {
		line = strings.TrimSpace(line)
		line = strings.TrimLeft(line, "-*•")
		line = strings.TrimLeft(line, "0123456789.) ")
		line = strings.TrimSpace(line)
		if line != "" {
			suggestions = append(suggestions, line)
		}
	}
	return suggestions
}
