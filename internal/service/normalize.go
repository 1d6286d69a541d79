// internal/service/normalize.go
package service

import "strings"

// captionCount is the number of captions every campaign carries.
const captionCount = 3

// captionFiller pads caption sets that come back short of three entries.
const captionFiller = "🚀 Yeh opportunity miss mat karo! Join us today! 🎯"

// StripCodeFence removes a surrounding markdown code fence (``` or ```json)
// that the model may have wrapped around its reply.
func StripCodeFence(s string) string {
	s = strings.TrimSpace(s)
	if strings.HasPrefix(s, "```json") {
		s = s[len("```json"):]
	} else if strings.HasPrefix(s, "```") {
		s = s[len("```"):]
	}
	if strings.HasSuffix(s, "```") {
		s = s[:len(s)-len("```")]
	}
	return strings.TrimSpace(s)
}

// NormalizeCaptions drops blank entries, then pads or truncates the list to
// exactly three captions.
func NormalizeCaptions(captions []string) []string {
	out := make([]string, 0, captionCount)
	for _, c := range captions {
		if c = strings.TrimSpace(c); c != "" {
			out = append(out, c)
		}
	}
	for len(out) < captionCount {
		out = append(out, captionFiller)
	}
	return out[:captionCount]
}

// SplitCaptions turns a newline-separated model reply into a caption list,
// skipping blank lines.
func SplitCaptions(reply string) []string {
	lines := strings.Split(strings.TrimSpace(reply), "\n")
	out := make([]string, 0, len(lines))
	for _, l := range lines {
		if l = strings.TrimSpace(l); l != "" {
			out = append(out, l)
		}
	}
	return out
}
