package review

import (
	"regexp"
	"strings"
)

// langAliases maps file extensions to the fence tags models use for them.
var langAliases = map[string][]string{
	"py":   {"python", "py"},
	"js":   {"javascript", "js"},
	"ts":   {"typescript", "ts"},
	"java": {"java"},
	"c":    {"c"},
	"cpp":  {"cpp", "c++", "cxx"},
	"st":   {"st", "structured-text", "iecst"},
}

// leadInPhrases are conversational openers stripped from unfenced responses.
var leadInPhrases = []string{
	"here is", "here's", "certainly", "sure,", "of course",
	"i've", "below is", "the following", "as requested", "the fixed",
}

var (
	genericFenceRe = regexp.MustCompile("(?s)```\n?(.*?)\n?```")
	fenceTagRe     = regexp.MustCompile("```\\w*")
)

// ExtractCode pulls source code out of a model response that should contain
// only code. Language-tagged fences are tried first (exact tag, then
// aliases), then a generic fence, then lead-in stripping of unfenced text.
// The result can be empty; callers fall back to their original input when it
// is implausibly short.
func ExtractCode(response, fileExt string) string {
	aliases, ok := langAliases[fileExt]
	if !ok {
		aliases = []string{fileExt}
	}

	for _, alias := range aliases {
		patterns := []string{
			"(?is)```" + regexp.QuoteMeta(alias) + "\n(.*?)\n```",
			"(?is)```" + regexp.QuoteMeta(alias) + "\r\n(.*?)\r\n```",
			"(?is)```" + regexp.QuoteMeta(alias) + "(.*?)```",
		}
		for _, p := range patterns {
			if m := regexp.MustCompile(p).FindStringSubmatch(response); m != nil {
				return strings.TrimSpace(m[1])
			}
		}
	}

	if m := genericFenceRe.FindStringSubmatch(response); m != nil {
		code := strings.TrimSpace(m[1])
		lines := strings.Split(code, "\n")
		if len(lines) > 0 && isLangTag(lines[0]) {
			code = strings.TrimSpace(strings.Join(lines[1:], "\n"))
		}
		return code
	}

	// No fences at all: drop conversational lead-ins and stray tags.
	var kept []string
	for _, line := range strings.Split(response, "\n") {
		stripped := strings.ToLower(strings.TrimSpace(line))
		if isLangTag(stripped) || hasLeadIn(stripped) {
			continue
		}
		kept = append(kept, line)
	}
	result := strings.TrimSpace(strings.Join(kept, "\n"))
	result = fenceTagRe.ReplaceAllString(result, "")
	return strings.TrimSpace(result)
}

func isLangTag(s string) bool {
	s = strings.ToLower(strings.TrimSpace(s))
	for _, aliases := range langAliases {
		for _, a := range aliases {
			if s == a {
				return true
			}
		}
	}
	return false
}

func hasLeadIn(stripped string) bool {
	for _, p := range leadInPhrases {
		if strings.HasPrefix(stripped, p) {
			return true
		}
	}
	return false
}
