// Package workitem extracts work-item numbers from branch names such as
// "task/123-add-login" or "bug/0042".
package workitem

import (
	"regexp"
	"strings"
	"sync"
)

// prefixes are the branch prefixes that carry a work-item number
var prefixes = []string{"task", "pbi", "bug", "feature", "feat"}

var pattern = sync.OnceValue(func() *regexp.Regexp {
	return regexp.MustCompile(`^(?:` + strings.Join(prefixes, "|") + `)/([0-9]+)(?s:.*)$`)
})

// Pattern returns the compiled branch pattern. It is compiled on first use and
// shared read-only afterwards.
func Pattern() *regexp.Regexp {
	return pattern()
}

// Extract returns the digit run that follows the prefix and slash, exactly as written
func Extract(branch string) (string, bool) {
	return ExtractWith(Pattern(), branch)
}

// ExtractWith is Extract with an explicit pattern whose first group is the number
func ExtractWith(re *regexp.Regexp, branch string) (string, bool) {
	if re == nil {
		return "", false
	}
	match := re.FindStringSubmatch(branch)
	if len(match) < 2 || match[1] == "" {
		return "", false
	}
	return match[1], true
}

// Reference returns "#<digits>" for a matching branch and "" otherwise
func Reference(branch string) string {
	digits, ok := Extract(branch)
	if !ok {
		return ""
	}
	return "#" + digits
}
