package sanitize

import "regexp"

var tagPattern = regexp.MustCompile(`<[^>]*>`)

// StripTags removes anything that looks like an HTML tag. Stored text must
// never carry markup; applying it twice is a no-op.
func StripTags(s string) string {
	return tagPattern.ReplaceAllString(s, "")
}
