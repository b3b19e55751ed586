package recognizer

import "strings"

// Normalize prepares raw text for matching: lowercase, trim, underscores to
// spaces (telegram commands use them) and one leading slash removed.
func Normalize(text string) string {
	s := strings.ToLower(text)
	s = strings.TrimSpace(s)
	s = strings.ReplaceAll(s, "_", " ")
	return strings.TrimPrefix(s, "/")
}

// splitParams splits the remainder of a message into params
func splitParams(rest string) []string {
	return strings.Split(strings.TrimSpace(rest), " ")
}
