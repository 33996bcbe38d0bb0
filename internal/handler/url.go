package handler

import "regexp"

var urlPattern = regexp.MustCompile(`(?i)https?://\S+`)

// ExtractURL returns the first http(s) URL found in text, or an empty
// string when none is present
func ExtractURL(text string) string {
	return urlPattern.FindString(text)
}
