package util

import (
	"regexp"
	"strings"
)

var nonLetterRe = regexp.MustCompile(`[^a-z ]`)

// FormatName turns a display name into its canonical formatted_name:
// lowercase, strip everything but letters and spaces, capitalize each word,
// then join words with underscores ("Solid State!" -> "Solid_State").
func FormatName(name string) string {
	cleaned := nonLetterRe.ReplaceAllString(strings.ToLower(name), "")
	words := strings.Fields(cleaned)
	for i, w := range words {
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, "_")
}
