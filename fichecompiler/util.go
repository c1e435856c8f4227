package fichecompiler

import "strings"

// cleanText replaces typographic characters that language models like to
// emit with equivalents that survive every font configuration.
func cleanText(text string) string {
	text = strings.ReplaceAll(text, "“", "\"")
	text = strings.ReplaceAll(text, "”", "\"")
	text = strings.ReplaceAll(text, "‘", "'")
	text = strings.ReplaceAll(text, "’", "'")
	text = strings.ReplaceAll(text, "…", "...")
	text = strings.ReplaceAll(text, " ", " ")
	return text
}
