package page

import (
	"strings"
	"unicode"
)

// WordsPerMinute is the average adult silent reading speed.
const WordsPerMinute = 238

// ReadingTime estimates minutes to read content, rounded up. Tokens without
// a letter (numbers, symbols, markup) are not counted as words.
func ReadingTime(content string) int {
	words := 0
	for _, token := range strings.Fields(content) {
		if strings.IndexFunc(token, unicode.IsLetter) >= 0 {
			words++
		}
	}
	return (words + WordsPerMinute - 1) / WordsPerMinute
}
