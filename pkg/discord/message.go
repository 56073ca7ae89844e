package discord

import (
	"strings"
	"unicode/utf8"
)

// MaxMessageLength is Discord's limit for a message content, in characters.
const MaxMessageLength = 2000

// SplitMessage cuts content into chunks of at most limit runes, preferring
// line boundaries. Lines longer than limit are cut hard. Empty content gives
// no chunk.
func SplitMessage(content string, limit int) []string {
	if limit <= 0 {
		limit = MaxMessageLength
	}
	if content == "" {
		return nil
	}
	if utf8.RuneCountInString(content) <= limit {
		return []string{content}
	}

	var (
		chunks  []string
		current strings.Builder
		size    int
	)
	flush := func() {
		if size > 0 {
			chunks = append(chunks, current.String())
			current.Reset()
			size = 0
		}
	}
	for _, line := range strings.SplitAfter(content, "\n") {
		n := utf8.RuneCountInString(line)
		if size+n > limit {
			flush()
		}
		for n > limit {
			runes := []rune(line)
			chunks = append(chunks, string(runes[:limit]))
			line = string(runes[limit:])
			n -= limit
		}
		current.WriteString(line)
		size += n
	}
	flush()
	return chunks
}
