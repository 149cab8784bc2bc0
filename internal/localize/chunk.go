package localize

import "regexp"

var lineBreaks = regexp.MustCompile(`(\r?\n)+`)

// Chunk splits text into segments of at most limit characters (counted by
// code point), preferring paragraph boundaries. Paragraphs are accumulated
// greedily and joined with a blank line; a single paragraph longer than limit
// is hard-split into fixed-size slices, which may cut mid-word. Empty input
// yields no chunks. limit must be > 0.
func Chunk(text string, limit int) []string {
	if text == "" {
		return nil
	}

	var out []string
	current := ""
	for _, para := range lineBreaks.Split(text, -1) {
		candidate := para
		if current != "" {
			candidate = current + "\n\n" + para
		}
		if len([]rune(candidate)) <= limit {
			current = candidate
			continue
		}
		if current != "" {
			out = append(out, current)
		}
		current = para
		if len([]rune(current)) > limit {
			out = append(out, hardSplit(current, limit)...)
			current = ""
		}
	}
	if current != "" {
		out = append(out, current)
	}
	return out
}

func hardSplit(s string, limit int) []string {
	runes := []rune(s)
	var out []string
	for len(runes) > limit {
		out = append(out, string(runes[:limit]))
		runes = runes[limit:]
	}
	if len(runes) > 0 {
		out = append(out, string(runes))
	}
	return out
}
