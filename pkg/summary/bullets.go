// Package summary normalizes generated summary text for display.
//
// Some generation methods emit their summary as a stringified list literal,
// e.g. `['First point', "Second point"]`. Those are turned into bullet items;
// anything that does not parse cleanly is shown verbatim. Parsing never fails
// with an error, it only opts out.
package summary

import "strings"

// Bullets attempts to read text as a list literal of quoted strings. On
// success it returns the cleaned items (leading bullet glyphs stripped) and
// true. On any malformation it returns nil and false, and the caller renders
// the raw text as-is.
func Bullets(text string) ([]string, bool) {
	s := strings.TrimSpace(text)
	if len(s) < 2 || s[0] != '[' || s[len(s)-1] != ']' {
		return nil, false
	}
	s = s[1 : len(s)-1]

	var items []string
	i := 0
	for {
		for i < len(s) && (s[i] == ' ' || s[i] == '\t' || s[i] == '\n') {
			i++
		}
		if i >= len(s) {
			break
		}
		quote := s[i]
		if quote != '\'' && quote != '"' {
			return nil, false
		}
		i++
		var b strings.Builder
		closed := false
		for i < len(s) {
			c := s[i]
			if c == '\\' && i+1 < len(s) {
				b.WriteByte(s[i+1])
				i += 2
				continue
			}
			if c == quote {
				closed = true
				i++
				break
			}
			b.WriteByte(c)
			i++
		}
		if !closed {
			return nil, false
		}
		items = append(items, clean(b.String()))

		for i < len(s) && (s[i] == ' ' || s[i] == '\t' || s[i] == '\n') {
			i++
		}
		if i < len(s) {
			if s[i] != ',' {
				return nil, false
			}
			i++
		}
	}

	if len(items) == 0 {
		return nil, false
	}
	return items, true
}

func clean(item string) string {
	item = strings.ReplaceAll(item, "•", "")
	item = strings.TrimSpace(item)
	item = strings.TrimPrefix(item, "- ")
	return strings.TrimSpace(item)
}
