package markdown

import "strings"

// FirstParagraph returns the first blank-line-delimited chunk of body that
// contains non-whitespace, with surrounding whitespace trimmed. An empty
// body yields "".
func FirstParagraph(body string) string {
	for _, chunk := range strings.Split(body, "\n\n") {
		if trimmed := strings.TrimSpace(chunk); trimmed != "" {
			return trimmed
		}
	}
	return ""
}

// StripLinks rewrites markdown links "[label](url)" to their label text,
// leaving every other byte untouched. The grammar is deliberately exact:
// matching is leftmost, a label runs to the first "]" (labels do not nest),
// the "(" must follow the "]" immediately, and the URL runs to the matching
// ")" with nested parentheses tracked. Labels are stripped recursively so no
// link syntax survives in the output. Anything that does not complete the
// grammar passes through verbatim.
func StripLinks(s string) string {
	var out strings.Builder
	out.Grow(len(s))

	for i := 0; i < len(s); {
		open := strings.IndexByte(s[i:], '[')
		if open < 0 {
			out.WriteString(s[i:])
			break
		}
		open += i
		out.WriteString(s[i:open])

		label, rest, ok := splitLink(s[open:])
		if !ok {
			out.WriteByte('[')
			i = open + 1
			continue
		}

		out.WriteString(StripLinks(label))
		i = len(s) - len(rest)
	}

	return out.String()
}

// splitLink consumes a "[label](url)" construct at the start of s, returning
// the label, the remainder after the closing ")", and whether the construct
// was complete.
func splitLink(s string) (label, rest string, ok bool) {
	end := strings.IndexByte(s, ']')
	if end < 0 || end+1 >= len(s) || s[end+1] != '(' {
		return "", "", false
	}
	label = s[1:end]

	depth := 0
	for i := end + 1; i < len(s); i++ {
		switch s[i] {
		case '(':
			depth++
		case ')':
			depth--
			if depth == 0 {
				return label, s[i+1:], true
			}
		}
	}
	return "", "", false
}
