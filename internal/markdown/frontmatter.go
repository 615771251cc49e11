package markdown

import (
	"bytes"
	"fmt"

	"github.com/adrg/frontmatter"
)

// FrontMatter holds the raw key/value mapping extracted from a document
// head. Values stay as the decoder produced them; accessors coerce on read.
// Keeping the raw map lets callers distinguish an absent key from a key with
// an empty value.
type FrontMatter struct {
	raw map[string]any
}

// ParseFrontMatter extracts metadata and the markdown body from the provided
// source bytes. The body is returned without the front-matter delimiters.
func ParseFrontMatter(source []byte) (FrontMatter, []byte, error) {
	raw := map[string]any{}

	body, err := frontmatter.Parse(bytes.NewReader(source), &raw)
	if err != nil {
		return FrontMatter{}, nil, fmt.Errorf("parse frontmatter: %w", err)
	}

	return FrontMatter{raw: raw}, body, nil
}

// Has reports whether key is present, regardless of its value.
func (fm FrontMatter) Has(key string) bool {
	_, ok := fm.raw[key]
	return ok
}

// String returns the value under key coerced to a string. Missing or nil
// values yield "".
func (fm FrontMatter) String(key string) string {
	value, ok := fm.raw[key]
	if !ok || value == nil {
		return ""
	}
	if str, ok := value.(string); ok {
		return str
	}
	return fmt.Sprint(value)
}

// Strings returns the value under key as a string slice, preserving the
// decoder's element order. Scalar values become a single-element slice.
func (fm FrontMatter) Strings(key string) []string {
	value, ok := fm.raw[key]
	if !ok || value == nil {
		return nil
	}

	switch items := value.(type) {
	case []string:
		return append([]string(nil), items...)
	case []any:
		out := make([]string, 0, len(items))
		for _, item := range items {
			if str, ok := item.(string); ok {
				out = append(out, str)
				continue
			}
			out = append(out, fmt.Sprint(item))
		}
		return out
	default:
		return []string{fm.String(key)}
	}
}
