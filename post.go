// Package blogpost extracts metadata from a single markdown blog post whose
// filename encodes a publish date and whose body starts with a front-matter
// block. The result is a comparable, serializable Post value object.
package blogpost

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io/fs"
	"path/filepath"
	"slices"
	"strings"
	"time"

	"github.com/goliatone/go-blogpost/internal/markdown"
)

const dateLayout = "2006-01-02"

// announcementTag is the only tag IsType ever checks for. See Post.IsType.
const announcementTag = "type: announcement"

// requiredKeys are the front-matter keys every post must declare. There is no
// defaulting: absence fails the load.
var requiredKeys = []string{"author_id", "id", "tags", "title"}

// postKeys is the fixed key order used by ToMap and MarshalJSON.
var postKeys = []string{"author_id", "date", "description", "id", "path", "permalink", "tags", "title"}

// Post is a single blog entry. It is immutable after Load and safe to copy;
// it shares no state with other posts.
type Post struct {
	// Date is the publish date derived from the filename, at UTC midnight.
	Date time.Time
	// Path is the source file path relative to the configured content root.
	Path string
	// AuthorID references the post author as declared in front matter.
	AuthorID string
	// Description is the first paragraph of the body with markdown links
	// rewritten to their label text.
	Description string
	// ID is the stable post identifier declared in front matter.
	ID string
	// Permalink is the externally resolvable URL for the post.
	Permalink string
	// Tags are the front-matter tags in declaration order.
	Tags []string
	// Title is the post title declared in front matter.
	Title string
}

// Load builds a Post from the file at path. The filename must begin with
// three dash-separated date segments (e.g. "2023-01-15-launch.md") and the
// file must carry a front-matter block declaring author_id, id, tags, and
// title. Failures surface as parse errors (bad filename, bad date, malformed
// front matter, unreadable file) or missing-field errors; see IsParseError
// and IsMissingFieldError. A Post is either fully valid or not returned at
// all.
func Load(ctx context.Context, cfg Config, path string) (*Post, error) {
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	default:
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	log := cfg.logger()

	name := filepath.Base(path)
	date, err := dateFromFilename(name)
	if err != nil {
		log.Warn("post load rejected", "file", name, "reason", err)
		return nil, parseError(err, fmt.Sprintf("post: filename %q does not encode a date", name))
	}

	rel, err := relativeTo(cfg.ContentRoot, path)
	if err != nil {
		return nil, parseError(err, fmt.Sprintf("post: %s is outside the content root", path))
	}
	rel = filepath.ToSlash(rel)

	data, err := fs.ReadFile(cfg.filesystem(), rel)
	if err != nil {
		log.Warn("post read failed", "path", rel, "error", err)
		return nil, parseError(err, fmt.Sprintf("post: read %s", rel))
	}

	meta, body, err := markdown.ParseFrontMatter(data)
	if err != nil {
		log.Warn("post front matter rejected", "path", rel, "error", err)
		return nil, parseError(err, fmt.Sprintf("post: front matter in %s", rel))
	}

	for _, key := range requiredKeys {
		if !meta.Has(key) {
			log.Warn("post front matter incomplete", "path", rel, "key", key)
			return nil, missingFieldError(key)
		}
	}

	id := meta.String("id")
	permalink, err := newPermalinkBuilder(cfg.BlogHost).Build(id)
	if err != nil {
		return nil, parseError(err, fmt.Sprintf("post: permalink for %s", id))
	}

	tags := meta.Strings("tags")
	if tags == nil {
		tags = []string{}
	}

	post := &Post{
		Date:        date,
		Path:        rel,
		AuthorID:    meta.String("author_id"),
		Description: markdown.StripLinks(markdown.FirstParagraph(string(body))),
		ID:          id,
		Permalink:   permalink,
		Tags:        tags,
		Title:       meta.String("title"),
	}

	log.Debug("post loaded", "path", post.Path, "id", post.ID, "date", post.Date.Format(dateLayout))
	return post, nil
}

// Compare orders posts by date, ascending. Posts published on the same day
// compare as equal no matter how the remaining fields differ; the comparator
// deliberately has date granularity only.
func (p *Post) Compare(other *Post) int {
	return p.Date.Compare(other.Date)
}

// Equal reports whether Compare(other) == 0. Equality is date-only: two
// distinct posts published on the same day are equal. This is the full
// contract, not an approximation of field equality.
func (p *Post) Equal(other *Post) bool {
	return p.Compare(other) == 0
}

// IsType reports whether the post carries the "type: announcement" tag.
//
// BUG: the name argument is accepted but ignored; the check is hardcoded to
// the announcement tag regardless of what is passed. Callers depend on the
// current behavior, so it is documented here rather than fixed.
func (p *Post) IsType(name string) bool {
	_ = name
	return slices.Contains(p.Tags, announcementTag)
}

// ToMap returns the post as a mapping with exactly the eight metadata keys:
// author_id, date, description, id, path, permalink, tags, title. The date
// stays a time.Time so callers control formatting.
func (p *Post) ToMap() map[string]any {
	return map[string]any{
		"author_id":   p.AuthorID,
		"date":        p.Date,
		"description": p.Description,
		"id":          p.ID,
		"path":        p.Path,
		"permalink":   p.Permalink,
		"tags":        append([]string(nil), p.Tags...),
		"title":       p.Title,
	}
}

// MarshalJSON emits the eight metadata keys in fixed order, with the date
// rendered as YYYY-MM-DD.
func (p *Post) MarshalJSON() ([]byte, error) {
	fields := p.ToMap()
	fields["date"] = p.Date.Format(dateLayout)

	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, key := range postKeys {
		if i > 0 {
			buf.WriteByte(',')
		}
		value, err := json.Marshal(fields[key])
		if err != nil {
			return nil, fmt.Errorf("blogpost: marshal %s: %w", key, err)
		}
		fmt.Fprintf(&buf, "%q:", key)
		buf.Write(value)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// SortByDate orders posts by ascending date, in place. Posts sharing a date
// keep their relative order.
func SortByDate(posts []*Post) {
	slices.SortStableFunc(posts, func(a, b *Post) int {
		return a.Compare(b)
	})
}

// dateFromFilename derives the publish date from the first three
// dash-separated segments of name, which must compose a valid YYYY-MM-DD.
func dateFromFilename(name string) (time.Time, error) {
	segments := strings.Split(name, "-")
	if len(segments) < 3 {
		return time.Time{}, fmt.Errorf("filename %q has %d dash-separated segments, need at least 3", name, len(segments))
	}

	date, err := time.Parse(dateLayout, strings.Join(segments[:3], "-"))
	if err != nil {
		return time.Time{}, err
	}
	return date, nil
}

// relativeTo mirrors how paths are stored: relative inputs are assumed to be
// rooted at the content root already, absolute inputs are relativized.
func relativeTo(root, path string) (string, error) {
	clean := filepath.Clean(path)
	if !filepath.IsAbs(clean) {
		return clean, nil
	}
	rel, err := filepath.Rel(root, clean)
	if err != nil {
		return "", err
	}
	return rel, nil
}
