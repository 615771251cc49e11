package blogpost

import (
	"io/fs"
	"net/url"
	"os"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// Config carries the settings a Post needs at construction: where content
// lives on disk and which host permalinks point at. It replaces what would
// otherwise be process-wide globals so callers and tests can inject their
// own values.
type Config struct {
	// ContentRoot is the directory stored post paths are made relative to.
	ContentRoot string
	// BlogHost is the absolute base URL permalinks are built from,
	// e.g. "https://blog.example.com".
	BlogHost string
	// FS overrides the filesystem posts are read from. Defaults to
	// os.DirFS(ContentRoot).
	FS fs.FS
	// Logger receives load diagnostics. Defaults to a no-op logger.
	Logger Logger
}

// Validate ensures the configuration can produce well-formed posts.
func (c Config) Validate() error {
	return validation.ValidateStruct(&c,
		validation.Field(&c.ContentRoot, validation.Required, validation.By(notBlank("blogpost.config.content_root_required", "content root is required"))),
		validation.Field(&c.BlogHost, validation.Required, validation.By(absoluteURL)),
	)
}

func (c Config) filesystem() fs.FS {
	if c.FS != nil {
		return c.FS
	}
	return os.DirFS(c.ContentRoot)
}

func (c Config) logger() Logger {
	if c.Logger != nil {
		return c.Logger
	}
	return NoOpLogger()
}

func notBlank(code, message string) validation.RuleFunc {
	return func(value any) error {
		str, _ := value.(string)
		if strings.TrimSpace(str) == "" {
			return validation.NewError(code, message)
		}
		return nil
	}
}

func absoluteURL(value any) error {
	host, _ := value.(string)
	parsed, err := url.Parse(strings.TrimSpace(host))
	if err != nil || !parsed.IsAbs() || parsed.Host == "" {
		return validation.NewError("blogpost.config.blog_host_invalid", "blog host must be an absolute URL")
	}
	return nil
}
