package blogpost

import (
	"errors"
	"fmt"

	goerrors "github.com/goliatone/go-errors"
)

var (
	// ErrParse marks a malformed filename, an invalid date, an unreadable
	// file, or a front-matter block that could not be parsed.
	ErrParse = errors.New("blogpost: parse failed")
	// ErrMissingField marks a required front-matter key that is absent.
	ErrMissingField = errors.New("blogpost: missing front-matter field")
)

const (
	parseFailedCode  = "POST_PARSE_FAILED"
	missingFieldCode = "POST_MISSING_FIELD"
)

func parseError(err error, message string) error {
	cause := error(ErrParse)
	if err != nil {
		cause = errors.Join(ErrParse, err)
	}
	return goerrors.Wrap(cause, goerrors.CategoryValidation, message).
		WithTextCode(parseFailedCode)
}

func missingFieldError(key string) error {
	cause := fmt.Errorf("%w: %s", ErrMissingField, key)
	return goerrors.Wrap(cause, goerrors.CategoryValidation, "post: required front-matter key absent").
		WithTextCode(missingFieldCode)
}

// IsParseError reports whether err came from filename, date, file, or
// front-matter parsing.
func IsParseError(err error) bool {
	return errors.Is(err, ErrParse)
}

// IsMissingFieldError reports whether err was caused by a required
// front-matter key being absent.
func IsMissingFieldError(err error) bool {
	return errors.Is(err, ErrMissingField)
}
