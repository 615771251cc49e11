package blogpost

import (
	"fmt"
	"strings"

	urlkit "github.com/goliatone/go-urlkit"
)

const (
	permalinkGroup = "blog"
	permalinkRoute = "post"
)

// permalinkBuilder resolves post permalinks through a go-urlkit route
// manager rooted at the blog host, so the host + "/" + id shape lives in one
// route definition instead of ad-hoc string concatenation.
type permalinkBuilder struct {
	manager *urlkit.RouteManager
}

func newPermalinkBuilder(host string) *permalinkBuilder {
	manager := urlkit.NewRouteManager(&urlkit.Config{
		Groups: []urlkit.GroupConfig{
			{
				Name:    permalinkGroup,
				BaseURL: strings.TrimRight(strings.TrimSpace(host), "/"),
				Paths: map[string]string{
					permalinkRoute: "/:id",
				},
			},
		},
	})
	return &permalinkBuilder{manager: manager}
}

// Build returns the permanent URL for the given post id.
func (b *permalinkBuilder) Build(id string) (string, error) {
	if b == nil || b.manager == nil {
		return "", fmt.Errorf("blogpost: permalink route manager not configured")
	}

	builder := b.manager.Group(permalinkGroup).Builder(permalinkRoute)
	builder.WithParam("id", id)

	url, err := builder.Build()
	if err != nil {
		return "", fmt.Errorf("blogpost: build permalink: %w", err)
	}
	return url, nil
}
