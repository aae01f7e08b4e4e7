// Package formatter renders commit records for the HTTP and gRPC surfaces:
// a JSON-ready slice and two SVG badge themes.
package formatter

import (
	"bytes"
	"html/template"
	"strings"

	"gitbeam.commit.badge/models"
)

const (
	ContentTypeSVG = "image/svg+xml"
	CacheControl   = "s-maxage=600, stale-while-revalidate=300"

	// MaxMessageLength is measured in characters, not bytes.
	MaxMessageLength = 60
)

type Theme string

const (
	ThemeCard    Theme = "card"
	ThemeCompact Theme = "compact"
)

// ParseTheme falls back to ThemeCard for anything it does not recognise.
func ParseTheme(s string) Theme {
	switch Theme(strings.ToLower(strings.TrimSpace(s))) {
	case ThemeCompact:
		return ThemeCompact
	default:
		return ThemeCard
	}
}

// Records returns commits ready for JSON encoding; a nil slice becomes empty
// so the body is [] rather than null.
func Records(commits []models.CommitRecord) []models.CommitRecord {
	if commits == nil {
		return make([]models.CommitRecord, 0)
	}
	return commits
}

func Render(theme Theme, user string, commits []models.CommitRecord) ([]byte, error) {
	if theme == ThemeCompact {
		return Compact(user, commits)
	}
	return Card(user, commits)
}

type badgeRow struct {
	Message string
	Repo    string
	BoxY    int
	TextY   int
	RepoY   int
}

type badge struct {
	User   string
	Width  int
	Height int
	Rows   []badgeRow
}

func execute(tmpl *template.Template, data badge) ([]byte, error) {
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func truncate(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n])
}
