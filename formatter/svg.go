package formatter

import (
	"html/template"

	"gitbeam.commit.badge/models"
)

const (
	cardWidth      = 600
	cardBaseHeight = 100
	cardRowHeight  = 65

	compactWidth      = 500
	compactBaseHeight = 50
	compactRowHeight  = 40
	compactLineHeight = 30
)

var cardTemplate = template.Must(template.New("card").Parse(`<svg width="{{.Width}}" height="{{.Height}}" viewBox="0 0 {{.Width}} {{.Height}}" xmlns="http://www.w3.org/2000/svg">
  <defs>
    <linearGradient id="bgGradient" x1="0" y1="0" x2="1" y2="1">
      <stop offset="0%" stop-color="#0f2027" />
      <stop offset="50%" stop-color="#203a43" />
      <stop offset="100%" stop-color="#2c5364" />
    </linearGradient>
    <filter id="shadow">
      <feDropShadow dx="0" dy="2" stdDeviation="2" flood-color="#000" flood-opacity="0.3" />
    </filter>
  </defs>

  <rect width="100%" height="100%" fill="url(#bgGradient)" rx="20" />

  <text x="50%" y="45" text-anchor="middle" class="title">🚀 {{.User}}'s Last 3 Commits</text>
{{range .Rows}}
  <g>
    <rect x="30" y="{{.BoxY}}" width="540" height="55" rx="12" fill="#1e293b" stroke="#38bdf8" stroke-width="1.5" />
    <text x="45" y="{{.TextY}}" class="commit">• {{.Message}}</text>
    <text x="45" y="{{.RepoY}}" class="repo">📁 {{.Repo}}</text>
  </g>
{{- end}}

  <style>
    .title { font: bold 22px 'Segoe UI', sans-serif; fill: #ffffff; filter: url(#shadow); }
    .commit { font: 14px monospace; fill: #93c5fd; }
    .repo { font: 12px monospace; fill: #38bdf8; }
  </style>
</svg>
`))

var compactTemplate = template.Must(template.New("compact").Parse(`<svg width="{{.Width}}" height="{{.Height}}" xmlns="http://www.w3.org/2000/svg">
  <style>
    .title { font: bold 18px sans-serif; fill: #fff; }
    .commit { font: 14px monospace; fill: #00FFAA; }
    rect { fill: #0d1117; }
  </style>
  <rect width="100%" height="100%"/>
  <text x="20" y="30" class="title">{{.User}}'s Last 3 GitHub Commits</text>
{{- range .Rows}}
  <text x="20" y="{{.TextY}}" class="commit">• {{.Message}}</text>
{{- end}}
</svg>
`))

// Card renders the gradient badge embedded by README links. Its height grows
// by one row per commit and an empty list still renders the title.
func Card(user string, commits []models.CommitRecord) ([]byte, error) {
	data := badge{
		User:   user,
		Width:  cardWidth,
		Height: cardBaseHeight + len(commits)*cardRowHeight,
		Rows:   make([]badgeRow, 0, len(commits)),
	}
	for i, commit := range commits {
		offset := i * cardRowHeight
		data.Rows = append(data.Rows, badgeRow{
			Message: truncate(commit.Message, MaxMessageLength),
			Repo:    commit.Repo,
			BoxY:    70 + offset,
			TextY:   92 + offset,
			RepoY:   110 + offset,
		})
	}
	return execute(cardTemplate, data)
}

// Compact renders the older single-colour badge with message lines only.
func Compact(user string, commits []models.CommitRecord) ([]byte, error) {
	data := badge{
		User:   user,
		Width:  compactWidth,
		Height: compactBaseHeight + len(commits)*compactRowHeight,
		Rows:   make([]badgeRow, 0, len(commits)),
	}
	for i, commit := range commits {
		data.Rows = append(data.Rows, badgeRow{
			Message: truncate(commit.Message, MaxMessageLength),
			Repo:    commit.Repo,
			TextY:   60 + i*compactLineHeight,
		})
	}
	return execute(compactTemplate, data)
}
