package models

// CommitRecord is one commit pulled out of a user's push events.
type CommitRecord struct {
	Message string `json:"message"`
	URL     string `json:"url"`
	Repo    string `json:"repo"`
	Author  string `json:"author"`
}

// MaxRecentCommits caps how many commits a single lookup returns.
const MaxRecentCommits = 3
