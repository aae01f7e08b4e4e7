// Package testutil provides a fake GitHub events API for tests.
package testutil

import (
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"gitbeam.commit.badge/config"
	"github.com/sirupsen/logrus"
)

// PushFeed holds four commits over two push events, newest first.
const PushFeed = `[
  {"id":"1","type":"WatchEvent","repo":{"name":"octocat/watched"},"payload":{"action":"started"}},
  {"id":"2","type":"PushEvent","repo":{"name":"octocat/hello"},"payload":{"commits":[
    {"sha":"aaa","message":"first","author":{"name":"Octo Cat"}},
    {"sha":"bbb","message":"second","author":{"name":"Octo Cat"}}
  ]}},
  {"id":"3","type":"PushEvent","repo":{"name":"octocat/world"},"payload":{"commits":[
    {"sha":"ccc","message":"<script>alert(1)</script>","author":{"name":"Mona"}},
    {"sha":"ddd","message":"fourth","author":{"name":"Mona"}}
  ]}}
]`

// NoPushFeed has activity but nothing pushed.
const NoPushFeed = `[
  {"id":"1","type":"WatchEvent","repo":{"name":"octocat/watched"},"payload":{"action":"started"}},
  {"id":"2","type":"IssuesEvent","repo":{"name":"octocat/hello"},"payload":{"action":"opened"}}
]`

// GitHubServer answers GET /users/{user}/events/public from a fixed table.
type GitHubServer struct {
	*httptest.Server

	mu        sync.Mutex
	feeds     map[string]string
	responses map[string]cannedResponse
	requests  []*http.Request
}

type cannedResponse struct {
	status int
	body   string
}

func NewGitHubServer(t *testing.T, feeds map[string]string) *GitHubServer {
	t.Helper()

	gh := &GitHubServer{feeds: feeds, responses: make(map[string]cannedResponse)}
	gh.Server = httptest.NewServer(http.HandlerFunc(gh.handle))
	t.Cleanup(gh.Close)
	return gh
}

func (gh *GitHubServer) handle(w http.ResponseWriter, r *http.Request) {
	gh.mu.Lock()
	gh.requests = append(gh.requests, r.Clone(r.Context()))
	feed, ok := gh.feeds[r.URL.Path]
	canned, isCanned := gh.responses[r.URL.Path]
	gh.mu.Unlock()

	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("X-RateLimit-Limit", "60")
	w.Header().Set("X-RateLimit-Remaining", "59")
	w.Header().Set("X-RateLimit-Reset", "1700000000")

	if isCanned {
		w.WriteHeader(canned.status)
		_, _ = io.WriteString(w, canned.body)
		return
	}

	if !ok {
		w.WriteHeader(http.StatusNotFound)
		_, _ = io.WriteString(w, `{"message":"Not Found","documentation_url":"https://docs.github.com/rest"}`)
		return
	}
	_, _ = io.WriteString(w, feed)
}

// Respond makes path answer with status and body instead of a feed.
func (gh *GitHubServer) Respond(path string, status int, body string) {
	gh.mu.Lock()
	defer gh.mu.Unlock()
	gh.responses[path] = cannedResponse{status: status, body: body}
}

// Requests returns every request the server has seen.
func (gh *GitHubServer) Requests() []*http.Request {
	gh.mu.Lock()
	defer gh.mu.Unlock()
	return append([]*http.Request(nil), gh.requests...)
}

// EventsPath is the API path the fake serves for user.
func EventsPath(user string) string {
	return "/users/" + user + "/events/public"
}

// Secrets points the service at url instead of api.github.com.
func Secrets(url string) config.Secrets {
	return config.Secrets{
		Port:            "8080",
		GRPCPort:        "9090",
		GitHubAPIURL:    url,
		GitHubWebURL:    "https://github.com",
		GitHubUserAgent: "github-user-commits-widget",
		LogLevel:        "info",
	}
}

func Logger() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return logger
}
