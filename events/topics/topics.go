package topics

// GitHub event types as they appear in the "type" field of the events API.
const (
	PushEvent        = "PushEvent"
	CreateEvent      = "CreateEvent"
	DeleteEvent      = "DeleteEvent"
	PullRequestEvent = "PullRequestEvent"
	IssuesEvent      = "IssuesEvent"
	WatchEvent       = "WatchEvent"
	ForkEvent        = "ForkEvent"
)
