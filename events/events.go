package events

import (
	"fmt"
	"strings"

	"gitbeam.commit.badge/events/topics"
	"gitbeam.commit.badge/models"
	"github.com/google/go-github/v63/github"
	"github.com/sirupsen/logrus"
)

// Extractor turns a user's event feed into commit records.
type Extractor struct {
	logger *logrus.Logger
	webURL string
	limit  int
}

func NewExtractor(logger *logrus.Logger, webURL string) Extractor {
	return Extractor{
		logger: logger,
		webURL: strings.TrimRight(webURL, "/"),
		limit:  models.MaxRecentCommits,
	}
}

// Extract walks the feed in the order given and collects commits from push
// events until the limit is reached, which may stop inside an event.
// Events it cannot decode are skipped. The result is never nil.
func (e Extractor) Extract(feed []*github.Event) []models.CommitRecord {
	useLogger := e.logger.WithField("methodName", "Extract")
	records := make([]models.CommitRecord, 0, e.limit)

	for _, event := range feed {
		if len(records) >= e.limit {
			break
		}
		if event == nil || event.GetType() != topics.PushEvent {
			continue
		}

		push, err := decodePush(event)
		if err != nil {
			useLogger.WithError(err).WithField("eventID", event.GetID()).Debug("skipping malformed push event")
			continue
		}

		repo := event.GetRepo().GetName()
		for _, commit := range push.Commits {
			if len(records) >= e.limit {
				break
			}
			if commit == nil {
				continue
			}
			records = append(records, models.CommitRecord{
				Message: commit.GetMessage(),
				URL:     e.commitURL(repo, commit.GetSHA()),
				Repo:    repo,
				Author:  commit.GetAuthor().GetName(),
			})
		}
	}

	return records
}

func (e Extractor) commitURL(repo, sha string) string {
	return fmt.Sprintf("%s/%s/commit/%s", e.webURL, repo, sha)
}

func decodePush(event *github.Event) (*github.PushEvent, error) {
	if event.RawPayload == nil {
		return nil, fmt.Errorf("event has no payload")
	}

	payload, err := event.ParsePayload()
	if err != nil {
		return nil, err
	}

	push, ok := payload.(*github.PushEvent)
	if !ok {
		return nil, fmt.Errorf("unexpected payload type %T", payload)
	}
	return push, nil
}
