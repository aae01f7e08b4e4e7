package core

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"gitbeam.commit.badge/config"
	"gitbeam.commit.badge/events"
	"gitbeam.commit.badge/metrics"
	"gitbeam.commit.badge/models"
	"github.com/google/go-github/v63/github"
	"github.com/sirupsen/logrus"
)

var (
	ErrFetchEvents = errors.New("failed to fetch github events")
)

// UpstreamError is a non-success answer from GitHub. StatusCode is passed
// through to callers that can surface it.
type UpstreamError struct {
	StatusCode int
	Err        error
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("github responded with status %d: %v", e.StatusCode, e.Err)
}

func (e *UpstreamError) Unwrap() error {
	return e.Err
}

type GitBeamService struct {
	githubClient *github.Client
	logger       *logrus.Logger
	extractor    events.Extractor
	metrics      *metrics.Metrics
}

func NewGitBeamService(
	logger *logrus.Logger,
	collector *metrics.Metrics, // Nullable.
	secrets config.Secrets,
	httpClient *http.Client, // Nullable.
) (*GitBeamService, error) {
	client := github.NewClient(httpClient)
	if secrets.GitHubToken != "" {
		client = client.WithAuthToken(secrets.GitHubToken)
	}
	if secrets.GitHubUserAgent != "" {
		client.UserAgent = secrets.GitHubUserAgent
	}

	if secrets.GitHubAPIURL != "" {
		baseURL, err := url.Parse(secrets.GitHubAPIURL)
		if err != nil {
			return nil, fmt.Errorf("invalid github api url: %w", err)
		}
		if !strings.HasSuffix(baseURL.Path, "/") {
			baseURL.Path += "/"
		}
		client.BaseURL = baseURL
	}

	webURL := secrets.GitHubWebURL
	if webURL == "" {
		webURL = "https://github.com"
	}

	return &GitBeamService{
		githubClient: client,
		logger:       logger,
		extractor:    events.NewExtractor(logger, webURL),
		metrics:      collector,
	}, nil
}

// RecentCommits validates user, fetches the public feed once and returns at
// most models.MaxRecentCommits commits in feed order.
func (g GitBeamService) RecentCommits(ctx context.Context, user string) ([]models.CommitRecord, error) {
	username, err := models.NewUserQuery(user).Username()
	if err != nil {
		return nil, err
	}

	feed, err := g.FetchEvents(ctx, username)
	if err != nil {
		return nil, err
	}

	return g.extractor.Extract(feed), nil
}

// FetchEvents issues a single request for the user's public events. It does
// not retry or paginate.
func (g GitBeamService) FetchEvents(ctx context.Context, username string) ([]*github.Event, error) {
	useLogger := g.logger.WithContext(ctx).WithFields(logrus.Fields{
		"serviceName": "GitBeamService",
		"methodName":  "FetchEvents",
		"username":    username,
	})

	started := time.Now()
	feed, response, err := g.githubClient.Activity.ListEventsPerformedByUser(ctx, username, true, nil)
	g.observeRateLimit(useLogger, response)

	if err != nil {
		if status := upstreamStatus(response); status != 0 {
			g.metrics.ObserveFetch(metrics.OutcomeUpstream, time.Since(started))
			useLogger.WithError(err).WithField("status", status).Warn("github rejected the events request")
			return nil, &UpstreamError{StatusCode: status, Err: err}
		}

		g.metrics.ObserveFetch(metrics.OutcomeTransport, time.Since(started))
		useLogger.WithError(err).Error("failed to list events from github")
		return nil, fmt.Errorf("%w: %v", ErrFetchEvents, err)
	}

	g.metrics.ObserveFetch(metrics.OutcomeSuccess, time.Since(started))
	useLogger.WithField("events", len(feed)).Debug("fetched public events")
	return feed, nil
}

func (g GitBeamService) observeRateLimit(useLogger *logrus.Entry, response *github.Response) {
	if response == nil || response.Response == nil || response.Rate.Limit == 0 {
		return
	}

	g.metrics.SetRateLimitRemaining(response.Rate.Remaining)
	if response.Rate.Remaining == 0 {
		useLogger.WithFields(logrus.Fields{
			"rate_limit": response.Rate.Limit,
			"reset":      response.Rate.Reset.Time,
		}).Warn("github rate limit exhausted")
	}
}

// upstreamStatus is the HTTP status of a non-2xx response, or 0 when the
// request never produced one.
func upstreamStatus(response *github.Response) int {
	if response == nil || response.Response == nil {
		return 0
	}
	if response.StatusCode >= http.StatusOK && response.StatusCode < http.StatusMultipleChoices {
		return 0
	}
	return response.StatusCode
}
