package core

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"gitbeam.commit.badge/metrics"
	"gitbeam.commit.badge/models"
	"gitbeam.commit.badge/testutil"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/require"
)

func newTestService(t *testing.T, apiURL string) *GitBeamService {
	t.Helper()
	service, err := NewGitBeamService(testutil.Logger(), metrics.New(prometheus.NewRegistry()), testutil.Secrets(apiURL), nil)
	require.NoError(t, err)
	return service
}

func TestRecentCommits_CapsAtThree(t *testing.T) {
	gh := testutil.NewGitHubServer(t, map[string]string{
		testutil.EventsPath("octocat"): testutil.PushFeed,
	})

	got, err := newTestService(t, gh.URL).RecentCommits(context.Background(), "octocat")
	require.NoError(t, err)
	require.Equal(t, []models.CommitRecord{
		{Message: "first", URL: "https://github.com/octocat/hello/commit/aaa", Repo: "octocat/hello", Author: "Octo Cat"},
		{Message: "second", URL: "https://github.com/octocat/hello/commit/bbb", Repo: "octocat/hello", Author: "Octo Cat"},
		{Message: "<script>alert(1)</script>", URL: "https://github.com/octocat/world/commit/ccc", Repo: "octocat/world", Author: "Mona"},
	}, got)
}

func TestRecentCommits_NoPushEvents(t *testing.T) {
	gh := testutil.NewGitHubServer(t, map[string]string{
		testutil.EventsPath("octocat"): testutil.NoPushFeed,
	})

	got, err := newTestService(t, gh.URL).RecentCommits(context.Background(), "octocat")
	require.NoError(t, err)
	require.NotNil(t, got)
	require.Empty(t, got)
}

func TestRecentCommits_SendsIdentifyingHeaders(t *testing.T) {
	gh := testutil.NewGitHubServer(t, map[string]string{
		testutil.EventsPath("octocat"): `[]`,
	})

	_, err := newTestService(t, gh.URL).RecentCommits(context.Background(), "octocat")
	require.NoError(t, err)

	requests := gh.Requests()
	require.Len(t, requests, 1)
	require.Equal(t, http.MethodGet, requests[0].Method)
	require.Equal(t, "/users/octocat/events/public", requests[0].URL.Path)
	require.Equal(t, "github-user-commits-widget", requests[0].Header.Get("User-Agent"))
	require.Contains(t, requests[0].Header.Get("Accept"), "application/vnd.github.v3+json")
	require.Empty(t, requests[0].Header.Get("Authorization"))
}

func TestRecentCommits_AuthToken(t *testing.T) {
	gh := testutil.NewGitHubServer(t, map[string]string{
		testutil.EventsPath("octocat"): `[]`,
	})

	secrets := testutil.Secrets(gh.URL)
	secrets.GitHubToken = "s3cret"
	service, err := NewGitBeamService(testutil.Logger(), nil, secrets, nil)
	require.NoError(t, err)

	_, err = service.RecentCommits(context.Background(), "octocat")
	require.NoError(t, err)
	require.Equal(t, "Bearer s3cret", gh.Requests()[0].Header.Get("Authorization"))
}

func TestRecentCommits_InvalidUserMakesNoCall(t *testing.T) {
	gh := testutil.NewGitHubServer(t, nil)
	service := newTestService(t, gh.URL)

	for _, user := range []string{"", "../orgs/x", "bad user"} {
		_, err := service.RecentCommits(context.Background(), user)
		require.ErrorIs(t, err, models.ErrInvalidUsername)
	}
	require.Empty(t, gh.Requests())
}

func TestRecentCommits_UpstreamNotFound(t *testing.T) {
	gh := testutil.NewGitHubServer(t, nil)

	_, err := newTestService(t, gh.URL).RecentCommits(context.Background(), "ghost")
	require.Error(t, err)

	var upstreamErr *UpstreamError
	require.True(t, errors.As(err, &upstreamErr))
	require.Equal(t, http.StatusNotFound, upstreamErr.StatusCode)
	require.False(t, errors.Is(err, ErrFetchEvents))
}

func TestRecentCommits_TransportFailure(t *testing.T) {
	gh := testutil.NewGitHubServer(t, nil)
	url := gh.URL
	gh.Close()

	_, err := newTestService(t, url).RecentCommits(context.Background(), "octocat")
	require.ErrorIs(t, err, ErrFetchEvents)

	var upstreamErr *UpstreamError
	require.False(t, errors.As(err, &upstreamErr))
}

func TestRecentCommits_UpstreamStatuses(t *testing.T) {
	for _, code := range []int{http.StatusForbidden, http.StatusTooManyRequests, http.StatusInternalServerError, http.StatusBadGateway} {
		t.Run(http.StatusText(code), func(t *testing.T) {
			gh := testutil.NewGitHubServer(t, nil)
			gh.Respond(testutil.EventsPath("octocat"), code, `{"message":"nope"}`)

			_, err := newTestService(t, gh.URL).RecentCommits(context.Background(), "octocat")

			var upstreamErr *UpstreamError
			require.True(t, errors.As(err, &upstreamErr))
			require.Equal(t, code, upstreamErr.StatusCode)
		})
	}
}

func TestRecentCommits_UndecodableBody(t *testing.T) {
	gh := testutil.NewGitHubServer(t, nil)
	gh.Respond(testutil.EventsPath("octocat"), http.StatusOK, `this is not json`)

	_, err := newTestService(t, gh.URL).RecentCommits(context.Background(), "octocat")
	require.ErrorIs(t, err, ErrFetchEvents)

	var upstreamErr *UpstreamError
	require.False(t, errors.As(err, &upstreamErr))
}

func TestNewGitBeamService_BadAPIURL(t *testing.T) {
	_, err := NewGitBeamService(testutil.Logger(), nil, testutil.Secrets("://nope"), nil)
	require.Error(t, err)
}
