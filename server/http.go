package server

import (
	"errors"

	"gitbeam.commit.badge/config"
	"gitbeam.commit.badge/core"
	"gitbeam.commit.badge/formatter"
	"gitbeam.commit.badge/metrics"
	"gitbeam.commit.badge/models"
	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/adaptor"
	recoverer "github.com/gofiber/fiber/v3/middleware/recover"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sirupsen/logrus"
)

const (
	RouteUserCommits = "/api/user-commits"
	RouteCommitGraph = "/api/commit-graph"
	RouteHealth      = "/health"
	RouteMetrics     = "/metrics"
)

const (
	msgInvalidUser   = "Missing or invalid user parameter"
	msgUpstreamError = "Failed to fetch GitHub events"
	msgFetchFailed   = "Failed to fetch commits"
)

type httpHandlers struct {
	service *core.GitBeamService
	logger  *logrus.Logger
}

// NewHTTPApp mounts the JSON and badge endpoints plus health and metrics.
func NewHTTPApp(
	service *core.GitBeamService,
	collector *metrics.Metrics,
	gatherer prometheus.Gatherer,
	logger *logrus.Logger,
) *fiber.App {
	app := fiber.New(fiber.Config{AppName: config.ServiceName})
	app.Use(requestLogger(logger, collector))
	app.Use(recoverer.New())

	h := httpHandlers{service: service, logger: logger}

	app.Get(RouteUserCommits, h.userCommits)
	app.Get(RouteCommitGraph, h.commitGraph)
	app.Get(RouteHealth, func(c fiber.Ctx) error {
		return c.JSON(fiber.Map{"code": fiber.StatusOK})
	})
	app.Get(RouteMetrics, adaptor.HTTPHandler(promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})))

	return app
}

func (h httpHandlers) userCommits(c fiber.Ctx) error {
	useLogger := h.logger.WithField("methodName", "userCommits")

	commits, err := h.service.RecentCommits(c, c.Query("user"))
	if err != nil {
		var upstreamErr *core.UpstreamError
		switch {
		case errors.Is(err, models.ErrInvalidUsername):
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": msgInvalidUser})
		case errors.As(err, &upstreamErr):
			return c.Status(upstreamErr.StatusCode).JSON(fiber.Map{"error": msgUpstreamError})
		default:
			useLogger.WithError(err).Error("failed to fetch commits")
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": msgFetchFailed})
		}
	}

	return c.JSON(formatter.Records(commits))
}

// commitGraph always answers 200 once the user is valid: embeds in READMEs
// expect an image, so fetch failures render an empty badge.
func (h httpHandlers) commitGraph(c fiber.Ctx) error {
	useLogger := h.logger.WithField("methodName", "commitGraph")

	username, err := models.NewUserQuery(c.Query("user")).Username()
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": msgInvalidUser})
	}

	commits, err := h.service.RecentCommits(c, username)
	if err != nil {
		useLogger.WithError(err).WithField("username", username).Warn("rendering empty badge")
		commits = nil
	}

	body, err := formatter.Render(formatter.ParseTheme(c.Query("theme")), username, commits)
	if err != nil {
		return err
	}

	c.Set(fiber.HeaderContentType, formatter.ContentTypeSVG)
	c.Set(fiber.HeaderCacheControl, formatter.CacheControl)
	return c.Status(fiber.StatusOK).Send(body)
}
