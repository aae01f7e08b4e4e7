package server

import (
	"errors"
	"time"

	"gitbeam.commit.badge/metrics"
	"github.com/gofiber/fiber/v3"
	"github.com/sirupsen/logrus"
)

func requestLogger(logger *logrus.Logger, collector *metrics.Metrics) fiber.Handler {
	return func(c fiber.Ctx) error {
		started := time.Now()
		err := c.Next()

		code := c.Response().StatusCode()
		if err != nil {
			code = fiber.StatusInternalServerError
			var fiberErr *fiber.Error
			if errors.As(err, &fiberErr) {
				code = fiberErr.Code
			}
		}

		route := c.Route().Path
		collector.ObserveRequest(route, code)
		logger.WithFields(logrus.Fields{
			"method":  c.Method(),
			"path":    c.Path(),
			"status":  code,
			"latency": time.Since(started).String(),
		}).Info("handled request")

		return err
	}
}
