package main

import (
	"context"
	"fmt"
	"net"
	"os"
	"os/signal"
	"syscall"
	"time"

	"gitbeam.commit.badge/config"
	"gitbeam.commit.badge/core"
	"gitbeam.commit.badge/metrics"
	"gitbeam.commit.badge/server"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/sirupsen/logrus"
)

func main() {
	logger := logrus.New()
	logger.SetFormatter(&logrus.JSONFormatter{})
	logger.SetOutput(os.Stdout)
	logger.SetLevel(logrus.InfoLevel)

	secrets := config.GetSecrets()
	if err := secrets.Validate(); err != nil {
		logger.WithError(err).Fatal("invalid configuration")
	}
	if level, err := logrus.ParseLevel(secrets.LogLevel); err == nil {
		logger.SetLevel(level)
	}

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	collector := metrics.New(registry)

	// Nil http client: go-github falls back to its default.
	coreService, err := core.NewGitBeamService(logger, collector, secrets, nil)
	if err != nil {
		logger.WithError(err).Fatal("failed to initialize github client")
	}

	grpcServer := server.NewGRPCServer(coreService, logger)
	lis, err := net.Listen("tcp", fmt.Sprintf("0.0.0.0:%s", secrets.GRPCPort))
	if err != nil {
		logger.WithError(err).Fatal("failed to listen for grpc")
	}
	go server.ExecGRPCServer(lis, grpcServer, logger)

	app := server.NewHTTPApp(coreService, collector, registry, logger)
	address := fmt.Sprintf("0.0.0.0:%s", secrets.Port)
	logger.Printf("[*] %s starting", config.ServiceName)
	go server.ExecHTTPServer(address, app, logger)

	signalChan := make(chan os.Signal, 1)
	signal.Notify(signalChan, os.Interrupt, syscall.SIGTERM)
	<-signalChan
	logger.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(ctx); err != nil {
		logger.WithError(err).Error("Server forced to shutdown")
	}
	grpcServer.GracefulStop()
	logger.Info("Server gracefully stopped...")
}
