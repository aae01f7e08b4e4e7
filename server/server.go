package server

import (
	"context"
	"fmt"
	"net"

	"gitbeam.commit.badge/core"
	badges "gitbeam.commit.badge/pb"
	"github.com/gofiber/fiber/v3"
	"github.com/sirupsen/logrus"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"
	"google.golang.org/grpc/status"
)

// NewGRPCServer registers the commit badge, health and reflection services.
func NewGRPCServer(core *core.GitBeamService, logger *logrus.Logger) *grpc.Server {
	server := grpc.NewServer(grpc.UnaryInterceptor(recoveryInterceptor(logger)))
	badges.RegisterCommitBadgeServiceServer(server, NewApiService(core, logger))

	healthServer := health.NewServer()
	healthServer.SetServingStatus(badges.CommitBadgeService_ServiceDesc.ServiceName, healthpb.HealthCheckResponse_SERVING)
	healthpb.RegisterHealthServer(server, healthServer)

	reflection.Register(server)
	return server
}

func ExecGRPCServer(lis net.Listener, server *grpc.Server, logger *logrus.Logger) {
	logger.Printf("[*] grpc listening on address: %s", lis.Addr())
	if err := server.Serve(lis); err != nil {
		logger.WithError(err).Fatal("grpc server stopped")
	}
}

func ExecHTTPServer(address string, app *fiber.App, logger *logrus.Logger) {
	logger.Printf("[*] http listening on address: %s", address)
	if err := app.Listen(address, fiber.ListenConfig{DisableStartupMessage: true}); err != nil {
		logger.WithError(err).Fatal("http server stopped")
	}
}

func recoveryInterceptor(logger *logrus.Logger) grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req interface{}, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (resp interface{}, err error) {
		defer func() {
			if r := recover(); r != nil {
				logger.WithField("method", info.FullMethod).Errorf("recovered from panic: %v", r)
				err = status.Error(codes.Internal, fmt.Sprintf("internal error in %s", info.FullMethod))
			}
		}()
		return handler(ctx, req)
	}
}
