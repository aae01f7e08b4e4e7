package server

import (
	"context"
	"errors"
	"net/http"

	"gitbeam.commit.badge/core"
	"gitbeam.commit.badge/formatter"
	"gitbeam.commit.badge/models"
	badges "gitbeam.commit.badge/pb"
	"github.com/sirupsen/logrus"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/structpb"
	"google.golang.org/protobuf/types/known/wrapperspb"
)

type apiService struct {
	badges.UnimplementedCommitBadgeServiceServer
	service *core.GitBeamService
	logger  *logrus.Logger
}

func (a apiService) ListRecentCommits(ctx context.Context, params *wrapperspb.StringValue) (*structpb.ListValue, error) {
	useLogger := a.logger.WithContext(ctx).WithField("methodName", "ListRecentCommits")

	commits, err := a.service.RecentCommits(ctx, params.GetValue())
	if err != nil {
		return nil, toStatusError(err)
	}

	list := make([]interface{}, 0, len(commits))
	for _, commit := range commits {
		list = append(list, map[string]interface{}{
			"message": commit.Message,
			"url":     commit.URL,
			"repo":    commit.Repo,
			"author":  commit.Author,
		})
	}

	output, err := structpb.NewList(list)
	if err != nil {
		useLogger.WithError(err).Error("failed to encode commits")
		return nil, status.Error(codes.Internal, "failed to encode commits")
	}
	return output, nil
}

func (a apiService) RenderBadge(ctx context.Context, params *wrapperspb.StringValue) (*wrapperspb.BytesValue, error) {
	useLogger := a.logger.WithContext(ctx).WithField("methodName", "RenderBadge")

	commits, err := a.service.RecentCommits(ctx, params.GetValue())
	if err != nil {
		return nil, toStatusError(err)
	}

	body, err := formatter.Card(models.NewUserQuery(params.GetValue()).User, commits)
	if err != nil {
		useLogger.WithError(err).Error("failed to render badge")
		return nil, status.Error(codes.Internal, "failed to render badge")
	}
	return wrapperspb.Bytes(body), nil
}

func toStatusError(err error) error {
	var upstreamErr *core.UpstreamError
	switch {
	case errors.Is(err, models.ErrInvalidUsername):
		return status.Error(codes.InvalidArgument, models.ErrInvalidUsername.Error())
	case errors.As(err, &upstreamErr):
		switch upstreamErr.StatusCode {
		case http.StatusNotFound:
			return status.Error(codes.NotFound, "github user not found")
		case http.StatusForbidden, http.StatusTooManyRequests:
			return status.Error(codes.ResourceExhausted, "github rate limit reached")
		}
		return status.Error(codes.Unavailable, upstreamErr.Error())
	default:
		return status.Error(codes.Unavailable, err.Error())
	}
}

func NewApiService(core *core.GitBeamService, logger *logrus.Logger) badges.CommitBadgeServiceServer {
	return &apiService{
		service: core,
		logger:  logger,
	}
}
