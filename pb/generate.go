// Package badges holds the gRPC contract of the commit badge service. The
// service only exchanges well-known types, so only the gRPC stubs are generated.
package badges

//go:generate protoc --go-grpc_out=. --go-grpc_opt=paths=source_relative commit_badge.proto
