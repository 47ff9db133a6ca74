// Package interceptors carries the request id across process boundaries so
// one inbound HTTP request can be followed through every RPC it fans out to.
package interceptors

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
	"google.golang.org/grpc"
	"google.golang.org/grpc/metadata"

	"github.com/mvaldesdev/fleet-commerce/internal/pkg/interceptors/constants"
)

// RequestIDServerInterceptor pulls the request id out of incoming gRPC
// metadata and stores it in the handler context. Calls arriving without one
// (direct RPC clients, tests) get a fresh id so log lines are always
// correlatable.
func RequestIDServerInterceptor() grpc.UnaryServerInterceptor {
	return func(
		ctx context.Context,
		req any,
		info *grpc.UnaryServerInfo,
		handler grpc.UnaryHandler,
	) (any, error) {
		requestID := ""
		if md, ok := metadata.FromIncomingContext(ctx); ok {
			if ids := md.Get(constants.HeaderXRequestId); len(ids) > 0 {
				requestID = ids[0]
			}
		}
		if requestID == "" {
			requestID = uuid.NewString()
		}

		ctx = context.WithValue(ctx, constants.ContextKeyRequestID, requestID)
		slog.InfoContext(ctx, "rpc call", "method", info.FullMethod, "request_id", requestID)

		return handler(ctx, req)
	}
}

// RequestIDFromContext returns the request id stored by the server
// interceptor, or the empty string when none exists.
func RequestIDFromContext(ctx context.Context) string {
	if id, ok := ctx.Value(constants.ContextKeyRequestID).(string); ok {
		return id
	}
	return ""
}
