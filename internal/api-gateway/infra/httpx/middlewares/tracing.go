// Package middlewares bridges chi's HTTP middleware with the gRPC metadata
// the gateway's downstream calls carry.
package middlewares

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5/middleware"
	"google.golang.org/grpc/metadata"

	"github.com/mvaldesdev/fleet-commerce/internal/pkg/interceptors/constants"
)

// AttachTracingMetadata copies the chi request id into the outgoing gRPC
// metadata so every downstream service logs the same request id as the
// gateway.
func AttachTracingMetadata(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID := middleware.GetReqID(r.Context())

		ctx := context.WithValue(r.Context(), constants.ContextKeyRequestID, requestID)
		ctx = metadata.AppendToOutgoingContext(ctx, constants.HeaderXRequestId, requestID)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
