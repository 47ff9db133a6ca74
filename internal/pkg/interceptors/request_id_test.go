package interceptors

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/metadata"

	"github.com/mvaldesdev/fleet-commerce/internal/pkg/interceptors/constants"
)

func invoke(t *testing.T, ctx context.Context) string {
	t.Helper()
	var captured string
	interceptor := RequestIDServerInterceptor()
	_, err := interceptor(ctx, nil,
		&grpc.UnaryServerInfo{FullMethod: "/products.v1.Products/GetProduct"},
		func(ctx context.Context, req any) (any, error) {
			captured = RequestIDFromContext(ctx)
			return nil, nil
		})
	require.NoError(t, err)
	return captured
}

func TestRequestIDPropagatedFromMetadata(t *testing.T) {
	ctx := metadata.NewIncomingContext(context.Background(),
		metadata.Pairs(constants.HeaderXRequestId, "req-123"))

	assert.Equal(t, "req-123", invoke(t, ctx))
}

func TestRequestIDGeneratedWhenAbsent(t *testing.T) {
	id := invoke(t, context.Background())
	assert.NotEmpty(t, id)
}

func TestRequestIDFromContextWithoutValue(t *testing.T) {
	assert.Empty(t, RequestIDFromContext(context.Background()))
}
