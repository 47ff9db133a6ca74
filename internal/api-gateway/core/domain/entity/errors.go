package entity

import "errors"

// Typed downstream errors. The gRPC adapters translate NOT_FOUND statuses
// into these so the HTTP layer can map them deterministically to 404s;
// transport or server failures are never folded into them.
var (
	ErrProductNotFound = errors.New("product not found")
	ErrOrderNotFound   = errors.New("order not found")
)
