// Package store implements product persistence on top of a Redis key-value
// store. Each product lives in a single hash at "products:<id>"; all field
// values are stored as strings and decoded into typed values on read.
package store

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/redis/go-redis/v9"
)

// ErrNotFound is returned when no product matches the requested id(s).
// Callers compare with errors.Is.
var ErrNotFound = errors.New("product not found")

const keyPrefix = "products:"

// scanCount bounds how many keys a single SCAN round trip may return, so
// List never issues one unbounded read against the store.
const scanCount = 10

// Product is the typed shape of a stored product record.
type Product struct {
	ID                string
	Title             string
	PassengerCapacity int
	MaximumSpeed      int
	InStock           int
}

// Store is a Redis-backed product repository. The underlying go-redis client
// is pooled and safe for concurrent use, so a single Store is shared by all
// request workers.
type Store struct {
	client *redis.Client
}

// Open connects to Redis using a URI such as "redis://localhost:6379/0".
func Open(uri string) (*Store, error) {
	opts, err := redis.ParseURL(uri)
	if err != nil {
		return nil, fmt.Errorf("store: parse redis uri: %w", err)
	}
	return &Store{client: redis.NewClient(opts)}, nil
}

// NewWithClient wraps an existing client. Used by tests and by callers that
// manage the client lifecycle themselves.
func NewWithClient(client *redis.Client) *Store {
	return &Store{client: client}
}

// Close releases the client's connection pool.
func (s *Store) Close() error {
	return s.client.Close()
}

func formatKey(productID string) string {
	return keyPrefix + productID
}

// fromHash decodes a raw Redis hash into a typed Product.
func fromHash(h map[string]string) (Product, error) {
	capacity, err := strconv.Atoi(h["passenger_capacity"])
	if err != nil {
		return Product{}, fmt.Errorf("store: decode passenger_capacity: %w", err)
	}
	speed, err := strconv.Atoi(h["maximum_speed"])
	if err != nil {
		return Product{}, fmt.Errorf("store: decode maximum_speed: %w", err)
	}
	stock, err := strconv.Atoi(h["in_stock"])
	if err != nil {
		return Product{}, fmt.Errorf("store: decode in_stock: %w", err)
	}
	return Product{
		ID:                h["id"],
		Title:             h["title"],
		PassengerCapacity: capacity,
		MaximumSpeed:      speed,
		InStock:           stock,
	}, nil
}

// Get returns the product stored under the given id.
func (s *Store) Get(ctx context.Context, productID string) (Product, error) {
	h, err := s.client.HGetAll(ctx, formatKey(productID)).Result()
	if err != nil {
		return Product{}, fmt.Errorf("store: get %q: %w", productID, err)
	}
	// HGETALL on a missing key returns an empty hash, not an error.
	if len(h) == 0 {
		return Product{}, fmt.Errorf("product id %q: %w", productID, ErrNotFound)
	}
	return fromHash(h)
}

// List returns every stored product by scanning the product key pattern in
// cursor-sized batches. Iteration order is whatever the store yields.
func (s *Store) List(ctx context.Context) ([]Product, error) {
	var (
		products []Product
		cursor   uint64
	)
	for {
		keys, next, err := s.client.Scan(ctx, cursor, formatKey("*"), scanCount).Result()
		if err != nil {
			return nil, fmt.Errorf("store: scan products: %w", err)
		}
		for _, key := range keys {
			h, err := s.client.HGetAll(ctx, key).Result()
			if err != nil {
				return nil, fmt.Errorf("store: read %q: %w", key, err)
			}
			if len(h) == 0 {
				// Key vanished between SCAN and HGETALL.
				continue
			}
			p, err := fromHash(h)
			if err != nil {
				return nil, err
			}
			products = append(products, p)
		}
		cursor = next
		if cursor == 0 {
			return products, nil
		}
	}
}

// Create upserts the full record at its key. Writing an id that already
// exists silently overwrites it, which makes Create idempotent by id.
func (s *Store) Create(ctx context.Context, p Product) error {
	err := s.client.HSet(ctx, formatKey(p.ID),
		"id", p.ID,
		"title", p.Title,
		"passenger_capacity", p.PassengerCapacity,
		"maximum_speed", p.MaximumSpeed,
		"in_stock", p.InStock,
	).Err()
	if err != nil {
		return fmt.Errorf("store: create %q: %w", p.ID, err)
	}
	return nil
}

// Delete removes the product's key, failing with ErrNotFound when no key
// was removed.
func (s *Store) Delete(ctx context.Context, productID string) error {
	removed, err := s.client.Del(ctx, formatKey(productID)).Result()
	if err != nil {
		return fmt.Errorf("store: delete %q: %w", productID, err)
	}
	if removed == 0 {
		return fmt.Errorf("product id %q: %w", productID, ErrNotFound)
	}
	return nil
}

// GetByIDs fetches the given ids in a single pipelined round trip. Ids with
// no matching record are filtered out of the result, so the returned slice
// may be shorter than the request; callers must diff requested vs returned
// ids to detect partial misses. It fails with ErrNotFound only when none of
// the ids resolved.
func (s *Store) GetByIDs(ctx context.Context, productIDs []string) ([]Product, error) {
	pipe := s.client.Pipeline()
	cmds := make([]*redis.MapStringStringCmd, 0, len(productIDs))
	for _, id := range productIDs {
		cmds = append(cmds, pipe.HGetAll(ctx, formatKey(id)))
	}
	if _, err := pipe.Exec(ctx); err != nil {
		return nil, fmt.Errorf("store: batch get: %w", err)
	}

	products := make([]Product, 0, len(productIDs))
	for _, cmd := range cmds {
		h := cmd.Val()
		if len(h) == 0 {
			continue
		}
		p, err := fromHash(h)
		if err != nil {
			return nil, err
		}
		products = append(products, p)
	}
	if len(products) == 0 {
		return nil, fmt.Errorf("no products found for the given ids: %w", ErrNotFound)
	}
	return products, nil
}

// decrementStock checks existence and decrements in one script so a
// decrement against a missing id can never fabricate a key with garbage
// stock. Returns the new stock value, or false when the key does not exist.
var decrementStock = redis.NewScript(`
if redis.call("EXISTS", KEYS[1]) == 0 then
	return false
end
return redis.call("HINCRBY", KEYS[1], "in_stock", ARGV[1])
`)

// DecrementStock atomically subtracts amount from the product's in_stock
// counter and returns the new value. It does not validate amount against the
// current stock, so the counter can go negative. Decrementing a nonexistent
// id fails with ErrNotFound.
func (s *Store) DecrementStock(ctx context.Context, productID string, amount int) (int, error) {
	newStock, err := decrementStock.Run(ctx, s.client, []string{formatKey(productID)}, -amount).Int()
	if errors.Is(err, redis.Nil) {
		return 0, fmt.Errorf("product id %q: %w", productID, ErrNotFound)
	}
	if err != nil {
		return 0, fmt.Errorf("store: decrement stock %q: %w", productID, err)
	}
	return newStock, nil
}
