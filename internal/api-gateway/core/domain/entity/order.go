package entity

// OrderDetail is one line of an order. Price stays a decimal string through
// the whole pipeline.
type OrderDetail struct {
	ProductID string
	Price     string
	Quantity  int
}

// Order as returned by the orders service. Enrichment with product data
// happens in the HTTP layer and is never persisted.
type Order struct {
	ID           int64
	OrderDetails []OrderDetail
}

type Product struct {
	ID                string
	Title             string
	PassengerCapacity int
	MaximumSpeed      int
	InStock           int
}
