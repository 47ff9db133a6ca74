package httpx

// ProductPayload is both the POST /products request body and the product
// shape embedded in enriched order responses.
type ProductPayload struct {
	ID                string `json:"id" validate:"required"`
	Title             string `json:"title" validate:"required"`
	PassengerCapacity int    `json:"passenger_capacity" validate:"gte=0"`
	MaximumSpeed      int    `json:"maximum_speed" validate:"gte=0"`
	InStock           int    `json:"in_stock" validate:"gte=0"`
}

type CreateOrderRequest struct {
	OrderDetails []OrderDetailDTO `json:"order_details" validate:"required,min=1,dive"`
}

type OrderDetailDTO struct {
	ProductID string `json:"product_id" validate:"required"`
	Price     string `json:"price" validate:"required,decimal"`
	Quantity  int    `json:"quantity" validate:"required,min=1"`
}

// OrderResponse is shared by the single-order and list endpoints. Only the
// single-order read path fills Product and Image; the list path returns the
// details unenriched.
type OrderResponse struct {
	ID           int64                 `json:"id"`
	OrderDetails []OrderDetailResponse `json:"order_details"`
}

type OrderDetailResponse struct {
	ProductID string `json:"product_id"`
	Price     string `json:"price"`
	Quantity  int    `json:"quantity"`

	// Product is nil when the referenced product no longer exists in the
	// products service; the line itself is always returned.
	Product *ProductPayload `json:"product,omitempty"`
	Image   string          `json:"image,omitempty"`
}

// IDResponse is the `{"id": ...}` body returned by the create and delete
// endpoints. The id is a string for products and an integer for orders.
type IDResponse struct {
	ID any `json:"id"`
}

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
