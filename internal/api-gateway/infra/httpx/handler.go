package httpx

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"github.com/mvaldesdev/fleet-commerce/internal/api-gateway/core/domain/entity"
	"github.com/mvaldesdev/fleet-commerce/internal/api-gateway/core/ports"
)

const (
	defaultPage = 1
	maxLimit    = 10
)

// Handler handles the gateway's HTTP surface, orchestrating the products
// and orders services behind it.
type Handler struct {
	products  ports.ProductsService
	orders    ports.OrdersService
	imageRoot string
	validate  *validator.Validate
}

// NewHandler wires the handler with its downstream ports and the image root
// used to derive per-product image URLs.
func NewHandler(products ports.ProductsService, orders ports.OrdersService, imageRoot string) *Handler {
	return &Handler{
		products:  products,
		orders:    orders,
		imageRoot: strings.TrimSuffix(imageRoot, "/"),
		validate:  newValidator(),
	}
}

// GetProduct returns a single product by id.
func (h *Handler) GetProduct(w http.ResponseWriter, r *http.Request) {
	productID := chi.URLParam(r, "id")

	product, err := h.products.Get(r.Context(), productID)
	if err != nil {
		h.writeDownstreamError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toProductPayload(product))
}

// CreateProduct validates the posted product and forwards it to the
// products service.
func (h *Handler) CreateProduct(w http.ResponseWriter, r *http.Request) {
	var payload ProductPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_json", err.Error())
		return
	}
	if err := h.validate.Struct(payload); err != nil {
		writeError(w, http.StatusBadRequest, "validation_error", err.Error())
		return
	}

	err := h.products.Create(r.Context(), entity.Product{
		ID:                payload.ID,
		Title:             payload.Title,
		PassengerCapacity: payload.PassengerCapacity,
		MaximumSpeed:      payload.MaximumSpeed,
		InStock:           payload.InStock,
	})
	if err != nil {
		h.writeDownstreamError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, IDResponse{ID: payload.ID})
}

// DeleteProduct removes a product by id.
func (h *Handler) DeleteProduct(w http.ResponseWriter, r *http.Request) {
	productID := chi.URLParam(r, "id")

	if err := h.products.Delete(r.Context(), productID); err != nil {
		h.writeDownstreamError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, IDResponse{ID: productID})
}

// CreateOrder runs the order-creation workflow: validate the payload, check
// that every referenced product exists with one batched lookup, and only
// then delegate persistence to the orders service.
func (h *Handler) CreateOrder(w http.ResponseWriter, r *http.Request) {
	var req CreateOrderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_json", err.Error())
		return
	}
	if err := h.validate.Struct(req); err != nil {
		writeError(w, http.StatusBadRequest, "validation_error", err.Error())
		return
	}

	// Each distinct product id is queried once, keeping the existence
	// check a single round trip no matter how many lines reference it.
	uniqueIDs := uniqueProductIDs(req.OrderDetails)

	products, err := h.products.GetProductsByID(r.Context(), uniqueIDs)
	switch {
	case errors.Is(err, entity.ErrProductNotFound):
		// None of the referenced products exist.
		h.writeMissingProducts(w, r, uniqueIDs)
		return
	case err != nil:
		h.writeDownstreamError(w, r, err)
		return
	}

	// A shorter result means at least one id did not resolve; the batch
	// contract filters misses instead of failing.
	if len(products) != len(uniqueIDs) {
		returned := make(map[string]struct{}, len(products))
		for _, p := range products {
			returned[p.ID] = struct{}{}
		}
		var missing []string
		for _, id := range uniqueIDs {
			if _, ok := returned[id]; !ok {
				missing = append(missing, id)
			}
		}
		h.writeMissingProducts(w, r, missing)
		return
	}

	// Forward the validated details re-shaped through the typed entity so
	// the orders service only ever sees canonical values.
	details := make([]entity.OrderDetail, 0, len(req.OrderDetails))
	for _, d := range req.OrderDetails {
		details = append(details, entity.OrderDetail{
			ProductID: d.ProductID,
			Price:     d.Price,
			Quantity:  d.Quantity,
		})
	}

	orderID, err := h.orders.CreateOrder(r.Context(), details)
	if err != nil {
		h.writeDownstreamError(w, r, err)
		return
	}

	slog.InfoContext(r.Context(), "order created", "order_id", orderID, "lines", len(details))
	writeJSON(w, http.StatusOK, IDResponse{ID: orderID})
}

// GetOrder fetches an order and enriches each line with the product record
// and a derived image URL.
func (h *Handler) GetOrder(w http.ResponseWriter, r *http.Request) {
	orderID, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid_order_id", "order id must be an integer")
		return
	}

	order, err := h.orders.GetOrder(r.Context(), orderID)
	if err != nil {
		h.writeDownstreamError(w, r, err)
		return
	}

	res, err := h.enrich(r, order)
	if err != nil {
		h.writeDownstreamError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, res)
}

// ListOrders returns one page of orders, unenriched. Out-of-range paging
// parameters are clamped, not rejected.
func (h *Handler) ListOrders(w http.ResponseWriter, r *http.Request) {
	page, err := queryInt(r, "page", defaultPage)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid_page", err.Error())
		return
	}
	limit, err := queryInt(r, "limit", maxLimit)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid_limit", err.Error())
		return
	}
	if page < 1 {
		page = defaultPage
	}
	if limit > maxLimit || limit < 1 {
		limit = maxLimit
	}

	orders, err := h.orders.ListOrders(r.Context(), page, limit)
	if err != nil {
		h.writeDownstreamError(w, r, err)
		return
	}

	out := make([]OrderResponse, 0, len(orders))
	for _, o := range orders {
		out = append(out, toOrderResponse(o))
	}
	writeJSON(w, http.StatusOK, out)
}

// enrich attaches the product record and image URL to every order line. A
// line whose product no longer exists is kept with a nil product: failing
// the whole read would let one deleted product poison every order that ever
// referenced it. That leniency is for genuine lookup misses only; a failed
// products call (timeout, outage) fails the whole read so a broken
// downstream never masquerades as a deleted product.
func (h *Handler) enrich(r *http.Request, order *entity.Order) (OrderResponse, error) {
	ids := make([]string, 0, len(order.OrderDetails))
	for _, d := range order.OrderDetails {
		ids = append(ids, d.ProductID)
	}

	productMap := make(map[string]entity.Product)
	products, err := h.products.GetProductsByID(r.Context(), uniqueIDsOf(ids))
	if err != nil && !errors.Is(err, entity.ErrProductNotFound) {
		return OrderResponse{}, fmt.Errorf("product lookup for order %d: %w", order.ID, err)
	}
	for _, p := range products {
		productMap[p.ID] = p
	}

	res := OrderResponse{ID: order.ID, OrderDetails: make([]OrderDetailResponse, 0, len(order.OrderDetails))}
	for _, d := range order.OrderDetails {
		line := OrderDetailResponse{
			ProductID: d.ProductID,
			Price:     d.Price,
			Quantity:  d.Quantity,
		}
		if p, ok := productMap[d.ProductID]; ok {
			payload := toProductPayload(p)
			line.Product = &payload
			line.Image = fmt.Sprintf("%s/%s.jpg", h.imageRoot, d.ProductID)
		} else {
			slog.WarnContext(r.Context(), "order references a missing product",
				"order_id", order.ID, "product_id", d.ProductID)
		}
		res.OrderDetails = append(res.OrderDetails, line)
	}
	return res, nil
}

func (h *Handler) writeMissingProducts(w http.ResponseWriter, r *http.Request, missing []string) {
	slog.InfoContext(r.Context(), "order rejected: missing products", "product_ids", missing)
	writeError(w, http.StatusNotFound, "product_not_found",
		fmt.Sprintf("product id(s) not found: %s", strings.Join(missing, ", ")))
}

// writeDownstreamError maps downstream failures onto HTTP statuses. Only
// the typed not-found errors become 404s; anything else is a 502 so
// transport failures are never mistaken for missing data.
func (h *Handler) writeDownstreamError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, entity.ErrProductNotFound):
		writeError(w, http.StatusNotFound, "product_not_found", err.Error())
	case errors.Is(err, entity.ErrOrderNotFound):
		writeError(w, http.StatusNotFound, "order_not_found", err.Error())
	default:
		slog.ErrorContext(r.Context(), "downstream call failed", "error", err)
		writeError(w, http.StatusBadGateway, "upstream_error", err.Error())
	}
}

func uniqueProductIDs(details []OrderDetailDTO) []string {
	ids := make([]string, 0, len(details))
	for _, d := range details {
		ids = append(ids, d.ProductID)
	}
	return uniqueIDsOf(ids)
}

// uniqueIDsOf dedupes ids preserving first-seen order.
func uniqueIDsOf(ids []string) []string {
	seen := make(map[string]struct{}, len(ids))
	unique := make([]string, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		unique = append(unique, id)
	}
	return unique
}

func queryInt(r *http.Request, key string, fallback int) (int, error) {
	raw := r.URL.Query().Get(key)
	if raw == "" {
		return fallback, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("%s must be an integer", key)
	}
	return n, nil
}

func toProductPayload(p entity.Product) ProductPayload {
	return ProductPayload{
		ID:                p.ID,
		Title:             p.Title,
		PassengerCapacity: p.PassengerCapacity,
		MaximumSpeed:      p.MaximumSpeed,
		InStock:           p.InStock,
	}
}

func toOrderResponse(o *entity.Order) OrderResponse {
	details := make([]OrderDetailResponse, 0, len(o.OrderDetails))
	for _, d := range o.OrderDetails {
		details = append(details, OrderDetailResponse{
			ProductID: d.ProductID,
			Price:     d.Price,
			Quantity:  d.Quantity,
		})
	}
	return OrderResponse{ID: o.ID, OrderDetails: details}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, code, msg string) {
	writeJSON(w, status, ErrorResponse{
		Error:   code,
		Message: msg,
	})
}
