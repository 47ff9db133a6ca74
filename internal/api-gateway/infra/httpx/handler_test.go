package httpx

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/mvaldesdev/fleet-commerce/internal/api-gateway/core/domain/entity"
)

const testImageRoot = "http://example.com/airship/images"

type mockProductsService struct {
	mock.Mock
}

func (m *mockProductsService) Get(ctx context.Context, id string) (entity.Product, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(entity.Product), args.Error(1)
}

func (m *mockProductsService) Create(ctx context.Context, p entity.Product) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *mockProductsService) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *mockProductsService) GetProductsByID(ctx context.Context, ids []string) ([]entity.Product, error) {
	args := m.Called(ctx, ids)
	var products []entity.Product
	if v := args.Get(0); v != nil {
		products = v.([]entity.Product)
	}
	return products, args.Error(1)
}

type mockOrdersService struct {
	mock.Mock
}

func (m *mockOrdersService) GetOrder(ctx context.Context, id int64) (*entity.Order, error) {
	args := m.Called(ctx, id)
	var order *entity.Order
	if v := args.Get(0); v != nil {
		order = v.(*entity.Order)
	}
	return order, args.Error(1)
}

func (m *mockOrdersService) ListOrders(ctx context.Context, page, limit int) ([]*entity.Order, error) {
	args := m.Called(ctx, page, limit)
	var orders []*entity.Order
	if v := args.Get(0); v != nil {
		orders = v.([]*entity.Order)
	}
	return orders, args.Error(1)
}

func (m *mockOrdersService) CreateOrder(ctx context.Context, details []entity.OrderDetail) (int64, error) {
	args := m.Called(ctx, details)
	return args.Get(0).(int64), args.Error(1)
}

func newTestServer(t *testing.T) (*mockProductsService, *mockOrdersService, http.Handler) {
	t.Helper()
	products := new(mockProductsService)
	orders := new(mockOrdersService)
	return products, orders, NewRouter(NewHandler(products, orders, testImageRoot))
}

func doRequest(router http.Handler, method, target, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func entityProduct(id string) entity.Product {
	return entity.Product{
		ID:                id,
		Title:             "Airship " + id,
		PassengerCapacity: 50,
		MaximumSpeed:      100,
		InStock:           11,
	}
}

func TestGetProduct(t *testing.T) {
	products, _, router := newTestServer(t)
	products.On("Get", mock.Anything, "LZ127").Return(entityProduct("LZ127"), nil)

	rec := doRequest(router, http.MethodGet, "/products/LZ127", "")

	require.Equal(t, http.StatusOK, rec.Code)
	var body ProductPayload
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "LZ127", body.ID)
	assert.Equal(t, "Airship LZ127", body.Title)
	assert.Equal(t, 11, body.InStock)
}

func TestGetProductNotFound(t *testing.T) {
	products, _, router := newTestServer(t)
	products.On("Get", mock.Anything, "no-such-id").
		Return(entity.Product{}, entity.ErrProductNotFound)

	rec := doRequest(router, http.MethodGet, "/products/no-such-id", "")

	require.Equal(t, http.StatusNotFound, rec.Code)
	var body ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "product_not_found", body.Error)
}

func TestGetProductUpstreamFailure(t *testing.T) {
	products, _, router := newTestServer(t)
	products.On("Get", mock.Anything, "LZ127").
		Return(entity.Product{}, errors.New("connection refused"))

	rec := doRequest(router, http.MethodGet, "/products/LZ127", "")

	require.Equal(t, http.StatusBadGateway, rec.Code)
	var body ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "upstream_error", body.Error)
}

func TestCreateProduct(t *testing.T) {
	products, _, router := newTestServer(t)
	products.On("Create", mock.Anything, entityProduct("LZ127")).Return(nil)

	rec := doRequest(router, http.MethodPost, "/products",
		`{"id":"LZ127","title":"Airship LZ127","passenger_capacity":50,"maximum_speed":100,"in_stock":11}`)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"id":"LZ127"}`, rec.Body.String())
	products.AssertExpectations(t)
}

func TestCreateProductInvalidJSON(t *testing.T) {
	products, _, router := newTestServer(t)

	rec := doRequest(router, http.MethodPost, "/products", `{not json`)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	var body ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "invalid_json", body.Error)
	products.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestCreateProductValidation(t *testing.T) {
	products, _, router := newTestServer(t)

	// Missing title, negative stock.
	rec := doRequest(router, http.MethodPost, "/products", `{"id":"LZ127","in_stock":-1}`)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	var body ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "validation_error", body.Error)
	products.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestDeleteProduct(t *testing.T) {
	products, _, router := newTestServer(t)
	products.On("Delete", mock.Anything, "LZ127").Return(nil)

	rec := doRequest(router, http.MethodDelete, "/products/LZ127", "")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"id":"LZ127"}`, rec.Body.String())
}

func TestDeleteProductNotFound(t *testing.T) {
	products, _, router := newTestServer(t)
	products.On("Delete", mock.Anything, "no-such-id").Return(entity.ErrProductNotFound)

	rec := doRequest(router, http.MethodDelete, "/products/no-such-id", "")

	require.Equal(t, http.StatusNotFound, rec.Code)
}

func TestCreateOrder(t *testing.T) {
	products, orders, router := newTestServer(t)
	products.On("GetProductsByID", mock.Anything, []string{"LZ127", "LZ129"}).
		Return([]entity.Product{entityProduct("LZ127"), entityProduct("LZ129")}, nil)
	orders.On("CreateOrder", mock.Anything, []entity.OrderDetail{
		{ProductID: "LZ127", Price: "99.99", Quantity: 1},
		{ProductID: "LZ129", Price: "150.00", Quantity: 2},
	}).Return(int64(42), nil)

	rec := doRequest(router, http.MethodPost, "/orders", `{"order_details":[
		{"product_id":"LZ127","price":"99.99","quantity":1},
		{"product_id":"LZ129","price":"150.00","quantity":2}]}`)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"id":42}`, rec.Body.String())
	products.AssertExpectations(t)
	orders.AssertExpectations(t)
}

func TestCreateOrderDedupesProductLookup(t *testing.T) {
	products, orders, router := newTestServer(t)
	// Two lines referencing the same product produce one id in the batch.
	products.On("GetProductsByID", mock.Anything, []string{"LZ127"}).
		Return([]entity.Product{entityProduct("LZ127")}, nil)
	orders.On("CreateOrder", mock.Anything, mock.Anything).Return(int64(7), nil)

	rec := doRequest(router, http.MethodPost, "/orders", `{"order_details":[
		{"product_id":"LZ127","price":"99.99","quantity":1},
		{"product_id":"LZ127","price":"99.99","quantity":3}]}`)

	require.Equal(t, http.StatusOK, rec.Code)
	products.AssertExpectations(t)
}

func TestCreateOrderMissingProduct(t *testing.T) {
	products, orders, router := newTestServer(t)
	// The batch contract filters the miss; only LZ127 comes back.
	products.On("GetProductsByID", mock.Anything, []string{"LZ127", "no-such-id"}).
		Return([]entity.Product{entityProduct("LZ127")}, nil)

	rec := doRequest(router, http.MethodPost, "/orders", `{"order_details":[
		{"product_id":"LZ127","price":"99.99","quantity":1},
		{"product_id":"no-such-id","price":"5.00","quantity":1}]}`)

	require.Equal(t, http.StatusNotFound, rec.Code)
	var body ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "product_not_found", body.Error)
	assert.Contains(t, body.Message, "no-such-id")
	assert.NotContains(t, body.Message, "LZ127")
	orders.AssertNotCalled(t, "CreateOrder", mock.Anything, mock.Anything)
}

func TestCreateOrderAllProductsMissing(t *testing.T) {
	products, orders, router := newTestServer(t)
	products.On("GetProductsByID", mock.Anything, []string{"x", "y"}).
		Return(nil, entity.ErrProductNotFound)

	rec := doRequest(router, http.MethodPost, "/orders", `{"order_details":[
		{"product_id":"x","price":"1.00","quantity":1},
		{"product_id":"y","price":"2.00","quantity":1}]}`)

	require.Equal(t, http.StatusNotFound, rec.Code)
	var body ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Contains(t, body.Message, "x")
	assert.Contains(t, body.Message, "y")
	orders.AssertNotCalled(t, "CreateOrder", mock.Anything, mock.Anything)
}

func TestCreateOrderEmptyDetails(t *testing.T) {
	products, orders, router := newTestServer(t)

	rec := doRequest(router, http.MethodPost, "/orders", `{"order_details":[]}`)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	products.AssertNotCalled(t, "GetProductsByID", mock.Anything, mock.Anything)
	orders.AssertNotCalled(t, "CreateOrder", mock.Anything, mock.Anything)
}

func TestCreateOrderBadPrice(t *testing.T) {
	_, _, router := newTestServer(t)

	rec := doRequest(router, http.MethodPost, "/orders",
		`{"order_details":[{"product_id":"LZ127","price":"ninety-nine","quantity":1}]}`)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	var body ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "validation_error", body.Error)
}

func TestGetOrderEnriched(t *testing.T) {
	products, orders, router := newTestServer(t)
	orders.On("GetOrder", mock.Anything, int64(42)).Return(&entity.Order{
		ID: 42,
		OrderDetails: []entity.OrderDetail{
			{ProductID: "LZ127", Price: "99.99", Quantity: 1},
		},
	}, nil)
	products.On("GetProductsByID", mock.Anything, []string{"LZ127"}).
		Return([]entity.Product{entityProduct("LZ127")}, nil)

	rec := doRequest(router, http.MethodGet, "/orders/42", "")

	require.Equal(t, http.StatusOK, rec.Code)
	var body OrderResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, int64(42), body.ID)
	require.Len(t, body.OrderDetails, 1)
	line := body.OrderDetails[0]
	require.NotNil(t, line.Product)
	assert.Equal(t, "Airship LZ127", line.Product.Title)
	assert.Equal(t, testImageRoot+"/LZ127.jpg", line.Image)
}

func TestGetOrderKeepsLineForMissingProduct(t *testing.T) {
	products, orders, router := newTestServer(t)
	orders.On("GetOrder", mock.Anything, int64(42)).Return(&entity.Order{
		ID: 42,
		OrderDetails: []entity.OrderDetail{
			{ProductID: "gone", Price: "99.99", Quantity: 1},
		},
	}, nil)
	products.On("GetProductsByID", mock.Anything, []string{"gone"}).
		Return(nil, entity.ErrProductNotFound)

	rec := doRequest(router, http.MethodGet, "/orders/42", "")

	require.Equal(t, http.StatusOK, rec.Code)
	var body OrderResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Len(t, body.OrderDetails, 1)
	assert.Nil(t, body.OrderDetails[0].Product)
	assert.Empty(t, body.OrderDetails[0].Image)
}

func TestGetOrderEnrichmentOutage(t *testing.T) {
	products, orders, router := newTestServer(t)
	orders.On("GetOrder", mock.Anything, int64(42)).Return(&entity.Order{
		ID: 42,
		OrderDetails: []entity.OrderDetail{
			{ProductID: "LZ127", Price: "99.99", Quantity: 1},
		},
	}, nil)
	// A failed products call must fail the read; only genuine lookup
	// misses produce a line with a null product.
	products.On("GetProductsByID", mock.Anything, []string{"LZ127"}).
		Return(nil, errors.New("grpc GetProductsByID: connection refused"))

	rec := doRequest(router, http.MethodGet, "/orders/42", "")

	require.Equal(t, http.StatusBadGateway, rec.Code)
	var body ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "upstream_error", body.Error)
}

func TestGetOrderNotFound(t *testing.T) {
	_, orders, router := newTestServer(t)
	orders.On("GetOrder", mock.Anything, int64(9999)).Return(nil, entity.ErrOrderNotFound)

	rec := doRequest(router, http.MethodGet, "/orders/9999", "")

	require.Equal(t, http.StatusNotFound, rec.Code)
	var body ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "order_not_found", body.Error)
}

func TestGetOrderNonNumericID(t *testing.T) {
	_, orders, router := newTestServer(t)

	rec := doRequest(router, http.MethodGet, "/orders/abc", "")

	require.Equal(t, http.StatusBadRequest, rec.Code)
	orders.AssertNotCalled(t, "GetOrder", mock.Anything, mock.Anything)
}

func TestListOrders(t *testing.T) {
	_, orders, router := newTestServer(t)
	orders.On("ListOrders", mock.Anything, 1, 10).Return([]*entity.Order{
		{ID: 1, OrderDetails: []entity.OrderDetail{{ProductID: "LZ127", Price: "99.99", Quantity: 1}}},
		{ID: 2, OrderDetails: []entity.OrderDetail{{ProductID: "LZ129", Price: "150.00", Quantity: 2}}},
	}, nil)

	rec := doRequest(router, http.MethodGet, "/orders", "")

	require.Equal(t, http.StatusOK, rec.Code)
	var body []OrderResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Len(t, body, 2)
	// The list path never enriches.
	assert.Nil(t, body[0].OrderDetails[0].Product)
}

func TestListOrdersClampsPaging(t *testing.T) {
	_, orders, router := newTestServer(t)
	orders.On("ListOrders", mock.Anything, 1, 10).Return([]*entity.Order{}, nil)

	rec := doRequest(router, http.MethodGet, "/orders?page=0&limit=50", "")

	require.Equal(t, http.StatusOK, rec.Code)
	orders.AssertExpectations(t)
}

func TestListOrdersNonNumericPage(t *testing.T) {
	_, orders, router := newTestServer(t)

	rec := doRequest(router, http.MethodGet, "/orders?page=abc", "")

	require.Equal(t, http.StatusBadRequest, rec.Code)
	orders.AssertNotCalled(t, "ListOrders", mock.Anything, mock.Anything, mock.Anything)
}
