package controllers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/krisdinakr/belle-catalog/middleware"
	"github.com/krisdinakr/belle-catalog/models"
	"github.com/krisdinakr/belle-catalog/services"
	"github.com/krisdinakr/belle-catalog/utils"
)

type MockOrderPlacer struct {
	mock.Mock
}

func (m *MockOrderPlacer) PlaceOrder(ctx context.Context, params services.CheckoutParams) (*models.Order, error) {
	args := m.Called(ctx, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Order), args.Error(1)
}

type MockOrderReader struct {
	mock.Mock
}

func (m *MockOrderReader) GetByUserID(ctx context.Context, userID primitive.ObjectID) ([]models.ResolvedOrder, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.ResolvedOrder), args.Error(1)
}

func authedRequest(method, target string, body []byte, user *models.User) *http.Request {
	req := httptest.NewRequest(method, target, bytes.NewReader(body))
	ctx := context.WithValue(req.Context(), middleware.UserContextKey, &middleware.UserContext{User: user})
	return req.WithContext(ctx)
}

func decodeEnvelope(t *testing.T, rec *httptest.ResponseRecorder) utils.Response {
	t.Helper()
	var resp utils.Response
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	return resp
}

func TestCreateOrderReturnsCreated(t *testing.T) {
	user := &models.User{ID: primitive.NewObjectID()}
	cartID := primitive.NewObjectID()

	placer := new(MockOrderPlacer)
	placer.On("PlaceOrder", mock.Anything, services.CheckoutParams{
		UserID:     user.ID,
		CartIDs:    []primitive.ObjectID{cartID},
		TotalPrice: 45,
	}).Return(&models.Order{
		ID:    primitive.NewObjectID(),
		User:  user.ID,
		State: models.OrderStateAwaitingShipment,
	}, nil)

	oc := NewOrderController(placer, new(MockOrderReader), nil)

	body, _ := json.Marshal(map[string]interface{}{
		"cartId":     []string{cartID.Hex()},
		"totalPrice": 45,
	})
	rec := httptest.NewRecorder()
	oc.CreateOrder(rec, authedRequest(http.MethodPost, "/api/orders", body, user))

	assert.Equal(t, http.StatusCreated, rec.Code)
	resp := decodeEnvelope(t, rec)
	assert.False(t, resp.Error)
	assert.NotNil(t, resp.Data)
	placer.AssertExpectations(t)
}

func TestCreateOrderRejectsEmptyPayload(t *testing.T) {
	user := &models.User{ID: primitive.NewObjectID()}
	placer := new(MockOrderPlacer)
	oc := NewOrderController(placer, new(MockOrderReader), nil)

	cases := []map[string]interface{}{
		{"cartId": []string{primitive.NewObjectID().Hex()}, "totalPrice": 0},
		{"cartId": []string{"not-an-object-id"}, "totalPrice": 45},
	}
	for _, payload := range cases {
		body, _ := json.Marshal(payload)
		rec := httptest.NewRecorder()
		oc.CreateOrder(rec, authedRequest(http.MethodPost, "/api/orders", body, user))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	}
	placer.AssertNotCalled(t, "PlaceOrder", mock.Anything, mock.Anything)
}

func TestCreateOrderEmptyCartList(t *testing.T) {
	user := &models.User{ID: primitive.NewObjectID()}

	// An empty cart-id list is not a validation error: it resolves to no
	// lines and the checkout fails with not-found.
	placer := new(MockOrderPlacer)
	placer.On("PlaceOrder", mock.Anything, services.CheckoutParams{
		UserID:     user.ID,
		CartIDs:    []primitive.ObjectID{},
		TotalPrice: 45,
	}).Return(nil, services.ErrCartNotFound)

	oc := NewOrderController(placer, new(MockOrderReader), nil)

	body, _ := json.Marshal(map[string]interface{}{
		"cartId":     []string{},
		"totalPrice": 45,
	})
	rec := httptest.NewRecorder()
	oc.CreateOrder(rec, authedRequest(http.MethodPost, "/api/orders", body, user))

	assert.Equal(t, http.StatusNotFound, rec.Code)
	placer.AssertExpectations(t)
}

func TestCreateOrderWithoutUserContext(t *testing.T) {
	oc := NewOrderController(new(MockOrderPlacer), new(MockOrderReader), nil)

	body, _ := json.Marshal(map[string]interface{}{
		"cartId":     []string{primitive.NewObjectID().Hex()},
		"totalPrice": 45,
	})
	rec := httptest.NewRecorder()
	oc.CreateOrder(rec, httptest.NewRequest(http.MethodPost, "/api/orders", bytes.NewReader(body)))

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestCreateOrderMapsCheckoutErrors(t *testing.T) {
	user := &models.User{ID: primitive.NewObjectID()}

	cases := []struct {
		err        error
		wantStatus int
	}{
		{services.ErrCartNotFound, http.StatusNotFound},
		{services.ErrNoDefaultAddress, http.StatusBadRequest},
		{services.ErrInsufficientStock, http.StatusBadRequest},
		{errors.New("transaction aborted"), http.StatusInternalServerError},
	}
	for _, c := range cases {
		placer := new(MockOrderPlacer)
		placer.On("PlaceOrder", mock.Anything, mock.Anything).Return(nil, c.err)
		oc := NewOrderController(placer, new(MockOrderReader), nil)

		body, _ := json.Marshal(map[string]interface{}{
			"cartId":     []string{primitive.NewObjectID().Hex()},
			"totalPrice": 45,
		})
		rec := httptest.NewRecorder()
		oc.CreateOrder(rec, authedRequest(http.MethodPost, "/api/orders", body, user))

		assert.Equal(t, c.wantStatus, rec.Code, "error %v", c.err)
		resp := decodeEnvelope(t, rec)
		assert.True(t, resp.Error)
	}
}

func TestGetOrders(t *testing.T) {
	user := &models.User{ID: primitive.NewObjectID()}

	reader := new(MockOrderReader)
	reader.On("GetByUserID", mock.Anything, user.ID).Return([]models.ResolvedOrder{
		{ID: primitive.NewObjectID(), State: models.OrderStateAwaitingShipment},
	}, nil)
	oc := NewOrderController(new(MockOrderPlacer), reader, nil)

	rec := httptest.NewRecorder()
	oc.GetOrders(rec, authedRequest(http.MethodGet, "/api/orders", nil, user))

	assert.Equal(t, http.StatusOK, rec.Code)
	resp := decodeEnvelope(t, rec)
	assert.False(t, resp.Error)
	reader.AssertExpectations(t)
}

func TestGetOrdersReadFailure(t *testing.T) {
	user := &models.User{ID: primitive.NewObjectID()}

	reader := new(MockOrderReader)
	reader.On("GetByUserID", mock.Anything, user.ID).Return(nil, errors.New("aggregation failed"))
	oc := NewOrderController(new(MockOrderPlacer), reader, nil)

	rec := httptest.NewRecorder()
	oc.GetOrders(rec, authedRequest(http.MethodGet, "/api/orders", nil, user))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}
