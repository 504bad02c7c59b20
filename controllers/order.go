package controllers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"

	"github.com/krisdinakr/belle-catalog/logger"
	"github.com/krisdinakr/belle-catalog/middleware"
	"github.com/krisdinakr/belle-catalog/models"
	"github.com/krisdinakr/belle-catalog/services"
	"github.com/krisdinakr/belle-catalog/utils"
)

// OrderPlacer runs the checkout transaction
type OrderPlacer interface {
	PlaceOrder(ctx context.Context, params services.CheckoutParams) (*models.Order, error)
}

// OrderReader lists a user's orders with referenced documents populated
type OrderReader interface {
	GetByUserID(ctx context.Context, userID primitive.ObjectID) ([]models.ResolvedOrder, error)
}

// ConfirmationSender mails an order confirmation
type ConfirmationSender interface {
	SendOrderConfirmationEmail(toEmail string, order models.Order) error
}

// OrderController handles order listing and placement
type OrderController struct {
	Checkout OrderPlacer
	Orders   OrderReader
	Email    ConfirmationSender
}

func NewOrderController(checkout OrderPlacer, orders OrderReader, email ConfirmationSender) *OrderController {
	return &OrderController{Checkout: checkout, Orders: orders, Email: email}
}

// GetOrders returns the caller's orders
func (oc *OrderController) GetOrders(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.UserFromContext(r.Context())
	if !ok {
		utils.RespondError(w, http.StatusNotFound)
		return
	}

	orders, err := oc.Orders.GetByUserID(r.Context(), user.User.ID)
	if err != nil {
		logger.Error("order listing failed", zap.Error(err))
		utils.RespondError(w, http.StatusInternalServerError)
		return
	}

	utils.RespondData(w, http.StatusOK, orders)
}

type orderPayload struct {
	CartID     []string `json:"cartId"`
	TotalPrice float64  `json:"totalPrice"`
}

// CreateOrder converts the supplied cart lines into an order. The request
// must carry a non-zero totalPrice; an empty or stale cartId list resolves to
// no lines and fails with 404.
func (oc *OrderController) CreateOrder(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.UserFromContext(r.Context())
	if !ok {
		utils.RespondError(w, http.StatusNotFound)
		return
	}

	var payload orderPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil || payload.TotalPrice == 0 {
		utils.RespondError(w, http.StatusBadRequest)
		return
	}

	cartIDs := make([]primitive.ObjectID, 0, len(payload.CartID))
	for _, hex := range payload.CartID {
		id, err := primitive.ObjectIDFromHex(hex)
		if err != nil {
			utils.RespondError(w, http.StatusBadRequest)
			return
		}
		cartIDs = append(cartIDs, id)
	}

	order, err := oc.Checkout.PlaceOrder(r.Context(), services.CheckoutParams{
		UserID:     user.User.ID,
		CartIDs:    cartIDs,
		TotalPrice: payload.TotalPrice,
	})
	if err != nil {
		switch {
		case errors.Is(err, services.ErrCartNotFound):
			utils.RespondError(w, http.StatusNotFound)
		case errors.Is(err, services.ErrNoDefaultAddress):
			utils.RespondErrorMessage(w, http.StatusBadRequest, services.ErrNoDefaultAddress.Error())
		case errors.Is(err, services.ErrInsufficientStock):
			utils.RespondErrorMessage(w, http.StatusBadRequest, services.ErrInsufficientStock.Error())
		default:
			logger.Error("checkout failed", zap.Error(err), zap.String("user", user.User.ID.Hex()))
			utils.RespondError(w, http.StatusInternalServerError)
		}
		return
	}

	if oc.Email != nil {
		if err := oc.Email.SendOrderConfirmationEmail(user.User.Email, *order); err != nil {
			logger.Warn("order confirmation email failed", zap.Error(err), zap.String("email", user.User.Email))
		}
	}

	utils.RespondData(w, http.StatusCreated, order)
}
