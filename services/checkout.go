package services

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"

	"github.com/krisdinakr/belle-catalog/models"
	"github.com/krisdinakr/belle-catalog/utils"
)

// deliveryOffsetDays is the fixed estimate added to the checkout time to
// compute deliveredDate.
const deliveryOffsetDays = 7

// CartResolver loads cart lines by id with combination and product populated.
type CartResolver interface {
	GetManyByCartID(ctx context.Context, cartIDs []primitive.ObjectID) ([]models.ResolvedCart, error)
	Delete(ctx context.Context, cartID primitive.ObjectID) error
}

// StockAdjuster persists combination stock levels.
type StockAdjuster interface {
	SetStock(ctx context.Context, id primitive.ObjectID, stock int) error
}

// ShippingResolver selects a user's default delivery address.
type ShippingResolver interface {
	DefaultByUserID(ctx context.Context, userID primitive.ObjectID) (*models.Address, error)
}

// OrderStore persists assembled orders.
type OrderStore interface {
	Create(ctx context.Context, order *models.Order) error
}

// CheckoutParams is the validated input of a checkout request. TotalPrice is
// caller-supplied and stored as-is; a mismatch against the computed item sum
// is logged but does not fail the checkout.
type CheckoutParams struct {
	UserID     primitive.ObjectID
	CartIDs    []primitive.ObjectID
	TotalPrice float64
}

// CheckoutService converts cart lines into a persisted order inside a single
// data-store transaction: per line it adjusts stock, deletes the line and
// appends a price snapshot, then resolves the default shipping address and
// inserts the order. Any failure aborts the whole transaction, leaving cart
// and stock untouched.
//
// Checkout is not idempotent. A stale retry after a committed request finds
// its cart lines already deleted and fails with ErrCartNotFound instead of
// charging stock twice.
type CheckoutService struct {
	tx        TxRunner
	carts     CartResolver
	stock     StockAdjuster
	addresses ShippingResolver
	orders    OrderStore
	log       *zap.Logger
}

func NewCheckoutService(tx TxRunner, carts CartResolver, stock StockAdjuster, addresses ShippingResolver, orders OrderStore, log *zap.Logger) *CheckoutService {
	return &CheckoutService{
		tx:        tx,
		carts:     carts,
		stock:     stock,
		addresses: addresses,
		orders:    orders,
		log:       log,
	}
}

// PlaceOrder runs the checkout transaction and returns the created order.
// Lines are processed sequentially in the order the cart ids were supplied.
func (s *CheckoutService) PlaceOrder(ctx context.Context, params CheckoutParams) (*models.Order, error) {
	var order *models.Order

	err := s.tx.RunTransaction(ctx, func(ctx context.Context) error {
		carts, err := s.carts.GetManyByCartID(ctx, params.CartIDs)
		if err != nil {
			return err
		}
		if len(carts) == 0 {
			return ErrCartNotFound
		}

		products := make([]models.ProductItem, 0, len(carts))
		for _, cart := range carts {
			if cart.Quantity > cart.Combination.Stock {
				return ErrInsufficientStock
			}
			stock := cart.Combination.Stock - cart.Quantity
			if err := s.stock.SetStock(ctx, cart.Combination.ID, stock); err != nil {
				return err
			}
			if err := s.carts.Delete(ctx, cart.ID); err != nil {
				return err
			}
			products = append(products, BuildProductItem(cart))
		}

		shipping, err := s.addresses.DefaultByUserID(ctx, params.UserID)
		if err != nil {
			return err
		}

		if sum := SumItemPrices(products); sum != params.TotalPrice {
			s.log.Warn("checkout total differs from computed item sum",
				zap.Float64("totalPrice", params.TotalPrice),
				zap.Float64("computed", sum),
				zap.String("user", params.UserID.Hex()),
			)
		}

		deliveredDate := utils.EpochMillis(utils.CreateDateAddDaysFromNow(deliveryOffsetDays))

		order = &models.Order{
			User:          params.UserID,
			Products:      products,
			TotalPrice:    params.TotalPrice,
			Shipping:      shipping.ID,
			DeliveredDate: deliveredDate,
			State:         models.OrderStateAwaitingShipment,
			ReferenceCode: uuid.NewString(),
			CreatedAt:     time.Now(),
		}
		return s.orders.Create(ctx, order)
	})
	if err != nil {
		return nil, err
	}
	return order, nil
}
