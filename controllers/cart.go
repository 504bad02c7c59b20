package controllers

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"

	"github.com/krisdinakr/belle-catalog/logger"
	"github.com/krisdinakr/belle-catalog/middleware"
	"github.com/krisdinakr/belle-catalog/models"
	"github.com/krisdinakr/belle-catalog/services"
	"github.com/krisdinakr/belle-catalog/utils"
)

// CartController handles the caller's cart lines
type CartController struct {
	Carts *services.CartService
}

func NewCartController(carts *services.CartService) *CartController {
	return &CartController{Carts: carts}
}

// GetCart returns the caller's cart lines with product and combination
// populated
func (cc *CartController) GetCart(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.UserFromContext(r.Context())
	if !ok {
		utils.RespondError(w, http.StatusNotFound)
		return
	}

	carts, err := cc.Carts.GetByUserID(r.Context(), user.User.ID)
	if err != nil {
		logger.Error("cart listing failed", zap.Error(err))
		utils.RespondError(w, http.StatusInternalServerError)
		return
	}

	utils.RespondData(w, http.StatusOK, carts)
}

type cartPayload struct {
	Action      string `json:"action"` // add | plus | minus
	ID          string `json:"id,omitempty"`
	Product     string `json:"product,omitempty"`
	Combination string `json:"combination"`
	Quantity    int    `json:"quantity"`
}

// UpdateCart adds a line or adjusts an existing line's quantity. A minus that
// reaches zero removes the line.
func (cc *CartController) UpdateCart(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.UserFromContext(r.Context())
	if !ok {
		utils.RespondError(w, http.StatusNotFound)
		return
	}

	var payload cartPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil || payload.Quantity <= 0 {
		utils.RespondError(w, http.StatusBadRequest)
		return
	}

	switch payload.Action {
	case "add":
		cc.addLine(w, r, user, payload)
	case "plus", "minus":
		cc.adjustLine(w, r, payload)
	default:
		utils.RespondError(w, http.StatusBadRequest)
	}
}

func (cc *CartController) addLine(w http.ResponseWriter, r *http.Request, user *middleware.UserContext, payload cartPayload) {
	productID, err := primitive.ObjectIDFromHex(payload.Product)
	if err != nil {
		utils.RespondError(w, http.StatusBadRequest)
		return
	}
	combinationID, err := primitive.ObjectIDFromHex(payload.Combination)
	if err != nil {
		utils.RespondError(w, http.StatusBadRequest)
		return
	}

	// Adding an already-carted combination folds into the existing line
	existing, err := cc.Carts.GetByProductAndCombination(r.Context(), user.User.ID, productID, combinationID)
	if err != nil {
		logger.Error("cart lookup failed", zap.Error(err))
		utils.RespondError(w, http.StatusInternalServerError)
		return
	}
	if existing != nil {
		if err := cc.Carts.UpdateQuantity(r.Context(), existing.ID, existing.Quantity+payload.Quantity); err != nil {
			logger.Error("cart update failed", zap.Error(err))
			utils.RespondError(w, http.StatusInternalServerError)
			return
		}
		existing.Quantity += payload.Quantity
		utils.RespondData(w, http.StatusOK, existing)
		return
	}

	cart := &models.Cart{
		User:        user.User.ID,
		Product:     productID,
		Combination: combinationID,
		Quantity:    payload.Quantity,
	}
	if err := cc.Carts.Create(r.Context(), cart); err != nil {
		logger.Error("cart insert failed", zap.Error(err))
		utils.RespondError(w, http.StatusInternalServerError)
		return
	}

	utils.RespondData(w, http.StatusCreated, cart)
}

func (cc *CartController) adjustLine(w http.ResponseWriter, r *http.Request, payload cartPayload) {
	cartID, err := primitive.ObjectIDFromHex(payload.ID)
	if err != nil {
		utils.RespondError(w, http.StatusBadRequest)
		return
	}

	quantity := payload.Quantity
	if payload.Action == "minus" {
		quantity = -quantity
	}

	existing, err := cc.Carts.GetByID(r.Context(), cartID)
	if err != nil {
		utils.RespondError(w, http.StatusNotFound)
		return
	}

	newQuantity := existing.Quantity + quantity
	if newQuantity <= 0 {
		if err := cc.Carts.Delete(r.Context(), cartID); err != nil {
			logger.Error("cart delete failed", zap.Error(err))
			utils.RespondError(w, http.StatusInternalServerError)
			return
		}
		utils.RespondJSON(w, http.StatusOK, utils.Response{Message: http.StatusText(http.StatusOK)})
		return
	}

	if err := cc.Carts.UpdateQuantity(r.Context(), cartID, newQuantity); err != nil {
		logger.Error("cart update failed", zap.Error(err))
		utils.RespondError(w, http.StatusInternalServerError)
		return
	}

	existing.Quantity = newQuantity
	utils.RespondData(w, http.StatusOK, existing)
}

// DeleteOneCart removes a single cart line by path id
func (cc *CartController) DeleteOneCart(w http.ResponseWriter, r *http.Request) {
	cartID, err := primitive.ObjectIDFromHex(mux.Vars(r)["id"])
	if err != nil {
		utils.RespondError(w, http.StatusBadRequest)
		return
	}

	if err := cc.Carts.Delete(r.Context(), cartID); err != nil {
		logger.Error("cart delete failed", zap.Error(err))
		utils.RespondError(w, http.StatusInternalServerError)
		return
	}

	utils.RespondJSON(w, http.StatusOK, utils.Response{Message: http.StatusText(http.StatusOK)})
}

// DeleteAllCart clears the caller's cart
func (cc *CartController) DeleteAllCart(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.UserFromContext(r.Context())
	if !ok {
		utils.RespondError(w, http.StatusNotFound)
		return
	}

	if err := cc.Carts.DeleteByUserID(r.Context(), user.User.ID); err != nil {
		logger.Error("cart clear failed", zap.Error(err))
		utils.RespondError(w, http.StatusInternalServerError)
		return
	}

	utils.RespondJSON(w, http.StatusOK, utils.Response{Message: http.StatusText(http.StatusOK)})
}
