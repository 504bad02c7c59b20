package controllers

import (
	"encoding/json"
	"net/http"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"

	"github.com/krisdinakr/belle-catalog/logger"
	"github.com/krisdinakr/belle-catalog/middleware"
	"github.com/krisdinakr/belle-catalog/models"
	"github.com/krisdinakr/belle-catalog/services"
	"github.com/krisdinakr/belle-catalog/utils"
)

// UserController handles profile and address requests
type UserController struct {
	Addresses *services.AddressService
}

func NewUserController(addresses *services.AddressService) *UserController {
	return &UserController{Addresses: addresses}
}

// Me returns the caller's profile
func (uc *UserController) Me(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.UserFromContext(r.Context())
	if !ok {
		utils.RespondError(w, http.StatusNotFound)
		return
	}

	utils.RespondData(w, http.StatusOK, map[string]interface{}{
		"id":        user.User.ID,
		"email":     user.User.Email,
		"firstName": user.User.FirstName,
		"lastName":  user.User.LastName,
		"verified":  user.User.Verified,
	})
}

// GetAddresses returns the caller's non-deleted addresses
func (uc *UserController) GetAddresses(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.UserFromContext(r.Context())
	if !ok {
		utils.RespondError(w, http.StatusNotFound)
		return
	}

	addresses, err := uc.Addresses.GetByUserID(r.Context(), user.User.ID)
	if err != nil {
		logger.Error("address listing failed", zap.Error(err))
		utils.RespondError(w, http.StatusInternalServerError)
		return
	}

	utils.RespondData(w, http.StatusOK, addresses)
}

type addressPayload struct {
	Action        string `json:"action"` // add | update | delete
	ID            string `json:"id,omitempty"`
	City          string `json:"city"`
	Country       string `json:"country"`
	District      string `json:"district"`
	Street        string `json:"street"`
	Province      string `json:"province"`
	PostalCode    string `json:"postalCode"`
	Name          string `json:"name"`
	RecipientName string `json:"recipientName"`
	Phone         string `json:"phone"`
	IsDefault     bool   `json:"isDefault"`
}

// MutateAddress adds, updates or soft-deletes one of the caller's addresses
// depending on the payload action
func (uc *UserController) MutateAddress(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.UserFromContext(r.Context())
	if !ok {
		utils.RespondError(w, http.StatusNotFound)
		return
	}

	var payload addressPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		utils.RespondError(w, http.StatusBadRequest)
		return
	}

	address := &models.Address{
		User:          user.User.ID,
		City:          payload.City,
		Country:       payload.Country,
		District:      payload.District,
		Street:        payload.Street,
		Province:      payload.Province,
		PostalCode:    payload.PostalCode,
		Name:          payload.Name,
		RecipientName: payload.RecipientName,
		Phone:         payload.Phone,
		IsDefault:     payload.IsDefault,
	}

	var err error
	switch payload.Action {
	case "add":
		err = uc.Addresses.Create(r.Context(), address)
	case "update", "delete":
		var addressID primitive.ObjectID
		addressID, err = primitive.ObjectIDFromHex(payload.ID)
		if err != nil {
			utils.RespondError(w, http.StatusBadRequest)
			return
		}
		if payload.Action == "update" {
			err = uc.Addresses.UpdateByID(r.Context(), addressID, address)
		} else {
			err = uc.Addresses.DeleteByID(r.Context(), addressID)
		}
	default:
		utils.RespondError(w, http.StatusBadRequest)
		return
	}

	if err != nil {
		logger.Error("address mutation failed", zap.Error(err), zap.String("action", payload.Action))
		utils.RespondError(w, http.StatusInternalServerError)
		return
	}

	utils.RespondData(w, http.StatusOK, address)
}
