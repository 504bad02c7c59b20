package controllers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gorilla/mux"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"

	"github.com/krisdinakr/belle-catalog/logger"
	"github.com/krisdinakr/belle-catalog/models"
	"github.com/krisdinakr/belle-catalog/services"
	"github.com/krisdinakr/belle-catalog/utils"
)

// BrandController handles brand catalog requests
type BrandController struct {
	Brands *services.BrandService
}

func NewBrandController(brands *services.BrandService) *BrandController {
	return &BrandController{Brands: brands}
}

// GetAll returns every brand
func (bc *BrandController) GetAll(w http.ResponseWriter, r *http.Request) {
	brands, err := bc.Brands.GetAll(r.Context())
	if err != nil {
		logger.Error("brand listing failed", zap.Error(err))
		utils.RespondError(w, http.StatusInternalServerError)
		return
	}
	utils.RespondData(w, http.StatusOK, brands)
}

// GetByID returns one brand
func (bc *BrandController) GetByID(w http.ResponseWriter, r *http.Request) {
	id, err := primitive.ObjectIDFromHex(mux.Vars(r)["id"])
	if err != nil {
		utils.RespondError(w, http.StatusBadRequest)
		return
	}

	brand, err := bc.Brands.GetByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			utils.RespondError(w, http.StatusNotFound)
			return
		}
		logger.Error("brand lookup failed", zap.Error(err))
		utils.RespondError(w, http.StatusInternalServerError)
		return
	}
	utils.RespondData(w, http.StatusOK, brand)
}

type brandPayload struct {
	Name          string `json:"name"`
	Logo          string `json:"logo"`
	Description   string `json:"description"`
	DesktopBanner string `json:"desktopBanner"`
	MobileBanner  string `json:"mobileBanner"`
}

// Create adds a brand (admin)
func (bc *BrandController) Create(w http.ResponseWriter, r *http.Request) {
	var payload brandPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil || payload.Name == "" {
		utils.RespondError(w, http.StatusBadRequest)
		return
	}

	brand := &models.Brand{
		Name:          payload.Name,
		Logo:          payload.Logo,
		Description:   payload.Description,
		DesktopBanner: payload.DesktopBanner,
		MobileBanner:  payload.MobileBanner,
	}
	if err := bc.Brands.Create(r.Context(), brand); err != nil {
		logger.Error("brand insert failed", zap.Error(err))
		utils.RespondError(w, http.StatusBadRequest)
		return
	}

	utils.RespondData(w, http.StatusCreated, brand)
}

// UpdateByID updates a brand's presentation fields (admin)
func (bc *BrandController) UpdateByID(w http.ResponseWriter, r *http.Request) {
	id, err := primitive.ObjectIDFromHex(mux.Vars(r)["id"])
	if err != nil {
		utils.RespondError(w, http.StatusBadRequest)
		return
	}

	var payload brandPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		utils.RespondError(w, http.StatusBadRequest)
		return
	}

	brand := &models.Brand{
		Logo:          payload.Logo,
		Description:   payload.Description,
		DesktopBanner: payload.DesktopBanner,
		MobileBanner:  payload.MobileBanner,
	}
	if err := bc.Brands.UpdateByID(r.Context(), id, brand); err != nil {
		logger.Error("brand update failed", zap.Error(err))
		utils.RespondError(w, http.StatusBadRequest)
		return
	}

	utils.RespondJSON(w, http.StatusOK, utils.Response{Message: http.StatusText(http.StatusOK)})
}

// DeleteByID removes a brand (admin)
func (bc *BrandController) DeleteByID(w http.ResponseWriter, r *http.Request) {
	id, err := primitive.ObjectIDFromHex(mux.Vars(r)["id"])
	if err != nil {
		utils.RespondError(w, http.StatusBadRequest)
		return
	}

	if err := bc.Brands.DeleteByID(r.Context(), id); err != nil {
		logger.Error("brand delete failed", zap.Error(err))
		utils.RespondError(w, http.StatusBadRequest)
		return
	}

	utils.RespondJSON(w, http.StatusOK, utils.Response{Message: http.StatusText(http.StatusOK)})
}
