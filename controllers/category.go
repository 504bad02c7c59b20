package controllers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/gorilla/mux"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"

	"github.com/krisdinakr/belle-catalog/logger"
	"github.com/krisdinakr/belle-catalog/models"
	"github.com/krisdinakr/belle-catalog/services"
	"github.com/krisdinakr/belle-catalog/utils"
)

// rootCategorySlug anchors the storefront category tree
const rootCategorySlug = "shop-by-category"

// CategoryController handles category catalog requests
type CategoryController struct {
	Categories *services.CategoryService
	Brands     *services.BrandService
	Products   *services.ProductService
}

func NewCategoryController(categories *services.CategoryService, brands *services.BrandService, products *services.ProductService) *CategoryController {
	return &CategoryController{Categories: categories, Brands: brands, Products: products}
}

// GetAll returns every category
func (cc *CategoryController) GetAll(w http.ResponseWriter, r *http.Request) {
	categories, err := cc.Categories.GetAll(r.Context())
	if err != nil {
		logger.Error("category listing failed", zap.Error(err))
		utils.RespondError(w, http.StatusInternalServerError)
		return
	}
	utils.RespondData(w, http.StatusOK, categories)
}

// GetChildren returns the named category with its resolved descendant tree.
// The filter query parameter carries a JSON object {"name": ...}.
func (cc *CategoryController) GetChildren(w http.ResponseWriter, r *http.Request) {
	filter := r.URL.Query().Get("filter")
	if filter == "" {
		utils.RespondError(w, http.StatusBadRequest)
		return
	}

	var objFilter struct {
		Name string `json:"name"`
	}
	if err := json.Unmarshal([]byte(filter), &objFilter); err != nil || objFilter.Name == "" {
		utils.RespondError(w, http.StatusBadRequest)
		return
	}

	category, err := cc.Categories.GetOneByName(r.Context(), strings.ToLower(objFilter.Name))
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			utils.RespondError(w, http.StatusNotFound)
			return
		}
		logger.Error("category lookup failed", zap.Error(err))
		utils.RespondError(w, http.StatusInternalServerError)
		return
	}

	descendants, err := cc.Categories.GetByParent(r.Context(), category.ID)
	if err != nil {
		logger.Error("category children lookup failed", zap.Error(err))
		utils.RespondError(w, http.StatusInternalServerError)
		return
	}

	utils.RespondData(w, http.StatusOK, map[string]interface{}{
		"_id":      category.ID,
		"name":     category.Name,
		"slug":     category.Slug,
		"children": services.BuildCategoryTree(descendants, category.ID, 1),
	})
}

// GetByBrand returns the subtree of the root category covered by a brand's
// products, identified by the brand query parameter (a slug)
func (cc *CategoryController) GetByBrand(w http.ResponseWriter, r *http.Request) {
	slug := r.URL.Query().Get("brand")
	if slug == "" {
		utils.RespondError(w, http.StatusBadRequest)
		return
	}

	brand, err := cc.Brands.GetBySlug(r.Context(), slug)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			utils.RespondError(w, http.StatusNotFound)
			return
		}
		logger.Error("brand lookup failed", zap.Error(err))
		utils.RespondError(w, http.StatusInternalServerError)
		return
	}

	root, err := cc.Categories.GetBySlug(r.Context(), rootCategorySlug)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			utils.RespondData(w, http.StatusOK, []services.CategoryNode{})
			return
		}
		logger.Error("category lookup failed", zap.Error(err))
		utils.RespondError(w, http.StatusInternalServerError)
		return
	}

	categoryIDs, err := cc.Products.DistinctCategoryIDs(r.Context(), brand.ID)
	if err != nil {
		logger.Error("category collection failed", zap.Error(err), zap.String("brand", slug))
		utils.RespondError(w, http.StatusInternalServerError)
		return
	}
	categories, err := cc.Categories.GetByIDs(r.Context(), categoryIDs)
	if err != nil {
		logger.Error("category lookup failed", zap.Error(err))
		utils.RespondError(w, http.StatusInternalServerError)
		return
	}

	utils.RespondData(w, http.StatusOK, services.BuildCategoryTree(categories, root.ID, 1))
}

type categoryPayload struct {
	Name    string   `json:"name"`
	Parents []string `json:"parents,omitempty"`
}

// Create adds a category (admin)
func (cc *CategoryController) Create(w http.ResponseWriter, r *http.Request) {
	var payload categoryPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil || payload.Name == "" {
		utils.RespondError(w, http.StatusBadRequest)
		return
	}

	parents, err := parseObjectIDs(payload.Parents)
	if err != nil {
		utils.RespondError(w, http.StatusBadRequest)
		return
	}

	category := &models.Category{Name: payload.Name, Parents: parents}
	if err := cc.Categories.Create(r.Context(), category); err != nil {
		logger.Error("category insert failed", zap.Error(err))
		utils.RespondError(w, http.StatusBadRequest)
		return
	}

	utils.RespondData(w, http.StatusCreated, category)
}

// UpdateByID replaces a category's name and parent chain (admin)
func (cc *CategoryController) UpdateByID(w http.ResponseWriter, r *http.Request) {
	id, err := primitive.ObjectIDFromHex(mux.Vars(r)["id"])
	if err != nil {
		utils.RespondError(w, http.StatusBadRequest)
		return
	}

	var payload categoryPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil || payload.Name == "" {
		utils.RespondError(w, http.StatusBadRequest)
		return
	}

	parents, err := parseObjectIDs(payload.Parents)
	if err != nil {
		utils.RespondError(w, http.StatusBadRequest)
		return
	}

	if err := cc.Categories.UpdateByID(r.Context(), id, payload.Name, parents); err != nil {
		logger.Error("category update failed", zap.Error(err))
		utils.RespondError(w, http.StatusBadRequest)
		return
	}

	utils.RespondJSON(w, http.StatusOK, utils.Response{Message: http.StatusText(http.StatusOK)})
}

// DeleteByID removes a category (admin)
func (cc *CategoryController) DeleteByID(w http.ResponseWriter, r *http.Request) {
	id, err := primitive.ObjectIDFromHex(mux.Vars(r)["id"])
	if err != nil {
		utils.RespondError(w, http.StatusBadRequest)
		return
	}

	if err := cc.Categories.DeleteByID(r.Context(), id); err != nil {
		logger.Error("category delete failed", zap.Error(err))
		utils.RespondError(w, http.StatusBadRequest)
		return
	}

	utils.RespondJSON(w, http.StatusOK, utils.Response{Message: http.StatusText(http.StatusOK)})
}

func parseObjectIDs(hexes []string) ([]primitive.ObjectID, error) {
	ids := make([]primitive.ObjectID, 0, len(hexes))
	for _, hex := range hexes {
		id, err := primitive.ObjectIDFromHex(hex)
		if err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, nil
}
