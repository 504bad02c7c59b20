package controllers

import (
	"context"
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

// collectionsLimit is how many latest products the collections endpoint returns
const collectionsLimit = 4

// ProductController handles product catalog and search requests
type ProductController struct {
	Products     *services.ProductService
	Brands       *services.BrandService
	Categories   *services.CategoryService
	Combinations *services.CombinationService
	Tx           services.TxRunner
}

func NewProductController(products *services.ProductService, brands *services.BrandService, categories *services.CategoryService, combinations *services.CombinationService, tx services.TxRunner) *ProductController {
	return &ProductController{
		Products:     products,
		Brands:       brands,
		Categories:   categories,
		Combinations: combinations,
		Tx:           tx,
	}
}

// GetAll returns every product with brand and combinations populated
func (pc *ProductController) GetAll(w http.ResponseWriter, r *http.Request) {
	products, err := pc.Products.GetAll(r.Context())
	if err != nil {
		logger.Error("product listing failed", zap.Error(err))
		utils.RespondError(w, http.StatusInternalServerError)
		return
	}
	utils.RespondData(w, http.StatusOK, products)
}

// GetByID returns one product
func (pc *ProductController) GetByID(w http.ResponseWriter, r *http.Request) {
	id, err := primitive.ObjectIDFromHex(mux.Vars(r)["id"])
	if err != nil {
		utils.RespondError(w, http.StatusBadRequest)
		return
	}

	product, err := pc.Products.GetByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			utils.RespondError(w, http.StatusNotFound)
			return
		}
		logger.Error("product lookup failed", zap.Error(err))
		utils.RespondError(w, http.StatusInternalServerError)
		return
	}
	utils.RespondData(w, http.StatusOK, product)
}

// GetBySlug returns one product by slug
func (pc *ProductController) GetBySlug(w http.ResponseWriter, r *http.Request) {
	product, err := pc.Products.GetBySlug(r.Context(), mux.Vars(r)["slug"])
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			utils.RespondError(w, http.StatusNotFound)
			return
		}
		logger.Error("product lookup failed", zap.Error(err))
		utils.RespondError(w, http.StatusInternalServerError)
		return
	}
	utils.RespondData(w, http.StatusOK, product)
}

// GetCollections returns the latest products
func (pc *ProductController) GetCollections(w http.ResponseWriter, r *http.Request) {
	products, err := pc.Products.GetLatest(r.Context(), collectionsLimit)
	if err != nil {
		logger.Error("collections listing failed", zap.Error(err))
		utils.RespondError(w, http.StatusInternalServerError)
		return
	}
	utils.RespondData(w, http.StatusOK, products)
}

// Search filters products by name, brand and category. The filter query
// parameter carries a JSON object.
func (pc *ProductController) Search(w http.ResponseWriter, r *http.Request) {
	var objFilter struct {
		Name       string   `json:"name"`
		Brands     []string `json:"brands"`
		Categories []string `json:"categories"`
	}
	if filter := r.URL.Query().Get("filter"); filter != "" {
		if err := json.Unmarshal([]byte(filter), &objFilter); err != nil {
			utils.RespondError(w, http.StatusBadRequest)
			return
		}
	}

	brandIDs, err := parseObjectIDs(objFilter.Brands)
	if err != nil {
		utils.RespondError(w, http.StatusBadRequest)
		return
	}
	categoryIDs, err := parseObjectIDs(objFilter.Categories)
	if err != nil {
		utils.RespondError(w, http.StatusBadRequest)
		return
	}

	products, err := pc.Products.Filter(r.Context(), objFilter.Name, brandIDs, categoryIDs)
	if err != nil {
		logger.Error("product search failed", zap.Error(err))
		utils.RespondError(w, http.StatusInternalServerError)
		return
	}
	utils.RespondData(w, http.StatusOK, products)
}

type createProductPayload struct {
	Brand           string               `json:"brand"`
	Combinations    []models.Combination `json:"combinations"`
	Description     string               `json:"description"`
	DefaultCategory string               `json:"defaultCategory"`
	HowToUse        string               `json:"howToUse"`
	Ingredients     string               `json:"ingredients"`
	Images          []models.Image       `json:"images"`
	Name            string               `json:"name"`
	ParentCategory  string               `json:"parentCategory"`
}

// Create adds a product and its combinations in one transaction (admin).
// Brand and categories are referenced by name.
func (pc *ProductController) Create(w http.ResponseWriter, r *http.Request) {
	var payload createProductPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil || payload.Name == "" {
		utils.RespondError(w, http.StatusBadRequest)
		return
	}

	brand, err := pc.Brands.GetByName(r.Context(), payload.Brand)
	if err != nil {
		utils.RespondErrorMessage(w, http.StatusNotFound, "Brand Not Found")
		return
	}
	category, err := pc.Categories.GetOneByName(r.Context(), payload.DefaultCategory)
	if err != nil {
		utils.RespondErrorMessage(w, http.StatusNotFound, "Category Not Found")
		return
	}
	parentCategory, err := pc.Categories.GetOneByName(r.Context(), payload.ParentCategory)
	if err != nil {
		utils.RespondErrorMessage(w, http.StatusNotFound, "Category Not Found")
		return
	}

	product := &models.Product{
		Brand:           brand.ID,
		Categories:      category.Parents,
		DefaultCategory: category.ID,
		ParentCategory:  parentCategory.ID,
		Name:            payload.Name,
		Description:     payload.Description,
		HowToUse:        payload.HowToUse,
		Ingredients:     payload.Ingredients,
		Images:          payload.Images,
	}

	err = pc.Tx.RunTransaction(r.Context(), func(ctx context.Context) error {
		for i := range payload.Combinations {
			combination := payload.Combinations[i]
			combination.ID = primitive.NilObjectID
			if err := pc.Combinations.Create(ctx, &combination); err != nil {
				return err
			}
			product.Combinations = append(product.Combinations, combination.ID)
		}
		return pc.Products.Create(ctx, product)
	})
	if err != nil {
		logger.Error("product creation failed", zap.Error(err))
		utils.RespondError(w, http.StatusInternalServerError)
		return
	}

	utils.RespondData(w, http.StatusCreated, product)
}

// DeleteByID removes a product (admin)
func (pc *ProductController) DeleteByID(w http.ResponseWriter, r *http.Request) {
	id, err := primitive.ObjectIDFromHex(mux.Vars(r)["id"])
	if err != nil {
		utils.RespondError(w, http.StatusBadRequest)
		return
	}

	if err := pc.Products.DeleteByID(r.Context(), id); err != nil {
		logger.Error("product delete failed", zap.Error(err))
		utils.RespondError(w, http.StatusInternalServerError)
		return
	}

	utils.RespondJSON(w, http.StatusOK, utils.Response{Message: http.StatusText(http.StatusOK)})
}
