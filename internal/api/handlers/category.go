package handlers

import (
	"net/http"

	"github.com/aaravmahajanofficial/storefront/internal/models"
	service "github.com/aaravmahajanofficial/storefront/internal/services"
	"github.com/aaravmahajanofficial/storefront/internal/utils"
	"github.com/aaravmahajanofficial/storefront/internal/utils/response"
	"github.com/go-playground/validator/v10"
)

type CategoryHandler struct {
	categoryService service.CategoryService
	validator       *validator.Validate
}

func NewCategoryHandler(categoryService service.CategoryService) *CategoryHandler {
	return &CategoryHandler{categoryService: categoryService, validator: validator.New()}
}

// ListCategories godoc
//
//	@Summary	List categories
//	@Tags		Products
//	@Produce	json
//	@Success	200	{array}	models.Category
//	@Router		/categories [get]
func (h *CategoryHandler) ListCategories() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		categories, err := h.categoryService.ListCategories(r.Context())
		if err != nil {
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, categories)
	}
}

// CreateCategory godoc
//
//	@Summary	Create a category
//	@Tags		Admin
//	@Accept		json
//	@Produce	json
//	@Param		category	body		models.CategoryRequest	true	"Category"
//	@Success	201			{object}	models.Category
//	@Failure	409			{object}	response.ErrorResponse	"Name already exists"
//	@Security	BearerAuth
//	@Router		/admin/categories [post]
func (h *CategoryHandler) CreateCategory() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req models.CategoryRequest
		if !utils.ParseAndValidate(r, w, &req, h.validator) {
			return
		}

		category, err := h.categoryService.CreateCategory(r.Context(), &req)
		if err != nil {
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusCreated, category)
	}
}

// UpdateCategory godoc
//
//	@Summary	Rename a category
//	@Tags		Admin
//	@Accept		json
//	@Produce	json
//	@Param		id			path		int						true	"Category ID"
//	@Param		category	body		models.CategoryRequest	true	"Category"
//	@Success	200			{object}	models.Category
//	@Security	BearerAuth
//	@Router		/admin/categories/{id} [put]
func (h *CategoryHandler) UpdateCategory() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := utils.ParseInt64ID(r, "id")
		if err != nil {
			response.Error(w, err)
			return
		}

		var req models.CategoryRequest
		if !utils.ParseAndValidate(r, w, &req, h.validator) {
			return
		}

		category, err := h.categoryService.UpdateCategory(r.Context(), id, &req)
		if err != nil {
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, category)
	}
}

// DeleteCategory godoc
//
//	@Summary	Delete an unused category
//	@Tags		Admin
//	@Param		id	path	int	true	"Category ID"
//	@Success	204
//	@Failure	409	{object}	response.ErrorResponse	"Category still has products"
//	@Security	BearerAuth
//	@Router		/admin/categories/{id} [delete]
func (h *CategoryHandler) DeleteCategory() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := utils.ParseInt64ID(r, "id")
		if err != nil {
			response.Error(w, err)
			return
		}

		if err := h.categoryService.DeleteCategory(r.Context(), id); err != nil {
			response.Error(w, err)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}
