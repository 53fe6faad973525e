package handlers

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/aaravmahajanofficial/storefront/internal/api/middleware"
	"github.com/aaravmahajanofficial/storefront/internal/errors"
	"github.com/aaravmahajanofficial/storefront/internal/models"
	service "github.com/aaravmahajanofficial/storefront/internal/services"
	"github.com/aaravmahajanofficial/storefront/internal/utils"
	"github.com/aaravmahajanofficial/storefront/internal/utils/response"
	"github.com/go-playground/validator/v10"
)

type ProductHandler struct {
	productService service.ProductService
	validator      *validator.Validate
}

func NewProductHandler(productService service.ProductService) *ProductHandler {
	return &ProductHandler{productService: productService, validator: validator.New()}
}

// CreateProduct godoc
//
//	@Summary		Create a product
//	@Description	The description may contain basic HTML. Unsafe markup is stripped.
//	@Tags			Admin
//	@Accept			json
//	@Produce		json
//	@Param			product	body		models.CreateProductRequest	true	"Product"
//	@Success		201		{object}	models.Product
//	@Failure		400		{object}	response.ErrorResponse	"Validation error or unknown category"
//	@Failure		409		{object}	response.ErrorResponse	"SKU already exists"
//	@Security		BearerAuth
//	@Router			/admin/products [post]
func (h *ProductHandler) CreateProduct() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logger := middleware.LoggerFromContext(r.Context())

		var req models.CreateProductRequest
		if !utils.ParseAndValidate(r, w, &req, h.validator) {
			return
		}

		product, err := h.productService.CreateProduct(r.Context(), &req)
		if err != nil {
			logger.Error("Product creation failed", slog.String("sku", req.SKU), slog.Any("error", err))
			response.Error(w, err)
			return
		}

		logger.Info("Product created", slog.String("productId", product.ID.String()))
		response.Success(w, http.StatusCreated, product)
	}
}

// GetProduct godoc
//
//	@Summary	Get a product
//	@Tags		Products
//	@Produce	json
//	@Param		id	path		string	true	"Product ID"
//	@Success	200	{object}	models.Product
//	@Failure	404	{object}	response.ErrorResponse
//	@Router		/products/{id} [get]
func (h *ProductHandler) GetProduct() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := utils.ParseID(r, "id")
		if err != nil {
			response.Error(w, err)
			return
		}

		product, err := h.productService.GetProductByID(r.Context(), id)
		if err != nil {
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, product)
	}
}

// UpdateProduct godoc
//
//	@Summary	Update a product
//	@Tags		Admin
//	@Accept		json
//	@Produce	json
//	@Param		id		path		string						true	"Product ID"
//	@Param		product	body		models.UpdateProductRequest	true	"Fields to change"
//	@Success	200		{object}	models.Product
//	@Failure	404		{object}	response.ErrorResponse
//	@Security	BearerAuth
//	@Router		/admin/products/{id} [put]
func (h *ProductHandler) UpdateProduct() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := utils.ParseID(r, "id")
		if err != nil {
			response.Error(w, err)
			return
		}

		var req models.UpdateProductRequest
		if !utils.ParseAndValidate(r, w, &req, h.validator) {
			return
		}

		product, err := h.productService.UpdateProduct(r.Context(), id, &req)
		if err != nil {
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, product)
	}
}

// DeleteProduct godoc
//
//	@Summary		Discontinue a product
//	@Description	Soft delete. Past orders keep their lines.
//	@Tags			Admin
//	@Param			id	path	string	true	"Product ID"
//	@Success		204
//	@Failure		404	{object}	response.ErrorResponse
//	@Security		BearerAuth
//	@Router			/admin/products/{id} [delete]
func (h *ProductHandler) DeleteProduct() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := utils.ParseID(r, "id")
		if err != nil {
			response.Error(w, err)
			return
		}

		if err := h.productService.DeleteProduct(r.Context(), id); err != nil {
			response.Error(w, err)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}

// ListProducts godoc
//
//	@Summary	Browse the catalog
//	@Tags		Products
//	@Produce	json
//	@Param		category	query		int		false	"Category ID"
//	@Param		q			query		string	false	"Name search"
//	@Param		minPrice	query		number	false	"Minimum price"
//	@Param		maxPrice	query		number	false	"Maximum price"
//	@Param		page		query		int		false	"Page number"
//	@Param		pageSize	query		int		false	"Items per page"
//	@Success	200			{object}	models.PaginatedResponse
//	@Failure	400			{object}	response.ErrorResponse
//	@Router		/products [get]
func (h *ProductHandler) ListProducts() http.HandlerFunc {
	return h.list(func(*http.Request) models.ProductStatus { return models.ProductStatusActive })
}

// ListAllProducts godoc
//
//	@Summary	List products in any status
//	@Tags		Admin
//	@Produce	json
//	@Param		status	query		string	false	"active, inactive or discontinued"
//	@Success	200		{object}	models.PaginatedResponse
//	@Security	BearerAuth
//	@Router		/admin/products [get]
func (h *ProductHandler) ListAllProducts() http.HandlerFunc {
	return h.list(func(r *http.Request) models.ProductStatus {
		return models.ProductStatus(r.URL.Query().Get("status"))
	})
}

func (h *ProductHandler) list(status func(*http.Request) models.ProductStatus) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		filter, err := parseProductFilter(r)
		if err != nil {
			response.Error(w, err)
			return
		}

		filter.Status = status(r)
		page, pageSize := utils.ParsePagination(r)

		products, total, err := h.productService.ListProducts(r.Context(), filter, page, pageSize)
		if err != nil {
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, paginated(products, total, page, pageSize))
	}
}

func parseProductFilter(r *http.Request) (models.ProductFilter, error) {
	q := r.URL.Query()
	filter := models.ProductFilter{Query: q.Get("q")}

	if raw := q.Get("category"); raw != "" {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || id <= 0 {
			return filter, errors.BadRequestError("Invalid category")
		}

		filter.CategoryID = id
	}

	for key, dest := range map[string]*float64{"minPrice": &filter.MinPrice, "maxPrice": &filter.MaxPrice} {
		raw := q.Get(key)
		if raw == "" {
			continue
		}

		v, err := strconv.ParseFloat(raw, 64)
		if err != nil || v < 0 {
			return filter, errors.BadRequestError("Invalid " + key)
		}

		*dest = v
	}

	return filter, nil
}
