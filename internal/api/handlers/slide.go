package handlers

import (
	"net/http"

	"github.com/aaravmahajanofficial/storefront/internal/models"
	service "github.com/aaravmahajanofficial/storefront/internal/services"
	"github.com/aaravmahajanofficial/storefront/internal/utils"
	"github.com/aaravmahajanofficial/storefront/internal/utils/response"
	"github.com/go-playground/validator/v10"
)

type SlideHandler struct {
	slideService service.SlideService
	validator    *validator.Validate
}

func NewSlideHandler(slideService service.SlideService) *SlideHandler {
	return &SlideHandler{slideService: slideService, validator: validator.New()}
}

// ListActiveSlides godoc
//
//	@Summary	Landing page slides
//	@Tags		Products
//	@Produce	json
//	@Success	200	{array}	models.Slide
//	@Router		/slides [get]
func (h *SlideHandler) ListActiveSlides() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		slides, err := h.slideService.ListActiveSlides(r.Context())
		if err != nil {
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, slides)
	}
}

// ListSlides godoc
//
//	@Summary	All slides including inactive ones
//	@Tags		Admin
//	@Produce	json
//	@Success	200	{array}	models.Slide
//	@Security	BearerAuth
//	@Router		/admin/slides [get]
func (h *SlideHandler) ListSlides() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		slides, err := h.slideService.ListSlides(r.Context())
		if err != nil {
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, slides)
	}
}

// CreateSlide godoc
//
//	@Summary	Create a slide
//	@Tags		Admin
//	@Accept		json
//	@Produce	json
//	@Param		slide	body		models.SlideRequest	true	"Slide"
//	@Success	201		{object}	models.Slide
//	@Security	BearerAuth
//	@Router		/admin/slides [post]
func (h *SlideHandler) CreateSlide() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req models.SlideRequest
		if !utils.ParseAndValidate(r, w, &req, h.validator) {
			return
		}

		slide, err := h.slideService.CreateSlide(r.Context(), &req)
		if err != nil {
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusCreated, slide)
	}
}

// UpdateSlide godoc
//
//	@Summary	Update a slide
//	@Tags		Admin
//	@Accept		json
//	@Produce	json
//	@Param		id		path		string				true	"Slide ID"
//	@Param		slide	body		models.SlideRequest	true	"Slide"
//	@Success	200		{object}	models.Slide
//	@Security	BearerAuth
//	@Router		/admin/slides/{id} [put]
func (h *SlideHandler) UpdateSlide() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := utils.ParseID(r, "id")
		if err != nil {
			response.Error(w, err)
			return
		}

		var req models.SlideRequest
		if !utils.ParseAndValidate(r, w, &req, h.validator) {
			return
		}

		slide, err := h.slideService.UpdateSlide(r.Context(), id, &req)
		if err != nil {
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, slide)
	}
}

// DeleteSlide godoc
//
//	@Summary	Delete a slide
//	@Tags		Admin
//	@Param		id	path	string	true	"Slide ID"
//	@Success	204
//	@Security	BearerAuth
//	@Router		/admin/slides/{id} [delete]
func (h *SlideHandler) DeleteSlide() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := utils.ParseID(r, "id")
		if err != nil {
			response.Error(w, err)
			return
		}

		if err := h.slideService.DeleteSlide(r.Context(), id); err != nil {
			response.Error(w, err)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}
