package handlers

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/sbilibin2017/linkvault/internal/models"
	"github.com/sbilibin2017/linkvault/internal/services"
)

//go:generate mockgen -source=categories.go -destination=mock_categories.go -package=handlers

// Categorizer defines the category operations the handlers need.
type Categorizer interface {
	Create(ctx context.Context, userID int64, name string) (*models.CategoryDB, error)
	List(ctx context.Context, userID int64) ([]models.CategoryDB, error)
	Get(ctx context.Context, userID, categoryID int64) (*models.CategoryDB, error)
	Update(ctx context.Context, userID, categoryID int64, name string) error
	Delete(ctx context.Context, userID, categoryID int64) error
}

// CategoryResponse represents a category
// swagger:model CategoryResponse
type CategoryResponse struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"createdAt"`
}

func newCategoryResponse(c models.CategoryDB) CategoryResponse {
	return CategoryResponse{
		ID:        c.CategoryID,
		Name:      c.Name,
		CreatedAt: c.CreatedAt.UTC(),
	}
}

// NewCreateCategoryHandler creates a category.
// @Summary Create category
// @Tags categories
// @Accept json
// @Produce json
// @Param request body handlers.NameRequest true "Category name"
// @Success 201 {object} handlers.CategoryResponse
// @Header 201 {string} Location "/api/categories/{id}"
// @Failure 400 {object} handlers.ErrorResponse "Invalid name"
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Failure 409 {object} handlers.ErrorResponse "Category name already exists"
// @Router /categories [post]
// @Security BearerAuth
func NewCreateCategoryHandler(svc Categorizer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		uid, ok := userID(r)
		if !ok {
			writeError(w, http.StatusUnauthorized, msgUnauthorized)
			return
		}

		var req NameRequest
		if err := decodeBody(r, &req); err != nil {
			writeError(w, http.StatusBadRequest, msgInvalidRequest)
			return
		}

		c, err := svc.Create(r.Context(), uid, req.Name)
		if err != nil {
			writeServiceError(w, r, err)
			return
		}

		w.Header().Set("Location", fmt.Sprintf("/api/categories/%d", c.CategoryID))
		writeJSON(w, http.StatusCreated, newCategoryResponse(*c))
	}
}

// NewListCategoriesHandler lists all categories of the caller by name.
// @Summary List categories
// @Tags categories
// @Produce json
// @Success 200 {array} handlers.CategoryResponse
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Router /categories [get]
// @Security BearerAuth
func NewListCategoriesHandler(svc Categorizer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		uid, ok := userID(r)
		if !ok {
			writeError(w, http.StatusUnauthorized, msgUnauthorized)
			return
		}

		items, err := svc.List(r.Context(), uid)
		if err != nil {
			writeServiceError(w, r, err)
			return
		}

		resp := make([]CategoryResponse, len(items))
		for i, c := range items {
			resp[i] = newCategoryResponse(c)
		}
		writeJSON(w, http.StatusOK, resp)
	}
}

// NewGetCategoryHandler returns one category.
// @Summary Get category
// @Tags categories
// @Produce json
// @Param id path int true "Category id"
// @Success 200 {object} handlers.CategoryResponse
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Failure 404 {object} handlers.ErrorResponse "Category not found"
// @Router /categories/{id} [get]
// @Security BearerAuth
func NewGetCategoryHandler(svc Categorizer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		uid, ok := userID(r)
		if !ok {
			writeError(w, http.StatusUnauthorized, msgUnauthorized)
			return
		}
		id, ok := pathID(r, "id")
		if !ok {
			writeServiceError(w, r, services.ErrCategoryNotFound)
			return
		}

		c, err := svc.Get(r.Context(), uid, id)
		if err != nil {
			writeServiceError(w, r, err)
			return
		}

		writeJSON(w, http.StatusOK, newCategoryResponse(*c))
	}
}

// NewUpdateCategoryHandler renames a category.
// @Summary Rename category
// @Tags categories
// @Accept json
// @Param id path int true "Category id"
// @Param request body handlers.NameRequest true "New name"
// @Success 204
// @Failure 400 {object} handlers.ErrorResponse "Invalid name"
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Failure 404 {object} handlers.ErrorResponse "Category not found"
// @Failure 409 {object} handlers.ErrorResponse "Category name already exists"
// @Router /categories/{id} [put]
// @Security BearerAuth
func NewUpdateCategoryHandler(svc Categorizer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		uid, ok := userID(r)
		if !ok {
			writeError(w, http.StatusUnauthorized, msgUnauthorized)
			return
		}
		id, ok := pathID(r, "id")
		if !ok {
			writeServiceError(w, r, services.ErrCategoryNotFound)
			return
		}

		var req NameRequest
		if err := decodeBody(r, &req); err != nil {
			writeError(w, http.StatusBadRequest, msgInvalidRequest)
			return
		}

		if err := svc.Update(r.Context(), uid, id, req.Name); err != nil {
			writeServiceError(w, r, err)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}

// NewDeleteCategoryHandler deletes a category. Links tagged with it keep
// existing without a category.
// @Summary Delete category
// @Tags categories
// @Param id path int true "Category id"
// @Success 204
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Failure 404 {object} handlers.ErrorResponse "Category not found"
// @Router /categories/{id} [delete]
// @Security BearerAuth
func NewDeleteCategoryHandler(svc Categorizer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		uid, ok := userID(r)
		if !ok {
			writeError(w, http.StatusUnauthorized, msgUnauthorized)
			return
		}
		id, ok := pathID(r, "id")
		if !ok {
			writeServiceError(w, r, services.ErrCategoryNotFound)
			return
		}

		if err := svc.Delete(r.Context(), uid, id); err != nil {
			writeServiceError(w, r, err)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}
