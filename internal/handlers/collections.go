package handlers

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/sbilibin2017/linkvault/internal/models"
	"github.com/sbilibin2017/linkvault/internal/query"
	"github.com/sbilibin2017/linkvault/internal/services"
)

//go:generate mockgen -source=collections.go -destination=mock_collections.go -package=handlers

// Collectioner defines the collection operations the handlers need.
type Collectioner interface {
	Create(ctx context.Context, userID int64, name string) (*models.CollectionDB, error)
	List(ctx context.Context, userID int64, p query.Params) (query.Page[models.CollectionDB], error)
	Get(ctx context.Context, userID, collectionID int64) (*models.CollectionDB, error)
	Update(ctx context.Context, userID, collectionID int64, name string) error
	Delete(ctx context.Context, userID, collectionID int64) error
}

// NameRequest is the body for creating or renaming a collection or category
// swagger:model NameRequest
type NameRequest struct {
	// required: true
	// default: Reading
	Name string `json:"name"`
}

// CollectionResponse represents a collection
// swagger:model CollectionResponse
type CollectionResponse struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"createdAt"`
}

func newCollectionResponse(c models.CollectionDB) CollectionResponse {
	return CollectionResponse{
		ID:        c.CollectionID,
		Name:      c.Name,
		CreatedAt: c.CreatedAt.UTC(),
	}
}

// NewCreateCollectionHandler creates a collection.
// @Summary Create collection
// @Tags collections
// @Accept json
// @Produce json
// @Param request body handlers.NameRequest true "Collection name"
// @Success 201 {object} handlers.CollectionResponse
// @Header 201 {string} Location "/api/collections/{id}"
// @Failure 400 {object} handlers.ErrorResponse "Invalid name"
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Failure 409 {object} handlers.ErrorResponse "Collection name already exists"
// @Router /collections [post]
// @Security BearerAuth
func NewCreateCollectionHandler(svc Collectioner) http.HandlerFunc {
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

		w.Header().Set("Location", fmt.Sprintf("/api/collections/%d", c.CollectionID))
		writeJSON(w, http.StatusCreated, newCollectionResponse(*c))
	}
}

// NewListCollectionsHandler lists the caller's collections.
// @Summary List collections
// @Tags collections
// @Produce json
// @Param q query string false "Substring of the name"
// @Param sort query string false "newest, oldest or name" default(newest)
// @Param page query int false "Page number" default(1)
// @Param pageSize query int false "Page size (max 100)" default(20)
// @Success 200 {object} query.Page[handlers.CollectionResponse]
// @Failure 400 {object} handlers.ErrorResponse "Invalid query parameter"
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Router /collections [get]
// @Security BearerAuth
func NewListCollectionsHandler(svc Collectioner) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		uid, ok := userID(r)
		if !ok {
			writeError(w, http.StatusUnauthorized, msgUnauthorized)
			return
		}

		p, err := listParams(r, query.SortNewest, query.SortOldest, query.SortName)
		if err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}

		page, err := svc.List(r.Context(), uid, p)
		if err != nil {
			writeServiceError(w, r, err)
			return
		}

		writeJSON(w, http.StatusOK, query.Map(page, newCollectionResponse))
	}
}

// NewGetCollectionHandler returns one collection.
// @Summary Get collection
// @Tags collections
// @Produce json
// @Param id path int true "Collection id"
// @Success 200 {object} handlers.CollectionResponse
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Failure 404 {object} handlers.ErrorResponse "Collection not found"
// @Router /collections/{id} [get]
// @Security BearerAuth
func NewGetCollectionHandler(svc Collectioner) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		uid, ok := userID(r)
		if !ok {
			writeError(w, http.StatusUnauthorized, msgUnauthorized)
			return
		}
		id, ok := pathID(r, "id")
		if !ok {
			writeServiceError(w, r, services.ErrCollectionNotFound)
			return
		}

		c, err := svc.Get(r.Context(), uid, id)
		if err != nil {
			writeServiceError(w, r, err)
			return
		}

		writeJSON(w, http.StatusOK, newCollectionResponse(*c))
	}
}

// NewUpdateCollectionHandler renames a collection.
// @Summary Rename collection
// @Tags collections
// @Accept json
// @Param id path int true "Collection id"
// @Param request body handlers.NameRequest true "New name"
// @Success 204
// @Failure 400 {object} handlers.ErrorResponse "Invalid name"
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Failure 404 {object} handlers.ErrorResponse "Collection not found"
// @Failure 409 {object} handlers.ErrorResponse "Collection name already exists"
// @Router /collections/{id} [put]
// @Security BearerAuth
func NewUpdateCollectionHandler(svc Collectioner) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		uid, ok := userID(r)
		if !ok {
			writeError(w, http.StatusUnauthorized, msgUnauthorized)
			return
		}
		id, ok := pathID(r, "id")
		if !ok {
			writeServiceError(w, r, services.ErrCollectionNotFound)
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

// NewDeleteCollectionHandler deletes a collection and its links.
// @Summary Delete collection
// @Tags collections
// @Param id path int true "Collection id"
// @Success 204
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Failure 404 {object} handlers.ErrorResponse "Collection not found"
// @Router /collections/{id} [delete]
// @Security BearerAuth
func NewDeleteCollectionHandler(svc Collectioner) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		uid, ok := userID(r)
		if !ok {
			writeError(w, http.StatusUnauthorized, msgUnauthorized)
			return
		}
		id, ok := pathID(r, "id")
		if !ok {
			writeServiceError(w, r, services.ErrCollectionNotFound)
			return
		}

		if err := svc.Delete(r.Context(), uid, id); err != nil {
			writeServiceError(w, r, err)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}
