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

//go:generate mockgen -source=links.go -destination=mock_links.go -package=handlers

// Linker defines the link operations the handlers need.
type Linker interface {
	Create(ctx context.Context, userID, collectionID int64, in models.LinkInput) (*models.LinkDB, error)
	List(ctx context.Context, userID, collectionID int64, categoryID *int64, p query.Params) (query.Page[models.LinkDB], error)
	Get(ctx context.Context, userID, linkID int64) (*models.LinkDB, error)
	Update(ctx context.Context, userID, linkID int64, in models.LinkInput) error
	Delete(ctx context.Context, userID, linkID int64) error
	Move(ctx context.Context, userID, linkID, targetCollectionID int64) error
}

// LinkRequest is the body for creating or replacing a link
// swagger:model LinkRequest
type LinkRequest struct {
	// required: true
	// default: https://go.dev
	URL         string  `json:"url"`
	Title       *string `json:"title"`
	Description *string `json:"description"`
	CategoryID  *int64  `json:"categoryId"`
}

func (req LinkRequest) input() models.LinkInput {
	return models.LinkInput{
		URL:         req.URL,
		Title:       req.Title,
		Description: req.Description,
		CategoryID:  req.CategoryID,
	}
}

// MoveLinkRequest is the body of a move
// swagger:model MoveLinkRequest
type MoveLinkRequest struct {
	// required: true
	TargetCollectionID int64 `json:"targetCollectionId"`
}

// LinkResponse represents a link
// swagger:model LinkResponse
type LinkResponse struct {
	ID           int64     `json:"id"`
	CollectionID int64     `json:"collectionId"`
	CategoryID   *int64    `json:"categoryId"`
	URL          string    `json:"url"`
	Title        *string   `json:"title"`
	Description  *string   `json:"description"`
	CreatedAt    time.Time `json:"createdAt"`
}

func newLinkResponse(l models.LinkDB) LinkResponse {
	return LinkResponse{
		ID:           l.LinkID,
		CollectionID: l.CollectionID,
		CategoryID:   l.CategoryID,
		URL:          l.URL,
		Title:        l.Title,
		Description:  l.Description,
		CreatedAt:    l.CreatedAt.UTC(),
	}
}

// NewCreateLinkHandler adds a link to a collection.
// @Summary Create link
// @Tags links
// @Accept json
// @Produce json
// @Param collectionId path int true "Collection id"
// @Param request body handlers.LinkRequest true "Link"
// @Success 201 {object} handlers.LinkResponse
// @Header 201 {string} Location "/api/links/{id}"
// @Failure 400 {object} handlers.ErrorResponse "Invalid url or categoryId"
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Failure 404 {object} handlers.ErrorResponse "Collection not found"
// @Router /collections/{collectionId}/links [post]
// @Security BearerAuth
func NewCreateLinkHandler(svc Linker) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		uid, ok := userID(r)
		if !ok {
			writeError(w, http.StatusUnauthorized, msgUnauthorized)
			return
		}
		collectionID, ok := pathID(r, "collectionId")
		if !ok {
			writeServiceError(w, r, services.ErrCollectionNotFound)
			return
		}

		var req LinkRequest
		if err := decodeBody(r, &req); err != nil {
			writeError(w, http.StatusBadRequest, msgInvalidRequest)
			return
		}

		l, err := svc.Create(r.Context(), uid, collectionID, req.input())
		if err != nil {
			writeServiceError(w, r, err)
			return
		}

		w.Header().Set("Location", fmt.Sprintf("/api/links/%d", l.LinkID))
		writeJSON(w, http.StatusCreated, newLinkResponse(*l))
	}
}

// NewListLinksHandler lists links of a collection.
// @Summary List links in a collection
// @Tags links
// @Produce json
// @Param collectionId path int true "Collection id"
// @Param q query string false "Substring of url, title or description"
// @Param categoryId query int false "Only links in this category"
// @Param sort query string false "newest or oldest" default(newest)
// @Param page query int false "Page number" default(1)
// @Param pageSize query int false "Page size (max 100)" default(20)
// @Success 200 {object} query.Page[handlers.LinkResponse]
// @Failure 400 {object} handlers.ErrorResponse "Invalid query parameter"
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Failure 404 {object} handlers.ErrorResponse "Collection not found"
// @Router /collections/{collectionId}/links [get]
// @Security BearerAuth
func NewListLinksHandler(svc Linker) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		uid, ok := userID(r)
		if !ok {
			writeError(w, http.StatusUnauthorized, msgUnauthorized)
			return
		}
		collectionID, ok := pathID(r, "collectionId")
		if !ok {
			writeServiceError(w, r, services.ErrCollectionNotFound)
			return
		}

		p, err := listParams(r, query.SortNewest, query.SortOldest)
		if err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		categoryID, err := queryInt(r, "categoryId", 64)
		if err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}

		page, err := svc.List(r.Context(), uid, collectionID, categoryID, p)
		if err != nil {
			writeServiceError(w, r, err)
			return
		}

		writeJSON(w, http.StatusOK, query.Map(page, newLinkResponse))
	}
}

// NewGetLinkHandler returns one link.
// @Summary Get link
// @Tags links
// @Produce json
// @Param id path int true "Link id"
// @Success 200 {object} handlers.LinkResponse
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Failure 404 {object} handlers.ErrorResponse "Link not found"
// @Router /links/{id} [get]
// @Security BearerAuth
func NewGetLinkHandler(svc Linker) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		uid, ok := userID(r)
		if !ok {
			writeError(w, http.StatusUnauthorized, msgUnauthorized)
			return
		}
		id, ok := pathID(r, "id")
		if !ok {
			writeServiceError(w, r, services.ErrLinkNotFound)
			return
		}

		l, err := svc.Get(r.Context(), uid, id)
		if err != nil {
			writeServiceError(w, r, err)
			return
		}

		writeJSON(w, http.StatusOK, newLinkResponse(*l))
	}
}

// NewUpdateLinkHandler replaces url, title, description and category of a link.
// @Summary Update link
// @Tags links
// @Accept json
// @Param id path int true "Link id"
// @Param request body handlers.LinkRequest true "Link"
// @Success 204
// @Failure 400 {object} handlers.ErrorResponse "Invalid url or categoryId"
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Failure 404 {object} handlers.ErrorResponse "Link not found"
// @Router /links/{id} [put]
// @Security BearerAuth
func NewUpdateLinkHandler(svc Linker) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		uid, ok := userID(r)
		if !ok {
			writeError(w, http.StatusUnauthorized, msgUnauthorized)
			return
		}
		id, ok := pathID(r, "id")
		if !ok {
			writeServiceError(w, r, services.ErrLinkNotFound)
			return
		}

		var req LinkRequest
		if err := decodeBody(r, &req); err != nil {
			writeError(w, http.StatusBadRequest, msgInvalidRequest)
			return
		}

		if err := svc.Update(r.Context(), uid, id, req.input()); err != nil {
			writeServiceError(w, r, err)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}

// NewDeleteLinkHandler deletes a link.
// @Summary Delete link
// @Tags links
// @Param id path int true "Link id"
// @Success 204
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Failure 404 {object} handlers.ErrorResponse "Link not found"
// @Router /links/{id} [delete]
// @Security BearerAuth
func NewDeleteLinkHandler(svc Linker) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		uid, ok := userID(r)
		if !ok {
			writeError(w, http.StatusUnauthorized, msgUnauthorized)
			return
		}
		id, ok := pathID(r, "id")
		if !ok {
			writeServiceError(w, r, services.ErrLinkNotFound)
			return
		}

		if err := svc.Delete(r.Context(), uid, id); err != nil {
			writeServiceError(w, r, err)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}

// NewMoveLinkHandler moves a link to another collection of the caller.
// @Summary Move link
// @Tags links
// @Accept json
// @Param id path int true "Link id"
// @Param request body handlers.MoveLinkRequest true "Target collection"
// @Success 204
// @Failure 400 {object} handlers.ErrorResponse "targetCollectionId is required"
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Failure 404 {object} handlers.ErrorResponse "Link or target collection not found"
// @Router /links/{id}/move [patch]
// @Security BearerAuth
func NewMoveLinkHandler(svc Linker) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		uid, ok := userID(r)
		if !ok {
			writeError(w, http.StatusUnauthorized, msgUnauthorized)
			return
		}
		id, ok := pathID(r, "id")
		if !ok {
			writeServiceError(w, r, services.ErrLinkNotFound)
			return
		}

		var req MoveLinkRequest
		if err := decodeBody(r, &req); err != nil {
			writeError(w, http.StatusBadRequest, msgInvalidRequest)
			return
		}

		if err := svc.Move(r.Context(), uid, id, req.TargetCollectionID); err != nil {
			writeServiceError(w, r, err)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}
