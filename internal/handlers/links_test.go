package handlers

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sbilibin2017/linkvault/internal/models"
	"github.com/sbilibin2017/linkvault/internal/query"
	"github.com/sbilibin2017/linkvault/internal/services"
)

func TestCreateLinkHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := NewMockLinker(ctrl)
	h := NewCreateLinkHandler(mockSvc)
	cat := int64(3)
	title := "Go"

	t.Run("created", func(t *testing.T) {
		mockSvc.EXPECT().
			Create(gomock.Any(), int64(1), int64(10), models.LinkInput{URL: "https://go.dev", Title: &title, CategoryID: &cat}).
			Return(&models.LinkDB{LinkID: 30, CollectionID: 10, CategoryID: &cat, URL: "https://go.dev", Title: &title}, nil)

		rec := serve(h, http.MethodPost, "/api/collections/{collectionId}/links", "/api/collections/10/links",
			`{"url":"https://go.dev","title":"Go","categoryId":3}`, 1)

		require.Equal(t, http.StatusCreated, rec.Code)
		assert.Equal(t, "/api/links/30", rec.Header().Get("Location"))

		var resp map[string]any
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, float64(30), resp["id"])
		assert.Nil(t, resp["description"])
		assert.Contains(t, resp, "description")
	})

	t.Run("invalid category", func(t *testing.T) {
		mockSvc.EXPECT().Create(gomock.Any(), int64(1), int64(10), gomock.Any()).
			Return(nil, &services.ValidationError{Message: "invalid categoryId"})

		rec := serve(h, http.MethodPost, "/api/collections/{collectionId}/links", "/api/collections/10/links",
			`{"url":"https://go.dev","categoryId":99}`, 1)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "invalid categoryId", decodeError(t, rec))
	})

	t.Run("foreign collection", func(t *testing.T) {
		mockSvc.EXPECT().Create(gomock.Any(), int64(2), int64(10), gomock.Any()).Return(nil, services.ErrCollectionNotFound)

		rec := serve(h, http.MethodPost, "/api/collections/{collectionId}/links", "/api/collections/10/links",
			`{"url":"https://go.dev"}`, 2)

		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Equal(t, "collection not found", decodeError(t, rec))
	})
}

func TestListLinksHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := NewMockLinker(ctrl)
	h := NewListLinksHandler(mockSvc)
	pattern := "/api/collections/{collectionId}/links"

	t.Run("filters", func(t *testing.T) {
		cat := int64(3)
		mockSvc.EXPECT().
			List(gomock.Any(), int64(1), int64(10), &cat, query.Params{Q: "go", Sort: query.SortOldest, Page: 1, PageSize: 10}).
			Return(query.Page[models.LinkDB]{Page: 1, PageSize: 10, TotalCount: 1, TotalPages: 1,
				Items: []models.LinkDB{{LinkID: 30, URL: "https://go.dev"}}}, nil)

		rec := serve(h, http.MethodGet, pattern, "/api/collections/10/links?q=go&categoryId=3&sort=oldest&pageSize=10", "", 1)

		require.Equal(t, http.StatusOK, rec.Code)
		var page query.Page[LinkResponse]
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &page))
		require.Len(t, page.Items, 1)
		assert.Equal(t, "https://go.dev", page.Items[0].URL)
	})

	t.Run("name sort is not a link order", func(t *testing.T) {
		mockSvc.EXPECT().
			List(gomock.Any(), int64(1), int64(10), (*int64)(nil), query.Params{Sort: query.SortNewest, Page: 1, PageSize: 20}).
			Return(query.Page[models.LinkDB]{Items: []models.LinkDB{}}, nil)

		rec := serve(h, http.MethodGet, pattern, "/api/collections/10/links?sort=name", "", 1)
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("bad categoryId", func(t *testing.T) {
		rec := serve(h, http.MethodGet, pattern, "/api/collections/10/links?categoryId=tech", "", 1)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "invalid categoryId", decodeError(t, rec))
	})
}

func TestLinkItemHandlers(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := NewMockLinker(ctrl)

	mockSvc.EXPECT().Get(gomock.Any(), int64(1), int64(30)).Return(&models.LinkDB{LinkID: 30, URL: "https://go.dev"}, nil)
	rec := serve(NewGetLinkHandler(mockSvc), http.MethodGet, "/api/links/{id}", "/api/links/30", "", 1)
	assert.Equal(t, http.StatusOK, rec.Code)

	mockSvc.EXPECT().Get(gomock.Any(), int64(2), int64(30)).Return(nil, services.ErrLinkNotFound)
	rec = serve(NewGetLinkHandler(mockSvc), http.MethodGet, "/api/links/{id}", "/api/links/30", "", 2)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	mockSvc.EXPECT().Update(gomock.Any(), int64(1), int64(30), models.LinkInput{URL: "https://go.dev/doc"}).Return(nil)
	rec = serve(NewUpdateLinkHandler(mockSvc), http.MethodPut, "/api/links/{id}", "/api/links/30", `{"url":"https://go.dev/doc"}`, 1)
	assert.Equal(t, http.StatusNoContent, rec.Code)

	mockSvc.EXPECT().Delete(gomock.Any(), int64(1), int64(30)).Return(nil)
	rec = serve(NewDeleteLinkHandler(mockSvc), http.MethodDelete, "/api/links/{id}", "/api/links/30", "", 1)
	assert.Equal(t, http.StatusNoContent, rec.Code)
}

func TestMoveLinkHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := NewMockLinker(ctrl)
	h := NewMoveLinkHandler(mockSvc)

	mockSvc.EXPECT().Move(gomock.Any(), int64(1), int64(30), int64(11)).Return(nil)
	rec := serve(h, http.MethodPatch, "/api/links/{id}/move", "/api/links/30/move", `{"targetCollectionId":11}`, 1)
	assert.Equal(t, http.StatusNoContent, rec.Code)

	mockSvc.EXPECT().Move(gomock.Any(), int64(1), int64(30), int64(0)).
		Return(&services.ValidationError{Message: "targetCollectionId is required"})
	rec = serve(h, http.MethodPatch, "/api/links/{id}/move", "/api/links/30/move", `{}`, 1)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "targetCollectionId is required", decodeError(t, rec))

	mockSvc.EXPECT().Move(gomock.Any(), int64(1), int64(30), int64(12)).Return(services.ErrTargetCollectionNotFound)
	rec = serve(h, http.MethodPatch, "/api/links/{id}/move", "/api/links/30/move", `{"targetCollectionId":12}`, 1)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "target collection not found", decodeError(t, rec))
}
