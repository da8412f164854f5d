package handlers

import (
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sbilibin2017/linkvault/internal/models"
	"github.com/sbilibin2017/linkvault/internal/query"
	"github.com/sbilibin2017/linkvault/internal/services"
)

func TestCreateCollectionHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	created := time.Date(2024, 5, 1, 12, 0, 0, 0, time.FixedZone("CEST", 2*3600))

	tests := []struct {
		name         string
		body         string
		uid          int64
		mockSetup    func(m *MockCollectioner)
		expectedCode int
		expectedErr  string
	}{
		{
			name: "created",
			body: `{"name":"Reading"}`,
			uid:  1,
			mockSetup: func(m *MockCollectioner) {
				m.EXPECT().Create(gomock.Any(), int64(1), "Reading").
					Return(&models.CollectionDB{CollectionID: 7, UserID: 1, Name: "Reading", CreatedAt: created}, nil)
			},
			expectedCode: http.StatusCreated,
		},
		{
			name: "duplicate",
			body: `{"name":"Reading"}`,
			uid:  1,
			mockSetup: func(m *MockCollectioner) {
				m.EXPECT().Create(gomock.Any(), int64(1), "Reading").Return(nil, services.ErrCollectionNameTaken)
			},
			expectedCode: http.StatusConflict,
			expectedErr:  "collection name already exists",
		},
		{
			name: "blank name",
			body: `{"name":" "}`,
			uid:  1,
			mockSetup: func(m *MockCollectioner) {
				m.EXPECT().Create(gomock.Any(), int64(1), " ").Return(nil, &services.ValidationError{Message: "name is required"})
			},
			expectedCode: http.StatusBadRequest,
			expectedErr:  "name is required",
		},
		{
			name:         "unauthenticated",
			body:         `{"name":"Reading"}`,
			expectedCode: http.StatusUnauthorized,
			expectedErr:  "Unauthorized",
		},
		{
			name:         "malformed body",
			body:         `{`,
			uid:          1,
			expectedCode: http.StatusBadRequest,
			expectedErr:  "invalid request body",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSvc := NewMockCollectioner(ctrl)
			if tt.mockSetup != nil {
				tt.mockSetup(mockSvc)
			}

			rec := serve(NewCreateCollectionHandler(mockSvc), http.MethodPost, "/api/collections", "/api/collections", tt.body, tt.uid)

			assert.Equal(t, tt.expectedCode, rec.Code)
			if tt.expectedErr != "" {
				assert.Equal(t, tt.expectedErr, decodeError(t, rec))
				return
			}

			assert.Equal(t, "/api/collections/7", rec.Header().Get("Location"))
			assert.JSONEq(t, `{"id":7,"name":"Reading","createdAt":"2024-05-01T10:00:00Z"}`, rec.Body.String())
		})
	}
}

func TestListCollectionsHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	t.Run("paged", func(t *testing.T) {
		mockSvc := NewMockCollectioner(ctrl)
		want := query.Params{Q: "read", Sort: query.SortName, Page: 2, PageSize: 1}
		mockSvc.EXPECT().List(gomock.Any(), int64(1), want).
			Return(query.Page[models.CollectionDB]{
				Page: 2, PageSize: 1, TotalCount: 3, TotalPages: 3,
				Items: []models.CollectionDB{{CollectionID: 2, Name: "Reading"}},
			}, nil)

		rec := serve(NewListCollectionsHandler(mockSvc), http.MethodGet, "/api/collections",
			"/api/collections?q=read&sort=name&page=2&pageSize=1", "", 1)

		require.Equal(t, http.StatusOK, rec.Code)
		var page query.Page[CollectionResponse]
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &page))
		assert.Equal(t, 3, page.TotalPages)
		require.Len(t, page.Items, 1)
		assert.Equal(t, "Reading", page.Items[0].Name)
	})

	t.Run("empty page renders items as array", func(t *testing.T) {
		mockSvc := NewMockCollectioner(ctrl)
		mockSvc.EXPECT().List(gomock.Any(), int64(1), gomock.Any()).
			Return(query.NewPage[models.CollectionDB](nil, query.Params{Page: 1, PageSize: 20}, 0), nil)

		rec := serve(NewListCollectionsHandler(mockSvc), http.MethodGet, "/api/collections", "/api/collections", "", 1)

		require.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"page":1,"pageSize":20,"totalCount":0,"totalPages":0,"items":[]}`, rec.Body.String())
	})

	t.Run("bad page", func(t *testing.T) {
		mockSvc := NewMockCollectioner(ctrl)
		rec := serve(NewListCollectionsHandler(mockSvc), http.MethodGet, "/api/collections", "/api/collections?page=x", "", 1)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "invalid page", decodeError(t, rec))
	})
}

func TestGetCollectionHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := NewMockCollectioner(ctrl)
	h := NewGetCollectionHandler(mockSvc)

	t.Run("found", func(t *testing.T) {
		mockSvc.EXPECT().Get(gomock.Any(), int64(1), int64(7)).
			Return(&models.CollectionDB{CollectionID: 7, Name: "Reading"}, nil)

		rec := serve(h, http.MethodGet, "/api/collections/{id}", "/api/collections/7", "", 1)
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("owned by someone else", func(t *testing.T) {
		mockSvc.EXPECT().Get(gomock.Any(), int64(2), int64(7)).Return(nil, services.ErrCollectionNotFound)

		rec := serve(h, http.MethodGet, "/api/collections/{id}", "/api/collections/7", "", 2)
		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Equal(t, "collection not found", decodeError(t, rec))
	})

	t.Run("non-integer id", func(t *testing.T) {
		rec := serve(h, http.MethodGet, "/api/collections/{id}", "/api/collections/abc", "", 1)
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestUpdateCollectionHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := NewMockCollectioner(ctrl)
	h := NewUpdateCollectionHandler(mockSvc)

	mockSvc.EXPECT().Update(gomock.Any(), int64(1), int64(7), "Books").Return(nil)
	rec := serve(h, http.MethodPut, "/api/collections/{id}", "/api/collections/7", `{"name":"Books"}`, 1)
	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Empty(t, rec.Body.String())

	mockSvc.EXPECT().Update(gomock.Any(), int64(1), int64(7), "Taken").Return(services.ErrCollectionNameTaken)
	rec = serve(h, http.MethodPut, "/api/collections/{id}", "/api/collections/7", `{"name":"Taken"}`, 1)
	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestDeleteCollectionHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := NewMockCollectioner(ctrl)
	h := NewDeleteCollectionHandler(mockSvc)

	mockSvc.EXPECT().Delete(gomock.Any(), int64(1), int64(7)).Return(nil)
	rec := serve(h, http.MethodDelete, "/api/collections/{id}", "/api/collections/7", "", 1)
	assert.Equal(t, http.StatusNoContent, rec.Code)

	mockSvc.EXPECT().Delete(gomock.Any(), int64(1), int64(8)).Return(services.ErrCollectionNotFound)
	rec = serve(h, http.MethodDelete, "/api/collections/{id}", "/api/collections/8", "", 1)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
