package handlers

import (
	"net/http"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/sbilibin2017/linkvault/internal/models"
	"github.com/sbilibin2017/linkvault/internal/services"
)

func TestCreateCategoryHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := NewMockCategorizer(ctrl)
	h := NewCreateCategoryHandler(mockSvc)

	mockSvc.EXPECT().Create(gomock.Any(), int64(1), "Tech").
		Return(&models.CategoryDB{CategoryID: 3, UserID: 1, Name: "Tech"}, nil)
	rec := serve(h, http.MethodPost, "/api/categories", "/api/categories", `{"name":"Tech"}`, 1)
	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "/api/categories/3", rec.Header().Get("Location"))

	mockSvc.EXPECT().Create(gomock.Any(), int64(1), "Tech").Return(nil, services.ErrCategoryNameTaken)
	rec = serve(h, http.MethodPost, "/api/categories", "/api/categories", `{"name":"Tech"}`, 1)
	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Equal(t, "category name already exists", decodeError(t, rec))
}

func TestListCategoriesHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := NewMockCategorizer(ctrl)
	h := NewListCategoriesHandler(mockSvc)

	mockSvc.EXPECT().List(gomock.Any(), int64(1)).Return([]models.CategoryDB{}, nil)
	rec := serve(h, http.MethodGet, "/api/categories", "/api/categories", "", 1)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[]`, rec.Body.String())

	rec = serve(h, http.MethodGet, "/api/categories", "/api/categories", "", 0)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestGetUpdateDeleteCategoryHandlers(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := NewMockCategorizer(ctrl)

	mockSvc.EXPECT().Get(gomock.Any(), int64(1), int64(3)).Return(nil, services.ErrCategoryNotFound)
	rec := serve(NewGetCategoryHandler(mockSvc), http.MethodGet, "/api/categories/{id}", "/api/categories/3", "", 1)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "category not found", decodeError(t, rec))

	mockSvc.EXPECT().Update(gomock.Any(), int64(1), int64(3), "Art").Return(nil)
	rec = serve(NewUpdateCategoryHandler(mockSvc), http.MethodPut, "/api/categories/{id}", "/api/categories/3", `{"name":"Art"}`, 1)
	assert.Equal(t, http.StatusNoContent, rec.Code)

	mockSvc.EXPECT().Delete(gomock.Any(), int64(1), int64(3)).Return(nil)
	rec = serve(NewDeleteCategoryHandler(mockSvc), http.MethodDelete, "/api/categories/{id}", "/api/categories/3", "", 1)
	assert.Equal(t, http.StatusNoContent, rec.Code)

	rec = serve(NewDeleteCategoryHandler(mockSvc), http.MethodDelete, "/api/categories/{id}", "/api/categories/-1", "", 1)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
