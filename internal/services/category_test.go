package services_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sbilibin2017/linkvault/internal/models"
	"github.com/sbilibin2017/linkvault/internal/services"
)

type categoryMocks struct {
	reader   *services.MockCategoryReader
	writer   *services.MockCategoryWriter
	unlinker *services.MockCategoryUnlinker
	tx       *services.MockTransactor
}

func newCategoryService(t *testing.T) (*services.CategoryService, categoryMocks) {
	ctrl := gomock.NewController(t)
	m := categoryMocks{
		reader:   services.NewMockCategoryReader(ctrl),
		writer:   services.NewMockCategoryWriter(ctrl),
		unlinker: services.NewMockCategoryUnlinker(ctrl),
		tx:       services.NewMockTransactor(ctrl),
	}
	return services.NewCategoryService(m.reader, m.writer, m.unlinker, m.tx), m
}

func runInTx(m categoryMocks) {
	m.tx.EXPECT().
		Do(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, fn func(ctx context.Context) error) error {
			return fn(ctx)
		})
}

func TestCategoryService_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		svc, m := newCategoryService(t)
		want := &models.CategoryDB{CategoryID: 3, UserID: 1, Name: "Tech"}

		m.reader.EXPECT().ExistsByName(gomock.Any(), int64(1), "Tech", int64(0)).Return(false, nil)
		m.writer.EXPECT().Save(gomock.Any(), int64(1), "Tech").Return(want, nil)

		got, err := svc.Create(ctx, 1, " Tech")
		require.NoError(t, err)
		assert.Equal(t, want, got)
	})

	t.Run("too long", func(t *testing.T) {
		svc, _ := newCategoryService(t)
		_, err := svc.Create(ctx, 1, strings.Repeat("x", 81))
		assert.Equal(t, "name is too long (max 80)", validationMessage(t, err))
	})

	t.Run("name taken", func(t *testing.T) {
		svc, m := newCategoryService(t)
		m.reader.EXPECT().ExistsByName(gomock.Any(), int64(1), "Tech", int64(0)).Return(true, nil)

		_, err := svc.Create(ctx, 1, "Tech")
		assert.ErrorIs(t, err, services.ErrConflict)
		assert.EqualError(t, err, "category name already exists")
	})
}

func TestCategoryService_List(t *testing.T) {
	svc, m := newCategoryService(t)

	m.reader.EXPECT().List(gomock.Any(), int64(1)).Return(nil, nil)
	items, err := svc.List(context.Background(), 1)
	require.NoError(t, err)
	assert.NotNil(t, items)
	assert.Empty(t, items)
}

func TestCategoryService_Update(t *testing.T) {
	svc, m := newCategoryService(t)
	existing := &models.CategoryDB{CategoryID: 3, UserID: 1, Name: "Tech"}

	m.reader.EXPECT().GetByID(gomock.Any(), int64(1), int64(3)).Return(existing, nil)
	m.reader.EXPECT().ExistsByName(gomock.Any(), int64(1), "Art", int64(3)).Return(true, nil)

	err := svc.Update(context.Background(), 1, 3, "Art")
	assert.ErrorIs(t, err, services.ErrCategoryNameTaken)
}

func TestCategoryService_Delete(t *testing.T) {
	ctx := context.Background()
	existing := &models.CategoryDB{CategoryID: 3, UserID: 1, Name: "Tech"}

	t.Run("unlinks then deletes in one transaction", func(t *testing.T) {
		svc, m := newCategoryService(t)
		m.reader.EXPECT().GetByID(gomock.Any(), int64(1), int64(3)).Return(existing, nil)
		runInTx(m)
		gomock.InOrder(
			m.unlinker.EXPECT().ClearCategory(gomock.Any(), int64(1), int64(3)).Return(int64(2), nil),
			m.writer.EXPECT().Delete(gomock.Any(), int64(1), int64(3)).Return(true, nil),
		)

		assert.NoError(t, svc.Delete(ctx, 1, 3))
	})

	t.Run("missing category", func(t *testing.T) {
		svc, m := newCategoryService(t)
		m.reader.EXPECT().GetByID(gomock.Any(), int64(1), int64(3)).Return(nil, nil)

		err := svc.Delete(ctx, 1, 3)
		assert.ErrorIs(t, err, services.ErrNotFound)
		assert.EqualError(t, err, "category not found")
	})

	t.Run("unlink failure skips delete", func(t *testing.T) {
		svc, m := newCategoryService(t)
		m.reader.EXPECT().GetByID(gomock.Any(), int64(1), int64(3)).Return(existing, nil)
		runInTx(m)
		m.unlinker.EXPECT().ClearCategory(gomock.Any(), int64(1), int64(3)).Return(int64(0), errors.New("db error"))

		assert.EqualError(t, svc.Delete(ctx, 1, 3), "db error")
	})

	t.Run("delete failure is returned from the transaction", func(t *testing.T) {
		svc, m := newCategoryService(t)
		m.reader.EXPECT().GetByID(gomock.Any(), int64(1), int64(3)).Return(existing, nil)
		runInTx(m)
		m.unlinker.EXPECT().ClearCategory(gomock.Any(), int64(1), int64(3)).Return(int64(1), nil)
		m.writer.EXPECT().Delete(gomock.Any(), int64(1), int64(3)).Return(false, errors.New("fk error"))

		assert.EqualError(t, svc.Delete(ctx, 1, 3), "fk error")
	})
}
