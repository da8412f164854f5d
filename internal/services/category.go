package services

import (
	"context"

	"github.com/pkg/errors"

	"github.com/sbilibin2017/linkvault/internal/logger"
	"github.com/sbilibin2017/linkvault/internal/models"
	"github.com/sbilibin2017/linkvault/internal/repositories"
)

//go:generate mockgen -source=category.go -destination=mock_category.go -package=services

// CategoryReader defines read operations on a user's categories.
type CategoryReader interface {
	GetByID(ctx context.Context, userID, categoryID int64) (*models.CategoryDB, error)
	ExistsByName(ctx context.Context, userID int64, name string, excludeID int64) (bool, error)
	List(ctx context.Context, userID int64) ([]models.CategoryDB, error)
}

// CategoryWriter defines write operations on a user's categories.
type CategoryWriter interface {
	Save(ctx context.Context, userID int64, name string) (*models.CategoryDB, error)
	Rename(ctx context.Context, userID, categoryID int64, name string) (bool, error)
	Delete(ctx context.Context, userID, categoryID int64) (bool, error)
}

// CategoryUnlinker detaches links from a category.
type CategoryUnlinker interface {
	ClearCategory(ctx context.Context, userID, categoryID int64) (int64, error)
}

// Transactor runs fn inside a single database transaction.
type Transactor interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}

// CategoryService manages link categories of a user.
type CategoryService struct {
	reader   CategoryReader
	writer   CategoryWriter
	unlinker CategoryUnlinker
	tx       Transactor
}

func NewCategoryService(reader CategoryReader, writer CategoryWriter, unlinker CategoryUnlinker, tx Transactor) *CategoryService {
	return &CategoryService{
		reader:   reader,
		writer:   writer,
		unlinker: unlinker,
		tx:       tx,
	}
}

func (svc *CategoryService) Create(ctx context.Context, userID int64, name string) (*models.CategoryDB, error) {
	name, err := normalizeName(name, models.CategoryNameMaxLen)
	if err != nil {
		return nil, err
	}

	exists, err := svc.reader.ExistsByName(ctx, userID, name, 0)
	if err != nil {
		logger.Log.Errorw("failed to check category name", "err", err)
		return nil, err
	}
	if exists {
		return nil, ErrCategoryNameTaken
	}

	c, err := svc.writer.Save(ctx, userID, name)
	if errors.Is(err, repositories.ErrDuplicate) {
		return nil, ErrCategoryNameTaken
	}
	if err != nil {
		logger.Log.Errorw("failed to save category", "err", err)
		return nil, err
	}
	return c, nil
}

// List returns all categories of the user ordered by name.
func (svc *CategoryService) List(ctx context.Context, userID int64) ([]models.CategoryDB, error) {
	items, err := svc.reader.List(ctx, userID)
	if err != nil {
		logger.Log.Errorw("failed to list categories", "err", err)
		return nil, err
	}
	if items == nil {
		items = []models.CategoryDB{}
	}
	return items, nil
}

func (svc *CategoryService) Get(ctx context.Context, userID, categoryID int64) (*models.CategoryDB, error) {
	c, err := svc.reader.GetByID(ctx, userID, categoryID)
	if err != nil {
		logger.Log.Errorw("failed to get category", "err", err)
		return nil, err
	}
	if c == nil {
		return nil, ErrCategoryNotFound
	}
	return c, nil
}

func (svc *CategoryService) Update(ctx context.Context, userID, categoryID int64, name string) error {
	name, err := normalizeName(name, models.CategoryNameMaxLen)
	if err != nil {
		return err
	}

	if _, err := svc.Get(ctx, userID, categoryID); err != nil {
		return err
	}

	exists, err := svc.reader.ExistsByName(ctx, userID, name, categoryID)
	if err != nil {
		logger.Log.Errorw("failed to check category name", "err", err)
		return err
	}
	if exists {
		return ErrCategoryNameTaken
	}

	ok, err := svc.writer.Rename(ctx, userID, categoryID, name)
	if errors.Is(err, repositories.ErrDuplicate) {
		return ErrCategoryNameTaken
	}
	if err != nil {
		logger.Log.Errorw("failed to rename category", "err", err)
		return err
	}
	if !ok {
		return ErrCategoryNotFound
	}
	return nil
}

// Delete detaches the category from the user's links and removes it, both
// in one transaction.
func (svc *CategoryService) Delete(ctx context.Context, userID, categoryID int64) error {
	if _, err := svc.Get(ctx, userID, categoryID); err != nil {
		return err
	}

	return svc.tx.Do(ctx, func(ctx context.Context) error {
		n, err := svc.unlinker.ClearCategory(ctx, userID, categoryID)
		if err != nil {
			logger.Log.Errorw("failed to unlink category", "err", err)
			return err
		}

		ok, err := svc.writer.Delete(ctx, userID, categoryID)
		if err != nil {
			logger.Log.Errorw("failed to delete category", "err", err)
			return err
		}
		if !ok {
			return ErrCategoryNotFound
		}

		logger.Log.Infow("category deleted", "category_id", categoryID, "unlinked", n)
		return nil
	})
}
