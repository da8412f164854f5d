package services

import (
	"context"

	"github.com/pkg/errors"

	"github.com/sbilibin2017/linkvault/internal/logger"
	"github.com/sbilibin2017/linkvault/internal/models"
	"github.com/sbilibin2017/linkvault/internal/query"
	"github.com/sbilibin2017/linkvault/internal/repositories"
)

//go:generate mockgen -source=collection.go -destination=mock_collection.go -package=services

// CollectionReader defines read operations on a user's collections.
type CollectionReader interface {
	GetByID(ctx context.Context, userID, collectionID int64) (*models.CollectionDB, error)
	ExistsByName(ctx context.Context, userID int64, name string, excludeID int64) (bool, error)
	List(ctx context.Context, userID int64, p query.Params) ([]models.CollectionDB, int, error)
}

// CollectionWriter defines write operations on a user's collections.
type CollectionWriter interface {
	Save(ctx context.Context, userID int64, name string) (*models.CollectionDB, error)
	Rename(ctx context.Context, userID, collectionID int64, name string) (bool, error)
	Delete(ctx context.Context, userID, collectionID int64) (bool, error)
}

// CollectionService manages named link collections of a user.
type CollectionService struct {
	reader CollectionReader
	writer CollectionWriter
}

func NewCollectionService(reader CollectionReader, writer CollectionWriter) *CollectionService {
	return &CollectionService{reader: reader, writer: writer}
}

func (svc *CollectionService) Create(ctx context.Context, userID int64, name string) (*models.CollectionDB, error) {
	name, err := normalizeName(name, models.CollectionNameMaxLen)
	if err != nil {
		return nil, err
	}

	exists, err := svc.reader.ExistsByName(ctx, userID, name, 0)
	if err != nil {
		logger.Log.Errorw("failed to check collection name", "err", err)
		return nil, err
	}
	if exists {
		return nil, ErrCollectionNameTaken
	}

	c, err := svc.writer.Save(ctx, userID, name)
	if errors.Is(err, repositories.ErrDuplicate) {
		return nil, ErrCollectionNameTaken
	}
	if err != nil {
		logger.Log.Errorw("failed to save collection", "err", err)
		return nil, err
	}
	return c, nil
}

// List returns one page of the user's collections.
func (svc *CollectionService) List(ctx context.Context, userID int64, p query.Params) (query.Page[models.CollectionDB], error) {
	p = p.Normalize()

	items, total, err := svc.reader.List(ctx, userID, p)
	if err != nil {
		logger.Log.Errorw("failed to list collections", "err", err)
		return query.Page[models.CollectionDB]{}, err
	}
	return query.NewPage(items, p, total), nil
}

func (svc *CollectionService) Get(ctx context.Context, userID, collectionID int64) (*models.CollectionDB, error) {
	c, err := svc.reader.GetByID(ctx, userID, collectionID)
	if err != nil {
		logger.Log.Errorw("failed to get collection", "err", err)
		return nil, err
	}
	if c == nil {
		return nil, ErrCollectionNotFound
	}
	return c, nil
}

// Update renames a collection. The new name must not collide with another
// collection of the same user.
func (svc *CollectionService) Update(ctx context.Context, userID, collectionID int64, name string) error {
	name, err := normalizeName(name, models.CollectionNameMaxLen)
	if err != nil {
		return err
	}

	if _, err := svc.Get(ctx, userID, collectionID); err != nil {
		return err
	}

	exists, err := svc.reader.ExistsByName(ctx, userID, name, collectionID)
	if err != nil {
		logger.Log.Errorw("failed to check collection name", "err", err)
		return err
	}
	if exists {
		return ErrCollectionNameTaken
	}

	ok, err := svc.writer.Rename(ctx, userID, collectionID, name)
	if errors.Is(err, repositories.ErrDuplicate) {
		return ErrCollectionNameTaken
	}
	if err != nil {
		logger.Log.Errorw("failed to rename collection", "err", err)
		return err
	}
	if !ok {
		return ErrCollectionNotFound
	}
	return nil
}

// Delete removes a collection together with its links.
func (svc *CollectionService) Delete(ctx context.Context, userID, collectionID int64) error {
	ok, err := svc.writer.Delete(ctx, userID, collectionID)
	if err != nil {
		logger.Log.Errorw("failed to delete collection", "err", err)
		return err
	}
	if !ok {
		return ErrCollectionNotFound
	}
	return nil
}
