package services

import (
	"context"
	"strings"
	"unicode/utf8"

	"github.com/pkg/errors"

	"github.com/sbilibin2017/linkvault/internal/logger"
	"github.com/sbilibin2017/linkvault/internal/models"
	"github.com/sbilibin2017/linkvault/internal/query"
	"github.com/sbilibin2017/linkvault/internal/repositories"
)

//go:generate mockgen -source=link.go -destination=mock_link.go -package=services

// LinkReader defines read operations on a user's links.
type LinkReader interface {
	GetByID(ctx context.Context, userID, linkID int64) (*models.LinkDB, error)
	List(ctx context.Context, userID int64, f models.LinkFilter, p query.Params) ([]models.LinkDB, int, error)
}

// LinkWriter defines write operations on a user's links.
type LinkWriter interface {
	Save(ctx context.Context, userID, collectionID int64, in models.LinkInput) (*models.LinkDB, error)
	Update(ctx context.Context, userID, linkID int64, in models.LinkInput) (bool, error)
	Move(ctx context.Context, userID, linkID, targetCollectionID int64) (bool, error)
	Delete(ctx context.Context, userID, linkID int64) (bool, error)
}

// CollectionFinder looks up a collection owned by a user.
type CollectionFinder interface {
	GetByID(ctx context.Context, userID, collectionID int64) (*models.CollectionDB, error)
}

// CategoryFinder looks up a category owned by a user.
type CategoryFinder interface {
	GetByID(ctx context.Context, userID, categoryID int64) (*models.CategoryDB, error)
}

// LinkService manages the links stored in a user's collections.
type LinkService struct {
	reader      LinkReader
	writer      LinkWriter
	collections CollectionFinder
	categories  CategoryFinder
}

func NewLinkService(reader LinkReader, writer LinkWriter, collections CollectionFinder, categories CategoryFinder) *LinkService {
	return &LinkService{
		reader:      reader,
		writer:      writer,
		collections: collections,
		categories:  categories,
	}
}

// Create adds a link to a collection of the user.
func (svc *LinkService) Create(ctx context.Context, userID, collectionID int64, in models.LinkInput) (*models.LinkDB, error) {
	in, err := normalizeLink(in)
	if err != nil {
		return nil, err
	}

	if err := svc.requireCollection(ctx, userID, collectionID, ErrCollectionNotFound); err != nil {
		return nil, err
	}
	if err := svc.requireCategory(ctx, userID, in.CategoryID); err != nil {
		return nil, err
	}

	l, err := svc.writer.Save(ctx, userID, collectionID, in)
	if errors.Is(err, repositories.ErrMissingCategory) {
		return nil, invalid(MsgInvalidCategory)
	}
	if err != nil {
		logger.Log.Errorw("failed to save link", "err", err)
		return nil, err
	}
	return l, nil
}

// List returns one page of links in a collection, optionally narrowed to a
// category and a search term.
func (svc *LinkService) List(ctx context.Context, userID, collectionID int64, categoryID *int64, p query.Params) (query.Page[models.LinkDB], error) {
	p = p.Normalize()
	if p.Sort == query.SortName {
		p.Sort = query.SortNewest
	}

	if err := svc.requireCollection(ctx, userID, collectionID, ErrCollectionNotFound); err != nil {
		return query.Page[models.LinkDB]{}, err
	}

	f := models.LinkFilter{CollectionID: collectionID, CategoryID: categoryID}
	items, total, err := svc.reader.List(ctx, userID, f, p)
	if err != nil {
		logger.Log.Errorw("failed to list links", "err", err)
		return query.Page[models.LinkDB]{}, err
	}
	return query.NewPage(items, p, total), nil
}

func (svc *LinkService) Get(ctx context.Context, userID, linkID int64) (*models.LinkDB, error) {
	l, err := svc.reader.GetByID(ctx, userID, linkID)
	if err != nil {
		logger.Log.Errorw("failed to get link", "err", err)
		return nil, err
	}
	if l == nil {
		return nil, ErrLinkNotFound
	}
	return l, nil
}

// Update replaces url, title, description and category. A nil category
// clears it.
func (svc *LinkService) Update(ctx context.Context, userID, linkID int64, in models.LinkInput) error {
	in, err := normalizeLink(in)
	if err != nil {
		return err
	}

	if _, err := svc.Get(ctx, userID, linkID); err != nil {
		return err
	}
	if err := svc.requireCategory(ctx, userID, in.CategoryID); err != nil {
		return err
	}

	ok, err := svc.writer.Update(ctx, userID, linkID, in)
	if errors.Is(err, repositories.ErrMissingCategory) {
		return invalid(MsgInvalidCategory)
	}
	if err != nil {
		logger.Log.Errorw("failed to update link", "err", err)
		return err
	}
	if !ok {
		return ErrLinkNotFound
	}
	return nil
}

func (svc *LinkService) Delete(ctx context.Context, userID, linkID int64) error {
	ok, err := svc.writer.Delete(ctx, userID, linkID)
	if err != nil {
		logger.Log.Errorw("failed to delete link", "err", err)
		return err
	}
	if !ok {
		return ErrLinkNotFound
	}
	return nil
}

// Move reassigns a link to another collection of the same user. Moving to
// the current collection is a no-op.
func (svc *LinkService) Move(ctx context.Context, userID, linkID, targetCollectionID int64) error {
	if targetCollectionID <= 0 {
		return invalid(MsgTargetCollectionRequired)
	}

	l, err := svc.Get(ctx, userID, linkID)
	if err != nil {
		return err
	}
	if err := svc.requireCollection(ctx, userID, targetCollectionID, ErrTargetCollectionNotFound); err != nil {
		return err
	}
	if l.CollectionID == targetCollectionID {
		return nil
	}

	ok, err := svc.writer.Move(ctx, userID, linkID, targetCollectionID)
	if err != nil {
		logger.Log.Errorw("failed to move link", "err", err)
		return err
	}
	if !ok {
		return ErrLinkNotFound
	}
	return nil
}

func (svc *LinkService) requireCollection(ctx context.Context, userID, collectionID int64, notFound error) error {
	c, err := svc.collections.GetByID(ctx, userID, collectionID)
	if err != nil {
		logger.Log.Errorw("failed to get collection", "err", err)
		return err
	}
	if c == nil {
		return notFound
	}
	return nil
}

func (svc *LinkService) requireCategory(ctx context.Context, userID int64, categoryID *int64) error {
	if categoryID == nil {
		return nil
	}
	c, err := svc.categories.GetByID(ctx, userID, *categoryID)
	if err != nil {
		logger.Log.Errorw("failed to get category", "err", err)
		return err
	}
	if c == nil {
		return invalid(MsgInvalidCategory)
	}
	return nil
}

func normalizeLink(in models.LinkInput) (models.LinkInput, error) {
	in.URL = strings.TrimSpace(in.URL)
	if in.URL == "" {
		return in, invalid(MsgURLRequired)
	}
	if utf8.RuneCountInString(in.URL) > models.LinkURLMaxLen {
		return in, invalid(MsgURLTooLong)
	}
	in.Title = optionalText(in.Title)
	in.Description = optionalText(in.Description)
	return in, nil
}
