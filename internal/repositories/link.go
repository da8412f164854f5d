package repositories

import (
	"context"
	"database/sql"

	sq "github.com/Masterminds/squirrel"
	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"

	"github.com/sbilibin2017/linkvault/internal/models"
	"github.com/sbilibin2017/linkvault/internal/query"
)

var linkColumns = []string{
	"link_id", "user_id", "collection_id", "category_id",
	"url", "title", "description", "created_at",
}

// LinkReadRepository reads links of a single owner.
type LinkReadRepository struct {
	db *sqlx.DB
}

func NewLinkReadRepository(db *sqlx.DB) *LinkReadRepository {
	return &LinkReadRepository{db: db}
}

// GetByID returns the link when it exists and belongs to userID, otherwise nil.
func (r *LinkReadRepository) GetByID(ctx context.Context, userID, linkID int64) (*models.LinkDB, error) {
	q, args, err := psql.Select(linkColumns...).
		From("links").
		Where(ownedBy(userID)).
		Where(sq.Eq{"link_id": linkID}).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, errors.Wrap(err, "build sql")
	}

	var l models.LinkDB
	err = sqlx.GetContext(ctx, r.db, &l, q, args...)
	logQuery(q, args, l.LinkID, err)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, translate(err, "get link")
	}
	return &l, nil
}

// List returns one page of the owner's links in a collection, optionally
// restricted to a category and to links whose url, title or description
// contains p.Q.
func (r *LinkReadRepository) List(ctx context.Context, userID int64, f models.LinkFilter, p query.Params) ([]models.LinkDB, int, error) {
	base := psql.Select().
		From("links").
		Where(ownedBy(userID)).
		Where(sq.Eq{"collection_id": f.CollectionID})
	if f.CategoryID != nil {
		base = base.Where(sq.Eq{"category_id": *f.CategoryID})
	}
	if p.Q != "" {
		pattern := containsPattern(p.Q)
		base = base.Where(sq.Or{
			sq.Like{"url": pattern},
			sq.Like{"title": pattern},
			sq.Like{"description": pattern},
		})
	}

	countSQL, countArgs, err := base.Column("COUNT(*)").ToSql()
	if err != nil {
		return nil, 0, errors.Wrap(err, "build count sql")
	}

	var total int
	err = sqlx.GetContext(ctx, r.db, &total, countSQL, countArgs...)
	logQuery(countSQL, countArgs, total, err)
	if err != nil {
		return nil, 0, translate(err, "count links")
	}

	q, args, err := base.Columns(linkColumns...).
		OrderBy(orderBy(p.Sort, "link_id")...).
		Limit(p.Limit()).
		Offset(p.Offset()).
		ToSql()
	if err != nil {
		return nil, 0, errors.Wrap(err, "build sql")
	}

	items := make([]models.LinkDB, 0, p.PageSize)
	err = sqlx.SelectContext(ctx, r.db, &items, q, args...)
	logQuery(q, args, len(items), err)
	if err != nil {
		return nil, 0, translate(err, "list links")
	}

	return items, total, nil
}

// LinkWriteRepository mutates links of a single owner.
type LinkWriteRepository struct {
	db       *sqlx.DB
	txGetter TxGetter
}

func NewLinkWriteRepository(db *sqlx.DB, txGetter TxGetter) *LinkWriteRepository {
	return &LinkWriteRepository{db: db, txGetter: txGetter}
}

// Save inserts a link into collectionID.
func (r *LinkWriteRepository) Save(ctx context.Context, userID, collectionID int64, in models.LinkInput) (*models.LinkDB, error) {
	q, args, err := psql.Insert("links").
		Columns("user_id", "collection_id", "category_id", "url", "title", "description", "created_at").
		Values(userID, collectionID, in.CategoryID, in.URL, in.Title, in.Description, sq.Expr("NOW()")).
		Suffix("RETURNING link_id, user_id, collection_id, category_id, url, title, description, created_at").
		ToSql()
	if err != nil {
		return nil, errors.Wrap(err, "build sql")
	}

	var l models.LinkDB
	err = sqlx.GetContext(ctx, executor(ctx, r.db, r.txGetter), &l, q, args...)
	logQuery(q, args, l.LinkID, err)

	if err != nil {
		return nil, translate(err, "save link")
	}
	return &l, nil
}

// Update replaces url, title, description and category of a link.
func (r *LinkWriteRepository) Update(ctx context.Context, userID, linkID int64, in models.LinkInput) (bool, error) {
	q, args, err := psql.Update("links").
		SetMap(map[string]any{
			"url":         in.URL,
			"title":       in.Title,
			"description": in.Description,
			"category_id": in.CategoryID,
		}).
		Where(ownedBy(userID)).
		Where(sq.Eq{"link_id": linkID}).
		ToSql()
	if err != nil {
		return false, errors.Wrap(err, "build sql")
	}

	return r.exec(ctx, q, args, "update link")
}

// Move reassigns a link to targetCollectionID.
func (r *LinkWriteRepository) Move(ctx context.Context, userID, linkID, targetCollectionID int64) (bool, error) {
	q, args, err := psql.Update("links").
		Set("collection_id", targetCollectionID).
		Where(ownedBy(userID)).
		Where(sq.Eq{"link_id": linkID}).
		ToSql()
	if err != nil {
		return false, errors.Wrap(err, "build sql")
	}

	return r.exec(ctx, q, args, "move link")
}

// Delete removes a link.
func (r *LinkWriteRepository) Delete(ctx context.Context, userID, linkID int64) (bool, error) {
	q, args, err := psql.Delete("links").
		Where(ownedBy(userID)).
		Where(sq.Eq{"link_id": linkID}).
		ToSql()
	if err != nil {
		return false, errors.Wrap(err, "build sql")
	}

	return r.exec(ctx, q, args, "delete link")
}

// ClearCategory sets category_id to NULL on every link of userID tagged
// with categoryID and returns how many links changed.
func (r *LinkWriteRepository) ClearCategory(ctx context.Context, userID, categoryID int64) (int64, error) {
	q, args, err := psql.Update("links").
		Set("category_id", nil).
		Where(ownedBy(userID)).
		Where(sq.Eq{"category_id": categoryID}).
		ToSql()
	if err != nil {
		return 0, errors.Wrap(err, "build sql")
	}

	res, err := executor(ctx, r.db, r.txGetter).ExecContext(ctx, q, args...)
	n := rowsAffected(res)
	logQuery(q, args, n, err)

	if err != nil {
		return 0, translate(err, "clear link category")
	}
	return n, nil
}

func (r *LinkWriteRepository) exec(ctx context.Context, q string, args []any, op string) (bool, error) {
	res, err := executor(ctx, r.db, r.txGetter).ExecContext(ctx, q, args...)
	n := rowsAffected(res)
	logQuery(q, args, n, err)

	if err != nil {
		return false, translate(err, op)
	}
	return n > 0, nil
}
