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

var collectionColumns = []string{"collection_id", "user_id", "name", "created_at"}

// CollectionReadRepository reads collections of a single owner.
type CollectionReadRepository struct {
	db *sqlx.DB
}

func NewCollectionReadRepository(db *sqlx.DB) *CollectionReadRepository {
	return &CollectionReadRepository{db: db}
}

// GetByID returns the collection when it exists and belongs to userID, otherwise nil.
func (r *CollectionReadRepository) GetByID(ctx context.Context, userID, collectionID int64) (*models.CollectionDB, error) {
	q, args, err := psql.Select(collectionColumns...).
		From("collections").
		Where(ownedBy(userID)).
		Where(sq.Eq{"collection_id": collectionID}).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, errors.Wrap(err, "build sql")
	}

	var c models.CollectionDB
	err = sqlx.GetContext(ctx, r.db, &c, q, args...)
	logQuery(q, args, c.CollectionID, err)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, translate(err, "get collection")
	}
	return &c, nil
}

// ExistsByName reports whether userID owns a collection called name,
// ignoring excludeID (0 excludes nothing).
func (r *CollectionReadRepository) ExistsByName(ctx context.Context, userID int64, name string, excludeID int64) (bool, error) {
	sub := psql.Select("1").
		From("collections").
		Where(ownedBy(userID)).
		Where(sq.Eq{"name": name})
	if excludeID > 0 {
		sub = sub.Where(sq.NotEq{"collection_id": excludeID})
	}

	q, args, err := sub.Prefix("SELECT EXISTS (").Suffix(")").ToSql()
	if err != nil {
		return false, errors.Wrap(err, "build sql")
	}

	var exists bool
	err = sqlx.GetContext(ctx, r.db, &exists, q, args...)
	logQuery(q, args, exists, err)

	if err != nil {
		return false, translate(err, "collection exists")
	}
	return exists, nil
}

// List returns one page of the owner's collections and the total match count.
func (r *CollectionReadRepository) List(ctx context.Context, userID int64, p query.Params) ([]models.CollectionDB, int, error) {
	base := psql.Select().From("collections").Where(ownedBy(userID))
	if p.Q != "" {
		base = base.Where(sq.Like{"name": containsPattern(p.Q)})
	}

	countSQL, countArgs, err := base.Column("COUNT(*)").ToSql()
	if err != nil {
		return nil, 0, errors.Wrap(err, "build count sql")
	}

	var total int
	err = sqlx.GetContext(ctx, r.db, &total, countSQL, countArgs...)
	logQuery(countSQL, countArgs, total, err)
	if err != nil {
		return nil, 0, translate(err, "count collections")
	}

	q, args, err := base.Columns(collectionColumns...).
		OrderBy(orderBy(p.Sort, "collection_id")...).
		Limit(p.Limit()).
		Offset(p.Offset()).
		ToSql()
	if err != nil {
		return nil, 0, errors.Wrap(err, "build sql")
	}

	items := make([]models.CollectionDB, 0, p.PageSize)
	err = sqlx.SelectContext(ctx, r.db, &items, q, args...)
	logQuery(q, args, len(items), err)
	if err != nil {
		return nil, 0, translate(err, "list collections")
	}

	return items, total, nil
}

// CollectionWriteRepository mutates collections of a single owner.
type CollectionWriteRepository struct {
	db       *sqlx.DB
	txGetter TxGetter
}

func NewCollectionWriteRepository(db *sqlx.DB, txGetter TxGetter) *CollectionWriteRepository {
	return &CollectionWriteRepository{db: db, txGetter: txGetter}
}

// Save inserts a collection. A name already used by the owner yields ErrDuplicate.
func (r *CollectionWriteRepository) Save(ctx context.Context, userID int64, name string) (*models.CollectionDB, error) {
	q, args, err := psql.Insert("collections").
		Columns("user_id", "name", "created_at").
		Values(userID, name, sq.Expr("NOW()")).
		Suffix("RETURNING collection_id, user_id, name, created_at").
		ToSql()
	if err != nil {
		return nil, errors.Wrap(err, "build sql")
	}

	var c models.CollectionDB
	err = sqlx.GetContext(ctx, executor(ctx, r.db, r.txGetter), &c, q, args...)
	logQuery(q, args, c.CollectionID, err)

	if err != nil {
		return nil, translate(err, "save collection")
	}
	return &c, nil
}

// Rename sets a new name. It reports false when nothing owned by userID matched.
func (r *CollectionWriteRepository) Rename(ctx context.Context, userID, collectionID int64, name string) (bool, error) {
	q, args, err := psql.Update("collections").
		Set("name", name).
		Where(ownedBy(userID)).
		Where(sq.Eq{"collection_id": collectionID}).
		ToSql()
	if err != nil {
		return false, errors.Wrap(err, "build sql")
	}

	res, err := executor(ctx, r.db, r.txGetter).ExecContext(ctx, q, args...)
	n := rowsAffected(res)
	logQuery(q, args, n, err)

	if err != nil {
		return false, translate(err, "rename collection")
	}
	return n > 0, nil
}

// Delete removes a collection; its links go with it through ON DELETE CASCADE.
func (r *CollectionWriteRepository) Delete(ctx context.Context, userID, collectionID int64) (bool, error) {
	q, args, err := psql.Delete("collections").
		Where(ownedBy(userID)).
		Where(sq.Eq{"collection_id": collectionID}).
		ToSql()
	if err != nil {
		return false, errors.Wrap(err, "build sql")
	}

	res, err := executor(ctx, r.db, r.txGetter).ExecContext(ctx, q, args...)
	n := rowsAffected(res)
	logQuery(q, args, n, err)

	if err != nil {
		return false, translate(err, "delete collection")
	}
	return n > 0, nil
}
