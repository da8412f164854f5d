package repositories

import (
	"context"
	"database/sql"

	sq "github.com/Masterminds/squirrel"
	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"

	"github.com/sbilibin2017/linkvault/internal/models"
)

var categoryColumns = []string{"category_id", "user_id", "name", "created_at"}

// CategoryReadRepository reads categories of a single owner.
type CategoryReadRepository struct {
	db *sqlx.DB
}

func NewCategoryReadRepository(db *sqlx.DB) *CategoryReadRepository {
	return &CategoryReadRepository{db: db}
}

// GetByID returns the category when it exists and belongs to userID, otherwise nil.
func (r *CategoryReadRepository) GetByID(ctx context.Context, userID, categoryID int64) (*models.CategoryDB, error) {
	q, args, err := psql.Select(categoryColumns...).
		From("categories").
		Where(ownedBy(userID)).
		Where(sq.Eq{"category_id": categoryID}).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, errors.Wrap(err, "build sql")
	}

	var c models.CategoryDB
	err = sqlx.GetContext(ctx, r.db, &c, q, args...)
	logQuery(q, args, c.CategoryID, err)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, translate(err, "get category")
	}
	return &c, nil
}

// ExistsByName reports whether userID owns a category called name,
// ignoring excludeID (0 excludes nothing).
func (r *CategoryReadRepository) ExistsByName(ctx context.Context, userID int64, name string, excludeID int64) (bool, error) {
	sub := psql.Select("1").
		From("categories").
		Where(ownedBy(userID)).
		Where(sq.Eq{"name": name})
	if excludeID > 0 {
		sub = sub.Where(sq.NotEq{"category_id": excludeID})
	}

	q, args, err := sub.Prefix("SELECT EXISTS (").Suffix(")").ToSql()
	if err != nil {
		return false, errors.Wrap(err, "build sql")
	}

	var exists bool
	err = sqlx.GetContext(ctx, r.db, &exists, q, args...)
	logQuery(q, args, exists, err)

	if err != nil {
		return false, translate(err, "category exists")
	}
	return exists, nil
}

// List returns every category of the owner ordered by name.
func (r *CategoryReadRepository) List(ctx context.Context, userID int64) ([]models.CategoryDB, error) {
	q, args, err := psql.Select(categoryColumns...).
		From("categories").
		Where(ownedBy(userID)).
		OrderBy("name ASC", "category_id ASC").
		ToSql()
	if err != nil {
		return nil, errors.Wrap(err, "build sql")
	}

	items := make([]models.CategoryDB, 0)
	err = sqlx.SelectContext(ctx, r.db, &items, q, args...)
	logQuery(q, args, len(items), err)

	if err != nil {
		return nil, translate(err, "list categories")
	}
	return items, nil
}

// CategoryWriteRepository mutates categories of a single owner.
type CategoryWriteRepository struct {
	db       *sqlx.DB
	txGetter TxGetter
}

func NewCategoryWriteRepository(db *sqlx.DB, txGetter TxGetter) *CategoryWriteRepository {
	return &CategoryWriteRepository{db: db, txGetter: txGetter}
}

// Save inserts a category. A name already used by the owner yields ErrDuplicate.
func (r *CategoryWriteRepository) Save(ctx context.Context, userID int64, name string) (*models.CategoryDB, error) {
	q, args, err := psql.Insert("categories").
		Columns("user_id", "name", "created_at").
		Values(userID, name, sq.Expr("NOW()")).
		Suffix("RETURNING category_id, user_id, name, created_at").
		ToSql()
	if err != nil {
		return nil, errors.Wrap(err, "build sql")
	}

	var c models.CategoryDB
	err = sqlx.GetContext(ctx, executor(ctx, r.db, r.txGetter), &c, q, args...)
	logQuery(q, args, c.CategoryID, err)

	if err != nil {
		return nil, translate(err, "save category")
	}
	return &c, nil
}

// Rename sets a new name. It reports false when nothing owned by userID matched.
func (r *CategoryWriteRepository) Rename(ctx context.Context, userID, categoryID int64, name string) (bool, error) {
	q, args, err := psql.Update("categories").
		Set("name", name).
		Where(ownedBy(userID)).
		Where(sq.Eq{"category_id": categoryID}).
		ToSql()
	if err != nil {
		return false, errors.Wrap(err, "build sql")
	}

	res, err := executor(ctx, r.db, r.txGetter).ExecContext(ctx, q, args...)
	n := rowsAffected(res)
	logQuery(q, args, n, err)

	if err != nil {
		return false, translate(err, "rename category")
	}
	return n > 0, nil
}

// Delete removes the category row. Links must be detached first, the
// foreign key from links does not cascade.
func (r *CategoryWriteRepository) Delete(ctx context.Context, userID, categoryID int64) (bool, error) {
	q, args, err := psql.Delete("categories").
		Where(ownedBy(userID)).
		Where(sq.Eq{"category_id": categoryID}).
		ToSql()
	if err != nil {
		return false, errors.Wrap(err, "build sql")
	}

	res, err := executor(ctx, r.db, r.txGetter).ExecContext(ctx, q, args...)
	n := rowsAffected(res)
	logQuery(q, args, n, err)

	if err != nil {
		return false, translate(err, "delete category")
	}
	return n > 0, nil
}
