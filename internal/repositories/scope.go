package repositories

import (
	"context"
	"strings"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"

	"github.com/sbilibin2017/linkvault/internal/logger"
	"github.com/sbilibin2017/linkvault/internal/query"
)

// ErrDuplicate is returned when a write hits a unique constraint.
var ErrDuplicate = errors.New("duplicate key value")

// ErrMissingCategory is returned when a link refers to a category row that
// no longer exists.
var ErrMissingCategory = errors.New("referenced category does not exist")

const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"

	linkCategoryFK = "links_category_id_fkey"
)

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// ownedBy is the ownership predicate composed into every query on
// collections, categories and links.
func ownedBy(userID int64) sq.Eq {
	return sq.Eq{"user_id": userID}
}

// TxGetter returns the transaction bound to ctx, if any.
type TxGetter func(ctx context.Context) *sqlx.Tx

func executor(ctx context.Context, db *sqlx.DB, txGetter TxGetter) sqlx.ExtContext {
	if txGetter != nil {
		if tx := txGetter(ctx); tx != nil {
			return tx
		}
	}
	return db
}

// translate maps unique violations to ErrDuplicate, a dangling link category
// to ErrMissingCategory and wraps everything else.
func translate(err error, op string) error {
	if err == nil {
		return nil
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch {
		case pgErr.Code == pgUniqueViolation:
			return errors.Wrap(ErrDuplicate, pgErr.ConstraintName)
		case pgErr.Code == pgForeignKeyViolation && pgErr.ConstraintName == linkCategoryFK:
			return errors.Wrap(ErrMissingCategory, pgErr.ConstraintName)
		}
	}
	return errors.Wrap(err, op)
}

// containsPattern builds a LIKE pattern matching term anywhere.
func containsPattern(term string) string {
	r := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
	return "%" + r.Replace(term) + "%"
}

// orderBy returns the ORDER BY terms for a list sort; id breaks ties.
func orderBy(s query.Sort, idColumn string) []string {
	switch s {
	case query.SortOldest:
		return []string{"created_at ASC", idColumn + " ASC"}
	case query.SortName:
		return []string{"name ASC", idColumn + " ASC"}
	default:
		return []string{"created_at DESC", idColumn + " DESC"}
	}
}

func oneLine(q string) string {
	return strings.Join(strings.Fields(q), " ")
}

func logQuery(q string, args []any, result any, err error) {
	logger.Log.Infow("query",
		"sql", oneLine(q),
		"args", args,
		"result", result,
		"error", err,
	)
}

func rowsAffected(res interface{ RowsAffected() (int64, error) }) int64 {
	if res == nil {
		return 0
	}
	n, _ := res.RowsAffected()
	return n
}
