package repo

import (
	"context"
	"database/sql"

	"github.com/didi/gendry/builder"

	"github.com/xxxsen/notelink/internal/model"
	"github.com/xxxsen/notelink/internal/pkg/dbutil"
	appErr "github.com/xxxsen/notelink/internal/pkg/errors"
)

type ShareRepo struct {
	db *sql.DB
}

func NewShareRepo(db *sql.DB) *ShareRepo {
	return &ShareRepo{db: db}
}

// Create inserts a share row. The primary key on token is the uniqueness
// guarantee; a colliding insert returns ErrConflict instead of overwriting.
func (r *ShareRepo) Create(ctx context.Context, share *model.Share) error {
	data := map[string]interface{}{
		"token":       share.Token,
		"document_id": share.DocumentID,
		"access_mode": share.AccessMode,
		"expires_at":  share.ExpiresAt,
		"ctime":       share.Ctime,
	}
	sqlStr, args, err := builder.BuildInsert("shares", []map[string]interface{}{data})
	if err != nil {
		return err
	}
	sqlStr, args = dbutil.Finalize(sqlStr, args)
	_, err = r.db.ExecContext(ctx, sqlStr, args...)
	if err != nil {
		if dbutil.IsConflict(err) {
			return appErr.ErrConflict
		}
		return err
	}
	return nil
}

func (r *ShareRepo) GetByToken(ctx context.Context, token string) (*model.Share, error) {
	where := map[string]interface{}{"token": token}
	sqlStr, args, err := builder.BuildSelect("shares", where, []string{"token", "document_id", "access_mode", "expires_at", "ctime"})
	if err != nil {
		return nil, err
	}
	sqlStr, args = dbutil.Finalize(sqlStr, args)
	rows, err := r.db.QueryContext(ctx, sqlStr, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	if !rows.Next() {
		return nil, appErr.ErrNotFound
	}
	var share model.Share
	if err := rows.Scan(&share.Token, &share.DocumentID, &share.AccessMode, &share.ExpiresAt, &share.Ctime); err != nil {
		return nil, err
	}
	return &share, nil
}

// DeleteByToken removes the row if present. Deleting an absent token is
// not an error.
func (r *ShareRepo) DeleteByToken(ctx context.Context, token string) error {
	where := map[string]interface{}{"token": token}
	sqlStr, args, err := builder.BuildDelete("shares", where)
	if err != nil {
		return err
	}
	sqlStr, args = dbutil.Finalize(sqlStr, args)
	_, err = r.db.ExecContext(ctx, sqlStr, args...)
	return err
}

// DeleteExpired purges rows whose expiry has passed. Resolution re-checks
// expiry on every read, so this only reclaims storage.
func (r *ShareRepo) DeleteExpired(ctx context.Context, now int64) (int64, error) {
	where := map[string]interface{}{
		"expires_at >":  0,
		"expires_at <=": now,
	}
	sqlStr, args, err := builder.BuildDelete("shares", where)
	if err != nil {
		return 0, err
	}
	sqlStr, args = dbutil.Finalize(sqlStr, args)
	result, err := r.db.ExecContext(ctx, sqlStr, args...)
	if err != nil {
		return 0, err
	}
	affected, _ := result.RowsAffected()
	return affected, nil
}
