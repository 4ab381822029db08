package repo

import (
	"context"
	"database/sql"

	"github.com/didi/gendry/builder"

	"github.com/xxxsen/notelink/internal/model"
	"github.com/xxxsen/notelink/internal/pkg/dbutil"
	appErr "github.com/xxxsen/notelink/internal/pkg/errors"
)

const (
	DocumentStateNormal  = 1
	DocumentStateDeleted = 2
)

// DocumentRepo reads the documents owned by the editor product. The share
// core never writes through it; Create exists for seeding and tests.
type DocumentRepo struct {
	db *sql.DB
}

func NewDocumentRepo(db *sql.DB) *DocumentRepo {
	return &DocumentRepo{db: db}
}

func (r *DocumentRepo) Create(ctx context.Context, doc *model.Document) error {
	data := map[string]interface{}{
		"id":      doc.ID,
		"title":   doc.Title,
		"content": doc.Content,
		"summary": doc.Summary,
		"state":   doc.State,
		"pinned":  doc.Pinned,
		"ctime":   doc.Ctime,
		"mtime":   doc.Mtime,
	}
	sqlStr, args, err := builder.BuildInsert("documents", []map[string]interface{}{data})
	if err != nil {
		return err
	}
	sqlStr, args = dbutil.Finalize(sqlStr, args)
	_, err = r.db.ExecContext(ctx, sqlStr, args...)
	return err
}

func (r *DocumentRepo) GetByID(ctx context.Context, id string) (*model.Document, error) {
	where := map[string]interface{}{
		"id":    id,
		"state": DocumentStateNormal,
	}
	sqlStr, args, err := builder.BuildSelect("documents", where, []string{"id", "title", "content", "summary", "state", "pinned", "ctime", "mtime"})
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
	var doc model.Document
	if err := rows.Scan(&doc.ID, &doc.Title, &doc.Content, &doc.Summary, &doc.State, &doc.Pinned, &doc.Ctime, &doc.Mtime); err != nil {
		return nil, err
	}
	return &doc, nil
}
