package repos

import (
	"database/sql"

	"inkwell/internal/domain"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

type CommentRepo struct{ db *sqlx.DB }

func NewCommentRepo(db *sqlx.DB) *CommentRepo { return &CommentRepo{db: db} }

func (r *CommentRepo) Insert(articleID, authorID, content string) (domain.Comment, error) {
	id := uuid.NewString()
	_, err := r.db.Exec(`
		INSERT INTO comments(id,article_id,author_id,content,created_at)
		VALUES(?,?,?,?,CURRENT_TIMESTAMP)
	`, id, articleID, authorID, content)
	if err != nil {
		return domain.Comment{}, err
	}
	return r.ByID(id)
}

func (r *CommentRepo) ByID(id string) (domain.Comment, error) {
	var cm domain.Comment
	err := r.db.Get(&cm, `
		SELECT id, article_id, author_id, content, created_at,
		       COALESCE(updated_at,'') AS updated_at
		FROM comments WHERE id = ?
	`, id)
	return cm, err
}

func (r *CommentRepo) ByArticle(articleID string, limit, offset int) ([]domain.Comment, error) {
	out := []domain.Comment{}
	err := r.db.Select(&out, `
		SELECT id, article_id, author_id, content, created_at,
		       COALESCE(updated_at,'') AS updated_at
		FROM comments
		WHERE article_id = ?
		ORDER BY created_at, id
		LIMIT ? OFFSET ?
	`, articleID, limit, offset)
	return out, err
}

func (r *CommentRepo) Update(id, content string) (domain.Comment, error) {
	res, err := r.db.Exec(`
		UPDATE comments SET content=?, updated_at=CURRENT_TIMESTAMP WHERE id=?
	`, content, id)
	if err != nil {
		return domain.Comment{}, err
	}
	if n, err := res.RowsAffected(); err != nil {
		return domain.Comment{}, err
	} else if n == 0 {
		return domain.Comment{}, sql.ErrNoRows
	}
	return r.ByID(id)
}

func (r *CommentRepo) Delete(id string) error {
	res, err := r.db.Exec(`DELETE FROM comments WHERE id=?`, id)
	if err != nil {
		return err
	}
	if n, err := res.RowsAffected(); err != nil {
		return err
	} else if n == 0 {
		return sql.ErrNoRows
	}
	return nil
}
