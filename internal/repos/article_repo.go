package repos

import (
	"database/sql"

	"inkwell/internal/domain"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

type ArticleRepo struct{ db *sqlx.DB }

func NewArticleRepo(db *sqlx.DB) *ArticleRepo { return &ArticleRepo{db: db} }

const articleCols = `
  a.id, a.title, a.content, a.author_id,
  u.name AS author_name,
  a.created_at, a.updated_at`

func (r *ArticleRepo) Insert(title, content, authorID string) (domain.Article, error) {
	id := uuid.NewString()
	_, err := r.db.Exec(`
		INSERT INTO articles(id,title,content,author_id,created_at,updated_at)
		VALUES(?,?,?,?,CURRENT_TIMESTAMP,CURRENT_TIMESTAMP)
	`, id, title, content, authorID)
	if err != nil {
		return domain.Article{}, err
	}
	return r.ByID(id)
}

func (r *ArticleRepo) ByID(id string) (domain.Article, error) {
	var a domain.Article
	err := r.db.Get(&a, `
		SELECT `+articleCols+`
		FROM articles a JOIN users u ON u.id = a.author_id
		WHERE a.id = ?
	`, id)
	return a, err
}

func (r *ArticleRepo) ByAuthor(authorID string, limit, offset int) ([]domain.Article, error) {
	out := []domain.Article{}
	err := r.db.Select(&out, `
		SELECT `+articleCols+`
		FROM articles a JOIN users u ON u.id = a.author_id
		WHERE a.author_id = ?
		ORDER BY a.created_at DESC, a.id
		LIMIT ? OFFSET ?
	`, authorID, limit, offset)
	return out, err
}

// Search matches keyword case-insensitively against title and content.
func (r *ArticleRepo) Search(keyword string, limit, offset int) ([]domain.Article, error) {
	out := []domain.Article{}
	pat := "%" + keyword + "%"
	err := r.db.Select(&out, `
		SELECT `+articleCols+`
		FROM articles a JOIN users u ON u.id = a.author_id
		WHERE LOWER(a.title) LIKE LOWER(?) OR LOWER(a.content) LIKE LOWER(?)
		ORDER BY a.created_at DESC, a.id
		LIMIT ? OFFSET ?
	`, pat, pat, limit, offset)
	return out, err
}

func (r *ArticleRepo) Update(id, title, content string) (domain.Article, error) {
	res, err := r.db.Exec(`
		UPDATE articles SET title=?, content=?, updated_at=CURRENT_TIMESTAMP WHERE id=?
	`, title, content, id)
	if err != nil {
		return domain.Article{}, err
	}
	if n, err := res.RowsAffected(); err != nil {
		return domain.Article{}, err
	} else if n == 0 {
		return domain.Article{}, sql.ErrNoRows
	}
	return r.ByID(id)
}

func (r *ArticleRepo) Delete(id string) error {
	res, err := r.db.Exec(`DELETE FROM articles WHERE id=?`, id)
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
