package domain

type Article struct {
	ID         string `db:"id" json:"id"`
	Title      string `db:"title" json:"title"`
	Content    string `db:"content" json:"content"`
	AuthorID   string `db:"author_id" json:"author_id"`
	AuthorName string `db:"author_name" json:"author_name,omitempty"`
	CreatedAt  string `db:"created_at" json:"created_at"`
	UpdatedAt  string `db:"updated_at" json:"updated_at"`
}

type Comment struct {
	ID        string `db:"id" json:"id"`
	ArticleID string `db:"article_id" json:"article_id"`
	AuthorID  string `db:"author_id" json:"author_id"`
	Content   string `db:"content" json:"content"`
	CreatedAt string `db:"created_at" json:"created_at"`
	UpdatedAt string `db:"updated_at" json:"updated_at,omitempty"`
}
