package services

import (
	"database/sql"
	"errors"

	"inkwell/internal/domain"
	"inkwell/internal/repos"
)

var ErrCommentNotFound = errors.New("comment not found")

type CommentService struct {
	Comments *repos.CommentRepo
	Articles *repos.ArticleRepo
}

func NewCommentService(comments *repos.CommentRepo, articles *repos.ArticleRepo) *CommentService {
	return &CommentService{Comments: comments, Articles: articles}
}

func (s *CommentService) Create(articleID, authorID, content string) (domain.Comment, error) {
	if _, err := s.Articles.ByID(articleID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.Comment{}, ErrArticleNotFound
		}
		return domain.Comment{}, err
	}
	return s.Comments.Insert(articleID, authorID, content)
}

func (s *CommentService) ByArticle(articleID string, page, pageSize int) ([]domain.Comment, error) {
	limit, offset := pageWindow(page, pageSize)
	return s.Comments.ByArticle(articleID, limit, offset)
}

func (s *CommentService) Update(id, content string) (domain.Comment, error) {
	cm, err := s.Comments.Update(id, content)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.Comment{}, ErrCommentNotFound
	}
	return cm, err
}

func (s *CommentService) Delete(id string) error {
	err := s.Comments.Delete(id)
	if errors.Is(err, sql.ErrNoRows) {
		return ErrCommentNotFound
	}
	return err
}
