package services

import (
	"database/sql"
	"errors"

	"inkwell/internal/domain"
	"inkwell/internal/repos"
)

var (
	ErrAuthorNotFound  = errors.New("author not found")
	ErrArticleNotFound = errors.New("article not found")
)

type ArticleService struct {
	Articles *repos.ArticleRepo
	Users    *repos.UserRepo
}

func NewArticleService(articles *repos.ArticleRepo, users *repos.UserRepo) *ArticleService {
	return &ArticleService{Articles: articles, Users: users}
}

func (s *ArticleService) Create(title, content, authorID string) (domain.Article, error) {
	if _, err := s.Users.ByID(authorID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.Article{}, ErrAuthorNotFound
		}
		return domain.Article{}, err
	}
	return s.Articles.Insert(title, content, authorID)
}

func (s *ArticleService) Get(id string) (domain.Article, error) {
	a, err := s.Articles.ByID(id)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.Article{}, ErrArticleNotFound
	}
	return a, err
}

func (s *ArticleService) ByAuthor(authorID string, page, pageSize int) ([]domain.Article, error) {
	limit, offset := pageWindow(page, pageSize)
	return s.Articles.ByAuthor(authorID, limit, offset)
}

func (s *ArticleService) Search(keyword string, page, pageSize int) ([]domain.Article, error) {
	limit, offset := pageWindow(page, pageSize)
	return s.Articles.Search(keyword, limit, offset)
}

func (s *ArticleService) Update(id, title, content string) (domain.Article, error) {
	a, err := s.Articles.Update(id, title, content)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.Article{}, ErrArticleNotFound
	}
	return a, err
}

func (s *ArticleService) Delete(id string) error {
	err := s.Articles.Delete(id)
	if errors.Is(err, sql.ErrNoRows) {
		return ErrArticleNotFound
	}
	return err
}

func pageWindow(page, pageSize int) (limit, offset int) {
	if page < 1 {
		page = 1
	}
	if pageSize <= 0 {
		pageSize = 10
	}
	return pageSize, (page - 1) * pageSize
}
