package handlers

import (
	"errors"
	"strings"

	applog "inkwell/internal/log"
	"inkwell/internal/services"
	"inkwell/internal/validate"

	"github.com/gofiber/fiber/v2"
)

type ArticleHandler struct {
	Articles *services.ArticleService
}

type articleRequest struct {
	Title    string `json:"title"`
	Content  string `json:"content"`
	AuthorID string `json:"author_id"`
}

// POST /api/articles
func (h *ArticleHandler) Create(c *fiber.Ctx) error {
	var req articleRequest
	if err := c.BodyParser(&req); err != nil {
		return jsonError(c, fiber.StatusBadRequest, "Title, content, and author_id are required")
	}
	req.Title = strings.TrimSpace(req.Title)
	req.AuthorID = strings.TrimSpace(req.AuthorID)
	if req.Title == "" || req.Content == "" || req.AuthorID == "" {
		return jsonError(c, fiber.StatusBadRequest, "Title, content, and author_id are required")
	}

	a, err := h.Articles.Create(req.Title, req.Content, req.AuthorID)
	switch {
	case errors.Is(err, services.ErrAuthorNotFound):
		return jsonError(c, fiber.StatusNotFound, "Author not found")
	case err != nil:
		applog.Error(c, "articles.create.fail", err, nil)
		return jsonStoreError(c, "Error creating article", err)
	}

	applog.Audit(c, "articles.create", map[string]any{"article_id": a.ID})
	return c.Status(fiber.StatusCreated).JSON(a)
}

// GET /api/articles/:id
func (h *ArticleHandler) Detail(c *fiber.Ctx) error {
	id, ok := validate.ID(c.Params("id"))
	if !ok {
		return jsonError(c, fiber.StatusBadRequest, "Invalid article ID")
	}
	a, err := h.Articles.Get(id)
	switch {
	case errors.Is(err, services.ErrArticleNotFound):
		return jsonError(c, fiber.StatusNotFound, "Article not found")
	case err != nil:
		applog.Error(c, "articles.get.fail", err, nil)
		return jsonStoreError(c, "Error retrieving article", err)
	}
	return c.JSON(a)
}

// GET /api/articles/author/:author_id?page=&pageSize=
func (h *ArticleHandler) ByAuthor(c *fiber.Ctx) error {
	authorID, ok := validate.ID(c.Params("author_id"))
	if !ok {
		return jsonError(c, fiber.StatusBadRequest, "Invalid author ID")
	}
	page := validate.Page(c.Query("page"))
	pageSize := validate.PageSize(c.Query("pageSize"))

	list, err := h.Articles.ByAuthor(authorID, page, pageSize)
	if err != nil {
		applog.Error(c, "articles.by_author.fail", err, nil)
		return jsonStoreError(c, "Error finding articles", err)
	}
	return c.JSON(list)
}

// GET /api/articles/search?keyword=&page=&pageSize=
func (h *ArticleHandler) Search(c *fiber.Ctx) error {
	keyword := strings.TrimSpace(c.Query("keyword"))
	page := validate.Page(c.Query("page"))
	pageSize := validate.PageSize(c.Query("pageSize"))

	list, err := h.Articles.Search(keyword, page, pageSize)
	if err != nil {
		applog.Error(c, "articles.search.fail", err, nil)
		return jsonStoreError(c, "Error searching articles", err)
	}
	return c.JSON(list)
}

// PUT /api/articles/:id
func (h *ArticleHandler) Update(c *fiber.Ctx) error {
	id, ok := validate.ID(c.Params("id"))
	if !ok {
		return jsonError(c, fiber.StatusBadRequest, "Invalid article ID")
	}
	var req articleRequest
	if err := c.BodyParser(&req); err != nil {
		return jsonError(c, fiber.StatusBadRequest, "Title and content are required")
	}
	req.Title = strings.TrimSpace(req.Title)
	if req.Title == "" || req.Content == "" {
		return jsonError(c, fiber.StatusBadRequest, "Title and content are required")
	}

	a, err := h.Articles.Update(id, req.Title, req.Content)
	switch {
	case errors.Is(err, services.ErrArticleNotFound):
		return jsonError(c, fiber.StatusNotFound, "Article not found")
	case err != nil:
		applog.Error(c, "articles.update.fail", err, nil)
		return jsonStoreError(c, "Error updating article", err)
	}

	applog.Audit(c, "articles.update", map[string]any{"article_id": id})
	return c.JSON(a)
}

// DELETE /api/articles/:id
func (h *ArticleHandler) Delete(c *fiber.Ctx) error {
	id, ok := validate.ID(c.Params("id"))
	if !ok {
		return jsonError(c, fiber.StatusBadRequest, "Invalid article ID")
	}
	err := h.Articles.Delete(id)
	switch {
	case errors.Is(err, services.ErrArticleNotFound):
		return jsonError(c, fiber.StatusNotFound, "Article not found")
	case err != nil:
		applog.Error(c, "articles.delete.fail", err, nil)
		return jsonStoreError(c, "Error deleting article", err)
	}

	applog.Audit(c, "articles.delete", map[string]any{"article_id": id})
	return c.SendStatus(fiber.StatusNoContent)
}
