package handlers

import (
	"errors"
	"strings"

	applog "inkwell/internal/log"
	"inkwell/internal/services"
	"inkwell/internal/validate"

	"github.com/gofiber/fiber/v2"
)

type CommentHandler struct {
	Comments *services.CommentService
}

type commentRequest struct {
	ArticleID string `json:"article_id"`
	AuthorID  string `json:"author_id"`
	Content   string `json:"content"`
}

// POST /api/comments
func (h *CommentHandler) Create(c *fiber.Ctx) error {
	var req commentRequest
	if err := c.BodyParser(&req); err != nil {
		return jsonError(c, fiber.StatusBadRequest, "Article ID, Author ID, and Content are required")
	}
	req.ArticleID = strings.TrimSpace(req.ArticleID)
	req.AuthorID = strings.TrimSpace(req.AuthorID)
	if req.ArticleID == "" || req.AuthorID == "" || req.Content == "" {
		return jsonError(c, fiber.StatusBadRequest, "Article ID, Author ID, and Content are required")
	}

	cm, err := h.Comments.Create(req.ArticleID, req.AuthorID, req.Content)
	switch {
	case errors.Is(err, services.ErrArticleNotFound):
		return jsonError(c, fiber.StatusNotFound, "Article not found")
	case err != nil:
		applog.Error(c, "comments.create.fail", err, nil)
		return jsonStoreError(c, "Error creating comment", err)
	}

	applog.Audit(c, "comments.create", map[string]any{"comment_id": cm.ID, "article_id": cm.ArticleID})
	return c.Status(fiber.StatusCreated).JSON(cm)
}

// GET /api/comments/article/:article_id?page=&pageSize=
func (h *CommentHandler) ByArticle(c *fiber.Ctx) error {
	articleID, ok := validate.ID(c.Params("article_id"))
	if !ok {
		return jsonError(c, fiber.StatusBadRequest, "Invalid article ID")
	}
	page := validate.Page(c.Query("page"))
	pageSize := validate.PageSize(c.Query("pageSize"))

	list, err := h.Comments.ByArticle(articleID, page, pageSize)
	if err != nil {
		applog.Error(c, "comments.by_article.fail", err, nil)
		return jsonStoreError(c, "Error retrieving comments", err)
	}
	return c.JSON(list)
}

// PUT /api/comments/:id
func (h *CommentHandler) Update(c *fiber.Ctx) error {
	id, ok := validate.ID(c.Params("id"))
	if !ok {
		return jsonError(c, fiber.StatusBadRequest, "Invalid comment ID")
	}
	var req commentRequest
	if err := c.BodyParser(&req); err != nil {
		return jsonError(c, fiber.StatusBadRequest, "Content is required to update comment")
	}
	if req.Content == "" {
		return jsonError(c, fiber.StatusBadRequest, "Content is required to update comment")
	}

	cm, err := h.Comments.Update(id, req.Content)
	switch {
	case errors.Is(err, services.ErrCommentNotFound):
		return jsonError(c, fiber.StatusNotFound, "Comment not found")
	case err != nil:
		applog.Error(c, "comments.update.fail", err, nil)
		return jsonStoreError(c, "Error updating comment", err)
	}

	applog.Audit(c, "comments.update", map[string]any{"comment_id": id})
	return c.JSON(cm)
}

// DELETE /api/comments/:id
func (h *CommentHandler) Delete(c *fiber.Ctx) error {
	id, ok := validate.ID(c.Params("id"))
	if !ok {
		return jsonError(c, fiber.StatusBadRequest, "Invalid comment ID")
	}
	err := h.Comments.Delete(id)
	switch {
	case errors.Is(err, services.ErrCommentNotFound):
		return jsonError(c, fiber.StatusNotFound, "Comment not found")
	case err != nil:
		applog.Error(c, "comments.delete.fail", err, nil)
		return jsonStoreError(c, "Error deleting comment", err)
	}

	applog.Audit(c, "comments.delete", map[string]any{"comment_id": id})
	return c.SendStatus(fiber.StatusNoContent)
}
