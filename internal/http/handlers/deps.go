package handlers

import (
	"inkwell/internal/auth"
	"inkwell/internal/config"
	"inkwell/internal/repos"
	"inkwell/internal/services"

	"github.com/jmoiron/sqlx"
)

type Deps struct {
	AuthHandler    *AuthHandler
	AdminHandler   *AdminHandler
	ArticleHandler *ArticleHandler
	CommentHandler *CommentHandler
	Tokens         *auth.Tokens
}

func NewDeps(db *sqlx.DB, cfg config.Config) *Deps {
	userRepo := repos.NewUserRepo(db)
	articleRepo := repos.NewArticleRepo(db)
	commentRepo := repos.NewCommentRepo(db)

	hasher := auth.NewHasher(cfg.BcryptCost)
	tokens := auth.NewTokens(cfg.JWTSecret, cfg.TokenTTL)

	authSvc := &services.AuthService{Users: userRepo, Hasher: hasher, Tokens: tokens}
	articleSvc := services.NewArticleService(articleRepo, userRepo)
	commentSvc := services.NewCommentService(commentRepo, articleRepo)

	return &Deps{
		AuthHandler:    &AuthHandler{Auth: authSvc},
		AdminHandler:   &AdminHandler{Users: userRepo},
		ArticleHandler: &ArticleHandler{Articles: articleSvc},
		CommentHandler: &CommentHandler{Comments: commentSvc},
		Tokens:         tokens,
	}
}
