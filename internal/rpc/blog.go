package rpc

import (
	"context"
	"errors"
	"log/slog"

	"github.com/daniilsolovey/blog-portal/internal/blog"
	"github.com/vmkteam/zenrpc/v2"
)

//go:generate zenrpc

// BlogService provides read and reaction RPC methods for the blog.
type BlogService struct {
	zenrpc.Service
	manager *blog.Manager
	logger  *slog.Logger
}

func NewBlogService(manager *blog.Manager, logger *slog.Logger) *BlogService {
	return &BlogService{manager: manager, logger: logger}
}

// rpcError converts a manager error to a JSON-RPC error with an HTTP-like code.
func (s *BlogService) rpcError(ctx context.Context, err error) error {
	switch {
	case errors.Is(err, blog.ErrNotFound):
		return zenrpc.NewStringError(404, err.Error())
	case errors.Is(err, blog.ErrInvalidRequest):
		return zenrpc.NewStringError(400, err.Error())
	case errors.Is(err, blog.ErrConflict):
		return zenrpc.NewStringError(409, err.Error())
	}

	s.logger.ErrorContext(ctx, "rpc call failed", "error", err)
	return zenrpc.NewStringError(500, "internal error")
}

// Articles lists articles matching the filter, newest first by default.
//
//zenrpc:filter article filter
//zenrpc:return list of articles with writer, category and tags
//zenrpc:400 invalid filter
//zenrpc:500 internal server error
func (s *BlogService) Articles(ctx context.Context, filter ArticleFilter) ([]Article, error) {
	articles, err := s.manager.Articles(ctx, filter.ToModel())
	if err != nil {
		return nil, s.rpcError(ctx, err)
	}

	return Map(articles, NewArticle), nil
}

// ArticlesCount counts articles matching the filter; paging is ignored.
//
//zenrpc:filter article filter
//zenrpc:return number of matching articles
//zenrpc:500 internal server error
func (s *BlogService) ArticlesCount(ctx context.Context, filter ArticleFilter) (int, error) {
	count, err := s.manager.ArticlesCount(ctx, filter.ToModel())
	if err != nil {
		return 0, s.rpcError(ctx, err)
	}

	return count, nil
}

// Article returns a single article with its comments.
//
//zenrpc:id article ID
//zenrpc:return article
//zenrpc:400 id must be positive
//zenrpc:404 article not found
//zenrpc:500 internal server error
func (s *BlogService) Article(ctx context.Context, id int) (*Article, error) {
	if id <= 0 {
		return nil, zenrpc.NewStringError(400, "id must be positive")
	}

	article, err := s.manager.Article(ctx, id)
	if err != nil {
		return nil, s.rpcError(ctx, err)
	} else if article == nil {
		return nil, zenrpc.NewStringError(404, "article not found")
	}

	result := NewArticle(*article)
	return &result, nil
}

// Tags lists tags ordered by ID.
//
//zenrpc:hideUnused=false skip tags not attached to any article
//zenrpc:return list of tags
//zenrpc:500 internal server error
func (s *BlogService) Tags(ctx context.Context, hideUnused bool) ([]Tag, error) {
	tags, err := s.manager.Tags(ctx, hideUnused)
	if err != nil {
		return nil, s.rpcError(ctx, err)
	}

	return Map(tags, NewTag), nil
}

// Categories lists categories ordered by ID.
//
//zenrpc:hideUnused=false skip categories no article uses
//zenrpc:return list of categories
//zenrpc:500 internal server error
func (s *BlogService) Categories(ctx context.Context, hideUnused bool) ([]Category, error) {
	categories, err := s.manager.Categories(ctx, hideUnused)
	if err != nil {
		return nil, s.rpcError(ctx, err)
	}

	return Map(categories, NewCategory), nil
}

// Comments returns one page of comments with the total count.
//
//zenrpc:filter comment filter
//zenrpc:return comment page
//zenrpc:400 invalid order
//zenrpc:500 internal server error
func (s *BlogService) Comments(ctx context.Context, filter CommentFilter) (*CommentPage, error) {
	comments, total, err := s.manager.Comments(ctx, filter.ToModel())
	if err != nil {
		return nil, s.rpcError(ctx, err)
	}

	return &CommentPage{Comments: Map(comments, NewComment), Total: total}, nil
}

// LikeComment increments the like counter of a comment.
//
//zenrpc:id comment ID
//zenrpc:return updated comment
//zenrpc:404 comment not found
//zenrpc:500 internal server error
func (s *BlogService) LikeComment(ctx context.Context, id int) (*Comment, error) {
	if err := s.manager.LikeComment(ctx, id); err != nil {
		return nil, s.rpcError(ctx, err)
	}

	return s.comment(ctx, id)
}

// DislikeComment increments the dislike counter of a comment.
//
//zenrpc:id comment ID
//zenrpc:return updated comment
//zenrpc:404 comment not found
//zenrpc:500 internal server error
func (s *BlogService) DislikeComment(ctx context.Context, id int) (*Comment, error) {
	if err := s.manager.DislikeComment(ctx, id); err != nil {
		return nil, s.rpcError(ctx, err)
	}

	return s.comment(ctx, id)
}

func (s *BlogService) comment(ctx context.Context, id int) (*Comment, error) {
	comment, err := s.manager.Comment(ctx, id)
	if err != nil {
		return nil, s.rpcError(ctx, err)
	} else if comment == nil {
		return nil, zenrpc.NewStringError(404, "comment not found")
	}

	result := NewComment(*comment)
	return &result, nil
}
