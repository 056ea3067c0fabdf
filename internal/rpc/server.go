package rpc

import (
	"log/slog"
	"net/http"

	"github.com/daniilsolovey/blog-portal/internal/blog"
	middleware "github.com/vmkteam/zenrpc-middleware"
	"github.com/vmkteam/zenrpc/v2"
)

// New returns the JSON-RPC 2.0 handler serving the "blog" namespace.
func New(logger *slog.Logger, manager *blog.Manager) http.Handler {
	rpcService := NewBlogService(manager, logger)
	rpcServer := zenrpc.NewServer(zenrpc.Options{ExposeSMD: true})
	rpcServer.Register("blog", rpcService)
	rpcServer.Use(middleware.WithSLog(logger.InfoContext, "blog-portal", nil))

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		rpcServer.ServeHTTP(w, r)
	})
}
