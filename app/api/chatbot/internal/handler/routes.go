// Code scaffolded by goctl. Safe to edit.
// goctl 1.9.2

package handler

import (
	"net/http"

	chat "DulceAI/app/api/chatbot/internal/handler/chat"
	"DulceAI/app/api/chatbot/internal/middleware"
	"DulceAI/app/api/chatbot/internal/svc"

	"github.com/zeromicro/go-zero/rest"
)

func RegisterHandlers(server *rest.Server, serverCtx *svc.ServiceContext) {
	server.AddRoutes(
		[]rest.Route{
			{
				Method:  http.MethodGet,
				Path:    "/health",
				Handler: HealthHandler(serverCtx),
			},
		},
	)

	rateLimit := middleware.NewRateLimitMiddleware(serverCtx.RateLimiter)
	server.AddRoutes(
		rest.WithMiddlewares(
			[]rest.Middleware{rateLimit.Handle},
			[]rest.Route{
				{
					Method:  http.MethodPost,
					Path:    "/api/chat",
					Handler: chat.ProcessMessageHandler(serverCtx),
				},
				{
					Method:  http.MethodPost,
					Path:    "/api/chat/classify",
					Handler: chat.ClassifyMessageHandler(serverCtx),
				},
				{
					Method:  http.MethodGet,
					Path:    "/api/chat/categories",
					Handler: chat.CategoriesHandler(serverCtx),
				},
			}...,
		),
	)
}
