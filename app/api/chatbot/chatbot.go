// Code scaffolded by goctl. Safe to edit.
// goctl 1.9.2

package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"net/http"

	"DulceAI/app/api/chatbot/internal/config"
	"DulceAI/app/api/chatbot/internal/handler"
	"DulceAI/app/api/chatbot/internal/svc"
	"DulceAI/app/common/response"

	"github.com/zeromicro/go-zero/core/conf"
	"github.com/zeromicro/go-zero/rest"
	"github.com/zeromicro/go-zero/rest/httpx"
	xerrors "github.com/zeromicro/x/errors"
)

var configFile = flag.String("f", "etc/chatbot-api.yaml", "the config file")

func main() {
	flag.Parse()

	var c config.Config
	conf.MustLoad(*configFile, &c)

	server := rest.MustNewServer(c.RestConf, rest.WithCors(c.Cors.AllowOrigins))
	defer server.Stop()

	httpx.SetErrorHandlerCtx(func(ctx context.Context, err error) (int, any) {
		var cm *xerrors.CodeMsg
		if errors.As(err, &cm) {
			return http.StatusOK, response.NewResponse(cm.Code, cm.Msg)
		}
		return http.StatusInternalServerError, response.NewResponse(http.StatusInternalServerError, err.Error())
	})

	ctx := svc.NewServiceContext(c)
	handler.RegisterHandlers(server, ctx)

	fmt.Printf("Starting server at %s:%d...\n", c.Host, c.Port)
	server.Start()
}
