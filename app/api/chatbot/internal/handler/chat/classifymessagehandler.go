// Code scaffolded by goctl. Safe to edit.
// goctl 1.9.2

package chat

import (
	"net/http"

	logic "DulceAI/app/api/chatbot/internal/logic/chat"
	"DulceAI/app/api/chatbot/internal/svc"
	"DulceAI/app/api/chatbot/internal/types"

	"github.com/zeromicro/go-zero/rest/httpx"
)

func ClassifyMessageHandler(svcCtx *svc.ServiceContext) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req types.ClassifyRequest
		if err := httpx.Parse(r, &req); err != nil {
			httpx.ErrorCtx(r.Context(), w, err)
			return
		}

		l := logic.NewClassifyMessageLogic(r.Context(), svcCtx)
		resp, err := l.ClassifyMessage(&req)
		if err != nil {
			httpx.ErrorCtx(r.Context(), w, err)
		} else {
			httpx.OkJsonCtx(r.Context(), w, resp)
		}
	}
}
