// Code scaffolded by goctl. Safe to edit.
// goctl 1.9.2

package chat

import (
	"net/http"

	logic "DulceAI/app/api/chatbot/internal/logic/chat"
	"DulceAI/app/api/chatbot/internal/svc"

	"github.com/zeromicro/go-zero/rest/httpx"
)

func CategoriesHandler(svcCtx *svc.ServiceContext) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		l := logic.NewCategoriesLogic(r.Context(), svcCtx)
		resp, err := l.Categories()
		if err != nil {
			httpx.ErrorCtx(r.Context(), w, err)
		} else {
			httpx.OkJsonCtx(r.Context(), w, resp)
		}
	}
}
