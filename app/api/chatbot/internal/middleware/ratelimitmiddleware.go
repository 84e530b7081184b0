// Code scaffolded by goctl. Safe to edit.
// goctl 1.9.2

package middleware

import (
	"net/http"

	"DulceAI/app/common/consts/errno"
	"DulceAI/app/common/response"

	"github.com/zeromicro/go-zero/core/limit"
	"github.com/zeromicro/go-zero/core/logx"
	"github.com/zeromicro/go-zero/rest/httpx"
)

type RateLimitMiddleware struct {
	limiter *limit.PeriodLimit
}

func NewRateLimitMiddleware(limiter *limit.PeriodLimit) *RateLimitMiddleware {
	return &RateLimitMiddleware{limiter: limiter}
}

// Handle throttles per remote address. Without a configured limiter every
// request passes; a limiter backend error lets the request through rather
// than failing closed.
func (m *RateLimitMiddleware) Handle(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if m.limiter == nil {
			next(w, r)
			return
		}

		code, err := m.limiter.TakeCtx(r.Context(), httpx.GetRemoteAddr(r))
		if err != nil {
			logx.WithContext(r.Context()).Errorw("rate limiter failed", logx.Field("err", err))
			next(w, r)
			return
		}

		switch code {
		case limit.OverQuota:
			httpx.WriteJson(w, http.StatusTooManyRequests,
				response.NewResponse(errno.RateLimited, "demasiadas solicitudes, intenta más tarde"))
		default:
			next(w, r)
		}
	}
}
