// Code scaffolded by goctl. Safe to edit.
// goctl 1.9.2

package chat

import (
	"context"

	"DulceAI/app/api/chatbot/internal/logic/helper"
	"DulceAI/app/api/chatbot/internal/svc"
	"DulceAI/app/api/chatbot/internal/types"

	"github.com/zeromicro/go-zero/core/logx"
)

type ClassifyMessageLogic struct {
	logx.Logger
	ctx    context.Context
	svcCtx *svc.ServiceContext
}

func NewClassifyMessageLogic(ctx context.Context, svcCtx *svc.ServiceContext) *ClassifyMessageLogic {
	return &ClassifyMessageLogic{
		Logger: logx.WithContext(ctx),
		ctx:    ctx,
		svcCtx: svcCtx,
	}
}

// ClassifyMessage exposes the classifier verdict without dispatching to any
// branch, for debugging and for clients that render their own flows.
func (l *ClassifyMessageLogic) ClassifyMessage(req *types.ClassifyRequest) (*types.Classification, error) {
	message := helper.SanitizeMessage(req.Message)
	if err := helper.ValidateMessage(message); err != nil {
		return nil, err
	}

	result := l.svcCtx.Classifier.Classify(l.ctx, message)
	out := helper.ToClassification(result)
	return &out, nil
}
