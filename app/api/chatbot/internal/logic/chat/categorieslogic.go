// Code scaffolded by goctl. Safe to edit.
// goctl 1.9.2

package chat

import (
	"context"

	"DulceAI/app/api/chatbot/internal/classifier"
	"DulceAI/app/api/chatbot/internal/svc"
	"DulceAI/app/api/chatbot/internal/types"

	"github.com/zeromicro/go-zero/core/logx"
)

type CategoriesLogic struct {
	logx.Logger
	ctx    context.Context
	svcCtx *svc.ServiceContext
}

func NewCategoriesLogic(ctx context.Context, svcCtx *svc.ServiceContext) *CategoriesLogic {
	return &CategoriesLogic{
		Logger: logx.WithContext(ctx),
		ctx:    ctx,
		svcCtx: svcCtx,
	}
}

func (l *CategoriesLogic) Categories() (*types.CategoriesResponse, error) {
	return &types.CategoriesResponse{
		Categories: []types.CategoryInfo{
			{
				Name:        classifier.CategoryProducts,
				Description: "Consultas sobre tortas, sabores, precios e ingredientes",
				Examples:    []string{"¿Qué sabores de torta tienen disponibles?", "¿Cuánto cuesta la torta de chocolate?"},
			},
			{
				Name:        classifier.CategoryShipping,
				Description: "Consultas sobre entregas, zonas, tiempos y costos de envío",
				Examples:    []string{"¿Hacen entregas a domicilio?", "¿Cuánto demora el envío a Palermo?"},
			},
			{
				Name:        classifier.CategoryPayments,
				Description: "Consultas sobre formas de pago y facturación",
				Examples:    []string{"¿Qué formas de pago aceptan?", "¿Puedo pagar con tarjeta?"},
			},
			{
				Name:        classifier.CategoryCakeDesign,
				Description: "Solicitudes de tortas personalizadas",
				Examples:    []string{"Quiero una torta de cumpleaños especial", "Necesito una torta de boda para 50 personas"},
			},
			{
				Name:        classifier.CategoryGeneral,
				Description: "Consultas generales sobre la tienda",
			},
		},
	}, nil
}
