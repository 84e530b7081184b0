package payment

import (
	"context"
	"fmt"

	"github.com/zeromicro/go-zero/core/stores/cache"
	"github.com/zeromicro/go-zero/core/stores/sqlc"
	"github.com/zeromicro/go-zero/core/stores/sqlx"
)

var _ MediosPagoModel = (*customMediosPagoModel)(nil)

type (
	// MediosPagoModel is an interface to be customized, add more methods here,
	// and implement the added methods in customMediosPagoModel.
	MediosPagoModel interface {
		mediosPagoModel
		FindAllActive(ctx context.Context) ([]*MediosPago, error)
		FindByTipo(ctx context.Context, tipo string) ([]*MediosPago, error)
	}

	customMediosPagoModel struct {
		*defaultMediosPagoModel
	}
)

// NewMediosPagoModel returns a model for the database table.
func NewMediosPagoModel(conn sqlx.SqlConn, c cache.CacheConf, opts ...cache.Option) MediosPagoModel {
	return &customMediosPagoModel{
		defaultMediosPagoModel: newMediosPagoModel(conn, c, opts...),
	}
}

func (m *customMediosPagoModel) FindAllActive(ctx context.Context) ([]*MediosPago, error) {
	var resp []*MediosPago
	query := fmt.Sprintf("select %s from %s where `activo` = 1 order by `orden`, `id`", mediosPagoRows, m.table)
	err := m.QueryRowsNoCacheCtx(ctx, &resp, query)
	switch err {
	case nil:
		return resp, nil
	case sqlc.ErrNotFound:
		return nil, ErrNotFound
	default:
		return nil, err
	}
}

func (m *customMediosPagoModel) FindByTipo(ctx context.Context, tipo string) ([]*MediosPago, error) {
	var resp []*MediosPago
	query := fmt.Sprintf("select %s from %s where `activo` = 1 and `tipo` = ? order by `orden`, `id`", mediosPagoRows, m.table)
	err := m.QueryRowsNoCacheCtx(ctx, &resp, query, tipo)
	switch err {
	case nil:
		return resp, nil
	case sqlc.ErrNotFound:
		return nil, ErrNotFound
	default:
		return nil, err
	}
}
