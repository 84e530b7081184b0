package product

import (
	"context"
	"fmt"

	"github.com/zeromicro/go-zero/core/stores/cache"
	"github.com/zeromicro/go-zero/core/stores/sqlc"
	"github.com/zeromicro/go-zero/core/stores/sqlx"
)

var _ ProductosModel = (*customProductosModel)(nil)

type (
	// ProductosModel is an interface to be customized, add more methods here,
	// and implement the added methods in customProductosModel.
	ProductosModel interface {
		productosModel
		FindAllActive(ctx context.Context) ([]*Productos, error)
		FindBySabor(ctx context.Context, sabor string) ([]*Productos, error)
	}

	customProductosModel struct {
		*defaultProductosModel
	}
)

// NewProductosModel returns a model for the database table.
func NewProductosModel(conn sqlx.SqlConn, c cache.CacheConf, opts ...cache.Option) ProductosModel {
	return &customProductosModel{
		defaultProductosModel: newProductosModel(conn, c, opts...),
	}
}

func (m *customProductosModel) FindAllActive(ctx context.Context) ([]*Productos, error) {
	var resp []*Productos
	query := fmt.Sprintf("select %s from %s where `activo` = 1 and `disponible` = 1 order by `id`", productosRows, m.table)
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

func (m *customProductosModel) FindBySabor(ctx context.Context, sabor string) ([]*Productos, error) {
	var resp []*Productos
	query := fmt.Sprintf("select %s from %s where `activo` = 1 and `sabor` like ? order by `id`", productosRows, m.table)
	err := m.QueryRowsNoCacheCtx(ctx, &resp, query, "%"+sabor+"%")
	switch err {
	case nil:
		return resp, nil
	case sqlc.ErrNotFound:
		return nil, ErrNotFound
	default:
		return nil, err
	}
}
