package shipping

import (
	"context"
	"fmt"

	"github.com/zeromicro/go-zero/core/stores/cache"
	"github.com/zeromicro/go-zero/core/stores/sqlc"
	"github.com/zeromicro/go-zero/core/stores/sqlx"
)

var _ ZonasEntregaModel = (*customZonasEntregaModel)(nil)

type (
	// ZonasEntregaModel is an interface to be customized, add more methods here,
	// and implement the added methods in customZonasEntregaModel.
	ZonasEntregaModel interface {
		zonasEntregaModel
		FindAllActive(ctx context.Context) ([]*ZonasEntrega, error)
		FindByNombre(ctx context.Context, nombre string) (*ZonasEntrega, error)
	}

	customZonasEntregaModel struct {
		*defaultZonasEntregaModel
	}
)

// NewZonasEntregaModel returns a model for the database table.
func NewZonasEntregaModel(conn sqlx.SqlConn, c cache.CacheConf, opts ...cache.Option) ZonasEntregaModel {
	return &customZonasEntregaModel{
		defaultZonasEntregaModel: newZonasEntregaModel(conn, c, opts...),
	}
}

func (m *customZonasEntregaModel) FindAllActive(ctx context.Context) ([]*ZonasEntrega, error) {
	var resp []*ZonasEntrega
	query := fmt.Sprintf("select %s from %s where `activo` = 1 order by `orden`, `id`", zonasEntregaRows, m.table)
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

func (m *customZonasEntregaModel) FindByNombre(ctx context.Context, nombre string) (*ZonasEntrega, error) {
	var resp ZonasEntrega
	query := fmt.Sprintf("select %s from %s where `activo` = 1 and `nombre` like ? limit 1", zonasEntregaRows, m.table)
	err := m.QueryRowNoCacheCtx(ctx, &resp, query, "%"+nombre+"%")
	switch err {
	case nil:
		return &resp, nil
	case sqlc.ErrNotFound:
		return nil, ErrNotFound
	default:
		return nil, err
	}
}
