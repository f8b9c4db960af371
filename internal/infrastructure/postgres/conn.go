package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Querier subconjunto de pgx que usan los repositorios; lo cumplen *pgxpool.Conn, *pgxpool.Pool y pgx.Tx.
type Querier interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// ConnProvider entrega una conexión y la función que la libera.
// Los repositorios adquieren una conexión por sentencia y la liberan siempre.
type ConnProvider interface {
	Acquire(ctx context.Context) (Querier, func(), error)
}

// Asegura que PoolProvider implementa ConnProvider.
var _ ConnProvider = (*PoolProvider)(nil)

// PoolProvider implementación de ConnProvider sobre pgxpool.
type PoolProvider struct {
	pool *pgxpool.Pool
}

// NewPoolProvider construye el proveedor de conexiones sobre el pool.
func NewPoolProvider(pool *pgxpool.Pool) *PoolProvider {
	return &PoolProvider{pool: pool}
}

// Acquire toma una conexión del pool; el llamador debe invocar release.
func (p *PoolProvider) Acquire(ctx context.Context) (Querier, func(), error) {
	conn, err := p.pool.Acquire(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("acquire connection: %w", err)
	}
	return conn, conn.Release, nil
}

// Ping verifica la conectividad con la base.
func (p *PoolProvider) Ping(ctx context.Context) error {
	return p.pool.Ping(ctx)
}

// withConn adquiere una conexión, ejecuta fn y la libera en cualquier salida (incluido panic).
func withConn(ctx context.Context, db ConnProvider, fn func(q Querier) error) error {
	q, release, err := db.Acquire(ctx)
	if err != nil {
		return err
	}
	defer release()
	return fn(q)
}
