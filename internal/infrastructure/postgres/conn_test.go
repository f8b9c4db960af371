package postgres

import (
	"context"
	"errors"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bdenterprises/backend-api/internal/domain/entity"
	"github.com/bdenterprises/backend-api/internal/domain/repository"
)

// failingQuerier falla en toda sentencia; sirve para probar rutas de error sin base.
type failingQuerier struct{ err error }

func (f failingQuerier) Exec(context.Context, string, ...any) (pgconn.CommandTag, error) {
	return pgconn.CommandTag{}, f.err
}

func (f failingQuerier) Query(context.Context, string, ...any) (pgx.Rows, error) {
	return nil, f.err
}

func (f failingQuerier) QueryRow(context.Context, string, ...any) pgx.Row {
	return failingRow{f.err}
}

type failingRow struct{ err error }

func (r failingRow) Scan(...any) error { return r.err }

// countingProvider cuenta adquisiciones y liberaciones.
type countingProvider struct {
	q          Querier
	acquireErr error
	acquired   int
	released   int
}

func (p *countingProvider) Acquire(context.Context) (Querier, func(), error) {
	if p.acquireErr != nil {
		return nil, nil, p.acquireErr
	}
	p.acquired++
	return p.q, func() { p.released++ }, nil
}

func TestWithConn_LiberaEnTodasLasSalidas(t *testing.T) {
	p := &countingProvider{q: failingQuerier{}}
	ctx := context.Background()

	require.NoError(t, withConn(ctx, p, func(Querier) error { return nil }))
	assert.Error(t, withConn(ctx, p, func(Querier) error { return errors.New("boom") }))
	assert.Panics(t, func() {
		_ = withConn(ctx, p, func(Querier) error { panic("boom") })
	})

	assert.Equal(t, 3, p.acquired)
	assert.Equal(t, 3, p.released)
}

func TestWithConn_FalloAlAdquirir(t *testing.T) {
	p := &countingProvider{acquireErr: errors.New("pool agotado")}
	called := false
	err := withConn(context.Background(), p, func(Querier) error {
		called = true
		return nil
	})
	assert.EqualError(t, err, "pool agotado")
	assert.False(t, called)
	assert.Zero(t, p.released)
}

func TestRepos_PropaganErroresDelStore(t *testing.T) {
	boom := errors.New("connection refused")
	p := &countingProvider{q: failingQuerier{err: boom}}
	ctx := context.Background()

	contacts := NewContactRepository(p)
	_, err := contacts.Create(ctx, &entity.ContactSubmission{FirstName: "Ana"})
	assert.ErrorIs(t, err, boom)
	_, err = contacts.GetByID(ctx, 1)
	assert.ErrorIs(t, err, boom)
	_, err = contacts.List(ctx, repository.ContactFilter{})
	assert.ErrorIs(t, err, boom)
	_, err = contacts.Exists(ctx, 1)
	assert.ErrorIs(t, err, boom)
	_, err = contacts.UpdateStatus(ctx, 1, "closed")
	assert.ErrorIs(t, err, boom)

	_, err = NewCompanyInfoRepository(p).ListActive(ctx)
	assert.ErrorIs(t, err, boom)
	_, err = NewSocialMediaRepository(p).ListActive(ctx)
	assert.ErrorIs(t, err, boom)
	_, err = NewLocationRepository(p).ListActive(ctx)
	assert.ErrorIs(t, err, boom)
	_, err = NewLocationRepository(p).GetMain(ctx)
	assert.ErrorIs(t, err, boom)

	assert.Equal(t, p.acquired, p.released)
}

func TestRepos_SinFilasEsNil(t *testing.T) {
	p := &countingProvider{q: failingQuerier{err: pgx.ErrNoRows}}
	ctx := context.Background()

	c, err := NewContactRepository(p).GetByID(ctx, 99)
	assert.NoError(t, err)
	assert.Nil(t, c)

	l, err := NewLocationRepository(p).GetMain(ctx)
	assert.NoError(t, err)
	assert.Nil(t, l)
}

func TestBuildContactListQuery(t *testing.T) {
	q, args := buildContactListQuery(repository.ContactFilter{Status: "new", Limit: 50, Offset: 10})
	assert.Contains(t, q, "WHERE status = $1")
	assert.Contains(t, q, "ORDER BY created_at DESC")
	assert.Contains(t, q, "LIMIT $2")
	assert.Contains(t, q, "OFFSET $3")
	assert.Equal(t, []any{"new", 50, 10}, args)

	q, args = buildContactListQuery(repository.ContactFilter{Limit: 20})
	assert.NotContains(t, q, "WHERE")
	assert.Contains(t, q, "LIMIT $1")
	assert.NotContains(t, q, "OFFSET")
	assert.Equal(t, []any{20}, args)
}
