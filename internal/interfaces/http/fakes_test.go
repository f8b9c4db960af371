package http_test

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/bdenterprises/backend-api/internal/domain/entity"
	"github.com/bdenterprises/backend-api/internal/domain/repository"
)

// memContacts almacén en memoria con el mismo orden que la consulta SQL.
type memContacts struct {
	mu     sync.Mutex
	nextID int64
	rows   map[int64]*entity.ContactSubmission
	err    error
}

var _ repository.ContactRepository = (*memContacts)(nil)

func newMemContacts() *memContacts {
	return &memContacts{rows: make(map[int64]*entity.ContactSubmission)}
}

func (m *memContacts) Create(_ context.Context, c *entity.ContactSubmission) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return 0, m.err
	}
	m.nextID++
	cp := *c
	cp.ID = m.nextID
	cp.CreatedAt = time.Now().Add(time.Duration(m.nextID) * time.Millisecond)
	cp.UpdatedAt = cp.CreatedAt
	m.rows[cp.ID] = &cp
	return cp.ID, nil
}

func (m *memContacts) GetByID(_ context.Context, id int64) (*entity.ContactSubmission, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return nil, m.err
	}
	c, ok := m.rows[id]
	if !ok {
		return nil, nil
	}
	cp := *c
	return &cp, nil
}

func (m *memContacts) List(_ context.Context, f repository.ContactFilter) ([]*entity.ContactSubmission, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return nil, m.err
	}
	var out []*entity.ContactSubmission
	for _, c := range m.rows {
		if f.Status != "" && c.Status != f.Status {
			continue
		}
		cp := *c
		out = append(out, &cp)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	if f.Offset > 0 {
		if f.Offset >= len(out) {
			return nil, nil
		}
		out = out[f.Offset:]
	}
	if f.Limit > 0 && f.Limit < len(out) {
		out = out[:f.Limit]
	}
	return out, nil
}

func (m *memContacts) Exists(_ context.Context, id int64) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return false, m.err
	}
	_, ok := m.rows[id]
	return ok, nil
}

func (m *memContacts) UpdateStatus(_ context.Context, id int64, status string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return false, m.err
	}
	c, ok := m.rows[id]
	if !ok {
		return false, nil
	}
	c.Status = status
	c.UpdatedAt = time.Now()
	return true, nil
}

type memCompanyInfo struct {
	rows []*entity.CompanyContactInfo
	err  error
}

func (m *memCompanyInfo) ListActive(context.Context) ([]*entity.CompanyContactInfo, error) {
	if m.err != nil {
		return nil, m.err
	}
	var out []*entity.CompanyContactInfo
	for _, r := range m.rows {
		if r.IsActive {
			out = append(out, r)
		}
	}
	return out, nil
}

type memSocial struct {
	rows []*entity.SocialMediaLink
	err  error
}

func (m *memSocial) ListActive(context.Context) ([]*entity.SocialMediaLink, error) {
	if m.err != nil {
		return nil, m.err
	}
	var out []*entity.SocialMediaLink
	for _, r := range m.rows {
		if r.IsActive {
			out = append(out, r)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Platform < out[j].Platform })
	return out, nil
}

type memLocations struct {
	rows []*entity.CompanyLocation
	err  error
}

func (m *memLocations) ListActive(context.Context) ([]*entity.CompanyLocation, error) {
	if m.err != nil {
		return nil, m.err
	}
	var out []*entity.CompanyLocation
	for _, r := range m.rows {
		if r.IsActive {
			out = append(out, r)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].IsMainOffice != out[j].IsMainOffice {
			return out[i].IsMainOffice
		}
		return out[i].Name < out[j].Name
	})
	return out, nil
}

func (m *memLocations) GetMain(context.Context) (*entity.CompanyLocation, error) {
	if m.err != nil {
		return nil, m.err
	}
	for _, r := range m.rows {
		if r.IsActive && r.IsMainOffice {
			return r, nil
		}
	}
	return nil, nil
}
