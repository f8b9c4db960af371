package usecase_test

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/bdenterprises/backend-api/internal/domain/entity"
	"github.com/bdenterprises/backend-api/internal/domain/repository"
)

type mockContactRepo struct{ mock.Mock }

var _ repository.ContactRepository = (*mockContactRepo)(nil)

func (m *mockContactRepo) Create(ctx context.Context, c *entity.ContactSubmission) (int64, error) {
	args := m.Called(ctx, c)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockContactRepo) GetByID(ctx context.Context, id int64) (*entity.ContactSubmission, error) {
	args := m.Called(ctx, id)
	c, _ := args.Get(0).(*entity.ContactSubmission)
	return c, args.Error(1)
}

func (m *mockContactRepo) List(ctx context.Context, f repository.ContactFilter) ([]*entity.ContactSubmission, error) {
	args := m.Called(ctx, f)
	list, _ := args.Get(0).([]*entity.ContactSubmission)
	return list, args.Error(1)
}

func (m *mockContactRepo) Exists(ctx context.Context, id int64) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func (m *mockContactRepo) UpdateStatus(ctx context.Context, id int64, status string) (bool, error) {
	args := m.Called(ctx, id, status)
	return args.Bool(0), args.Error(1)
}

type mockInfoRepo struct{ mock.Mock }

func (m *mockInfoRepo) ListActive(ctx context.Context) ([]*entity.CompanyContactInfo, error) {
	args := m.Called(ctx)
	list, _ := args.Get(0).([]*entity.CompanyContactInfo)
	return list, args.Error(1)
}

type mockSocialRepo struct{ mock.Mock }

func (m *mockSocialRepo) ListActive(ctx context.Context) ([]*entity.SocialMediaLink, error) {
	args := m.Called(ctx)
	list, _ := args.Get(0).([]*entity.SocialMediaLink)
	return list, args.Error(1)
}

type mockLocationRepo struct{ mock.Mock }

func (m *mockLocationRepo) ListActive(ctx context.Context) ([]*entity.CompanyLocation, error) {
	args := m.Called(ctx)
	list, _ := args.Get(0).([]*entity.CompanyLocation)
	return list, args.Error(1)
}

func (m *mockLocationRepo) GetMain(ctx context.Context) (*entity.CompanyLocation, error) {
	args := m.Called(ctx)
	l, _ := args.Get(0).(*entity.CompanyLocation)
	return l, args.Error(1)
}
