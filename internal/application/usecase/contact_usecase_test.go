package usecase_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/bdenterprises/backend-api/internal/application/dto"
	"github.com/bdenterprises/backend-api/internal/application/usecase"
	"github.com/bdenterprises/backend-api/internal/domain"
	"github.com/bdenterprises/backend-api/internal/domain/entity"
	"github.com/bdenterprises/backend-api/internal/domain/repository"
)

func TestContactCreate_EstadoNewYMetodoPorDefecto(t *testing.T) {
	repo := new(mockContactRepo)
	uc := usecase.NewContactUseCase(repo)

	repo.On("Create", mock.Anything, mock.MatchedBy(func(c *entity.ContactSubmission) bool {
		return c.Status == entity.ContactStatusNew &&
			c.PreferredContactMethod == "email" &&
			c.Phone == nil && c.CompanyName == nil &&
			c.ServiceType != nil && *c.ServiceType == "web" &&
			c.FirstName == "Ana"
	})).Return(int64(11), nil).Once()

	out, err := uc.Create(context.Background(), dto.CreateContactRequest{
		FirstName: " Ana ", LastName: "Ruiz", Email: "ana@example.com",
		ServiceType: "web", Message: "Necesito una cotización",
	})
	require.NoError(t, err)
	assert.Equal(t, &dto.ContactCreatedResponse{ID: 11, Email: "ana@example.com"}, out)
	repo.AssertExpectations(t)
}

func TestContactCreate_ValidacionNoTocaElRepositorio(t *testing.T) {
	repo := new(mockContactRepo)
	uc := usecase.NewContactUseCase(repo)

	_, err := uc.Create(context.Background(), dto.CreateContactRequest{FirstName: "Ana"})
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrInvalidInput))
	assert.EqualError(t, err, "Missing required fields: lastName, email, message")
	repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestContactList_AplicaPaginacionYFiltro(t *testing.T) {
	repo := new(mockContactRepo)
	uc := usecase.NewContactUseCase(repo)

	repo.On("List", mock.Anything, repository.ContactFilter{Status: "resolved", Limit: 100, Offset: 0}).
		Return([]*entity.ContactSubmission{{ID: 2, Status: "resolved"}, {ID: 1, Status: "resolved"}}, nil).Once()

	in := dto.ListContactsRequest{Status: "resolved"}
	in.Limit, in.Offset = 500, -1
	out, err := uc.List(context.Background(), in)
	require.NoError(t, err)
	assert.Equal(t, 2, out.Count)
	assert.Equal(t, int64(2), out.Contacts[0].ID)
	repo.AssertExpectations(t)
}

func TestContactList_EstadoInvalido(t *testing.T) {
	uc := usecase.NewContactUseCase(new(mockContactRepo))
	_, err := uc.List(context.Background(), dto.ListContactsRequest{Status: "archived"})
	assert.True(t, errors.Is(err, domain.ErrInvalidInput))
}

func TestContactList_VacioSerializaArreglo(t *testing.T) {
	repo := new(mockContactRepo)
	repo.On("List", mock.Anything, mock.Anything).Return(nil, nil).Once()

	out, err := usecase.NewContactUseCase(repo).List(context.Background(), dto.ListContactsRequest{})
	require.NoError(t, err)
	assert.NotNil(t, out.Contacts)
	assert.Equal(t, 0, out.Count)
}

func TestContactGetByID(t *testing.T) {
	repo := new(mockContactRepo)
	uc := usecase.NewContactUseCase(repo)

	repo.On("GetByID", mock.Anything, int64(5)).Return(&entity.ContactSubmission{ID: 5, Email: "x@y.in"}, nil).Once()
	repo.On("GetByID", mock.Anything, int64(6)).Return(nil, nil).Once()

	out, err := uc.GetByID(context.Background(), 5)
	require.NoError(t, err)
	assert.Equal(t, "x@y.in", out.Email)

	_, err = uc.GetByID(context.Background(), 6)
	assert.ErrorIs(t, err, domain.ErrNotFound)

	_, err = uc.GetByID(context.Background(), 0)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestContactUpdateStatus_Flujo(t *testing.T) {
	ctx := context.Background()

	t.Run("existe", func(t *testing.T) {
		repo := new(mockContactRepo)
		repo.On("Exists", mock.Anything, int64(3)).Return(true, nil).Once()
		repo.On("UpdateStatus", mock.Anything, int64(3), "resolved").Return(true, nil).Once()

		out, err := usecase.NewContactUseCase(repo).UpdateStatus(ctx, dto.UpdateStatusRequest{ID: 3, Status: "resolved"})
		require.NoError(t, err)
		assert.Equal(t, &dto.StatusUpdatedResponse{ID: 3, Status: "resolved"}, out)
		repo.AssertExpectations(t)
	})

	t.Run("no existe", func(t *testing.T) {
		repo := new(mockContactRepo)
		repo.On("Exists", mock.Anything, int64(9)).Return(false, nil).Once()

		_, err := usecase.NewContactUseCase(repo).UpdateStatus(ctx, dto.UpdateStatusRequest{ID: 9, Status: "closed"})
		assert.ErrorIs(t, err, domain.ErrNotFound)
		repo.AssertNotCalled(t, "UpdateStatus", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("borrado entre comprobación y update", func(t *testing.T) {
		repo := new(mockContactRepo)
		repo.On("Exists", mock.Anything, int64(4)).Return(true, nil).Once()
		repo.On("UpdateStatus", mock.Anything, int64(4), "closed").Return(false, nil).Once()

		_, err := usecase.NewContactUseCase(repo).UpdateStatus(ctx, dto.UpdateStatusRequest{ID: 4, Status: "closed"})
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})

	t.Run("estado inválido", func(t *testing.T) {
		repo := new(mockContactRepo)
		_, err := usecase.NewContactUseCase(repo).UpdateStatus(ctx, dto.UpdateStatusRequest{ID: 4, Status: "archived"})
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
		repo.AssertNotCalled(t, "Exists", mock.Anything, mock.Anything)
	})

	t.Run("fallo del store", func(t *testing.T) {
		repo := new(mockContactRepo)
		boom := errors.New("conn reset")
		repo.On("Exists", mock.Anything, int64(4)).Return(true, nil).Once()
		repo.On("UpdateStatus", mock.Anything, int64(4), "new").Return(false, boom).Once()

		_, err := usecase.NewContactUseCase(repo).UpdateStatus(ctx, dto.UpdateStatusRequest{ID: 4, Status: "new"})
		assert.ErrorIs(t, err, boom)
		assert.NotErrorIs(t, err, domain.ErrNotFound)
	})
}
