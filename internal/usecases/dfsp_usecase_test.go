package usecases_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"merchant-portal.backend/internal/domain/entities"
	domainerrors "merchant-portal.backend/internal/domain/errors"
	"merchant-portal.backend/internal/usecases"
)

func TestDFSPUsecase_CreateAndUpdate(t *testing.T) {
	dfspRepo := new(MockDFSPRepository)
	audit := new(MockAuditEmitter)
	uc := usecases.NewDFSPUsecase(dfspRepo, audit)
	actor := adminActor()

	newID := uuid.New()
	dfspRepo.On("Create", mock.Anything, mock.MatchedBy(func(dfsp *entities.DFSP) bool {
		return dfsp.Name == "Green Bank" && dfsp.FspID == "greenbank" && dfsp.IsActive && dfsp.ActivatedAt.Valid
	})).Run(func(args mock.Arguments) {
		args.Get(1).(*entities.DFSP).ID = newID
	}).Return(nil).Once()
	audit.On("Record", mock.Anything, mock.Anything).Return(nil)

	created, err := uc.Create(context.Background(), actor, &entities.DFSPInput{
		Name:  "Green Bank",
		FspID: "greenbank",
	})
	assert.NoError(t, err)
	assert.Equal(t, newID, created.ID)

	dfspRepo.On("GetByID", mock.Anything, newID).Return(created, nil).Once()
	dfspRepo.On("Update", mock.Anything, mock.MatchedBy(func(dfsp *entities.DFSP) bool {
		return dfsp.ID == newID && dfsp.Name == "Green Bank Ltd"
	})).Return(nil).Once()

	updated, err := uc.Update(context.Background(), actor, newID, &entities.DFSPInput{
		Name:  "Green Bank Ltd",
		FspID: "greenbank",
	})
	assert.NoError(t, err)
	assert.Equal(t, "Green Bank Ltd", updated.Name)
	dfspRepo.AssertExpectations(t)
}

func TestDFSPUsecase_UpdateNotFound(t *testing.T) {
	dfspRepo := new(MockDFSPRepository)
	uc := usecases.NewDFSPUsecase(dfspRepo, new(MockAuditEmitter))

	id := uuid.New()
	dfspRepo.On("GetByID", mock.Anything, id).Return(nil, domainerrors.ErrNotFound).Once()

	_, err := uc.Update(context.Background(), adminActor(), id, &entities.DFSPInput{Name: "x", FspID: "x"})
	assert.ErrorIs(t, err, domainerrors.ErrNotFound)
}
