package savemanager_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"github.com/KirkDiggler/rpg-gamekit/internal/entities"
	"github.com/KirkDiggler/rpg-gamekit/internal/errors"
	"github.com/KirkDiggler/rpg-gamekit/internal/pkg/clock"
	"github.com/KirkDiggler/rpg-gamekit/internal/repositories/inventory"
	inventorymock "github.com/KirkDiggler/rpg-gamekit/internal/repositories/inventory/mock"
	"github.com/KirkDiggler/rpg-gamekit/internal/services/savemanager"
	"github.com/KirkDiggler/rpg-gamekit/internal/testutils"
)

type SaveManagerTestSuite struct {
	suite.Suite
	ctrl     *gomock.Controller
	mockRepo *inventorymock.MockRepository
	clock    *clock.Fixed
	service  savemanager.Service
	ctx      context.Context
}

func TestSaveManagerTestSuite(t *testing.T) {
	suite.Run(t, new(SaveManagerTestSuite))
}

func (s *SaveManagerTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.mockRepo = inventorymock.NewMockRepository(s.ctrl)
	s.clock = clock.NewFixed(time.Date(2026, 10, 14, 9, 0, 0, 0, time.UTC))
	s.ctx = context.Background()

	service, err := savemanager.New(&savemanager.Config{
		Repository: s.mockRepo,
		PlayerID:   testutils.TestPlayerID,
		Clock:      s.clock,
	})
	s.Require().NoError(err)
	s.service = service
}

func (s *SaveManagerTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *SaveManagerTestSuite) TestNew_Validation() {
	testCases := []struct {
		name   string
		config *savemanager.Config
		errMsg string
	}{
		{"nil config", nil, "config cannot be nil"},
		{"missing repository", &savemanager.Config{PlayerID: "p1"}, "Repository: is required"},
		{"missing player", &savemanager.Config{Repository: s.mockRepo}, "PlayerID: is required"},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			svc, err := savemanager.New(tc.config)
			s.Error(err)
			s.Contains(err.Error(), tc.errMsg)
			s.Nil(svc)
		})
	}
}

func (s *SaveManagerTestSuite) TestLoad_ReturnsSavedItems() {
	items := testutils.CreateTestInventory()
	s.mockRepo.EXPECT().
		Get(s.ctx, inventory.GetInput{PlayerID: testutils.TestPlayerID}).
		Return(&inventory.GetOutput{Data: &inventory.InventoryData{PlayerID: testutils.TestPlayerID, Items: items}}, nil)

	got, err := s.service.LoadPlayerInventory(s.ctx)
	s.Require().NoError(err)
	s.Equal(items, got)
}

func (s *SaveManagerTestSuite) TestLoad_NeverSavedIsEmpty() {
	s.mockRepo.EXPECT().
		Get(s.ctx, gomock.Any()).
		Return(nil, errors.NotFound("inventory not found"))

	got, err := s.service.LoadPlayerInventory(s.ctx)
	s.Require().NoError(err)
	s.NotNil(got)
	s.Empty(got)
}

func (s *SaveManagerTestSuite) TestLoad_StorageFailure() {
	s.mockRepo.EXPECT().
		Get(s.ctx, gomock.Any()).
		Return(nil, errors.Internal("redis down"))

	_, err := s.service.LoadPlayerInventory(s.ctx)
	s.Error(err)
	s.Contains(err.Error(), "failed to load inventory")
}

func (s *SaveManagerTestSuite) TestSave_StampsClock() {
	items := []entities.InventoryItem{{Name: "torch", Amount: 2}}
	s.mockRepo.EXPECT().
		Save(s.ctx, inventory.SaveInput{
			PlayerID: testutils.TestPlayerID,
			Items:    items,
			SavedAt:  s.clock.Now(),
		}).
		Return(&inventory.SaveOutput{}, nil)

	s.NoError(s.service.SavePlayerInventory(s.ctx, items))
}

func (s *SaveManagerTestSuite) TestSave_StorageFailure() {
	s.mockRepo.EXPECT().
		Save(s.ctx, gomock.Any()).
		Return(nil, errors.Internal("disk full"))

	err := s.service.SavePlayerInventory(s.ctx, nil)
	s.True(errors.IsInternal(err))
}
