package v1alpha1_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/KirkDiggler/rpg-gamekit/internal/entities"
	"github.com/KirkDiggler/rpg-gamekit/internal/errors"
	"github.com/KirkDiggler/rpg-gamekit/internal/handlers/gamekit/v1alpha1"
	"github.com/KirkDiggler/rpg-gamekit/internal/orchestrators/inventory"
	inventorymock "github.com/KirkDiggler/rpg-gamekit/internal/orchestrators/inventory/mock"
)

type InventoryHandlerTestSuite struct {
	suite.Suite
	ctrl          *gomock.Controller
	mockInventory *inventorymock.MockService
	handler       *v1alpha1.InventoryHandler
	ctx           context.Context
}

func TestInventoryHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(InventoryHandlerTestSuite))
}

func (s *InventoryHandlerTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.mockInventory = inventorymock.NewMockService(s.ctrl)
	s.ctx = context.Background()

	handler, err := v1alpha1.NewInventoryHandler(&v1alpha1.InventoryHandlerConfig{
		InventoryService: s.mockInventory,
	})
	s.Require().NoError(err)
	s.handler = handler
}

func (s *InventoryHandlerTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *InventoryHandlerTestSuite) TestAddItem() {
	torch := entities.InventoryItem{Name: "torch", Amount: 2}
	s.mockInventory.EXPECT().
		AddItem(s.ctx, torch).
		Return(&inventory.AddItemOutput{
			Item:   entities.InventoryItem{Name: "torch", Amount: 12},
			Result: inventory.AddResultMerged,
		}, nil)

	resp, err := s.handler.AddItem(s.ctx, &v1alpha1.AddItemRequest{Item: &v1alpha1.Item{Name: "torch", Amount: 2}})
	s.Require().NoError(err)
	s.Equal(int32(12), resp.Item.Amount)
	s.Equal("merged", resp.Result)
}

func (s *InventoryHandlerTestSuite) TestAddItem_Invalid() {
	testCases := []struct {
		name string
		req  *v1alpha1.AddItemRequest
	}{
		{"no item", &v1alpha1.AddItemRequest{}},
		{"no name", &v1alpha1.AddItemRequest{Item: &v1alpha1.Item{Amount: 1}}},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			_, err := s.handler.AddItem(s.ctx, tc.req)
			s.Equal(codes.InvalidArgument, status.Code(err))
		})
	}
}

func (s *InventoryHandlerTestSuite) TestRemoveItem_Insufficient() {
	s.mockInventory.EXPECT().
		RemoveItem(s.ctx, entities.InventoryItem{Name: "torch", Amount: 50}).
		Return(nil, errors.FailedPreconditionf("cannot remove 50 torch, only 10 held").
			WithMeta("held", int32(10)))

	_, err := s.handler.RemoveItem(s.ctx, &v1alpha1.RemoveItemRequest{Item: &v1alpha1.Item{Name: "torch", Amount: 50}})
	s.Equal(codes.FailedPrecondition, status.Code(err))
	s.Equal(float64(10), errors.GetMeta(errors.FromGRPCError(err))["held"])
}

func (s *InventoryHandlerTestSuite) TestListItems() {
	s.mockInventory.EXPECT().Items().Return([]entities.InventoryItem{{Name: "rope", Amount: 0}})

	resp, err := s.handler.ListItems(s.ctx, &v1alpha1.ListItemsRequest{})
	s.Require().NoError(err)
	s.Equal([]*v1alpha1.Item{{Name: "rope", Amount: 0}}, resp.Items)
}

func (s *InventoryHandlerTestSuite) TestSaveAndLoad() {
	s.mockInventory.EXPECT().SaveInventory(s.ctx).Return(&inventory.SaveInventoryOutput{Count: 3}, nil)
	saved, err := s.handler.SaveInventory(s.ctx, &v1alpha1.SaveInventoryRequest{})
	s.Require().NoError(err)
	s.Equal(int32(3), saved.Count)

	s.mockInventory.EXPECT().LoadInventory(s.ctx).Return(nil, errors.DataLossf("saved item 0 has no name"))
	_, err = s.handler.LoadInventory(s.ctx, &v1alpha1.LoadInventoryRequest{})
	s.Equal(codes.DataLoss, status.Code(err))
}
