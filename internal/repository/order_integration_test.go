//go:build integration

package repository_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"

	"delivery-platform/internal/apperr"
	"delivery-platform/internal/domain"
	"delivery-platform/internal/repository"
)

type OrderRepositorySuite struct {
	suite.Suite
	repo *repository.OrderRepo
}

func (s *OrderRepositorySuite) SetupSuite() {
	s.Require().NotNil(tcPool, "tcPool must be initialized in TestMain")
	s.repo = repository.NewOrderRepo(tcPool)
}

func (s *OrderRepositorySuite) SetupTest() {
	ctx := context.Background()
	for _, table := range []string{"deliveries", "order_items", "orders"} {
		_, err := tcPool.Exec(ctx, `TRUNCATE `+table+` RESTART IDENTITY CASCADE`)
		s.Require().NoError(err)
	}
}

func (s *OrderRepositorySuite) TestCreateAndGet_WithItems() {
	ctx := context.Background()

	o := &domain.Order{
		ID:         uuid.NewString(),
		CustomerID: "cust-1",
		Items: []domain.OrderItem{
			{Name: "soup", Price: 5.50, Quantity: 1},
			{Name: "bread", Price: 1.25, Quantity: 2},
		},
		Total:     8.0,
		Status:    domain.StatusPending,
		CreatedAt: time.Now().UTC(),
	}
	s.Require().NoError(s.repo.Create(ctx, o))

	got, err := s.repo.Get(ctx, o.ID)
	s.Require().NoError(err)
	s.Require().NotNil(got)
	s.Equal(o.CustomerID, got.CustomerID)
	s.InDelta(8.0, got.Total, 1e-9)
	s.Equal(domain.StatusPending, got.Status)
	s.Require().Len(got.Items, 2)
	s.Equal("soup", got.Items[0].Name)
	s.Equal("bread", got.Items[1].Name)
	s.Equal(2, got.Items[1].Quantity)
}

func (s *OrderRepositorySuite) TestCreate_DuplicateID() {
	ctx := context.Background()

	o := &domain.Order{
		ID:         uuid.NewString(),
		CustomerID: "cust-1",
		Status:     domain.StatusPending,
		CreatedAt:  time.Now().UTC(),
	}
	s.Require().NoError(s.repo.Create(ctx, o))
	s.ErrorIs(s.repo.Create(ctx, o), apperr.ErrConflict)
}

func (s *OrderRepositorySuite) TestGet_NotFound() {
	got, err := s.repo.Get(context.Background(), "no-such-order")
	s.Require().NoError(err)
	s.Nil(got)
}

func (s *OrderRepositorySuite) TestUpdateStatus() {
	ctx := context.Background()

	o := &domain.Order{
		ID:         uuid.NewString(),
		CustomerID: "cust-1",
		Status:     domain.StatusPending,
		CreatedAt:  time.Now().UTC(),
	}
	s.Require().NoError(s.repo.Create(ctx, o))

	ok, err := s.repo.UpdateStatus(ctx, o.ID, domain.StatusReady)
	s.Require().NoError(err)
	s.True(ok)

	got, err := s.repo.Get(ctx, o.ID)
	s.Require().NoError(err)
	s.Equal(domain.StatusReady, got.Status)

	ok, err = s.repo.UpdateStatus(ctx, "no-such-order", domain.StatusReady)
	s.Require().NoError(err)
	s.False(ok)
}

func TestOrderRepositorySuite(t *testing.T) {
	suite.Run(t, new(OrderRepositorySuite))
}
