package commands_test

import (
	"errors"
	"testing"
	"time"

	"logistics/internal/core/application/usecases/commands"
	"logistics/internal/core/domain/model/access"
	"logistics/internal/core/domain/model/forwarding"
	"logistics/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestCreateForwardingOrderCommandHandler_Handle(t *testing.T) {
	createdAt := time.Date(2025, time.May, 14, 10, 0, 0, 0, time.UTC)
	from, to := forwarding.MonthBucket(createdAt)

	t.Run("issues the number after the highest one of the month", func(t *testing.T) {
		ctx := t.Context()
		cmd, err := commands.NewCreateForwardingOrderCommand(
			user(t, "jan@example.com", "handlowiec", ""), forwardingDetails(t), createdAt)
		require.NoError(t, err)

		repo := new(MockForwardingOrderRepository)
		uow := new(MockUoW)
		mock.InOrder(
			uow.On("Begin", ctx).Return(nil).Once(),
			uow.On("ForwardingOrderRepository").Return(repo).Once(),
			repo.On("LockNumbering", ctx, createdAt).Return(nil).Once(),
			repo.On("NumbersCreatedBetween", ctx, from, to).
				Return([]string{"0002/05/2025", "0010/05/2025", "bogus"}, nil).Once(),
			repo.On("Add", ctx, mock.MatchedBy(func(o *forwarding.Order) bool {
				return o.Number().String() == "0011/05/2025" && o.Status() == forwarding.StatusNew
			})).Return(int64(7), nil).Once(),
			uow.On("Commit", ctx).Return(nil).Once(),
			uow.On("Rollback", ctx).Return(nil).Once(),
		)

		factory := new(MockForwardingUoWFactory)
		factory.On("Create").Return(uow).Once()

		result, err := commands.NewCreateForwardingOrderCommandHandler(factory).Handle(ctx, cmd)

		require.NoError(t, err)
		assert.Equal(t, int64(7), result.ID)
		assert.Equal(t, "0011/05/2025", result.OrderNumber)
		repo.AssertExpectations(t)
		uow.AssertExpectations(t)
	})

	t.Run("retries with a fresh transaction after a duplicate number", func(t *testing.T) {
		ctx := t.Context()
		cmd, err := commands.NewCreateForwardingOrderCommand(
			user(t, "jan@example.com", "handlowiec", ""), forwardingDetails(t), createdAt)
		require.NoError(t, err)

		first, second := new(MockForwardingOrderRepository), new(MockForwardingOrderRepository)
		firstUoW, secondUoW := new(MockUoW), new(MockUoW)

		for _, uow := range []*MockUoW{firstUoW, secondUoW} {
			uow.On("Begin", ctx).Return(nil).Once()
			uow.On("Rollback", ctx).Return(nil).Once()
		}
		firstUoW.On("ForwardingOrderRepository").Return(first).Once()
		secondUoW.On("ForwardingOrderRepository").Return(second).Once()
		secondUoW.On("Commit", ctx).Return(nil).Once()

		first.On("LockNumbering", ctx, createdAt).Return(nil).Once()
		first.On("NumbersCreatedBetween", ctx, from, to).Return([]string{}, nil).Once()
		first.On("Add", ctx, mock.Anything).
			Return(int64(0), errs.NewConflictError("orderNumber", "0001/05/2025", nil)).Once()

		second.On("LockNumbering", ctx, createdAt).Return(nil).Once()
		second.On("NumbersCreatedBetween", ctx, from, to).Return([]string{"0001/05/2025"}, nil).Once()
		second.On("Add", ctx, mock.Anything).Return(int64(2), nil).Once()

		factory := new(MockForwardingUoWFactory)
		factory.On("Create").Return(firstUoW).Once()
		factory.On("Create").Return(secondUoW).Once()

		result, err := commands.NewCreateForwardingOrderCommandHandler(factory).Handle(ctx, cmd)

		require.NoError(t, err)
		assert.Equal(t, "0002/05/2025", result.OrderNumber)
		firstUoW.AssertNotCalled(t, "Commit", ctx)
		secondUoW.AssertExpectations(t)
	})

	t.Run("gives up after repeated conflicts", func(t *testing.T) {
		ctx := t.Context()
		cmd, err := commands.NewCreateForwardingOrderCommand(
			user(t, "jan@example.com", "handlowiec", ""), forwardingDetails(t), createdAt)
		require.NoError(t, err)

		repo := new(MockForwardingOrderRepository)
		repo.On("LockNumbering", ctx, createdAt).Return(nil)
		repo.On("NumbersCreatedBetween", ctx, from, to).Return([]string{}, nil)
		repo.On("Add", ctx, mock.Anything).Return(int64(0), errs.NewConflictError("orderNumber", "x", nil))

		uow := new(MockUoW)
		uow.On("Begin", ctx).Return(nil)
		uow.On("Rollback", ctx).Return(nil)
		uow.On("ForwardingOrderRepository").Return(repo)

		factory := new(MockForwardingUoWFactory)
		factory.On("Create").Return(uow)

		_, err = commands.NewCreateForwardingOrderCommandHandler(factory).Handle(ctx, cmd)

		require.ErrorIs(t, err, errs.ErrConflict)
		factory.AssertNumberOfCalls(t, "Create", 3)
	})

	t.Run("does not retry other failures", func(t *testing.T) {
		ctx := t.Context()
		cmd, err := commands.NewCreateForwardingOrderCommand(
			user(t, "jan@example.com", "handlowiec", ""), forwardingDetails(t), createdAt)
		require.NoError(t, err)

		repo := new(MockForwardingOrderRepository)
		repo.On("LockNumbering", ctx, createdAt).Return(errors.New("db down")).Once()

		uow := new(MockUoW)
		uow.On("Begin", ctx).Return(nil).Once()
		uow.On("Rollback", ctx).Return(nil).Once()
		uow.On("ForwardingOrderRepository").Return(repo).Once()

		factory := new(MockForwardingUoWFactory)
		factory.On("Create").Return(uow).Once()

		_, err = commands.NewCreateForwardingOrderCommandHandler(factory).Handle(ctx, cmd)

		require.EqualError(t, err, "db down")
		factory.AssertNumberOfCalls(t, "Create", 1)
	})

	t.Run("rejects a command built without its constructor", func(t *testing.T) {
		factory := new(MockForwardingUoWFactory)

		_, err := commands.NewCreateForwardingOrderCommandHandler(factory).
			Handle(t.Context(), commands.CreateForwardingOrderCommand{})

		require.ErrorIs(t, err, commands.ErrCreateForwardingOrderCommandIsNotConstructed)
		factory.AssertNotCalled(t, "Create")
	})
}

func TestNewCreateForwardingOrderCommand(t *testing.T) {
	t.Run("requires an authenticated actor", func(t *testing.T) {
		_, err := commands.NewCreateForwardingOrderCommand(access.User{}, forwardingDetails(t), time.Now())

		require.ErrorIs(t, err, errs.ErrUnauthenticated)
	})

	t.Run("validates details before any transaction", func(t *testing.T) {
		d := forwardingDetails(t)
		d.Pickup = forwarding.PickupProducer

		_, err := commands.NewCreateForwardingOrderCommand(
			user(t, "jan@example.com", "", ""), d, time.Now())

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})
}
