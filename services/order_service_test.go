package services

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/minsmanse/bar/entity"
	"github.com/minsmanse/bar/repository"
)

type recordingNotifier struct {
	created []string
	updated []string
}

func (n *recordingNotifier) OrderCreated(o *entity.Order) { n.created = append(n.created, o.ID) }
func (n *recordingNotifier) OrderUpdated(o *entity.Order) { n.updated = append(n.updated, o.ID) }

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	// one named in-memory db per test, shared across the pool's connections
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&entity.Ingredient{},
		&entity.MenuItem{},
		&entity.MenuPortion{},
		&entity.Order{},
		&entity.OrderItem{},
	))
	return db
}

func newOrderFixture(t *testing.T) (*OrderService, *recordingNotifier, string) {
	t.Helper()
	db := newTestDB(t)

	menuRepo := repository.NewMenuRepository(db)
	mojito := &entity.MenuItem{Name: "Mojito", FinalAbv: 9.4, TotalVolumeMl: 200}
	require.NoError(t, menuRepo.Create(mojito))

	notifier := &recordingNotifier{}
	svc := NewOrderService(repository.NewOrderRepository(db), menuRepo, notifier)
	return svc, notifier, mojito.ID
}

func TestPlaceBlankUserNameRejected(t *testing.T) {
	svc, notifier, menuID := newOrderFixture(t)

	_, err := svc.Place(&PlaceOrderReq{
		UserName: "   ",
		Items:    []PlaceOrderItemIn{{MenuID: menuID, Quantity: 1}},
	})

	assert.True(t, IsValidation(err))
	assert.Empty(t, notifier.created)

	orders, _ := svc.List()
	assert.Empty(t, orders, "nothing may reach the store")
}

func TestPlaceEmptyItemsRejected(t *testing.T) {
	svc, notifier, _ := newOrderFixture(t)

	_, err := svc.Place(&PlaceOrderReq{UserName: "Min"})

	assert.True(t, IsValidation(err))
	assert.Empty(t, notifier.created)
}

func TestPlaceNonPositiveQuantityRejected(t *testing.T) {
	svc, _, menuID := newOrderFixture(t)

	_, err := svc.Place(&PlaceOrderReq{
		UserName: "Min",
		Items:    []PlaceOrderItemIn{{MenuID: menuID, Quantity: 0}},
	})

	assert.True(t, IsValidation(err))
}

func TestPlaceUnknownMenuItemRejected(t *testing.T) {
	svc, _, _ := newOrderFixture(t)

	_, err := svc.Place(&PlaceOrderReq{
		UserName: "Min",
		Items:    []PlaceOrderItemIn{{MenuID: "no-such-item", Quantity: 1}},
	})

	assert.True(t, IsValidation(err))
}

func TestPlaceCreatesPendingOrderAndBroadcasts(t *testing.T) {
	svc, notifier, menuID := newOrderFixture(t)

	created, err := svc.Place(&PlaceOrderReq{
		UserName:       "Min",
		RequestMessage: "easy on the ice",
		Items:          []PlaceOrderItemIn{{MenuID: menuID, Name: "ignored", Quantity: 2}},
	})
	require.NoError(t, err)

	assert.NotEmpty(t, created.ID)
	assert.Equal(t, entity.OrderPending, created.Status)
	assert.False(t, created.CreatedAt.IsZero())
	assert.Equal(t, []string{created.ID}, notifier.created)

	// the item name comes from the menu, not the request
	require.Len(t, created.Items, 1)
	assert.Equal(t, "Mojito", created.Items[0].Name)
	assert.Equal(t, 2, created.Items[0].Quantity)

	fetched, err := svc.Repo.FindByID(created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.UserName, fetched.UserName)
	assert.Equal(t, created.RequestMessage, fetched.RequestMessage)
	assert.Equal(t, entity.OrderPending, fetched.Status)
}

func TestMarkCompletedIsIdempotent(t *testing.T) {
	svc, notifier, menuID := newOrderFixture(t)

	created, err := svc.Place(&PlaceOrderReq{
		UserName: "Min",
		Items:    []PlaceOrderItemIn{{MenuID: menuID, Quantity: 1}},
	})
	require.NoError(t, err)

	first, err := svc.MarkCompleted(created.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.OrderCompleted, first.Status)

	second, err := svc.MarkCompleted(created.ID)
	require.NoError(t, err, "repeat completion is a no-op, not a fault")
	assert.Equal(t, entity.OrderCompleted, second.Status)
	assert.Equal(t, created.CreatedAt.Unix(), second.CreatedAt.Unix())

	assert.Equal(t, []string{created.ID}, notifier.updated, "the no-op is not re-broadcast")
}

func TestSetStatusUnknownOrder(t *testing.T) {
	svc, notifier, _ := newOrderFixture(t)

	_, err := svc.SetStatus("no-such-order", entity.OrderCompleted)

	assert.ErrorIs(t, err, ErrNotFound)
	assert.Empty(t, notifier.updated)
}

func TestSetStatusCannotLeaveCompleted(t *testing.T) {
	svc, _, menuID := newOrderFixture(t)

	created, err := svc.Place(&PlaceOrderReq{
		UserName: "Min",
		Items:    []PlaceOrderItemIn{{MenuID: menuID, Quantity: 1}},
	})
	require.NoError(t, err)
	_, err = svc.MarkCompleted(created.ID)
	require.NoError(t, err)

	_, err = svc.SetStatus(created.ID, entity.OrderPending)
	assert.ErrorIs(t, err, ErrCompletedOrder)
}

func TestSetStatusUnknownValueRejected(t *testing.T) {
	svc, _, menuID := newOrderFixture(t)

	created, err := svc.Place(&PlaceOrderReq{
		UserName: "Min",
		Items:    []PlaceOrderItemIn{{MenuID: menuID, Quantity: 1}},
	})
	require.NoError(t, err)

	_, err = svc.SetStatus(created.ID, "cancelled")
	assert.True(t, IsValidation(err))
}

func TestHistoryDropsUnknownIDsAndSortsNewestFirst(t *testing.T) {
	svc, _, menuID := newOrderFixture(t)

	var ids []string
	for _, name := range []string{"Ana", "Bo", "Cy"} {
		o, err := svc.Place(&PlaceOrderReq{
			UserName: name,
			Items:    []PlaceOrderItemIn{{MenuID: menuID, Quantity: 1}},
		})
		require.NoError(t, err)
		ids = append(ids, o.ID)
	}

	got, err := svc.History([]string{ids[0], "no-such-order", ids[2]})
	require.NoError(t, err)

	require.Len(t, got, 2)
	assert.Equal(t, "Cy", got[0].UserName, "newest first")
	assert.Equal(t, "Ana", got[1].UserName)
}
