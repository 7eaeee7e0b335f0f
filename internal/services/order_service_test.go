package services_test

import (
	"sync"
	"testing"

	"chefbazaar_backend/internal/appErrors"
	"chefbazaar_backend/internal/models"
	"chefbazaar_backend/internal/repositories"
	"chefbazaar_backend/internal/services"
	"chefbazaar_backend/internal/services/dto"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type recordingNotifier struct {
	mu     sync.Mutex
	events []dto.OrderStatusEvent
}

func (n *recordingNotifier) PublishOrderStatus(orderID string, newStatus models.OrderStatus) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.events = append(n.events, dto.OrderStatusEvent{
		Event:     "order-status",
		OrderID:   orderID,
		NewStatus: newStatus,
	})
}

func (n *recordingNotifier) Events() []dto.OrderStatusEvent {
	n.mu.Lock()
	defer n.mu.Unlock()
	return append([]dto.OrderStatusEvent(nil), n.events...)
}

func newOrderService(notifier services.Notifier) services.OrderService {
	if notifier == nil {
		notifier = services.NoopNotifier{}
	}
	return services.NewOrderService(
		repositories.NewOrderRepository(),
		repositories.NewMealRepository(),
		notifier,
	)
}

func placeOrder(t *testing.T, db *gorm.DB, svc services.OrderService, customer *models.User, mealID string) *models.Order {
	t.Helper()

	order, err := svc.Create(db, claimsFor(customer), &dto.CreateOrderRequest{
		FoodID:      mealID,
		Quantity:    1,
		UserAddress: "12 Main St",
	})
	require.NoError(t, err)
	return order
}

func TestOrder_CreateSnapshotsMeal(t *testing.T) {
	db := setupDB(t)
	svc := newOrderService(nil)

	customer := createUser(t, db, "customer@example.com", models.UserRoleUser, "")
	meal := createMeal(t, db, "chef@example.com", "chef-1", "Plov", 12)

	order := placeOrder(t, db, svc, customer, meal.ID)

	assert.Equal(t, models.OrderStatusPending, order.OrderStatus)
	assert.Equal(t, models.PaymentStatusPending, order.PaymentStatus)
	assert.Equal(t, "Plov", order.MealName)
	assert.Equal(t, 12.0, order.Price)
	assert.Equal(t, "chef-1", order.ChefID)
	assert.Equal(t, customer.Email, order.UserEmail)

	// Later meal edits do not reach the snapshot.
	require.NoError(t, db.Model(meal).Updates(map[string]any{"food_name": "Renamed", "price": 99.0}).Error)
	var stored models.Order
	require.NoError(t, db.First(&stored, "id = ?", order.ID).Error)
	assert.Equal(t, "Plov", stored.MealName)
	assert.Equal(t, 12.0, stored.Price)
}

func TestOrder_CreateUnknownMeal(t *testing.T) {
	db := setupDB(t)
	svc := newOrderService(nil)

	customer := createUser(t, db, "customer@example.com", models.UserRoleUser, "")

	_, err := svc.Create(db, claimsFor(customer), &dto.CreateOrderRequest{
		FoodID:      "missing-meal",
		Quantity:    1,
		UserAddress: "12 Main St",
	})
	assert.ErrorIs(t, err, appErrors.ErrMealNotFound)
}

func TestOrder_ChefOrdersRequiresChefID(t *testing.T) {
	db := setupDB(t)
	svc := newOrderService(nil)

	// Chef role granted but no chefId in the claims.
	oddChef := createUser(t, db, "nochefid@example.com", models.UserRoleChef, "")

	_, err := svc.ChefOrders(db, claimsFor(oddChef))
	assert.ErrorIs(t, err, appErrors.ErrChefIDMissing)
}

func TestOrder_HappyPathTransitions(t *testing.T) {
	db := setupDB(t)
	notifier := &recordingNotifier{}
	svc := newOrderService(notifier)

	customer := createUser(t, db, "customer@example.com", models.UserRoleUser, "")
	chef := createUser(t, db, "chef@example.com", models.UserRoleChef, "chef-1")
	meal := createMeal(t, db, chef.Email, chef.ChefID, "Plov", 12)

	order := placeOrder(t, db, svc, customer, meal.ID)

	accepted, err := svc.UpdateStatus(db, claimsFor(chef), order.ID, models.OrderStatusAccepted)
	require.NoError(t, err)
	assert.Equal(t, models.OrderStatusAccepted, accepted.OrderStatus)

	delivered, err := svc.UpdateStatus(db, claimsFor(chef), order.ID, models.OrderStatusDelivered)
	require.NoError(t, err)
	assert.Equal(t, models.OrderStatusDelivered, delivered.OrderStatus)

	// Terminal state: no way back.
	_, err = svc.UpdateStatus(db, claimsFor(chef), order.ID, models.OrderStatusPending)
	require.Error(t, err)

	events := notifier.Events()
	require.Len(t, events, 2)
	assert.Equal(t, models.OrderStatusAccepted, events[0].NewStatus)
	assert.Equal(t, models.OrderStatusDelivered, events[1].NewStatus)
	assert.Equal(t, order.ID, events[0].OrderID)
}

func TestOrder_IllegalTransitionKeepsStatus(t *testing.T) {
	db := setupDB(t)
	notifier := &recordingNotifier{}
	svc := newOrderService(notifier)

	customer := createUser(t, db, "customer@example.com", models.UserRoleUser, "")
	chef := createUser(t, db, "chef@example.com", models.UserRoleChef, "chef-1")
	meal := createMeal(t, db, chef.Email, chef.ChefID, "Plov", 12)

	order := placeOrder(t, db, svc, customer, meal.ID)

	// pending -> delivered skips accepted and is rejected.
	_, err := svc.UpdateStatus(db, claimsFor(chef), order.ID, models.OrderStatusDelivered)
	require.Error(t, err)

	var stored models.Order
	require.NoError(t, db.First(&stored, "id = ?", order.ID).Error)
	assert.Equal(t, models.OrderStatusPending, stored.OrderStatus)
	assert.Empty(t, notifier.Events())
}

func TestOrder_OnlyTheNamedChefTransitions(t *testing.T) {
	db := setupDB(t)
	svc := newOrderService(nil)

	customer := createUser(t, db, "customer@example.com", models.UserRoleUser, "")
	chef := createUser(t, db, "chef@example.com", models.UserRoleChef, "chef-1")
	otherChef := createUser(t, db, "other@example.com", models.UserRoleChef, "chef-2")
	meal := createMeal(t, db, chef.Email, chef.ChefID, "Plov", 12)

	order := placeOrder(t, db, svc, customer, meal.ID)

	// A different chef is rejected.
	_, err := svc.UpdateStatus(db, claimsFor(otherChef), order.ID, models.OrderStatusAccepted)
	assert.ErrorIs(t, err, appErrors.ErrNotOrderChef)

	// The customer who placed the order is rejected too.
	_, err = svc.UpdateStatus(db, claimsFor(customer), order.ID, models.OrderStatusAccepted)
	assert.ErrorIs(t, err, appErrors.ErrNotOrderChef)

	var stored models.Order
	require.NoError(t, db.First(&stored, "id = ?", order.ID).Error)
	assert.Equal(t, models.OrderStatusPending, stored.OrderStatus)
}

func TestOrder_UpdateStatusUnknownValues(t *testing.T) {
	db := setupDB(t)
	svc := newOrderService(nil)

	chef := createUser(t, db, "chef@example.com", models.UserRoleChef, "chef-1")

	_, err := svc.UpdateStatus(db, claimsFor(chef), "whatever", models.OrderStatus("shipped"))
	require.Error(t, err)

	_, err = svc.UpdateStatus(db, claimsFor(chef), "missing-order", models.OrderStatusAccepted)
	assert.ErrorIs(t, err, appErrors.ErrOrderNotFound)
}

func TestOrder_ListingsAreScoped(t *testing.T) {
	db := setupDB(t)
	svc := newOrderService(nil)

	customer := createUser(t, db, "customer@example.com", models.UserRoleUser, "")
	other := createUser(t, db, "other@example.com", models.UserRoleUser, "")
	chef := createUser(t, db, "chef@example.com", models.UserRoleChef, "chef-1")
	meal := createMeal(t, db, chef.Email, chef.ChefID, "Plov", 12)
	otherMeal := createMeal(t, db, "second@example.com", "chef-2", "Lagman", 9)

	placeOrder(t, db, svc, customer, meal.ID)
	placeOrder(t, db, svc, customer, otherMeal.ID)
	placeOrder(t, db, svc, other, meal.ID)

	mine, err := svc.MyOrders(db, claimsFor(customer))
	require.NoError(t, err)
	assert.Len(t, mine, 2)

	chefOrders, err := svc.ChefOrders(db, claimsFor(chef))
	require.NoError(t, err)
	assert.Len(t, chefOrders, 2)
	for _, o := range chefOrders {
		assert.Equal(t, "chef-1", o.ChefID)
	}
}
