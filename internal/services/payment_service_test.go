package services_test

import (
	"testing"

	"chefbazaar_backend/internal/appErrors"
	"chefbazaar_backend/internal/models"
	"chefbazaar_backend/internal/repositories"
	"chefbazaar_backend/internal/services"
	"chefbazaar_backend/internal/services/dto"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newPaymentService() services.PaymentService {
	return services.NewPaymentService(
		repositories.NewPaymentRepository(),
		repositories.NewOrderRepository(),
	)
}

func TestPayment_CheckoutStub(t *testing.T) {
	svc := newPaymentService()

	resp := svc.Checkout(&dto.CheckoutRequest{OrderID: "order-1", Amount: 25})
	assert.NotEmpty(t, resp.CheckoutURL)
	assert.Equal(t, "order-1", resp.OrderID)
	assert.Equal(t, 25.0, resp.Amount)
}

func TestPayment_SuccessMarksOrderPaid(t *testing.T) {
	db := setupDB(t)
	orderSvc := newOrderService(nil)
	svc := newPaymentService()

	customer := createUser(t, db, "customer@example.com", models.UserRoleUser, "")
	meal := createMeal(t, db, "chef@example.com", "chef-1", "Plov", 12)
	order := placeOrder(t, db, orderSvc, customer, meal.ID)

	err := svc.RecordSuccess(db, &dto.PaymentSuccessRequest{OrderID: order.ID, Amount: 12})
	require.NoError(t, err)

	var stored models.Order
	require.NoError(t, db.First(&stored, "id = ?", order.ID).Error)
	assert.Equal(t, models.PaymentStatusPaid, stored.PaymentStatus)
	// Payment state is orthogonal to fulfillment state.
	assert.Equal(t, models.OrderStatusPending, stored.OrderStatus)

	var payments []models.Payment
	require.NoError(t, db.Find(&payments, "order_id = ?", order.ID).Error)
	require.Len(t, payments, 1)
	assert.Equal(t, "paid", payments[0].Status)
	assert.Equal(t, "usd", payments[0].Currency)
	assert.Equal(t, 12.0, payments[0].Amount)
}

func TestPayment_ReplayAppendsSecondRecord(t *testing.T) {
	db := setupDB(t)
	orderSvc := newOrderService(nil)
	svc := newPaymentService()

	customer := createUser(t, db, "customer@example.com", models.UserRoleUser, "")
	meal := createMeal(t, db, "chef@example.com", "chef-1", "Plov", 12)
	order := placeOrder(t, db, orderSvc, customer, meal.ID)

	require.NoError(t, svc.RecordSuccess(db, &dto.PaymentSuccessRequest{OrderID: order.ID, Amount: 12}))
	require.NoError(t, svc.RecordSuccess(db, &dto.PaymentSuccessRequest{OrderID: order.ID, Amount: 12}))

	// The callback is not deduplicated: the ledger keeps both rows and
	// the order simply stays paid.
	var count int64
	db.Model(&models.Payment{}).Where("order_id = ?", order.ID).Count(&count)
	assert.Equal(t, int64(2), count)

	var stored models.Order
	require.NoError(t, db.First(&stored, "id = ?", order.ID).Error)
	assert.Equal(t, models.PaymentStatusPaid, stored.PaymentStatus)
}

func TestPayment_SuccessUnknownOrder(t *testing.T) {
	db := setupDB(t)
	svc := newPaymentService()

	err := svc.RecordSuccess(db, &dto.PaymentSuccessRequest{OrderID: "missing", Amount: 10})
	assert.ErrorIs(t, err, appErrors.ErrOrderNotFound)
}
