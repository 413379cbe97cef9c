// file: internals/features/orders/model/order_status_test.go
package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNextOrderStatus_UploadPenawaran(t *testing.T) {
	for _, from := range []string{OrderStatusPending, OrderStatusConfirmed, OrderStatusInProgress, OrderStatusCompleted} {
		next, ok := NextOrderStatus(from, EventUploadPenawaran)
		assert.True(t, ok, "dari %s", from)
		assert.Equal(t, OrderStatusInProgress, next)
	}

	_, ok := NextOrderStatus(OrderStatusCancelled, EventUploadPenawaran)
	assert.False(t, ok, "order batal tidak bisa dihidupkan lewat penawaran")
}

func TestNextOrderStatus_UploadInvoice(t *testing.T) {
	for _, from := range []string{OrderStatusPending, OrderStatusConfirmed, OrderStatusInProgress, OrderStatusCompleted} {
		next, ok := NextOrderStatus(from, EventUploadInvoice)
		assert.True(t, ok, "dari %s", from)
		assert.Equal(t, OrderStatusCompleted, next)
	}

	_, ok := NextOrderStatus(OrderStatusCancelled, EventUploadInvoice)
	assert.False(t, ok)
}

func TestNextOrderStatus_ReviseFromAnywhere(t *testing.T) {
	for _, from := range []string{
		OrderStatusPending, OrderStatusConfirmed, OrderStatusInProgress,
		OrderStatusCompleted, OrderStatusCancelled,
	} {
		next, ok := NextOrderStatus(from, EventRevise)
		assert.True(t, ok, "revise harus boleh dari %s", from)
		assert.Equal(t, OrderStatusPending, next)
	}
}

func TestNextOrderStatus_WorksheetSubmitted(t *testing.T) {
	for _, from := range []string{OrderStatusPending, OrderStatusConfirmed, OrderStatusInProgress} {
		next, ok := NextOrderStatus(from, EventWorksheetSubmitted)
		assert.True(t, ok)
		assert.Equal(t, OrderStatusInProgress, next)
	}

	for _, from := range []string{OrderStatusCompleted, OrderStatusCancelled} {
		_, ok := NextOrderStatus(from, EventWorksheetSubmitted)
		assert.False(t, ok, "submit worksheet harus no-op dari %s", from)
	}
}

func TestNextOrderStatus_Cancel(t *testing.T) {
	for _, from := range []string{OrderStatusPending, OrderStatusConfirmed, OrderStatusInProgress} {
		next, ok := NextOrderStatus(from, EventCancel)
		assert.True(t, ok)
		assert.Equal(t, OrderStatusCancelled, next)
	}

	_, ok := NextOrderStatus(OrderStatusCompleted, EventCancel)
	assert.False(t, ok, "order selesai tidak bisa dibatalkan")

	_, ok = NextOrderStatus(OrderStatusCancelled, EventCancel)
	assert.False(t, ok)
}

func TestNextOrderStatus_UnknownEvent(t *testing.T) {
	next, ok := NextOrderStatus(OrderStatusPending, OrderEvent("TIDAK_ADA"))
	assert.False(t, ok)
	assert.Equal(t, OrderStatusPending, next)
}
