// file: internals/features/orders/model/order_status.go
package model

/* =========================
   Status Order
   ========================= */

const (
	OrderStatusPending    = "PENDING"
	OrderStatusConfirmed  = "CONFIRMED"
	OrderStatusInProgress = "IN_PROGRESS"
	OrderStatusCompleted  = "COMPLETED"
	OrderStatusCancelled  = "CANCELLED"
)

var ValidOrderStatus = map[string]bool{
	OrderStatusPending:    true,
	OrderStatusConfirmed:  true,
	OrderStatusInProgress: true,
	OrderStatusCompleted:  true,
	OrderStatusCancelled:  true,
}

/* =========================
   Status persetujuan & pembayaran
   (flag tri-state independen di atas Order.status)
   ========================= */

const (
	PersetujuanStatusPending  = "PENDING"
	PersetujuanStatusApproved = "APPROVED"
	PersetujuanStatusRejected = "REJECTED"
)

const (
	PaymentStatusPendingVerification = "PENDING_VERIFICATION"
	PaymentStatusPaid                = "PAID"
	PaymentStatusRejected            = "REJECTED"
)

/* =========================
   Event lifecycle & tabel transisi
   ========================= */

// OrderEvent adalah pemicu perubahan Order.status. Perubahan status
// lewat event selalu melewati tabel transisi di bawah; PATCH status
// eksplisit oleh admin adalah satu-satunya jalan pintas.
type OrderEvent string

const (
	EventRevise             OrderEvent = "REVISE"
	EventUploadPenawaran    OrderEvent = "UPLOAD_PENAWARAN"
	EventUploadInvoice      OrderEvent = "UPLOAD_INVOICE"
	EventWorksheetSubmitted OrderEvent = "WORKSHEET_SUBMITTED"
	EventCancel             OrderEvent = "CANCEL"
)

type transition struct {
	from   map[string]bool // nil = dari status apa pun
	target string
}

var anyActive = map[string]bool{
	OrderStatusPending:    true,
	OrderStatusConfirmed:  true,
	OrderStatusInProgress: true,
}

var orderTransitions = map[OrderEvent]transition{
	// revise: admin mengembalikan order ke PENDING, dari status apa pun
	EventRevise: {from: nil, target: OrderStatusPending},

	// upload dokumen meng-auto-advance status; order yang sudah
	// dibatalkan tidak bisa dihidupkan lagi lewat upload
	EventUploadPenawaran: {
		from: map[string]bool{
			OrderStatusPending:    true,
			OrderStatusConfirmed:  true,
			OrderStatusInProgress: true,
			OrderStatusCompleted:  true,
		},
		target: OrderStatusInProgress,
	},
	EventUploadInvoice: {
		from: map[string]bool{
			OrderStatusPending:    true,
			OrderStatusConfirmed:  true,
			OrderStatusInProgress: true,
			OrderStatusCompleted:  true,
		},
		target: OrderStatusCompleted,
	},

	EventWorksheetSubmitted: {from: anyActive, target: OrderStatusInProgress},

	EventCancel: {from: anyActive, target: OrderStatusCancelled},
}

// NextOrderStatus mengevaluasi (status × event). ok=false berarti
// transisi tidak diizinkan dari status saat ini.
func NextOrderStatus(current string, ev OrderEvent) (next string, ok bool) {
	t, known := orderTransitions[ev]
	if !known {
		return current, false
	}
	if t.from != nil && !t.from[current] {
		return current, false
	}
	return t.target, true
}
