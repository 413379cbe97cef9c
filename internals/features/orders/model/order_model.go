// file: internals/features/orders/model/order_model.go
package model

import (
	"time"

	"github.com/google/uuid"

	catalogModel "tepian_backend/internals/features/catalog/model"
)

/* =========================
   Model: orders
   ========================= */

// Order adalah sisi komersial dari sebuah Pengujian (1:1).
// Pengujian memegang fakta teknis, Order memegang fakta pelanggan +
// tiga sub-alur dokumen (penawaran, persetujuan, invoice/pembayaran).
type Order struct {
	OrderID          uuid.UUID `json:"order_id" gorm:"column:order_id;type:uuid;primaryKey;default:gen_random_uuid()"`
	OrderNumber      string    `json:"order_number" gorm:"column:order_number;size:40;uniqueIndex;not null"`
	OrderUserID      uuid.UUID `json:"order_user_id" gorm:"column:order_user_id;type:uuid;not null;index"`
	OrderPengujianID uuid.UUID `json:"order_pengujian_id" gorm:"column:order_pengujian_id;type:uuid;not null;uniqueIndex"`
	OrderTotalAmount float64   `json:"order_total_amount" gorm:"column:order_total_amount;type:numeric(15,2);not null;default:0"`

	// snapshot data pemohon
	OrderCompany       *string `json:"order_company,omitempty" gorm:"column:order_company;size:160"`
	OrderAddress       *string `json:"order_address,omitempty" gorm:"column:order_address;type:text"`
	OrderContactPerson *string `json:"order_contact_person,omitempty" gorm:"column:order_contact_person;size:120"`
	OrderPhone         *string `json:"order_phone,omitempty" gorm:"column:order_phone;size:40"`
	OrderCompanyLogo   *string `json:"order_company_logo,omitempty" gorm:"column:order_company_logo;size:255"`

	OrderStatus string  `json:"order_status" gorm:"column:order_status;type:varchar(20);not null;default:'PENDING'"`
	OrderNotes  *string `json:"order_notes,omitempty" gorm:"column:order_notes;type:text"`

	// sub-alur penawaran
	OrderPenawaranFile *string `json:"order_penawaran_file,omitempty" gorm:"column:order_penawaran_file;size:255"`

	// sub-alur persetujuan
	OrderSuratPersetujuanFile       *string `json:"order_surat_persetujuan_file,omitempty" gorm:"column:order_surat_persetujuan_file;size:255"`
	OrderPersetujuanStatus          *string `json:"order_persetujuan_status,omitempty" gorm:"column:order_persetujuan_status;type:varchar(20)"`
	OrderPersetujuanRejectionReason *string `json:"order_persetujuan_rejection_reason,omitempty" gorm:"column:order_persetujuan_rejection_reason;type:text"`

	// sub-alur invoice & pembayaran
	OrderInvoiceFile            *string `json:"order_invoice_file,omitempty" gorm:"column:order_invoice_file;size:255"`
	OrderInvoiceNumber          *string `json:"order_invoice_number,omitempty" gorm:"column:order_invoice_number;size:60"`
	OrderBuktiBayarFile         *string `json:"order_bukti_bayar_file,omitempty" gorm:"column:order_bukti_bayar_file;size:255"`
	OrderPaymentStatus          *string `json:"order_payment_status,omitempty" gorm:"column:order_payment_status;type:varchar(30)"`
	OrderPaymentRejectionReason *string `json:"order_payment_rejection_reason,omitempty" gorm:"column:order_payment_rejection_reason;type:text"`

	OrderCreatedAt time.Time `json:"order_created_at" gorm:"column:order_created_at;autoCreateTime"`
	OrderUpdatedAt time.Time `json:"order_updated_at" gorm:"column:order_updated_at;autoUpdateTime"`

	Items []OrderItem `json:"items,omitempty" gorm:"foreignKey:OrderItemOrderID"`
}

func (Order) TableName() string { return "orders" }

/* =========================
   Model: order_items
   ========================= */

// OrderItem menduplikasi item pengujian (denormalisasi yang disengaja):
// harga di sini snapshot saat pembuatan, bukan harga katalog live.
type OrderItem struct {
	OrderItemID          uuid.UUID `json:"order_item_id" gorm:"column:order_item_id;type:uuid;primaryKey;default:gen_random_uuid()"`
	OrderItemOrderID     uuid.UUID `json:"order_item_order_id" gorm:"column:order_item_order_id;type:uuid;not null;index;constraint:OnDelete:CASCADE"`
	OrderItemParameterID uuid.UUID `json:"order_item_parameter_id" gorm:"column:order_item_parameter_id;type:uuid;not null;index"`
	OrderItemQuantity    int       `json:"order_item_quantity" gorm:"column:order_item_quantity;not null;default:1"`
	OrderItemPrice       float64   `json:"order_item_price" gorm:"column:order_item_price;type:numeric(15,2);not null"`
	OrderItemSubtotal    float64   `json:"order_item_subtotal" gorm:"column:order_item_subtotal;type:numeric(15,2);not null"`
	OrderItemLocation    *string   `json:"order_item_location,omitempty" gorm:"column:order_item_location;size:160"`

	Parameter *catalogModel.Parameter `json:"parameter,omitempty" gorm:"foreignKey:OrderItemParameterID;references:ParameterID"`
}

func (OrderItem) TableName() string { return "order_items" }
