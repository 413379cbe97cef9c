// file: internals/features/orders/service/webhook.go
package service

import (
	"fmt"
	"log"

	"gorm.io/gorm"

	model "tepian_backend/internals/features/orders/model"
)

// HandlePaymentWebhook dipanggil saat menerima notifikasi dari
// Midtrans. Status transaksi dipetakan ke status pembayaran order;
// status yang tidak dikenal dibiarkan lewat tanpa perubahan.
func HandlePaymentWebhook(db *gorm.DB, body map[string]interface{}) error {
	orderNumber, ok1 := body["order_id"].(string)
	status, ok2 := body["transaction_status"].(string)

	if !ok1 || !ok2 {
		log.Println("[ERROR] Payload webhook tidak lengkap:", body)
		return fmt.Errorf("invalid payload")
	}

	log.Println("📄 Order:", orderNumber)
	log.Println("📌 Transaction Status:", status)

	var order model.Order
	if err := db.Where("order_number = ?", orderNumber).First(&order).Error; err != nil {
		log.Println("[ERROR] Order tidak ditemukan:", err)
		return fmt.Errorf("order %s not found", orderNumber)
	}

	switch status {
	case "capture", "settlement":
		paid := model.PaymentStatusPaid
		order.OrderPaymentStatus = &paid
		order.OrderPaymentRejectionReason = nil

	case "expire", "cancel", "deny":
		rejected := model.PaymentStatusRejected
		reason := "Pembayaran online " + status
		order.OrderPaymentStatus = &rejected
		order.OrderPaymentRejectionReason = &reason

	default:
		log.Println("[INFO] Status tidak diproses:", status)
		return nil
	}

	if err := db.Save(&order).Error; err != nil {
		log.Println("[ERROR] Gagal menyimpan status pembayaran:", err)
		return err
	}

	return nil
}
