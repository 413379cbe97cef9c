// file: internals/helpers/nomor.go
package helper

import (
	"fmt"
	"math/rand"
	"time"
)

// GenerateNomorPengujian: PGJ-YYYYMMDD-NNN. Suffix 3 digit acak, bukan
// sequence — tabrakan ~1/1000 per hari diterima untuk domain ini.
func GenerateNomorPengujian(now time.Time) string {
	return fmt.Sprintf("PGJ-%s-%03d", now.Format("20060102"), rand.Intn(1000))
}

// GenerateNomorOrder: ORD-<epoch-ms>
func GenerateNomorOrder(now time.Time) string {
	return fmt.Sprintf("ORD-%d", now.UnixMilli())
}

// GenerateNomorWorksheet: WS-<epoch-ms>
func GenerateNomorWorksheet(now time.Time) string {
	return fmt.Sprintf("WS-%d", now.UnixMilli())
}
