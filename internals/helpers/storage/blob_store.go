// file: internals/helpers/storage/blob_store.go
package storage

import (
	"fmt"
	"regexp"
	"strings"
	"time"
)

// BlobStore memisahkan logika lifecycle dari lokasi penyimpanan file.
// Key bersifat relatif (mis. "penawaran/penawaran-<id>-<ts>.pdf") dan
// dipetakan ke URL publik lewat URLFor.
type BlobStore interface {
	Put(key string, data []byte, contentType string) error
	Get(key string) ([]byte, error)
	Delete(key string) error
	URLFor(key string) string
}

var unsafeChars = regexp.MustCompile(`[^a-zA-Z0-9.\-_]+`)

// SanitizeName menghapus karakter selain huruf, angka, titik, dash, underscore
func SanitizeName(name string) string {
	return unsafeChars.ReplaceAllString(name, "_")
}

// BuildKey menghasilkan key dengan konvensi
// <category>/<name>-<id>-<timestamp>.<ext>
func BuildKey(category, name, id, ext string) string {
	ext = strings.TrimPrefix(ext, ".")
	return fmt.Sprintf("%s/%s-%s-%d.%s",
		SanitizeName(category),
		SanitizeName(name),
		SanitizeName(id),
		time.Now().UnixMilli(),
		ext,
	)
}
