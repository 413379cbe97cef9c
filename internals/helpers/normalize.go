// file: internals/helpers/normalize.go
package helper

import "strings"

// NormalizeOptionalText: konvensi field teks opsional — string kosong
// (setelah trim) disimpan sebagai NULL.
func NormalizeOptionalText(v *string) *string {
	if v == nil {
		return nil
	}
	t := strings.TrimSpace(*v)
	if t == "" {
		return nil
	}
	return &t
}
