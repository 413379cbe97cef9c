// file: internals/helpers/upload.go
package helper

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"strings"
)

// Mimetype gambar yang diterima untuk avatar & logo perusahaan
var allowedImageMimes = map[string]string{
	"image/png":  "png",
	"image/jpeg": "jpg",
	"image/jpg":  "jpg",
	"image/webp": "webp",
}

// DecodeDataURI membongkar data-URI base64 ("data:<mime>;base64,<payload>").
// Body polos base64 tanpa prefix juga diterima (mime dikosongkan).
func DecodeDataURI(s string) (mime string, data []byte, err error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return "", nil, fmt.Errorf("file kosong")
	}
	if strings.HasPrefix(s, "data:") {
		semi := strings.Index(s, ";base64,")
		if semi < 0 {
			return "", nil, fmt.Errorf("format data-URI tidak valid")
		}
		mime = s[len("data:"):semi]
		s = s[semi+len(";base64,"):]
	}
	data, err = base64.StdEncoding.DecodeString(s)
	if err != nil {
		return "", nil, fmt.Errorf("base64 tidak valid: %w", err)
	}
	return mime, data, nil
}

// ValidatePDF memastikan dokumen yang diupload benar-benar PDF
// (mimetype bila ada, plus magic bytes %PDF).
func ValidatePDF(mime string, data []byte) error {
	if mime != "" && mime != "application/pdf" {
		return fmt.Errorf("dokumen harus berformat PDF, bukan %s", mime)
	}
	if !bytes.HasPrefix(data, []byte("%PDF")) {
		return fmt.Errorf("isi file bukan PDF")
	}
	return nil
}

// ValidateImageMime memeriksa allowlist mimetype gambar, return ekstensi.
func ValidateImageMime(mime string) (ext string, err error) {
	ext, ok := allowedImageMimes[strings.ToLower(strings.TrimSpace(mime))]
	if !ok {
		return "", fmt.Errorf("tipe gambar %q tidak didukung (png/jpeg/webp)", mime)
	}
	return ext, nil
}
