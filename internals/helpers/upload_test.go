// file: internals/helpers/upload_test.go
package helper

import (
	"encoding/base64"
	"regexp"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeDataURI(t *testing.T) {
	payload := []byte("isi file logo")
	encoded := base64.StdEncoding.EncodeToString(payload)

	mime, data, err := DecodeDataURI("data:image/png;base64," + encoded)
	require.NoError(t, err)
	assert.Equal(t, "image/png", mime)
	assert.Equal(t, payload, data)

	// base64 polos tanpa prefix tetap diterima, mime kosong
	mime, data, err = DecodeDataURI(encoded)
	require.NoError(t, err)
	assert.Empty(t, mime)
	assert.Equal(t, payload, data)

	_, _, err = DecodeDataURI("")
	assert.Error(t, err)

	_, _, err = DecodeDataURI("data:image/png,tanpa-base64")
	assert.Error(t, err)

	_, _, err = DecodeDataURI("data:image/png;base64,%%%bukan-base64%%%")
	assert.Error(t, err)
}

func TestValidatePDF(t *testing.T) {
	assert.NoError(t, ValidatePDF("application/pdf", []byte("%PDF-1.7\n...")))
	assert.NoError(t, ValidatePDF("", []byte("%PDF-1.4")))

	assert.Error(t, ValidatePDF("image/png", []byte("%PDF-1.4")), "mimetype salah")
	assert.Error(t, ValidatePDF("application/pdf", []byte("PK\x03\x04 zip")), "magic bytes salah")
}

func TestValidateImageMime(t *testing.T) {
	for mime, wantExt := range map[string]string{
		"image/png":  "png",
		"image/jpeg": "jpg",
		"IMAGE/WEBP": "webp",
	} {
		ext, err := ValidateImageMime(mime)
		require.NoError(t, err, mime)
		assert.Equal(t, wantExt, ext)
	}

	_, err := ValidateImageMime("application/pdf")
	assert.Error(t, err)
}

func TestGenerateNomor(t *testing.T) {
	now := time.Date(2024, 3, 15, 10, 0, 0, 0, time.UTC)

	assert.Regexp(t, regexp.MustCompile(`^PGJ-20240315-\d{3}$`), GenerateNomorPengujian(now))
	assert.Equal(t, "ORD-1710496800000", GenerateNomorOrder(now))
	assert.Equal(t, "WS-1710496800000", GenerateNomorWorksheet(now))
}

func TestNormalizeOptionalText(t *testing.T) {
	assert.Nil(t, NormalizeOptionalText(nil))

	empty := "   "
	assert.Nil(t, NormalizeOptionalText(&empty))

	padded := "  Area Produksi  "
	got := NormalizeOptionalText(&padded)
	require.NotNil(t, got)
	assert.Equal(t, "Area Produksi", *got)
}
