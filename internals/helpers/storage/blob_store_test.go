// file: internals/helpers/storage/blob_store_test.go
package storage

import (
	"os"
	"path/filepath"
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSanitizeName(t *testing.T) {
	assert.Equal(t, "company-logo", SanitizeName("company-logo"))
	assert.Equal(t, "PT_Maju_Jaya", SanitizeName("PT Maju Jaya"))
	assert.Equal(t, "laporan_final.pdf", SanitizeName("laporan/final.pdf"))
	assert.Equal(t, "_", SanitizeName("../../"))
}

func TestBuildKey(t *testing.T) {
	key := BuildKey("penawaran", "penawaran", "abc-123", ".pdf")
	assert.Regexp(t, regexp.MustCompile(`^penawaran/penawaran-abc-123-\d+\.pdf$`), key)

	// ekstensi tanpa titik juga diterima
	key = BuildKey("logo", "company logo", "xyz", "webp")
	assert.Regexp(t, regexp.MustCompile(`^logo/company_logo-xyz-\d+\.webp$`), key)
}

func TestLocalStoreRoundTrip(t *testing.T) {
	store := NewLocalStore(t.TempDir())

	key := "penawaran/penawaran-test-1.pdf"
	require.NoError(t, store.Put(key, []byte("%PDF-1.4 isi"), "application/pdf"))

	data, err := store.Get(key)
	require.NoError(t, err)
	assert.Equal(t, []byte("%PDF-1.4 isi"), data)

	url := store.URLFor(key)
	assert.Equal(t, "/uploads/penawaran/penawaran-test-1.pdf", url)
	assert.Equal(t, key, store.KeyFromURL(url))

	require.NoError(t, store.Delete(key))
	_, err = store.Get(key)
	assert.Error(t, err)

	// delete file yang sudah tidak ada tidak dianggap error
	assert.NoError(t, store.Delete(key))
}

func TestLocalStoreRejectsTraversal(t *testing.T) {
	dir := t.TempDir()
	store := NewLocalStore(dir)

	err := store.Put("../keluar.txt", []byte("x"), "text/plain")
	assert.Error(t, err)

	err = store.Put("/etc/passwd", []byte("x"), "text/plain")
	assert.Error(t, err)

	_, err = store.Get("../../rahasia")
	assert.Error(t, err)

	// pastikan tidak ada file yang bocor keluar BaseDir
	_, statErr := os.Stat(filepath.Join(dir, "..", "keluar.txt"))
	assert.True(t, os.IsNotExist(statErr))
}
