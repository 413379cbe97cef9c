// file: internals/seeds/runner.go
package seeds

import (
	"log"
	"os"

	"gorm.io/gorm"

	catalogSeed "tepian_backend/internals/seeds/catalog"
	userSeed "tepian_backend/internals/seeds/users"
)

// Run menjalankan seluruh seed. Diatur lewat env RUN_SEEDS supaya
// deployment yang datanya sudah hidup tidak ikut menyemai ulang.
func Run(db *gorm.DB) {
	if os.Getenv("RUN_SEEDS") != "true" {
		log.Println("[INFO] RUN_SEEDS bukan 'true', seed dilewati")
		return
	}

	userSeed.SeedUsersFromJSON(db, "internals/seeds/users/data_users.json")
	catalogSeed.SeedCatalogFromJSON(db, "internals/seeds/catalog/data_catalog.json")
}
