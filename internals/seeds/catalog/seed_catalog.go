// file: internals/seeds/catalog/seed_catalog.go
package catalog

import (
	"encoding/json"
	"log"
	"os"

	"gorm.io/gorm"

	"tepian_backend/internals/features/catalog/model"
)

type ParameterSeed struct {
	Name   string  `json:"name"`
	Acuan  *string `json:"acuan"`
	Harga  float64 `json:"harga"`
	Satuan *string `json:"satuan"`
}

type JenisPengujianSeed struct {
	Name       string          `json:"name"`
	Parameters []ParameterSeed `json:"parameters"`
}

type ClusterSeed struct {
	Name           string               `json:"name"`
	Description    *string              `json:"description"`
	JenisPengujian []JenisPengujianSeed `json:"jenis_pengujian"`
}

type PegawaiSeed struct {
	Nama    string  `json:"nama"`
	Jabatan *string `json:"jabatan"`
}

type PeralatanSeed struct {
	Name         string  `json:"name"`
	SerialNumber *string `json:"serial_number"`
}

type CatalogSeed struct {
	Clusters  []ClusterSeed   `json:"clusters"`
	Pegawai   []PegawaiSeed   `json:"pegawai"`
	Peralatan []PeralatanSeed `json:"peralatan"`
}

// SeedCatalogFromJSON idempoten: entitas dicocokkan berdasarkan nama,
// yang sudah ada dilewati tanpa diubah.
func SeedCatalogFromJSON(db *gorm.DB, filePath string) {
	log.Println("📥 Membaca file katalog:", filePath)

	file, err := os.ReadFile(filePath)
	if err != nil {
		log.Printf("❌ Gagal membaca file JSON: %v", err)
		return
	}

	var seed CatalogSeed
	if err := json.Unmarshal(file, &seed); err != nil {
		log.Printf("❌ Gagal decode JSON: %v", err)
		return
	}

	for _, cs := range seed.Clusters {
		var cluster model.Cluster
		err := db.Where("cluster_name = ?", cs.Name).First(&cluster).Error
		if err != nil {
			cluster = model.Cluster{
				ClusterName:        cs.Name,
				ClusterDescription: cs.Description,
			}
			if err := db.Create(&cluster).Error; err != nil {
				log.Printf("❌ Gagal insert cluster '%s': %v", cs.Name, err)
				continue
			}
			log.Printf("✅ Cluster '%s' dibuat", cs.Name)
		}

		for _, js := range cs.JenisPengujian {
			var jenis model.JenisPengujian
			err := db.Where("jenis_pengujian_name = ? AND jenis_pengujian_cluster_id = ?",
				js.Name, cluster.ClusterID).First(&jenis).Error
			if err != nil {
				jenis = model.JenisPengujian{
					JenisPengujianName:      js.Name,
					JenisPengujianClusterID: cluster.ClusterID,
				}
				if err := db.Create(&jenis).Error; err != nil {
					log.Printf("❌ Gagal insert jenis pengujian '%s': %v", js.Name, err)
					continue
				}
			}

			for _, ps := range js.Parameters {
				var param model.Parameter
				err := db.Where("parameter_name = ? AND parameter_jenis_pengujian_id = ?",
					ps.Name, jenis.JenisPengujianID).First(&param).Error
				if err == nil {
					continue
				}
				param = model.Parameter{
					ParameterName:             ps.Name,
					ParameterAcuan:            ps.Acuan,
					ParameterHarga:            ps.Harga,
					ParameterSatuan:           ps.Satuan,
					ParameterJenisPengujianID: jenis.JenisPengujianID,
				}
				if err := db.Create(&param).Error; err != nil {
					log.Printf("❌ Gagal insert parameter '%s': %v", ps.Name, err)
				}
			}
		}
	}

	for _, pg := range seed.Pegawai {
		var existing model.Pegawai
		if err := db.Where("pegawai_nama = ?", pg.Nama).First(&existing).Error; err == nil {
			continue
		}
		p := model.Pegawai{PegawaiNama: pg.Nama, PegawaiJabatan: pg.Jabatan}
		if err := db.Create(&p).Error; err != nil {
			log.Printf("❌ Gagal insert pegawai '%s': %v", pg.Nama, err)
		}
	}

	for _, pr := range seed.Peralatan {
		var existing model.Peralatan
		if err := db.Where("peralatan_name = ?", pr.Name).First(&existing).Error; err == nil {
			continue
		}
		p := model.Peralatan{PeralatanName: pr.Name, PeralatanSerialNumber: pr.SerialNumber}
		if err := db.Create(&p).Error; err != nil {
			log.Printf("❌ Gagal insert peralatan '%s': %v", pr.Name, err)
		}
	}
}
