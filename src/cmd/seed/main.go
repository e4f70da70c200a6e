// Command seed creates the catalog tables in MySQL and fills them with the
// built-in catalog. Running it twice updates rows in place.
package main

import (
	"fmt"
	"kerjabantu-service/src/internal/config"
	"kerjabantu-service/src/internal/fixture"
	"kerjabantu-service/src/internal/repository"
	"kerjabantu-service/src/pkg/databases/mysql"
	"kerjabantu-service/src/pkg/log"
	"os"
	"time"

	gormMysql "gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/gorm/logger"
)

func main() {
	viperConfig := config.NewViper()
	log.InitLogger(viperConfig)
	appLogger := log.GetLogger()

	db, err := gorm.Open(gormMysql.Open(mysql.DSN(viperConfig)), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		appLogger.Error("seed", fmt.Sprintf("Failed to connect to database: %v", err), "main", "")
		os.Exit(1)
	}

	start := time.Now()
	if err := Seed(db); err != nil {
		appLogger.Error("seed", err.Error(), "main", "")
		os.Exit(1)
	}
	appLogger.Info("seed", fmt.Sprintf("catalog seeded in %s", time.Since(start)), "main", "")
}

// Seed migrates the catalog tables and upserts the fixture rows in one
// transaction.
func Seed(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&repository.UserRow{},
		&repository.KerjaMateRow{},
		&repository.ReviewRow{},
		&repository.JobRow{},
		&repository.CategoryRow{},
	); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	rows := repository.RowsFromCatalog(fixture.Catalog())
	return db.Transaction(func(tx *gorm.DB) error {
		upsert := tx.Clauses(clause.OnConflict{UpdateAll: true})
		for name, table := range map[string]interface{}{
			"users":              rows.Users,
			"kerja_mates":        rows.KerjaMates,
			"kerja_mate_reviews": rows.Reviews,
			"jobs":               rows.Jobs,
			"job_categories":     rows.Categories,
		} {
			if err := upsert.Create(table).Error; err != nil {
				return fmt.Errorf("seed %s: %w", name, err)
			}
		}
		return nil
	})
}
