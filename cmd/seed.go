package cmd

import (
	"log"

	employeeDatamodel "github.com/frahmantamala/employee-records/internal/core/datamodel/employee"
	userDatamodel "github.com/frahmantamala/employee-records/internal/core/datamodel/user"
	"github.com/frahmantamala/employee-records/internal/seeder"
	"github.com/frahmantamala/employee-records/pkg/logger"
	"github.com/spf13/cobra"
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Seed the database with the bootstrap admin user and sample employees",
	Long:  `Idempotent seeding: the admin account and sample employees are only created when absent.`,
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := loadConfig(".")
		if err != nil {
			log.Fatalf("failed to load config: %v", err)
		}

		db, err := openDB(cfg.Database)
		if err != nil {
			log.Fatalf("failed to init db: %v", err)
		}

		if err := db.AutoMigrate(&userDatamodel.User{}, &employeeDatamodel.Employee{}); err != nil {
			log.Fatalf("failed to migrate schema: %v", err)
		}

		if err := seeder.New(db, cfg.Seed, cfg.Security.BCryptCost, logger.L()).Run(); err != nil {
			log.Fatalf("failed to seed: %v", err)
		}
	},
}
