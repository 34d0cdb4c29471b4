package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"

	"github.com/ikaze-hr/leave-backend-go/internal/config"
	"github.com/ikaze-hr/leave-backend-go/internal/fixtures"
	"github.com/ikaze-hr/leave-backend-go/internal/pkg/database"
	"github.com/ikaze-hr/leave-backend-go/internal/repository/postgresql"
)

// Seeds a fresh database with the default leave types and the fixed-date
// public holidays for the current and next year. Safe to rerun: existing
// data is left untouched.
func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		os.Exit(1)
	}

	db, err := database.NewPostgreSQLDB(cfg.DatabaseURL())
	if err != nil {
		fmt.Println("Error connecting to database:", err)
		os.Exit(1)
	}
	defer db.Close()

	ctx := context.Background()

	typeRepo := postgresql.NewLeaveTypeRepository(db)
	holidayRepo := postgresql.NewHolidayRepository(db)

	existing, err := typeRepo.List(ctx)
	if err != nil {
		fmt.Println("Error listing leave types:", err)
		os.Exit(1)
	}
	if len(existing) == 0 {
		for _, lt := range fixtures.GetDefaultLeaveTypes() {
			lt.ID = uuid.New().String()
			if _, err := typeRepo.Create(ctx, lt); err != nil {
				fmt.Println("Error creating leave type:", err)
				os.Exit(1)
			}
			fmt.Println("Seeded leave type:", lt.Name)
		}
	} else {
		fmt.Println("Leave types already present, skipping")
	}

	region := cfg.App.HolidayRegion
	thisYear := time.Now().UTC().Year()
	for _, year := range []int{thisYear, thisYear + 1} {
		holidays, err := holidayRepo.ListByYearAndRegion(ctx, year, region)
		if err != nil {
			fmt.Println("Error listing holidays:", err)
			os.Exit(1)
		}
		if len(holidays) > 0 {
			fmt.Printf("Holidays for %s/%d already present, skipping\n", region, year)
			continue
		}
		for _, h := range fixtures.GetDefaultHolidays(region, year) {
			h.ID = uuid.New().String()
			if _, err := holidayRepo.Create(ctx, h); err != nil {
				fmt.Println("Error creating holiday:", err)
				os.Exit(1)
			}
		}
		fmt.Printf("Seeded holidays for %s/%d\n", region, year)
	}
}
