package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"

	"go.uber.org/zap"

	"maintenance-console/internal/repositories"
	"maintenance-console/pkg/apiclient"
	"maintenance-console/pkg/config"
	applogger "maintenance-console/pkg/logger"
	"maintenance-console/seeders"
)

func main() {
	runDirectories := flag.Bool("directories", false, "Seed technicians, equipments and items")
	runOrders := flag.Bool("orders", false, "Seed demo orders with lines (needs -directories in the same run)")
	runAll := flag.Bool("all", false, "Run every seeder (same as -directories -orders)")
	flag.Parse()

	if !*runDirectories && !*runOrders && !*runAll {
		log.Println("No seeder selected.")
		log.Println("")
		log.Println("Flags:")
		flag.PrintDefaults()
		log.Println("")
		log.Println("Examples:")
		log.Println("  go run ./seeders/cmd/seed -directories")
		log.Println("  go run ./seeders/cmd/seed -all")
		return
	}

	cfg, err := config.New()
	if err != nil {
		log.Fatalf("config: %v", err)
	}
	logger := applogger.NewLogger(cfg.LogLevel)
	defer logger.Sync() //nolint:errcheck

	client := apiclient.New(cfg.Backend.URL, cfg.Backend.Timeout, logger.Named("backend"))
	s := seeders.New(
		repositories.NewTechnicianRepository(client, logger),
		repositories.NewEquipmentRepository(client, logger),
		repositories.NewItemRepository(client, logger),
		repositories.NewOrderRepository(client, logger),
		repositories.NewOrderLineRepository(client, cfg.Listing.PageSize, logger),
		logger,
	)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	logger.Info("seeding backend", zap.String("url", client.BaseURL()))
	if *runAll || *runDirectories {
		if err := s.SeedDirectories(ctx); err != nil {
			logger.Fatal("directories seeding failed", zap.Error(err))
		}
	}
	if *runAll || *runOrders {
		if err := s.SeedOrders(ctx); err != nil {
			logger.Fatal("orders seeding failed", zap.Error(err))
		}
	}
	logger.Info("seeding finished")
}
