package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/nvilela/salesledger/internal/config"
	"github.com/nvilela/salesledger/internal/handler"
	"github.com/nvilela/salesledger/internal/ledger"
	"github.com/nvilela/salesledger/internal/render"
	"github.com/nvilela/salesledger/internal/service"
	"github.com/nvilela/salesledger/internal/store"
)

func main() {
	healthcheck := flag.Bool("healthcheck", false, "Run health check against running server")
	flag.Parse()

	// Handle -healthcheck flag: HTTP GET to localhost:PORT/healthz, exit 0/1.
	if *healthcheck {
		port := os.Getenv("PORT")
		if port == "" {
			port = "8080"
		}
		resp, err := http.Get(fmt.Sprintf("http://localhost:%s/healthz", port))
		if err != nil || resp.StatusCode != http.StatusOK {
			os.Exit(1)
		}
		os.Exit(0)
	}

	// Load configuration.
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// Set up slog logger with configured level.
	var logLevel slog.Level
	switch cfg.LogLevel {
	case "debug":
		logLevel = slog.LevelDebug
	case "warn":
		logLevel = slog.LevelWarn
	case "error":
		logLevel = slog.LevelError
	default:
		logLevel = slog.LevelInfo
	}
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: logLevel,
	}))
	slog.SetDefault(logger)

	// Instantiate stores.
	productStore := store.NewProductStore()
	orderStore := store.NewOrderStore()
	stockStore := store.NewStockStore()

	// Ledger core.
	reconciler := ledger.NewReconciler(productStore, orderStore)

	// Invoice PDF renderer.
	renderer := render.NewPDFRenderer(cfg.InvoiceDir)

	// Services.
	productSvc := service.NewProductService(productStore)
	salesSvc := service.NewSalesService(reconciler, productStore, orderStore, renderer)
	inventorySvc := service.NewInventoryService(stockStore)

	// Optional demo fixtures.
	if cfg.SeedDemoData {
		if err := seedDemoData(productSvc, salesSvc, inventorySvc); err != nil {
			logger.Error("failed to seed demo data", slog.String("error", err.Error()))
			os.Exit(1)
		}
		logger.Info("demo data seeded")
	}

	// Router.
	router := handler.NewRouter(productSvc, salesSvc, inventorySvc, logger)

	// Configure HTTP server.
	addr := fmt.Sprintf(":%d", cfg.Port)
	srv := &http.Server{
		Addr:         addr,
		Handler:      router,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
		IdleTimeout:  cfg.IdleTimeout,
	}

	// Start HTTP server in a goroutine.
	go func() {
		logger.Info("server starting", slog.String("addr", addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("server error", slog.String("error", err.Error()))
			os.Exit(1)
		}
	}()

	// Wait for SIGINT/SIGTERM.
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	sig := <-sigCh
	logger.Info("shutdown signal received", slog.String("signal", sig.String()))

	// Graceful shutdown.
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("server shutdown error", slog.String("error", err.Error()))
	}

	logger.Info("server stopped")
}

// seedDemoData loads a small demo catalog, a few orders, and stock items.
// The third order is completed through the normal path so product counters
// stay consistent with order state.
func seedDemoData(
	productSvc *service.ProductService,
	salesSvc *service.SalesService,
	inventorySvc *service.InventoryService,
) error {
	products := []service.AddProductRequest{
		{ID: "P-1001", Name: "Product A", UnitPrice: 100},
		{ID: "P-1002", Name: "Product B", UnitPrice: 150},
		{ID: "P-1003", Name: "Product C", UnitPrice: 200},
	}
	for _, req := range products {
		if _, err := productSvc.AddProduct(req); err != nil {
			return fmt.Errorf("seed product %s: %w", req.ID, err)
		}
	}

	sales := []service.RecordSaleRequest{
		{Customer: "Mark Spencer", Items: []service.SaleItemInput{
			{ProductID: "P-1001", Quantity: 2},
		}},
		{Customer: "Ella Fitzgerald", Items: []service.SaleItemInput{
			{ProductID: "P-1002", Quantity: 1},
			{ProductID: "P-1003", Quantity: 2},
		}},
		{Customer: "Robert Frost", Items: []service.SaleItemInput{
			{ProductID: "P-1001", Quantity: 1},
		}},
	}
	var lastOrderID string
	for _, req := range sales {
		order, err := salesSvc.RecordSale(req)
		if err != nil {
			return fmt.Errorf("seed sale for %s: %w", req.Customer, err)
		}
		lastOrderID = order.OrderID
	}
	if _, err := salesSvc.CompleteOrder(lastOrderID); err != nil {
		return fmt.Errorf("seed completion of %s: %w", lastOrderID, err)
	}

	stock := []service.StockItemInput{
		{Name: "Product A", Stock: 50, Threshold: 20, Cost: 10},
		{Name: "Product B", Stock: 10, Threshold: 15, Cost: 15},
		{Name: "Another Product", Stock: 30, Threshold: 10, Cost: 5},
	}
	if _, err := inventorySvc.AddItems(stock); err != nil {
		return fmt.Errorf("seed stock items: %w", err)
	}

	return nil
}
