package main

import (
	"context"
	"database/sql"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	_ "github.com/go-sql-driver/mysql"
	"github.com/redis/go-redis/v9"
	"google.golang.org/grpc"

	"github.com/scanchain/scanchain/internal/adapter/blob"
	"github.com/scanchain/scanchain/internal/adapter/handler"
	"github.com/scanchain/scanchain/internal/adapter/handler/pb"
	"github.com/scanchain/scanchain/internal/adapter/storage"
	"github.com/scanchain/scanchain/internal/config"
	"github.com/scanchain/scanchain/internal/core/domain"
	"github.com/scanchain/scanchain/internal/core/service"
	"github.com/scanchain/scanchain/internal/port"
)

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	cfg := config.Load()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// MySQL: authoritative ledger and audit trail
	db, err := sql.Open("mysql", cfg.MySQLDSN)
	if err != nil {
		logger.Error("open mysql", "error", err)
		os.Exit(1)
	}
	db.SetMaxOpenConns(50)
	db.SetMaxIdleConns(25)
	db.SetConnMaxLifetime(5 * time.Minute)

	if err := db.PingContext(ctx); err != nil {
		logger.Error("ping mysql", "error", err)
		os.Exit(1)
	}
	logger.Info("connected to mysql")

	mysqlAdapter := storage.NewMySQLAdapter(db)

	// Redis: optional record cache and write claims
	var cache port.CacheRepository
	var rdb *redis.Client
	if cfg.RedisAddr != "" {
		rdb = redis.NewClient(&redis.Options{Addr: cfg.RedisAddr, PoolSize: 100})
		if err := rdb.Ping(ctx).Err(); err != nil {
			logger.Error("ping redis", "error", err)
			os.Exit(1)
		}
		cache = storage.NewRedisAdapter(rdb)
		logger.Info("connected to redis")
	} else {
		logger.Info("redis disabled, reads go straight to the ledger")
	}

	blobs, err := blob.NewFSStore(cfg.BlobDir, cfg.BlobBaseURL)
	if err != nil {
		logger.Error("init blob store", "error", err)
		os.Exit(1)
	}

	registry := service.NewRegistryService(mysqlAdapter, blobs, mysqlAdapter, cache, cfg.RegistryLocator, cfg.QueueSize)

	// Audit workers drain committed write events into MySQL.
	var wg sync.WaitGroup
	for i := 0; i < cfg.WorkerCount; i++ {
		wg.Add(1)
		go func(id int) {
			defer wg.Done()
			workerLoop(id, registry.EventQueue(), mysqlAdapter, logger)
		}(i)
	}
	logger.Info("started audit workers", "count", cfg.WorkerCount)

	// gRPC server
	grpcServer := grpc.NewServer()
	pb.RegisterRegistryServiceServer(grpcServer, handler.NewGRPCHandler(registry))

	lis, err := net.Listen("tcp", cfg.GRPCAddr)
	if err != nil {
		logger.Error("grpc listen", "error", err)
		os.Exit(1)
	}
	go func() {
		logger.Info("grpc server listening", "addr", cfg.GRPCAddr)
		if err := grpcServer.Serve(lis); err != nil {
			logger.Error("grpc server", "error", err)
		}
	}()

	// HTTP server
	httpHandler := handler.NewHTTPHandler(registry, cfg.MaxUploadBytes)
	mux := http.NewServeMux()
	mux.HandleFunc("GET /health", httpHandler.HealthCheck)
	mux.HandleFunc("POST /api/register", httpHandler.Register)
	mux.HandleFunc("POST /api/verify", httpHandler.Verify)
	mux.HandleFunc("POST /api/scan", httpHandler.Scan)
	mux.HandleFunc("GET /api/products/{id}", httpHandler.Lookup)
	mux.HandleFunc("GET /api/products/{id}/payload", httpHandler.Payload)
	mux.HandleFunc("GET /api/products/{id}/scans", httpHandler.Scans)
	mux.Handle("GET /blobs/", http.StripPrefix("/blobs/", http.FileServer(http.Dir(cfg.BlobDir))))

	httpServer := &http.Server{
		Addr:    cfg.HTTPAddr,
		Handler: mux,
	}
	go func() {
		logger.Info("http server listening", "addr", cfg.HTTPAddr)
		if err := httpServer.ListenAndServe(); err != http.ErrServerClosed {
			logger.Error("http server", "error", err)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer shutdownCancel()
	httpServer.Shutdown(shutdownCtx)
	logger.Info("http server stopped")

	grpcServer.GracefulStop()
	logger.Info("grpc server stopped")

	registry.Close()
	wg.Wait()
	logger.Info("audit workers stopped")

	if rdb != nil {
		rdb.Close()
	}
	db.Close()
	logger.Info("connections closed")
}

// workerLoop persists write events. A lost audit row never fails the
// write it describes; it is logged and the loop moves on.
func workerLoop(id int, queue <-chan domain.Event, audit port.AuditRepository, logger *slog.Logger) {
	for ev := range queue {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)

		if err := audit.RecordEvent(ctx, ev); err != nil {
			logger.Error("record event failed",
				"worker", id, "type", string(ev.Type), "productId", ev.ProductID, "error", err)
		} else {
			logger.Info("event recorded",
				"worker", id, "type", string(ev.Type), "productId", ev.ProductID, "owner", string(ev.Owner))
		}

		cancel()
	}
}
