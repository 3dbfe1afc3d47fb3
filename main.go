package main

import (
	"context"
	"errors"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/bytedance/sonic"
	"github.com/gofiber/fiber/v2"
	"github.com/robfig/cron/v3"

	"koperasi_backend/internals/configs"
	database "koperasi_backend/internals/databases"
	adminAuthRepo "koperasi_backend/internals/features/users/admin_auth/repository"
	adminAuthService "koperasi_backend/internals/features/users/admin_auth/service"
	"koperasi_backend/internals/helpers/events"
	"koperasi_backend/internals/helpers/storage"
	middlewares "koperasi_backend/internals/middlewares"
	authMiddleware "koperasi_backend/internals/middlewares/auth"
	routes "koperasi_backend/internals/route"
	"koperasi_backend/internals/route/deps"
	"koperasi_backend/internals/seeds"
)

func main() {
	configs.LoadEnv()

	cfg := fiber.Config{
		// 🚀 JSON super cepat
		JSONEncoder:           sonic.Marshal,
		JSONDecoder:           sonic.Unmarshal,
		DisableStartupMessage: true,
		// laporan keuangan sampai 10MB + overhead multipart
		BodyLimit: configs.GetEnvInt("BODY_LIMIT_MB", 12) * 1024 * 1024,
	}
	// isi dengan CIDR Cloudflare / load balancer, mis. TRUSTED_PROXIES=173.245.48.0/20,10.0.0.0/8
	middlewares.TrustProxies(&cfg, configs.GetEnvList("TRUSTED_PROXIES"))
	app := fiber.New(cfg)

	middlewares.SetupMiddlewares(app)

	// 🔌 DB connect + pool + warm-up
	database.ConnectDB()
	database.TunePool()
	database.WarmUpQueries()
	if err := database.Migrate(database.DB); err != nil {
		log.Fatalf("[ERROR] migrate: %v", err)
	}
	if configs.GetEnvBool("DB_SEED", false) {
		seeds.RunAllSeeds(database.DB, configs.GetEnv("SEED_DIR", "internals/seeds"))
	}

	// 🗂 Blob storage (opsional)
	var (
		blob     storage.BlobService
		reaper   *cron.Cron
		blobSvc  *storage.Service
		errStore error
	)
	blobSvc, errStore = storage.NewBlobServiceFromEnv()
	switch {
	case errors.Is(errStore, storage.ErrStorageDisabled):
		log.Println("[WARN] STORAGE_DRIVER=none, upload file dinonaktifkan")
	case errStore != nil:
		// kredensial driver salah/kosong: server tetap jalan, upload jawab 503
		log.Printf("[WARN] init storage gagal, upload file dinonaktifkan: %v", errStore)
	default:
		// interface tetap nil bila storage mati, jangan isi dengan *Service nil
		blob = blobSvc
		reaper = storage.StartOrphanReaperCron(blobSvc, database.CollectBlobReferences(database.DB))
	}

	// 📣 change events
	publisher := events.NewPublisherFromEnv()

	// 🔐 admin credential + guard
	seedCtx, seedCancel := context.WithTimeout(context.Background(), 10*time.Second)
	passwords := adminAuthService.NewPasswordService(adminAuthRepo.NewAdminCredentialRepository(database.DB))
	if err := passwords.EnsureSeeded(seedCtx, configs.AdminPassword); err != nil {
		log.Printf("[WARN] seed admin credential: %v", err)
	}
	seedCancel()

	guard := authMiddleware.AdminGuard(authMiddleware.AdminGuardOpts{
		Secret:   configs.JWTSecret,
		Required: configs.AdminAuthRequired,
	})

	// ✅ Routes
	routes.SetupRoutes(app, deps.Deps{
		DB:     database.DB,
		Blob:   blob,
		Events: publisher,
		Guard:  guard,
	})

	// 🔒 Keep-Alive & timeout koneksi server
	app.Server().ReadTimeout = 30 * time.Second
	app.Server().WriteTimeout = 60 * time.Second
	app.Server().IdleTimeout = 90 * time.Second

	port := configs.GetEnv("PORT", "3000")

	// Start server non-blocking
	go func() {
		log.Printf("✅ Listening on :%s", port)
		if err := app.Listen("0.0.0.0:" + port); err != nil {
			log.Fatalf("server error: %v", err)
		}
	}()

	// graceful shutdown + tutup cron, producer, pool DB
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("[INFO] shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	_ = app.ShutdownWithContext(ctx)

	if reaper != nil {
		<-reaper.Stop().Done()
	}
	if err := publisher.Close(); err != nil {
		log.Printf("[WARN] close publisher: %v", err)
	}
	database.Close()
}
