package routes

import (
	"log"
	"os"
	"time"

	"github.com/gofiber/fiber/v2"

	"koperasi_backend/internals/configs"
	database "koperasi_backend/internals/databases"
)

func BaseRoutes(app *fiber.App) {
	app.Get("/", func(c *fiber.Ctx) error {
		return c.SendString("Koperasi backend running 🚀")
	})

	app.Get("/health", func(c *fiber.Ctx) error {
		dbStatus := "Connected"
		serverStatus := "OK"
		httpStatus := fiber.StatusOK

		if err := database.Ping(); err != nil {
			dbStatus = "Database connection error"
			serverStatus = "DOWN"
			httpStatus = fiber.StatusServiceUnavailable
		}

		uptime := time.Since(startTime).Seconds()

		return c.Status(httpStatus).JSON(fiber.Map{
			"status":         serverStatus,
			"database":       dbStatus,
			"server_time":    time.Now().Format(time.RFC3339),
			"uptime_seconds": int(uptime),
			"environment":    configs.GetEnv("APP_ENV", "development"),
		})
	})
}

// mountStatic menyajikan build frontend dari PUBLIC_DIR bila foldernya ada.
func mountStatic(app *fiber.App) {
	dir := configs.PublicDir
	if dir == "" {
		return
	}
	if st, err := os.Stat(dir); err != nil || !st.IsDir() {
		log.Printf("[WARN] PUBLIC_DIR %q tidak ditemukan, static dilewati", dir)
		return
	}
	app.Static("/", dir, fiber.Static{
		Compress: true,
		Index:    "index.html",
		MaxAge:   3600,
	})
	log.Printf("[INFO] static files dari %s", dir)
}
