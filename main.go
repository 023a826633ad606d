package main

import (
	"log"
	"os"
	"strconv"
	"time"

	"dental-forms-backend/controllers"
	"dental-forms-backend/database"
	"dental-forms-backend/middlewares"
	"dental-forms-backend/routes"
	"dental-forms-backend/services"
	"dental-forms-backend/storage"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/limiter"
)

// envInt reads an int env var with a default fallback.
func envInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}

func main() {
	// ---- Database
	database.Connect()
	database.AutoMigrate()

	// ---- Upload directories (CVs land under uploads/cv)
	if err := storage.EnsureUploadDirs(); err != nil {
		log.Fatal(err)
	}

	// ---- Limits (configurable via env)
	// Body limit must stay above the 5 MiB CV cap so oversized uploads get
	// our 400 instead of Fiber's 413.
	bodyLimitBytes := envInt("BODY_LIMIT_BYTES", 0)
	if bodyLimitBytes <= 0 {
		bodyLimitBytes = envInt("BODY_LIMIT_MB", 8) * 1024 * 1024
	}

	// ---- Fiber app with global error handler + body limit
	app := fiber.New(fiber.Config{
		ErrorHandler: middlewares.ErrorHandler,
		BodyLimit:    bodyLimitBytes,
	})

	// ---- CORS (credentials needed for the admin session cookie)
	allowedOrigins := os.Getenv("ALLOWED_ORIGINS")
	if allowedOrigins == "" {
		allowedOrigins = "*"
	}
	app.Use(cors.New(cors.Config{
		AllowOrigins:     allowedOrigins,
		AllowCredentials: allowedOrigins != "*",
		AllowHeaders:     "Origin, Content-Type, Accept, Authorization, X-Requested-With",
	}))

	// ---- Global rate limiter (tune via env)
	rlMax := envInt("RATE_LIMIT_MAX", 60)
	rlWindow := time.Duration(envInt("RATE_LIMIT_WINDOW_SECONDS", 60)) * time.Second
	app.Use(limiter.New(limiter.Config{
		Max:        rlMax,
		Expiration: rlWindow,
	}))

	// ---- Static uploads (stored CVs)
	app.Static("/uploads", "./uploads")

	// ---- Services + routes
	controllers.Init(database.DB, services.NewNotifierFromEnv())
	routes.Register(app)

	// ---- Start
	port := os.Getenv("PORT")
	if port == "" {
		port = "3000"
	}
	log.Println("API server starting on port", port)
	if err := app.Listen(":" + port); err != nil {
		panic(err)
	}
}
