package main

import (
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	jwtware "github.com/gofiber/jwt/v2"
	"github.com/joho/godotenv"

	"github.com/ir7shop/football-shop-backend/internal/category"
	"github.com/ir7shop/football-shop-backend/internal/config"
	"github.com/ir7shop/football-shop-backend/internal/jsonstore"
	"github.com/ir7shop/football-shop-backend/internal/order"
	"github.com/ir7shop/football-shop-backend/internal/product"
	"github.com/ir7shop/football-shop-backend/internal/user"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load configuration", "error", err)
		os.Exit(1)
	}

	logger := newLogger(cfg.LogLevel)
	slog.SetDefault(logger)

	// Flat-file stores, one JSON array per store. Seeded on first boot.
	productRepo, err := product.NewJSONRepository(
		jsonstore.NewFile(filepath.Join(cfg.DataDir, "products.json")), product.DefaultCatalog())
	if err != nil {
		logger.Error("failed to open product store", "error", err)
		os.Exit(1)
	}
	categoryRepo, err := category.NewJSONRepository(
		jsonstore.NewFile(filepath.Join(cfg.DataDir, "categories.json")), category.DefaultCategories())
	if err != nil {
		logger.Error("failed to open category store", "error", err)
		os.Exit(1)
	}
	userRepo, err := user.NewJSONRepository(
		jsonstore.NewFile(filepath.Join(cfg.DataDir, "users.json")))
	if err != nil {
		logger.Error("failed to open user store", "error", err)
		os.Exit(1)
	}
	orderRepo, err := order.NewJSONRepository(
		jsonstore.NewFile(filepath.Join(cfg.DataDir, "orders.json")))
	if err != nil {
		logger.Error("failed to open order store", "error", err)
		os.Exit(1)
	}

	productService := product.NewService(productRepo)
	categoryService := category.NewService(categoryRepo, productService)
	userService := user.NewService(userRepo, cfg.AdminEmails)
	orderService := order.NewService(orderRepo, userService, order.NewLogMailer(logger), cfg.Shipping, logger)

	productHandler := product.NewHandler(productService)
	categoryHandler := category.NewHandler(categoryService)
	userHandler := user.NewHandler(userService, cfg.JWTSecret)
	orderHandler := order.NewHandler(orderService)

	app := fiber.New()
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,HEAD,PUT,DELETE,PATCH",
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
	}))
	app.Use(requestLogger(logger))

	// Storefront assets.
	app.Static("/", cfg.PublicDir)
	app.Static("/images", filepath.Join(cfg.PublicDir, "images"))

	productHandler.RegisterPublicRoutes(app)
	categoryHandler.RegisterPublicRoutes(app)
	userHandler.RegisterPublicRoutes(app)
	orderHandler.RegisterPublicRoutes(app)

	// The profile endpoint needs a valid token but no particular role.
	app.Use("/api/users/me", jwtware.New(jwtware.Config{
		SigningKey: []byte(cfg.JWTSecret),
	}))
	userHandler.RegisterProtectedRoutes(app)

	// Admin endpoints require a valid token carrying the admin role. The
	// role check is server-side; client-side checks are UX only.
	app.Use("/api/admin", jwtware.New(jwtware.Config{
		SigningKey: []byte(cfg.JWTSecret),
	}))
	admin := app.Group("/api/admin", user.RequireAdmin)
	productHandler.RegisterAdminRoutes(admin)
	categoryHandler.RegisterAdminRoutes(admin)
	userHandler.RegisterAdminRoutes(admin)
	orderHandler.RegisterAdminRoutes(admin)

	logger.Info("IR7 football shop server starting",
		"addr", cfg.Addr,
		"products", len(productService.List("all")),
		"dataDir", cfg.DataDir,
	)
	if err := app.Listen(cfg.Addr); err != nil {
		logger.Error("server stopped", "error", err)
		os.Exit(1)
	}
}

func newLogger(level string) *slog.Logger {
	var lvl slog.Level
	switch level {
	case "debug":
		lvl = slog.LevelDebug
	case "warn":
		lvl = slog.LevelWarn
	case "error":
		lvl = slog.LevelError
	default:
		lvl = slog.LevelInfo
	}
	return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: lvl}))
}

func requestLogger(logger *slog.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		err := c.Next()
		logger.Info("request",
			"method", c.Method(),
			"path", c.OriginalURL(),
			"status", c.Response().StatusCode(),
			"duration", time.Since(start),
		)
		return err
	}
}
