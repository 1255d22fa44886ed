package main

import (
	"log"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/streadway/amqp"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"kudos/internal/handlers"
	"kudos/internal/middleware"
	"kudos/internal/models"
	"kudos/internal/repositories"
	"kudos/internal/services"
	"kudos/pkg/rabbitmq"

	"github.com/spf13/viper"
)

func main() {
	// --- Configuration ---
	viper.SetDefault("APP_PORT", ":8080")
	viper.SetDefault("DATABASE_DSN", "kudos.db")
	viper.SetDefault("JWT_SECRET", "dev_secret_change_me")
	viper.SetDefault("RABBITMQ_URL", "")
	viper.SetDefault("KUDOS_BUCKET_NAME", "kudos-avatars")
	viper.SetDefault("KUDOS_BUCKET_REGION", "us-east-1")
	viper.SetDefault("KUDOS_ACCESS_KEY_ID", "")
	viper.SetDefault("KUDOS_SECRET_ACCESS_KEY", "")
	viper.SetDefault("KUDOS_S3_ENDPOINT", "")
	viper.AutomaticEnv() // Load environment variables

	appPort := viper.GetString("APP_PORT")

	// --- Database ---
	db, err := openDatabase(viper.GetString("DATABASE_DSN"))
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	if err := db.AutoMigrate(&models.User{}, &models.Profile{}, &models.Kudo{}, &models.KudoStyle{}); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	// --- Object storage ---
	storage, err := services.NewStorageService(services.StorageConfig{
		Bucket:          viper.GetString("KUDOS_BUCKET_NAME"),
		Region:          viper.GetString("KUDOS_BUCKET_REGION"),
		AccessKeyID:     viper.GetString("KUDOS_ACCESS_KEY_ID"),
		SecretAccessKey: viper.GetString("KUDOS_SECRET_ACCESS_KEY"),
		Endpoint:        viper.GetString("KUDOS_S3_ENDPOINT"),
	})
	if err != nil {
		log.Fatalf("Failed to initialize object storage: %v", err)
	}

	// --- Event publishing (optional) ---
	var publisher services.EventPublisher
	if mqURL := viper.GetString("RABBITMQ_URL"); mqURL != "" {
		mqClient, err := rabbitmq.NewClient(rabbitmq.Config{URL: mqURL})
		if err != nil {
			log.Fatalf("Failed to initialize RabbitMQ client: %v", err)
		}
		defer mqClient.Close()
		publisher = mqClient

		go func() {
			log.Println("Starting RabbitMQ consumer for kudo events...")
			messageHandler := func(msg amqp.Delivery) error {
				log.Printf("Received kudo event (Tag: %d): %s", msg.DeliveryTag, string(msg.Body))
				return nil
			}
			if consumerErr := mqClient.ConsumeKudoEvents(messageHandler); consumerErr != nil {
				log.Printf("Failed to start RabbitMQ consumer: %v", consumerErr)
			}
		}()
	} else {
		log.Println("RABBITMQ_URL not set; kudo event publishing disabled")
	}

	app := buildApp(db, storage, publisher, viper.GetString("JWT_SECRET"))

	// --- Start HTTP Server ---
	log.Printf("Starting server on port %s", appPort)

	// Graceful shutdown handling
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		if err := app.Listen(appPort); err != nil {
			log.Fatalf("Server failed to start: %v", err)
		}
	}()

	<-quit
	log.Println("Shutting down server...")

	if err := app.Shutdown(); err != nil {
		log.Printf("Error during Fiber shutdown: %v", err)
	}

	log.Println("Server gracefully stopped")
}

// openDatabase connects with the driver matching the DSN: PostgreSQL DSNs are
// recognized by their scheme or key-value form, anything else is treated as a
// SQLite path.
func openDatabase(dsn string) (*gorm.DB, error) {
	if strings.HasPrefix(dsn, "postgres://") || strings.Contains(dsn, "host=") {
		return gorm.Open(postgres.Open(dsn), &gorm.Config{})
	}
	return gorm.Open(sqlite.Open(dsn), &gorm.Config{})
}

// buildApp wires repositories, services, and handlers onto a Fiber app.
func buildApp(db *gorm.DB, storage handlers.AvatarUploader, publisher services.EventPublisher, jwtSecret string) *fiber.App {
	// --- Repositories ---
	userRepo := repositories.NewGORMUserRepository(db)
	kudoRepo := repositories.NewGORMKudoRepository(db)

	// --- Services ---
	authService := services.NewAuthService(userRepo, jwtSecret)
	userService := services.NewUserService(userRepo)
	kudoService := services.NewKudoService(kudoRepo, publisher)

	// --- Handlers ---
	authHandler := handlers.NewAuthHandler(authService)
	homeHandler := handlers.NewHomeHandler(userService, kudoService, authService)
	kudoHandler := handlers.NewKudoHandler(userService, kudoService, authService)
	profileHandler := handlers.NewProfileHandler(userService, authService)
	avatarHandler := handlers.NewAvatarHandler(storage, userService)

	app := fiber.New()

	// --- Middleware ---
	app.Use(logger.New()) // Request logger

	// --- Public routes ---
	// Registered before the protected group so they bypass the session check.
	authHandler.RegisterRoutes(app)

	// Login prompt; the auth middleware redirects here.
	app.Get("/login", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"message": "Please log in",
		})
	})

	// --- Health Check Endpoint ---
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusOK).JSON(fiber.Map{
			"status": "healthy",
			"time":   time.Now().Format(time.RFC3339),
		})
	})

	// --- Protected routes (require a valid session cookie) ---
	protected := app.Group("", middleware.AuthRequired(authService))
	homeHandler.RegisterRoutes(protected)
	kudoHandler.RegisterRoutes(protected)
	profileHandler.RegisterRoutes(protected)
	avatarHandler.RegisterRoutes(protected)

	return app
}
