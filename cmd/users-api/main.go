package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/streadway/amqp"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"blogapp/internal/config"
	"blogapp/internal/handlers"
	"blogapp/internal/middleware"
	"blogapp/internal/models"
	"blogapp/internal/repositories"
	"blogapp/internal/services"
	"blogapp/pkg/events"
)

func main() {
	cfg := config.Load(":8081")

	// --- Database ---
	db, err := gorm.Open(postgres.Open(cfg.DatabaseDSN), &gorm.Config{})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	if err := db.AutoMigrate(
		&models.Role{}, &models.Skill{}, &models.User{}, &models.UserSkill{},
		&models.Tag{}, &models.Blog{}, &models.BlogTag{},
	); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	// --- Event publisher ---
	// The service stays up without a broker; events are skipped until one
	// is available.
	var publisher events.Publisher
	mqClient, err := events.NewClient(events.Config{URL: cfg.RabbitMQURL})
	if err != nil {
		log.Printf("Event broker unavailable, continuing without events: %v", err)
	} else {
		publisher = mqClient
		defer mqClient.Close()
	}

	// --- Repositories ---
	userRepo := repositories.NewGORMUserRepository(db)
	skillRepo := repositories.NewGORMSkillRepository(db)

	seedAdminUser(userRepo, db)

	// --- Services ---
	fmtr := services.DefaultFormatter()
	userService := services.NewUserService(userRepo, skillRepo, fmtr, publisher)
	skillService := services.NewSkillService(skillRepo, publisher)
	authService := services.NewAuthService(userRepo, services.TokenConfig{
		Secret:     cfg.JWTSecret,
		Issuer:     cfg.JWTIssuer,
		Audience:   cfg.JWTAudience,
		AccessTTL:  cfg.AccessTTL(),
		RefreshTTL: cfg.RefreshTTL(),
	})

	// --- Handlers ---
	userHandler := handlers.NewUserHandler(userService)
	skillHandler := handlers.NewSkillHandler(skillService)
	authHandler := handlers.NewAuthHandler(authService)

	// --- Fiber App ---
	app := fiber.New()
	app.Use(logger.New())

	apiV1 := app.Group("/api/v1")

	// Token endpoints stay public; everything else requires a valid token.
	authHandler.RegisterRoutes(apiV1)

	protected := apiV1.Group("", middleware.AuthRequired(authService))
	userHandler.RegisterRoutes(protected)
	skillHandler.RegisterRoutes(protected)

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusOK).JSON(fiber.Map{
			"status": "healthy",
			"time":   time.Now().Format(time.RFC3339),
		})
	})

	// --- Event consumer ---
	if mqClient != nil {
		go func() {
			log.Println("Starting event consumer...")
			messageHandler := func(msg amqp.Delivery) error {
				log.Printf("Received event (tag: %d): %s", msg.DeliveryTag, string(msg.Body))
				return nil
			}
			if consumerErr := mqClient.Consume(messageHandler); consumerErr != nil {
				log.Printf("Failed to start event consumer: %v", consumerErr)
			}
		}()
	}

	// --- Start HTTP Server ---
	log.Printf("Starting users service on port %s", cfg.AppPort)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		if err := app.Listen(cfg.AppPort); err != nil {
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

// seedAdminUser creates a default administrator on an empty database so the
// token endpoint can be used to bootstrap further accounts.
func seedAdminUser(repo repositories.UserRepository, db *gorm.DB) {
	var count int64
	if err := db.Model(&models.User{}).Count(&count).Error; err != nil {
		log.Printf("Error checking for existing users: %v", err)
		return
	}
	if count > 0 {
		return
	}

	role := models.Role{Name: "Administrator"}
	if err := db.Create(&role).Error; err != nil {
		log.Printf("Error seeding administrator role: %v", err)
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte("ChangeMe123!"), bcrypt.DefaultCost)
	if err != nil {
		log.Printf("Error hashing seed password: %v", err)
		return
	}
	admin := models.User{
		Name:             "System",
		Surname:          "Administrator",
		UserName:         "admin",
		Password:         string(hash),
		IsActive:         true,
		RegistrationDate: time.Now().UTC(),
		RoleID:           role.ID,
	}
	if err := repo.Create(&admin, nil); err != nil {
		log.Printf("Error seeding administrator user: %v", err)
		return
	}
	log.Printf("Seeded administrator user (ID: %d)", admin.ID)
}
