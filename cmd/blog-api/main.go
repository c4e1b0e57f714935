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
	cfg := config.Load(":8080")

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
	roleRepo := repositories.NewGORMRoleRepository(db)
	skillRepo := repositories.NewGORMSkillRepository(db)
	tagRepo := repositories.NewGORMTagRepository(db)
	blogRepo := repositories.NewGORMBlogRepository(db)

	// --- Services ---
	fmtr := services.DefaultFormatter()
	roleService := services.NewRoleService(roleRepo, publisher)
	skillService := services.NewSkillService(skillRepo, publisher)
	tagService := services.NewTagService(tagRepo, fmtr, publisher)
	blogService := services.NewBlogService(blogRepo, userRepo, fmtr, publisher)
	authorService := services.NewAuthorService(userRepo, fmtr, publisher)
	authService := services.NewAuthService(userRepo, services.TokenConfig{
		Secret:     cfg.JWTSecret,
		Issuer:     cfg.JWTIssuer,
		Audience:   cfg.JWTAudience,
		AccessTTL:  cfg.AccessTTL(),
		RefreshTTL: cfg.RefreshTTL(),
	})

	// --- Handlers ---
	roleHandler := handlers.NewRoleHandler(roleService)
	skillHandler := handlers.NewSkillHandler(skillService)
	tagHandler := handlers.NewTagHandler(tagService)
	blogHandler := handlers.NewBlogHandler(blogService)
	authorHandler := handlers.NewAuthorHandler(authorService)

	// --- Fiber App ---
	app := fiber.New()
	app.Use(logger.New())

	// Tokens are issued by the users service; this service only validates
	// them, so every API route sits behind the auth middleware.
	apiV1 := app.Group("/api/v1", middleware.AuthRequired(authService))

	roleHandler.RegisterRoutes(apiV1)
	skillHandler.RegisterRoutes(apiV1)
	tagHandler.RegisterRoutes(apiV1)
	blogHandler.RegisterRoutes(apiV1)
	authorHandler.RegisterRoutes(apiV1)

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
	log.Printf("Starting blog service on port %s", cfg.AppPort)

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
