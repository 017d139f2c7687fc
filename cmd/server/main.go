package main

import (
	"context"
	"os"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/Rajan167030/portfolio/internal/config"
	"github.com/Rajan167030/portfolio/internal/database"
	"github.com/Rajan167030/portfolio/internal/github"
	"github.com/Rajan167030/portfolio/internal/handler"
	"github.com/Rajan167030/portfolio/internal/middleware"
	"github.com/Rajan167030/portfolio/internal/repository"
	"github.com/Rajan167030/portfolio/internal/service"
)

// main is the single entry-point for the portfolio REST API.
func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	cfg := config.Load()
	log.Info().
		Str("port", cfg.Port).
		Str("github_user", cfg.Username).
		Bool("github_token", cfg.GitHubToken != "").
		Msg("configuration loaded")

	ctx := context.Background()

	// GitHub client + services
	ghClient := github.NewClient(ctx, cfg.GitHubToken)

	repoSvc, err := service.NewRepoService(ghClient, cfg.Username, cfg.GitHubToken != "", cfg.CacheTTL)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to initialize repo service")
	}

	imageSvc, err := service.NewReadmeImageService(ghClient, cfg.CacheTTL)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to initialize readme image service")
	}

	notifier := service.NewLogNotifier()

	// Blog store: Mongo when configured, in-memory otherwise.
	var (
		posts       service.PostRepository
		comments    service.CommentRepository
		mongoClient *mongo.Client
	)
	if cfg.MongoURI != "" {
		client, mctx, cancel, err := database.NewMongo(cfg.MongoURI)
		if err != nil {
			log.Fatal().Err(err).Msg("failed to connect to MongoDB")
		}
		defer cancel()
		defer client.Disconnect(mctx)
		log.Info().Str("db", cfg.DBName).Msg("connected to MongoDB")

		store := repository.NewBlogMongo(client.Database(cfg.DBName))
		posts, comments = store, store
		mongoClient = client
	} else {
		log.Info().Msg("no MONGODB_URI set; using in-memory blog store")
		store := repository.NewBlogMemorySeeded()
		posts, comments = store, store
	}

	blogSvc := service.NewBlogService(posts, comments, notifier)

	// Create Fiber app
	app := fiber.New(fiber.Config{
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	})

	app.Use(middleware.Logging())

	// Register routes
	handler.RegisterRoutes(app,
		handler.NewGitHubHandler(repoSvc, imageSvc),
		handler.NewProjectsHandler(repoSvc, imageSvc, nil),
		handler.NewBlogHandler(blogSvc),
		handler.NewAdminHandler(cfg.AdminUsername, cfg.AdminPassword, cfg.JWTSecret),
		handler.NewEmailHandler(notifier),
		cfg.JWTSecret,
	)

	handler.NewHealthHandler(mongoClient).Register(app)

	// Start server
	log.Info().Str("port", cfg.Port).Msg("server starting")
	if err := app.Listen(":" + cfg.Port); err != nil {
		log.Fatal().Err(err).Msg("server failed to start")
	}
}
