package main

import (
	"fmt"
	"log"
	"net/http"

	"coursecatalog/config"
	"coursecatalog/db"
	"coursecatalog/db/mongo"
	"coursecatalog/db/postgres"
	"coursecatalog/handlers"
	"coursecatalog/repository"
	"coursecatalog/routes"
	"coursecatalog/utils"
)

func main() {
	// Load config from .env or system environment
	cfg := config.LoadConfig()

	var userRepo repository.UserRepository
	var courseRepo repository.CourseRepository

	switch cfg.DBType {
	case "postgres":
		db.RunMigrations(cfg.PostgresURL)

		pg := postgres.NewPostgresDB(cfg.PostgresURL)
		if err := pg.Connect(); err != nil {
			panic(err)
		}
		defer pg.Disconnect()

		userRepo = repository.NewPostgresUserRepo(pg.Conn)
		courseRepo = repository.NewPostgresCourseRepo(pg.Conn)

	case "mongo":
		mg := mongo.NewMongoDB(cfg.MongoURL)
		if err := mg.Connect(); err != nil {
			panic(err)
		}
		defer mg.Disconnect()

		mongoUsers := repository.NewMongoUserRepo(mg.Client)
		if err := mongoUsers.EnsureIndexes(); err != nil {
			log.Fatalf("could not create user indexes: %v", err)
		}
		userRepo = mongoUsers
		courseRepo = repository.NewMongoCourseRepo(mg.Client)

	default:
		panic("DB_TYPE not supported")
	}

	// Handlers
	authHandler := &handlers.AuthHandler{
		Repo:        userRepo,
		Mailer:      utils.NewMailer(cfg),
		JWTSecret:   cfg.JWTSecret,
		FrontendURL: cfg.FrontendURL,
	}
	courseHandler := &handlers.CourseHandler{Courses: courseRepo, Users: userRepo}
	adminHandler := &handlers.AdminHandler{Users: userRepo}
	transcriptHandler := &handlers.TranscriptHandler{Users: userRepo, Courses: courseRepo}

	handler := routes.SetupRoutes(cfg, authHandler, courseHandler, adminHandler, transcriptHandler)

	port := cfg.Port
	fmt.Printf("Server running on port %s\n", port)
	if err := http.ListenAndServe(":"+port, handler); err != nil {
		panic(err)
	}
}
