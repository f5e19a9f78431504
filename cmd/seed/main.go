package main

import (
	"log"

	"coursecatalog/config"
	"coursecatalog/db"
	"coursecatalog/db/mongo"
	"coursecatalog/db/postgres"
	"coursecatalog/models"
	"coursecatalog/repository"

	"golang.org/x/crypto/bcrypt"
)

// Seeds the configured backend with a starter admin, a student, three
// courses, and one enrollment.
func main() {
	cfg := config.LoadConfig()

	var userRepo repository.UserRepository
	var courseRepo repository.CourseRepository

	switch cfg.DBType {
	case "postgres":
		db.RunMigrations(cfg.PostgresURL)

		pg := postgres.NewPostgresDB(cfg.PostgresURL)
		if err := pg.Connect(); err != nil {
			log.Fatalf("could not connect to postgres: %v", err)
		}
		defer pg.Disconnect()

		userRepo = repository.NewPostgresUserRepo(pg.Conn)
		courseRepo = repository.NewPostgresCourseRepo(pg.Conn)

	case "mongo":
		mg := mongo.NewMongoDB(cfg.MongoURL)
		if err := mg.Connect(); err != nil {
			log.Fatalf("could not connect to mongo: %v", err)
		}
		defer mg.Disconnect()

		mongoUsers := repository.NewMongoUserRepo(mg.Client)
		if err := mongoUsers.EnsureIndexes(); err != nil {
			log.Fatalf("could not create user indexes: %v", err)
		}
		userRepo = mongoUsers
		courseRepo = repository.NewMongoCourseRepo(mg.Client)

	default:
		log.Fatal("DB_TYPE not supported")
	}

	// Start fresh
	if err := userRepo.DeleteAllUsers(); err != nil {
		log.Fatalf("could not clear users: %v", err)
	}
	if err := courseRepo.DeleteAllCourses(); err != nil {
		log.Fatalf("could not clear courses: %v", err)
	}
	log.Println("existing data cleared")

	admin := &models.User{Email: "admin@example.com", Role: models.RoleAdmin}
	student := &models.User{Email: "student@example.com", Role: models.RoleStudent}

	passwords := []struct {
		user     *models.User
		password string
	}{
		{admin, "adminpassword123"},
		{student, "studentpassword123"},
	}
	for _, p := range passwords {
		user := p.user
		hashed, err := bcrypt.GenerateFromPassword([]byte(p.password), bcrypt.DefaultCost)
		if err != nil {
			log.Fatalf("could not hash password: %v", err)
		}
		user.Password = string(hashed)
		if err := userRepo.CreateUser(user); err != nil {
			log.Fatalf("could not create user %s: %v", user.Email, err)
		}
	}
	log.Println("starter users created")

	courses := []*models.Course{
		{
			Title:       "Introduction to React",
			Description: "Learn the fundamentals of building user interfaces with React, including components, state, and props.",
			Icon:        "Laptop",
		},
		{
			Title:       "Node.js and Express Fundamentals",
			Description: "Dive into backend development by learning how to build a RESTful API with Node.js and Express.",
			Icon:        "Code",
		},
		{
			Title:       "MongoDB for Beginners",
			Description: "A comprehensive guide to using MongoDB as your application's database, covering collections, documents, and queries.",
			Icon:        "Storage",
		},
	}
	for _, course := range courses {
		if err := courseRepo.CreateCourse(course); err != nil {
			log.Fatalf("could not create course %q: %v", course.Title, err)
		}
	}
	log.Println("starter courses created")

	if err := userRepo.EnrollCourse(student.ID, courses[0].ID); err != nil {
		log.Fatalf("could not enroll student: %v", err)
	}
	log.Printf("student enrolled in %q", courses[0].Title)

	log.Println("database seeding complete")
}
