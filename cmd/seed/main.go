package main

import (
	"context"
	"log"
	"time"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"taskboard/internal/config"
	"taskboard/internal/db"
	"taskboard/internal/model"
	"taskboard/internal/repository"
)

const seedPassword = "changeme123"

func main() {
	log.Println("Starting seed script...")

	cfg := config.Load()

	gormDB, err := db.NewMySQL(cfg.MySQLDSN)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	log.Println("Connected to database")

	if err := gormDB.AutoMigrate(
		&model.User{},
		&model.Task{},
		&model.Post{},
		&model.Comment{},
	); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}
	log.Println("Database migrations completed")

	ctx := context.Background()
	users := repository.NewUserRepository(gormDB)
	tasks := repository.NewTaskRepository(gormDB)
	posts := repository.NewPostRepository(gormDB)

	admin, err := ensureUser(ctx, users, "admin", true)
	if err != nil {
		log.Fatalf("Failed to seed admin: %v", err)
	}
	demo, err := ensureUser(ctx, users, "demo", false)
	if err != nil {
		log.Fatalf("Failed to seed demo user: %v", err)
	}

	existing, err := tasks.ListByOwner(ctx, demo.ID)
	if err != nil {
		log.Fatalf("Failed to list demo tasks: %v", err)
	}
	if len(existing) == 0 {
		sample := []model.Task{
			{UserID: demo.ID, Title: "Try out the task list", Due: time.Now().Add(48 * time.Hour)},
			{UserID: demo.ID, Title: "An already expired task", Due: time.Now().Add(-24 * time.Hour)},
		}
		for i := range sample {
			if err := tasks.Create(ctx, &sample[i]); err != nil {
				log.Fatalf("Failed to seed task: %v", err)
			}
		}
		log.Printf("Seeded %d tasks for %s", len(sample), demo.Username)
	}

	all, err := posts.List(ctx)
	if err != nil {
		log.Fatalf("Failed to list posts: %v", err)
	}
	if len(all) == 0 {
		welcome := &model.Post{
			AuthorID: admin.ID,
			Title:    "Welcome to the bulletin board",
			Content:  "Announcements from the admins show up here. Signed-in users can comment.",
		}
		if err := posts.Create(ctx, welcome); err != nil {
			log.Fatalf("Failed to seed post: %v", err)
		}
		log.Println("Seeded welcome post")
	}

	log.Printf("Seed complete. Accounts %q and %q use password %q", admin.Username, demo.Username, seedPassword)
}

func ensureUser(ctx context.Context, users repository.UserRepository, username string, superuser bool) (*model.User, error) {
	existing, err := users.FindByUsername(ctx, username)
	if err == nil {
		return existing, nil
	}
	if err != gorm.ErrRecordNotFound {
		return nil, err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(seedPassword), 10)
	if err != nil {
		return nil, err
	}
	user := &model.User{
		Username:     username,
		PasswordHash: string(hashed),
		IsSuperuser:  superuser,
	}
	if err := users.Create(ctx, user); err != nil {
		return nil, err
	}
	log.Printf("Created user %q (superuser=%v)", username, superuser)
	return user, nil
}
