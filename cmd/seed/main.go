// Command seed creates demo users for local development and prints
// credentials plus a fresh idempotency key for exercising the transfer API.
package main

import (
	"context"
	"log"

	"kora/internal/config"
	"kora/internal/models"
	"kora/internal/repositories"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

const demoPassword = "demo-password-1!"

func main() {
	config.LoadEnv()

	if err := repositories.InitDB(); err != nil {
		log.Fatalf("Failed to initialize databases: %v", err)
	}
	defer func() {
		if sqlDB, err := repositories.DB.DB(); err == nil {
			sqlDB.Close()
		}
		if repositories.RedisClient != nil {
			repositories.RedisClient.Close()
		}
	}()

	ctx := context.Background()
	userRepo := repositories.NewUserRepository(repositories.DB)

	for _, name := range []string{"alice", "bob"} {
		if _, err := userRepo.GetByUsername(ctx, name); err == nil {
			log.Printf("user %q already exists, skipping", name)
			continue
		}

		hashed, err := bcrypt.GenerateFromPassword([]byte(demoPassword), bcrypt.DefaultCost)
		if err != nil {
			log.Fatalf("Failed to hash password: %v", err)
		}

		user := &models.User{
			Username: name,
			Email:    name + "@example.com",
			Password: string(hashed),
		}
		if err := userRepo.CreateWithWallet(ctx, user); err != nil {
			log.Fatalf("Failed to create user %q: %v", name, err)
		}
		log.Printf("created user %q (id=%d, wallet=%d)", name, user.ID, user.Wallet.ID)
	}

	log.Printf("demo password: %s", demoPassword)
	log.Printf("sample transfer idempotency key: %s", uuid.NewString())
}
