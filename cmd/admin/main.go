package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"net/url"
	"strings"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"cvlab/internal/auth"
	"cvlab/internal/config"
	"cvlab/internal/database"
)

// admin provisions an account for an email address and prints a single-use
// login link, for deployments where signup is invitation-only.
func main() {
	email := flag.String("email", "", "account email address (required)")
	flag.Parse()

	addr := strings.ToLower(strings.TrimSpace(*email))
	if addr == "" {
		log.Fatal("missing required flag: --email")
	}

	cfg := config.MustLoad()

	db, err := database.InitDatabase(cfg.Database)
	if err != nil {
		log.Fatalf("init database: %v", err)
	}
	if err := db.AutoMigrate(&database.User{}); err != nil {
		log.Fatalf("auto migrate: %v", err)
	}

	var user database.User
	switch err := db.Where("email = ?", addr).First(&user).Error; {
	case err == nil:
		fmt.Printf("account already exists (id %d), issuing a fresh login link\n", user.ID)
	case errors.Is(err, gorm.ErrRecordNotFound):
		user = database.User{Email: addr}
		if err := db.Create(&user).Error; err != nil {
			log.Fatalf("create user: %v", err)
		}
		fmt.Printf("account created (id %d)\n", user.ID)
	default:
		log.Fatalf("query user: %v", err)
	}

	redisClient := redis.NewClient(&redis.Options{Addr: cfg.Redis.Addr()})
	defer redisClient.Close()

	ctx := context.Background()
	if err := redisClient.Ping(ctx).Err(); err != nil {
		log.Fatalf("ping redis: %v", err)
	}

	loginTokens := auth.NewLoginTokenService(redisClient, cfg.Auth.LoginTokenTTL)
	token, err := loginTokens.Issue(ctx, addr)
	if err != nil {
		log.Fatalf("issue login token: %v", err)
	}

	values := url.Values{}
	values.Set("email", addr)
	values.Set("token", token)
	link := fmt.Sprintf("%s/v1/auth/callback?%s",
		strings.TrimRight(cfg.API.PublicBaseURL, "/"), values.Encode())

	fmt.Printf("login link (valid %s, single use):\n%s\n", cfg.Auth.LoginTokenTTL, link)
}
