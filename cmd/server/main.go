package main

import (
	"log"

	"gorm.io/driver/postgres"

	"github.com/Somye55/colbin-recruitment-platform/internal/auth"
	"github.com/Somye55/colbin-recruitment-platform/internal/config"
	"github.com/Somye55/colbin-recruitment-platform/internal/controllers"
	"github.com/Somye55/colbin-recruitment-platform/internal/db"
	"github.com/Somye55/colbin-recruitment-platform/internal/middleware"
	"github.com/Somye55/colbin-recruitment-platform/internal/redisconn"
	"github.com/Somye55/colbin-recruitment-platform/internal/store"
	"github.com/Somye55/colbin-recruitment-platform/internal/utils"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	conn, err := db.Init(postgres.Open(cfg.DatabaseDSN))
	if err != nil {
		log.Fatal("failed to connect db: ", err)
	}

	users := store.NewUserStore(conn, cfg.BcryptCost)
	tokens := auth.NewTokenService(cfg.JWTSecret, cfg.TokenTTL)

	var limiter *middleware.RateLimiter
	if cfg.RedisAddr != "" {
		rdb, err := redisconn.New(cfg.RedisAddr, cfg.RedisPassword, 0)
		if err != nil {
			log.Fatal("redis ping failed: ", err)
		}
		limiter = middleware.NewRateLimiter(rdb, cfg.RateLimitMax, cfg.RateLimitWindow)
	}

	var mailer *utils.SMTPClient
	if cfg.SMTPHost != "" {
		mailer = utils.NewSMTPClient(cfg.SMTPHost, cfg.SMTPUser, cfg.SMTPPass, cfg.FromEmail)
	}

	r := controllers.SetupRouter(users, tokens, limiter, mailer)

	log.Printf("listening on :%s", cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatal(err)
	}
}
