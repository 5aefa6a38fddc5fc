package controllers

import (
	"fmt"
	"log"
	"net/http"
	"os"
	"strings"

	"Chirp/cache"
	"Chirp/middlewares"
	"Chirp/models"

	"github.com/getsentry/sentry-go"
	"github.com/gin-gonic/gin"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type Server struct {
	DB     *gorm.DB
	Router *gin.Engine
}

func (server *Server) Initialize(DbUser, DbPassword, DbPort, DbHost, DbName string) {
	var dsn string

	if strings.EqualFold(os.Getenv("APP_ENV"), "production") {
		dsn = os.Getenv("DATABASE_URL")
		if dsn != "" && !strings.Contains(dsn, "sslmode=") {
			if strings.Contains(dsn, "?") {
				dsn += "&sslmode=require"
			} else {
				dsn += "?sslmode=require"
			}
		}
	} else {
		dsn = fmt.Sprintf(
			"host=%s user=%s password=%s dbname=%s port=%s sslmode=disable TimeZone=UTC",
			DbHost, DbUser, DbPassword, DbName, DbPort,
		)
	}

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("Cannot connect to Postgres: %v", err)
	}
	server.DB = db

	if err := server.AutoMigrate(); err != nil {
		log.Fatalf("Error migrating database: %v", err)
	}
	if err := ensureFollowConstraints(server.DB); err != nil {
		log.Printf("warning: follow constraints not ensured: %v", err)
	}

	// Redis init (safe failure)
	if err := cache.InitFromEnv(); err != nil {
		log.Printf("warning: could not connect to redis: %v", err)
	}

	if dsn := os.Getenv("SENTRY_DSN"); dsn != "" {
		if err := sentry.Init(sentry.ClientOptions{
			Dsn:         dsn,
			Environment: os.Getenv("APP_ENV"),
		}); err != nil {
			log.Printf("warning: sentry init failed: %v", err)
		}
	}

	server.Router = gin.Default()
	server.Router.Use(middlewares.CORSMiddleware())
	server.Router.Use(middlewares.RateLimitMiddleware())
	server.Router.Use(middlewares.SentryRecovery())
	server.initializeRoutes()
}

// AutoMigrate creates or updates every table the API reads and writes.
func (server *Server) AutoMigrate() error {
	return server.DB.AutoMigrate(
		&models.User{},
		&models.Follow{},
		&models.Block{},
		&models.Mute{},
		&models.Report{},
		&models.Tweet{},
		&models.TweetMedia{},
		&models.Comment{},
		&models.Like{},
		&models.Retweet{},
		&models.Bookmark{},
		&models.Chat{},
		&models.ChatMember{},
		&models.Message{},
		&models.MessageMedia{},
		&models.Notification{},
	)
}

func (server *Server) Run(addr string) {
	log.Fatal(http.ListenAndServe(addr, server.Router))
}

// userExists reports whether a user row with the given id is present.
// Write paths check the acting user this way before creating edges, so a
// bogus id surfaces as a 404 instead of a dangling row.
func (server *Server) userExists(uid uint) bool {
	err := server.DB.Select("id").First(&models.User{}, uid).Error
	return err == nil
}

func ensureFollowConstraints(db *gorm.DB) error {
	if db.Dialector.Name() != "postgres" {
		return nil
	}
	var count int64
	if err := db.Raw(
		"SELECT COUNT(1) FROM pg_constraint WHERE conname = ?",
		"follows_no_self_follow",
	).Scan(&count).Error; err != nil {
		return err
	}
	if count == 0 {
		if err := db.Exec(
			"ALTER TABLE follows ADD CONSTRAINT follows_no_self_follow CHECK (follower_id <> followed_id)",
		).Error; err != nil {
			return err
		}
	}
	return nil
}
