package controllers

import (
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/jaekwan-dev/soccer-schedule-manager/api/cache"
	"github.com/jaekwan-dev/soccer-schedule-manager/api/middlewares"
	"github.com/jaekwan-dev/soccer-schedule-manager/api/models"
	"github.com/jaekwan-dev/soccer-schedule-manager/api/security"

	"github.com/gin-gonic/gin"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type Server struct {
	DB     *gorm.DB
	Router *gin.Engine

	// Now is the clock for deadline checks and vote timestamps.
	// Injectable so tests can pin the instant.
	Now func() time.Time

	adminCredentialHash string
}

func (server *Server) now() time.Time {
	if server.Now != nil {
		return server.Now()
	}
	return time.Now()
}

// LoadAdminCredential prepares the shared operator credential. Either a
// bcrypt hash (ADMIN_PASSWORD_HASH) or a plain password (ADMIN_PASSWORD,
// hashed here at startup) must be provided; with neither, admin routes
// stay locked.
func (server *Server) LoadAdminCredential() error {
	if hash := strings.TrimSpace(os.Getenv("ADMIN_PASSWORD_HASH")); hash != "" {
		server.adminCredentialHash = hash
		return nil
	}
	password := strings.TrimSpace(os.Getenv("ADMIN_PASSWORD"))
	if password == "" {
		server.adminCredentialHash = ""
		return errors.New("ADMIN_PASSWORD_HASH or ADMIN_PASSWORD not set")
	}
	hashed, err := security.Hash(password)
	if err != nil {
		return err
	}
	server.adminCredentialHash = string(hashed)
	return nil
}

// ===============================
// SERVER INITIALIZATION
// ===============================
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
	server.Now = time.Now

	if err := server.DB.AutoMigrate(
		&models.Match{},
		&models.Member{},
		&models.Comment{},
	); err != nil {
		log.Fatalf("Error migrating database: %v", err)
	}

	// Redis init (safe failure)
	if err := cache.InitFromEnv(); err != nil {
		log.Printf("warning: could not connect to redis: %v", err)
	}

	if err := server.LoadAdminCredential(); err != nil {
		log.Printf("warning: admin login disabled: %v", err)
	}

	server.Router = gin.Default()
	server.Router.Use(middlewares.CORSMiddleware())
	server.Router.Use(middlewares.RateLimitMiddleware())
	server.initializeRoutes()
}

func (server *Server) Run(addr string) {
	log.Fatal(http.ListenAndServe(addr, server.Router))
}
