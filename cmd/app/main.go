package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/coursebase/catalog-api/config"
	"github.com/coursebase/catalog-api/internal/domain"
	"github.com/coursebase/catalog-api/internal/infrastructure/cache"
	"github.com/coursebase/catalog-api/internal/infrastructure/repository"
	"github.com/coursebase/catalog-api/internal/middleware"
	"github.com/coursebase/catalog-api/internal/pkg/logger"
	"github.com/coursebase/catalog-api/internal/service"
	handlers "github.com/coursebase/catalog-api/internal/transport/http"

	"github.com/redis/go-redis/v9"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	cfg, err := config.LoadConfig(".")
	if err != nil {
		log.Fatalf("Config load failed: %v", err)
	}

	lg, err := logger.New(cfg.Mode)
	if err != nil {
		log.Fatalf("Logger init failed: %v", err)
	}
	defer lg.Sync()

	dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
		cfg.DBHost, cfg.DBUser, cfg.DBPassword, cfg.DBName, cfg.DBPort)

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		lg.Fatal("DB connect failed", "error", err)
	}

	if err := db.AutoMigrate(&domain.Course{}, &domain.UserCourseProgress{}); err != nil {
		lg.Fatal("Migration failed", "error", err)
	}
	seedCourses(db, lg)

	var limiter *middleware.RateLimiter
	if cfg.RedisAddr != "" {
		rdb := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
		if err := rdb.Ping(context.Background()).Err(); err != nil {
			lg.Fatal("Redis connect failed", "error", err)
		}
		lg.Info("Connected to Redis", "addr", cfg.RedisAddr)
		limiter = middleware.NewRateLimiter(rdb)
	}

	catalogCache := cache.New(
		time.Duration(cfg.CacheTTL)*time.Second,
		time.Duration(cfg.CacheSweepInterval)*time.Second,
	)
	defer catalogCache.Stop()

	repo := repository.NewCourseRepository(db)
	catalog := service.NewCatalogService(repo, catalogCache, lg)
	detail := service.NewDetailService(repo)

	tm := middleware.NewTokenManager(cfg.JWTSecret)
	courseHandler := handlers.NewCourseHandler(catalog, detail, lg)
	router := handlers.NewRouter(courseHandler, limiter, tm, cfg.AllowedOrigins)

	srv := &http.Server{
		Addr:    cfg.Port,
		Handler: router,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		lg.Info("Catalog API running", "addr", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			lg.Fatal("Serve failed", "error", err)
		}
	}()

	<-ctx.Done()
	lg.Info("Shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		lg.Error("Shutdown failed", "error", err)
	}
}

func seedCourses(db *gorm.DB, lg *logger.Logger) {
	var count int64
	db.Model(&domain.Course{}).Count(&count)
	if count > 0 {
		return
	}

	demo := []domain.Course{
		{
			Title:            "Fullstack Web Development",
			Description:      "Build and ship web applications end to end, from the first template to deployment.",
			ThumbnailPicLink: "https://images.unsplash.com/photo-1526379095098-d400fd0bf935?auto=format&fit=crop&w=800&q=80",
			CourseType:       "Programming",
			Price:            49.99,
			PointsProviding:  120,
			CourseLevel:      "Beginner",
			EnrollmentCounts: 1280,
		},
		{
			Title:            "UX/UI Design from Scratch",
			Description:      "Design usable, good-looking interfaces in Figma.",
			ThumbnailPicLink: "https://images.unsplash.com/photo-1561070791-2526d30994b5?auto=format&fit=crop&w=800&q=80",
			CourseType:       "Design",
			Price:            39.99,
			PointsProviding:  80,
			CourseLevel:      "Beginner",
			EnrollmentCounts: 940,
		},
		{
			Title:            "Data Analysis with SQL",
			Description:      "From SELECT to window functions on a real dataset.",
			ThumbnailPicLink: "https://images.unsplash.com/photo-1551288049-bebda4e38f71?auto=format&fit=crop&w=800&q=80",
			CourseType:       "Data",
			Price:            29.99,
			PointsProviding:  60,
			CourseLevel:      "Intermediate",
			EnrollmentCounts: 610,
		},
	}
	if err := db.Create(&demo).Error; err != nil {
		lg.Warn("Seeding failed", "error", err)
		return
	}
	lg.Info("DB seeded with default courses", "count", len(demo))
}
