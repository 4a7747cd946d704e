package main

import (
	"log"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	httpadp "activity-report-service/internal/adapter/http"
	"activity-report-service/internal/adapter/repository/mysql"
	"activity-report-service/internal/config"
	"activity-report-service/internal/domain/uow"
	"activity-report-service/internal/infrastructure/cache"
	"activity-report-service/internal/infrastructure/db"
	"activity-report-service/internal/infrastructure/storage"
	reportuc "activity-report-service/internal/usecase/report"
	useruc "activity-report-service/internal/usecase/user"
)

func main() {
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		log.Fatal(err)
	}

	gdb, err := db.OpenGorm(cfg.MySQLDSN())
	if err != nil {
		log.Fatal(err)
	}

	rdb, err := cache.OpenRedis(cfg.RedisAddr, cfg.RedisDB)
	if err != nil {
		log.Fatal(err)
	}

	blobs, err := storage.NewLocal(cfg.UploadDir)
	if err != nil {
		log.Fatal(err)
	}

	repos := uow.Repos{
		Users:       mysql.NewUserRepository(gdb),
		Reports:     mysql.NewReportRepository(gdb),
		Comments:    mysql.NewCommentRepository(gdb),
		Attachments: mysql.NewAttachmentRepository(gdb),
	}
	tx := mysql.NewGormUoW(gdb)

	users := useruc.NewUsecase(repos.Users)
	reports := reportuc.NewUsecase(repos, tx, blobs).
		WithStatsCache(rdb, time.Duration(cfg.StatsTTLSecs)*time.Second)

	secret := []byte(cfg.JWTSecret)
	tokenTTL := time.Duration(cfg.JWTTTLMins) * time.Minute

	h := httpadp.NewHandler()
	ah := httpadp.NewAuthHandler(users, secret, tokenTTL)
	uh := httpadp.NewUserHandler(users)
	rh := httpadp.NewReportHandler(reports)
	th := httpadp.NewAttachmentHandler(reports, blobs)

	e := echo.New()
	e.HideBanner = true
	e.Validator = httpadp.NewValidator()
	e.Use(middleware.Logger(), middleware.Recover())

	httpadp.RegisterRoutes(e, secret, h, ah, uh, rh, th)

	addr := ":" + cfg.AppPort
	log.Printf("listening on %s", addr)
	if err := e.Start(addr); err != nil {
		log.Fatal(err)
	}
}
