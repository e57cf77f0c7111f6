package main

import (
	"flag"
	"log"
	"time"

	"k8s.io/klog/v2"

	"github.com/venturebase/backoffice/config"
	"github.com/venturebase/backoffice/internal/eventbus"
	"github.com/venturebase/backoffice/internal/handler"
	"github.com/venturebase/backoffice/internal/pkg/database"
	"github.com/venturebase/backoffice/internal/pkg/filestore"
	"github.com/venturebase/backoffice/internal/repository"
	"github.com/venturebase/backoffice/internal/router"
	"github.com/venturebase/backoffice/internal/service"
	"github.com/venturebase/backoffice/internal/subscriber"
)

func main() {
	// klog 초기화
	klog.InitFlags(nil)
	flag.Parse()
	defer klog.Flush()

	cfg := config.GetConfig()

	// 업로드 루트 초기화 및 중단된 업로드 복구
	store, err := filestore.New(cfg.Upload.Dir)
	if err != nil {
		log.Fatalf("Failed to initialize upload store: %v", err)
	}
	maxAge := time.Duration(cfg.Upload.StagingMaxAgeMinutes) * time.Minute
	if err := store.Recover(maxAge); err != nil {
		klog.Errorf("스테이징 복구 실패: %v", err)
	}

	// 데이터베이스 초기화
	db, err := database.InitDB(cfg.Database.Type, cfg.Database.DSN)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}

	// Repository
	portfolioRepo := repository.NewPortfolioRepository(db)
	newsRepo := repository.NewNewsRepository(db)
	programRepo := repository.NewProgramRepository(db)

	// 이벤트 버스 + 감사 로그 구독자
	bus := eventbus.NewBus()
	subscriber.NewAuditSubscriber().Register(bus)

	// Service
	portfolioService := service.NewPortfolioService(cfg, portfolioRepo, store, bus)
	newsService := service.NewNewsService(cfg, newsRepo, store, bus)
	programService := service.NewProgramService(cfg, programRepo, store, bus)
	mainService := service.NewMainService(portfolioRepo, newsRepo)

	// Handler
	mainHandler := handler.NewMainHandler(mainService)
	portfolioHandler := handler.NewPortfolioHandler(portfolioService, store, cfg)
	newsHandler := handler.NewNewsHandler(newsService, store, cfg)
	programHandler := handler.NewProgramHandler(programService, store, cfg)

	r := router.Setup(cfg, mainHandler, portfolioHandler, newsHandler, programHandler)

	log.Printf("Server starting on port %s...", cfg.Server.Port)
	if err := r.Run(":" + cfg.Server.Port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
