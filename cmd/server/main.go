package main

import (
	"log"

	"github.com/gin-gonic/gin"
	"github.com/sumeshkk123/cloud-sub010/internal/config"
	"github.com/sumeshkk123/cloud-sub010/internal/content"
	"github.com/sumeshkk123/cloud-sub010/internal/db"
	"github.com/sumeshkk123/cloud-sub010/internal/handler"
	"github.com/sumeshkk123/cloud-sub010/internal/locale"
	"github.com/sumeshkk123/cloud-sub010/internal/logging"
	"github.com/sumeshkk123/cloud-sub010/internal/router"
	"github.com/sumeshkk123/cloud-sub010/internal/seo"
	"github.com/sumeshkk123/cloud-sub010/internal/service"
	"go.uber.org/zap"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logger, err := logging.NewLogger(cfg.LogLevel)
	if err != nil {
		log.Fatalf("failed to build logger: %v", err)
	}
	defer logger.Sync() //nolint:errcheck

	// 初始化数据库
	if err := db.Init(cfg.DatabasePath); err != nil {
		logger.Fatal("failed to initialize database", zap.Error(err))
	}

	created, err := db.EnsureUser(db.DB, cfg.SuperRootUserName, cfg.SuperRootPassword)
	if err != nil {
		logger.Fatal("failed to ensure admin user", zap.Error(err))
	}
	if created {
		logger.Info("admin user created", zap.String("username", cfg.SuperRootUserName))
	}

	catalog, err := content.Default(cfg.DefaultLocale)
	if err != nil {
		logger.Fatal("failed to load content catalog", zap.Error(err))
	}
	locales, err := locale.NewSet(cfg.SupportedLocales, cfg.DefaultLocale)
	if err != nil {
		logger.Fatal("invalid locale configuration", zap.Error(err))
	}

	seeded, err := service.NewIndustrySolutionService(db.DB, locales).SeedFromCatalog(catalog)
	if err != nil {
		logger.Fatal("failed to seed industry solutions", zap.Error(err))
	}
	if seeded > 0 {
		logger.Info("industry solutions seeded", zap.Int("rows", seeded))
	}

	gin.SetMode(cfg.GinMode)
	site := seo.Site{Name: cfg.SiteName, BaseURL: cfg.SiteBaseURL}
	api := handler.NewAPI(db.DB, catalog, locales, site, logger)

	// 设置并运行 Gin 服务器
	r, err := router.SetupRouter(api, cfg.SessionSecret, logger)
	if err != nil {
		logger.Fatal("failed to set up router", zap.Error(err))
	}

	logger.Info("server listening",
		zap.String("addr", cfg.ListenAddr),
		zap.Int("pages", len(catalog.Slugs())),
		zap.Strings("locales", locales.Supported()),
	)
	if err := r.Run(cfg.ListenAddr); err != nil {
		logger.Fatal("failed to run server", zap.Error(err))
	}
}
