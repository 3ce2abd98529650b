package bootstrap

import (
	"pricebook-be/internal/config"
	"pricebook-be/internal/controller"
	"pricebook-be/internal/pkg/logger"
	"pricebook-be/internal/repository/implementation"
	"pricebook-be/internal/repository/memory"
	"pricebook-be/internal/repository/unitofwork"
	"pricebook-be/internal/service"
	"pricebook-be/pkg/catalog"
	"pricebook-be/pkg/catalog/csvreader"
	"pricebook-be/pkg/export"

	"gorm.io/gorm"
)

type Container struct {
	// Controllers
	CatalogController controller.ICatalogController
	GroupController   controller.IGroupController
	SettingController controller.ISettingController
	ExportController  controller.IExportController

	// Exposed for main.go shutdown
	Logger logger.ILogger
}

func NewContainer(db *gorm.DB, cfg *config.Config) *Container {
	// 1. Core Facades
	uowFactory := unitofwork.NewRepositoryFactory(db)
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.App.Environment == "production")

	// Settings reads sit on the catalog refresh path, keep them in memory.
	settingRepo := memory.NewSettingCache(implementation.NewSettingRepository(db))

	// 2. Catalog cache
	var readerOpts []csvreader.Option
	if cfg.Catalog.SourceEncoding == "windows-1251" {
		readerOpts = append(readerOpts, csvreader.WithWindows1251())
	}
	tableReader := csvreader.New(readerOpts...)

	cacheManager := catalog.NewManager(
		tableReader,
		service.NewSettingSourceProvider(settingRepo),
		sysLogger,
		catalog.WithTTL(cfg.Catalog.TTL),
		catalog.WithStaleWait(cfg.Catalog.StaleWait),
	)

	// 3. Services
	catalogService := service.NewCatalogService(cacheManager)
	groupService := service.NewGroupService(uowFactory)
	settingService := service.NewSettingService(settingRepo, cacheManager)
	exportService := service.NewExportService(uowFactory, cacheManager, export.NewDocxRenderer())

	// 4. Controllers
	return &Container{
		CatalogController: controller.NewCatalogController(catalogService),
		GroupController:   controller.NewGroupController(groupService),
		SettingController: controller.NewSettingController(settingService),
		ExportController:  controller.NewExportController(exportService),

		Logger: sysLogger,
	}
}
