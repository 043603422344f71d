package router

import (
	"time"

	"duka/internal/config"
	"duka/internal/handler"
	"duka/internal/middleware"
	"duka/internal/repository"
	"duka/internal/service"
	"duka/internal/web"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// New wires all dependencies and returns a configured Gin engine.
// Dependency graph: Handler ← Service ← Repository ← DB/Redis
func New(cfg *config.Config, db *gorm.DB, rdb *redis.Client) *gin.Engine {
	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// Global middleware chain (order matters)
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger())
	r.Use(middleware.Recovery())
	r.Use(middleware.CORS())
	r.Use(middleware.ErrorHandler())
	r.Use(middleware.Metrics())
	r.Use(middleware.RateLimiter(cfg.RateLimit, time.Minute))

	// ── Repositories ─────────────────────────────────────────────────────────
	categoryRepo := repository.NewCategoryRepository(db)
	subcategoryRepo := repository.NewSubcategoryRepository(db)
	itemRepo := repository.NewItemRepository(db)
	saleRepo := repository.NewSaleRepository(db)

	// ── Services ─────────────────────────────────────────────────────────────
	itemCache := service.NewItemCache(rdb)
	categorySvc := service.NewCategoryService(categoryRepo, itemCache)
	subcategorySvc := service.NewSubcategoryService(subcategoryRepo, categoryRepo)
	itemSvc := service.NewItemService(itemRepo, subcategoryRepo, itemCache)
	saleSvc := service.NewSaleService(saleRepo, itemRepo, itemCache)
	reportSvc := service.NewReportService(itemRepo)

	// ── Handlers ─────────────────────────────────────────────────────────────
	categoriesH := handler.NewCategoriesHandler(categorySvc)
	subcategoriesH := handler.NewSubcategoriesHandler(subcategorySvc)
	itemsH := handler.NewItemsHandler(itemSvc)
	salesH := handler.NewSalesHandler(saleSvc)
	reportsH := handler.NewReportsHandler(reportSvc)

	// ── Routes ───────────────────────────────────────────────────────────────
	r.GET("/health", handler.Health(db, rdb))
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	api := r.Group("/api")
	{
		api.GET("/categories", categoriesH.List)
		api.POST("/categories", categoriesH.Create)
		api.DELETE("/categories/:id", categoriesH.Delete)

		api.GET("/subcategories", subcategoriesH.List)
		api.GET("/subcategories/:id", subcategoriesH.Get)
		api.POST("/subcategories", subcategoriesH.Create)

		api.GET("/items", itemsH.List)
		api.POST("/items", itemsH.Create)
		api.PUT("/items/:id", itemsH.Update)

		api.POST("/sales", salesH.Record)
		api.GET("/sales", salesH.List)
		// Registered before /sales/:id so "item" is not captured as an id.
		api.GET("/sales/item/:itemId", salesH.ListByItem)
		api.GET("/sales/:id", salesH.Get)

		api.GET("/reports/stock.xlsx", reportsH.StockExport)
	}

	// Dashboard + audit pages
	web.Register(r)

	return r
}
