package router

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"
	"github.com/venturebase/backoffice/config"
	"github.com/venturebase/backoffice/internal/handler"
)

func Setup(
	cfg *config.Config,
	mainHandler *handler.MainHandler,
	portfolioHandler *handler.PortfolioHandler,
	newsHandler *handler.NewsHandler,
	programHandler *handler.ProgramHandler,
) *gin.Engine {
	if cfg.Server.Mode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.Default()
	r.MaxMultipartMemory = 64 << 20

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
	}))
	r.Use(gzip.Gzip(gzip.DefaultCompression))

	r.GET("/", mainHandler.Get)

	portfolio := r.Group("/portfolio")
	{
		portfolio.GET("", portfolioHandler.List)
		portfolio.GET("/:id", portfolioHandler.Get)
		portfolio.POST("/new", portfolioHandler.Create)
		portfolio.PATCH("/:id", portfolioHandler.Update)
		portfolio.DELETE("/:id", portfolioHandler.Delete)
	}

	news := r.Group("/news")
	{
		news.GET("", newsHandler.List)
		news.GET("/:id", newsHandler.Get)
		news.GET("/:id/update", newsHandler.GetUpdate)
		news.POST("/new", newsHandler.Create)
		news.PATCH("/:id", newsHandler.Update)
		news.DELETE("/:id", newsHandler.Delete)
	}

	program := r.Group("/program")
	{
		program.GET("", programHandler.List)
		program.GET("/:id", programHandler.Get)
		program.GET("/:id/update", programHandler.GetUpdate)
		program.POST("/new", programHandler.Create)
		program.PATCH("/:id", programHandler.Update)
		program.DELETE("/:id", programHandler.Delete)
	}

	// 업로드 파일은 읽기 전용 정적 경로로 노출한다
	r.Static("/uploads", cfg.Upload.Dir)

	return r
}
