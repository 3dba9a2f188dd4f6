package router

import (
	"go.uber.org/zap"

	"github.com/gin-gonic/gin"

	"github.com/partkit/partkit/internal/infrastructure/config"
	"github.com/partkit/partkit/internal/infrastructure/logger"
	"github.com/partkit/partkit/internal/interfaces/http/handler"
	"github.com/partkit/partkit/internal/interfaces/http/middleware"
)

// Setup builds the gin engine with middleware and routes.
func Setup(cfg *config.Config, zapLogger *zap.Logger, namingHandler *handler.NamingHandler) (*gin.Engine, error) {
	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	if err := middleware.RegisterCustomValidators(); err != nil {
		return nil, err
	}

	engine := gin.New()
	if err := engine.SetTrustedProxies(cfg.HTTP.TrustedProxies); err != nil {
		return nil, err
	}

	engine.Use(middleware.RequestID())
	engine.Use(logger.RequestLogger(zapLogger))
	engine.Use(logger.Recovery(zapLogger))

	engine.GET("/health", handler.Health)

	v1 := engine.Group("/api/v1")
	{
		v1.POST("/names", namingHandler.GenerateName)
		v1.POST("/analyses", namingHandler.Analyze)
	}

	return engine, nil
}
