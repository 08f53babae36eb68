package main

import (
	"context"
	"fmt"

	"github.com/gin-gonic/gin"
	"go.uber.org/fx"
	"go.uber.org/zap"

	"mcstudio/cmd/fx/config_fx"
	"mcstudio/cmd/fx/db_fx"
	"mcstudio/cmd/fx/destination_fx"
	"mcstudio/cmd/fx/logger_fx"
	"mcstudio/cmd/fx/mail_fx"
	"mcstudio/cmd/fx/memcache_fx"
	"mcstudio/cmd/fx/questionnaire_fx"
	"mcstudio/cmd/fx/search_fx"
	"mcstudio/cmd/fx/wizard_fx"
	"mcstudio/internal/api/controllers"
	"mcstudio/internal/config"
	"mcstudio/internal/observability"
	"mcstudio/pkg/middleware"
)

func main() {
	app := fx.New(
		config_fx.Module,
		logger_fx.Module,
		db_fx.Module,
		mail_fx.Module,
		memcache_fx.Module,
		questionnaire_fx.Module,
		wizard_fx.Module,
		destination_fx.Module,
		search_fx.Module,

		fx.Provide(ProvideRouter),
		fx.Invoke(StartServer),
	)

	app.Run()
}

func StartServer(lc fx.Lifecycle, engine *gin.Engine, cfg *config.Config, logger *zap.Logger) {
	addr := fmt.Sprintf(":%d", cfg.App.Port)
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				logger.Info("starting HTTP server", zap.String("addr", addr))
				if err := engine.Run(addr); err != nil {
					logger.Fatal("failed to start server", zap.Error(err))
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			logger.Info("stopping HTTP server")
			return nil
		},
	})
}

func ProvideRouter(
	cfg *config.Config,
	questionnaireController *controllers.QuestionnaireController,
	wizardController *controllers.WizardController,
	destinationController *controllers.DestinationController,
	searchController *controllers.SearchController) *gin.Engine {

	r := gin.New()
	r.Use(gin.Logger())
	r.Use(gin.Recovery())
	r.Use(middleware.TraceIDMiddleware())
	r.Use(middleware.CORSMiddleware())
	r.Use(middleware.OptionalIdentityMiddleware(cfg.Auth.JWTSecret))

	RegisterRoutes(r, questionnaireController, wizardController, destinationController, searchController)

	return r
}

func RegisterRoutes(r *gin.Engine,
	questionnaireController *controllers.QuestionnaireController,
	wizardController *controllers.WizardController,
	destinationController *controllers.DestinationController,
	searchController *controllers.SearchController) {

	api := r.Group("/api")

	api.POST("/questionnaire-responses", questionnaireController.Create)
	api.GET("/questionnaire-responses", questionnaireController.List)

	wizardGroup := api.Group("/wizard/sessions")
	wizardGroup.POST("", wizardController.Start)
	wizardGroup.GET("/:id", wizardController.Get)
	wizardGroup.PUT("/:id", wizardController.Update)
	wizardGroup.POST("/:id/next", wizardController.Next)
	wizardGroup.POST("/:id/back", wizardController.Back)
	wizardGroup.POST("/:id/step", wizardController.GoTo)
	wizardGroup.POST("/:id/submit", wizardController.Submit)

	destinationGroup := api.Group("/destinations")
	destinationGroup.GET("", destinationController.Regions)
	destinationGroup.GET("/all", destinationController.All)
	destinationGroup.GET("/search", destinationController.Search)

	api.POST("/search", searchController.Search)

	r.GET("/metrics", observability.MetricsHandler())
}
