package questionnaire_fx

import (
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"mcstudio/internal/api/controllers"
	"mcstudio/internal/config"
	"mcstudio/internal/repositories"
	"mcstudio/internal/services"
)

var Module = fx.Provide(
	provideQuestionnaireRepo, provideQuestionnaireService, provideQuestionnaireController,
)

func provideQuestionnaireRepo(db *gorm.DB) repositories.QuestionnaireRepositoryInterface {
	return repositories.NewQuestionnaireRepository(db)
}

func provideQuestionnaireService(
	repo repositories.QuestionnaireRepositoryInterface,
	mail services.IMailService,
	cfg *config.Config,
	logger *zap.Logger,
) services.QuestionnaireServiceInterface {
	return services.NewQuestionnaireService(repo, mail, cfg, logger)
}

func provideQuestionnaireController(questionnaireService services.QuestionnaireServiceInterface) *controllers.QuestionnaireController {
	return controllers.NewQuestionnaireController(questionnaireService)
}
