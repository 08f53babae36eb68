package wizard_fx

import (
	"go.uber.org/fx"

	"mcstudio/internal/api/controllers"
	"mcstudio/internal/services"
	mem "mcstudio/pkg/memcache"
)

var Module = fx.Provide(provideWizardController)

func provideWizardController(
	sessions mem.SessionStore,
	questionnaireService services.QuestionnaireServiceInterface,
) *controllers.WizardController {
	return controllers.NewWizardController(sessions, questionnaireService)
}
