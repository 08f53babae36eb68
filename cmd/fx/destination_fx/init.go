package destination_fx

import (
	"go.uber.org/fx"

	"mcstudio/internal/api/controllers"
	"mcstudio/internal/services"
)

var Module = fx.Provide(
	provideDestinationService, provideDestinationController,
)

func provideDestinationService() services.DestinationServiceInterface {
	return services.NewDestinationService()
}

func provideDestinationController(destinationService services.DestinationServiceInterface) *controllers.DestinationController {
	return controllers.NewDestinationController(destinationService)
}
