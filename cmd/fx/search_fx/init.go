package search_fx

import (
	"go.uber.org/fx"

	"mcstudio/internal/api/controllers"
)

var Module = fx.Provide(provideSearchController)

func provideSearchController() *controllers.SearchController {
	return controllers.NewSearchController()
}
