package internal

import (
	"funneld/internal/controllers"
	"funneld/internal/providers"
	"funneld/internal/structures"
	"net/http"
)

func InitRoutes(apiController *controllers.ApiController, conf *structures.Config) providers.RouterProviderInterface {
	routers := providers.NewRouterProvider()

	routers.Post("/subscribe", http.HandlerFunc(apiController.Subscribe))
	routers.Get("/timer", http.HandlerFunc(apiController.Timer))
	return routers
}
