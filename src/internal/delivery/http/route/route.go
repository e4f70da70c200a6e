package route

import (
	"kerjabantu-service/src/internal/delivery/http"
	"kerjabantu-service/src/internal/delivery/http/middleware"
	"kerjabantu-service/src/pkg/log"

	"github.com/gofiber/fiber/v2"
)

type RouteConfig struct {
	App                 *fiber.App
	Log                 log.Log
	UserController      *http.UserController
	KerjaMateController *http.KerjaMateController
	JobController       *http.JobController
	ConsultController   *http.ConsultController
	TrainingController  *http.TrainingController
	WalletLimiter       *middleware.RateLimiter
}

func (c *RouteConfig) Setup() {
	c.App.Use(middleware.NewSession())
	c.App.Use(middleware.NewLogger(c.Log))
	c.App.Get("/health", func(ctx *fiber.Ctx) error {
		return ctx.SendString("OK")
	})

	api := c.App.Group("/api/v1")
	c.SetupSessionRoute(api)
	c.SetupWalletRoute(api)
	c.SetupMarketplaceRoute(api)
	c.SetupConsultRoute(api)
	c.SetupTrainingRoute(api)
}

func (c *RouteConfig) SetupSessionRoute(api fiber.Router) {
	api.Post("/session/login", c.UserController.Login)
	api.Post("/session/register", c.UserController.Register)
	api.Post("/session/logout", c.UserController.Logout)

	api.Get("/me", c.UserController.GetProfile)
	api.Put("/me/persona", c.UserController.SetPersona)
	api.Patch("/me/persona/:key", c.UserController.UpdatePersona)
	api.Post("/me/onboarding", c.UserController.CompleteOnboarding)
	api.Post("/me/favorites/:kerjaMateId", c.UserController.ToggleFavorite)
}

func (c *RouteConfig) SetupWalletRoute(api fiber.Router) {
	wallet := api.Group("/wallet")
	if c.WalletLimiter != nil {
		wallet.Use(c.WalletLimiter.Handler())
	}
	wallet.Post("/topup", c.UserController.TopUp)
	wallet.Post("/withdraw", c.UserController.Withdraw)
}

func (c *RouteConfig) SetupMarketplaceRoute(api fiber.Router) {
	api.Get("/kerjamates", c.KerjaMateController.List)
	api.Delete("/kerjamates/filter", c.KerjaMateController.ResetFilter)
	api.Get("/kerjamates/:id", c.KerjaMateController.Get)

	// draft routes go before /jobs/:id
	api.Get("/jobs/draft", c.JobController.GetDraft)
	api.Patch("/jobs/draft", c.JobController.UpdateDraft)
	api.Put("/jobs/draft/field", c.JobController.ApplyDraftField)
	api.Delete("/jobs/draft", c.JobController.ResetDraft)
	api.Post("/jobs/draft/submit", c.JobController.Submit)

	api.Get("/jobs", c.JobController.List)
	api.Delete("/jobs/filter", c.JobController.ResetFilter)
	api.Get("/jobs/:id", c.JobController.Get)
	api.Get("/jobs/:id/matches", c.JobController.Matches)
	api.Post("/jobs/:id/hire", c.JobController.Hire)
	api.Post("/jobs/:id/complete", c.JobController.Complete)
	api.Post("/jobs/:id/cancel", c.JobController.Cancel)

	api.Get("/categories", c.JobController.ListCategories)
	api.Get("/categories/:id", c.JobController.GetCategory)
}

func (c *RouteConfig) SetupConsultRoute(api fiber.Router) {
	api.Get("/consult/topics", c.ConsultController.Topics)
	api.Post("/consult/ask", c.ConsultController.Ask)
}

func (c *RouteConfig) SetupTrainingRoute(api fiber.Router) {
	api.Get("/training", c.TrainingController.Catalog)
}
