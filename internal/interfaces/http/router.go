package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Compras-api/internal/application/auth"
	"github.com/jhoicas/Compras-api/internal/application/lists"
	"github.com/jhoicas/Compras-api/internal/application/reports"
	"github.com/jhoicas/Compras-api/internal/application/usecase"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC        *auth.UseCase
	UnitUC        *usecase.UnitUseCase
	CategoryUC    *usecase.CategoryUseCase
	RestaurantUC  *usecase.RestaurantUseCase
	ProductUC     *usecase.ProductUseCase
	ConfigUC      *usecase.ConfigUseCase
	ListUC        *lists.UseCase
	ReportUC      *reports.UseCase
	PDF           OrderSheetRenderer
	PublicOwnerID string
	JWTSecret     string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)

	listHandler := NewListHandler(deps.ListUC, deps.PDF)

	// Flujo público de armado de listas: catálogo, crear, agregar ítems,
	// finalizar y descargar el PDF; sin Bearer Token.
	public := api.Group("/public")
	publicHandler := NewPublicHandler(deps.ConfigUC, deps.PublicOwnerID)
	public.Get("/config", publicHandler.Config)
	public.Post("/lists", listHandler.Create)
	public.Get("/lists/:id", listHandler.GetByID)
	public.Post("/lists/:id/items", listHandler.AddItem)
	public.Post("/lists/:id/update_prices", listHandler.UpdatePrices)
	public.Post("/lists/:id/finalize", listHandler.Finalize)
	public.Post("/lists/:id/complete", listHandler.Complete)
	public.Get("/lists/:id/pdf", listHandler.PDF)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Catálogo (protegido)
	units := protected.Group("/units")
	unitHandler := NewUnitHandler(deps.UnitUC)
	units.Post("/", unitHandler.Create)
	units.Get("/", unitHandler.List)
	units.Get("/:id", unitHandler.GetByID)
	units.Put("/:id", unitHandler.Update)
	units.Delete("/:id", unitHandler.Delete)

	categories := protected.Group("/categories")
	categoryHandler := NewCategoryHandler(deps.CategoryUC)
	categories.Post("/", categoryHandler.Create)
	categories.Get("/", categoryHandler.List)
	categories.Get("/:id", categoryHandler.GetByID)
	categories.Put("/:id", categoryHandler.Update)
	categories.Delete("/:id", categoryHandler.Delete)

	restaurants := protected.Group("/restaurants")
	restaurantHandler := NewRestaurantHandler(deps.RestaurantUC)
	restaurants.Post("/", restaurantHandler.Create)
	restaurants.Get("/", restaurantHandler.List)
	restaurants.Get("/:id", restaurantHandler.GetByID)
	restaurants.Put("/:id", restaurantHandler.Update)
	restaurants.Delete("/:id", restaurantHandler.Delete)

	products := protected.Group("/products")
	productHandler := NewProductHandler(deps.ProductUC)
	products.Post("/", productHandler.Create)
	products.Get("/", productHandler.List)
	products.Get("/:id", productHandler.GetByID)
	products.Put("/:id", productHandler.Update)
	products.Delete("/:id", productHandler.Delete)

	// Listas (protegido: gestión desde el panel)
	listsGroup := protected.Group("/lists")
	listsGroup.Post("/", listHandler.Create)
	listsGroup.Get("/", listHandler.List)
	listsGroup.Get("/:id", listHandler.GetByID)
	listsGroup.Delete("/:id", listHandler.Delete)
	listsGroup.Post("/:id/items", listHandler.AddItem)
	listsGroup.Post("/:id/update_prices", listHandler.UpdatePrices)
	listsGroup.Post("/:id/finalize", listHandler.Finalize)
	listsGroup.Post("/:id/complete", listHandler.Complete)
	listsGroup.Get("/:id/pdf", listHandler.PDF)

	// Reportes (protegido)
	reportsGroup := protected.Group("/reports")
	reportHandler := NewReportHandler(deps.ReportUC)
	reportsGroup.Get("/range", reportHandler.Range)
}
