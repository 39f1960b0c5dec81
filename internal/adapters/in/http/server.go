package http

import (
	"log/slog"
	"net/http"

	"freight/internal/core/application/usecases/commands"
	"freight/internal/core/application/usecases/queries"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"
)

// RegistryHandlers groups the use cases behind the five registry endpoints.
type RegistryHandlers struct {
	CreatePort      commands.CreatePortCommandHandler
	UpdatePort      commands.UpdatePortCommandHandler
	CreateVessel    commands.CreateVesselCommandHandler
	UpdateVessel    commands.UpdateVesselCommandHandler
	CreateAirline   commands.CreateAirlineCommandHandler
	UpdateAirline   commands.UpdateAirlineCommandHandler
	CreateIncoterm  commands.CreateIncotermCommandHandler
	UpdateIncoterm  commands.UpdateIncotermCommandHandler
	CreateContainer commands.CreateContainerCommandHandler
	UpdateContainer commands.UpdateContainerCommandHandler
	SetActive       commands.SetRegistryRecordActiveCommandHandler
	List            queries.ListRegistryRecordsQueryHandler
}

type QuotationHandlers struct {
	Create       commands.CreateQuotationCommandHandler
	Update       commands.UpdateQuotationCommandHandler
	ChangeState  commands.ChangeQuotationStateCommandHandler
	Confirm      commands.ConfirmQuotationCommandHandler
	ToShipment   commands.CreateShipmentFromQuotationCommandHandler
	Get          queries.GetQuotationQueryHandler
	GetSaleOrder queries.GetSaleOrderQueryHandler
}

type ShipmentHandlers struct {
	Create  commands.CreateShipmentCommandHandler
	Update  commands.UpdateShipmentCommandHandler
	Reroute commands.UpdateShipmentRouteCommandHandler
	Advance commands.AdvanceShipmentCommandHandler
	Get     queries.GetShipmentQueryHandler
}

// CostLineHandlers serve the ledger of both quotations and shipments.
type CostLineHandlers struct {
	Add         commands.AddCostLineCommandHandler
	Update      commands.UpdateCostLineCommandHandler
	Remove      commands.RemoveCostLineCommandHandler
	LinkInvoice commands.LinkCostLineInvoiceCommandHandler
}

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	registries RegistryHandlers
	quotations QuotationHandlers
	shipments  ShipmentHandlers
	costLines  CostLineHandlers

	logger *slog.Logger
}

func NewServer(
	registries RegistryHandlers,
	quotations QuotationHandlers,
	shipments ShipmentHandlers,
	costLines CostLineHandlers,
	logger *slog.Logger,
) *Server {
	return &Server{
		registries: registries,
		quotations: quotations,
		shipments:  shipments,
		costLines:  costLines,
		logger:     logger.With("component", "http"),
	}
}

// NewEcho builds the echo instance: request logging, contract validation,
// the documentation UI and every route of the contract.
func NewEcho(server *Server, doc *openapi3.T) (*echo.Echo, error) {
	validator, err := RequestValidator(doc)
	if err != nil {
		return nil, err
	}
	if err = RegisterSwaggerDoc(doc); err != nil {
		return nil, err
	}

	e := echo.New()
	e.HideBanner = true
	e.Use(middleware.Recover())
	e.Use(requestLogger(server.logger))

	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	api := e.Group("/api/v1", validator)
	server.registerRoutes(api)

	return e, nil
}

func requestLogger(logger *slog.Logger) echo.MiddlewareFunc {
	return middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogMethod:  true,
		LogURI:     true,
		LogStatus:  true,
		LogLatency: true,
		LogError:   true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			attrs := []any{
				"method", v.Method,
				"uri", v.URI,
				"status", v.Status,
				"latency", v.Latency,
			}
			if v.Error != nil {
				logger.Warn("request", append(attrs, "error", v.Error)...)
				return nil
			}
			logger.Info("request", attrs...)
			return nil
		},
	})
}

func (s *Server) registerRoutes(api *echo.Group) {
	s.registerRegistryRoutes(api)

	api.POST("/quotations", s.CreateQuotation)
	api.GET("/quotations/:id", s.GetQuotation)
	api.PUT("/quotations/:id", s.UpdateQuotation)
	api.POST("/quotations/:id/actions/:action", s.ChangeQuotationState)
	api.POST("/quotations/:id/confirm", s.ConfirmQuotation)
	api.POST("/quotations/:id/shipment", s.CreateShipmentFromQuotation)
	api.POST("/quotations/:id/cost-lines", s.AddQuotationCostLine)
	api.PATCH("/quotations/:id/cost-lines/:lineId", s.UpdateQuotationCostLine)
	api.DELETE("/quotations/:id/cost-lines/:lineId", s.RemoveQuotationCostLine)

	api.POST("/shipments", s.CreateShipment)
	api.GET("/shipments/:id", s.GetShipment)
	api.PUT("/shipments/:id", s.UpdateShipment)
	api.PUT("/shipments/:id/route", s.UpdateShipmentRoute)
	api.POST("/shipments/:id/actions/:action", s.AdvanceShipment)
	api.POST("/shipments/:id/cost-lines", s.AddShipmentCostLine)
	api.PATCH("/shipments/:id/cost-lines/:lineId", s.UpdateShipmentCostLine)
	api.DELETE("/shipments/:id/cost-lines/:lineId", s.RemoveShipmentCostLine)
	api.POST("/shipments/:id/cost-lines/:lineId/invoice", s.LinkShipmentCostLineInvoice)

	api.GET("/sale-orders/:id", s.GetSaleOrder)
}
