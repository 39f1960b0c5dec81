package http

import (
	"errors"
	"net/http"
	"strconv"

	"freight/internal/core/application/usecases/commands"
	"freight/internal/core/application/usecases/queries"
	"freight/internal/core/domain/model/airline"
	"freight/internal/core/domain/model/container"
	"freight/internal/core/domain/model/incoterm"
	"freight/internal/core/domain/model/kernel"
	"freight/internal/core/domain/model/port"
	"freight/internal/core/domain/model/registry"
	"freight/internal/core/domain/model/vessel"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
)

func (s *Server) registerRegistryRoutes(api *echo.Group) {
	paths := map[registry.Kind]string{
		registry.KindPort:      "/ports",
		registry.KindVessel:    "/vessels",
		registry.KindAirline:   "/airlines",
		registry.KindIncoterm:  "/incoterms",
		registry.KindContainer: "/containers",
	}
	for _, kind := range registry.Kinds() {
		path := paths[kind]
		api.GET(path, s.listRegistry(kind))
		api.POST(path+"/:id/archive", s.setRegistryActive(kind, false))
		api.POST(path+"/:id/restore", s.setRegistryActive(kind, true))
	}

	api.POST("/ports", s.CreatePort)
	api.PUT("/ports/:id", s.UpdatePort)
	api.POST("/vessels", s.CreateVessel)
	api.PUT("/vessels/:id", s.UpdateVessel)
	api.POST("/airlines", s.CreateAirline)
	api.PUT("/airlines/:id", s.UpdateAirline)
	api.POST("/incoterms", s.CreateIncoterm)
	api.PUT("/incoterms/:id", s.UpdateIncoterm)
	api.POST("/containers", s.CreateContainer)
	api.PUT("/containers/:id", s.UpdateContainer)
}

func (s *Server) listRegistry(kind registry.Kind) echo.HandlerFunc {
	return func(ctx echo.Context) error {
		includeArchived := false
		if raw := ctx.QueryParam("include_archived"); raw != "" {
			v, err := strconv.ParseBool(raw)
			if err != nil {
				return badRequest(ctx, "include_archived must be a boolean")
			}
			includeArchived = v
		}

		query, err := queries.NewListRegistryRecordsQuery(kind, ctx.QueryParam("search"), includeArchived)
		if err != nil {
			return s.writeError(ctx, err)
		}

		records, err := s.registries.List.Handle(ctx.Request().Context(), query)
		if err != nil {
			return s.writeError(ctx, err)
		}

		response := make([]RegistryRecord, len(records))
		for i, record := range records {
			response[i] = RegistryRecord{
				ID:          record.ID.Bytes(),
				Code:        record.Code,
				Name:        record.Name,
				DisplayName: record.DisplayName,
				Active:      record.Active,
			}
		}
		return ctx.JSON(http.StatusOK, response)
	}
}

func (s *Server) setRegistryActive(kind registry.Kind, active bool) echo.HandlerFunc {
	return func(ctx echo.Context) error {
		id, err := pathUUID(ctx, "id")
		if err != nil {
			return s.writeError(ctx, err)
		}

		cmd, err := commands.NewSetRegistryRecordActiveCommand(kind, id, active)
		if err != nil {
			return s.writeError(ctx, err)
		}
		if err = s.registries.SetActive.Handle(ctx.Request().Context(), cmd); err != nil {
			return s.writeError(ctx, err)
		}
		return ctx.NoContent(http.StatusNoContent)
	}
}

// CreatePort handles POST /api/v1/ports.
func (s *Server) CreatePort(ctx echo.Context) error {
	fields, err := bindPortFields(ctx)
	if err != nil {
		return s.writeError(ctx, err)
	}
	cmd, err := commands.NewCreatePortCommand(fields)
	if err != nil {
		return s.writeError(ctx, err)
	}
	action, err := s.registries.CreatePort.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.writeError(ctx, err)
	}
	return ctx.JSON(http.StatusCreated, actionOf(action))
}

// UpdatePort handles PUT /api/v1/ports/{id}.
func (s *Server) UpdatePort(ctx echo.Context) error {
	id, err := pathUUID(ctx, "id")
	if err != nil {
		return s.writeError(ctx, err)
	}
	fields, err := bindPortFields(ctx)
	if err != nil {
		return s.writeError(ctx, err)
	}
	cmd, err := commands.NewUpdatePortCommand(id, fields)
	if err != nil {
		return s.writeError(ctx, err)
	}
	action, err := s.registries.UpdatePort.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.writeError(ctx, err)
	}
	return ctx.JSON(http.StatusOK, actionOf(action))
}

func (s *Server) CreateVessel(ctx echo.Context) error {
	fields, err := bindVesselFields(ctx)
	if err != nil {
		return s.writeError(ctx, err)
	}
	cmd, err := commands.NewCreateVesselCommand(fields)
	if err != nil {
		return s.writeError(ctx, err)
	}
	action, err := s.registries.CreateVessel.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.writeError(ctx, err)
	}
	return ctx.JSON(http.StatusCreated, actionOf(action))
}

func (s *Server) UpdateVessel(ctx echo.Context) error {
	id, err := pathUUID(ctx, "id")
	if err != nil {
		return s.writeError(ctx, err)
	}
	fields, err := bindVesselFields(ctx)
	if err != nil {
		return s.writeError(ctx, err)
	}
	cmd, err := commands.NewUpdateVesselCommand(id, fields)
	if err != nil {
		return s.writeError(ctx, err)
	}
	action, err := s.registries.UpdateVessel.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.writeError(ctx, err)
	}
	return ctx.JSON(http.StatusOK, actionOf(action))
}

func (s *Server) CreateAirline(ctx echo.Context) error {
	fields, err := bindAirlineFields(ctx)
	if err != nil {
		return s.writeError(ctx, err)
	}
	cmd, err := commands.NewCreateAirlineCommand(fields)
	if err != nil {
		return s.writeError(ctx, err)
	}
	action, err := s.registries.CreateAirline.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.writeError(ctx, err)
	}
	return ctx.JSON(http.StatusCreated, actionOf(action))
}

func (s *Server) UpdateAirline(ctx echo.Context) error {
	id, err := pathUUID(ctx, "id")
	if err != nil {
		return s.writeError(ctx, err)
	}
	fields, err := bindAirlineFields(ctx)
	if err != nil {
		return s.writeError(ctx, err)
	}
	cmd, err := commands.NewUpdateAirlineCommand(id, fields)
	if err != nil {
		return s.writeError(ctx, err)
	}
	action, err := s.registries.UpdateAirline.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.writeError(ctx, err)
	}
	return ctx.JSON(http.StatusOK, actionOf(action))
}

func (s *Server) CreateIncoterm(ctx echo.Context) error {
	fields, err := bindIncotermFields(ctx)
	if err != nil {
		return s.writeError(ctx, err)
	}
	cmd, err := commands.NewCreateIncotermCommand(fields)
	if err != nil {
		return s.writeError(ctx, err)
	}
	action, err := s.registries.CreateIncoterm.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.writeError(ctx, err)
	}
	return ctx.JSON(http.StatusCreated, actionOf(action))
}

func (s *Server) UpdateIncoterm(ctx echo.Context) error {
	id, err := pathUUID(ctx, "id")
	if err != nil {
		return s.writeError(ctx, err)
	}
	fields, err := bindIncotermFields(ctx)
	if err != nil {
		return s.writeError(ctx, err)
	}
	cmd, err := commands.NewUpdateIncotermCommand(id, fields)
	if err != nil {
		return s.writeError(ctx, err)
	}
	action, err := s.registries.UpdateIncoterm.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.writeError(ctx, err)
	}
	return ctx.JSON(http.StatusOK, actionOf(action))
}

func (s *Server) CreateContainer(ctx echo.Context) error {
	fields, err := bindContainerFields(ctx)
	if err != nil {
		return s.writeError(ctx, err)
	}
	cmd, err := commands.NewCreateContainerCommand(fields)
	if err != nil {
		return s.writeError(ctx, err)
	}
	action, err := s.registries.CreateContainer.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.writeError(ctx, err)
	}
	return ctx.JSON(http.StatusCreated, actionOf(action))
}

func (s *Server) UpdateContainer(ctx echo.Context) error {
	id, err := pathUUID(ctx, "id")
	if err != nil {
		return s.writeError(ctx, err)
	}
	fields, err := bindContainerFields(ctx)
	if err != nil {
		return s.writeError(ctx, err)
	}
	cmd, err := commands.NewUpdateContainerCommand(id, fields)
	if err != nil {
		return s.writeError(ctx, err)
	}
	action, err := s.registries.UpdateContainer.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.writeError(ctx, err)
	}
	return ctx.JSON(http.StatusOK, actionOf(action))
}

func bindPortFields(ctx echo.Context) (commands.PortFields, error) {
	var body PortInput
	if err := bindBody(ctx, &body); err != nil {
		return commands.PortFields{}, err
	}
	country, err := kernel.NewCountryCode(body.Country)
	if err != nil {
		return commands.PortFields{}, err
	}

	details := port.Details{State: body.State, Timezone: body.Timezone, Notes: body.Notes}
	if body.Latitude != nil || body.Longitude != nil {
		if body.Latitude == nil || body.Longitude == nil {
			return commands.PortFields{}, errInvalidBody("latitude and longitude go together")
		}
		location, geoErr := kernel.NewGeoPoint(*body.Latitude, *body.Longitude)
		if geoErr != nil {
			return commands.PortFields{}, geoErr
		}
		details.Location = &location
	}

	return commands.PortFields{
		Code:    body.Code,
		Name:    body.Name,
		Country: country,
		Modes:   port.Modes{Air: body.Air, Ocean: body.Ocean, Land: body.Land},
		Details: details,
	}, nil
}

func bindVesselFields(ctx echo.Context) (commands.VesselFields, error) {
	var body VesselInput
	if err := bindBody(ctx, &body); err != nil {
		return commands.VesselFields{}, err
	}
	country, err := kernel.NewCountryCode(body.Country)
	if err != nil {
		return commands.VesselFields{}, err
	}
	return commands.VesselFields{
		Code:    body.Code,
		Name:    body.Name,
		Country: country,
		Details: vessel.Details{
			GlobalZone:   body.GlobalZone,
			Type:         vessel.Type(body.VesselType),
			IMO:          body.IMO,
			MMSI:         body.MMSI,
			CallSign:     body.CallSign,
			GrossTonnage: body.GrossTonnage,
			NetTonnage:   body.NetTonnage,
			Deadweight:   body.Deadweight,
			TEUCapacity:  body.TEUCapacity,
			Length:       body.Length,
			Beam:         body.Beam,
			Draft:        body.Draft,
			Owner:        body.Owner,
			Operator:     body.Operator,
			Notes:        body.Notes,
		},
	}, nil
}

func bindAirlineFields(ctx echo.Context) (commands.AirlineFields, error) {
	var body AirlineInput
	if err := bindBody(ctx, &body); err != nil {
		return commands.AirlineFields{}, err
	}
	country, err := kernel.NewCountryCode(body.Country)
	if err != nil {
		return commands.AirlineFields{}, err
	}
	return commands.AirlineFields{
		Code:    body.Code,
		Name:    body.Name,
		Country: country,
		Details: airline.Details{
			IATA:                 body.IATA,
			ICAO:                 body.ICAO,
			Type:                 airline.Type(body.AirlineType),
			Website:              body.Website,
			Phone:                body.Phone,
			Email:                body.Email,
			FleetSize:            body.FleetSize,
			CargoFleetSize:       body.CargoFleetSize,
			DomesticService:      body.DomesticService,
			InternationalService: body.InternationalService,
			Notes:                body.Notes,
		},
	}, nil
}

func bindIncotermFields(ctx echo.Context) (commands.IncotermFields, error) {
	var body IncotermInput
	if err := bindBody(ctx, &body); err != nil {
		return commands.IncotermFields{}, err
	}
	return commands.IncotermFields{
		Code: body.Code,
		Name: body.Name,
		Details: incoterm.Details{
			Group:              incoterm.Group(body.Group),
			Mode:               incoterm.Mode(body.TransportMode),
			RiskTransferPoint:  body.RiskTransferPoint,
			CostResponsibility: body.CostResponsibility,
			InsuranceRequired:  body.InsuranceRequired,
			ExportClearance:    incoterm.Clearance(body.ExportClearance),
			ImportClearance:    incoterm.Clearance(body.ImportClearance),
			YearVersion:        body.YearVersion,
			Notes:              body.Notes,
		},
	}, nil
}

func bindContainerFields(ctx echo.Context) (commands.ContainerFields, error) {
	var body ContainerInput
	if err := bindBody(ctx, &body); err != nil {
		return commands.ContainerFields{}, err
	}

	details := container.Details{
		IsContainer:    body.IsContainer,
		Refrigerated:   body.Refrigerated,
		Type:           container.Type(body.ContainerType),
		Size:           body.Size,
		MaxWeight:      body.MaxWeight,
		Internal:       container.Dimensions(body.Internal),
		External:       container.Dimensions(body.External),
		Volume:         body.Volume,
		ISOCode:        body.ISOCode,
		Compatibility:  container.Compatibility{Ocean: body.OceanCompatible, Air: body.AirCompatible, Land: body.LandCompatible},
		HazmatApproved: body.HazmatApproved,
		FoodGrade:      body.FoodGrade,
		DailyRate:      decimal.Zero,
		Notes:          body.Notes,
	}
	if body.DailyRate.Valid {
		details.DailyRate = body.DailyRate.Decimal
	}
	if body.Currency != "" {
		currency, err := kernel.NewCurrency(body.Currency)
		if err != nil {
			return commands.ContainerFields{}, err
		}
		details.Currency = currency
	}

	return commands.ContainerFields{Code: body.Code, Name: body.Name, Details: details}, nil
}

// bindBody decodes the JSON body. The contract has already been checked, so a
// failure here is a malformed value the schema could not catch.
func bindBody(ctx echo.Context, dst any) error {
	if err := (&echo.DefaultBinder{}).BindBody(ctx, dst); err != nil {
		var httpErr *echo.HTTPError
		if errors.As(err, &httpErr) {
			return errInvalidBody(httpErr.Message)
		}
		return errInvalidBody(err.Error())
	}
	return nil
}
