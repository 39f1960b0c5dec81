package http

import (
	"time"

	openapi_types "github.com/oapi-codegen/runtime/types"
	"github.com/shopspring/decimal"
)

// Wire models of openapi.yaml. Money travels as decimal strings.

type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

type Action struct {
	Model    string             `json:"model"`
	ID       openapi_types.UUID `json:"id"`
	ViewMode string             `json:"view_mode"`
	Target   string             `json:"target"`
}

type ConversionResult struct {
	OK     bool    `json:"ok"`
	Action *Action `json:"action,omitempty"`
}

type Created struct {
	ID openapi_types.UUID `json:"id"`
}

type ShipmentStatus struct {
	Status string `json:"status"`
}

type RegistryRecord struct {
	ID          openapi_types.UUID `json:"id"`
	Code        string             `json:"code"`
	Name        string             `json:"name"`
	DisplayName string             `json:"display_name"`
	Active      bool               `json:"active"`
}

type PortInput struct {
	Code      string   `json:"code"`
	Name      string   `json:"name"`
	Country   string   `json:"country"`
	State     string   `json:"state"`
	Air       bool     `json:"air"`
	Ocean     bool     `json:"ocean"`
	Land      bool     `json:"land"`
	Timezone  string   `json:"timezone"`
	Latitude  *float64 `json:"latitude"`
	Longitude *float64 `json:"longitude"`
	Notes     string   `json:"notes"`
}

type VesselInput struct {
	Code         string  `json:"code"`
	Name         string  `json:"name"`
	Country      string  `json:"country"`
	GlobalZone   string  `json:"global_zone"`
	VesselType   string  `json:"vessel_type"`
	IMO          string  `json:"imo"`
	MMSI         string  `json:"mmsi"`
	CallSign     string  `json:"call_sign"`
	GrossTonnage float64 `json:"gross_tonnage"`
	NetTonnage   float64 `json:"net_tonnage"`
	Deadweight   float64 `json:"deadweight"`
	TEUCapacity  int     `json:"teu_capacity"`
	Length       float64 `json:"length"`
	Beam         float64 `json:"beam"`
	Draft        float64 `json:"draft"`
	Owner        string  `json:"owner"`
	Operator     string  `json:"operator"`
	Notes        string  `json:"notes"`
}

type AirlineInput struct {
	Code                 string `json:"code"`
	Name                 string `json:"name"`
	Country              string `json:"country"`
	IATA                 string `json:"iata"`
	ICAO                 string `json:"icao"`
	AirlineType          string `json:"airline_type"`
	Website              string `json:"website"`
	Phone                string `json:"phone"`
	Email                string `json:"email"`
	FleetSize            int    `json:"fleet_size"`
	CargoFleetSize       int    `json:"cargo_fleet_size"`
	DomesticService      bool   `json:"domestic_service"`
	InternationalService bool   `json:"international_service"`
	Notes                string `json:"notes"`
}

type IncotermInput struct {
	Code               string `json:"code"`
	Name               string `json:"name"`
	Group              string `json:"group"`
	TransportMode      string `json:"transport_mode"`
	RiskTransferPoint  string `json:"risk_transfer_point"`
	CostResponsibility string `json:"cost_responsibility"`
	InsuranceRequired  bool   `json:"insurance_required"`
	ExportClearance    string `json:"export_clearance"`
	ImportClearance    string `json:"import_clearance"`
	YearVersion        string `json:"year_version"`
	Notes              string `json:"notes"`
}

type Dimensions struct {
	Length float64 `json:"length"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

type ContainerInput struct {
	Code            string              `json:"code"`
	Name            string              `json:"name"`
	IsContainer     bool                `json:"is_container"`
	Refrigerated    bool                `json:"refrigerated"`
	ContainerType   string              `json:"container_type"`
	Size            float64             `json:"size"`
	MaxWeight       float64             `json:"max_weight"`
	Internal        Dimensions          `json:"internal"`
	External        Dimensions          `json:"external"`
	Volume          float64             `json:"volume"`
	ISOCode         string              `json:"iso_code"`
	OceanCompatible bool                `json:"ocean_compatible"`
	AirCompatible   bool                `json:"air_compatible"`
	LandCompatible  bool                `json:"land_compatible"`
	HazmatApproved  bool                `json:"hazmat_approved"`
	FoodGrade       bool                `json:"food_grade"`
	DailyRate       decimal.NullDecimal `json:"daily_rate"`
	Currency        string              `json:"currency"`
	Notes           string              `json:"notes"`
}

type CostLineInput struct {
	Sequence    int                 `json:"sequence"`
	CostType    string              `json:"cost_type"`
	Category    string              `json:"category"`
	Description string              `json:"description"`
	Partner     string              `json:"partner"`
	Quantity    decimal.NullDecimal `json:"quantity"`
	UnitPrice   decimal.Decimal     `json:"unit_price"`
}

// CostLineChanges is a partial update: absent members keep their value.
type CostLineChanges struct {
	Quantity    decimal.NullDecimal `json:"quantity"`
	UnitPrice   decimal.NullDecimal `json:"unit_price"`
	Description *string             `json:"description"`
	Partner     *string             `json:"partner"`
}

type InvoiceLink struct {
	InvoiceLineRef string `json:"invoice_line_ref"`
}

type CostLine struct {
	ID             openapi_types.UUID `json:"id"`
	Sequence       int                `json:"sequence"`
	CostType       string             `json:"cost_type"`
	Category       string             `json:"category"`
	Description    string             `json:"description"`
	Partner        string             `json:"partner,omitempty"`
	Quantity       decimal.Decimal    `json:"quantity"`
	UnitPrice      decimal.Decimal    `json:"unit_price"`
	Amount         decimal.Decimal    `json:"amount"`
	InvoiceLineRef string             `json:"invoice_line_ref,omitempty"`
	Invoiced       bool               `json:"invoiced"`
}

type PortSummary struct {
	ID          openapi_types.UUID `json:"id"`
	DisplayName string             `json:"display_name"`
}

type QuotationInput struct {
	Customer          string              `json:"customer"`
	OriginPortID      openapi_types.UUID  `json:"origin_port_id"`
	DestinationPortID openapi_types.UUID  `json:"destination_port_id"`
	TransportMode     string              `json:"transport_mode"`
	Direction         string              `json:"direction"`
	ServiceType       string              `json:"service_type"`
	CargoDescription  string              `json:"cargo_description"`
	EstimatedWeight   float64             `json:"estimated_weight"`
	EstimatedVolume   float64             `json:"estimated_volume"`
	QuotationDate     *openapi_types.Date `json:"quotation_date"`
	ValidityDate      *openapi_types.Date `json:"validity_date"`
	Currency          string              `json:"currency"`
	Conditions        string              `json:"conditions"`
	InternalNotes     string              `json:"internal_notes"`
}

type Quotation struct {
	ID               openapi_types.UUID `json:"id"`
	Reference        string             `json:"reference"`
	Status           string             `json:"status"`
	Customer         string             `json:"customer"`
	Origin           PortSummary        `json:"origin"`
	Destination      PortSummary        `json:"destination"`
	TransportMode    string             `json:"transport_mode"`
	Direction        string             `json:"direction,omitempty"`
	ServiceType      string             `json:"service_type,omitempty"`
	CargoDescription string             `json:"cargo_description,omitempty"`
	EstimatedWeight  float64            `json:"estimated_weight"`
	EstimatedVolume  float64            `json:"estimated_volume"`
	QuotationDate    openapi_types.Date `json:"quotation_date"`
	ValidityDate     openapi_types.Date `json:"validity_date"`
	Currency         string             `json:"currency"`
	Conditions       string             `json:"conditions,omitempty"`
	InternalNotes    string             `json:"internal_notes,omitempty"`
	TotalAmount      decimal.Decimal    `json:"total_amount"`
	CostLines        []CostLine         `json:"cost_lines"`
	SaleOrder        *Action            `json:"sale_order,omitempty"`
	Shipment         *Action            `json:"shipment,omitempty"`
}

type RouteInput struct {
	OriginPortID      openapi_types.UUID `json:"origin_port_id"`
	DestinationPortID openapi_types.UUID `json:"destination_port_id"`
	TransportMode     string             `json:"transport_mode"`
}

type ShipmentInput struct {
	Customer            string               `json:"customer"`
	Shipper             string               `json:"shipper"`
	Consignee           string               `json:"consignee"`
	NotifyParty         string               `json:"notify_party"`
	OriginPortID        openapi_types.UUID   `json:"origin_port_id"`
	DestinationPortID   openapi_types.UUID   `json:"destination_port_id"`
	TransportMode       string               `json:"transport_mode"`
	Direction           string               `json:"direction"`
	ServiceType         string               `json:"service_type"`
	IncotermID          *openapi_types.UUID  `json:"incoterm_id"`
	CargoDescription    string               `json:"cargo_description"`
	TotalWeight         float64              `json:"total_weight"`
	TotalVolume         float64              `json:"total_volume"`
	Packages            int                  `json:"packages"`
	ContainerIDs        []openapi_types.UUID `json:"container_ids"`
	AirlineID           *openapi_types.UUID  `json:"airline_id"`
	VesselID            *openapi_types.UUID  `json:"vessel_id"`
	VoyageFlightNumber  string               `json:"voyage_flight_number"`
	EstimatedDeparture  *time.Time           `json:"estimated_departure"`
	EstimatedArrival    *time.Time           `json:"estimated_arrival"`
	Currency            string               `json:"currency"`
	SpecialInstructions string               `json:"special_instructions"`
	InternalNotes       string               `json:"internal_notes"`
}

type Shipment struct {
	ID                  openapi_types.UUID   `json:"id"`
	Reference           string               `json:"reference"`
	Status              string               `json:"status"`
	Customer            string               `json:"customer"`
	Shipper             string               `json:"shipper,omitempty"`
	Consignee           string               `json:"consignee,omitempty"`
	NotifyParty         string               `json:"notify_party,omitempty"`
	Origin              PortSummary          `json:"origin"`
	Destination         PortSummary          `json:"destination"`
	TransportMode       string               `json:"transport_mode"`
	Direction           string               `json:"direction,omitempty"`
	ServiceType         string               `json:"service_type,omitempty"`
	IncotermID          *openapi_types.UUID  `json:"incoterm_id,omitempty"`
	CargoDescription    string               `json:"cargo_description"`
	TotalWeight         float64              `json:"total_weight"`
	TotalVolume         float64              `json:"total_volume"`
	Packages            int                  `json:"packages"`
	ContainerIDs        []openapi_types.UUID `json:"container_ids,omitempty"`
	AirlineID           *openapi_types.UUID  `json:"airline_id,omitempty"`
	VesselID            *openapi_types.UUID  `json:"vessel_id,omitempty"`
	VoyageFlightNumber  string               `json:"voyage_flight_number,omitempty"`
	BookingDate         time.Time            `json:"booking_date"`
	EstimatedDeparture  *time.Time           `json:"estimated_departure,omitempty"`
	EstimatedArrival    *time.Time           `json:"estimated_arrival,omitempty"`
	ActualDeparture     *time.Time           `json:"actual_departure,omitempty"`
	ActualArrival       *time.Time           `json:"actual_arrival,omitempty"`
	DeliveryDate        *time.Time           `json:"delivery_date,omitempty"`
	DaysInTransit       int                  `json:"days_in_transit"`
	Currency            string               `json:"currency"`
	SpecialInstructions string               `json:"special_instructions,omitempty"`
	InternalNotes       string               `json:"internal_notes,omitempty"`
	TotalSellCost       decimal.Decimal      `json:"total_sell_cost"`
	TotalBuyCost        decimal.Decimal      `json:"total_buy_cost"`
	ProfitMargin        decimal.Decimal      `json:"profit_margin"`
	Active              bool                 `json:"active"`
	CostLines           []CostLine           `json:"cost_lines"`
}

type SaleOrderLine struct {
	Product     string          `json:"product"`
	Description string          `json:"description"`
	Quantity    decimal.Decimal `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
	Subtotal    decimal.Decimal `json:"subtotal"`
}

type SaleOrder struct {
	ID        openapi_types.UUID `json:"id"`
	Reference string             `json:"reference"`
	Customer  string             `json:"customer"`
	Currency  string             `json:"currency"`
	Total     decimal.Decimal    `json:"total"`
	CreatedAt time.Time          `json:"created_at"`
	Lines     []SaleOrderLine    `json:"lines"`
	Quotation Action             `json:"quotation"`
}
