package dto

import "github.com/shopspring/decimal"

// Modos de reporte.
const (
	ReportModeDetail  = "detail"  // incluye líneas por categoría
	ReportModeSummary = "summary" // solo totales
)

// ReportFilters filtros opcionales por dimensión. Si para una misma dimensión
// vienen IDs y nombres, los IDs tienen precedencia y los nombres se ignoran.
type ReportFilters struct {
	CategoryIDs   []string `json:"category_ids"`
	CategoryNames []string `json:"category_names"`
	ProductIDs    []string `json:"product_ids"`
	ProductNames  []string `json:"product_names"`
}

// ReportLine línea de detalle dentro de una categoría (modo detail).
type ReportLine struct {
	Date           string           `json:"date"`
	Product        string           `json:"product"`
	Unit           string           `json:"unit"`
	Qty            decimal.Decimal  `json:"qty"`
	Price          *decimal.Decimal `json:"price"`
	Subtotal       decimal.Decimal  `json:"subtotal"`
	UnitIsCurrency bool             `json:"unitIsCurrency"`
}

// ReportCategory grupo por categoría dentro de un restaurante.
type ReportCategory struct {
	Category string          `json:"category"`
	Total    decimal.Decimal `json:"total"`
	Lines    []ReportLine    `json:"lines,omitempty"`
}

// ReportRestaurant grupo por restaurante.
type ReportRestaurant struct {
	Restaurant string           `json:"restaurant"`
	Total      decimal.Decimal  `json:"total"`
	Categories []ReportCategory `json:"categories"`
}

// ReportDate desglose cronológico por fecha de creación de lista.
type ReportDate struct {
	Date  string          `json:"date"`
	Lists int             `json:"lists"`
	Total decimal.Decimal `json:"total"`
}

// ReportResponse reporte completo del rango.
type ReportResponse struct {
	Mode        string             `json:"mode"`
	Start       string             `json:"start"`
	End         string             `json:"end"`
	OnlyFinal   bool               `json:"onlyFinal"`
	GrandTotal  decimal.Decimal    `json:"grandTotal"`
	Restaurants []ReportRestaurant `json:"restaurants"`
	Dates       []ReportDate       `json:"dates"`
}
