package http

import (
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Compras-api/internal/application/dto"
	"github.com/jhoicas/Compras-api/internal/application/reports"
)

const reportDateLayout = "2006-01-02"

// ReportHandler maneja el reporte de compras por rango (protegido).
type ReportHandler struct {
	uc *reports.UseCase
}

// NewReportHandler construye el handler.
func NewReportHandler(uc *reports.UseCase) *ReportHandler {
	return &ReportHandler{uc: uc}
}

// Range godoc
// @Summary      Reporte de compras por rango de fechas
// @Description  Agrupa restaurante → categoría (→ líneas en modo detail) más el
// @Description  desglose cronológico. Un rango invertido se corrige, nunca falla.
// @Tags         reports
// @Security     Bearer
// @Produce      json
// @Param        start           query  string  true   "Fecha inicial YYYY-MM-DD"
// @Param        end             query  string  true   "Fecha final YYYY-MM-DD"
// @Param        only_final      query  bool    false  "Solo listas finalizadas"  default(true)
// @Param        mode            query  string  false  "detail | summary"  default(detail)
// @Param        category_ids    query  string  false  "CSV de IDs de categoría"
// @Param        categories      query  string  false  "CSV de nombres de categoría (ignorado si vienen IDs)"
// @Param        product_ids     query  string  false  "CSV de IDs de producto"
// @Param        products        query  string  false  "CSV de nombres de producto (ignorado si vienen IDs)"
// @Success      200  {object}  dto.ReportResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/reports/range [get]
func (h *ReportHandler) Range(c *fiber.Ctx) error {
	start, err := time.Parse(reportDateLayout, c.Query("start"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "start debe ser una fecha YYYY-MM-DD"})
	}
	end, err := time.Parse(reportDateLayout, c.Query("end"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "end debe ser una fecha YYYY-MM-DD"})
	}
	mode := c.Query("mode", dto.ReportModeDetail)
	if mode != dto.ReportModeDetail && mode != dto.ReportModeSummary {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "mode debe ser detail o summary"})
	}

	out, err := h.uc.BuildReport(c.UserContext(), reports.Request{
		OwnerID:   GetUserID(c),
		Start:     start,
		End:       end,
		// Por defecto solo listas finalizadas: los borradores no entran a los
		// totales salvo pedido explícito (only_final=false).
		OnlyFinal: c.QueryBool("only_final", true),
		Mode:      mode,
		Filters: dto.ReportFilters{
			CategoryIDs:   splitCSV(c.Query("category_ids")),
			CategoryNames: splitCSV(c.Query("categories")),
			ProductIDs:    splitCSV(c.Query("product_ids")),
			ProductNames:  splitCSV(c.Query("products")),
		},
	})
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// splitCSV parte un parámetro CSV descartando entradas vacías.
func splitCSV(raw string) []string {
	if raw == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
