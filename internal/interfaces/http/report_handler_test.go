package http_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Compras-api/internal/application/reports"
	"github.com/jhoicas/Compras-api/internal/domain/repository"
	apphttp "github.com/jhoicas/Compras-api/internal/interfaces/http"
)

// capturingReportRepo captura la ReportQuery que recibe y devuelve cero filas.
type capturingReportRepo struct {
	got repository.ReportQuery
}

func (f *capturingReportRepo) ItemRows(_ context.Context, q repository.ReportQuery) ([]repository.ReportItemRow, error) {
	f.got = q
	return nil, nil
}

func buildReportApp(repo repository.ReportRepository) *fiber.App {
	app := fiber.New()
	handler := apphttp.NewReportHandler(reports.NewUseCase(repo))
	app.Get("/reports/range", handler.Range)
	return app
}

func doReportRequest(t *testing.T, app *fiber.App, target string) *http.Response {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, target, nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

// TestReportRange_OnlyFinalPorDefecto: sin only_final en la query, el reporte
// solo incluye listas finalizadas; los borradores no entran a los totales.
func TestReportRange_OnlyFinalPorDefecto(t *testing.T) {
	repo := &capturingReportRepo{}
	app := buildReportApp(repo)

	resp := doReportRequest(t, app, "/reports/range?start=2025-08-01&end=2025-08-31")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.True(t, repo.got.OnlyFinal, "sin parámetro debe filtrar a solo finalizadas")

	var body map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, true, body["onlyFinal"])
}

// TestReportRange_OnlyFinalFalseExplicito: only_final=false habilita borradores.
func TestReportRange_OnlyFinalFalseExplicito(t *testing.T) {
	repo := &capturingReportRepo{}
	app := buildReportApp(repo)

	resp := doReportRequest(t, app, "/reports/range?start=2025-08-01&end=2025-08-31&only_final=false")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.False(t, repo.got.OnlyFinal)
}

func TestReportRange_FechaInvalida_Retorna400(t *testing.T) {
	app := buildReportApp(&capturingReportRepo{})

	resp := doReportRequest(t, app, "/reports/range?start=agosto&end=2025-08-31")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}
