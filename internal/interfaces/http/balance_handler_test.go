package http_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jorge052011/crm-distribuidora/internal/application/dto"
	"github.com/jorge052011/crm-distribuidora/internal/application/usecase"
	"github.com/jorge052011/crm-distribuidora/internal/domain/repository"
	apphttp "github.com/jorge052011/crm-distribuidora/internal/interfaces/http"
)

// repoBalanceFijo devuelve siempre el mismo resumen, suficiente para probar
// el wiring HTTP sin base de datos.
type repoBalanceFijo struct{}

func (r *repoBalanceFijo) VentasResumen(_ context.Context, _, _ time.Time) (repository.VentasResumen, error) {
	return repository.VentasResumen{
		MontoBruto: decimal.RequireFromString("119000"),
		Kilos:      decimal.RequireFromString("250"),
		NumVentas:  10,
	}, nil
}

func (r *repoBalanceFijo) VentasPorCanal(_ context.Context, _, _ time.Time) (map[string]decimal.Decimal, error) {
	return map[string]decimal.Decimal{}, nil
}

func (r *repoBalanceFijo) ImportacionesActivas(_ context.Context, _ time.Time) (repository.ImportacionesResumen, error) {
	return repository.ImportacionesResumen{}, nil
}

func (r *repoBalanceFijo) GastosPorTipo(_ context.Context, _, _ time.Time) (map[string]repository.GastoTipoAgg, error) {
	return map[string]repository.GastoTipoAgg{}, nil
}

// pdfFalso evita depender del generador real en los tests del handler.
type pdfFalso struct{}

func (p *pdfFalso) GenerateBalancePDF(_ *dto.BalanceMensualDTO) ([]byte, error) {
	return []byte("%PDF-1.7 falso"), nil
}

func appBalance(t *testing.T) *fiber.App {
	t.Helper()
	uc := usecase.NewBalanceUseCase(&repoBalanceFijo{})
	h := apphttp.NewBalanceHandler(uc, &pdfFalso{})

	app := fiber.New()
	app.Get("/api/balance/mensual/:anio/:mes", h.Mensual)
	app.Get("/api/balance/mensual/:anio/:mes/pdf", h.MensualPDF)
	app.Get("/api/balance/anual/:anio", h.Anual)
	app.Get("/api/balance/comparativo", h.Comparativo)
	return app
}

func get(t *testing.T, app *fiber.App, url string) *http.Response {
	t.Helper()
	resp, err := app.Test(httptest.NewRequest(http.MethodGet, url, nil), -1)
	require.NoError(t, err)
	return resp
}

func TestBalanceHandler_Mensual(t *testing.T) {
	app := appBalance(t)
	resp := get(t, app, "/api/balance/mensual/2025/7")
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)

	var body struct {
		Periodo struct {
			MesNombre string `json:"mes_nombre"`
		} `json:"periodo"`
		Ingresos struct {
			TotalBruto string `json:"total_bruto"`
			TotalNeto  string `json:"total_neto"`
			IVA        string `json:"iva"`
		} `json:"ingresos"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "Julio", body.Periodo.MesNombre)
	// Los decimales viajan como string para no perder precisión.
	assert.Equal(t, "119000", body.Ingresos.TotalBruto)
	assert.Equal(t, "100000", body.Ingresos.TotalNeto)
	assert.Equal(t, "19000", body.Ingresos.IVA)
}

func TestBalanceHandler_MesInvalido(t *testing.T) {
	app := appBalance(t)

	for _, url := range []string{
		"/api/balance/mensual/2025/13",
		"/api/balance/mensual/2025/0",
		"/api/balance/mensual/2025/julio",
	} {
		resp := get(t, app, url)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode, url)

		var body map[string]string
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
		assert.NotEmpty(t, body["error"], url)
		resp.Body.Close()
	}
}

func TestBalanceHandler_AnioInvalido(t *testing.T) {
	app := appBalance(t)
	resp := get(t, app, "/api/balance/anual/abc")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestBalanceHandler_Anual(t *testing.T) {
	app := appBalance(t)
	resp := get(t, app, "/api/balance/anual/2025")
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)

	var body struct {
		Anio  int                      `json:"anio"`
		Meses []map[string]interface{} `json:"meses"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, 2025, body.Anio)
	assert.Len(t, body.Meses, 12)
}

func TestBalanceHandler_Comparativo(t *testing.T) {
	app := appBalance(t)
	resp := get(t, app, "/api/balance/comparativo?anios=2024,2025")
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)

	var body struct {
		Anios []map[string]interface{} `json:"anios"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Len(t, body.Anios, 2)
}

func TestBalanceHandler_ComparativoSinAnios(t *testing.T) {
	app := appBalance(t)

	for _, url := range []string{
		"/api/balance/comparativo",
		"/api/balance/comparativo?anios=2024,abc",
	} {
		resp := get(t, app, url)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode, url)
		resp.Body.Close()
	}
}

func TestBalanceHandler_MensualPDF(t *testing.T) {
	app := appBalance(t)
	resp := get(t, app, "/api/balance/mensual/2025/7/pdf")
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "application/pdf", resp.Header.Get("Content-Type"))
	assert.Contains(t, resp.Header.Get("Content-Disposition"), "balance_2025_07.pdf")

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.True(t, len(body) > 0)
}
