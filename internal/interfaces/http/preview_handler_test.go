package http_test

import (
	"encoding/json"
	"io"
	nethttp "net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/factulink/internal/application/dto"
	"github.com/jhoicas/factulink/internal/application/sharing"
	apphttp "github.com/jhoicas/factulink/internal/interfaces/http"
)

func newTestApp() *fiber.App {
	app := fiber.New()
	apphttp.Router(app, apphttp.RouterDeps{
		PreviewUC: sharing.NewPreviewUseCase(),
	})
	return app
}

func doGet(t *testing.T, app *fiber.App, path string) (*nethttp.Response, string) {
	t.Helper()
	req := httptest.NewRequest(nethttp.MethodGet, path, nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	resp.Body.Close()
	return resp, string(body)
}

const validOG = "a1b2c3d4_1250.00_USDC_arb_Acme_1231"

// ──────────────────────────────────────────────────────────────────────────────
// GET /pay
// ──────────────────────────────────────────────────────────────────────────────

func TestPay_ConOGValido(t *testing.T) {
	app := newTestApp()

	resp, body := doGet(t, app, "/pay?og="+url.QueryEscape(validOG))
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Contains(t, resp.Header.Get("Content-Type"), "text/html")

	assert.Contains(t, body, "1250.00 USDC", "el título OG lleva monto y moneda")
	assert.Contains(t, body, "a1b2c3d4")
	assert.Contains(t, body, "De Acme")
	assert.Contains(t, body, "vence 12/31")
	assert.Contains(t, body, `property="og:title"`)
}

func TestPay_SinOGDegradaAGenerico(t *testing.T) {
	app := newTestApp()

	resp, body := doGet(t, app, "/pay")
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Contains(t, body, "FactuLink")
}

func TestPay_OGMalformadoNuncaEs500(t *testing.T) {
	app := newTestApp()

	resp, body := doGet(t, app, "/pay?og=basura")
	assert.Equal(t, fiber.StatusOK, resp.StatusCode,
		"un ?og= roto degrada a la vista genérica: el enlace sigue sirviendo")
	assert.Contains(t, body, "FactuLink")
	assert.NotContains(t, body, "basura")
}

// ──────────────────────────────────────────────────────────────────────────────
// GET /api/preview
// ──────────────────────────────────────────────────────────────────────────────

func TestPreview_JSON(t *testing.T) {
	app := newTestApp()

	resp, body := doGet(t, app, "/api/preview?og="+url.QueryEscape(validOG))
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var got dto.PreviewResponse
	require.NoError(t, json.Unmarshal([]byte(body), &got))
	assert.Equal(t, "a1b2c3d4", got.ID)
	assert.Equal(t, "1250.00", got.Amount)
	assert.Equal(t, "USDC", got.Currency)
	assert.Equal(t, "arb", got.Network)
	assert.Equal(t, "Acme", got.From)
	assert.Equal(t, "1231", got.Due)
}

func TestPreview_SinParametro(t *testing.T) {
	app := newTestApp()

	resp, body := doGet(t, app, "/api/preview")
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

	var errResp dto.ErrorResponse
	require.NoError(t, json.Unmarshal([]byte(body), &errResp))
	assert.Equal(t, "VALIDATION", errResp.Code)
}

func TestPreview_OGInvalido(t *testing.T) {
	app := newTestApp()

	resp, body := doGet(t, app, "/api/preview?og=a_b")
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

	var errResp dto.ErrorResponse
	require.NoError(t, json.Unmarshal([]byte(body), &errResp))
	assert.Equal(t, "INVALID_OG", errResp.Code)
	assert.Contains(t, errResp.Message, "Invalid OG preview format")
}

// ──────────────────────────────────────────────────────────────────────────────
// GET /api/networks
// ──────────────────────────────────────────────────────────────────────────────

func TestNetworks_Lista(t *testing.T) {
	app := newTestApp()

	resp, body := doGet(t, app, "/api/networks")
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var got []dto.NetworkResponse
	require.NoError(t, json.Unmarshal([]byte(body), &got))
	require.Len(t, got, 4)

	codes := make(map[uint64]string, len(got))
	for _, n := range got {
		codes[n.ChainID] = n.Code
	}
	assert.Equal(t, "eth", codes[1])
	assert.Equal(t, "arb", codes[42161])
}

func TestNetworks_Resolver(t *testing.T) {
	app := newTestApp()

	resp, body := doGet(t, app, "/api/networks/ARB")
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var got dto.NetworkResponse
	require.NoError(t, json.Unmarshal([]byte(body), &got))
	assert.Equal(t, uint64(42161), got.ChainID)
	assert.Equal(t, "arb", got.Code)
}

func TestNetworks_CodigoDesconocido(t *testing.T) {
	app := newTestApp()

	resp, _ := doGet(t, app, "/api/networks/solana")
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}
