package http_test

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apphttp "github.com/jorge052011/crm-distribuidora/internal/interfaces/http"
	pkgjwt "github.com/jorge052011/crm-distribuidora/pkg/jwt"
)

const (
	testJWTSecret = "test-secret-key-for-unit-tests"
	testUserID    = "00000000-0000-0000-0000-000000000001"
	testIssuer    = "crm-distribuidora-test"
	testExpMin    = 60
)

// buildTestApp arma una app Fiber mínima con una ruta protegida por
// AuthMiddleware y, opcionalmente, RequireAdmin.
func buildTestApp(soloAdmin bool) *fiber.App {
	app := fiber.New()
	handlers := []fiber.Handler{apphttp.AuthMiddleware(testJWTSecret)}
	if soloAdmin {
		handlers = append(handlers, apphttp.RequireAdmin())
	}
	handlers = append(handlers, func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"user_id": apphttp.GetUserID(c),
			"rol":     apphttp.GetRol(c),
		})
	})
	app.Get("/protegida", handlers...)
	return app
}

func tokenConRol(t *testing.T, rol string) string {
	t.Helper()
	tok, err := pkgjwt.Generate(testJWTSecret, testUserID, rol, testIssuer, testExpMin)
	require.NoError(t, err)
	return "Bearer " + tok
}

func doRequest(t *testing.T, app *fiber.App, authHeader string) *http.Response {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/protegida", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

// Token válido: pasa el middleware y los claims quedan en locals.
func TestAuthMiddleware_TokenValido(t *testing.T) {
	app := buildTestApp(false)
	resp := doRequest(t, app, tokenConRol(t, "vendedor"))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var body map[string]string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, testUserID, body["user_id"])
	assert.Equal(t, "vendedor", body["rol"])
}

// Sin header Authorization → 401 con cuerpo {"error": ...}.
func TestAuthMiddleware_SinHeader(t *testing.T) {
	app := buildTestApp(false)
	resp := doRequest(t, app, "")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), `"error"`)
}

// Header sin el prefijo Bearer → 401.
func TestAuthMiddleware_FormatoInvalido(t *testing.T) {
	app := buildTestApp(false)
	resp := doRequest(t, app, "Basic abc123")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

// Token corrupto → 401.
func TestAuthMiddleware_TokenInvalido(t *testing.T) {
	app := buildTestApp(false)
	resp := doRequest(t, app, "Bearer token.invalido.aqui")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

// Token expirado → 401.
func TestAuthMiddleware_TokenExpirado(t *testing.T) {
	tok, err := pkgjwt.Generate(testJWTSecret, testUserID, "admin", testIssuer, -1)
	require.NoError(t, err)

	app := buildTestApp(false)
	resp := doRequest(t, app, "Bearer "+tok)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

// Token firmado con otro secret → 401.
func TestAuthMiddleware_SecretIncorrecto(t *testing.T) {
	tok, err := pkgjwt.Generate("otro-secret-distinto", testUserID, "admin", testIssuer, testExpMin)
	require.NoError(t, err)

	app := buildTestApp(false)
	resp := doRequest(t, app, "Bearer "+tok)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

// RequireAdmin: admin pasa, vendedor recibe 403.
func TestRequireAdmin(t *testing.T) {
	app := buildTestApp(true)

	resp := doRequest(t, app, tokenConRol(t, "admin"))
	resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode, "admin debe poder acceder")

	resp = doRequest(t, app, tokenConRol(t, "vendedor"))
	defer resp.Body.Close()
	assert.Equal(t, http.StatusForbidden, resp.StatusCode, "vendedor no debe acceder a rutas admin")
}
