package http_test

import (
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yacinebrahmi/gestock-api/internal/domain/habilitation"
	apphttp "github.com/yacinebrahmi/gestock-api/internal/interfaces/http"
	"github.com/yacinebrahmi/gestock-api/pkg/jwt"
)

const secretDeTest = "secret-de-test-au-moins-32-caracteres"

// appDeTest monte une route /stocks protégée par la chaîne complète
// AuthMiddleware + RequireService, comme dans le routeur réel.
func appDeTest(t *testing.T) *fiber.App {
	t.Helper()
	app := fiber.New()
	registre := habilitation.NewRegistre()
	app.Get("/stocks",
		apphttp.AuthMiddleware(secretDeTest),
		apphttp.RequireService("stocks", registre),
		func(c *fiber.Ctx) error {
			return c.JSON(fiber.Map{"matricule": apphttp.GetMatricule(c)})
		},
	)
	return app
}

func jetonDeTest(t *testing.T, service string) string {
	t.Helper()
	token, err := jwt.Generate(secretDeTest, "u-1", "ADJ-1027", service, "gestionnaire", "gestock-api", 15)
	require.NoError(t, err)
	return token
}

func TestAuthMiddleware_SansJeton(t *testing.T) {
	app := appDeTest(t)

	req := httptest.NewRequest("GET", "/stocks", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestAuthMiddleware_FormatInvalide(t *testing.T) {
	app := appDeTest(t)

	req := httptest.NewRequest("GET", "/stocks", nil)
	req.Header.Set("Authorization", "Basic abc123")
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestAuthMiddleware_JetonCorrompu(t *testing.T) {
	app := appDeTest(t)

	req := httptest.NewRequest("GET", "/stocks", nil)
	req.Header.Set("Authorization", "Bearer pas.un.jeton")
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestRequireService_ServiceHabilite(t *testing.T) {
	app := appDeTest(t)

	req := httptest.NewRequest("GET", "/stocks", nil)
	req.Header.Set("Authorization", "Bearer "+jetonDeTest(t, habilitation.ServiceLogistique))
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}

func TestRequireService_ServiceNonHabilite(t *testing.T) {
	app := appDeTest(t)

	// Le service RH n'a pas accès à la table stocks.
	req := httptest.NewRequest("GET", "/stocks", nil)
	req.Header.Set("Authorization", "Bearer "+jetonDeTest(t, habilitation.ServiceRH))
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)
}

func TestRequireService_SansAuthMiddleware(t *testing.T) {
	app := fiber.New()
	registre := habilitation.NewRegistre()
	app.Get("/orphelin",
		apphttp.RequireService("stocks", registre),
		func(c *fiber.Ctx) error { return c.SendStatus(fiber.StatusOK) },
	)

	resp, err := app.Test(httptest.NewRequest("GET", "/orphelin", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}
