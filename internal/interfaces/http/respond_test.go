package http_test

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tallerpro/taller-api/internal/application/facturacion"
	"github.com/tallerpro/taller-api/internal/domain/entity"
	apphttp "github.com/tallerpro/taller-api/internal/interfaces/http"
)

// ──────────────────────────────────────────────────────────────────────────────
// Mapeo de errores de dominio a status HTTP, verificado a través de un
// handler real: Validation→400, Conflict→400, NotFound→404, resto→500.
// ──────────────────────────────────────────────────────────────────────────────

// stubCAIRepo repo mínimo para montar el handler sin base de datos.
type stubCAIRepo struct {
	cais map[string]*entity.CAI
	err  error
}

func (r *stubCAIRepo) Create(_ context.Context, c *entity.CAI) error {
	if r.err != nil {
		return r.err
	}
	r.cais[c.ID] = c
	return nil
}

func (r *stubCAIRepo) GetByID(_ context.Context, id string) (*entity.CAI, error) {
	if r.err != nil {
		return nil, r.err
	}
	return r.cais[id], nil
}

func (r *stubCAIRepo) GetByIDForUpdate(ctx context.Context, id string) (*entity.CAI, error) {
	return r.GetByID(ctx, id)
}

func (r *stubCAIRepo) List(_ context.Context) ([]*entity.CAI, error) {
	if r.err != nil {
		return nil, r.err
	}
	out := make([]*entity.CAI, 0, len(r.cais))
	for _, c := range r.cais {
		out = append(out, c)
	}
	return out, nil
}

func (r *stubCAIRepo) UpdateEstado(_ context.Context, id, estado string) error {
	if r.err != nil {
		return r.err
	}
	if c, ok := r.cais[id]; ok {
		c.Estado = estado
	}
	return nil
}

func buildCAIApp(repo *stubCAIRepo) *fiber.App {
	app := fiber.New()
	h := apphttp.NewCAIHandler(facturacion.NewCAIUseCase(repo))
	app.Post("/api/cai", h.Create)
	app.Get("/api/cai", h.List)
	app.Post("/api/cai/:id/anular", h.Cancel)
	return app
}

func doJSON(t *testing.T, app *fiber.App, method, path string) *http.Response {
	t.Helper()
	req := httptest.NewRequest(method, path, nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

// Recurso inexistente → 404 con el código cerrado.
func TestRespondError_NoEncontrado_Retorna404(t *testing.T) {
	app := buildCAIApp(&stubCAIRepo{cais: map[string]*entity.CAI{}})

	resp := doJSON(t, app, http.MethodPost, "/api/cai/no-existe/anular")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "CAI_NO_ENCONTRADO")
}

// Conflicto de estado (el CAI ya está anulado) → 400, no 409: la petición
// se rechaza tal como vino.
func TestRespondError_ConflictoDeEstado_Retorna400(t *testing.T) {
	app := buildCAIApp(&stubCAIRepo{cais: map[string]*entity.CAI{
		"cai-1": {ID: "cai-1", Estado: entity.CAIStatusAnulada},
	}})

	resp := doJSON(t, app, http.MethodPost, "/api/cai/cai-1/anular")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode,
		"los conflictos de estado responden 400")
	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "CAI_NO_ACTIVO")
}

// Entrada inválida → 400.
func TestRespondError_Validacion_Retorna400(t *testing.T) {
	app := buildCAIApp(&stubCAIRepo{cais: map[string]*entity.CAI{}})

	req := httptest.NewRequest(http.MethodPost, "/api/cai", strings.NewReader(`{}`))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "ENTRADA_INVALIDA")
}

// Fallo de infraestructura → 500 con código INTERNAL y sin detalle interno.
func TestRespondError_FalloInterno_Retorna500(t *testing.T) {
	app := buildCAIApp(&stubCAIRepo{err: errors.New("conexión rechazada: 10.0.0.7:5432")})

	resp := doJSON(t, app, http.MethodGet, "/api/cai")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "INTERNAL")
	assert.NotContains(t, string(body), "10.0.0.7",
		"el detalle del fallo interno no debe llegar al cliente")
}
