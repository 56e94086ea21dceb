package facturacion_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tallerpro/taller-api/internal/application/dto"
	"github.com/tallerpro/taller-api/internal/application/facturacion"
	"github.com/tallerpro/taller-api/internal/domain"
	"github.com/tallerpro/taller-api/internal/domain/entity"
)

func setupVoid(t *testing.T) (*fakeStore, *facturacion.IssueDocumentUseCase, *facturacion.VoidDocumentUseCase) {
	t.Helper()
	s, issue := setupIssue(t)
	void := facturacion.NewVoidDocumentUseCase(&fakeTxRunner{s: s}, &fakeDocRepo{s: s})
	return s, issue, void
}

// Escenario: factura de 3 unidades de un producto, luego anulación. El stock
// vuelve al valor inicial con un único movimiento IN compensatorio y el
// documento conserva su secuencia.
func TestVoid_ReponeStockYConservaSecuencia(t *testing.T) {
	s, issue, void := setupVoid(t)
	seedCAI(s, "cai-1", 1, 100)
	seedProducto(s, "prod-1", "Pastillas de freno", d("450"), d("15"), d("10"))

	emitido, err := issue.Issue(context.Background(), testUserID, baseRequest("cai-1",
		dto.DocumentItemRequest{ProductoID: "prod-1", Cantidad: d("3")},
	))
	require.NoError(t, err)
	require.True(t, s.products["prod-1"].Stock.Equal(d("7")))

	anulado, err := void.Void(context.Background(), testUserID, emitido.ID)
	require.NoError(t, err)

	assert.Equal(t, entity.DocumentStatusAnulada, anulado.Estado)
	assert.Equal(t, emitido.Secuencia, anulado.Secuencia, "la secuencia no se libera")
	assert.Equal(t, emitido.Correlativo, anulado.Correlativo)
	assert.True(t, s.products["prod-1"].Stock.Equal(d("10")), "stock repuesto = %s", s.products["prod-1"].Stock)

	var ins int
	for _, m := range s.movements {
		if m.Tipo == entity.MovementTypeIN {
			ins++
			assert.Equal(t, emitido.ID, m.DocumentID)
			assert.True(t, m.Cantidad.Equal(d("3")))
		}
	}
	assert.Equal(t, 1, ins, "exactamente un IN compensatorio")
}

// Anular un documento sin líneas de inventario no genera movimientos.
func TestVoid_DocumentoSinInventario(t *testing.T) {
	s, issue, void := setupVoid(t)
	seedCAI(s, "cai-1", 1, 100)

	emitido, err := issue.Issue(context.Background(), testUserID, baseRequest("cai-1",
		dto.DocumentItemRequest{Descripcion: "Diagnóstico", Cantidad: d("1"), PrecioUnitario: dp("500")},
	))
	require.NoError(t, err)

	anulado, err := void.Void(context.Background(), testUserID, emitido.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.DocumentStatusAnulada, anulado.Estado)
	assert.Empty(t, s.movements)
}

// Escenario: segunda anulación del mismo documento. Falla con
// DOCUMENTO_YA_ANULADO y no duplica la reposición de stock.
func TestVoid_YaAnulado(t *testing.T) {
	s, issue, void := setupVoid(t)
	seedCAI(s, "cai-1", 1, 100)
	seedProducto(s, "prod-1", "Bujía", d("120"), d("15"), d("20"))

	emitido, err := issue.Issue(context.Background(), testUserID, baseRequest("cai-1",
		dto.DocumentItemRequest{ProductoID: "prod-1", Cantidad: d("4")},
	))
	require.NoError(t, err)

	_, err = void.Void(context.Background(), testUserID, emitido.ID)
	require.NoError(t, err)
	require.True(t, s.products["prod-1"].Stock.Equal(d("20")))

	_, err = void.Void(context.Background(), testUserID, emitido.ID)
	assert.ErrorIs(t, err, domain.ErrDocumentoYaAnulado)
	assert.True(t, s.products["prod-1"].Stock.Equal(d("20")), "el stock no se repone dos veces")
	assert.Len(t, s.movements, 2, "un OUT de la venta y un único IN de la anulación")
}

func TestVoid_NoEncontrado(t *testing.T) {
	_, _, void := setupVoid(t)
	_, err := void.Void(context.Background(), testUserID, "no-existe")
	assert.ErrorIs(t, err, domain.ErrDocumentoNoEncontrado)
}

// La anulación no reabre el rango: un CAI agotado sigue agotado aunque se
// anule el documento que consumió la última secuencia.
func TestVoid_NoReabreRangoAgotado(t *testing.T) {
	s, issue, void := setupVoid(t)
	seedCAI(s, "cai-1", 1, 1)

	emitido, err := issue.Issue(context.Background(), testUserID, baseRequest("cai-1",
		dto.DocumentItemRequest{Descripcion: "x", Cantidad: d("1"), PrecioUnitario: dp("10")},
	))
	require.NoError(t, err)
	require.Equal(t, entity.CAIStatusAgotada, s.cais["cai-1"].Estado)

	_, err = void.Void(context.Background(), testUserID, emitido.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.CAIStatusAgotada, s.cais["cai-1"].Estado)
}
