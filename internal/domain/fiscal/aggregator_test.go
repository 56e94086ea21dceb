package fiscal_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/tallerpro/taller-api/internal/domain/fiscal"
)

// ──────────────────────────────────────────────────────────────────────────────
// Tests de agregación de totales de documento.
// ──────────────────────────────────────────────────────────────────────────────

func TestAggregate_SeparaExentoDeGravado(t *testing.T) {
	lineas := []fiscal.LineAmounts{
		fiscal.ComputeLine(d("1"), d("100"), decimal.Zero, fiscal.Tasa15),
		fiscal.ComputeLine(d("1"), d("200"), decimal.Zero, fiscal.TasaExenta),
		fiscal.ComputeLine(d("1"), d("50"), decimal.Zero, fiscal.Tasa18),
	}

	tot := fiscal.Aggregate(lineas)

	assert.True(t, tot.Gravado.Equal(d("150.00")), "gravado = 100 + 50 (got %s)", tot.Gravado)
	assert.True(t, tot.Exento.Equal(d("200.00")), "got %s", tot.Exento)
	assert.True(t, tot.ISV15.Equal(d("15.00")), "got %s", tot.ISV15)
	assert.True(t, tot.ISV18.Equal(d("9.00")), "got %s", tot.ISV18)
}

// Identidad de agregación: Total == Gravado + Exento + ISV15 + ISV18, exacto.
func TestAggregate_IdentidadDeTotal(t *testing.T) {
	lineas := []fiscal.LineAmounts{
		fiscal.ComputeLine(d("3"), d("33.33"), d("0.01"), fiscal.Tasa15),
		fiscal.ComputeLine(d("7"), d("19.99"), d("5.55"), fiscal.Tasa18),
		fiscal.ComputeLine(d("2"), d("8.70"), decimal.Zero, fiscal.TasaExenta),
		fiscal.ComputeLine(d("1"), d("0.835"), decimal.Zero, fiscal.Tasa15),
	}

	tot := fiscal.Aggregate(lineas)
	suma := tot.Gravado.Add(tot.Exento).Add(tot.ISV15).Add(tot.ISV18)

	assert.True(t, suma.Equal(tot.Total),
		"gravado %s + exento %s + isv15 %s + isv18 %s != total %s",
		tot.Gravado, tot.Exento, tot.ISV15, tot.ISV18, tot.Total)
}

// El orden de las líneas no afecta el resultado (acumulación pura).
func TestAggregate_OrdenIrrelevante(t *testing.T) {
	a := fiscal.ComputeLine(d("3"), d("33.33"), decimal.Zero, fiscal.Tasa15)
	b := fiscal.ComputeLine(d("1"), d("99.99"), d("10"), fiscal.Tasa18)
	c := fiscal.ComputeLine(d("5"), d("4.44"), decimal.Zero, fiscal.TasaExenta)

	t1 := fiscal.Aggregate([]fiscal.LineAmounts{a, b, c})
	t2 := fiscal.Aggregate([]fiscal.LineAmounts{c, a, b})

	assert.True(t, t1.Total.Equal(t2.Total))
	assert.True(t, t1.Gravado.Equal(t2.Gravado))
	assert.True(t, t1.DescuentoTotal.Equal(t2.DescuentoTotal))
}

func TestAggregate_AcumulaDescuentos(t *testing.T) {
	lineas := []fiscal.LineAmounts{
		fiscal.ComputeLine(d("1"), d("100"), d("10"), fiscal.Tasa15),
		fiscal.ComputeLine(d("1"), d("100"), d("5.50"), fiscal.Tasa15),
	}

	tot := fiscal.Aggregate(lineas)
	assert.True(t, tot.DescuentoTotal.Equal(d("15.50")), "got %s", tot.DescuentoTotal)
}

func TestAggregate_SinLineas(t *testing.T) {
	tot := fiscal.Aggregate(nil)

	assert.True(t, tot.Total.IsZero())
	assert.True(t, tot.Gravado.IsZero())
	assert.True(t, tot.Exento.IsZero())
}
