package fiscal_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tallerpro/taller-api/internal/domain/fiscal"
)

// ──────────────────────────────────────────────────────────────────────────────
// Tests del cálculo de línea. Este es el "canario en la mina" de la
// facturación: si alguien cambia la fórmula, el redondeo o el orden de las
// operaciones, estos vectores fallan de inmediato.
// ──────────────────────────────────────────────────────────────────────────────

func d(s string) decimal.Decimal {
	v, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return v
}

// Escenario de referencia: 2 × 100 al 15% sin descuento.
func TestComputeLine_VectorBasico15(t *testing.T) {
	l := fiscal.ComputeLine(d("2"), d("100"), decimal.Zero, fiscal.Tasa15)

	assert.True(t, l.BaseImponible.Equal(d("200.00")), "base = %s", l.BaseImponible)
	assert.True(t, l.Impuesto.Equal(d("30.00")), "isv = %s", l.Impuesto)
	assert.True(t, l.TotalLinea.Equal(d("230.00")), "total = %s", l.TotalLinea)
}

func TestComputeLine_Tasa18(t *testing.T) {
	l := fiscal.ComputeLine(d("1"), d("1000"), decimal.Zero, fiscal.Tasa18)

	assert.True(t, l.BaseImponible.Equal(d("1000.00")))
	assert.True(t, l.Impuesto.Equal(d("180.00")))
	assert.True(t, l.TotalLinea.Equal(d("1180.00")))
}

// Tasa 0: el impuesto es exactamente cero y el total es la base.
func TestComputeLine_TasaExenta(t *testing.T) {
	l := fiscal.ComputeLine(d("3"), d("75.50"), decimal.Zero, fiscal.TasaExenta)

	assert.True(t, l.Impuesto.IsZero(), "una línea exenta no genera ISV")
	assert.True(t, l.TotalLinea.Equal(l.BaseImponible))
}

// El descuento se resta antes de aplicar el impuesto.
func TestComputeLine_DescuentoReduceBase(t *testing.T) {
	l := fiscal.ComputeLine(d("2"), d("100"), d("50"), fiscal.Tasa15)

	assert.True(t, l.BaseImponible.Equal(d("150.00")))
	assert.True(t, l.Impuesto.Equal(d("22.50")))
	assert.True(t, l.TotalLinea.Equal(d("172.50")))
}

// Un descuento mayor que el bruto no produce base negativa: se trunca a cero.
func TestComputeLine_DescuentoMayorQueBruto(t *testing.T) {
	l := fiscal.ComputeLine(d("1"), d("100"), d("500"), fiscal.Tasa15)

	assert.True(t, l.BaseImponible.IsZero())
	assert.True(t, l.Impuesto.IsZero())
	assert.True(t, l.TotalLinea.IsZero())
}

// Redondeo half-away-from-zero en el centavo: 0.125 → 0.13.
func TestComputeLine_RedondeoMitadHaciaArriba(t *testing.T) {
	// base = 0.835; 0.835 × 15% = 0.12525 → 0.13
	l := fiscal.ComputeLine(d("1"), d("0.835"), decimal.Zero, fiscal.Tasa15)

	require.True(t, l.BaseImponible.Equal(d("0.84")), "0.835 redondea a 0.84, no 0.83 (got %s)", l.BaseImponible)
	// impuesto sobre la base ya redondeada: 0.84 × 0.15 = 0.126 → 0.13
	assert.True(t, l.Impuesto.Equal(d("0.13")), "got %s", l.Impuesto)
}

// Cierre de redondeo: para cualquier línea, base + isv == total exacto.
func TestComputeLine_CierreDeRedondeo(t *testing.T) {
	casos := []struct {
		cantidad, precio, descuento string
		tasa                        decimal.Decimal
	}{
		{"1", "0.01", "0", fiscal.Tasa15},
		{"3", "33.33", "0.01", fiscal.Tasa15},
		{"7", "19.99", "5.55", fiscal.Tasa18},
		{"2.5", "10.333", "0", fiscal.Tasa15},
		{"100", "1.005", "0", fiscal.Tasa18},
		{"6", "8.777", "3.33", fiscal.TasaExenta},
	}
	for _, c := range casos {
		l := fiscal.ComputeLine(d(c.cantidad), d(c.precio), d(c.descuento), c.tasa)
		suma := l.BaseImponible.Add(l.Impuesto)
		assert.True(t, suma.Equal(l.TotalLinea),
			"base %s + isv %s != total %s (qty=%s price=%s)",
			l.BaseImponible, l.Impuesto, l.TotalLinea, c.cantidad, c.precio)
	}
}

// Determinismo: mismos insumos, mismo resultado, siempre.
func TestComputeLine_Determinista(t *testing.T) {
	a := fiscal.ComputeLine(d("4"), d("123.456"), d("7.89"), fiscal.Tasa18)
	b := fiscal.ComputeLine(d("4"), d("123.456"), d("7.89"), fiscal.Tasa18)

	assert.True(t, a.BaseImponible.Equal(b.BaseImponible))
	assert.True(t, a.Impuesto.Equal(b.Impuesto))
	assert.True(t, a.TotalLinea.Equal(b.TotalLinea))
}

// ── TasaSoportada ─────────────────────────────────────────────────────────────

func TestTasaSoportada(t *testing.T) {
	assert.True(t, fiscal.TasaSoportada(decimal.Zero))
	assert.True(t, fiscal.TasaSoportada(d("15")))
	assert.True(t, fiscal.TasaSoportada(d("18")))

	assert.False(t, fiscal.TasaSoportada(d("12")))
	assert.False(t, fiscal.TasaSoportada(d("0.15")), "la tasa es porcentaje, no fracción")
	assert.False(t, fiscal.TasaSoportada(d("-15")))
}
