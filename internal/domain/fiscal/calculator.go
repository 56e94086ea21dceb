// Package fiscal implementa el cálculo fiscal puro de los documentos CAI:
// cálculo de línea (base imponible, ISV, total), agregación de totales de
// documento y formato del correlativo. No tiene efectos secundarios ni
// dependencias de infraestructura; toda la aritmética usa decimal con
// redondeo a 2 decimales half-away-from-zero en el centavo.
package fiscal

import "github.com/shopspring/decimal"

// Tasas de ISV soportadas (Honduras): exento, 15% general, 18% selectivo.
var (
	TasaExenta = decimal.Zero
	Tasa15     = decimal.NewFromInt(15)
	Tasa18     = decimal.NewFromInt(18)

	cien = decimal.NewFromInt(100)
)

// TasaSoportada indica si la tasa (en porcentaje) es una de las tres
// permitidas. Cualquier otra tasa se rechaza antes de calcular.
func TasaSoportada(tasa decimal.Decimal) bool {
	return tasa.Equal(TasaExenta) || tasa.Equal(Tasa15) || tasa.Equal(Tasa18)
}

// LineAmounts es el resultado del cálculo de una línea. Los tres montos
// derivados están redondeados a 2 decimales de forma independiente.
// Invariante: BaseImponible + Impuesto == TotalLinea (exacto, porque ambos
// sumandos ya son cantidades de 2 decimales).
type LineAmounts struct {
	Cantidad       decimal.Decimal
	PrecioUnitario decimal.Decimal
	Descuento      decimal.Decimal
	TasaISV        decimal.Decimal
	BaseImponible  decimal.Decimal
	Impuesto       decimal.Decimal
	TotalLinea     decimal.Decimal
}

// ComputeLine calcula los montos de una línea:
//
//	bruto   = cantidad × precio
//	base    = max(bruto − descuento, 0)
//	isv     = base × tasa/100
//	total   = base + isv
//
// Cada salida se redondea a 2 decimales (half-away-from-zero). La función es
// determinista y total sobre su dominio: la validación de cantidad, precio y
// tasa ocurre aguas arriba.
func ComputeLine(cantidad, precioUnitario, descuento, tasaISV decimal.Decimal) LineAmounts {
	bruto := cantidad.Mul(precioUnitario)
	base := bruto.Sub(descuento)
	if base.IsNegative() {
		base = decimal.Zero
	}
	base = base.Round(2)

	impuesto := decimal.Zero
	if !tasaISV.IsZero() {
		impuesto = base.Mul(tasaISV).Div(cien).Round(2)
	}

	return LineAmounts{
		Cantidad:       cantidad,
		PrecioUnitario: precioUnitario,
		Descuento:      descuento,
		TasaISV:        tasaISV,
		BaseImponible:  base,
		Impuesto:       impuesto,
		TotalLinea:     base.Add(impuesto).Round(2),
	}
}
