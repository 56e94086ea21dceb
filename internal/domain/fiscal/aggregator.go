package fiscal

import "github.com/shopspring/decimal"

// DocumentTotals agrega los montos de documento a partir de líneas ya
// calculadas. Política de redondeo: se suman los valores por línea ya
// redondeados (cada acumulador es suma de cantidades de 2 decimales), de modo
// que la identidad Total == Gravado + Exento + ISV15 + ISV18 se cumple de
// forma exacta.
type DocumentTotals struct {
	Gravado        decimal.Decimal // bases imponibles con tasa 15 o 18
	Exento         decimal.Decimal // bases con tasa 0
	ISV15          decimal.Decimal
	ISV18          decimal.Decimal
	DescuentoTotal decimal.Decimal
	Total          decimal.Decimal
}

// Aggregate acumula las líneas en los totales del documento. El orden de las
// líneas no afecta el resultado (acumulación pura).
func Aggregate(lineas []LineAmounts) DocumentTotals {
	var t DocumentTotals
	t.Gravado = decimal.Zero
	t.Exento = decimal.Zero
	t.ISV15 = decimal.Zero
	t.ISV18 = decimal.Zero
	t.DescuentoTotal = decimal.Zero

	for _, l := range lineas {
		switch {
		case l.TasaISV.IsZero():
			t.Exento = t.Exento.Add(l.BaseImponible)
		case l.TasaISV.Equal(Tasa15):
			t.Gravado = t.Gravado.Add(l.BaseImponible)
			t.ISV15 = t.ISV15.Add(l.Impuesto)
		case l.TasaISV.Equal(Tasa18):
			t.Gravado = t.Gravado.Add(l.BaseImponible)
			t.ISV18 = t.ISV18.Add(l.Impuesto)
		}
		t.DescuentoTotal = t.DescuentoTotal.Add(l.Descuento)
	}

	t.Total = t.Gravado.Add(t.Exento).Add(t.ISV15).Add(t.ISV18)
	return t
}
