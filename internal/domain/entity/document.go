package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados de un documento fiscal.
const (
	DocumentStatusEmitida = "EMITIDA"
	DocumentStatusAnulada = "ANULADA"
)

// Document representa la cabecera de un documento fiscal (factura, nota de
// crédito o nota de débito) emitido bajo un CAI.
// Invariantes: el par (CAIID, Secuencia) es único; el Correlativo es único;
// una vez emitido los montos son inmutables — solo el estado transiciona a
// ANULADA.
type Document struct {
	ID              string
	Tipo            string // DocTipo*
	CAIID           string
	Secuencia       int64
	Correlativo     string // EEE-PPP-TT-NNNNNNNN
	FechaEmision    time.Time
	Moneda          string // "HNL" por defecto
	EmisorRTN       string
	EmisorNombre    string
	EmisorDireccion string
	ClienteRTN      string // opcional (consumidor final sin RTN)
	ClienteNombre   string
	Gravado         decimal.Decimal // base imponible gravada (15% + 18%)
	Exento          decimal.Decimal // base exenta (tasa 0)
	ISV15           decimal.Decimal
	ISV18           decimal.Decimal
	DescuentoTotal  decimal.Decimal
	Total           decimal.Decimal
	Estado          string
	CotizacionID    string // opcional; cotización de origen
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// DocumentLine representa una línea de un documento. Los campos derivados
// (BaseImponible, Impuesto, TotalLinea) se calculan al emitir y son
// inmutables. Invariante: BaseImponible + Impuesto == TotalLinea.
type DocumentLine struct {
	ID             string
	DocumentID     string
	ProductoID     string // opcional; vacío en líneas de texto libre o servicio
	Descripcion    string
	Cantidad       decimal.Decimal // > 0
	PrecioUnitario decimal.Decimal // >= 0
	Descuento      decimal.Decimal
	TasaISV        decimal.Decimal // 0, 15 o 18 (porcentaje)
	BaseImponible  decimal.Decimal
	Impuesto       decimal.Decimal
	TotalLinea     decimal.Decimal
}
