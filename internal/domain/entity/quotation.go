package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados de una cotización.
const (
	QuotationStatusPendiente  = "PENDIENTE"
	QuotationStatusConvertida = "CONVERTIDA" // ya generó un documento fiscal
)

// Quotation representa una cotización de trabajo para un cliente.
// Invariante: a lo sumo un documento fiscal por cotización; la conversión se
// marca dentro de la misma transacción que emite el documento.
type Quotation struct {
	ID            string
	ClienteNombre string
	ClienteRTN    string
	Estado        string
	DocumentID    string // documento emitido desde esta cotización, si existe
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// QuotationLine línea de una cotización; misma forma que la línea solicitada
// al emitir un documento (puede referenciar producto del inventario).
type QuotationLine struct {
	ID             string
	QuotationID    string
	ProductoID     string // opcional
	Descripcion    string
	Cantidad       decimal.Decimal
	PrecioUnitario decimal.Decimal
	Descuento      decimal.Decimal
	TasaISV        decimal.Decimal
}
