package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Tipos de movimiento de inventario (kardex).
const (
	MovementTypeIN  = "IN"  // entrada (compra, reposición, anulación de documento)
	MovementTypeOUT = "OUT" // salida (facturación)
)

// InventoryMovement representa un asiento del kardex. Los movimientos
// originados por facturación referencian el documento que los causó; la
// anulación de un documento genera un movimiento IN compensatorio por cada
// OUT original.
type InventoryMovement struct {
	ID         string
	ProductoID string
	Tipo       string
	Cantidad   decimal.Decimal // siempre positiva; el tipo da la dirección
	Motivo     string
	DocumentID string // opcional; documento fiscal que causó el movimiento
	CreatedAt  time.Time
	CreatedBy  string
}
