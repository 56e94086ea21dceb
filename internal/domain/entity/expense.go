package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Expense representa un gasto operativo del taller (repuestos comprados,
// servicios públicos, planilla). Solo registro contable; no toca inventario.
type Expense struct {
	ID          string
	Categoria   string
	Descripcion string
	Monto       decimal.Decimal
	Fecha       time.Time
	CreatedBy   string
	CreatedAt   time.Time
}
