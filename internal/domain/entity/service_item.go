package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// ServiceItem representa un servicio del catálogo de mano de obra del taller
// (cambio de aceite, alineación, diagnóstico). No tiene stock asociado.
type ServiceItem struct {
	ID          string
	Nombre      string
	Descripcion string
	PrecioBase  decimal.Decimal
	TasaISV     decimal.Decimal // 0, 15 o 18
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
