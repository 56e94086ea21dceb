package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Tipos de ítem del catálogo de productos.
const (
	ProductTipoProducto = "PRODUCTO" // repuesto físico, controla stock
	ProductTipoServicio = "SERVICIO" // no controla stock
)

// Product representa un repuesto o insumo del inventario del taller.
// Stock se descuenta al facturar y se repone al anular (solo tipo PRODUCTO).
type Product struct {
	ID          string
	SKU         string // código único
	Nombre      string
	Descripcion string
	Tipo        string
	Precio      decimal.Decimal // precio de venta
	TasaISV     decimal.Decimal // 0, 15 o 18
	Stock       decimal.Decimal
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// ControlaStock indica si los movimientos de inventario aplican al producto.
func (p *Product) ControlaStock() bool {
	return p.Tipo == ProductTipoProducto
}
