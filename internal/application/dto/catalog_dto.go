package dto

import "github.com/shopspring/decimal"

// CreateProductRequest body para POST /api/productos.
type CreateProductRequest struct {
	SKU         string          `json:"sku"`
	Nombre      string          `json:"nombre"`
	Descripcion string          `json:"descripcion,omitempty"`
	Tipo        string          `json:"tipo"` // PRODUCTO | SERVICIO
	Precio      decimal.Decimal `json:"precio"`
	TasaISV     decimal.Decimal `json:"tasa_isv"`
	Stock       decimal.Decimal `json:"stock"`
}

// UpdateProductRequest body para PUT /api/productos/:id.
type UpdateProductRequest struct {
	Nombre      string           `json:"nombre,omitempty"`
	Descripcion string           `json:"descripcion,omitempty"`
	Precio      *decimal.Decimal `json:"precio,omitempty"`
	TasaISV     *decimal.Decimal `json:"tasa_isv,omitempty"`
}

// ProductResponse producto en respuestas.
type ProductResponse struct {
	ID          string          `json:"id"`
	SKU         string          `json:"sku"`
	Nombre      string          `json:"nombre"`
	Descripcion string          `json:"descripcion,omitempty"`
	Tipo        string          `json:"tipo"`
	Precio      decimal.Decimal `json:"precio"`
	TasaISV     decimal.Decimal `json:"tasa_isv"`
	Stock       decimal.Decimal `json:"stock"`
}

// CreateServiceItemRequest body para POST /api/servicios.
type CreateServiceItemRequest struct {
	Nombre      string          `json:"nombre"`
	Descripcion string          `json:"descripcion,omitempty"`
	PrecioBase  decimal.Decimal `json:"precio_base"`
	TasaISV     decimal.Decimal `json:"tasa_isv"`
}

// ServiceItemResponse servicio del catálogo en respuestas.
type ServiceItemResponse struct {
	ID          string          `json:"id"`
	Nombre      string          `json:"nombre"`
	Descripcion string          `json:"descripcion,omitempty"`
	PrecioBase  decimal.Decimal `json:"precio_base"`
	TasaISV     decimal.Decimal `json:"tasa_isv"`
}
