package dto

import "github.com/shopspring/decimal"

// CreateExpenseRequest body para POST /api/gastos.
type CreateExpenseRequest struct {
	Categoria   string          `json:"categoria"`
	Descripcion string          `json:"descripcion"`
	Monto       decimal.Decimal `json:"monto"`
	Fecha       string          `json:"fecha,omitempty"` // YYYY-MM-DD; vacío = hoy
}

// ExpenseResponse gasto en respuestas.
type ExpenseResponse struct {
	ID          string          `json:"id"`
	Categoria   string          `json:"categoria"`
	Descripcion string          `json:"descripcion"`
	Monto       decimal.Decimal `json:"monto"`
	Fecha       string          `json:"fecha"`
}
