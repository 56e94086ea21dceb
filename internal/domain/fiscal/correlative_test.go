package fiscal_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/tallerpro/taller-api/internal/domain/fiscal"
)

func TestFormatCorrelativo_RellenaConCeros(t *testing.T) {
	got := fiscal.FormatCorrelativo("1", "2", "1", 7)
	assert.Equal(t, "001-002-01-00000007", got)
}

func TestFormatCorrelativo_ConservaCamposCompletos(t *testing.T) {
	got := fiscal.FormatCorrelativo("000", "001", "01", 12345678)
	assert.Equal(t, "000-001-01-12345678", got)
}

// El correlativo es determinista: los mismos campos del CAI y la misma
// secuencia siempre producen el mismo string.
func TestFormatCorrelativo_Determinista(t *testing.T) {
	a := fiscal.FormatCorrelativo("005", "002", "04", 991)
	b := fiscal.FormatCorrelativo("005", "002", "04", 991)
	assert.Equal(t, a, b)
	assert.Equal(t, "005-002-04-00000991", a)
}
