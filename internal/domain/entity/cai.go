package entity

import "time"

// Estados del CAI (autorización fiscal SAR, Honduras).
const (
	CAIStatusActiva  = "ACTIVA"  // vigente, puede emitir documentos
	CAIStatusAgotada = "AGOTADA" // el rango autorizado se consumió por completo
	CAIStatusVencida = "VENCIDA" // pasó la fecha límite de emisión
	CAIStatusAnulada = "ANULADA" // cancelada administrativamente
)

// Tipos de documento fiscal autorizables (código de dos dígitos del correlativo).
const (
	DocTipoFactura     = "01"
	DocTipoNotaCredito = "04"
	DocTipoNotaDebito  = "05"
)

// CAI representa el Código de Autorización de Impresión emitido por la SAR:
// un bloque de numeración [RangoDesde, RangoHasta] con fecha límite de
// emisión. Se crea administrativamente; su estado solo lo muta el asignador
// de secuencias (AGOTADA) o la anulación administrativa.
// Invariante: la secuencia asignada nunca excede RangoHasta.
type CAI struct {
	ID              string
	Codigo          string // código CAI alfanumérico impreso en el documento
	Establecimiento string // 3 dígitos
	PuntoEmision    string // 3 dígitos
	TipoDocumento   string // 2 dígitos (DocTipo*)
	RangoDesde      int64
	RangoHasta      int64
	FechaLimite     time.Time
	Estado          string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// Vigente indica si el CAI puede emitir en la fecha dada. La fecha límite es
// inclusiva a granularidad de día.
func (c *CAI) Vigente(fecha time.Time) bool {
	return c.Estado == CAIStatusActiva &&
		fecha.Format("2006-01-02") <= c.FechaLimite.Format("2006-01-02")
}
