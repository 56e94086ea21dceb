package fiscal

import (
	"fmt"
	"strings"
)

// FormatCorrelativo construye el número correlativo impreso en el documento:
// establecimiento (3 dígitos) - punto de emisión (3 dígitos) - tipo de
// documento (2 dígitos) - secuencia (8 dígitos), todo con ceros a la
// izquierda y separado por guiones. Determinista a partir de los campos del
// CAI y la secuencia asignada.
func FormatCorrelativo(establecimiento, puntoEmision, tipoDocumento string, secuencia int64) string {
	return fmt.Sprintf("%s-%s-%s-%08d",
		padLeft(establecimiento, 3),
		padLeft(puntoEmision, 3),
		padLeft(tipoDocumento, 2),
		secuencia,
	)
}

func padLeft(s string, width int) string {
	if len(s) >= width {
		return s
	}
	return strings.Repeat("0", width-len(s)) + s
}
