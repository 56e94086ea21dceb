package domain

import "fmt"

// Kind clasifica un error de dominio para decidir el status HTTP en la capa
// de transporte sin comparar strings de mensaje.
type Kind int

const (
	KindValidation Kind = iota // entrada inválida del caller (400)
	KindNotFound               // recurso inexistente (404)
	KindConflict               // el estado actual prohíbe la operación (400)
	KindInternal               // fallo de infraestructura (500)
)

// Error es el tipo cerrado de errores de dominio. Cada error conocido del
// negocio es un valor centinela de este tipo; los handlers mapean Kind a
// status y exponen Code al cliente (nunca detalle interno).
type Error struct {
	Code    string
	Message string
	Kind    Kind
}

func (e *Error) Error() string { return e.Message }

// Is permite errors.Is contra centinelas aunque el error venga envuelto.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	return ok && t.Code == e.Code
}

// Wrap añade contexto preservando el centinela para errors.Is.
func Wrap(err *Error, format string, args ...any) error {
	return fmt.Errorf(format+": %w", append(args, err)...)
}

func newErr(code, msg string, kind Kind) *Error {
	return &Error{Code: code, Message: msg, Kind: kind}
}

// Errores de validación (la petición es incorrecta).
var (
	ErrCamposRequeridos  = newErr("CAMPOS_REQUERIDOS", "faltan campos requeridos del emisor", KindValidation)
	ErrSinLineas         = newErr("SIN_LINEAS", "el documento no tiene líneas", KindValidation)
	ErrTasaNoSoportada   = newErr("TASA_NO_SOPORTADA", "tasa de ISV no soportada (solo 0, 15 o 18)", KindValidation)
	ErrLineaInvalida     = newErr("LINEA_INVALIDA", "cantidad o precio de línea inválidos", KindValidation)
	ErrFechaExcedeLimite = newErr("FECHA_EXCEDE_LIMITE_CAI", "la fecha de emisión excede la fecha límite del CAI", KindValidation)
	ErrEntradaInvalida   = newErr("ENTRADA_INVALIDA", "entrada inválida", KindValidation)
)

// Errores de recurso no encontrado.
var (
	ErrCAINoEncontrado        = newErr("CAI_NO_ENCONTRADO", "CAI no encontrado", KindNotFound)
	ErrDocumentoNoEncontrado  = newErr("DOCUMENTO_NO_ENCONTRADO", "documento no encontrado", KindNotFound)
	ErrCotizacionNoEncontrada = newErr("COTIZACION_NO_ENCONTRADA", "cotización no encontrada", KindNotFound)
	ErrProductoNoEncontrado   = newErr("PRODUCTO_NO_ENCONTRADO", "producto no encontrado", KindNotFound)
	ErrServicioNoEncontrado   = newErr("SERVICIO_NO_ENCONTRADO", "servicio no encontrado", KindNotFound)
	ErrUsuarioNoEncontrado    = newErr("USUARIO_NO_ENCONTRADO", "usuario no encontrado", KindNotFound)
	ErrGastoNoEncontrado      = newErr("GASTO_NO_ENCONTRADO", "gasto no encontrado", KindNotFound)
)

// Errores de conflicto de estado (petición bien formada, estado la prohíbe).
var (
	ErrCAINoActivo           = newErr("CAI_NO_ACTIVO", "el CAI no está activo", KindConflict)
	ErrCAIVencido            = newErr("CAI_VENCIDO", "el CAI está vencido", KindConflict)
	ErrRangoAgotado          = newErr("RANGO_AGOTADO", "el rango autorizado del CAI está agotado", KindConflict)
	ErrDocumentoYaAnulado    = newErr("DOCUMENTO_YA_ANULADO", "el documento ya fue anulado", KindConflict)
	ErrCotizacionYaFacturada = newErr("COTIZACION_YA_FACTURADA", "la cotización ya fue convertida en documento", KindConflict)
	ErrCotizacionSinLineas   = newErr("COTIZACION_SIN_LINEAS", "la cotización no tiene líneas", KindConflict)
	ErrStockInsuficiente     = newErr("STOCK_INSUFICIENTE", "stock insuficiente", KindConflict)
	ErrDuplicado             = newErr("DUPLICADO", "recurso duplicado", KindConflict)
)
