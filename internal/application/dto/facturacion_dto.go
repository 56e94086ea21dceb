package dto

import "github.com/shopspring/decimal"

// CreateCAIRequest body para POST /api/cai (alta administrativa).
type CreateCAIRequest struct {
	Codigo          string `json:"codigo"`
	Establecimiento string `json:"establecimiento"`
	PuntoEmision    string `json:"punto_emision"`
	TipoDocumento   string `json:"tipo_documento"`
	RangoDesde      int64  `json:"rango_desde"`
	RangoHasta      int64  `json:"rango_hasta"`
	FechaLimite     string `json:"fecha_limite"` // YYYY-MM-DD
}

// CAIResponse autorización CAI en respuestas.
type CAIResponse struct {
	ID              string `json:"id"`
	Codigo          string `json:"codigo"`
	Establecimiento string `json:"establecimiento"`
	PuntoEmision    string `json:"punto_emision"`
	TipoDocumento   string `json:"tipo_documento"`
	RangoDesde      int64  `json:"rango_desde"`
	RangoHasta      int64  `json:"rango_hasta"`
	FechaLimite     string `json:"fecha_limite"`
	Estado          string `json:"estado"`
}

// PartyDTO identidad fiscal de emisor o cliente.
type PartyDTO struct {
	RTN       string `json:"rtn,omitempty"`
	Nombre    string `json:"nombre"`
	Direccion string `json:"direccion,omitempty"`
}

// DocumentItemRequest una línea solicitada al emitir. Puede referenciar un
// producto del inventario o un servicio del catálogo; los valores explícitos
// de la petición siempre prevalecen sobre los del catálogo. TasaISV nil usa
// la del catálogo, o 15% si ninguno la define.
type DocumentItemRequest struct {
	ProductoID     string           `json:"producto_id,omitempty"`
	ServicioID     string           `json:"servicio_id,omitempty"`
	Descripcion    string           `json:"descripcion,omitempty"`
	Cantidad       decimal.Decimal  `json:"cantidad"`
	PrecioUnitario *decimal.Decimal `json:"precio_unitario,omitempty"`
	Descuento      decimal.Decimal  `json:"descuento"`
	TasaISV        *decimal.Decimal `json:"tasa_isv,omitempty"`
}

// IssueDocumentRequest body para POST /api/documentos.
type IssueDocumentRequest struct {
	Tipo         string                `json:"tipo"`
	CAIID        string                `json:"cai_id"`
	FechaEmision string                `json:"fecha_emision"` // YYYY-MM-DD; vacío = hoy
	Moneda       string                `json:"moneda,omitempty"`
	Emisor       PartyDTO              `json:"emisor"`
	Cliente      PartyDTO              `json:"cliente"`
	Items        []DocumentItemRequest `json:"items"`
}

// DocumentLineResponse línea calculada en respuestas.
type DocumentLineResponse struct {
	ID             string          `json:"id"`
	ProductoID     string          `json:"producto_id,omitempty"`
	Descripcion    string          `json:"descripcion"`
	Cantidad       decimal.Decimal `json:"cantidad"`
	PrecioUnitario decimal.Decimal `json:"precio_unitario"`
	Descuento      decimal.Decimal `json:"descuento"`
	TasaISV        decimal.Decimal `json:"tasa_isv"`
	BaseImponible  decimal.Decimal `json:"base_imponible"`
	Impuesto       decimal.Decimal `json:"impuesto"`
	TotalLinea     decimal.Decimal `json:"total_linea"`
}

// MovementResponse movimiento de inventario en respuestas (kardex).
type MovementResponse struct {
	ID         string          `json:"id"`
	ProductoID string          `json:"producto_id"`
	Tipo       string          `json:"tipo"`
	Cantidad   decimal.Decimal `json:"cantidad"`
	Motivo     string          `json:"motivo"`
	DocumentID string          `json:"documento_id,omitempty"`
	Fecha      string          `json:"fecha"`
}

// DocumentResponse documento con detalle y referencias de inventario.
type DocumentResponse struct {
	ID             string                 `json:"id"`
	Tipo           string                 `json:"tipo"`
	CAIID          string                 `json:"cai_id"`
	Secuencia      int64                  `json:"secuencia"`
	Correlativo    string                 `json:"correlativo"`
	FechaEmision   string                 `json:"fecha_emision"`
	Moneda         string                 `json:"moneda"`
	Emisor         PartyDTO               `json:"emisor"`
	Cliente        PartyDTO               `json:"cliente"`
	Gravado        decimal.Decimal        `json:"gravado"`
	Exento         decimal.Decimal        `json:"exento"`
	ISV15          decimal.Decimal        `json:"isv15"`
	ISV18          decimal.Decimal        `json:"isv18"`
	DescuentoTotal decimal.Decimal        `json:"descuento_total"`
	Total          decimal.Decimal        `json:"total"`
	Estado         string                 `json:"estado"`
	CotizacionID   string                 `json:"cotizacion_id,omitempty"`
	Items          []DocumentLineResponse `json:"items"`
	Referencias    []MovementResponse     `json:"referencias,omitempty"`
}

// CreateQuotationRequest body para POST /api/cotizaciones.
type CreateQuotationRequest struct {
	Cliente PartyDTO              `json:"cliente"`
	Items   []DocumentItemRequest `json:"items"`
}

// QuotationLineResponse línea de cotización (sin montos derivados: estos se
// calculan al emitir el documento).
type QuotationLineResponse struct {
	ID             string          `json:"id"`
	ProductoID     string          `json:"producto_id,omitempty"`
	Descripcion    string          `json:"descripcion"`
	Cantidad       decimal.Decimal `json:"cantidad"`
	PrecioUnitario decimal.Decimal `json:"precio_unitario"`
	Descuento      decimal.Decimal `json:"descuento"`
	TasaISV        decimal.Decimal `json:"tasa_isv"`
}

// QuotationResponse cotización con sus líneas.
type QuotationResponse struct {
	ID            string                  `json:"id"`
	ClienteNombre string                  `json:"cliente_nombre"`
	ClienteRTN    string                  `json:"cliente_rtn,omitempty"`
	Estado        string                  `json:"estado"`
	DocumentID    string                  `json:"documento_id,omitempty"`
	Items         []QuotationLineResponse `json:"items,omitempty"`
}
