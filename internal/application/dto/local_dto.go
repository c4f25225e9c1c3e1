package dto

import "time"

// RegistrarLocalResponse salida de /registrarLocal. ImagenesURLs se omite
// cuando el local se registró sin imágenes.
type RegistrarLocalResponse struct {
	Message      string   `json:"message"`
	LocalID      int64    `json:"localId"`
	ImagenesURLs []string `json:"imagenesUrls,omitempty"`
	ContratoURL  string   `json:"contrato_url"`
}

// LocalResponse un local con sus imágenes agregadas (salida de /api/local/...).
type LocalResponse struct {
	LocalID       int64     `json:"local_id"`
	Nombre        string    `json:"nombre"`
	Direccion     *string   `json:"direccion"`
	FechaRegistro time.Time `json:"fecha_registro"`
	ContratoURL   string    `json:"contrato_url"`
	PDFURL        *string   `json:"pdf_url"`
	ProveedorID   int64     `json:"proveedor_id"`
	Imagenes      []string  `json:"imagenes"`
}

// ActualizarLocalResponse salida de /actualizar_local/:localId.
// PDFURL es nil si la petición no traía PDF de reemplazo.
type ActualizarLocalResponse struct {
	Message string  `json:"message"`
	PDFURL  *string `json:"pdfUrl"`
}
