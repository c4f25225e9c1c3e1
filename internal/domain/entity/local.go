package entity

import "time"

// Local representa un local/sede registrada por un proveedor.
// Se crea con el contrato obligatorio; la dirección y el PDF adicional
// se completan después con el flujo de actualización.
type Local struct {
	ID            int64
	Nombre        string
	Direccion     *string
	ProveedorID   int64
	ContratoURL   string
	PDFURL        *string
	FechaRegistro time.Time
	Imagenes      []string // URLs en orden de inserción (propiedad exclusiva del local)
}

// ImagenLocal es una imagen asociada a un Local. Se insertan en bloque al
// registrar el local y se eliminan en bloque al eliminarlo.
type ImagenLocal struct {
	ID        int64
	LocalID   int64
	URLImagen string
}
