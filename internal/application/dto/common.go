package dto

// MessageResponse cuerpo mínimo de éxito: todas las respuestas llevan message.
type MessageResponse struct {
	Message string `json:"message"`
}

// ErrorResponse cuerpo de error HTTP. Code es opaco para el cliente;
// el detalle interno se queda en los logs.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}
