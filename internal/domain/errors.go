package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound           = errors.New("recurso no encontrado")
	ErrUserNotFound       = errors.New("usuario no encontrado")
	ErrLocalNotFound      = errors.New("local no encontrado")
	ErrEmailAlreadyExists = errors.New("el correo ya está en uso")
	ErrInvalidCredentials = errors.New("contraseña incorrecta")
	ErrInvalidInput       = errors.New("entrada inválida")
	ErrInvalidCode        = errors.New("código incorrecto")
	ErrInvalidToken       = errors.New("token inválido o expirado")
)
