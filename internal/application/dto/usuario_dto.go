package dto

import "time"

// RegisterRequest entrada de /register. La presencia de NombreEmpresa selecciona
// la rama empresa; si está vacío se exige el juego completo de campos de persona.
type RegisterRequest struct {
	Email         string `json:"email"`
	Nombres       string `json:"nombres"`
	Apellidos     string `json:"apellidos"`
	TipoDocumento string `json:"tipoDocumento"`
	Documento     string `json:"documento"`
	Rol           string `json:"rol"`
	Contrasena    string `json:"contrasena"`
	Avatar        string `json:"avatar"`
	NombreEmpresa string `json:"nombreEmpresa"`
}

// RegisterResponse salida de /register.
type RegisterResponse struct {
	Message string `json:"message"`
	UserID  int64  `json:"userId"`
}

// LoginRequest entrada de /login.
type LoginRequest struct {
	Email      string `json:"email"`
	Contrasena string `json:"contrasena"`
}

// LoginResponse salida de /login: lo mínimo que el frontend necesita para la sesión.
type LoginResponse struct {
	Message  string  `json:"message"`
	UserID   int64   `json:"userId"`
	Avatar   *string `json:"avatar"`
	UserName string  `json:"userName"`
	Rol      string  `json:"rol"`
}

// GoogleVerificationResponse salida de /googleverification. Los campos de usuario
// solo se llenan cuando Exists es true.
type GoogleVerificationResponse struct {
	Exists   bool    `json:"exists"`
	UserID   int64   `json:"userId,omitempty"`
	Avatar   *string `json:"avatar,omitempty"`
	UserName string  `json:"userName,omitempty"`
	Rol      string  `json:"rol,omitempty"`
}

// PasswordResetRequest entrada de /generatePasswordResetLink.
type PasswordResetRequest struct {
	Email string `json:"email"`
}

// ResetPasswordRequest entrada de /resetPassword: token del enlace + nueva contraseña.
type ResetPasswordRequest struct {
	Token      string `json:"token"`
	Contrasena string `json:"contrasena"`
}

// UserInfo perfil de usuario sin credenciales (salida de /getUserInfo).
type UserInfo struct {
	ID            int64     `json:"id"`
	Email         string    `json:"email"`
	Nombres       string    `json:"nombres"`
	Apellidos     *string   `json:"apellidos"`
	TipoDocumento *string   `json:"tipo_documento"`
	Documento     *string   `json:"documento"`
	Rol           string    `json:"rol"`
	Avatar        *string   `json:"avatar"`
	EsEmpresa     bool      `json:"es_empresa"`
	FechaRegistro time.Time `json:"fecha_registro"`
}

// UserInfoResponse salida de /getUserInfo.
type UserInfoResponse struct {
	Message string   `json:"message"`
	User    UserInfo `json:"user"`
}

// UpdateAvatarRequest entrada de /updateAvatar.
type UpdateAvatarRequest struct {
	UserID int64  `json:"userId"`
	Avatar string `json:"avatar"`
}

// UpdateAvatarResponse salida de /updateAvatar (incluye el rol para el frontend).
type UpdateAvatarResponse struct {
	Message string `json:"message"`
	Rol     string `json:"rol"`
}
