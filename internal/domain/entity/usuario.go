package entity

import "time"

// Roles usados por el frontend para distinguir cuentas.
const (
	RolProveedor = "proveedor"
	RolCliente   = "cliente"
)

// Usuario representa una cuenta registrada: persona natural o empresa.
// Para empresas solo se llenan Email, Nombres (razón social), Rol y la contraseña;
// el resto de columnas queda en NULL.
type Usuario struct {
	ID             int64
	Email          string
	Nombres        string
	Apellidos      *string
	TipoDocumento  *string
	Documento      *string
	Rol            string
	ContrasenaHash string // bcrypt, nunca en claro después de persistir
	Avatar         *string
	EsEmpresa      bool
	FechaRegistro  time.Time
}
