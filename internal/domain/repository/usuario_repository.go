package repository

import "github.com/localesapp/locales-api/internal/domain/entity"

// UsuarioRepository define el puerto de persistencia para Usuario (DIP).
// Los Get* devuelven (nil, nil) cuando no hay fila.
type UsuarioRepository interface {
	Create(u *entity.Usuario) (int64, error)
	GetByID(id int64) (*entity.Usuario, error)
	GetByEmail(email string) (*entity.Usuario, error)
	UpdateAvatar(id int64, avatar string) error
	UpdatePassword(email, contrasenaHash string) error
}
