package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/localesapp/locales-api/internal/domain"
	"github.com/localesapp/locales-api/internal/domain/entity"
	"github.com/localesapp/locales-api/internal/domain/repository"
)

var _ repository.UsuarioRepository = (*UsuarioRepo)(nil)

// UsuarioRepo implementación del puerto UsuarioRepository sobre PostgreSQL.
type UsuarioRepo struct {
	q Querier
}

// NewUsuarioRepository construye el adaptador. Pasar pool o tx (Querier).
func NewUsuarioRepository(q Querier) *UsuarioRepo {
	return &UsuarioRepo{q: q}
}

const usuarioColumns = `id, email, nombres, apellidos, tipo_documento, documento, rol, contrasena_hash, avatar, es_empresa, fecha_registro`

// Create persiste una cuenta nueva y devuelve el id generado.
// La constraint única de email mapea a domain.ErrEmailAlreadyExists.
func (r *UsuarioRepo) Create(u *entity.Usuario) (int64, error) {
	query := `
		INSERT INTO usuarios (email, nombres, apellidos, tipo_documento, documento, rol, contrasena_hash, avatar, es_empresa, fecha_registro)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING id`
	var id int64
	err := r.q.QueryRow(context.Background(), query,
		u.Email, u.Nombres, u.Apellidos, u.TipoDocumento, u.Documento,
		u.Rol, u.ContrasenaHash, u.Avatar, u.EsEmpresa, u.FechaRegistro,
	).Scan(&id)
	if err != nil {
		if isUniqueViolation(err) {
			return 0, domain.ErrEmailAlreadyExists
		}
		return 0, fmt.Errorf("insert usuario: %w", err)
	}
	return id, nil
}

// GetByID obtiene una cuenta por id. (nil, nil) si no existe.
func (r *UsuarioRepo) GetByID(id int64) (*entity.Usuario, error) {
	query := `SELECT ` + usuarioColumns + ` FROM usuarios WHERE id = $1`
	return r.scanOne(query, id)
}

// GetByEmail obtiene una cuenta por email. (nil, nil) si no existe.
func (r *UsuarioRepo) GetByEmail(email string) (*entity.Usuario, error) {
	query := `SELECT ` + usuarioColumns + ` FROM usuarios WHERE email = $1 LIMIT 1`
	return r.scanOne(query, email)
}

func (r *UsuarioRepo) scanOne(query string, arg any) (*entity.Usuario, error) {
	var u entity.Usuario
	err := r.q.QueryRow(context.Background(), query, arg).Scan(
		&u.ID, &u.Email, &u.Nombres, &u.Apellidos, &u.TipoDocumento, &u.Documento,
		&u.Rol, &u.ContrasenaHash, &u.Avatar, &u.EsEmpresa, &u.FechaRegistro,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get usuario: %w", err)
	}
	return &u, nil
}

// UpdateAvatar guarda la URL de avatar. domain.ErrUserNotFound si el id no existe.
func (r *UsuarioRepo) UpdateAvatar(id int64, avatar string) error {
	tag, err := r.q.Exec(context.Background(),
		`UPDATE usuarios SET avatar = $2 WHERE id = $1`, id, avatar)
	if err != nil {
		return fmt.Errorf("update avatar: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrUserNotFound
	}
	return nil
}

// UpdatePassword guarda el hash de la nueva contraseña para el email.
func (r *UsuarioRepo) UpdatePassword(email, contrasenaHash string) error {
	tag, err := r.q.Exec(context.Background(),
		`UPDATE usuarios SET contrasena_hash = $2 WHERE email = $1`, email, contrasenaHash)
	if err != nil {
		return fmt.Errorf("update contraseña: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrUserNotFound
	}
	return nil
}
