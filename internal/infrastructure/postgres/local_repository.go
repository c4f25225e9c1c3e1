package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"

	"github.com/localesapp/locales-api/internal/domain"
	"github.com/localesapp/locales-api/internal/domain/entity"
	"github.com/localesapp/locales-api/internal/domain/repository"
)

var _ repository.LocalRepository = (*LocalRepo)(nil)

// LocalRepo implementación del puerto LocalRepository sobre PostgreSQL.
type LocalRepo struct {
	q Querier
}

// NewLocalRepository construye el adaptador. Pasar pool o tx (Querier).
func NewLocalRepository(q Querier) *LocalRepo {
	return &LocalRepo{q: q}
}

// Create persiste un local nuevo (dirección y pdf en NULL) y devuelve el id generado.
func (r *LocalRepo) Create(local *entity.Local) (int64, error) {
	query := `
		INSERT INTO locales (nombre, direccion, proveedor_id, contrato_url, pdf_url, fecha_registro)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id`
	var id int64
	err := r.q.QueryRow(context.Background(), query,
		local.Nombre, local.Direccion, local.ProveedorID, local.ContratoURL, local.PDFURL, local.FechaRegistro,
	).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("insert local: %w", err)
	}
	return id, nil
}

// Las imágenes se agregan con array_agg en orden de inserción y se escanean
// directo a []string: sin separador textual, una URL puede llevar cualquier carácter.
const localSelect = `
	SELECT l.id, l.nombre, l.direccion, l.fecha_registro, l.contrato_url, l.pdf_url, l.proveedor_id,
	       COALESCE(array_agg(i.url_imagen ORDER BY i.id) FILTER (WHERE i.id IS NOT NULL), '{}') AS imagenes
	FROM locales l
	LEFT JOIN imagenes_locales i ON i.local_id = l.id`

// GetByID obtiene un local con sus imágenes. (nil, nil) si no existe.
func (r *LocalRepo) GetByID(id int64) (*entity.Local, error) {
	query := localSelect + `
	WHERE l.id = $1
	GROUP BY l.id`
	l, err := r.scanLocal(r.q.QueryRow(context.Background(), query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get local: %w", err)
	}
	return l, nil
}

// ListByProveedor lista los locales de un proveedor con sus imágenes.
func (r *LocalRepo) ListByProveedor(proveedorID int64) ([]*entity.Local, error) {
	query := localSelect + `
	WHERE l.proveedor_id = $1
	GROUP BY l.id
	ORDER BY l.id`
	rows, err := r.q.Query(context.Background(), query, proveedorID)
	if err != nil {
		return nil, fmt.Errorf("list locales: %w", err)
	}
	defer rows.Close()

	var list []*entity.Local
	for rows.Next() {
		l, err := r.scanLocal(rows)
		if err != nil {
			return nil, fmt.Errorf("scan local: %w", err)
		}
		list = append(list, l)
	}
	return list, rows.Err()
}

func (r *LocalRepo) scanLocal(row pgx.Row) (*entity.Local, error) {
	var l entity.Local
	err := row.Scan(
		&l.ID, &l.Nombre, &l.Direccion, &l.FechaRegistro, &l.ContratoURL, &l.PDFURL, &l.ProveedorID,
		&l.Imagenes,
	)
	if err != nil {
		return nil, err
	}
	if l.Imagenes == nil {
		l.Imagenes = []string{}
	}
	return &l, nil
}

// UpdateDireccion guarda la dirección y, si pdfURL no es nil, también el pdf_url.
func (r *LocalRepo) UpdateDireccion(id int64, direccion string, pdfURL *string) error {
	var err error
	if pdfURL != nil {
		_, err = r.q.Exec(context.Background(),
			`UPDATE locales SET direccion = $2, pdf_url = $3 WHERE id = $1`, id, direccion, *pdfURL)
	} else {
		_, err = r.q.Exec(context.Background(),
			`UPDATE locales SET direccion = $2 WHERE id = $1`, id, direccion)
	}
	if err != nil {
		return fmt.Errorf("update local: %w", err)
	}
	return nil
}

// Delete elimina un local por id. domain.ErrLocalNotFound si no existe.
func (r *LocalRepo) Delete(id int64) error {
	tag, err := r.q.Exec(context.Background(), `DELETE FROM locales WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete local: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrLocalNotFound
	}
	return nil
}

var _ repository.ImagenLocalRepository = (*ImagenLocalRepo)(nil)

// ImagenLocalRepo implementación del puerto ImagenLocalRepository sobre PostgreSQL.
type ImagenLocalRepo struct {
	q Querier
}

// NewImagenLocalRepository construye el adaptador. Pasar pool o tx (Querier).
func NewImagenLocalRepository(q Querier) *ImagenLocalRepo {
	return &ImagenLocalRepo{q: q}
}

// BulkCreate inserta una fila por URL, en el orden recibido.
func (r *ImagenLocalRepo) BulkCreate(localID int64, urls []string) error {
	if len(urls) == 0 {
		return nil
	}
	args := make([]any, 0, len(urls)+1)
	args = append(args, localID)
	placeholders := make([]string, 0, len(urls))
	for i, u := range urls {
		placeholders = append(placeholders, fmt.Sprintf("($1, $%d)", i+2))
		args = append(args, u)
	}
	query := `INSERT INTO imagenes_locales (local_id, url_imagen) VALUES ` + strings.Join(placeholders, ", ")
	if _, err := r.q.Exec(context.Background(), query, args...); err != nil {
		return fmt.Errorf("insert imagenes: %w", err)
	}
	return nil
}

// ListURLs devuelve las URLs de imagen del local en orden de inserción.
func (r *ImagenLocalRepo) ListURLs(localID int64) ([]string, error) {
	rows, err := r.q.Query(context.Background(),
		`SELECT url_imagen FROM imagenes_locales WHERE local_id = $1 ORDER BY id`, localID)
	if err != nil {
		return nil, fmt.Errorf("list imagenes: %w", err)
	}
	defer rows.Close()

	var urls []string
	for rows.Next() {
		var u string
		if err := rows.Scan(&u); err != nil {
			return nil, fmt.Errorf("scan imagen: %w", err)
		}
		urls = append(urls, u)
	}
	return urls, rows.Err()
}

// DeleteByLocal elimina todas las filas de imagen del local.
func (r *ImagenLocalRepo) DeleteByLocal(localID int64) error {
	if _, err := r.q.Exec(context.Background(),
		`DELETE FROM imagenes_locales WHERE local_id = $1`, localID); err != nil {
		return fmt.Errorf("delete imagenes: %w", err)
	}
	return nil
}
