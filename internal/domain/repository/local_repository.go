package repository

import "github.com/localesapp/locales-api/internal/domain/entity"

// LocalRepository define el puerto de persistencia para Local.
// Las lecturas devuelven los locales con sus imágenes agregadas en orden de inserción.
type LocalRepository interface {
	Create(local *entity.Local) (int64, error)
	GetByID(id int64) (*entity.Local, error)
	ListByProveedor(proveedorID int64) ([]*entity.Local, error)
	UpdateDireccion(id int64, direccion string, pdfURL *string) error
	Delete(id int64) error
}

// ImagenLocalRepository define el puerto de persistencia para las imágenes de un Local.
type ImagenLocalRepository interface {
	BulkCreate(localID int64, urls []string) error
	ListURLs(localID int64) ([]string, error)
	DeleteByLocal(localID int64) error
}
