package local

import (
	"context"

	"github.com/localesapp/locales-api/internal/domain/repository"
)

// TxRunner ejecuta fn con repos atados a una misma transacción: el alta
// local+imágenes y la eliminación local+imágenes son todo-o-nada.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		localRepo repository.LocalRepository,
		imagenRepo repository.ImagenLocalRepository,
	) error) error
}

// FileRemover borra del disco el archivo detrás de una URL pública.
// La eliminación de archivos es limpieza best-effort: sus errores se registran
// y nunca afectan la respuesta.
type FileRemover interface {
	RemoveByURL(url string) error
}
