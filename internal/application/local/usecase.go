package local

import (
	"context"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/localesapp/locales-api/internal/application/dto"
	"github.com/localesapp/locales-api/internal/domain"
	"github.com/localesapp/locales-api/internal/domain/entity"
	"github.com/localesapp/locales-api/internal/domain/repository"
)

// LocalUseCase ciclo de vida de un local: alta con contrato e imágenes,
// consultas por proveedor o por id, actualización y eliminación en cascada.
type LocalUseCase struct {
	localRepo repository.LocalRepository
	txRunner  TxRunner
	files     FileRemover
}

// NewLocalUseCase construye el caso de uso de locales.
func NewLocalUseCase(localRepo repository.LocalRepository, txRunner TxRunner, files FileRemover) *LocalUseCase {
	return &LocalUseCase{localRepo: localRepo, txRunner: txRunner, files: files}
}

// Registrar inserta el local (dirección NULL, se completa después) y sus imágenes
// en una sola transacción: si el insert en bloque de imágenes falla, el local no
// queda a medias. Devuelve el id generado.
func (uc *LocalUseCase) Registrar(ctx context.Context, nombre string, proveedorID int64, contratoURL string, imagenesURLs []string) (int64, error) {
	var localID int64
	err := uc.txRunner.Run(ctx, func(localRepo repository.LocalRepository, imagenRepo repository.ImagenLocalRepository) error {
		id, err := localRepo.Create(&entity.Local{
			Nombre:        nombre,
			ProveedorID:   proveedorID,
			ContratoURL:   contratoURL,
			FechaRegistro: time.Now(),
		})
		if err != nil {
			return err
		}
		localID = id
		if len(imagenesURLs) == 0 {
			return nil
		}
		return imagenRepo.BulkCreate(id, imagenesURLs)
	})
	if err != nil {
		return 0, err
	}
	return localID, nil
}

// ListByProveedor devuelve los locales de un proveedor con sus imágenes en orden
// de inserción. Devuelve domain.ErrNotFound si el proveedor no tiene ninguno.
func (uc *LocalUseCase) ListByProveedor(proveedorID int64) ([]dto.LocalResponse, error) {
	locales, err := uc.localRepo.ListByProveedor(proveedorID)
	if err != nil {
		return nil, err
	}
	if len(locales) == 0 {
		return nil, domain.ErrNotFound
	}
	out := make([]dto.LocalResponse, 0, len(locales))
	for _, l := range locales {
		out = append(out, toLocalResponse(l))
	}
	return out, nil
}

// GetByID devuelve un local con sus imágenes, o domain.ErrLocalNotFound.
func (uc *LocalUseCase) GetByID(localID int64) (*dto.LocalResponse, error) {
	l, err := uc.localRepo.GetByID(localID)
	if err != nil {
		return nil, err
	}
	if l == nil {
		return nil, domain.ErrLocalNotFound
	}
	resp := toLocalResponse(l)
	return &resp, nil
}

// Actualizar guarda la dirección y, si viene, la URL del PDF de reemplazo.
func (uc *LocalUseCase) Actualizar(localID int64, direccion string, pdfURL *string) error {
	return uc.localRepo.UpdateDireccion(localID, direccion, pdfURL)
}

// Eliminar borra las filas de imágenes y la del local en una sola transacción
// (primero las filas, para no dejar referencias colgando) y después intenta borrar
// los archivos de imagen del disco. Cada borrado de archivo es best-effort: un
// fallo se registra y la operación continúa.
func (uc *LocalUseCase) Eliminar(ctx context.Context, localID int64) error {
	var urls []string
	err := uc.txRunner.Run(ctx, func(localRepo repository.LocalRepository, imagenRepo repository.ImagenLocalRepository) error {
		var err error
		urls, err = imagenRepo.ListURLs(localID)
		if err != nil {
			return err
		}
		if err := imagenRepo.DeleteByLocal(localID); err != nil {
			return err
		}
		return localRepo.Delete(localID)
	})
	if err != nil {
		return err
	}

	for _, u := range urls {
		if err := uc.files.RemoveByURL(u); err != nil {
			log.Error().Err(err).Str("url", u).Msg("eliminar archivo de imagen del local")
		}
	}
	return nil
}

func toLocalResponse(l *entity.Local) dto.LocalResponse {
	return dto.LocalResponse{
		LocalID:       l.ID,
		Nombre:        l.Nombre,
		Direccion:     l.Direccion,
		FechaRegistro: l.FechaRegistro,
		ContratoURL:   l.ContratoURL,
		PDFURL:        l.PDFURL,
		ProveedorID:   l.ProveedorID,
		Imagenes:      l.Imagenes,
	}
}
