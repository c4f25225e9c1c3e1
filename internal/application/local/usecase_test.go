package local_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	applocal "github.com/localesapp/locales-api/internal/application/local"
	"github.com/localesapp/locales-api/internal/domain"
	"github.com/localesapp/locales-api/internal/domain/entity"
	"github.com/localesapp/locales-api/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes
// ──────────────────────────────────────────────────────────────────────────────

// fakeStore estado compartido entre los repos fake: simula las dos tablas.
type fakeStore struct {
	seq      int64
	locales  map[int64]*entity.Local
	imagenes map[int64][]string
	// failBulk fuerza el fallo del insert de imágenes para probar el rollback.
	failBulk bool
}

func newFakeStore() *fakeStore {
	return &fakeStore{locales: make(map[int64]*entity.Local), imagenes: make(map[int64][]string)}
}

type fakeLocalRepo struct{ s *fakeStore }

func (r *fakeLocalRepo) Create(l *entity.Local) (int64, error) {
	r.s.seq++
	copia := *l
	copia.ID = r.s.seq
	r.s.locales[copia.ID] = &copia
	return copia.ID, nil
}

func (r *fakeLocalRepo) GetByID(id int64) (*entity.Local, error) {
	l, ok := r.s.locales[id]
	if !ok {
		return nil, nil
	}
	copia := *l
	copia.Imagenes = append([]string{}, r.s.imagenes[id]...)
	return &copia, nil
}

func (r *fakeLocalRepo) ListByProveedor(proveedorID int64) ([]*entity.Local, error) {
	var out []*entity.Local
	for id := int64(1); id <= r.s.seq; id++ {
		l, ok := r.s.locales[id]
		if !ok || l.ProveedorID != proveedorID {
			continue
		}
		copia := *l
		copia.Imagenes = append([]string{}, r.s.imagenes[id]...)
		out = append(out, &copia)
	}
	return out, nil
}

func (r *fakeLocalRepo) UpdateDireccion(id int64, direccion string, pdfURL *string) error {
	if l, ok := r.s.locales[id]; ok {
		l.Direccion = &direccion
		if pdfURL != nil {
			l.PDFURL = pdfURL
		}
	}
	return nil
}

func (r *fakeLocalRepo) Delete(id int64) error {
	if _, ok := r.s.locales[id]; !ok {
		return domain.ErrLocalNotFound
	}
	delete(r.s.locales, id)
	return nil
}

type fakeImagenRepo struct{ s *fakeStore }

func (r *fakeImagenRepo) BulkCreate(localID int64, urls []string) error {
	if r.s.failBulk {
		return errors.New("insert imagenes: fallo simulado")
	}
	r.s.imagenes[localID] = append(r.s.imagenes[localID], urls...)
	return nil
}

func (r *fakeImagenRepo) ListURLs(localID int64) ([]string, error) {
	return append([]string{}, r.s.imagenes[localID]...), nil
}

func (r *fakeImagenRepo) DeleteByLocal(localID int64) error {
	delete(r.s.imagenes, localID)
	return nil
}

// fakeTxRunner ejecuta fn sobre una copia del estado y solo la aplica en commit,
// imitando el todo-o-nada de la transacción real.
type fakeTxRunner struct{ s *fakeStore }

func (r *fakeTxRunner) Run(_ context.Context, fn func(repository.LocalRepository, repository.ImagenLocalRepository) error) error {
	snapshot := &fakeStore{
		seq:      r.s.seq,
		locales:  make(map[int64]*entity.Local, len(r.s.locales)),
		imagenes: make(map[int64][]string, len(r.s.imagenes)),
		failBulk: r.s.failBulk,
	}
	for id, l := range r.s.locales {
		copia := *l
		snapshot.locales[id] = &copia
	}
	for id, urls := range r.s.imagenes {
		snapshot.imagenes[id] = append([]string{}, urls...)
	}
	if err := fn(&fakeLocalRepo{s: snapshot}, &fakeImagenRepo{s: snapshot}); err != nil {
		return err // rollback: el estado original queda intacto
	}
	*r.s = *snapshot
	return nil
}

// fakeRemover registra las URLs borradas; puede fallar para URLs marcadas.
type fakeRemover struct {
	removed []string
	fail    map[string]bool
}

func (f *fakeRemover) RemoveByURL(u string) error {
	if f.fail[u] {
		return errors.New("unlink fallo simulado")
	}
	f.removed = append(f.removed, u)
	return nil
}

func buildUseCase() (*applocal.LocalUseCase, *fakeStore, *fakeRemover) {
	s := newFakeStore()
	remover := &fakeRemover{fail: make(map[string]bool)}
	uc := applocal.NewLocalUseCase(&fakeLocalRepo{s: s}, &fakeTxRunner{s: s}, remover)
	return uc, s, remover
}

var imagenesDemo = []string{
	"http://localhost:3000/uploadLocal/local-1-a.jpg",
	"http://localhost:3000/uploadLocal/local-2-b.jpg",
	"http://localhost:3000/uploadLocal/local-3-c.jpg",
}

const contratoDemo = "http://localhost:3000/papeles_locales/doc-1-x.pdf"

// ──────────────────────────────────────────────────────────────────────────────
// Tests
// ──────────────────────────────────────────────────────────────────────────────

func TestRegistrar_ConImagenes(t *testing.T) {
	uc, s, _ := buildUseCase()

	id, err := uc.Registrar(context.Background(), "Salón Azul", 7, contratoDemo, imagenesDemo)
	require.NoError(t, err)
	require.Equal(t, int64(1), id)

	require.NotNil(t, s.locales[id])
	assert.Equal(t, "Salón Azul", s.locales[id].Nombre)
	assert.Equal(t, int64(7), s.locales[id].ProveedorID)
	assert.Nil(t, s.locales[id].Direccion, "la dirección se completa después")
	assert.Equal(t, imagenesDemo, s.imagenes[id], "las imágenes quedan en orden de inserción")
}

func TestRegistrar_SinImagenes(t *testing.T) {
	uc, s, _ := buildUseCase()
	id, err := uc.Registrar(context.Background(), "Salón Azul", 7, contratoDemo, nil)
	require.NoError(t, err)
	assert.Empty(t, s.imagenes[id])
}

func TestRegistrar_FalloDeImagenesRevierteElLocal(t *testing.T) {
	uc, s, _ := buildUseCase()
	s.failBulk = true

	_, err := uc.Registrar(context.Background(), "Salón Azul", 7, contratoDemo, imagenesDemo)
	require.Error(t, err)
	assert.Empty(t, s.locales, "el local no debe quedar a medias si fallan las imágenes")
}

func TestListByProveedor_ConImagenesAgregadas(t *testing.T) {
	uc, _, _ := buildUseCase()
	ctx := context.Background()
	_, err := uc.Registrar(ctx, "Salón Azul", 7, contratoDemo, imagenesDemo)
	require.NoError(t, err)
	_, err = uc.Registrar(ctx, "Terraza Sol", 7, contratoDemo, nil)
	require.NoError(t, err)

	locales, err := uc.ListByProveedor(7)
	require.NoError(t, err)
	require.Len(t, locales, 2)
	assert.Equal(t, "Salón Azul", locales[0].Nombre)
	assert.Len(t, locales[0].Imagenes, 3)
	assert.Equal(t, imagenesDemo, locales[0].Imagenes)
	assert.Empty(t, locales[1].Imagenes)
}

func TestListByProveedor_URLsConCaracteresArbitrarios(t *testing.T) {
	uc, _, _ := buildUseCase()
	// Una URL puede llevar coma y espacio (query strings, nombres originales);
	// debe volver byte a byte, nunca partida ni recombinada.
	urls := []string{
		"http://localhost:3000/uploadLocal/local-1-a.jpg?v=1, 2",
		"http://localhost:3000/uploadLocal/local, con coma.jpg",
	}
	_, err := uc.Registrar(context.Background(), "Salón Azul", 7, contratoDemo, urls)
	require.NoError(t, err)

	locales, err := uc.ListByProveedor(7)
	require.NoError(t, err)
	require.Len(t, locales, 1)
	assert.Equal(t, urls, locales[0].Imagenes)
}

func TestListByProveedor_SinLocales(t *testing.T) {
	uc, _, _ := buildUseCase()
	_, err := uc.ListByProveedor(99)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestGetByID_Inexistente(t *testing.T) {
	uc, _, _ := buildUseCase()
	_, err := uc.GetByID(42)
	assert.ErrorIs(t, err, domain.ErrLocalNotFound)
}

func TestActualizar_DireccionYPDF(t *testing.T) {
	uc, s, _ := buildUseCase()
	id, err := uc.Registrar(context.Background(), "Salón Azul", 7, contratoDemo, nil)
	require.NoError(t, err)

	pdf := "http://localhost:3000/papeles_locales/doc-2-y.pdf"
	require.NoError(t, uc.Actualizar(id, "Av. Principal 123", &pdf))

	require.NotNil(t, s.locales[id].Direccion)
	assert.Equal(t, "Av. Principal 123", *s.locales[id].Direccion)
	require.NotNil(t, s.locales[id].PDFURL)
	assert.Equal(t, pdf, *s.locales[id].PDFURL)
}

func TestEliminar_BorraFilasYArchivos(t *testing.T) {
	uc, s, remover := buildUseCase()
	ctx := context.Background()
	id, err := uc.Registrar(ctx, "Salón Azul", 7, contratoDemo, imagenesDemo)
	require.NoError(t, err)

	require.NoError(t, uc.Eliminar(ctx, id))

	assert.Empty(t, s.locales, "la fila del local se elimina")
	assert.Empty(t, s.imagenes[id], "las filas de imagen se eliminan")
	assert.Equal(t, imagenesDemo, remover.removed, "cada archivo de imagen se intenta borrar")

	_, err = uc.GetByID(id)
	assert.ErrorIs(t, err, domain.ErrLocalNotFound)
}

func TestEliminar_FalloDeArchivoNoAfectaElResultado(t *testing.T) {
	uc, s, remover := buildUseCase()
	ctx := context.Background()
	id, err := uc.Registrar(ctx, "Salón Azul", 7, contratoDemo, imagenesDemo)
	require.NoError(t, err)
	remover.fail[imagenesDemo[1]] = true

	require.NoError(t, uc.Eliminar(ctx, id), "un unlink fallido no debe propagar error")
	assert.Empty(t, s.locales)
	assert.Equal(t, []string{imagenesDemo[0], imagenesDemo[2]}, remover.removed)
}

func TestEliminar_LocalInexistente(t *testing.T) {
	uc, _, remover := buildUseCase()
	err := uc.Eliminar(context.Background(), 42)
	assert.ErrorIs(t, err, domain.ErrLocalNotFound)
	assert.Empty(t, remover.removed, "sin filas no hay archivos que borrar")
}

func TestRegistrar_AsignaFechaDeRegistro(t *testing.T) {
	uc, s, _ := buildUseCase()
	antes := time.Now()
	id, err := uc.Registrar(context.Background(), "Salón Azul", 7, contratoDemo, nil)
	require.NoError(t, err)
	assert.False(t, s.locales[id].FechaRegistro.Before(antes.Add(-time.Second)))
}
