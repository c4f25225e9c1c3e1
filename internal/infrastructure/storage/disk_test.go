package storage

import (
	"bytes"
	"mime/multipart"
	"net/textproto"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/localesapp/locales-api/pkg/config"
)

// fileHeader arma un *multipart.FileHeader real escribiendo y reparseando un
// cuerpo multipart, que es como llega desde Fiber.
func fileHeader(t *testing.T, field, filename, contentType string, content []byte) *multipart.FileHeader {
	t.Helper()

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	h := make(textproto.MIMEHeader)
	h.Set("Content-Disposition", `form-data; name="`+field+`"; filename="`+filename+`"`)
	h.Set("Content-Type", contentType)
	part, err := w.CreatePart(h)
	require.NoError(t, err)
	_, err = part.Write(content)
	require.NoError(t, err)
	require.NoError(t, w.Close())

	r := multipart.NewReader(&buf, w.Boundary())
	form, err := r.ReadForm(32 << 20)
	require.NoError(t, err)
	t.Cleanup(func() { _ = form.RemoveAll() })
	require.Len(t, form.File[field], 1)
	return form.File[field][0]
}

func newTestDisk(t *testing.T) *Disk {
	t.Helper()
	base := t.TempDir()
	d := NewDisk(config.UploadConfig{
		AvatarDir: filepath.Join(base, "uploadAvatar"),
		LocalDir:  filepath.Join(base, "uploadLocal"),
		PDFDir:    filepath.Join(base, "papeles_locales"),
	})
	require.NoError(t, d.EnsureDirs())
	return d
}

func TestNewFilename_Forma(t *testing.T) {
	re := regexp.MustCompile(`^avatar-\d+-[0-9a-f-]{36}\.jpg$`)
	name := newFilename("avatar", "Foto.JPG")
	assert.Regexp(t, re, name, "prefijo, millis, uuid y extensión en minúsculas")
}

func TestNewFilename_NoColisiona(t *testing.T) {
	vistos := make(map[string]bool)
	for i := 0; i < 100; i++ {
		name := newFilename("local", "foto.png")
		assert.False(t, vistos[name], "nombre repetido: %s", name)
		vistos[name] = true
	}
}

func TestSaveAvatar_EscribeElArchivo(t *testing.T) {
	d := newTestDisk(t)
	fh := fileHeader(t, "avatar", "perfil.png", "image/png", []byte("png-bytes"))

	name, err := d.SaveAvatar(fh)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(name, "avatar-"))

	data, err := os.ReadFile(filepath.Join(d.AvatarDir(), name))
	require.NoError(t, err)
	assert.Equal(t, []byte("png-bytes"), data)
}

func TestSavePDF_AceptaPDFValido(t *testing.T) {
	d := newTestDisk(t)
	fh := fileHeader(t, "pdfFile", "contrato.pdf", "application/pdf", []byte("%PDF-1.4"))

	name, err := d.SavePDF(fh)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(name, "doc-"))
	assert.True(t, strings.HasSuffix(name, ".pdf"))

	_, err = os.Stat(filepath.Join(d.PDFDir(), name))
	assert.NoError(t, err)
}

func TestValidatePDF_RechazaMIMEDistinto(t *testing.T) {
	fh := fileHeader(t, "pdfFile", "contrato.pdf", "image/png", []byte("no soy pdf"))
	assert.ErrorIs(t, ValidatePDF(fh), ErrNotPDF)
}

func TestValidatePDF_RechazaTamanoExcesivo(t *testing.T) {
	fh := fileHeader(t, "pdfFile", "contrato.pdf", "application/pdf", []byte("%PDF"))
	fh.Size = MaxPDFSize + 1
	assert.ErrorIs(t, ValidatePDF(fh), ErrPDFTooLarge)
}

func TestSavePDF_NoGuardaSiFallaLaValidacion(t *testing.T) {
	d := newTestDisk(t)
	fh := fileHeader(t, "pdfFile", "contrato.pdf", "text/plain", []byte("texto"))

	_, err := d.SavePDF(fh)
	require.ErrorIs(t, err, ErrNotPDF)

	entradas, err := os.ReadDir(d.PDFDir())
	require.NoError(t, err)
	assert.Empty(t, entradas)
}

func TestRemoveByURL_BorraPorPrefijo(t *testing.T) {
	d := newTestDisk(t)
	fh := fileHeader(t, "localImage", "salon.jpg", "image/jpeg", []byte("jpg"))
	name, err := d.SaveLocalImage(fh)
	require.NoError(t, err)

	require.NoError(t, d.RemoveByURL("http://localhost:3000"+LocalPrefix+"/"+name))

	_, err = os.Stat(filepath.Join(d.LocalDir(), name))
	assert.True(t, os.IsNotExist(err))
}

func TestRemoveByURL_EsIdempotente(t *testing.T) {
	d := newTestDisk(t)
	err := d.RemoveByURL("http://localhost:3000" + AvatarPrefix + "/avatar-1-inexistente.png")
	assert.NoError(t, err, "borrar algo ya borrado no es un error")
}

func TestRemoveByURL_RechazaRutasFuera(t *testing.T) {
	d := newTestDisk(t)
	err := d.RemoveByURL("http://localhost:3000/etc/passwd")
	assert.Error(t, err)
}

func TestRemoveByURL_IgnoraTraversal(t *testing.T) {
	d := newTestDisk(t)
	// path.Base reduce la URL al nombre: no puede escapar de la carpeta.
	fuera := filepath.Join(filepath.Dir(d.AvatarDir()), "secreto.txt")
	require.NoError(t, os.WriteFile(fuera, []byte("x"), 0o600))

	err := d.RemoveByURL("http://localhost:3000" + AvatarPrefix + "/../secreto.txt")
	require.NoError(t, err) // base "secreto.txt" no existe dentro de la carpeta: idempotente

	_, err = os.Stat(fuera)
	assert.NoError(t, err, "el archivo fuera de la carpeta sigue intacto")
}
