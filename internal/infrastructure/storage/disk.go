package storage

import (
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/url"
	"os"
	"path"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	applocal "github.com/localesapp/locales-api/internal/application/local"
	"github.com/localesapp/locales-api/pkg/config"
)

// Prefijos públicos bajo los que se sirve cada carpeta.
const (
	AvatarPrefix = "/uploadAvatar"
	LocalPrefix  = "/uploadLocal"
	PDFPrefix    = "/papeles_locales"
)

// MaxPDFSize tamaño máximo aceptado para un PDF (5 MB).
const MaxPDFSize = 5 * 1024 * 1024

// Errores de validación de subida.
var (
	ErrNotPDF      = errors.New("solo se permiten archivos PDF")
	ErrPDFTooLarge = errors.New("el archivo PDF supera el tamaño máximo de 5MB")
)

var _ applocal.FileRemover = (*Disk)(nil)

// Disk es el blob store en disco: tres carpetas independientes por clase de
// archivo (avatares, imágenes de locales, PDFs de contratos/papeles).
type Disk struct {
	avatarDir string
	localDir  string
	pdfDir    string
}

// NewDisk construye el store con las carpetas configuradas.
func NewDisk(cfg config.UploadConfig) *Disk {
	return &Disk{
		avatarDir: cfg.AvatarDir,
		localDir:  cfg.LocalDir,
		pdfDir:    cfg.PDFDir,
	}
}

// EnsureDirs crea las tres carpetas si no existen (se llama al arrancar).
func (d *Disk) EnsureDirs() error {
	for _, dir := range []string{d.avatarDir, d.localDir, d.pdfDir} {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("crear carpeta %s: %w", dir, err)
		}
	}
	return nil
}

// AvatarDir, LocalDir y PDFDir exponen las carpetas para el file server estático.
func (d *Disk) AvatarDir() string { return d.avatarDir }
func (d *Disk) LocalDir() string  { return d.localDir }
func (d *Disk) PDFDir() string    { return d.pdfDir }

// SaveAvatar guarda un avatar y devuelve el nombre de archivo generado.
func (d *Disk) SaveAvatar(fh *multipart.FileHeader) (string, error) {
	return d.save(fh, d.avatarDir, "avatar")
}

// SaveLocalImage guarda una imagen de local y devuelve el nombre generado.
func (d *Disk) SaveLocalImage(fh *multipart.FileHeader) (string, error) {
	return d.save(fh, d.localDir, "local")
}

// SavePDF valida que el archivo sea un PDF de hasta 5 MB, lo guarda en la carpeta
// de papeles y devuelve el nombre generado.
func (d *Disk) SavePDF(fh *multipart.FileHeader) (string, error) {
	if err := ValidatePDF(fh); err != nil {
		return "", err
	}
	return d.save(fh, d.pdfDir, "doc")
}

// ValidatePDF rechaza archivos que no declaren MIME application/pdf o pesen más de 5 MB.
func ValidatePDF(fh *multipart.FileHeader) error {
	if fh.Header.Get("Content-Type") != "application/pdf" {
		return ErrNotPDF
	}
	if fh.Size > MaxPDFSize {
		return ErrPDFTooLarge
	}
	return nil
}

func (d *Disk) save(fh *multipart.FileHeader, dir, prefix string) (string, error) {
	name := newFilename(prefix, fh.Filename)

	src, err := fh.Open()
	if err != nil {
		return "", fmt.Errorf("abrir archivo subido: %w", err)
	}
	defer src.Close()

	dst, err := os.Create(filepath.Join(dir, name))
	if err != nil {
		return "", fmt.Errorf("crear archivo: %w", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		return "", fmt.Errorf("escribir archivo: %w", err)
	}
	return name, nil
}

// newFilename genera una clave de almacenamiento todavía no usada:
// <prefijo>-<millis>-<uuid><ext>. El uuid elimina las colisiones del esquema
// timestamp+aleatorio original.
func newFilename(prefix, original string) string {
	ext := strings.ToLower(filepath.Ext(original))
	return fmt.Sprintf("%s-%d-%s%s", prefix, time.Now().UnixMilli(), uuid.NewString(), ext)
}

// RemoveByURL borra del disco el archivo detrás de una URL pública, resolviendo
// la carpeta por el prefijo de la ruta. Solo usa el nombre base: una URL con
// traversal no puede salir de la carpeta.
func (d *Disk) RemoveByURL(rawURL string) error {
	u, err := url.Parse(rawURL)
	if err != nil {
		return fmt.Errorf("url inválida %q: %w", rawURL, err)
	}
	dir, err := d.dirForPath(u.Path)
	if err != nil {
		return err
	}
	name := path.Base(u.Path)
	if name == "." || name == "/" || name == "" {
		return fmt.Errorf("url sin nombre de archivo: %q", rawURL)
	}
	if err := os.Remove(filepath.Join(dir, name)); err != nil {
		if os.IsNotExist(err) {
			return nil // ya no está: la limpieza es idempotente
		}
		return err
	}
	return nil
}

func (d *Disk) dirForPath(p string) (string, error) {
	switch {
	case strings.HasPrefix(p, AvatarPrefix+"/"):
		return d.avatarDir, nil
	case strings.HasPrefix(p, LocalPrefix+"/"):
		return d.localDir, nil
	case strings.HasPrefix(p, PDFPrefix+"/"):
		return d.pdfDir, nil
	}
	return "", fmt.Errorf("ruta fuera de las carpetas de subida: %q", p)
}
