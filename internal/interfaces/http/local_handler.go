package http

import (
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"

	"github.com/localesapp/locales-api/internal/application/dto"
	applocal "github.com/localesapp/locales-api/internal/application/local"
	"github.com/localesapp/locales-api/internal/domain"
	"github.com/localesapp/locales-api/internal/infrastructure/storage"
)

// maxImagenesLocal máximo de imágenes aceptadas al registrar un local.
const maxImagenesLocal = 10

// LocalHandler maneja el ciclo de vida de los locales.
type LocalHandler struct {
	uc   *applocal.LocalUseCase
	disk *storage.Disk
}

// NewLocalHandler construye el handler de locales.
func NewLocalHandler(uc *applocal.LocalUseCase, disk *storage.Disk) *LocalHandler {
	return &LocalHandler{uc: uc, disk: disk}
}

// Registrar godoc
// @Summary      Registrar un local con contrato obligatorio y hasta 10 imágenes
// @Tags         locales
// @Accept       multipart/form-data
// @Produce      json
// @Param        nombre       formData  string  true   "nombre del local"
// @Param        proveedorId  formData  int     true   "id del proveedor dueño"
// @Param        contrato     formData  file    true   "contrato en PDF"
// @Param        imagenes     formData  file    false  "imágenes del local (máximo 10)"
// @Success      200  {object}  dto.RegistrarLocalResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /registrarLocal [post]
func (h *LocalHandler) Registrar(c *fiber.Ctx) error {
	form, err := c.MultipartForm()
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "Formulario multipart inválido."})
	}

	contratos := form.File["contrato"]
	if len(contratos) == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "NO_CONTRACT", Message: "El contrato (PDF) es obligatorio"})
	}
	nombre := c.FormValue("nombre")
	proveedorRaw := c.FormValue("proveedorId")
	if nombre == "" || proveedorRaw == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "Faltan datos obligatorios"})
	}
	proveedorID, err := strconv.ParseInt(proveedorRaw, 10, 64)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "El proveedorId debe ser numérico."})
	}
	imagenes := form.File["imagenes"]
	if len(imagenes) > maxImagenesLocal {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "TOO_MANY_FILES", Message: "Se permiten máximo 10 imágenes."})
	}

	// Contrato por la tubería de PDF: filtro de tipo y tamaño incluidos.
	contratoName, err := h.disk.SavePDF(contratos[0])
	if err != nil {
		if errors.Is(err, storage.ErrNotPDF) || errors.Is(err, storage.ErrPDFTooLarge) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_FILE", Message: err.Error()})
		}
		return internalError(c, err, "guardar contrato")
	}
	contratoURL := c.BaseURL() + storage.PDFPrefix + "/" + contratoName

	saved := []string{contratoURL}
	imagenesURLs := make([]string, 0, len(imagenes))
	for _, fh := range imagenes {
		name, err := h.disk.SaveLocalImage(fh)
		if err != nil {
			h.cleanupFiles(saved)
			return internalError(c, err, "guardar imagen de local")
		}
		u := c.BaseURL() + storage.LocalPrefix + "/" + name
		imagenesURLs = append(imagenesURLs, u)
		saved = append(saved, u)
	}

	localID, err := h.uc.Registrar(c.UserContext(), nombre, proveedorID, contratoURL, imagenesURLs)
	if err != nil {
		// La transacción ya revirtió las filas; los archivos recién escritos sobran.
		h.cleanupFiles(saved)
		return internalError(c, err, "registrar local")
	}

	message := "Local registrado con imágenes y contrato"
	if len(imagenesURLs) == 0 {
		message = "Local registrado sin imágenes"
	}
	return c.JSON(dto.RegistrarLocalResponse{
		Message:      message,
		LocalID:      localID,
		ImagenesURLs: imagenesURLs,
		ContratoURL:  contratoURL,
	})
}

func (h *LocalHandler) cleanupFiles(urls []string) {
	for _, u := range urls {
		if err := h.disk.RemoveByURL(u); err != nil {
			log.Error().Err(err).Str("url", u).Msg("limpiar archivo huérfano")
		}
	}
}

// ListByProveedor godoc
// @Summary      Listar los locales de un proveedor con sus imágenes
// @Tags         locales
// @Produce      json
// @Param        userId  path  int  true  "id del proveedor"
// @Success      200  {array}   dto.LocalResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/local/{userId} [get]
func (h *LocalHandler) ListByProveedor(c *fiber.Ctx) error {
	proveedorID, ok := paramID(c, "userId")
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "El userId debe ser numérico."})
	}
	locales, err := h.uc.ListByProveedor(proveedorID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "No se encontraron locales."})
		}
		return internalError(c, err, "listar locales")
	}
	return c.JSON(locales)
}

// GetInfo godoc
// @Summary      Obtener un local por su id con sus imágenes
// @Tags         locales
// @Produce      json
// @Param        localId  path  int  true  "id del local"
// @Success      200  {object}  dto.LocalResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/local/info/{localId} [get]
func (h *LocalHandler) GetInfo(c *fiber.Ctx) error {
	localID, ok := paramID(c, "localId")
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "El localId debe ser numérico."})
	}
	local, err := h.uc.GetByID(localID)
	if err != nil {
		if errors.Is(err, domain.ErrLocalNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "No se encontró el local."})
		}
		return internalError(c, err, "obtener local")
	}
	return c.JSON(local)
}

// Actualizar godoc
// @Summary      Completar un local: dirección obligatoria y PDF opcional
// @Tags         locales
// @Accept       multipart/form-data
// @Produce      json
// @Param        localId    path      int     true   "id del local"
// @Param        direccion  formData  string  true   "dirección del local"
// @Param        pdf        formData  file    false  "PDF de reemplazo"
// @Success      200  {object}  dto.ActualizarLocalResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /actualizar_local/{localId} [put]
func (h *LocalHandler) Actualizar(c *fiber.Ctx) error {
	localID, ok := paramID(c, "localId")
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "El localId y la dirección son obligatorios."})
	}
	direccion := c.FormValue("direccion")
	if direccion == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "El localId y la dirección son obligatorios."})
	}

	var pdfURL *string
	if fh, err := c.FormFile("pdf"); err == nil && fh != nil {
		name, err := h.disk.SavePDF(fh)
		if err != nil {
			if errors.Is(err, storage.ErrNotPDF) || errors.Is(err, storage.ErrPDFTooLarge) {
				return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_FILE", Message: err.Error()})
			}
			return internalError(c, err, "guardar PDF del local")
		}
		u := c.BaseURL() + storage.PDFPrefix + "/" + name
		pdfURL = &u
	}

	if err := h.uc.Actualizar(localID, direccion, pdfURL); err != nil {
		return internalError(c, err, "actualizar local")
	}
	return c.JSON(dto.ActualizarLocalResponse{Message: "Local actualizado correctamente.", PDFURL: pdfURL})
}

// Eliminar godoc
// @Summary      Eliminar un local con sus imágenes (filas y archivos)
// @Tags         locales
// @Produce      json
// @Param        localId  path  int  true  "id del local"
// @Success      200  {object}  dto.MessageResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /eliminarLocal/{localId} [delete]
func (h *LocalHandler) Eliminar(c *fiber.Ctx) error {
	localID, ok := paramID(c, "localId")
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "El localId debe ser numérico."})
	}
	if err := h.uc.Eliminar(c.UserContext(), localID); err != nil {
		if errors.Is(err, domain.ErrLocalNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "No se encontró el local."})
		}
		return internalError(c, err, "eliminar local")
	}
	return c.JSON(dto.MessageResponse{Message: "Local e imágenes eliminados correctamente."})
}
