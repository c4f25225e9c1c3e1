package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/localesapp/locales-api/internal/application/dto"
	"github.com/localesapp/locales-api/internal/infrastructure/storage"
)

// UploadHandler maneja las tres tuberías de subida: avatares, imágenes de locales
// y PDFs. Idénticas en forma; cambian carpeta, prefijo y (para PDF) el filtro.
type UploadHandler struct {
	disk *storage.Disk
}

// NewUploadHandler construye el handler de subidas.
func NewUploadHandler(disk *storage.Disk) *UploadHandler {
	return &UploadHandler{disk: disk}
}

// UploadImage godoc
// @Summary      Subir un avatar
// @Tags         uploads
// @Accept       multipart/form-data
// @Produce      json
// @Param        avatar  formData  file  true  "imagen de avatar"
// @Success      200     {object}  map[string]string
// @Failure      400     {object}  dto.ErrorResponse
// @Router       /uploadImage [post]
func (h *UploadHandler) UploadImage(c *fiber.Ctx) error {
	fh, err := c.FormFile("avatar")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "NO_FILE", Message: "No se ha subido ninguna imagen."})
	}
	name, err := h.disk.SaveAvatar(fh)
	if err != nil {
		return internalError(c, err, "guardar avatar")
	}
	return c.JSON(fiber.Map{
		"message":  "Imagen subida con éxito.",
		"imageUrl": c.BaseURL() + storage.AvatarPrefix + "/" + name,
	})
}

// UploadLocalImage godoc
// @Summary      Subir una imagen de local
// @Tags         uploads
// @Accept       multipart/form-data
// @Produce      json
// @Param        localImage  formData  file  true  "imagen del local"
// @Success      200         {object}  map[string]string
// @Failure      400         {object}  dto.ErrorResponse
// @Router       /uploadLocalImage [post]
func (h *UploadHandler) UploadLocalImage(c *fiber.Ctx) error {
	fh, err := c.FormFile("localImage")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "NO_FILE", Message: "No se ha subido ninguna imagen."})
	}
	name, err := h.disk.SaveLocalImage(fh)
	if err != nil {
		return internalError(c, err, "guardar imagen de local")
	}
	return c.JSON(fiber.Map{
		"message":  "Imagen subida con éxito.",
		"imageUrl": c.BaseURL() + storage.LocalPrefix + "/" + name,
	})
}

// UploadLocalPDF godoc
// @Summary      Subir un PDF (máximo 5MB, solo application/pdf)
// @Tags         uploads
// @Accept       multipart/form-data
// @Produce      json
// @Param        pdfFile  formData  file  true  "archivo PDF"
// @Success      200      {object}  map[string]string
// @Failure      400      {object}  dto.ErrorResponse
// @Router       /uploadLocalPDF [post]
func (h *UploadHandler) UploadLocalPDF(c *fiber.Ctx) error {
	fh, err := c.FormFile("pdfFile")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "NO_FILE", Message: "No se ha subido ningún archivo PDF."})
	}
	name, err := h.disk.SavePDF(fh)
	if err != nil {
		if errors.Is(err, storage.ErrNotPDF) || errors.Is(err, storage.ErrPDFTooLarge) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_FILE", Message: err.Error()})
		}
		return internalError(c, err, "guardar PDF")
	}
	return c.JSON(fiber.Map{
		"message": "PDF subido con éxito.",
		"pdfUrl":  c.BaseURL() + storage.PDFPrefix + "/" + name,
	})
}
