package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/localesapp/locales-api/internal/application/dto"
	"github.com/localesapp/locales-api/internal/application/verification"
	"github.com/localesapp/locales-api/internal/domain"
)

// VerificationHandler maneja el envío y la validación de códigos de verificación.
type VerificationHandler struct {
	uc *verification.VerificationUseCase
}

// NewVerificationHandler construye el handler de verificación.
func NewVerificationHandler(uc *verification.VerificationUseCase) *VerificationHandler {
	return &VerificationHandler{uc: uc}
}

// SendVerificationEmail godoc
// @Summary      Enviar código de verificación por correo
// @Tags         verification
// @Accept       json
// @Produce      json
// @Param        body  body  dto.SendCodeRequest  true  "email a verificar"
// @Success      200   {object}  dto.SendCodeResponse
// @Failure      400   {object}  dto.SendCodeResponse
// @Router       /sendVerificationEmail [post]
func (h *VerificationHandler) SendVerificationEmail(c *fiber.Ctx) error {
	var in dto.SendCodeRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "Cuerpo inválido."})
	}
	if in.Email == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "El email es obligatorio."})
	}
	if err := h.uc.SendCode(c.UserContext(), in.Email); err != nil {
		if errors.Is(err, domain.ErrEmailAlreadyExists) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.SendCodeResponse{
				Message:  "Este correo ya tiene una cuenta",
				Redirect: "login",
			})
		}
		return internalError(c, err, "enviar código de verificación")
	}
	// El código viaja solo por correo, nunca en la respuesta.
	return c.JSON(dto.SendCodeResponse{Message: "Correo enviado con éxito"})
}

// ValidateCode godoc
// @Summary      Validar un código de verificación pendiente
// @Tags         verification
// @Accept       json
// @Produce      json
// @Param        body  body  dto.ValidateCodeRequest  true  "email + código de 6 dígitos"
// @Success      200   {object}  dto.MessageResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /validateCode [post]
func (h *VerificationHandler) ValidateCode(c *fiber.Ctx) error {
	var in dto.ValidateCodeRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "Cuerpo inválido."})
	}
	if in.Email == "" || in.Code == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "El email y el código son obligatorios."})
	}
	if err := h.uc.ValidateCode(c.UserContext(), in.Email, in.Code); err != nil {
		if errors.Is(err, domain.ErrInvalidCode) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_CODE", Message: "Código incorrecto"})
		}
		return internalError(c, err, "validar código")
	}
	return c.JSON(dto.MessageResponse{Message: "Código válido"})
}
