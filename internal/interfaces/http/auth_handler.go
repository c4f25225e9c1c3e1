package http

import (
	"errors"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/localesapp/locales-api/internal/application/auth"
	"github.com/localesapp/locales-api/internal/application/dto"
	"github.com/localesapp/locales-api/internal/domain"
	"github.com/localesapp/locales-api/internal/domain/entity"
)

// AuthHandler maneja registro, login, verificación Google, recuperación de
// contraseña, perfil y avatar.
type AuthHandler struct {
	uc *auth.AuthUseCase
}

// NewAuthHandler construye el handler de cuentas.
func NewAuthHandler(uc *auth.AuthUseCase) *AuthHandler {
	return &AuthHandler{uc: uc}
}

// Register godoc
// @Summary      Registrar cuenta (persona o empresa)
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body  dto.RegisterRequest  true  "nombreEmpresa presente => rama empresa"
// @Success      200   {object}  dto.RegisterResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /register [post]
func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var in dto.RegisterRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "Cuerpo inválido."})
	}

	email := strings.TrimSpace(in.Email)
	contrasena := strings.TrimSpace(in.Contrasena)
	rol := strings.TrimSpace(in.Rol)
	nombreEmpresa := strings.TrimSpace(in.NombreEmpresa)

	var u *entity.Usuario
	if nombreEmpresa != "" {
		// Rama empresa: razón social en nombres, el resto de columnas en NULL.
		if email == "" || rol == "" || contrasena == "" {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "Todos los campos de la empresa son obligatorios."})
		}
		u = &entity.Usuario{
			Email:     email,
			Nombres:   nombreEmpresa,
			Rol:       rol,
			EsEmpresa: true,
		}
	} else {
		nombres := strings.TrimSpace(in.Nombres)
		apellidos := strings.TrimSpace(in.Apellidos)
		tipoDocumento := strings.TrimSpace(in.TipoDocumento)
		documento := strings.TrimSpace(in.Documento)
		if email == "" || nombres == "" || apellidos == "" || tipoDocumento == "" || documento == "" || rol == "" || contrasena == "" {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "Todos los campos del usuario son obligatorios."})
		}
		u = &entity.Usuario{
			Email:         email,
			Nombres:       nombres,
			Apellidos:     &apellidos,
			TipoDocumento: &tipoDocumento,
			Documento:     &documento,
			Rol:           rol,
		}
		if avatar := strings.TrimSpace(in.Avatar); avatar != "" {
			u.Avatar = &avatar
		}
	}

	userID, err := h.uc.Register(u, contrasena)
	if err != nil {
		if errors.Is(err, domain.ErrEmailAlreadyExists) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "EMAIL_EXISTS", Message: "El correo ya está en uso."})
		}
		return internalError(c, err, "registrar usuario")
	}
	return c.JSON(dto.RegisterResponse{Message: "Registro exitoso.", UserID: userID})
}

// Login godoc
// @Summary      Iniciar sesión
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body  dto.LoginRequest  true  "email y contraseña"
// @Success      200   {object}  dto.LoginResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /login [post]
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var in dto.LoginRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "Cuerpo inválido."})
	}
	if in.Email == "" || in.Contrasena == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "El correo y la contraseña son obligatorios."})
	}
	out, err := h.uc.Login(in)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "USER_NOT_FOUND", Message: "Usuario no encontrado."})
		}
		if errors.Is(err, domain.ErrInvalidCredentials) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_PASSWORD", Message: "Contraseña incorrecta."})
		}
		return internalError(c, err, "login")
	}
	return c.JSON(out)
}

// GoogleVerification godoc
// @Summary      Verificar si existe cuenta para un email (flujo OAuth del cliente)
// @Tags         auth
// @Produce      json
// @Param        email  query  string  true  "email a verificar"
// @Success      200    {object}  dto.GoogleVerificationResponse
// @Failure      400    {object}  dto.ErrorResponse
// @Router       /googleverification [get]
func (h *AuthHandler) GoogleVerification(c *fiber.Ctx) error {
	email := c.Query("email")
	if email == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "El email es obligatorio."})
	}
	out, err := h.uc.GoogleVerification(strings.ToLower(strings.TrimSpace(email)))
	if err != nil {
		return internalError(c, err, "verificación google")
	}
	return c.JSON(out)
}

// GeneratePasswordResetLink godoc
// @Summary      Enviar enlace de recuperación de contraseña
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body  dto.PasswordResetRequest  true  "email de la cuenta"
// @Success      200   {object}  dto.MessageResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /generatePasswordResetLink [post]
func (h *AuthHandler) GeneratePasswordResetLink(c *fiber.Ctx) error {
	var in dto.PasswordResetRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "Cuerpo inválido."})
	}
	if in.Email == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "El email es obligatorio."})
	}
	if err := h.uc.GeneratePasswordResetLink(in.Email); err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "EMAIL_NOT_FOUND", Message: "Correo no encontrado."})
		}
		return internalError(c, err, "generar enlace de recuperación")
	}
	return c.JSON(dto.MessageResponse{Message: "Enlace de recuperación enviado."})
}

// ResetPassword godoc
// @Summary      Restablecer contraseña con el token del enlace
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body  dto.ResetPasswordRequest  true  "token + nueva contraseña"
// @Success      200   {object}  dto.MessageResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /resetPassword [post]
func (h *AuthHandler) ResetPassword(c *fiber.Ctx) error {
	var in dto.ResetPasswordRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "Cuerpo inválido."})
	}
	if in.Token == "" || in.Contrasena == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "El token y la contraseña son obligatorios."})
	}
	if err := h.uc.ResetPassword(in.Token, in.Contrasena); err != nil {
		if errors.Is(err, domain.ErrInvalidToken) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_TOKEN", Message: "El enlace de recuperación es inválido o expiró."})
		}
		if errors.Is(err, domain.ErrUserNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "EMAIL_NOT_FOUND", Message: "Correo no encontrado."})
		}
		return internalError(c, err, "restablecer contraseña")
	}
	return c.JSON(dto.MessageResponse{Message: "Contraseña actualizada correctamente."})
}

// GetUserInfo godoc
// @Summary      Obtener perfil de usuario por id
// @Tags         auth
// @Produce      json
// @Param        userId  query  int  true  "id del usuario"
// @Success      200     {object}  dto.UserInfoResponse
// @Failure      400     {object}  dto.ErrorResponse
// @Failure      404     {object}  dto.ErrorResponse
// @Router       /getUserInfo [get]
func (h *AuthHandler) GetUserInfo(c *fiber.Ctx) error {
	raw := c.Query("userId")
	if raw == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "El userId es obligatorio."})
	}
	userID, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "El userId debe ser numérico."})
	}
	user, err := h.uc.GetUserInfo(userID)
	if err != nil {
		return internalError(c, err, "obtener perfil")
	}
	if user == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "USER_NOT_FOUND", Message: "Usuario no encontrado."})
	}
	return c.JSON(dto.UserInfoResponse{Message: "Usuario encontrado.", User: *user})
}

// UpdateAvatar godoc
// @Summary      Actualizar la URL de avatar de un usuario
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body  dto.UpdateAvatarRequest  true  "userId + URL del avatar subido"
// @Success      200   {object}  dto.UpdateAvatarResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /updateAvatar [post]
func (h *AuthHandler) UpdateAvatar(c *fiber.Ctx) error {
	var in dto.UpdateAvatarRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "Cuerpo inválido."})
	}
	if in.UserID == 0 || in.Avatar == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "El userId y avatar son necesarios."})
	}
	rol, err := h.uc.UpdateAvatar(in.UserID, in.Avatar)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "USER_NOT_FOUND", Message: "Usuario no encontrado."})
		}
		return internalError(c, err, "actualizar avatar")
	}
	return c.JSON(dto.UpdateAvatarResponse{Message: "Avatar actualizado correctamente.", Rol: rol})
}
