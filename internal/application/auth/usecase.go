package auth

import (
	"fmt"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/localesapp/locales-api/internal/application/dto"
	"github.com/localesapp/locales-api/internal/application/ports"
	"github.com/localesapp/locales-api/internal/domain"
	"github.com/localesapp/locales-api/internal/domain/entity"
	"github.com/localesapp/locales-api/internal/domain/repository"
	pkgjwt "github.com/localesapp/locales-api/pkg/jwt"
)

// ResetConfig parámetros del enlace de recuperación de contraseña.
type ResetConfig struct {
	Secret      string
	ExpMinutes  int
	Issuer      string
	FrontendURL string // base para construir <frontend>/reset-password?token=...
}

// AuthUseCase casos de uso de cuentas: registro, login, verificación Google,
// recuperación de contraseña, perfil y avatar.
type AuthUseCase struct {
	usuarioRepo repository.UsuarioRepository
	mailer      ports.Mailer
	resetCfg    ResetConfig
}

// NewAuthUseCase construye el caso de uso de cuentas.
func NewAuthUseCase(usuarioRepo repository.UsuarioRepository, mailer ports.Mailer, resetCfg ResetConfig) *AuthUseCase {
	return &AuthUseCase{usuarioRepo: usuarioRepo, mailer: mailer, resetCfg: resetCfg}
}

// Register crea la cuenta (persona o empresa, según EsEmpresa del entity ya armado
// por el handler). Hashea la contraseña con bcrypt y persiste. Devuelve
// domain.ErrEmailAlreadyExists si el correo ya está registrado: se consulta antes
// de insertar para responder amigable, y la constraint única de la tabla cubre la
// ventana de carrera mapeando a este mismo error.
func (uc *AuthUseCase) Register(u *entity.Usuario, contrasena string) (int64, error) {
	existing, err := uc.usuarioRepo.GetByEmail(u.Email)
	if err != nil {
		return 0, err
	}
	if existing != nil {
		return 0, domain.ErrEmailAlreadyExists
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(contrasena), bcrypt.DefaultCost)
	if err != nil {
		return 0, err
	}
	u.ContrasenaHash = string(hash)
	u.FechaRegistro = time.Now()
	return uc.usuarioRepo.Create(u)
}

// Login verifica email/contraseña. Devuelve domain.ErrUserNotFound si el correo no
// existe y domain.ErrInvalidCredentials si la contraseña no coincide (comparación
// bcrypt, tiempo constante). Nunca muta la fila.
func (uc *AuthUseCase) Login(in dto.LoginRequest) (*dto.LoginResponse, error) {
	user, err := uc.usuarioRepo.GetByEmail(in.Email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.ContrasenaHash), []byte(in.Contrasena)); err != nil {
		return nil, domain.ErrInvalidCredentials
	}
	return &dto.LoginResponse{
		Message:  "Inicio de sesión exitoso.",
		UserID:   user.ID,
		Avatar:   user.Avatar,
		UserName: user.Nombres,
		Rol:      user.Rol,
	}, nil
}

// GoogleVerification reporta si existe cuenta para el email (ya normalizado por el
// handler) y, si existe, los datos mínimos de sesión. Lo usa el flujo OAuth del
// cliente para decidir entre login y registro.
func (uc *AuthUseCase) GoogleVerification(email string) (*dto.GoogleVerificationResponse, error) {
	user, err := uc.usuarioRepo.GetByEmail(email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return &dto.GoogleVerificationResponse{Exists: false}, nil
	}
	return &dto.GoogleVerificationResponse{
		Exists:   true,
		UserID:   user.ID,
		Avatar:   user.Avatar,
		UserName: user.Nombres,
		Rol:      user.Rol,
	}, nil
}

// GeneratePasswordResetLink emite un token firmado de 1 hora con el email embebido,
// construye el enlace sobre la base del frontend y lo envía por correo.
// Devuelve domain.ErrUserNotFound si el correo no tiene cuenta.
func (uc *AuthUseCase) GeneratePasswordResetLink(email string) error {
	user, err := uc.usuarioRepo.GetByEmail(email)
	if err != nil {
		return err
	}
	if user == nil {
		return domain.ErrUserNotFound
	}
	token, err := pkgjwt.GenerateResetToken(uc.resetCfg.Secret, email, uc.resetCfg.Issuer, uc.resetCfg.ExpMinutes)
	if err != nil {
		return err
	}
	resetLink := fmt.Sprintf("%s/reset-password?token=%s", uc.resetCfg.FrontendURL, token)
	body := fmt.Sprintf("Haz clic en el siguiente enlace para recuperar tu contraseña: %s", resetLink)
	return uc.mailer.Send(email, "Recuperación de Contraseña", body)
}

// ResetPassword consume el token del enlace: valida firma y vigencia, y guarda el
// bcrypt de la nueva contraseña para el email embebido.
func (uc *AuthUseCase) ResetPassword(token, contrasena string) error {
	email, err := pkgjwt.ParseResetToken(uc.resetCfg.Secret, token)
	if err != nil {
		return domain.ErrInvalidToken
	}
	user, err := uc.usuarioRepo.GetByEmail(email)
	if err != nil {
		return err
	}
	if user == nil {
		return domain.ErrUserNotFound
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(contrasena), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	return uc.usuarioRepo.UpdatePassword(email, string(hash))
}

// GetUserInfo devuelve el perfil sin credenciales, o (nil, nil) si el id no existe.
func (uc *AuthUseCase) GetUserInfo(id int64) (*dto.UserInfo, error) {
	user, err := uc.usuarioRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, nil
	}
	return &dto.UserInfo{
		ID:            user.ID,
		Email:         user.Email,
		Nombres:       user.Nombres,
		Apellidos:     user.Apellidos,
		TipoDocumento: user.TipoDocumento,
		Documento:     user.Documento,
		Rol:           user.Rol,
		Avatar:        user.Avatar,
		EsEmpresa:     user.EsEmpresa,
		FechaRegistro: user.FechaRegistro,
	}, nil
}

// UpdateAvatar guarda la nueva URL de avatar y devuelve el rol del usuario
// (el frontend lo reusa tras actualizar). domain.ErrUserNotFound si el id no existe.
func (uc *AuthUseCase) UpdateAvatar(userID int64, avatar string) (string, error) {
	if err := uc.usuarioRepo.UpdateAvatar(userID, avatar); err != nil {
		return "", err
	}
	user, err := uc.usuarioRepo.GetByID(userID)
	if err != nil {
		return "", err
	}
	if user == nil {
		return "", domain.ErrUserNotFound
	}
	return user.Rol, nil
}
