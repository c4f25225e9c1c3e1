package verification

import (
	"context"
	"crypto/rand"
	"fmt"
	"math/big"
	"strings"

	"github.com/localesapp/locales-api/internal/application/ports"
	"github.com/localesapp/locales-api/internal/domain"
	"github.com/localesapp/locales-api/internal/domain/repository"
)

// VerificationUseCase maneja los códigos de verificación previos al registro:
// un código de 6 dígitos por email, vigente hasta su TTL, sobrescrito en cada reenvío
// y consumido al validarse.
type VerificationUseCase struct {
	usuarioRepo repository.UsuarioRepository
	codes       ports.CodeStore
	mailer      ports.Mailer
}

// NewVerificationUseCase construye el caso de uso de verificación.
func NewVerificationUseCase(usuarioRepo repository.UsuarioRepository, codes ports.CodeStore, mailer ports.Mailer) *VerificationUseCase {
	return &VerificationUseCase{usuarioRepo: usuarioRepo, codes: codes, mailer: mailer}
}

// SendCode genera un código aleatorio en [100000, 999999], lo guarda bajo el email
// (sobrescribiendo cualquier código pendiente) y lo envía por correo. Devuelve
// domain.ErrEmailAlreadyExists si el correo ya tiene cuenta: el cliente debe ir a login.
// El código nunca se devuelve al caller: solo viaja por el correo.
func (uc *VerificationUseCase) SendCode(ctx context.Context, email string) error {
	email = strings.TrimSpace(email)
	existing, err := uc.usuarioRepo.GetByEmail(email)
	if err != nil {
		return err
	}
	if existing != nil {
		return domain.ErrEmailAlreadyExists
	}

	code, err := generateCode()
	if err != nil {
		return err
	}
	if err := uc.codes.Set(ctx, email, code); err != nil {
		return err
	}

	body := fmt.Sprintf("Tu código de verificación es: %s", code)
	return uc.mailer.Send(email, "Código de Verificación", body)
}

// ValidateCode compara el código recibido con el pendiente para el email; si
// coinciden lo elimina (un código solo se consume una vez). Devuelve
// domain.ErrInvalidCode cuando no coincide, no existe o ya expiró.
func (uc *VerificationUseCase) ValidateCode(ctx context.Context, email, code string) error {
	stored, err := uc.codes.Get(ctx, strings.TrimSpace(email))
	if err != nil {
		return err
	}
	if stored == "" || stored != code {
		return domain.ErrInvalidCode
	}
	return uc.codes.Delete(ctx, strings.TrimSpace(email))
}

// generateCode devuelve un código de 6 dígitos uniforme en [100000, 999999].
func generateCode() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(900000))
	if err != nil {
		return "", fmt.Errorf("generar código: %w", err)
	}
	return fmt.Sprintf("%06d", n.Int64()+100000), nil
}
