package verification_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/localesapp/locales-api/internal/application/verification"
	"github.com/localesapp/locales-api/internal/domain"
	"github.com/localesapp/locales-api/internal/domain/entity"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes
// ──────────────────────────────────────────────────────────────────────────────

// fakeCodeStore mapa en memoria; el TTL real lo aporta Redis en producción.
type fakeCodeStore struct {
	codes map[string]string
}

func newFakeCodeStore() *fakeCodeStore {
	return &fakeCodeStore{codes: make(map[string]string)}
}

func (f *fakeCodeStore) Set(_ context.Context, email, code string) error {
	f.codes[email] = code
	return nil
}

func (f *fakeCodeStore) Get(_ context.Context, email string) (string, error) {
	return f.codes[email], nil
}

func (f *fakeCodeStore) Delete(_ context.Context, email string) error {
	delete(f.codes, email)
	return nil
}

// fakeUsuarioRepo solo necesita responder GetByEmail para estas pruebas.
type fakeUsuarioRepo struct {
	existing map[string]bool
}

func (f *fakeUsuarioRepo) Create(*entity.Usuario) (int64, error)       { return 0, nil }
func (f *fakeUsuarioRepo) GetByID(int64) (*entity.Usuario, error)      { return nil, nil }
func (f *fakeUsuarioRepo) UpdateAvatar(int64, string) error            { return nil }
func (f *fakeUsuarioRepo) UpdatePassword(string, string) error         { return nil }
func (f *fakeUsuarioRepo) GetByEmail(email string) (*entity.Usuario, error) {
	if f.existing[email] {
		return &entity.Usuario{ID: 1, Email: email}, nil
	}
	return nil, nil
}

type fakeMailer struct {
	bodies []string
	tos    []string
}

func (f *fakeMailer) Send(to, _, body string) error {
	f.tos = append(f.tos, to)
	f.bodies = append(f.bodies, body)
	return nil
}

func buildUseCase(existing ...string) (*verification.VerificationUseCase, *fakeCodeStore, *fakeMailer) {
	repo := &fakeUsuarioRepo{existing: make(map[string]bool)}
	for _, e := range existing {
		repo.existing[e] = true
	}
	store := newFakeCodeStore()
	mailer := &fakeMailer{}
	return verification.NewVerificationUseCase(repo, store, mailer), store, mailer
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests
// ──────────────────────────────────────────────────────────────────────────────

func TestSendCode_GuardaYEnviaCodigoDeSeisDigitos(t *testing.T) {
	uc, store, mailer := buildUseCase()
	ctx := context.Background()

	require.NoError(t, uc.SendCode(ctx, "nueva@example.com"))

	code := store.codes["nueva@example.com"]
	require.Regexp(t, `^\d{6}$`, code, "el código debe tener exactamente 6 dígitos")
	assert.GreaterOrEqual(t, code, "100000")
	assert.LessOrEqual(t, code, "999999")

	require.Len(t, mailer.bodies, 1)
	assert.Equal(t, "nueva@example.com", mailer.tos[0])
	assert.Contains(t, mailer.bodies[0], code, "el código viaja en el correo")
}

func TestSendCode_CorreoConCuenta(t *testing.T) {
	uc, store, mailer := buildUseCase("registrada@example.com")
	err := uc.SendCode(context.Background(), "registrada@example.com")
	assert.ErrorIs(t, err, domain.ErrEmailAlreadyExists)
	assert.Empty(t, store.codes)
	assert.Empty(t, mailer.bodies)
}

func TestSendCode_ReenvioSobrescribeElPendiente(t *testing.T) {
	uc, store, mailer := buildUseCase()
	ctx := context.Background()

	require.NoError(t, uc.SendCode(ctx, "nueva@example.com"))
	primero := store.codes["nueva@example.com"]

	// Reintentar hasta que el segundo código difiera (colisión 1/900000 por intento).
	var segundo string
	for i := 0; i < 5; i++ {
		require.NoError(t, uc.SendCode(ctx, "nueva@example.com"))
		segundo = store.codes["nueva@example.com"]
		if segundo != primero {
			break
		}
	}
	require.NotEqual(t, primero, segundo)
	assert.GreaterOrEqual(t, len(mailer.bodies), 2)

	// El código viejo ya no vale; el vigente sí.
	assert.ErrorIs(t, uc.ValidateCode(ctx, "nueva@example.com", primero), domain.ErrInvalidCode)
	assert.NoError(t, uc.ValidateCode(ctx, "nueva@example.com", segundo))
}

func TestValidateCode_ConsumeElCodigo(t *testing.T) {
	uc, store, _ := buildUseCase()
	ctx := context.Background()

	require.NoError(t, uc.SendCode(ctx, "nueva@example.com"))
	code := store.codes["nueva@example.com"]

	require.NoError(t, uc.ValidateCode(ctx, "nueva@example.com", code))
	assert.Empty(t, store.codes, "el código validado se elimina")

	// Una segunda validación del mismo código falla.
	assert.ErrorIs(t, uc.ValidateCode(ctx, "nueva@example.com", code), domain.ErrInvalidCode)
}

func TestValidateCode_CodigoIncorrecto(t *testing.T) {
	uc, store, _ := buildUseCase()
	ctx := context.Background()

	require.NoError(t, uc.SendCode(ctx, "nueva@example.com"))
	err := uc.ValidateCode(ctx, "nueva@example.com", "000000")
	assert.ErrorIs(t, err, domain.ErrInvalidCode)
	assert.NotEmpty(t, store.codes, "un intento fallido no consume el código")
}

func TestValidateCode_SinCodigoPendiente(t *testing.T) {
	uc, _, _ := buildUseCase()
	err := uc.ValidateCode(context.Background(), "nadie@example.com", "123456")
	assert.ErrorIs(t, err, domain.ErrInvalidCode)
}
