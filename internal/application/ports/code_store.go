package ports

import "context"

// CodeStore guarda los códigos de verificación pendientes por email.
// Un Set sobre un email con código pendiente lo sobrescribe (y renueva su TTL);
// Get devuelve ("", nil) cuando no hay código vigente.
type CodeStore interface {
	Set(ctx context.Context, email, code string) error
	Get(ctx context.Context, email string) (string, error)
	Delete(ctx context.Context, email string) error
}
