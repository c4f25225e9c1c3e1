package redisstore

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/localesapp/locales-api/internal/application/ports"
	"github.com/localesapp/locales-api/pkg/config"
)

const connectTimeout = 5 * time.Second

// Connect inicializa un cliente Redis y valida la conectividad con un ping.
func Connect(ctx context.Context, cfg config.RedisConfig) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr: cfg.Addr,
		DB:   cfg.DB,
	})

	pingCtx, cancel := context.WithTimeout(ctx, connectTimeout)
	defer cancel()

	if err := client.Ping(pingCtx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("redis ping: %w", err)
	}
	return client, nil
}

var _ ports.CodeStore = (*CodeStore)(nil)

// CodeStore guarda los códigos de verificación en Redis bajo verify:<email>,
// con TTL: un código no reclamado expira solo, y el store queda acotado.
type CodeStore struct {
	client *redis.Client
	ttl    time.Duration
}

// NewCodeStore construye el store con el TTL configurado para los códigos.
func NewCodeStore(client *redis.Client, ttl time.Duration) *CodeStore {
	return &CodeStore{client: client, ttl: ttl}
}

// Set guarda el código para el email, sobrescribiendo cualquier pendiente y
// renovando su TTL.
func (s *CodeStore) Set(ctx context.Context, email, code string) error {
	if err := s.client.Set(ctx, s.key(email), code, s.ttl).Err(); err != nil {
		return fmt.Errorf("guardar código: %w", err)
	}
	return nil
}

// Get devuelve el código pendiente para el email, o "" si no hay (o ya expiró).
func (s *CodeStore) Get(ctx context.Context, email string) (string, error) {
	code, err := s.client.Get(ctx, s.key(email)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", nil
		}
		return "", fmt.Errorf("leer código: %w", err)
	}
	return code, nil
}

// Delete consume el código del email.
func (s *CodeStore) Delete(ctx context.Context, email string) error {
	if err := s.client.Del(ctx, s.key(email)).Err(); err != nil {
		return fmt.Errorf("eliminar código: %w", err)
	}
	return nil
}

func (s *CodeStore) key(email string) string {
	return "verify:" + email
}
