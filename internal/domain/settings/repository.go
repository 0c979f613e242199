package settings

import "context"

type Repository interface {
	// Get devolve as configurações já normalizadas (ver Normalize).
	Get(ctx context.Context) (*Business, error)

	// Put substitui as configurações por inteiro (last-writer-wins:
	// settings são mutadas só pelo dono, leitura é o caso comum).
	Put(ctx context.Context, b *Business) error
}
