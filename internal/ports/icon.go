package ports

import (
	"context"

	"appbar/internal/types"
)

type IconPort interface {
	LoadIcon(ctx context.Context, entry types.Entry) (types.IconData, error)
}
