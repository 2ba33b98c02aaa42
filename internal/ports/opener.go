package ports

import "context"

type OpenerPort interface {
	Open(ctx context.Context, location string) error
}
