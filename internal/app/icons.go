package app

import (
	"context"
	"fmt"
	"sync"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/rs/zerolog/log"

	"appbar/internal/ports"
	"appbar/internal/types"
)

const defaultIconWorkers = 4

// IconLoader fetches icons for entries independently of one another.
type IconLoader struct {
	Icons   ports.IconPort
	Workers int
}

func NewIconLoader(icons ports.IconPort, workers int) IconLoader {
	return IconLoader{Icons: icons, Workers: workers}
}

// Load starts one task per entry, at most Workers at a time. Results arrive
// in completion order and the channel closes once every task has finished.
// A failed task reports its error and does not affect the others.
func (l IconLoader) Load(ctx context.Context, entries []types.Entry) <-chan IconResult {
	results := make(chan IconResult, len(entries))
	workers := l.Workers
	if workers <= 0 {
		workers = defaultIconWorkers
	}
	sem := make(chan struct{}, workers)
	var wg sync.WaitGroup
	for _, entry := range entries {
		wg.Add(1)
		go func() {
			defer wg.Done()
			sem <- struct{}{}
			defer func() { <-sem }()
			results <- l.loadOne(ctx, entry)
		}()
	}
	go func() {
		wg.Wait()
		close(results)
	}()
	return results
}

func (l IconLoader) loadOne(ctx context.Context, entry types.Entry) (result IconResult) {
	result.Location = entry.Location
	defer func() {
		if r := recover(); r != nil {
			result.Err = errbuilder.New().
				WithCode(errbuilder.CodeInternal).
				WithMsg(fmt.Sprintf("icon load panicked: %v", r))
		}
		if result.Err != nil {
			log.Debug().Err(result.Err).Str("bundle", entry.Location).Msg("icon unavailable")
		}
	}()
	if l.Icons == nil {
		result.Err = errbuilder.New().
			WithCode(errbuilder.CodeFailedPrecondition).
			WithMsg("no icon source configured")
		return result
	}
	if err := ctx.Err(); err != nil {
		result.Err = errbuilder.New().
			WithCode(errbuilder.CodeFailedPrecondition).
			WithMsg("icon load canceled").
			WithCause(err)
		return result
	}
	icon, err := l.Icons.LoadIcon(ctx, entry)
	if err != nil {
		result.Err = err
		return result
	}
	result.Icon = icon
	return result
}
