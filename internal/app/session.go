package app

import (
	"context"
	"fmt"
	"runtime/debug"
	"sync"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/rs/zerolog/log"

	"appbar/internal/core"
	"appbar/internal/ports"
	"appbar/internal/types"
)

// Session owns the current inventory. Loads are numbered as they are
// issued; a finished load is installed only if no newer load was issued in
// the meantime, so the most recently requested inventory always wins.
type Session struct {
	builder core.InventoryBuilder
	opener  ports.OpenerPort

	mu      sync.RWMutex
	issued  uint64
	current types.Inventory
	loaded  bool
}

func newSession(builder core.InventoryBuilder, opener ports.OpenerPort) *Session {
	return &Session{builder: builder, opener: opener}
}

func (s *Session) State() types.SessionState {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.loaded {
		return types.SessionStateLoaded
	}
	return types.SessionStateEmpty
}

func (s *Session) Snapshot() types.Inventory {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.current
}

// Load walks the requested roots and installs the result. It blocks until
// the walk completes.
func (s *Session) Load(ctx context.Context, req LoadRequest) (LoadResult, error) {
	return s.run(ctx, s.issue(), req)
}

// LoadAsync issues a load immediately and runs the walk on its own
// goroutine. The channel receives exactly one outcome.
func (s *Session) LoadAsync(ctx context.Context, req LoadRequest) <-chan LoadOutcome {
	generation := s.issue()
	out := make(chan LoadOutcome, 1)
	go func() {
		defer close(out)
		defer func() {
			if r := recover(); r != nil {
				log.Error().Str("stack", string(debug.Stack())).Msgf("inventory load panicked: %v", r)
				out <- LoadOutcome{Err: errbuilder.New().
					WithCode(errbuilder.CodeInternal).
					WithMsg(fmt.Sprintf("inventory load panicked: %v", r))}
			}
		}()
		result, err := s.run(ctx, generation, req)
		out <- LoadOutcome{Result: result, Err: err}
	}()
	return out
}

func (s *Session) issue() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.issued++
	return s.issued
}

func (s *Session) run(ctx context.Context, generation uint64, req LoadRequest) (LoadResult, error) {
	inventory := s.builder.Load(ctx, req.Roots, req.Recursive)
	inventory.Generation = generation
	if err := ctx.Err(); err != nil {
		return LoadResult{Inventory: inventory}, errbuilder.New().
			WithCode(errbuilder.CodeFailedPrecondition).
			WithMsg("inventory load canceled").
			WithCause(err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if generation != s.issued {
		log.Debug().
			Uint64("generation", generation).
			Uint64("latest", s.issued).
			Msg("discarding stale inventory load")
		return LoadResult{Inventory: inventory}, nil
	}
	s.current = inventory
	s.loaded = true
	log.Debug().
		Uint64("generation", generation).
		Int("entries", inventory.Len()).
		Msg("inventory installed")
	return LoadResult{Inventory: inventory, Installed: true}, nil
}

// Query filters the current inventory. An empty session yields no entries.
func (s *Session) Query(text string) []types.Entry {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if !s.loaded {
		return []types.Entry{}
	}
	return core.Query(s.current, text)
}

// Open launches entry through the platform opener. The entry must belong to
// the current inventory so a location from a replaced inventory is never
// handed to the platform.
func (s *Session) Open(ctx context.Context, entry types.Entry) error {
	s.mu.RLock()
	current, ok := s.current.Lookup(entry.Location)
	s.mu.RUnlock()
	if !ok {
		return errbuilder.New().
			WithCode(errbuilder.CodeNotFound).
			WithMsg("entry not in current inventory: " + entry.Location)
	}
	if s.opener == nil {
		return errbuilder.New().
			WithCode(errbuilder.CodeFailedPrecondition).
			WithMsg("no opener configured")
	}
	if err := s.opener.Open(ctx, current.Location); err != nil {
		log.Warn().Err(err).Str("location", current.Location).Msg("open failed")
		return err
	}
	log.Info().Str("location", current.Location).Str("name", current.DisplayName).Msg("opened application")
	return nil
}
