package app

import (
	"context"
	"errors"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"appbar/internal/types"
)

// listingFS serves fixed directory listings. Listing a directory named in
// gates blocks until that gate is closed.
type listingFS struct {
	dirs    map[string][]string
	gates   map[string]chan struct{}
	started chan string
}

func (f listingFS) ReadDir(dir string) ([]string, error) {
	if gate, ok := f.gates[dir]; ok {
		if f.started != nil {
			f.started <- dir
		}
		<-gate
	}
	children, ok := f.dirs[dir]
	if !ok {
		return nil, errors.New("no such directory")
	}
	paths := make([]string, 0, len(children))
	for _, name := range children {
		paths = append(paths, filepath.Join(dir, name))
	}
	return paths, nil
}

func (f listingFS) IsDir(path string) bool {
	_, ok := f.dirs[path]
	return ok
}

func (f listingFS) Canonical(path string) (string, error) {
	return filepath.Clean(path), nil
}

type recordingOpener struct {
	mu     sync.Mutex
	opened []string
	err    error
}

func (o *recordingOpener) Open(_ context.Context, location string) error {
	o.mu.Lock()
	defer o.mu.Unlock()
	if o.err != nil {
		return o.err
	}
	o.opened = append(o.opened, location)
	return nil
}

func testService(fs listingFS, opener *recordingOpener) Service {
	return Service{
		FileSystem: fs,
		Opener:     opener,
		Extension:  types.DefaultBundleExtension,
	}
}

func entryLocations(entries []types.Entry) []string {
	out := make([]string, 0, len(entries))
	for _, entry := range entries {
		out = append(out, entry.Location)
	}
	return out
}

func TestSessionStartsEmpty(t *testing.T) {
	session := testService(listingFS{}, &recordingOpener{}).NewSession()
	assert.Equal(t, types.SessionStateEmpty, session.State())
	got := session.Query("")
	assert.NotNil(t, got)
	assert.Empty(t, got)
	assert.Empty(t, session.Query("calc"))
}

func TestSessionLoadAndQuery(t *testing.T) {
	fs := listingFS{dirs: map[string][]string{
		"/Applications": {"Calculator.app", "Safari.app"},
	}}
	session := testService(fs, &recordingOpener{}).NewSession()

	result, err := session.Load(context.Background(), LoadRequest{Roots: []string{"/Applications"}})
	require.NoError(t, err)
	assert.True(t, result.Installed)
	assert.Equal(t, types.SessionStateLoaded, session.State())
	assert.Equal(t, uint64(1), session.Snapshot().Generation)

	if diff := cmp.Diff([]string{"/Applications/Calculator.app"}, entryLocations(session.Query("CALC"))); diff != "" {
		t.Fatalf("unexpected query result (-want +got):\n%s", diff)
	}
	assert.Len(t, session.Query(""), 2)
}

func TestSessionReloadReplacesInventory(t *testing.T) {
	fs := listingFS{dirs: map[string][]string{
		"/A": {"One.app"},
		"/B": {"Two.app"},
	}}
	session := testService(fs, &recordingOpener{}).NewSession()

	_, err := session.Load(context.Background(), LoadRequest{Roots: []string{"/A"}})
	require.NoError(t, err)
	_, err = session.Load(context.Background(), LoadRequest{Roots: []string{"/B"}})
	require.NoError(t, err)

	if diff := cmp.Diff([]string{"/B/Two.app"}, entryLocations(session.Query(""))); diff != "" {
		t.Fatalf("reload must replace, not merge (-want +got):\n%s", diff)
	}
	assert.Equal(t, uint64(2), session.Snapshot().Generation)
}

func TestSessionDiscardsStaleLoad(t *testing.T) {
	gate := make(chan struct{})
	fs := listingFS{
		dirs: map[string][]string{
			"/slow": {"Old.app"},
			"/fast": {"New.app"},
		},
		gates:   map[string]chan struct{}{"/slow": gate},
		started: make(chan string, 1),
	}
	session := testService(fs, &recordingOpener{}).NewSession()

	first := session.LoadAsync(context.Background(), LoadRequest{Roots: []string{"/slow"}})
	select {
	case <-fs.started:
	case <-time.After(5 * time.Second):
		t.Fatal("first load never started")
	}

	second, err := session.Load(context.Background(), LoadRequest{Roots: []string{"/fast"}})
	require.NoError(t, err)
	assert.True(t, second.Installed)

	close(gate)
	outcome := <-first
	require.NoError(t, outcome.Err)
	assert.False(t, outcome.Result.Installed)
	assert.Equal(t, uint64(1), outcome.Result.Inventory.Generation)

	if diff := cmp.Diff([]string{"/fast/New.app"}, entryLocations(session.Query(""))); diff != "" {
		t.Fatalf("stale load overwrote inventory (-want +got):\n%s", diff)
	}
	assert.Equal(t, uint64(2), session.Snapshot().Generation)
}

func TestSessionLoadAsyncDeliversOnce(t *testing.T) {
	fs := listingFS{dirs: map[string][]string{"/Applications": {"Notes.app"}}}
	session := testService(fs, &recordingOpener{}).NewSession()

	outcomes := session.LoadAsync(context.Background(), LoadRequest{Roots: []string{"/Applications"}})
	outcome, ok := <-outcomes
	require.True(t, ok)
	require.NoError(t, outcome.Err)
	assert.True(t, outcome.Result.Installed)
	_, ok = <-outcomes
	assert.False(t, ok, "channel must close after one outcome")
}

func TestSessionCanceledLoadNotInstalled(t *testing.T) {
	fs := listingFS{dirs: map[string][]string{"/Applications": {"Notes.app"}}}
	session := testService(fs, &recordingOpener{}).NewSession()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := session.Load(ctx, LoadRequest{Roots: []string{"/Applications"}})
	require.Error(t, err)
	assert.Equal(t, errbuilder.CodeFailedPrecondition, errbuilder.CodeOf(err))
	assert.Equal(t, types.SessionStateEmpty, session.State())
}

func TestSessionOpenUsesCurrentLocation(t *testing.T) {
	fs := listingFS{dirs: map[string][]string{
		"/A": {"One.app"},
		"/B": {"Two.app"},
	}}
	opener := &recordingOpener{}
	session := testService(fs, opener).NewSession()

	_, err := session.Load(context.Background(), LoadRequest{Roots: []string{"/A"}})
	require.NoError(t, err)
	stale := session.Query("one")[0]
	require.NoError(t, session.Open(context.Background(), stale))

	_, err = session.Load(context.Background(), LoadRequest{Roots: []string{"/B"}})
	require.NoError(t, err)
	err = session.Open(context.Background(), stale)
	require.Error(t, err)
	assert.Equal(t, errbuilder.CodeNotFound, errbuilder.CodeOf(err))

	if diff := cmp.Diff([]string{"/A/One.app"}, opener.opened); diff != "" {
		t.Fatalf("unexpected opened locations (-want +got):\n%s", diff)
	}
}

func TestSessionOpenFailureSurfaces(t *testing.T) {
	fs := listingFS{dirs: map[string][]string{"/A": {"One.app"}}}
	opener := &recordingOpener{err: errors.New("launch failed")}
	session := testService(fs, opener).NewSession()

	_, err := session.Load(context.Background(), LoadRequest{Roots: []string{"/A"}})
	require.NoError(t, err)
	err = session.Open(context.Background(), session.Query("")[0])
	require.Error(t, err)
	assert.Contains(t, err.Error(), "launch failed")
}

func TestSessionOpenOnEmptySession(t *testing.T) {
	session := testService(listingFS{}, &recordingOpener{}).NewSession()
	err := session.Open(context.Background(), types.Entry{Location: "/Applications/Ghost.app"})
	require.Error(t, err)
	assert.Equal(t, errbuilder.CodeNotFound, errbuilder.CodeOf(err))
}
