package ticktock_test

import (
	stderrors "errors"
	"testing"

	"github.com/jmgilman/go/errors"
	"github.com/stretchr/testify/require"

	"github.com/tsroten/ticktock"
	"github.com/tsroten/ticktock/store"
	"github.com/tsroten/ticktock/store/filestore"
)

func TestErrorCodes(t *testing.T) {
	require.Equal(t, errors.CodeNotFound, errors.GetCode(ticktock.ErrNotFound))
	require.Equal(t, errors.CodeConflict, errors.GetCode(ticktock.ErrClosed))
}

func TestIsNotFound(t *testing.T) {
	require.True(t, ticktock.IsNotFound(ticktock.ErrNotFound))
	require.False(t, ticktock.IsNotFound(nil))
	require.False(t, ticktock.IsNotFound(ticktock.ErrClosed))
}

func TestIsClosed(t *testing.T) {
	require.True(t, ticktock.IsClosed(ticktock.ErrClosed))
	require.False(t, ticktock.IsClosed(nil))
	require.False(t, ticktock.IsClosed(ticktock.ErrNotFound))
}

// faultyStore wraps a working store and fails Delete on demand, to
// exercise backend failure propagation during eviction.
type faultyStore struct {
	store.Store
	failDeletes bool
	deleteErr   error
}

func (f *faultyStore) Delete(key string) error {
	if f.failDeletes {
		return f.deleteErr
	}
	return f.Store.Delete(key)
}

func TestEvictionDeleteFailurePropagates(t *testing.T) {
	faulty := &faultyStore{
		Store:     filestore.NewMemory(),
		deleteErr: stderrors.New("disk fault"),
	}

	shelf, err := ticktock.Open("",
		ticktock.WithStore(faulty),
		ticktock.WithMaxSize(1),
		ticktock.WithoutExpiration(),
	)
	require.NoError(t, err)

	require.NoError(t, shelf.Set("a", 1))

	faulty.failDeletes = true
	err = shelf.Set("b", 2)
	require.ErrorIs(t, err, faulty.deleteErr)
	require.Equal(t, errors.CodeDatabase, errors.GetCode(err))

	// The victim is gone from the index even though the store delete
	// failed; the overflow error is reported, not hidden.
	require.Equal(t, 1, shelf.Len())
	faulty.failDeletes = false

	var v int
	require.ErrorIs(t, shelf.Get("a", &v), ticktock.ErrNotFound)
	require.NoError(t, shelf.Get("b", &v))
	require.Equal(t, 2, v)
}

func TestDeleteBackendFailureKeepsEntry(t *testing.T) {
	faulty := &faultyStore{
		Store:     filestore.NewMemory(),
		deleteErr: stderrors.New("disk fault"),
	}

	shelf, err := ticktock.Open("",
		ticktock.WithStore(faulty),
		ticktock.WithoutExpiration(),
	)
	require.NoError(t, err)

	require.NoError(t, shelf.Set("k", "v"))

	faulty.failDeletes = true
	err = shelf.Delete("k")
	require.ErrorIs(t, err, faulty.deleteErr)
	require.Equal(t, errors.CodeDatabase, errors.GetCode(err))

	// The store was touched first; the entry stays tracked, readable,
	// and deletable once the backend recovers.
	require.Equal(t, 1, shelf.Len())
	faulty.failDeletes = false

	var v string
	require.NoError(t, shelf.Get("k", &v))
	require.Equal(t, "v", v)
	require.NoError(t, shelf.Delete("k"))
	require.Equal(t, 0, shelf.Len())
}
