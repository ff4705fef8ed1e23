// Package filestore provides a go-billy-backed store provider that keeps
// one file per entry.
//
// Keys are arbitrary strings, so each record file is named with the
// URL-safe base64 encoding of its key. Writes go through a temporary file
// followed by a rename, so a record is either fully present or absent.
// NewLocal stores entries in a directory on the OS filesystem; NewMemory
// stores them in an in-memory filesystem with identical semantics, which
// makes it a convenient backing store for tests.
package filestore

import (
	"encoding/base64"
	"errors"
	"io"
	"io/fs"
	"strings"

	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/memfs"
	"github.com/go-git/go-billy/v5/osfs"
	"github.com/go-git/go-billy/v5/util"

	"github.com/tsroten/ticktock/store"
)

const entrySuffix = ".entry"

// FileStore is a store.Store that keeps one file per entry on a
// billy.Filesystem.
type FileStore struct {
	bfs    billy.Filesystem
	closed bool
}

// New creates a file store on an existing billy filesystem, with entries
// stored at its root. Useful for sharing one filesystem between a store
// handle and other machinery, or reopening an in-memory store.
func New(bfs billy.Filesystem) *FileStore {
	return &FileStore{bfs: bfs}
}

// NewLocal creates a file store rooted at dir on the local filesystem.
// The directory is created lazily on the first write.
func NewLocal(dir string) *FileStore {
	return &FileStore{bfs: osfs.New(dir)}
}

// NewMemory creates a file store backed by an in-memory filesystem.
// The store is initially empty and its contents do not survive the process.
func NewMemory() *FileStore {
	return &FileStore{bfs: memfs.New()}
}

// Unwrap returns the underlying billy.Filesystem.
func (f *FileStore) Unwrap() billy.Filesystem {
	return f.bfs
}

// fileName converts a key to its record file name. Base64 keeps arbitrary
// key strings (separators, dots, non-ASCII) safe to use as file names.
func fileName(key string) string {
	return base64.RawURLEncoding.EncodeToString([]byte(key)) + entrySuffix
}

// keyName converts a record file name back to its key. The second return
// value is false for files that are not entry records.
func keyName(name string) (string, bool) {
	encoded, ok := strings.CutSuffix(name, entrySuffix)
	if !ok {
		return "", false
	}
	raw, err := base64.RawURLEncoding.DecodeString(encoded)
	if err != nil {
		return "", false
	}
	return string(raw), true
}

// Read returns the record stored under key.
func (f *FileStore) Read(key string) ([]byte, error) {
	if f.closed {
		return nil, store.ErrClosed
	}
	file, err := f.bfs.Open(fileName(key))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, store.ErrNotFound
		}
		return nil, err
	}
	defer file.Close()
	return io.ReadAll(file)
}

// tempName is where records are staged before the rename into place. The
// store has a single owner, so one staging file is enough; a leftover from
// a crashed process is ignored by Keys and overwritten by the next write.
const tempName = ".ticktock.tmp"

// Write stores data under key, replacing any existing record.
// The record file is written to a temporary name and renamed into place so
// a record is never visible half-written.
func (f *FileStore) Write(key string, data []byte) error {
	if f.closed {
		return store.ErrClosed
	}
	if err := util.WriteFile(f.bfs, tempName, data, 0o644); err != nil {
		return err
	}
	return f.bfs.Rename(tempName, fileName(key))
}

// Delete removes the record stored under key.
func (f *FileStore) Delete(key string) error {
	if f.closed {
		return store.ErrClosed
	}
	if err := f.bfs.Remove(fileName(key)); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return store.ErrNotFound
		}
		return err
	}
	return nil
}

// Contains reports whether a record exists under key.
func (f *FileStore) Contains(key string) (bool, error) {
	if f.closed {
		return false, store.ErrClosed
	}
	if _, err := f.bfs.Stat(fileName(key)); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

// Keys returns every key currently present in the store.
func (f *FileStore) Keys() ([]string, error) {
	if f.closed {
		return nil, store.ErrClosed
	}
	infos, err := f.bfs.ReadDir(".")
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			// Root directory is created lazily; no writes yet.
			return nil, nil
		}
		return nil, err
	}
	keys := make([]string, 0, len(infos))
	for _, info := range infos {
		if info.IsDir() {
			continue
		}
		if key, ok := keyName(info.Name()); ok {
			keys = append(keys, key)
		}
	}
	return keys, nil
}

// Flush is a no-op: every Write lands on the filesystem before returning.
func (f *FileStore) Flush() error {
	if f.closed {
		return store.ErrClosed
	}
	return nil
}

// Close marks the store closed. Record files remain on disk.
func (f *FileStore) Close() error {
	if f.closed {
		return store.ErrClosed
	}
	f.closed = true
	return nil
}
