package driver

import (
	"crypto/sha256"
	"encoding/binary"
	"encoding/hex"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/vmihailenco/msgpack/v5"

	"esfmt/internal/format"
)

// Bump when the payload layout or the formatting semantics keyed by a digest
// change.
const cacheSchemaVersion uint16 = 1

// Digest keys one (source, ast, options) combination.
type Digest [sha256.Size]byte

// DiskCache stores formatted output per input digest, so unchanged files skip
// the print pass entirely on repeat runs. Thread-safe.
type DiskCache struct {
	mu  sync.RWMutex
	dir string
}

// cachePayload is the msgpack-encoded cache entry.
type cachePayload struct {
	Schema    uint16
	Formatted []byte
}

// OpenDiskCache initializes the cache at the standard XDG location.
func OpenDiskCache(app string) (*DiskCache, error) {
	base := os.Getenv("XDG_CACHE_HOME")
	if base == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, err
		}
		base = filepath.Join(home, ".cache")
	}
	dir := filepath.Join(base, app)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &DiskCache{dir: dir}, nil
}

// InputDigest hashes the AST dump, the source bytes and every option that
// affects output.
func InputDigest(astData, src []byte, opt format.Options) Digest {
	h := sha256.New()
	var schema [2]byte
	binary.LittleEndian.PutUint16(schema[:], cacheSchemaVersion)
	h.Write(schema[:])
	fmt.Fprintf(h, "semi=%t;bs=%t;tc=%s;pw=%d;iw=%d;tabs=%t;",
		opt.Semi, opt.BracketSpacing, opt.TrailingComma, opt.PrintWidth, opt.IndentWidth, opt.UseTabs)
	h.Write(astData)
	h.Write(src)
	var d Digest
	h.Sum(d[:0])
	return d
}

func (c *DiskCache) pathFor(key Digest) string {
	return filepath.Join(c.dir, "fmt", hex.EncodeToString(key[:])+".mp")
}

// Put writes a formatted result atomically.
func (c *DiskCache) Put(key Digest, formatted []byte) error {
	if c == nil {
		return nil
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	p := c.pathFor(key)
	if err := os.MkdirAll(filepath.Dir(p), 0o755); err != nil {
		return err
	}
	f, err := os.CreateTemp(filepath.Dir(p), "tmp-*")
	if err != nil {
		return err
	}
	defer os.Remove(f.Name())

	enc := msgpack.NewEncoder(f)
	if err := enc.Encode(&cachePayload{Schema: cacheSchemaVersion, Formatted: formatted}); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}
	return os.Rename(f.Name(), p)
}

// Get reads a formatted result; ok is false on miss or schema mismatch.
func (c *DiskCache) Get(key Digest) (formatted []byte, ok bool, err error) {
	if c == nil {
		return nil, false, nil
	}
	c.mu.RLock()
	defer c.mu.RUnlock()

	f, err := os.Open(c.pathFor(key))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, false, nil
		}
		return nil, false, err
	}
	defer f.Close()

	var payload cachePayload
	if err := msgpack.NewDecoder(f).Decode(&payload); err != nil {
		return nil, false, err
	}
	if payload.Schema != cacheSchemaVersion {
		return nil, false, nil
	}
	return payload.Formatted, true, nil
}

// DropAll invalidates the whole cache.
func (c *DiskCache) DropAll() error {
	if c == nil {
		return nil
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	old := c.dir + ".old-" + time.Now().Format("20060102150405")
	if err := os.Rename(c.dir, old); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return err
	}
	return os.RemoveAll(old)
}
