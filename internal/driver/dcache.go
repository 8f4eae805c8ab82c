package driver

import (
	"encoding/hex"
	"errors"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/vmihailenco/msgpack/v5"

	"terbium/internal/diag"
	"terbium/internal/source"
)

// Bump when the payload layout changes; stale entries read as misses.
const diskCacheSchemaVersion uint16 = 1

// Digest identifies cached content by its SHA-256.
type Digest = [32]byte

// DiskCache persists per-file analysis results keyed by content hash.
// Safe for concurrent use.
type DiskCache struct {
	mu  sync.RWMutex
	dir string
}

// cachedSpan stores byte offsets only. File IDs are per-run, so the
// reader re-binds spans to the current FileID.
type cachedSpan struct {
	Start uint32
	End   uint32
}

type cachedLabel struct {
	Span     cachedSpan
	Msg      string
	Emphasis bool
}

type cachedDiagnostic struct {
	Severity  uint8
	CodeNum   uint8
	CodeError bool
	Message   string
	Primary   cachedSpan
	Labels    []cachedLabel
	Help      string
}

// DiskPayload is the serialized form of one file's diagnostics.
type DiskPayload struct {
	Schema      uint16
	Diagnostics []cachedDiagnostic
}

// OpenDiskCache initializes a cache under the user's cache directory,
// honoring XDG_CACHE_HOME.
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

func (c *DiskCache) pathFor(key Digest) string {
	return filepath.Join(c.dir, "files", hex.EncodeToString(key[:])+".mp")
}

// Put serializes the bag for the given content hash. Writes go through a
// temp file and rename so readers never observe a partial entry.
func (c *DiskCache) Put(key Digest, bag *diag.Bag) error {
	if c == nil {
		return nil
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	payload := DiskPayload{Schema: diskCacheSchemaVersion}
	for _, d := range bag.Items() {
		cd := cachedDiagnostic{
			Severity:  uint8(d.Severity),
			CodeNum:   d.Code.Num,
			CodeError: d.Code.Error,
			Message:   d.Message,
			Primary:   cachedSpan{Start: d.Primary.Start, End: d.Primary.End},
			Help:      d.Help,
		}
		for _, l := range d.Labels {
			cd.Labels = append(cd.Labels, cachedLabel{
				Span:     cachedSpan{Start: l.Span.Start, End: l.Span.End},
				Msg:      l.Msg,
				Emphasis: l.Emphasis,
			})
		}
		payload.Diagnostics = append(payload.Diagnostics, cd)
	}

	p := c.pathFor(key)
	if err := os.MkdirAll(filepath.Dir(p), 0o755); err != nil {
		return err
	}
	f, err := os.CreateTemp(filepath.Dir(p), "tmp-*")
	if err != nil {
		return err
	}
	defer func() {
		_ = os.Remove(f.Name())
	}()

	if err := msgpack.NewEncoder(f).Encode(&payload); err != nil {
		_ = f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}
	return os.Rename(f.Name(), p)
}

// Get restores a bag for the given content hash, re-binding spans to
// file. The second return is false on a miss or schema mismatch.
func (c *DiskCache) Get(key Digest, file source.FileID, maxDiagnostics int) (*diag.Bag, bool, error) {
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
	defer func() {
		_ = f.Close()
	}()

	var payload DiskPayload
	if err := msgpack.NewDecoder(f).Decode(&payload); err != nil {
		return nil, false, err
	}
	if payload.Schema != diskCacheSchemaVersion {
		return nil, false, nil
	}

	bag := diag.NewBag(maxDiagnostics)
	for _, cd := range payload.Diagnostics {
		d := diag.Diagnostic{
			Severity: diag.Severity(cd.Severity),
			Code:     diag.Code{Num: cd.CodeNum, Error: cd.CodeError},
			Message:  cd.Message,
			Primary:  source.Span{File: file, Start: cd.Primary.Start, End: cd.Primary.End},
			Help:     cd.Help,
		}
		for _, cl := range cd.Labels {
			d.Labels = append(d.Labels, diag.Label{
				Span:     source.Span{File: file, Start: cl.Span.Start, End: cl.Span.End},
				Msg:      cl.Msg,
				Emphasis: cl.Emphasis,
			})
		}
		bag.Add(d)
	}
	return bag, true, nil
}

// DropAll discards every cache entry.
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
	if err := os.MkdirAll(c.dir, 0o755); err != nil {
		return err
	}
	return os.RemoveAll(old)
}
