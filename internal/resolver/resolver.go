// Package resolver locates candidate image files for normalized image
// codes. It keeps a time-bounded index of the image directory and answers
// batch lookups with a bounded worker pool; callers always receive a
// plain, fully resolved mapping; no concurrency crosses the boundary.
package resolver

import (
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/piwi3910/printlab/internal/model"
)

// DefaultWorkers bounds the per-batch lookup fan-out.
const DefaultWorkers = 4

// DefaultIndexTTL is how long a directory index stays fresh.
const DefaultIndexTTL = 5 * time.Minute

// imageExtensions lists the file types considered candidate images.
var imageExtensions = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".tif":  true,
	".tiff": true,
}

// indexEntry is one candidate file with its modification time.
type indexEntry struct {
	path    string
	modTime time.Time
}

// Resolver maps image codes to candidate file paths under a root
// directory. Safe for concurrent use.
type Resolver struct {
	root    string
	workers int
	ttl     time.Duration

	mu      sync.Mutex
	index   map[string][]indexEntry // code -> candidate files
	indexed time.Time
}

// New creates a resolver over the given image directory with default
// worker count and index TTL.
func New(root string) *Resolver {
	return &Resolver{
		root:    root,
		workers: DefaultWorkers,
		ttl:     DefaultIndexTTL,
	}
}

// NewWithOptions creates a resolver with explicit worker bound and TTL.
func NewWithOptions(root string, workers int, ttl time.Duration) *Resolver {
	if workers < 1 {
		workers = 1
	}
	return &Resolver{root: root, workers: workers, ttl: ttl}
}

// Resolve maps each code to its candidate paths ordered newest-first.
// Codes with no matching files map to an empty, non-nil slice. The index
// is rebuilt at most once per TTL window.
func (r *Resolver) Resolve(codes []string) (map[string][]string, error) {
	index, err := r.currentIndex()
	if err != nil {
		return nil, err
	}

	out := make(map[string][]string, len(codes))
	var outMu sync.Mutex

	jobs := make(chan string)
	var wg sync.WaitGroup
	for w := 0; w < r.workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for code := range jobs {
				paths := lookupCode(index, code)
				outMu.Lock()
				out[code] = paths
				outMu.Unlock()
			}
		}()
	}
	for _, code := range codes {
		jobs <- model.NormalizeImageCode(code)
	}
	close(jobs)
	wg.Wait()

	return out, nil
}

// lookupCode orders a code's candidates newest-first.
func lookupCode(index map[string][]indexEntry, code string) []string {
	entries := index[code]
	sorted := make([]indexEntry, len(entries))
	copy(sorted, entries)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].modTime.After(sorted[j].modTime)
	})

	paths := make([]string, 0, len(sorted))
	for _, e := range sorted {
		paths = append(paths, e.path)
	}
	return paths
}

// currentIndex returns the cached directory index, rebuilding it when
// stale.
func (r *Resolver) currentIndex() (map[string][]indexEntry, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.index != nil && time.Since(r.indexed) < r.ttl {
		return r.index, nil
	}

	index := make(map[string][]indexEntry)
	err := filepath.Walk(r.root, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if info.IsDir() {
			return nil
		}
		ext := strings.ToLower(filepath.Ext(path))
		if !imageExtensions[ext] {
			return nil
		}
		code := codeFromFilename(info.Name())
		if code == "" {
			return nil
		}
		index[code] = append(index[code], indexEntry{path: path, modTime: info.ModTime()})
		return nil
	})
	if err != nil {
		return nil, err
	}

	r.index = index
	r.indexed = time.Now()
	return index, nil
}

// codeFromFilename extracts the normalized image code from a filename
// such as "0012.jpg" or "0012_retouched.jpg": the leading digit run
// before any separator, zero-padded to four digits.
func codeFromFilename(name string) string {
	base := strings.TrimSuffix(name, filepath.Ext(name))
	var digits strings.Builder
	for _, r := range base {
		if r < '0' || r > '9' {
			break
		}
		digits.WriteRune(r)
	}
	if digits.Len() == 0 {
		return ""
	}
	return model.NormalizeImageCode(digits.String())
}

// Invalidate drops the cached index so the next Resolve rescans.
func (r *Resolver) Invalidate() {
	r.mu.Lock()
	r.index = nil
	r.mu.Unlock()
}
