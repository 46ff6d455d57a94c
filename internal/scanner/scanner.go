package scanner

import (
	"errors"
	"fmt"
	"math/rand"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"syscall"
	"time"

	"kilo-server/internal/filesystem"
	"kilo-server/internal/mediatypes"
	"kilo-server/internal/metrics"
	"kilo-server/internal/workers"
)

// Sentinel errors for path resolution and listing operations.
var (
	// ErrInvalidPath indicates that a client-supplied path escapes the
	// media root via parent segments, absolute markers, or symlinks.
	ErrInvalidPath = errors.New("path outside media root")

	// ErrNotFound indicates that the requested file or directory does not exist.
	ErrNotFound = errors.New("not found")

	// ErrNotDirectory indicates that the requested path exists but is not a directory.
	ErrNotDirectory = errors.New("not a directory")

	// ErrNotMedia indicates that the requested file is not a recognized media file.
	ErrNotMedia = errors.New("not a media file")
)

// Scanner lists directories and media files under a fixed media root.
// It is safe for concurrent use; all state is immutable after construction.
type Scanner struct {
	root  string
	set   mediatypes.Set
	retry filesystem.RetryConfig
}

// New creates a Scanner rooted at root. The root must exist and be a
// directory; it is resolved to an absolute, symlink-free path so that
// later containment checks compare like with like.
func New(root string, set mediatypes.Set) (*Scanner, error) {
	abs, err := filepath.Abs(root)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve media root: %w", err)
	}

	resolved, err := filepath.EvalSymlinks(abs)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve media root: %w", err)
	}

	info, err := os.Stat(resolved)
	if err != nil {
		return nil, fmt.Errorf("failed to stat media root: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("media root %s: %w", root, ErrNotDirectory)
	}

	return &Scanner{
		root:  resolved,
		set:   set,
		retry: filesystem.DefaultRetryConfig(),
	}, nil
}

// Root returns the absolute media root path.
func (s *Scanner) Root() string {
	return s.root
}

// Resolve validates a client-supplied relative path and returns the
// absolute filesystem path it refers to. The result is guaranteed to be
// the media root or a descendant of it, with symlinks resolved.
//
// Returns ErrInvalidPath for traversal attempts and ErrNotFound if the
// path does not exist.
func (s *Scanner) Resolve(relPath string) (string, error) {
	relPath = normalize(relPath)

	// Reject before touching the filesystem: a cleaned path that is
	// absolute or starts with ".." can never land under the root.
	if filepath.IsAbs(relPath) || relPath == ".." || strings.HasPrefix(relPath, ".."+string(filepath.Separator)) {
		return "", ErrInvalidPath
	}

	fullPath := filepath.Join(s.root, relPath)

	// Resolve symlinks so that a link pointing outside the root is caught
	// by the containment check below.
	resolved, err := filepath.EvalSymlinks(fullPath)
	if err != nil {
		// A regular file used as a directory component surfaces as
		// ENOTDIR, which os.IsNotExist does not cover.
		if os.IsNotExist(err) || errors.Is(err, syscall.ENOTDIR) {
			return "", ErrNotFound
		}
		return "", err
	}

	if !contains(s.root, resolved) {
		return "", ErrInvalidPath
	}

	return resolved, nil
}

// ResolveFile resolves a relative path that must refer to a regular media
// file. Returns the absolute path, its file info, and the media kind.
func (s *Scanner) ResolveFile(relPath string) (string, os.FileInfo, mediatypes.Kind, error) {
	fullPath, err := s.Resolve(relPath)
	if err != nil {
		return "", nil, mediatypes.KindOther, err
	}

	info, err := filesystem.StatWithRetry(fullPath, s.retry)
	if err != nil {
		if os.IsNotExist(err) {
			return "", nil, mediatypes.KindOther, ErrNotFound
		}
		return "", nil, mediatypes.KindOther, err
	}

	if info.IsDir() || !info.Mode().IsRegular() {
		return "", nil, mediatypes.KindOther, ErrNotFound
	}

	kind := s.set.KindOf(info.Name())
	if kind == mediatypes.KindOther {
		return "", nil, mediatypes.KindOther, ErrNotMedia
	}

	return fullPath, info, kind, nil
}

// ListDirectories returns the immediate subdirectories of relPath, each
// annotated with the media counts of its direct children, plus the media
// counts of the listed directory itself.
func (s *Scanner) ListDirectories(relPath string) (*DirectoryListing, error) {
	start := time.Now()
	var err error
	defer func() {
		status := "success"
		if err != nil {
			status = "error"
		}
		metrics.ScannerOperationsTotal.WithLabelValues("list_directories", status).Inc()
		metrics.ScannerOperationDuration.WithLabelValues("list_directories").Observe(time.Since(start).Seconds())
	}()

	relPath = normalize(relPath)

	fullPath, err := s.resolveDir(relPath)
	if err != nil {
		return nil, err
	}

	entries, err := filesystem.ReadDirWithRetry(fullPath, s.retry)
	if err != nil {
		return nil, err
	}

	listing := &DirectoryListing{
		Path:        filepath.ToSlash(relPath),
		Breadcrumb:  buildBreadcrumb(relPath),
		Directories: []DirectoryEntry{},
	}

	for _, entry := range entries {
		if strings.HasPrefix(entry.Name(), ".") {
			continue
		}

		if entry.IsDir() {
			listing.Directories = append(listing.Directories, DirectoryEntry{
				Name: entry.Name(),
				Path: joinRel(relPath, entry.Name()),
			})
			continue
		}

		switch s.set.KindOf(entry.Name()) {
		case mediatypes.KindImage:
			listing.ImageCount++
		case mediatypes.KindVideo:
			listing.VideoCount++
		}
	}

	s.countDirectories(fullPath, listing.Directories)

	sort.Slice(listing.Directories, func(i, j int) bool {
		return strings.ToLower(listing.Directories[i].Name) < strings.ToLower(listing.Directories[j].Name)
	})

	metrics.ScannerItemsReturned.WithLabelValues("list_directories").Observe(float64(len(listing.Directories)))

	return listing, nil
}

// ListMedia returns the media files directly in relPath. If kind is
// KindImage or KindVideo only that kind is returned. If randomize is set
// the result order is shuffled once for this call; otherwise entries are
// sorted by name.
func (s *Scanner) ListMedia(relPath string, kind mediatypes.Kind, randomize bool) (*MediaListing, error) {
	start := time.Now()
	var err error
	defer func() {
		status := "success"
		if err != nil {
			status = "error"
		}
		metrics.ScannerOperationsTotal.WithLabelValues("list_media", status).Inc()
		metrics.ScannerOperationDuration.WithLabelValues("list_media").Observe(time.Since(start).Seconds())
	}()

	relPath = normalize(relPath)

	fullPath, err := s.resolveDir(relPath)
	if err != nil {
		return nil, err
	}

	entries, err := filesystem.ReadDirWithRetry(fullPath, s.retry)
	if err != nil {
		return nil, err
	}

	listing := &MediaListing{
		Path:       filepath.ToSlash(relPath),
		Randomized: randomize,
		Items:      []MediaEntry{},
	}

	for _, entry := range entries {
		if entry.IsDir() || strings.HasPrefix(entry.Name(), ".") {
			continue
		}

		entryKind := s.set.KindOf(entry.Name())
		if entryKind == mediatypes.KindOther {
			continue
		}
		if kind != mediatypes.KindOther && entryKind != kind {
			continue
		}

		info, infoErr := entry.Info()
		if infoErr != nil {
			continue
		}

		listing.Items = append(listing.Items, MediaEntry{
			Name:     entry.Name(),
			Path:     joinRel(relPath, entry.Name()),
			Kind:     entryKind,
			Size:     info.Size(),
			ModTime:  info.ModTime(),
			MimeType: mediatypes.MimeType(entry.Name()),
		})
	}

	sort.Slice(listing.Items, func(i, j int) bool {
		return strings.ToLower(listing.Items[i].Name) < strings.ToLower(listing.Items[j].Name)
	})

	if randomize {
		rand.Shuffle(len(listing.Items), func(i, j int) {
			listing.Items[i], listing.Items[j] = listing.Items[j], listing.Items[i]
		})
	}

	metrics.ScannerItemsReturned.WithLabelValues("list_media").Observe(float64(len(listing.Items)))

	return listing, nil
}

// resolveDir resolves a relative path that must refer to a directory.
func (s *Scanner) resolveDir(relPath string) (string, error) {
	fullPath, err := s.Resolve(relPath)
	if err != nil {
		return "", err
	}

	info, err := filesystem.StatWithRetry(fullPath, s.retry)
	if err != nil {
		if os.IsNotExist(err) {
			return "", ErrNotFound
		}
		return "", err
	}
	if !info.IsDir() {
		return "", ErrNotDirectory
	}

	return fullPath, nil
}

// maxCountWorkers caps the per-listing scan fan-out so one request cannot
// saturate a slow network mount.
const maxCountWorkers = 16

// countDirectories fills the media counts for each subdirectory. The
// per-directory scans are almost pure I/O wait, so they fan out to a
// bounded worker pool.
func (s *Scanner) countDirectories(parent string, dirs []DirectoryEntry) {
	if len(dirs) == 0 {
		return
	}

	sem := make(chan struct{}, workers.ForIO(maxCountWorkers))
	var wg sync.WaitGroup

	for i := range dirs {
		wg.Add(1)
		sem <- struct{}{}
		go func(d *DirectoryEntry) {
			defer wg.Done()
			defer func() { <-sem }()
			d.ImageCount, d.VideoCount = s.countMedia(filepath.Join(parent, d.Name))
		}(&dirs[i])
	}

	wg.Wait()
}

// countMedia counts media files directly in path. Unreadable directories
// count as empty, matching how permission errors are treated elsewhere.
func (s *Scanner) countMedia(path string) (images, videos int) {
	entries, err := filesystem.ReadDirWithRetry(path, s.retry)
	if err != nil {
		return 0, 0
	}

	for _, entry := range entries {
		if entry.IsDir() || strings.HasPrefix(entry.Name(), ".") {
			continue
		}
		switch s.set.KindOf(entry.Name()) {
		case mediatypes.KindImage:
			images++
		case mediatypes.KindVideo:
			videos++
		}
	}
	return images, videos
}

// normalize cleans a client-supplied relative path. Forward slashes are
// the wire format regardless of platform.
func normalize(relPath string) string {
	relPath = filepath.Clean(filepath.FromSlash(relPath))
	if relPath == "." {
		relPath = ""
	}
	return relPath
}

// contains reports whether child equals parent or is a descendant of it.
// Both paths must already be absolute and symlink-free.
func contains(parent, child string) bool {
	rel, err := filepath.Rel(parent, child)
	if err != nil {
		return false
	}
	return rel == "." || (rel != ".." && !strings.HasPrefix(rel, ".."+string(filepath.Separator)))
}

// joinRel joins a relative directory path with an entry name, using the
// platform separator internally but returning forward slashes for clients.
func joinRel(relPath, name string) string {
	if relPath == "" {
		return name
	}
	return filepath.ToSlash(filepath.Join(relPath, name))
}

func buildBreadcrumb(relPath string) []PathPart {
	breadcrumb := []PathPart{
		{Name: "Media", Path: ""},
	}

	if relPath == "" {
		return breadcrumb
	}

	parts := strings.Split(relPath, string(filepath.Separator))
	currentPath := ""

	for _, part := range parts {
		if part == "" {
			continue
		}
		if currentPath == "" {
			currentPath = part
		} else {
			currentPath = currentPath + "/" + part
		}
		breadcrumb = append(breadcrumb, PathPart{
			Name: part,
			Path: currentPath,
		})
	}

	return breadcrumb
}
