package fs

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"

	"github.com/bft-labs/fraglen/internal/domain"
	"github.com/bft-labs/fraglen/internal/ports"
	"github.com/bft-labs/fraglen/pkg/log"
)

// DefaultPatterns maps search pattern IDs to file name globs.
var DefaultPatterns = map[string]string{
	domain.FragmentLengthPattern: "*.fragment_length_hist.csv",
}

// DefaultMaxFileSize is the largest file the finder will read.
const DefaultMaxFileSize = 50 << 20

// Finder implements ports.LogFileFinder by walking directories on disk.
type Finder struct {
	roots       []string
	patterns    map[string]string
	maxFileSize int64
	logger      ports.Logger
}

// NewFinder creates a finder over roots. A root may be a directory, which is
// searched recursively, or a single file. Files larger than maxFileSize are
// skipped; maxFileSize <= 0 means DefaultMaxFileSize.
func NewFinder(roots []string, maxFileSize int64, logger ports.Logger) *Finder {
	if maxFileSize <= 0 {
		maxFileSize = DefaultMaxFileSize
	}
	return &Finder{
		roots:       roots,
		patterns:    DefaultPatterns,
		maxFileSize: maxFileSize,
		logger:      logger,
	}
}

// Pattern returns the file name glob registered for patternID.
func (f *Finder) Pattern(patternID string) (string, bool) {
	glob, ok := f.patterns[patternID]
	return glob, ok
}

// FindLogFiles returns every file under the roots whose base name matches the
// glob for patternID, read into memory, in lexical path order.
func (f *Finder) FindLogFiles(ctx context.Context, patternID string) ([]domain.LogFile, error) {
	glob, ok := f.Pattern(patternID)
	if !ok {
		return nil, fmt.Errorf("%w: %q", domain.ErrUnknownPattern, patternID)
	}

	seen := make(map[string]bool)
	var paths []string
	for _, root := range f.roots {
		err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if err := ctx.Err(); err != nil {
				return err
			}
			if d.IsDir() {
				return nil
			}
			match, err := filepath.Match(glob, d.Name())
			if err != nil {
				return err
			}
			if !match || seen[path] {
				return nil
			}
			seen[path] = true
			paths = append(paths, path)
			return nil
		})
		if err != nil {
			return nil, fmt.Errorf("search %s: %w", root, err)
		}
	}
	sort.Strings(paths)

	files := make([]domain.LogFile, 0, len(paths))
	for _, path := range paths {
		lf, ok, err := f.read(path)
		if err != nil {
			return nil, err
		}
		if ok {
			files = append(files, lf)
		}
	}

	f.logger.Debug("found log files",
		log.String("pattern", patternID),
		log.Int("files", len(files)))
	return files, nil
}

func (f *Finder) read(path string) (domain.LogFile, bool, error) {
	info, err := os.Stat(path)
	if err != nil {
		return domain.LogFile{}, false, err
	}
	if info.Size() > f.maxFileSize {
		f.logger.Warn("skipping file larger than size limit",
			log.String("file", path),
			log.Int("size", int(info.Size())))
		return domain.LogFile{}, false, nil
	}

	content, err := os.ReadFile(path)
	if err != nil {
		return domain.LogFile{}, false, fmt.Errorf("read %s: %w", path, err)
	}
	return domain.LogFile{
		Name:    filepath.Base(path),
		Root:    filepath.Dir(path),
		Path:    path,
		Content: string(content),
	}, true, nil
}
