package cmd

import (
	"context"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/alecthomas/kong"

	"github.com/ardnew/lox/log"
)

// contextKey is used to store a [kong.Context] value in [context.Context].
type contextKey struct{}

// WithContext returns a new context.Context containing the given kong.Context.
func WithContext(ctx context.Context, ktx *kong.Context) context.Context {
	return context.WithValue(ctx, contextKey{}, ktx)
}

func kongContextFrom(ctx context.Context) *kong.Context {
	ktx, ok := ctx.Value(contextKey{}).(*kong.Context)
	if !ok || ktx == nil {
		return nil
	}

	return ktx
}

type definesKey struct{}

// WithDefines returns a new context.Context carrying the global definitions
// given with --define.
func WithDefines(ctx context.Context, defs map[string]string) context.Context {
	return context.WithValue(ctx, definesKey{}, defs)
}

func definesFrom(ctx context.Context) map[string]string {
	defs, _ := ctx.Value(definesKey{}).(map[string]string)

	return defs
}

type sourcesKey struct{}

// WithSources returns a new context.Context carrying the global script paths
// given with --source.
func WithSources(ctx context.Context, sources []string) context.Context {
	return context.WithValue(ctx, sourcesKey{}, sources)
}

func sourcesFrom(ctx context.Context) []string {
	sources, _ := ctx.Value(sourcesKey{}).([]string)

	return sources
}

// stdinSource is the special source indicator for reading from stdin.
const stdinSource = "-"

// openSource opens the script at path, or stdin for "-". The returned
// closer never closes stdin.
func openSource(path string) (io.ReadCloser, error) {
	if path == stdinSource || path == "" {
		return io.NopCloser(os.Stdin), nil
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, ErrOpenSource.With(slog.String("path", path)).Wrap(err)
	}

	return f, nil
}

// SourceFiles reads several scripts as one program, in order, with stdin
// last. Each file is followed by a newline so that the last line of one file
// never joins the first line of the next.
type SourceFiles interface {
	io.Reader
	io.Closer
	Len() int
}

type sourceFiles struct {
	files  []*os.File
	stdin  bool
	reader io.Reader
}

// Len returns the number of distinct sources, counting stdin.
func (s *sourceFiles) Len() int {
	if s.stdin {
		return len(s.files) + 1
	}

	return len(s.files)
}

// Read implements io.Reader.
func (s *sourceFiles) Read(p []byte) (int, error) { return s.reader.Read(p) }

// Close closes every opened file.
func (s *sourceFiles) Close() error {
	var first error

	for _, f := range s.files {
		if err := f.Close(); err != nil && first == nil {
			first = err
		}
	}

	return first
}

// fileKey uniquely identifies a file by its device and inode numbers.
// This handles deduplication across symlinks, absolute/relative paths, and
// special device files.
type fileKey struct {
	dev uint64
	ino uint64
}

// OpenSourceFiles opens the given sources as a single [SourceFiles].
//
// Paths that resolve to the same file are read once. Every occurrence of
// "-", or of a path naming the same file as stdin, is replaced with a single
// read of stdin placed after all regular files. Unreadable paths are logged
// and skipped. OpenSourceFiles returns nil if nothing could be opened.
func OpenSourceFiles(ctx context.Context, sources []string) SourceFiles {
	if len(sources) == 0 {
		return nil
	}

	var srcs sourceFiles

	seen := make(map[fileKey]struct{})

	stdinKey, hasStdinKey := fileKey{}, false
	if info, err := os.Stdin.Stat(); err == nil {
		stdinKey, hasStdinKey = makeFileKey(info)
	}

	for _, src := range sources {
		if src == stdinSource {
			srcs.stdin = true

			continue
		}

		f, key, err := openUniqueFile(src, seen)
		if err != nil {
			log.WarnContext(ctx, "skipping source",
				slog.String("path", src),
				slog.String("error", err.Error()),
			)

			continue
		}

		if f == nil {
			continue
		}

		if hasStdinKey && key == stdinKey {
			f.Close()

			srcs.stdin = true

			continue
		}

		srcs.files = append(srcs.files, f)
	}

	if srcs.Len() == 0 {
		return nil
	}

	readers := make([]io.Reader, 0, 2*srcs.Len())
	for _, f := range srcs.files {
		readers = append(readers, f, strings.NewReader("\n"))
	}

	if srcs.stdin {
		readers = append(readers, os.Stdin)
	}

	srcs.reader = io.MultiReader(readers...)

	return &srcs
}

// openUniqueFile opens the file at path unless a file with the same device
// and inode was already seen, in which case it returns a nil file.
func openUniqueFile(path string, seen map[fileKey]struct{}) (*os.File, fileKey, error) {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return nil, fileKey{}, err
	}

	resolved, err := filepath.EvalSymlinks(absPath)
	if err != nil {
		return nil, fileKey{}, err
	}

	info, err := os.Stat(resolved)
	if err != nil {
		return nil, fileKey{}, err
	}

	key, ok := makeFileKey(info)
	if ok {
		if _, exists := seen[key]; exists {
			return nil, key, nil
		}

		seen[key] = struct{}{}
	}

	f, err := os.Open(resolved)
	if err != nil {
		return nil, key, err
	}

	return f, key, nil
}

// makeFileKey creates a fileKey from os.FileInfo.
// Returns false if the underlying Sys() data is not of type *syscall.Stat_t.
func makeFileKey(info os.FileInfo) (key fileKey, ok bool) {
	stat, ok := info.Sys().(*syscall.Stat_t)
	if !ok {
		return key, false
	}

	return fileKey{dev: uint64(stat.Dev), ino: stat.Ino}, true //nolint:unconvert
}
