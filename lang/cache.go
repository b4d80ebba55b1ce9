package lang

import (
	"context"
	"io"
	"log/slog"
	"strconv"
	"sync"

	"github.com/klauspost/readahead"
	"github.com/zeebo/xxh3"
)

// sourceCache stores parsed sources keyed by the hash of their text.
// Sources are immutable, so one entry may be shared by every caller.
var sourceCache sync.Map

// entry parses its source at most once.
type entry struct {
	once sync.Once
	src  *Source
}

// ParseReader parses input from an io.Reader.
// The parsed source is cached by content, so reading the same text again
// skips scanning and parsing. Diagnostics are replayed to the configured
// reporter on every call.
func ParseReader(
	ctx context.Context,
	r io.Reader,
	opts ...Option,
) (*Source, error) {
	// Wrap reader with async read-ahead for concurrent I/O.
	ra := readahead.NewReader(r)
	defer ra.Close()

	data, err := io.ReadAll(ra)
	if err != nil {
		return nil, ErrReadInput.Wrap(err).
			With(slog.String("source", "reader"))
	}

	cfg := makeConfig(opts...)

	cfg.logger.TraceContext(
		ctx,
		"read input",
		slog.Int("source_bytes", len(data)),
		slog.Bool("read_ahead", true),
	)

	src := parseCached(ctx, string(data), cfg)
	src.replay(cfg.reporter)

	return src, src.Err()
}

func parseCached(ctx context.Context, text string, cfg config) *Source {
	hash := xxh3.HashString(text)
	key := strconv.FormatUint(hash, 36)

	value, hit := sourceCache.LoadOrStore(key, new(entry))

	cached, _ := value.(*entry)

	cfg.logger.TraceContext(
		ctx,
		"cache lookup",
		slog.String("source_hash", strconv.FormatUint(hash, 16)),
		slog.Bool("cache_hit", hit),
	)

	cached.once.Do(func() { cached.src = scan(ctx, text, cfg) })

	if cached.src.Text != text {
		return scan(ctx, text, cfg)
	}

	return cached.src
}

// ClearCache removes all cached sources.
// This is primarily useful for testing or when memory needs to be reclaimed.
func ClearCache() {
	sourceCache.Clear()
}
