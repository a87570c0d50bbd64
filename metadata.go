package folio

import (
	"context"
	"errors"
	"sync"

	"github.com/rs/zerolog"

	"github.com/gomantics/folio/formats"
)

// Extractor fetches images, decodes their EXIF data and caches the result
// per path. It is safe for concurrent use.
type Extractor struct {
	fetcher    Fetcher
	cache      Cache
	logger     zerolog.Logger
	decodeOpts []formats.Option

	mu       sync.Mutex
	inflight map[string]*extraction
}

// extraction is a decode in progress that other callers for the same path
// wait on.
type extraction struct {
	done chan struct{}
	m    formats.Map
}

// ExtractorOption configures an Extractor.
type ExtractorOption func(*Extractor)

// WithCache injects the result cache. The default is a new MemoryCache.
func WithCache(c Cache) ExtractorOption {
	return func(e *Extractor) { e.cache = c }
}

// WithLogger sets the logger. The default discards everything.
func WithLogger(l zerolog.Logger) ExtractorOption {
	return func(e *Extractor) { e.logger = l }
}

// WithDecodeOptions passes options through to the EXIF decoder.
func WithDecodeOptions(opts ...formats.Option) ExtractorOption {
	return func(e *Extractor) { e.decodeOpts = append(e.decodeOpts, opts...) }
}

// NewExtractor returns an Extractor reading images through f.
func NewExtractor(f Fetcher, opts ...ExtractorOption) *Extractor {
	e := &Extractor{
		fetcher:  f,
		logger:   zerolog.Nop(),
		inflight: make(map[string]*extraction),
	}
	for _, opt := range opts {
		opt(e)
	}
	if e.cache == nil {
		e.cache = NewMemoryCache()
	}
	return e
}

// Cache returns the cache the Extractor fills.
func (e *Extractor) Cache() Cache {
	return e.cache
}

// Extract returns the EXIF tags of the image at path, or nil when the image
// has none or cannot be read. It never fails: every problem is logged and
// turned into a nil or partial result.
//
// Each path is decoded at most once; concurrent calls for the same path wait
// for the first one. Fetch failures are not cached and are retried on the
// next call.
func (e *Extractor) Extract(ctx context.Context, path string) formats.Map {
	if m, ok := e.cache.Get(path); ok {
		return m.Clone()
	}

	e.mu.Lock()
	if m, ok := e.cache.Get(path); ok {
		e.mu.Unlock()
		return m.Clone()
	}
	if x, ok := e.inflight[path]; ok {
		e.mu.Unlock()
		select {
		case <-x.done:
			return x.m.Clone()
		case <-ctx.Done():
			return nil
		}
	}
	x := &extraction{done: make(chan struct{})}
	e.inflight[path] = x
	e.mu.Unlock()

	m, cacheable := e.extract(ctx, path)
	if cacheable {
		e.cache.Set(path, m)
	}

	e.mu.Lock()
	x.m = m
	delete(e.inflight, path)
	e.mu.Unlock()
	close(x.done)

	return m.Clone()
}

// Describe extracts the image at path and formats it with fallback.
func (e *Extractor) Describe(ctx context.Context, path string, fallback Camera) Fields {
	return Format(e.Extract(ctx, path), fallback)
}

func (e *Extractor) extract(ctx context.Context, path string) (formats.Map, bool) {
	log := e.logger.With().Str("path", path).Logger()

	data, err := e.fetcher.Fetch(ctx, path)
	if err != nil {
		log.Warn().Err(err).Msg("could not fetch image")
		return nil, false
	}

	m, err := formats.Decode(data, e.decodeOpts...)
	switch {
	case err == nil:
		log.Debug().Int("tags", len(m)).Msg("decoded EXIF")
	case errors.Is(err, formats.ErrTruncatedDirectory):
		log.Warn().Err(err).Int("tags", len(m)).Msg("EXIF directory truncated, keeping partial tags")
	case errors.Is(err, formats.ErrNotJPEG):
		log.Debug().Str("format", string(formats.Detect(header(data)))).Msg("not a JPEG, no EXIF")
	default:
		log.Debug().Err(err).Msg("no EXIF")
	}

	return m, true
}

func header(data []byte) []byte {
	if len(data) > 16 {
		return data[:16]
	}
	return data
}
