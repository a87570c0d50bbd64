package folio

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/sourcegraph/conc/pool"

	"github.com/gomantics/folio/config"
	"github.com/gomantics/folio/formats"
)

// DefaultConcurrency bounds how many images a Gallery extracts at once when
// the configuration does not say.
const DefaultConcurrency = 4

// Gallery builds the portfolio described by a configuration.
type Gallery struct {
	cfg         *config.Config
	extractor   *Extractor
	logger      zerolog.Logger
	concurrency int
}

// GalleryOption configures a Gallery.
type GalleryOption func(*Gallery)

// WithGalleryLogger sets the logger. The default discards everything.
func WithGalleryLogger(l zerolog.Logger) GalleryOption {
	return func(g *Gallery) { g.logger = l }
}

// WithConcurrency overrides settings.concurrency.
func WithConcurrency(n int) GalleryOption {
	return func(g *Gallery) { g.concurrency = n }
}

// NewGallery returns a Gallery over cfg that reads metadata through ex.
func NewGallery(cfg *config.Config, ex *Extractor, opts ...GalleryOption) *Gallery {
	g := &Gallery{
		cfg:         cfg,
		extractor:   ex,
		logger:      zerolog.Nop(),
		concurrency: cfg.Settings.Concurrency,
	}
	for _, opt := range opts {
		opt(g)
	}
	if g.concurrency <= 0 {
		g.concurrency = DefaultConcurrency
	}
	return g
}

// Load returns every shoot with at least one image, in configuration order.
// When metadata extraction is enabled each image carries its EXIF tags.
// Load only fails when ctx is cancelled.
func (g *Gallery) Load(ctx context.Context) ([]Shoot, error) {
	run := uuid.New().String()
	log := g.logger.With().Str("run", run).Logger()

	shoots := make([]Shoot, 0, len(g.cfg.Shoots))
	var images []*Image

	for _, sc := range g.cfg.Shoots {
		if len(sc.Images) == 0 {
			log.Warn().Str("shoot", sc.ID).Msg("shoot has no image list, skipping")
			continue
		}

		s := Shoot{
			ID:         sc.ID,
			Title:      sc.Title,
			Folder:     sc.Folder,
			CoverColor: sc.CoverColor,
			Images:     make([]*Image, 0, len(sc.Images)),
		}
		for _, filename := range sc.Images {
			p := sc.Folder + filename
			img := &Image{
				Path:       p,
				Filename:   filename,
				Name:       DisplayName(filename),
				Thumbnail:  VariantPath(p, VariantThumb),
				Preview:    VariantPath(p, VariantPreview),
				ShootID:    sc.ID,
				ShootTitle: sc.Title,
			}
			s.Images = append(s.Images, img)
			if sc.CoverImage != "" && filename == sc.CoverImage && s.Cover == nil {
				s.Cover = img
			}
		}
		if s.Cover == nil {
			s.Cover = s.Images[0]
		}

		images = append(images, s.Images...)
		shoots = append(shoots, s)
	}

	if !g.cfg.Settings.EnableMetadataExtraction {
		log.Info().Int("shoots", len(shoots)).Int("images", len(images)).Msg("gallery loaded without metadata")
		return shoots, nil
	}

	p := pool.New().WithMaxGoroutines(g.concurrency).WithContext(ctx)
	for _, img := range images {
		img := img
		p.Go(func(ctx context.Context) error {
			if err := ctx.Err(); err != nil {
				return err
			}
			img.EXIF = g.extractor.Extract(ctx, img.Path)
			return nil
		})
	}
	if err := p.Wait(); err != nil {
		return nil, fmt.Errorf("loading gallery: %w", err)
	}

	log.Info().
		Int("shoots", len(shoots)).
		Int("images", len(images)).
		Int("cached", g.extractor.Cache().Len()).
		Msg("gallery loaded")

	return shoots, nil
}

// Describe formats the metadata of img with the configured camera as
// fallback.
func (g *Gallery) Describe(img *Image) Fields {
	return Format(img.EXIF, Camera(g.cfg.Camera))
}

// Metadata returns the cached tags of every image directly inside the folder
// of the shoot with the given ID, keyed by path. Images in subfolders belong
// to other shoots and are left out. Images without EXIF are included with a
// nil map.
func (g *Gallery) Metadata(shootID string) map[string]formats.Map {
	for _, sc := range g.cfg.Shoots {
		if sc.ID != shootID {
			continue
		}
		out := make(map[string]formats.Map)
		g.extractor.Cache().WalkPrefix(sc.Folder, func(path string, m formats.Map) bool {
			if strings.Contains(path[len(sc.Folder):], "/") {
				return false
			}
			out[path] = m.Clone()
			return false
		})
		return out
	}
	return nil
}
