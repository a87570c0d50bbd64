package folio

import (
	"bytes"
	"context"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gomantics/folio/config"
	"github.com/gomantics/folio/formats"
)

func testConfig() *config.Config {
	return &config.Config{
		Camera: config.Camera(sony),
		Shoots: []config.Shoot{
			{
				ID:         "light",
				Title:      "Light Studies",
				Folder:     "photos/light/",
				CoverImage: "Light-17.jpg",
				CoverColor: "#000",
				Images:     []string{"Light-16.jpg", "Light-17.jpg", "missing.jpg"},
			},
			{ID: "empty", Title: "Empty", Folder: "photos/empty/"},
			{
				ID:     "audi",
				Title:  "Audi A3",
				Folder: "photos/audi/",
				Images: []string{"front_view.jpg"},
			},
		},
		Settings: config.Settings{EnableMetadataExtraction: true, Concurrency: 2},
	}
}

func testFS(t *testing.T) afero.Fs {
	fs := afero.NewMemMapFs()
	files := map[string][]byte{
		"photos/light/Light-16.jpg":  jpegWithShorts([2]uint16{tagISO, 100}),
		"photos/light/Light-17.jpg":  jpegWithShorts([2]uint16{tagISO, 3200}, [2]uint16{tagWhiteBalance, 0}),
		"photos/audi/front_view.jpg": pngMagic,
	}
	for name, data := range files {
		require.NoError(t, afero.WriteFile(fs, name, data, 0o644))
	}
	return fs
}

func TestGallery_Load(t *testing.T) {
	var buf bytes.Buffer
	ex := NewExtractor(NewFSFetcher(testFS(t), ""))
	g := NewGallery(testConfig(), ex, WithGalleryLogger(NewLogger(&buf, "debug")))

	shoots, err := g.Load(context.Background())
	require.NoError(t, err)
	require.Len(t, shoots, 2)

	light := shoots[0]
	assert.Equal(t, "light", light.ID)
	assert.Equal(t, "#000", light.CoverColor)
	require.Len(t, light.Images, 3)

	first := light.Images[0]
	assert.Equal(t, &Image{
		Path:       "photos/light/Light-16.jpg",
		Filename:   "Light-16.jpg",
		Name:       "Light 16",
		Thumbnail:  "photos/light/thumbs/Light-16.jpg",
		Preview:    "photos/light/prevs/Light-16.jpg",
		ShootID:    "light",
		ShootTitle: "Light Studies",
		EXIF:       formats.Map{"ISO": formats.Uint16Value(100)},
	}, first)
	assert.Same(t, light.Images[1], light.Cover)
	assert.Nil(t, light.Images[2].EXIF)

	audi := shoots[1]
	assert.Same(t, audi.Images[0], audi.Cover)
	assert.Equal(t, "Front View", audi.Cover.Name)
	assert.Nil(t, audi.Cover.EXIF)

	out := buf.String()
	assert.Contains(t, out, `"shoot":"empty"`)
	assert.Contains(t, out, `"run":"`)
	assert.Contains(t, out, "gallery loaded")
}

func TestGallery_LoadWithoutMetadata(t *testing.T) {
	cfg := testConfig()
	cfg.Settings.EnableMetadataExtraction = false

	f := &countingFetcher{}
	shoots, err := NewGallery(cfg, NewExtractor(f)).Load(context.Background())
	require.NoError(t, err)
	require.Len(t, shoots, 2)
	assert.Equal(t, int64(0), f.calls.Load())
	for _, s := range shoots {
		for _, img := range s.Images {
			assert.Nil(t, img.EXIF)
		}
	}
}

func TestGallery_LoadCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	g := NewGallery(testConfig(), NewExtractor(NewFSFetcher(testFS(t), "")), WithConcurrency(1))
	shoots, err := g.Load(ctx)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Nil(t, shoots)
}

func TestGallery_DescribeAndMetadata(t *testing.T) {
	g := NewGallery(testConfig(), NewExtractor(NewFSFetcher(testFS(t), "")))
	shoots, err := g.Load(context.Background())
	require.NoError(t, err)

	got := g.Describe(shoots[0].Cover)
	assert.Equal(t, []string{
		"Camera: Sony A7R III",
		"Lens: Sony 20-70mm f/4 G",
		"ISO: ISO 3200",
		"White Balance: Auto",
		"Photographer: Simon Hajduk",
	}, got.Lines())

	got = g.Describe(shoots[1].Cover)
	assert.Len(t, got, 3)

	meta := g.Metadata("light")
	assert.Len(t, meta, 2, "fetch failures are not cached")
	assert.Equal(t, "3200", meta["photos/light/Light-17.jpg"]["ISO"].String())

	assert.Nil(t, g.Metadata("nope"))
}

func TestGallery_MetadataExcludesNestedShoots(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "photos/Light-16.jpg", jpegWithShorts([2]uint16{tagISO, 100}), 0o644))
	require.NoError(t, afero.WriteFile(fs, "photos/porsche-gt3rs/light-1.jpg", jpegWithShorts([2]uint16{tagISO, 400}), 0o644))

	cfg := &config.Config{
		Camera: config.Camera(sony),
		Shoots: []config.Shoot{
			{ID: "light-series", Title: "Light", Folder: "photos/", Images: []string{"Light-16.jpg"}},
			{ID: "porsche-gt3rs", Title: "Porsche", Folder: "photos/porsche-gt3rs/", Images: []string{"light-1.jpg"}},
		},
		Settings: config.Settings{EnableMetadataExtraction: true, Concurrency: 2},
	}

	g := NewGallery(cfg, NewExtractor(NewFSFetcher(fs, "")))
	_, err := g.Load(context.Background())
	require.NoError(t, err)

	light := g.Metadata("light-series")
	assert.Len(t, light, 1)
	assert.Contains(t, light, "photos/Light-16.jpg")

	porsche := g.Metadata("porsche-gt3rs")
	assert.Len(t, porsche, 1)
	assert.Equal(t, "400", porsche["photos/porsche-gt3rs/light-1.jpg"]["ISO"].String())
}
