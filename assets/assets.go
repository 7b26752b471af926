package assets

import (
	"bytes"
	"embed"
	"fmt"
	"image"
	"image/color"
	_ "image/png"
	"io/fs"
	"log"
	"sync"

	"github.com/automoto/arcade-shooter/config"
	"github.com/automoto/arcade-shooter/shared/leveldata"
	"github.com/hajimehoshi/ebiten/v2"
)

var (
	//go:embed all:levels
	assetFS embed.FS

	//go:embed all:images
	imageFS embed.FS
)

// CatalogPath is the level table inside the embedded levels directory.
const CatalogPath = "levels/levels.yaml"

// FallbackSize is the edge length of the texture used when an image fails to load.
const FallbackSize = 128

var (
	levelsOnce sync.Once
	levels     []leveldata.Level
	levelsErr  error
)

// LoadLevels parses the embedded level catalog once and returns it.
func LoadLevels() ([]leveldata.Level, error) {
	levelsOnce.Do(func() {
		levels, levelsErr = leveldata.LoadCatalog(assetFS, CatalogPath)
	})
	return levels, levelsErr
}

// MustLoadLevels is LoadLevels for callers that cannot run without levels.
func MustLoadLevels() []leveldata.Level {
	lv, err := LoadLevels()
	if err != nil {
		panic(fmt.Sprintf("Failed to load levels: %v", err))
	}
	return lv
}

// ImageLoader resolves sprite keys to images and caches them. A key that
// cannot be read or decoded resolves to the fallback texture.
type ImageLoader struct {
	fsys     fs.FS
	cache    map[string]*ebiten.Image
	fallback *ebiten.Image
}

func NewImageLoader(fsys fs.FS) *ImageLoader {
	return &ImageLoader{
		fsys:  fsys,
		cache: make(map[string]*ebiten.Image),
	}
}

// Image returns the image for key, e.g. "player/walking" -> images/player/walking.png.
func (l *ImageLoader) Image(key string) *ebiten.Image {
	if img, ok := l.cache[key]; ok {
		return img
	}

	src, err := ReadImage(l.fsys, ImagePath(key))
	if err != nil {
		log.Printf("assets: using fallback texture for %q: %v", key, err)
		img := l.Fallback()
		l.cache[key] = img
		return img
	}

	img := ebiten.NewImageFromImage(src)
	l.cache[key] = img
	return img
}

// IsFallback reports whether img is this loader's fallback texture.
func (l *ImageLoader) IsFallback(img *ebiten.Image) bool {
	return l.fallback != nil && img == l.fallback
}

func (l *ImageLoader) Fallback() *ebiten.Image {
	if l.fallback == nil {
		l.fallback = ebiten.NewImageFromImage(FallbackImage())
	}
	return l.fallback
}

// ImagePath maps a sprite key to its path inside the images filesystem.
func ImagePath(key string) string {
	return "images/" + key + ".png"
}

// ReadImage decodes an image from fsys.
func ReadImage(fsys fs.FS, path string) (image.Image, error) {
	data, err := fs.ReadFile(fsys, path)
	if err != nil {
		return nil, fmt.Errorf("read image %s: %w", path, err)
	}
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("decode image %s: %w", path, err)
	}
	return img, nil
}

// FallbackImage is the solid placeholder drawn for missing art.
func FallbackImage() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, FallbackSize, FallbackSize))
	fill := color.RGBA(config.Fallback)
	for y := 0; y < FallbackSize; y++ {
		for x := 0; x < FallbackSize; x++ {
			img.SetRGBA(x, y, fill)
		}
	}
	return img
}

var (
	imageLoader = NewImageLoader(imageFS)
)

// Image returns the embedded image for key, or the fallback texture.
func Image(key string) *ebiten.Image {
	return imageLoader.Image(key)
}

// FallbackTexture is the shared 128x128 placeholder.
func FallbackTexture() *ebiten.Image {
	return imageLoader.Fallback()
}

// IsFallback reports whether img is the shared fallback texture.
func IsFallback(img *ebiten.Image) bool {
	return imageLoader.IsFallback(img)
}

// PreloadImages loads every key up front to avoid a hitch on first draw.
func PreloadImages(keys []string) {
	for _, key := range keys {
		_ = imageLoader.Image(key)
	}
}
