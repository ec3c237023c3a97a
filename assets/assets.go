package assets

import (
	"bytes"
	"embed"
	"fmt"
	"sort"

	cfg "github.com/automoto/monkeyfever/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

//go:embed all:images
var imageFS embed.FS

// ImageLoader decodes embedded images once and caches them by path.
type ImageLoader struct {
	cache map[string]*ebiten.Image
}

func NewImageLoader() *ImageLoader {
	return &ImageLoader{
		cache: make(map[string]*ebiten.Image),
	}
}

// LoadImage returns the decoded image at path, decoding it on first use.
func (l *ImageLoader) LoadImage(path string) (*ebiten.Image, error) {
	if img, ok := l.cache[path]; ok {
		return img, nil
	}

	imgBytes, err := imageFS.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read image file %s: %w", path, err)
	}

	img, _, err := ebitenutil.NewImageFromReader(bytes.NewReader(imgBytes))
	if err != nil {
		return nil, fmt.Errorf("failed to decode image %s: %w", path, err)
	}

	l.cache[path] = img
	return img, nil
}

var imageLoader = NewImageLoader()

// LoadImages decodes every sprite image. It must succeed before the game
// loop starts; Image panics for sprites that were not loaded.
func LoadImages() error {
	ids := make([]cfg.SpriteID, 0, len(cfg.ImagePaths))
	for id := range cfg.ImagePaths {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	for _, id := range ids {
		if _, err := imageLoader.LoadImage(cfg.ImagePaths[id]); err != nil {
			return err
		}
	}
	return nil
}

// Image returns the loaded image for a sprite.
func Image(id cfg.SpriteID) *ebiten.Image {
	path, ok := cfg.ImagePaths[id]
	if !ok {
		panic(fmt.Sprintf("no image registered for sprite %d", id))
	}
	img, ok := imageLoader.cache[path]
	if !ok {
		panic(fmt.Sprintf("image %s used before LoadImages", path))
	}
	return img
}

// ImageSize returns the pixel size of a loaded sprite image.
func ImageSize(id cfg.SpriteID) (int, int) {
	b := Image(id).Bounds()
	return b.Dx(), b.Dy()
}
