package config

// SpriteID represents a logical sprite image
type SpriteID int

const (
	SpriteNone SpriteID = iota
	SpriteFist
	SpriteChimp
)

// ImagePaths maps sprite IDs to embedded image paths
var ImagePaths = map[SpriteID]string{
	SpriteFist:  "images/fist.png",
	SpriteChimp: "images/chimp.png",
}
