package tags

import "github.com/yohamta/donburi"

var (
	Fist   = donburi.NewTag().SetName("Fist")
	Chimp  = donburi.NewTag().SetName("Chimp")
	Banner = donburi.NewTag().SetName("Banner")
)

// Resolv tags for the collision space
const (
	ResolvChimp  = "Chimp"
	ResolvHitbox = "Hitbox"
)
