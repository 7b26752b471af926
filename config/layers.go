package config

import "github.com/yohamta/donburi/ecs"

// Default is the single render layer every entity and renderer is registered on.
const Default ecs.LayerID = iota
