package config

import "time"

// View resolution - the playfield in logical units.
// Hosts scale it to the window or terminal size.
const (
	ViewWidth  = 480
	ViewHeight = 320
)

// Starfield
const (
	StarSpeedMultiple = 30.0 // Base scroll speed, units per second
	StarLayerCount    = 3
	StarsPerLayer     = 50
)

// Entity sizes (full width/height in logical units)
const (
	PlayerWidth  = 40.0
	PlayerHeight = 24.0
	EnemyWidth   = 36.0
	EnemyHeight  = 24.0
	BulletWidth  = 8.0
	BulletHeight = 4.0
)

// Spawning
const (
	EnemySpawnInterval = 5 * time.Second
	EnemyMinTransit    = 2.0 // Seconds
	EnemyMaxTransit    = 4.0 // Seconds
	BulletTransit      = 1.0 // Seconds
)

// Player physics and tilt control
const (
	PlayerMass          = 0.02
	PlayerLinearDamping = 0.1
	PlayerStartX        = 0.1 // Fraction of view width
	PlayerStartY        = 0.5 // Fraction of view height
	TiltDeadZone        = 0.2
	TiltForceScale      = 20.0
)

// Frame timing
const (
	MaxFrameDelta      = 1.0    // Seconds; larger gaps use FallbackFrameDelta
	FallbackFrameDelta = 0.0166 // Seconds
)

// Scene transitions
const (
	TransitionName     = "flipHorizontal"
	TransitionDuration = 500 * time.Millisecond
)

// Broadphase
const (
	ContactCellSize = 64.0 // Broad-phase grid cell edge
)

// Client rendering
const (
	ClientTargetFPS       = 60
	ClientTargetFrameTime = time.Second / ClientTargetFPS
	MaxTermWidth          = 160
	MaxTermHeight         = 54
)
