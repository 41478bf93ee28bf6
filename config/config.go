package config

import (
	"image/color"
	"time"
)

// AppConfig names the application on disk and in the window title.
type AppConfig struct {
	Name        string // gdata app name and data directory
	Title       string
	LogFile     string
	RecordsFile string
}

// PlayerConfig contains all player-related configuration values.
// Speeds are in pixels per tick.
type PlayerConfig struct {
	// Movement
	JumpSpeed    float64
	Acceleration float64
	MaxSpeed     float64

	// Physics
	Gravity  float64
	Friction float64

	// Dimensions
	Width  float64
	Height float64
}

// PhysicsConfig contains physics-related configuration values
type PhysicsConfig struct {
	MaxFallSpeed float64
	MaxRiseSpeed float64

	// Collision
	GroundProbe float64 // Pixels below the feet counted as standing
}

// LevelConfig controls how level descriptions become worlds
type LevelConfig struct {
	Margin   int // Empty tiles kept around the level bounds
	CellSize int // resolv broadphase cell size
}

// CameraConfig contains camera behavior configuration
type CameraConfig struct {
	FollowSmoothing float64 // How fast camera follows player (0.0-1.0)
}

// TransitionConfig controls the fade played when a level is built
type TransitionConfig struct {
	FadeSeconds float32
	FadeColor   color.RGBA
}

// ScreenStyle is the shared look of the menu-like screens.
type ScreenStyle struct {
	BackgroundColor   color.RGBA
	TitleColor        color.RGBA
	TextColorNormal   color.RGBA
	TextColorSelected color.RGBA
	TextColorLocked   color.RGBA
	ValueColor        color.RGBA
	TitleY            float64
	MenuStartY        float64
	MenuItemHeight    float64
	MenuItemGap       float64
	ValueColumnX      float64 // Offset from center for value text
}

// WorldColors are the flat colors the level is drawn with
type WorldColors struct {
	Background color.RGBA
	Platform   color.RGBA
	Spikes     color.RGBA
	Exit       color.RGBA
	Player     color.RGBA
}

// HUDConfig contains the in-level overlay layout
type HUDConfig struct {
	Margin     float64
	LineHeight float64
	TextColor  color.RGBA
	ShadeColor color.RGBA
}

// LogConfig controls the in-memory log and its flush to disk
type LogConfig struct {
	RingSize      int
	FlushInterval time.Duration
}

// Config holds general game configuration
type Config struct {
	Width  int
	Height int
}

// DebugConfig contains debug/testing command-line options
type DebugConfig struct {
	Colliders bool   // Draw collider outlines (toggled with F3)
	LevelsDir string // Load levels from disk instead of the embedded set
	Watch     bool   // Reload the current level when its directory changes
}

// Global configuration instances
var C *Config
var App AppConfig
var Player PlayerConfig
var Physics PhysicsConfig
var Level LevelConfig
var Camera CameraConfig
var Transition TransitionConfig
var Menu ScreenStyle
var Pause ScreenStyle
var SettingsMenu ScreenStyle
var Victory ScreenStyle
var LevelSelect ScreenStyle
var World WorldColors
var HUD HUDConfig
var Log LogConfig
var Debug DebugConfig

// Shared RGBA color constants
var (
	White        = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Grey         = color.RGBA{R: 100, G: 100, B: 100, A: 255}
	DarkGrey     = color.RGBA{R: 40, G: 40, B: 40, A: 255}
	Orange       = color.RGBA{R: 255, G: 140, B: 0, A: 255}
	BrightOrange = color.RGBA{R: 255, G: 180, B: 50, A: 255}
	Red          = color.RGBA{R: 255, G: 0, B: 0, A: 255}
	BrightGreen  = color.RGBA{R: 0, G: 255, B: 60, A: 255}
	BlackOverlay = color.RGBA{R: 0, G: 0, B: 0, A: 180}
	LightBlue    = color.RGBA{R: 100, G: 180, B: 255, A: 255} // Selected menu items
	DarkBlue     = color.RGBA{R: 60, G: 100, B: 160, A: 255}  // Unselected menu items
)

func init() {
	C = &Config{
		Width:  640,
		Height: 360,
	}

	App = AppConfig{
		Name:        "simple_platformer",
		Title:       "Simple Platformer",
		LogFile:     "game.log",
		RecordsFile: "records.db",
	}

	// Per-tick values at 60 TPS
	Player = PlayerConfig{
		JumpSpeed:    8.5,
		Acceleration: 1.0,
		MaxSpeed:     5.0,

		Gravity:  0.28,
		Friction: 0.6,

		Width:  24,
		Height: 32,
	}

	Physics = PhysicsConfig{
		MaxFallSpeed: 12.0,
		MaxRiseSpeed: -12.0,
		GroundProbe:  1.0,
	}

	Level = LevelConfig{
		Margin:   4,
		CellSize: 16,
	}

	Camera = CameraConfig{
		FollowSmoothing: 0.08,
	}

	Transition = TransitionConfig{
		FadeSeconds: 0.5,
		FadeColor:   color.RGBA{R: 0, G: 0, B: 0, A: 255},
	}

	Menu = ScreenStyle{
		BackgroundColor:   color.RGBA{R: 15, G: 25, B: 50, A: 255},
		TitleColor:        Orange,
		TextColorNormal:   White,
		TextColorSelected: BrightOrange,
		TitleY:            60,
		MenuStartY:        110,
		MenuItemHeight:    30,
		MenuItemGap:       12,
	}

	Pause = ScreenStyle{
		BackgroundColor:   BlackOverlay,
		TitleColor:        White,
		TextColorNormal:   White,
		TextColorSelected: BrightOrange,
		TitleY:            80,
		MenuStartY:        120,
		MenuItemHeight:    30,
		MenuItemGap:       15,
	}

	SettingsMenu = ScreenStyle{
		BackgroundColor:   color.RGBA{R: 20, G: 20, B: 30, A: 255},
		TitleColor:        Orange,
		TextColorNormal:   White,
		TextColorSelected: BrightOrange,
		ValueColor:        LightBlue,
		TitleY:            40,
		MenuStartY:        60,
		MenuItemHeight:    24,
		MenuItemGap:       8,
		ValueColumnX:      40,
	}

	Victory = ScreenStyle{
		BackgroundColor:   color.RGBA{R: 10, G: 40, B: 20, A: 255},
		TitleColor:        BrightGreen,
		TextColorNormal:   White,
		TextColorSelected: BrightOrange,
		TitleY:            100,
		MenuStartY:        150,
		MenuItemHeight:    24,
		MenuItemGap:       8,
	}

	LevelSelect = ScreenStyle{
		BackgroundColor:   color.RGBA{R: 20, G: 20, B: 30, A: 255},
		TitleColor:        White,
		TextColorNormal:   White,
		TextColorSelected: color.RGBA{R: 77, G: 77, B: 179, A: 255},
		TextColorLocked:   color.RGBA{R: 102, G: 102, B: 102, A: 255},
	}

	World = WorldColors{
		Background: color.RGBA{R: 30, G: 30, B: 46, A: 255},
		Platform:   color.RGBA{R: 90, G: 90, B: 110, A: 255},
		Spikes:     color.RGBA{R: 230, G: 60, B: 60, A: 255},
		Exit:       color.RGBA{R: 60, G: 220, B: 90, A: 255},
		Player:     color.RGBA{R: 51, G: 102, B: 230, A: 255},
	}

	HUD = HUDConfig{
		Margin:     10,
		LineHeight: 16,
		TextColor:  White,
		ShadeColor: color.RGBA{R: 0, G: 0, B: 0, A: 120},
	}

	Log = LogConfig{
		RingSize:      50,
		FlushInterval: 30 * time.Second,
	}

	// Debug Config (defaults, can be overridden by CLI flags)
	Debug = DebugConfig{}
}
