package config

import (
	_ "embed"
)

//go:embed defaults/green_island.yaml
var defaultYAML []byte

// Default returns the built-in configuration. It matches the embedded YAML
// and is used when even that fails to parse.
func Default() Config {
	return Config{
		TickRate: 60,
		World: WorldConfig{
			Width:   1500,
			Height:  1100,
			Animals: 10_000,
			Plants: PlantThresholds{
				Empty:      0.80,
				NopalSmall: 0.87,
				NopalBig:   0.94,
				Ocotillo:   0.98,
			},
		},
		Layout: LayoutConfig{
			View:    Size{W: 15, H: 15},
			SkyRows: 4,
		},
		Desktop: DesktopConfig{
			Width:  960,
			Height: 540,
			Title:  "Green Island",
			Surface: SurfaceConfig{
				Mode: ModeUIMargin,
				Tile: Size{W: 10, H: 10},
				UI:   Size{W: 320, H: 180},
				Icon: 20,
				Pad: PadConfig{
					Left:  Size{W: 7, H: 5},
					Right: Size{W: 4, H: 5},
				},
			},
		},
		Terminal: TerminalConfig{
			Surface: SurfaceConfig{
				Mode: ModePixelPerfect,
				Tile: Size{W: 2, H: 1},
				UI:   Size{W: 64, H: 18},
				Icon: 3,
				Pad: PadConfig{
					Left:  Size{W: 1, H: 1},
					Right: Size{W: 1, H: 1},
				},
			},
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultYAML
}
