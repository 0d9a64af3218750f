package config

import (
	_ "embed"
)

//go:embed defaults/blockbreak.yaml
var defaultYAML []byte

// Default returns the built-in configuration. It matches the embedded
// defaults/blockbreak.yaml.
func Default() Config {
	return Config{
		Arena: ArenaConfig{
			Width:  800,
			Height: 600,
		},
		Ball: BallConfig{
			X:      400,
			Y:      300,
			Radius: 15,
			VX:     3,
			VY:     3,
		},
		Paddle: PaddleConfig{
			X:         375,
			Y:         550,
			Width:     400,
			Height:    10,
			Speed:     5,
			Direction: 1,
		},
		Blocks: BlocksConfig{
			Rows:   5,
			Cols:   10,
			Width:  30,
			Height: 30,
			Gutter: 5,
		},
		Rules: RulesConfig{
			PaddleSpin: 0.05,
		},
		Frontend: FrontendConfig{
			TickRate: 60,
			Scale:    1,
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultYAML
}
