// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package config

import (
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"

	"github.com/gogpu/cpuraster/scene"
	"github.com/gogpu/cpuraster/vecmath"
)

// CameraConfig mirrors scene.Camera in a TOML-friendly shape (plain
// float32 triples instead of vecmath.Vector3).
type CameraConfig struct {
	Pos   [3]float32 `toml:"pos"`
	Dir   [3]float32 `toml:"dir"`
	Up    [3]float32 `toml:"up"`
	Near  float32    `toml:"near"`
	Far   float32    `toml:"far"`
}

// Render is the top-level render configuration: target resolution, the
// starting entry into the resolution-scale cycle, the clear color, and
// the initial camera pose.
type Render struct {
	Width                int          `toml:"width"`
	Height               int          `toml:"height"`
	ResolutionScaleIndex int          `toml:"resolution_scale_index"`
	ClearColor           [3]float32   `toml:"clear_color"`
	Camera               CameraConfig `toml:"camera"`
}

// Default returns the built-in configuration used when no config file is
// supplied: a 640x480 target at full resolution scale, a neutral clear
// color, and a camera at the origin-adjacent default pose used throughout
// this package's own tests.
func Default() *Render {
	return &Render{
		Width:                640,
		Height:               480,
		ResolutionScaleIndex: 3, // 1.0
		ClearColor:           [3]float32{0.05, 0.05, 0.08},
		Camera: CameraConfig{
			Pos:  [3]float32{0, 0, 5},
			Dir:  [3]float32{0, 0, -1},
			Up:   [3]float32{0, 1, 0},
			Near: 1,
			Far:  25,
		},
	}
}

// Load reads and decodes a Render configuration from a TOML file at path.
func Load(path string) (*Render, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: reading %s: %w", path, err)
	}

	cfg := Default()
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("config: decoding %s: %w", path, err)
	}
	return cfg, nil
}

// BuildCamera builds a scene.Camera from r, deriving AspectRatio from the
// target resolution.
func (r *Render) BuildCamera() scene.Camera {
	return scene.Camera{
		Pos:         vecmath.Vec3(r.Camera.Pos[0], r.Camera.Pos[1], r.Camera.Pos[2]),
		Dir:         vecmath.Vec3(r.Camera.Dir[0], r.Camera.Dir[1], r.Camera.Dir[2]),
		Up:          vecmath.Vec3(r.Camera.Up[0], r.Camera.Up[1], r.Camera.Up[2]),
		AspectRatio: float32(r.Width) / float32(r.Height),
		Near:        r.Camera.Near,
		Far:         r.Camera.Far,
	}
}
