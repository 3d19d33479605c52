// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"os"

	"github.com/spf13/cobra"

	"github.com/gogpu/cpuraster/compositor"
	"github.com/gogpu/cpuraster/config"
	"github.com/gogpu/cpuraster/vecmath"
)

func renderCmd() *cobra.Command {
	var (
		configPath string
		outPath    string
		yawDeg     float32
		pitchDeg   float32
	)

	cmd := &cobra.Command{
		Use:   "render",
		Short: "Render one frame of the built-in cube scene to a PNG file",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.Default()
			if configPath != "" {
				loaded, err := config.Load(configPath)
				if err != nil {
					return err
				}
				cfg = loaded
			}

			comp := compositor.NewCompositor(cfg.Width, cfg.Height, cfg.ResolutionScaleIndex)
			camera := cfg.BuildCamera()
			objects := demoObjects(vecmath.DegToRad(yawDeg), vecmath.DegToRad(pitchDeg))

			comp.RenderFrame(camera, objects, cfg.ClearColor)

			if err := writePNG(outPath, comp); err != nil {
				return fmt.Errorf("swrast-demo: %w", err)
			}
			fmt.Println("wrote", outPath)
			return nil
		},
	}

	cmd.Flags().StringVar(&configPath, "config", "", "path to a render.toml configuration file (defaults to the built-in scene)")
	cmd.Flags().StringVar(&outPath, "out", "render.png", "output PNG path")
	cmd.Flags().Float32Var(&yawDeg, "yaw", 25, "cube yaw in degrees")
	cmd.Flags().Float32Var(&pitchDeg, "pitch", 20, "cube pitch in degrees")

	return cmd
}

func writePNG(path string, comp *compositor.Compositor) error {
	screen := comp.Screen().Color
	width, height := screen.Width(), screen.Height()

	img := image.NewRGBA(image.Rect(0, 0, width, height))
	px := make([]float32, 3)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			screen.Get(x, y, px)
			// screen's origin is lower-left; PNG rows run top-down, so the
			// host flips on the way out.
			img.Set(x, height-1-y, color.NRGBA{
				R: toByte(px[0]),
				G: toByte(px[1]),
				B: toByte(px[2]),
				A: 255,
			})
		}
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	defer f.Close()

	if err := png.Encode(f, img); err != nil {
		return fmt.Errorf("encoding %s: %w", path, err)
	}
	return nil
}

func toByte(v float32) uint8 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 255
	}
	return uint8(v*255 + 0.5)
}
