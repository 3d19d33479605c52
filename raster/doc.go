// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

// Package raster rasterizes points, lines and convex polygons into a
// color/depth buffer pair: Fragment generation, the depth test, and the
// scanline/horizontal-cut polygon fill the pipeline drives per face.
package raster
