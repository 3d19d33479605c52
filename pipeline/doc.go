// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

// Package pipeline wires the camera, object and mesh data in package
// scene through transform, clip and rasterize to produce a rendered
// frame: RenderScene is the library's single per-frame entry point.
package pipeline
