// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

// Package geometry implements the convex-polygon clipping the pipeline
// needs before rasterization: frustum plane derivation, Sutherland-Hodgman
// clipping against a single plane, and the horizontal cut that slices a
// polygon into flat-edged pieces the rasterizer can fill directly. It also
// carries the two small vector utilities (triangle normal, reflection)
// the original renderer exposed for flat-shading hosts.
package geometry
