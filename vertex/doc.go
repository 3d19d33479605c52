// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

// Package vertex defines Vertex, the per-vertex attribute bundle carried
// through the transformation and clipping pipeline, and EdgeTracker, the
// linear stepper used to interpolate a Vertex's attributes along an edge
// during rasterization.
package vertex
