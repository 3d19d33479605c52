// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

// swrast-demo is a small Cobra CLI that exercises the cpuraster pipeline
// end to end: it builds a procedural cube, wraps it in a generated
// checkerboard texture, renders it through a Compositor, and writes the
// resulting frame to a PNG file.
package main
