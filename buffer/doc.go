// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

// Package buffer implements the flat, N-channel pixel buffer the rest of
// the rasterizer reads and writes: Buffer itself, the color+depth
// FrameBuffer pairing, and the sampling/blit operations used to move pixels
// between buffers of different resolutions.
package buffer
