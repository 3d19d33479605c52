// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

// Package scene defines the data a host hands the rendering pipeline each
// frame: the Camera, and the Mesh/Object pair describing what to draw.
package scene
