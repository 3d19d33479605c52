// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

// Package compositor pairs a render-resolution FrameBuffer with a
// screen-resolution one and drives the resolution-scale cycle a host uses
// to trade rasterization cost for pixel fidelity.
package compositor
