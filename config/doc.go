// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

// Package config decodes the TOML-driven render/camera configuration a
// host uses to set up a Compositor and initial Camera without recompiling.
package config
