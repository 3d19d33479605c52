// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

// Command swrast-demo renders a small built-in scene with cpuraster and
// writes the result to a PNG file. It exists for manual smoke-testing of
// the rasterizer; it is not part of the library's contract.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func main() {
	if err := rootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "swrast-demo",
		Short: "Render cpuraster's built-in demo scene to a PNG file",
	}
	root.AddCommand(renderCmd())
	return root
}
