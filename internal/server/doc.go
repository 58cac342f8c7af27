// Package server implements the MCP (Model Context Protocol) server for the
// pixelation tools.
//
// This package provides a JSON-RPC 2.0 server that exposes median-cut color
// quantization and block mosaic through the MCP protocol, so an MCP client
// can turn images into pixel art and inspect the palettes involved.
//
// # Protocol
//
// The server communicates over stdio using JSON-RPC 2.0:
//   - Input: JSON-RPC requests on stdin (one per line)
//   - Output: JSON-RPC responses on stdout
//
// Supported MCP methods:
//   - initialize: Protocol handshake
//   - tools/list: Enumerate available tools
//   - tools/call: Execute a tool with arguments
//   - ping: Health check
//
// # Available Tools
//
// Basic Image Information:
//   - image_load: Load image and get metadata, including the largest valid palette size
//   - image_dimensions: Get width and height
//   - image_sample_color: Get color at pixel
//
// Pixelation:
//   - image_quantize: Median-cut quantization, optionally followed by a mosaic
//   - image_mosaic: Replace each block with its most frequent color
//
// Palette Analysis:
//   - image_palette: Median-cut palette with pixel shares
//   - image_count_colors: Exact color frequencies
//   - image_block_grid: Preview mosaic block boundaries
//
// Pixelation results are returned as base64 PNG, optionally upscaled with
// nearest-neighbor sampling, or written to output_path when one is given.
//
// # Image Caching
//
// The server keeps decoded source images in memory, keyed by path. Tools
// never modify cached images. Writing to output_path evicts that path, so a
// later call on the same path sees the new file.
//
// # Error Handling
//
// Tool execution errors are returned as JSON-RPC error responses with:
//   - code: -32000 (tool execution failure) or standard JSON-RPC codes
//   - message: Human-readable error description
//   - data: The Go error string
//
// # Usage
//
//	srv := server.New(server.Config{Workers: runtime.NumCPU(), Logger: logger})
//	if err := srv.Run(); err != nil {
//	    log.Fatal(err)
//	}
package server
