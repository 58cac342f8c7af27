// Package imaging connects the quantize package to image files and MCP tool
// results.
//
// It loads and caches source images, runs the pixelation passes on copies of
// them, reports palettes and color counts, and encodes results either as
// base64 PNG for tool responses or as files on disk.
//
// # Coordinate System
//
// All pixel coordinates in this package are 0-based and relative to the
// image bounds:
//   - X: horizontal position (0 = leftmost pixel)
//   - Y: vertical position (0 = topmost pixel)
//
// Mosaic blocks are aligned at (0,0). BlockGridOverlay draws exactly the
// block boundaries Pixelate uses for the same block size.
//
// # Thread Safety
//
// The ImageCache type is safe for concurrent use. Cached images are never
// modified: Pixelate, ExtractPalette and BlockGridOverlay all work on copies.
//
// # Color Representation
//
// Colors are returned in multiple formats:
//   - Hex: 6-character format "#RRGGBB"
//   - RGB: 8-bit components (0-255)
//   - HSL: Hue (0-360), Saturation (0-100), Lightness (0-100)
//
// # Output Formats
//
// Save picks the encoder from the file extension: PNG, JPEG, BMP or GIF.
// GIF output is palettized with the median-cut quantizer, so an image already
// reduced to 256 colors or fewer is written without further color loss.
//
// # Error Handling
//
// Errors from the quantize package are wrapped with context and can be
// matched with errors.Is against the quantize sentinel errors.
package imaging
