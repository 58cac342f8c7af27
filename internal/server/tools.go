package server

// Tool represents an MCP tool definition
type Tool struct {
	Name        string                 `json:"name"`
	Description string                 `json:"description"`
	InputSchema map[string]interface{} `json:"inputSchema"`
}

func pathProperty() map[string]interface{} {
	return map[string]interface{}{
		"type":        "string",
		"description": "Absolute path to the image file",
	}
}

func outputProperties(props map[string]interface{}) map[string]interface{} {
	props["scale"] = map[string]interface{}{
		"type":        "integer",
		"description": "Nearest-neighbor upscale factor for the returned preview (1-16). Default 1",
		"default":     1,
	}
	props["output_path"] = map[string]interface{}{
		"type":        "string",
		"description": "Optional file to write instead of returning base64. Format follows the extension: .png, .jpg, .bmp or .gif",
	}
	props["quality"] = map[string]interface{}{
		"type":        "integer",
		"description": "JPEG quality (1-100) when output_path ends in .jpg. Default 90",
		"default":     90,
	}
	return props
}

// GetToolDefinitions returns all available tools
func GetToolDefinitions() []Tool {
	return []Tool{
		// Basic Image Information
		{
			Name:        "image_load",
			Description: "Load an image file and return its dimensions, format and the largest palette size it can be quantized to.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": pathProperty(),
				},
				"required": []string{"path"},
			},
		},
		{
			Name:        "image_dimensions",
			Description: "Get the width and height of an image file.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": pathProperty(),
				},
				"required": []string{"path"},
			},
		},
		{
			Name:        "image_sample_color",
			Description: "Get the exact color value at a specific pixel coordinate.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": pathProperty(),
					"x": map[string]interface{}{
						"type":        "integer",
						"description": "X coordinate (0-based, from left)",
					},
					"y": map[string]interface{}{
						"type":        "integer",
						"description": "Y coordinate (0-based, from top)",
					},
				},
				"required": []string{"path", "x", "y"},
			},
		},

		// Pixelation
		{
			Name:        "image_quantize",
			Description: "Reduce an image to a median-cut palette, optionally followed by a block mosaic. Returns the result as base64-encoded PNG or writes it to output_path.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": outputProperties(map[string]interface{}{
					"path": pathProperty(),
					"colors": map[string]interface{}{
						"type":        "integer",
						"description": "Palette size: a power of two no larger than the pixel count. Default 16",
						"default":     16,
					},
					"block_size": map[string]interface{}{
						"type":        "integer",
						"description": "Mosaic block edge in pixels applied after quantization. 0 skips the mosaic. Default 0",
						"default":     0,
					},
				}),
				"required": []string{"path"},
			},
		},
		{
			Name:        "image_mosaic",
			Description: "Replace every block of the image with its most frequent color. Blocks start at the top-left corner; edge blocks are clipped.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": outputProperties(map[string]interface{}{
					"path": pathProperty(),
					"block_size": map[string]interface{}{
						"type":        "integer",
						"description": "Block edge in pixels. Default 8",
						"default":     8,
					},
				}),
				"required": []string{"path"},
			},
		},

		// Palette Analysis
		{
			Name:        "image_palette",
			Description: "Compute the median-cut palette of an image without changing it. Each entry has hex, RGB and HSL values plus the share of pixels it covers.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": pathProperty(),
					"colors": map[string]interface{}{
						"type":        "integer",
						"description": "Palette size: a power of two no larger than the pixel count. Default 16",
						"default":     16,
					},
				},
				"required": []string{"path"},
			},
		},
		{
			Name:        "image_count_colors",
			Description: "Count the exact colors in an image, most frequent first. Useful to check a quantized or mosaicked result.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": pathProperty(),
					"limit": map[string]interface{}{
						"type":        "integer",
						"description": "Maximum number of colors to list; -1 lists all. Default 32",
						"default":     32,
					},
				},
				"required": []string{"path"},
			},
		},
		{
			Name:        "image_block_grid",
			Description: "Draw the mosaic block boundaries for a block size over the image to preview how it will be divided.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": pathProperty(),
					"block_size": map[string]interface{}{
						"type":        "integer",
						"description": "Block edge in pixels. Default 8",
						"default":     8,
					},
					"color": map[string]interface{}{
						"type":        "string",
						"description": "Grid line color as #RRGGBB. Default #FF0000",
						"default":     "#FF0000",
					},
					"show_coordinates": map[string]interface{}{
						"type":        "boolean",
						"description": "Label each block with its column,row index. Default false",
						"default":     false,
					},
				},
				"required": []string{"path"},
			},
		},
	}
}

// handleToolsList returns the list of available tools
func (s *Server) handleToolsList(req *MCPRequest) *MCPResponse {
	return &MCPResponse{
		JSONRPC: "2.0",
		ID:      req.ID,
		Result: map[string]interface{}{
			"tools": GetToolDefinitions(),
		},
	}
}
