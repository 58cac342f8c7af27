package server

import (
	"encoding/json"
	"fmt"
	"path/filepath"
	"time"

	"github.com/ironsheep/pixelator-mcp/internal/imaging"
	"github.com/ironsheep/pixelator-mcp/internal/quantize"
)

// ToolCallParams represents the parameters for a tools/call MCP request.
type ToolCallParams struct {
	// Name is the tool to invoke (e.g., "image_load", "image_quantize").
	Name string `json:"name"`

	// Arguments contains the tool-specific parameters as JSON.
	Arguments json.RawMessage `json:"arguments"`
}

// handleToolsCall processes a tools/call request and executes the specified tool.
//
// The response wraps the tool result in MCP's content format:
//
//	{
//	  "content": [{"type": "text", "text": "<JSON result>"}]
//	}
//
// Tool execution errors return a JSON-RPC error response with code -32000.
func (s *Server) handleToolsCall(req *MCPRequest) *MCPResponse {
	var params ToolCallParams
	if err := json.Unmarshal(req.Params, &params); err != nil {
		return s.errorResponse(req.ID, -32602, "Invalid params", err.Error())
	}

	start := time.Now()
	result, err := s.executeTool(params.Name, params.Arguments)
	if err != nil {
		s.logger.Warn("tool failed", "tool", params.Name, "error", err)
		return s.errorResponse(req.ID, -32000, "Tool execution failed", err.Error())
	}
	s.logger.Debug("tool call", "tool", params.Name, "duration", time.Since(start))

	return &MCPResponse{
		JSONRPC: "2.0",
		ID:      req.ID,
		Result: map[string]interface{}{
			"content": []map[string]interface{}{
				{
					"type": "text",
					"text": mustMarshalJSON(result),
				},
			},
		},
	}
}

// executeTool dispatches tool execution to the appropriate handler function.
//
// Each tool handler:
//  1. Unmarshals arguments from JSON
//  2. Applies default values for optional parameters
//  3. Loads the source image from cache
//  4. Calls the appropriate imaging function
//  5. Returns the result or error
func (s *Server) executeTool(name string, args json.RawMessage) (interface{}, error) {
	switch name {
	// Basic Image Information
	case "image_load":
		return s.handleImageLoad(args)
	case "image_dimensions":
		return s.handleImageDimensions(args)
	case "image_sample_color":
		return s.handleImageSampleColor(args)

	// Pixelation
	case "image_quantize":
		return s.handleImageQuantize(args)
	case "image_mosaic":
		return s.handleImageMosaic(args)

	// Palette Analysis
	case "image_palette":
		return s.handleImagePalette(args)
	case "image_count_colors":
		return s.handleImageCountColors(args)
	case "image_block_grid":
		return s.handleImageBlockGrid(args)

	default:
		return nil, fmt.Errorf("unknown tool: %s", name)
	}
}

// errorResponse creates a JSON-RPC error response with the given details.
func (s *Server) errorResponse(id interface{}, code int, message, data string) *MCPResponse {
	return &MCPResponse{
		JSONRPC: "2.0",
		ID:      id,
		Error: &MCPError{
			Code:    code,
			Message: message,
			Data:    data,
		},
	}
}

// mustMarshalJSON converts a value to pretty-printed JSON string.
// Panics are suppressed; on marshal failure, returns an empty string.
func mustMarshalJSON(v interface{}) string {
	b, _ := json.MarshalIndent(v, "", "  ")
	return string(b)
}

// === Basic Image Information Handlers ===

type imageLoadArgs struct {
	Path string `json:"path"`
}

func (s *Server) handleImageLoad(args json.RawMessage) (interface{}, error) {
	var a imageLoadArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	return imaging.LoadImageInfo(s.cache, a.Path)
}

func (s *Server) handleImageDimensions(args json.RawMessage) (interface{}, error) {
	var a imageLoadArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	return imaging.GetDimensions(s.cache, a.Path)
}

type imageSampleColorArgs struct {
	Path string `json:"path"`
	X    int    `json:"x"`
	Y    int    `json:"y"`
}

func (s *Server) handleImageSampleColor(args json.RawMessage) (interface{}, error) {
	var a imageSampleColorArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	img, err := s.cache.Load(a.Path)
	if err != nil {
		return nil, err
	}
	return imaging.SampleColor(img, a.X, a.Y)
}

// === Pixelation Handlers ===

// pixelateResult is returned by image_quantize and image_mosaic. Image is
// set unless the result was written to output_path.
type pixelateResult struct {
	*imaging.PixelateResult
	Image *imaging.EncodedImage `json:"image,omitempty"`
	Saved *imaging.SaveResult   `json:"saved,omitempty"`
}

type imageQuantizeArgs struct {
	Path       string `json:"path"`
	Colors     int    `json:"colors"`
	BlockSize  int    `json:"block_size"`
	Scale      int    `json:"scale"`
	OutputPath string `json:"output_path"`
	Quality    int    `json:"quality"`
}

func (s *Server) handleImageQuantize(args json.RawMessage) (interface{}, error) {
	var a imageQuantizeArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	if a.Colors == 0 {
		a.Colors = imaging.DefaultColors
	}
	if a.BlockSize < 0 {
		return nil, fmt.Errorf("%w: %d", quantize.ErrInvalidBlockSize, a.BlockSize)
	}
	return s.pixelate(a)
}

type imageMosaicArgs struct {
	Path       string `json:"path"`
	BlockSize  int    `json:"block_size"`
	Scale      int    `json:"scale"`
	OutputPath string `json:"output_path"`
	Quality    int    `json:"quality"`
}

func (s *Server) handleImageMosaic(args json.RawMessage) (interface{}, error) {
	var a imageMosaicArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	if a.BlockSize == 0 {
		a.BlockSize = quantize.DefaultBlockSize
	}
	return s.pixelate(imageQuantizeArgs{
		Path:       a.Path,
		BlockSize:  a.BlockSize,
		Scale:      a.Scale,
		OutputPath: a.OutputPath,
		Quality:    a.Quality,
	})
}

// pixelate runs the requested passes and either saves or encodes the result.
func (s *Server) pixelate(a imageQuantizeArgs) (interface{}, error) {
	if a.Scale == 0 {
		a.Scale = 1
	}
	// Reject bad output settings before spending time on the image.
	if err := imaging.CheckScale(a.Scale); err != nil {
		return nil, err
	}
	if a.OutputPath != "" {
		if _, err := imaging.EncoderFor(filepath.Ext(a.OutputPath), a.Quality, s.workers); err != nil {
			return nil, err
		}
	}
	img, err := s.cache.Load(a.Path)
	if err != nil {
		return nil, err
	}

	result, err := imaging.Pixelate(img, imaging.PixelateOptions{
		Colors:    a.Colors,
		BlockSize: a.BlockSize,
		Workers:   s.workers,
		Logger:    s.logger,
	})
	if err != nil {
		return nil, err
	}

	if a.OutputPath != "" {
		saved, err := imaging.Save(result.Image, a.OutputPath, a.Quality, s.workers)
		if err != nil {
			return nil, err
		}
		// The output may overwrite a cached source.
		s.cache.Evict(a.OutputPath)
		return &pixelateResult{PixelateResult: result, Saved: saved}, nil
	}

	encoded, err := imaging.EncodeResult(result.Image, a.Scale)
	if err != nil {
		return nil, err
	}
	return &pixelateResult{PixelateResult: result, Image: encoded}, nil
}

// === Palette Analysis Handlers ===

type imagePaletteArgs struct {
	Path   string `json:"path"`
	Colors int    `json:"colors"`
}

func (s *Server) handleImagePalette(args json.RawMessage) (interface{}, error) {
	var a imagePaletteArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	if a.Colors == 0 {
		a.Colors = imaging.DefaultColors
	}
	img, err := s.cache.Load(a.Path)
	if err != nil {
		return nil, err
	}
	return imaging.ExtractPalette(img, a.Colors, s.workers)
}

type imageCountColorsArgs struct {
	Path  string `json:"path"`
	Limit int    `json:"limit"`
}

func (s *Server) handleImageCountColors(args json.RawMessage) (interface{}, error) {
	var a imageCountColorsArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	if a.Limit == 0 {
		a.Limit = 32
	}
	img, err := s.cache.Load(a.Path)
	if err != nil {
		return nil, err
	}
	return imaging.CountColors(img, a.Limit), nil
}

type imageBlockGridArgs struct {
	Path            string `json:"path"`
	BlockSize       int    `json:"block_size"`
	Color           string `json:"color"`
	ShowCoordinates bool   `json:"show_coordinates"`
}

func (s *Server) handleImageBlockGrid(args json.RawMessage) (interface{}, error) {
	var a imageBlockGridArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	if a.BlockSize == 0 {
		a.BlockSize = quantize.DefaultBlockSize
	}
	if a.Color == "" {
		a.Color = "#FF0000"
	}
	img, err := s.cache.Load(a.Path)
	if err != nil {
		return nil, err
	}
	return imaging.BlockGridOverlay(img, a.BlockSize, a.Color, a.ShowCoordinates)
}
