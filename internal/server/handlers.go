package server

import (
	"encoding/json"
	"fmt"

	"github.com/ironsheep/sprite-tools/internal/imaging"
	"github.com/ironsheep/sprite-tools/internal/matte"
	"github.com/ironsheep/sprite-tools/internal/pipeline"
	"github.com/ironsheep/sprite-tools/internal/segment"
)

// ToolCallParams represents the parameters for a tools/call MCP request.
type ToolCallParams struct {
	// Name is the tool to invoke (e.g., "sprite_segment").
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

	result, err := s.executeTool(params.Name, params.Arguments)
	if err != nil {
		return s.errorResponse(req.ID, -32000, "Tool execution failed", err.Error())
	}

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
func (s *Server) executeTool(name string, args json.RawMessage) (interface{}, error) {
	switch name {
	case "sprite_load":
		return s.handleSpriteLoad(args)
	case "sprite_classify_background":
		return s.handleClassifyBackground(args)
	case "sprite_remove_background":
		return s.handleRemoveBackground(args)
	case "sprite_segment":
		return s.handleSegment(args)
	case "sprite_build_assets":
		return s.handleBuildAssets(args)
	case "sprite_inspect":
		return s.handleInspect(args)
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
// On marshal failure, returns an empty string.
func mustMarshalJSON(v interface{}) string {
	b, _ := json.MarshalIndent(v, "", "  ")
	return string(b)
}

type pathArgs struct {
	Path string `json:"path"`
}

func (a pathArgs) validate() error {
	if a.Path == "" {
		return fmt.Errorf("path is required")
	}
	return nil
}

func (s *Server) handleSpriteLoad(args json.RawMessage) (interface{}, error) {
	var a pathArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	if err := a.validate(); err != nil {
		return nil, err
	}
	return imaging.LoadImageInfo(s.loader, a.Path)
}

// BackgroundResult is returned by sprite_classify_background.
type BackgroundResult struct {
	Dark            string `json:"dark"`
	Light           string `json:"light"`
	HasTransparency bool   `json:"has_transparency"`
}

func (s *Server) handleClassifyBackground(args json.RawMessage) (interface{}, error) {
	var a pathArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	if err := a.validate(); err != nil {
		return nil, err
	}
	img, err := s.loader.Load(a.Path)
	if err != nil {
		return nil, err
	}
	bg := matte.ClassifyBackground(img)
	return &BackgroundResult{
		Dark:            bg.Dark.Hex(),
		Light:           bg.Light.Hex(),
		HasTransparency: imaging.HasTransparency(img),
	}, nil
}

type removeBackgroundArgs struct {
	Path   string `json:"path"`
	Output string `json:"output"`
	Mode   string `json:"mode"`
	Key    string `json:"key"`
}

// RemoveBackgroundResult is returned by sprite_remove_background.
type RemoveBackgroundResult struct {
	Output            string     `json:"output"`
	Mode              matte.Mode `json:"mode"`
	BackgroundDark    string     `json:"background_dark,omitempty"`
	BackgroundLight   string     `json:"background_light,omitempty"`
	Key               string     `json:"key,omitempty"`
	TransparencyRatio float64    `json:"transparency_ratio"`
}

func (s *Server) handleRemoveBackground(args json.RawMessage) (interface{}, error) {
	var a removeBackgroundArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	if a.Path == "" || a.Output == "" {
		return nil, fmt.Errorf("path and output are required")
	}

	opts := s.cfg.MatteOptions()
	if a.Key != "" {
		key, err := imaging.ParseHex(a.Key)
		if err != nil {
			return nil, err
		}
		opts.Key = &key
	}

	img, err := s.loader.Load(a.Path)
	if err != nil {
		return nil, err
	}

	var res *matte.Result
	switch a.Mode {
	case "", "auto":
		res = matte.Auto(img, opts)
	case "checkerboard":
		bg := matte.ClassifyBackground(img)
		out := matte.RemoveCheckerboard(img, bg)
		res = &matte.Result{Image: out, Mode: matte.ModeCheckerboard, Background: bg,
			TransparencyRatio: imaging.TransparencyRatio(out)}
	case "solid-key":
		key := matte.CornerKey(img, opts.PatchSize)
		if opts.Key != nil {
			key = *opts.Key
		}
		out := matte.RemoveSolidKey(img, key)
		res = &matte.Result{Image: out, Mode: matte.ModeSolidKey, Key: key,
			TransparencyRatio: imaging.TransparencyRatio(out)}
	default:
		return nil, fmt.Errorf("unknown mode: %s", a.Mode)
	}

	if err := imaging.WritePNG(a.Output, res.Image); err != nil {
		return nil, err
	}

	out := &RemoveBackgroundResult{
		Output:            a.Output,
		Mode:              res.Mode,
		TransparencyRatio: res.TransparencyRatio,
	}
	switch res.Mode {
	case matte.ModeCheckerboard:
		out.BackgroundDark = res.Background.Dark.Hex()
		out.BackgroundLight = res.Background.Light.Hex()
	case matte.ModeSolidKey:
		out.Key = res.Key.Hex()
	}
	return out, nil
}

type segmentArgs struct {
	Path      string `json:"path"`
	MinStrips *int   `json:"min_strips"`
	GridRows  int    `json:"grid_rows"`
	GridCols  int    `json:"grid_cols"`
}

// SegmentResult is returned by sprite_segment.
type SegmentResult struct {
	Mode     matte.Mode      `json:"mode"`
	Strips   []segment.Strip `json:"strips"`
	UsedGrid bool            `json:"used_grid"`
}

func (s *Server) handleSegment(args json.RawMessage) (interface{}, error) {
	var a segmentArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	if a.Path == "" {
		return nil, fmt.Errorf("path is required")
	}

	var layout segment.Layout
	if c, ok := s.manifest.Lookup(a.Path); ok {
		layout = c.Layout
	}
	if a.MinStrips != nil {
		layout.MinStrips = *a.MinStrips
	}
	if a.GridRows > 0 {
		layout.GridRows = a.GridRows
	}
	if a.GridCols > 0 {
		layout.GridCols = a.GridCols
	}

	img, err := s.loader.Load(a.Path)
	if err != nil {
		return nil, err
	}
	res := matte.Auto(img, s.cfg.MatteOptions())
	segs := segment.SegmentOrGrid(res.Image, layout)
	return &SegmentResult{Mode: res.Mode, Strips: segs.Strips, UsedGrid: segs.UsedGrid}, nil
}

type buildAssetsArgs struct {
	Root string `json:"root"`
}

func (s *Server) handleBuildAssets(args json.RawMessage) (interface{}, error) {
	var a buildAssetsArgs
	if len(args) > 0 {
		if err := json.Unmarshal(args, &a); err != nil {
			return nil, err
		}
	}
	cfg := s.cfg
	if a.Root != "" {
		cfg.Root = a.Root
	}
	// Composites are re-read so edits in the inbox are picked up.
	for _, c := range s.manifest.Composites {
		s.loader.Evict(cfg.InputPath(c.Input))
	}
	return pipeline.New(cfg, s.manifest, s.loader).Run()
}

type inspectArgs struct {
	Path    string `json:"path"`
	Overlay string `json:"overlay"`
	Palette string `json:"palette"`
	Colors  int    `json:"colors"`
}

func (s *Server) handleInspect(args json.RawMessage) (interface{}, error) {
	var a inspectArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	if a.Path == "" {
		return nil, fmt.Errorf("path is required")
	}
	return pipeline.New(s.cfg, s.manifest, s.loader).Inspect(a.Path, pipeline.InspectOptions{
		Overlay: a.Overlay,
		Palette: pipeline.PaletteMethod(a.Palette),
		Colors:  a.Colors,
	})
}
