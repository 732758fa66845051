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
		"description": "Path to the composite image file",
	}
}

// GetToolDefinitions returns all available tools
func GetToolDefinitions() []Tool {
	return []Tool{
		{
			Name:        "sprite_load",
			Description: "Load a composite image and return its dimensions, format and whether it already has real transparency.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": pathProperty(),
				},
				"required": []string{"path"},
			},
		},
		{
			Name:        "sprite_classify_background",
			Description: "Estimate the two grey tones of a fake-transparency checkerboard behind a composite.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": pathProperty(),
				},
				"required": []string{"path"},
			},
		},
		{
			Name:        "sprite_remove_background",
			Description: "Replace a checkerboard or solid-colour backdrop with a real alpha channel and write the result as PNG.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": pathProperty(),
					"output": map[string]interface{}{
						"type":        "string",
						"description": "Where to write the matted PNG",
					},
					"mode": map[string]interface{}{
						"type":        "string",
						"enum":        []string{"auto", "checkerboard", "solid-key"},
						"description": "Background model. Default auto: keep existing alpha, else checkerboard, else solid key",
						"default":     "auto",
					},
					"key": map[string]interface{}{
						"type":        "string",
						"description": "Solid key colour as hex (e.g., '#00FF00'). Default: mean of the corners",
					},
				},
				"required": []string{"path", "output"},
			},
		},
		{
			Name:        "sprite_segment",
			Description: "Matte a composite and split it into strips and frames by alpha mass projection, falling back to an even grid when too few strips are found.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": pathProperty(),
					"min_strips": map[string]interface{}{
						"type":        "integer",
						"description": "Fewest strips accepted before the grid fallback. Default from the manifest, else 0",
					},
					"grid_rows": map[string]interface{}{
						"type":        "integer",
						"description": "Fallback grid rows",
					},
					"grid_cols": map[string]interface{}{
						"type":        "integer",
						"description": "Fallback grid columns",
					},
				},
				"required": []string{"path"},
			},
		},
		{
			Name:        "sprite_build_assets",
			Description: "Run the full pipeline over the inbox composites and write every sprite sheet and icon named in the manifest.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"root": map[string]interface{}{
						"type":        "string",
						"description": "Project root containing the inbox and asset directories. Default: server root",
					},
				},
			},
		},
		{
			Name:        "sprite_inspect",
			Description: "Report background, matte mode, transparency, strips and frames, and a foreground palette for a composite. Optionally writes a segmentation overlay.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": pathProperty(),
					"overlay": map[string]interface{}{
						"type":        "string",
						"description": "Optional path for a PNG with frame outlines",
					},
					"palette": map[string]interface{}{
						"type":        "string",
						"enum":        []string{"dominant", "kmeans"},
						"description": "Palette extraction method. Default dominant",
						"default":     "dominant",
					},
					"colors": map[string]interface{}{
						"type":        "integer",
						"description": "Palette size (default 6)",
						"default":     6,
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
