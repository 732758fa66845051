// Package server implements the MCP (Model Context Protocol) server for the
// sprite pipeline.
//
// It exposes each pipeline stage as a tool so an assistant can check what the
// background classifier, matte and segmenter make of a composite before the
// assets are built.
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
//   - sprite_load: Load a composite and describe it
//   - sprite_classify_background: Estimate the checkerboard tones
//   - sprite_remove_background: Write a matted copy with real alpha
//   - sprite_segment: Find strips and frames
//   - sprite_build_assets: Run the whole pipeline and write all assets
//   - sprite_inspect: Diagnostic report with palette and optional overlay
//
// # Image Caching
//
// Decoded composites are cached by path for the lifetime of the server.
// sprite_build_assets evicts the inbox composites first so it always works
// on the files currently on disk.
//
// # Error Handling
//
// Tool execution errors are returned as JSON-RPC error responses with:
//   - code: -32000 (tool execution failure) or standard JSON-RPC codes
//   - message: Human-readable error description
//   - data: Additional error details (typically the Go error string)
package server
