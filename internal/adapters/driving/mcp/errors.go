// Package mcp provides an MCP (Model Context Protocol) server adapter for
// contentgen. It enables AI assistants like Claude to generate poker coaching
// feedback from session statistics and validate payloads against stored schemas.
package mcp

import "errors"

// ErrMissingFeedbackService is returned when the feedback service is not provided.
var ErrMissingFeedbackService = errors.New("mcp: feedback service is required")
