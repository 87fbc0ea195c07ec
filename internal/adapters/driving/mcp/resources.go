package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

const (
	// uriScheme is the custom URI scheme for contentgen resources.
	uriScheme = "feedback://"

	// recentFeedbackLimit bounds the recent feedback resource.
	recentFeedbackLimit = 20
)

// registerResources registers all resource handlers with the MCP server.
func (s *Server) registerResources() {
	// Static resource for recent feedback records.
	s.server.AddResource(&mcp.Resource{
		URI:         uriScheme + "recent",
		Name:        "recent-feedback",
		Description: "Most recently generated feedback records, newest first",
		MIMEType:    "application/json",
	}, s.handleRecentFeedbackResource)

	// Template for a single feedback record.
	s.server.AddResourceTemplate(&mcp.ResourceTemplate{
		URITemplate: uriScheme + "{feedbackId}",
		Name:        "feedback-record",
		Description: "A single feedback record including the prompt sent to the model",
		MIMEType:    "application/json",
	}, s.handleFeedbackRecordResource)
}

// handleRecentFeedbackResource returns the most recent feedback records.
func (s *Server) handleRecentFeedbackResource(
	ctx context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	records, err := s.ports.Feedback.History(ctx, recentFeedbackLimit)
	if err != nil {
		return nil, fmt.Errorf("listing feedback: %w", err)
	}

	// Build summary list without prompts.
	type feedbackInfo struct {
		ID        string `json:"id"`
		Model     string `json:"model"`
		Language  string `json:"language"`
		Tone      string `json:"tone"`
		MaxChars  int    `json:"max_chars"`
		Text      string `json:"text"`
		CreatedAt string `json:"created_at"`
	}

	infos := make([]feedbackInfo, len(records))
	for i := range records {
		infos[i] = feedbackInfo{
			ID:        records[i].ID,
			Model:     records[i].Model,
			Language:  records[i].Language,
			Tone:      records[i].Tone.String(),
			MaxChars:  records[i].MaxChars,
			Text:      records[i].Text,
			CreatedAt: records[i].CreatedAt.Format(time.RFC3339),
		}
	}

	data, err := json.MarshalIndent(infos, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshalling feedback records: %w", err)
	}

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      req.Params.URI,
			MIMEType: "application/json",
			Text:     string(data),
		}},
	}, nil
}

// handleFeedbackRecordResource returns one feedback record in full.
func (s *Server) handleFeedbackRecordResource(
	ctx context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	// Extract feedbackId from URI: feedback://{feedbackId}
	id := extractFeedbackID(req.Params.URI)
	if id == "" {
		return nil, mcp.ResourceNotFoundError(req.Params.URI)
	}

	record, err := s.ports.Feedback.GetFeedback(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("getting feedback: %w", err)
	}

	type feedbackRecord struct {
		ID        string `json:"id"`
		Model     string `json:"model"`
		Language  string `json:"language"`
		Tone      string `json:"tone"`
		MaxChars  int    `json:"max_chars"`
		Prompt    string `json:"prompt"`
		Text      string `json:"text"`
		CreatedAt string `json:"created_at"`
	}

	data, err := json.MarshalIndent(feedbackRecord{
		ID:        record.ID,
		Model:     record.Model,
		Language:  record.Language,
		Tone:      record.Tone.String(),
		MaxChars:  record.MaxChars,
		Prompt:    record.Prompt,
		Text:      record.Text,
		CreatedAt: record.CreatedAt.Format(time.RFC3339),
	}, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshalling feedback record: %w", err)
	}

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      req.Params.URI,
			MIMEType: "application/json",
			Text:     string(data),
		}},
	}, nil
}

// extractFeedbackID extracts the record ID from a URI like feedback://{feedbackId}.
// The static recent resource owns feedback://recent.
func extractFeedbackID(uri string) string {
	if !strings.HasPrefix(uri, uriScheme) {
		return ""
	}

	id := strings.TrimPrefix(uri, uriScheme)
	if id == "" || id == "recent" || strings.Contains(id, "/") {
		return ""
	}

	return id
}
