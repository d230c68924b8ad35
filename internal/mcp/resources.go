package mcp

import (
	"context"
	"encoding/json"

	"github.com/mark3labs/mcp-go/mcp"
)

func (h *handlers) programResource(ctx context.Context, req mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
	p, err := h.ds.Program(ctx)
	if err != nil {
		return nil, err
	}
	return jsonResource(req.Params.URI, p)
}

func (h *handlers) todayResource(ctx context.Context, req mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
	pos, err := h.ds.Position(ctx)
	if err != nil {
		return nil, err
	}
	view, err := h.ds.SessionView(ctx, pos.Week, pos.Day)
	if err != nil {
		return nil, err
	}
	return jsonResource(req.Params.URI, map[string]any{
		"position": pos,
		"session":  view,
	})
}

func (h *handlers) oneRMResource(ctx context.Context, req mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
	rm, err := h.ds.OneRM(ctx)
	if err != nil {
		return nil, err
	}
	return jsonResource(req.Params.URI, rm)
}

func jsonResource(uri string, v any) ([]mcp.ResourceContents, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	return []mcp.ResourceContents{
		mcp.TextResourceContents{
			URI:      uri,
			MIMEType: "application/json",
			Text:     string(data),
		},
	}, nil
}
