// Package mcpserver provides an MCP (Model Context Protocol) server
// that exposes Folio content tools for LLM integration via stdio transport.
package mcpserver

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/aditpras/folio/internal/content"
	"github.com/aditpras/folio/internal/media"
	"github.com/aditpras/folio/internal/models"
)

// Server wraps the MCP server with Folio tools.
type Server struct {
	mcp     *server.MCPServer
	svc     *content.Service
	uploads *media.Store
	index   media.AssetIndex
}

// New creates a new MCP server with all Folio tools registered.
// uploads and index may be nil when asset upload is not needed.
func New(svc *content.Service, uploads *media.Store, index media.AssetIndex) *Server {
	s := &Server{svc: svc, uploads: uploads, index: index}

	s.mcp = server.NewMCPServer(
		"Folio",
		"1.0.0",
		server.WithToolCapabilities(false),
		server.WithResourceCapabilities(false, false),
	)

	s.mcp.AddTool(mcp.NewTool("get_profile",
		mcp.WithDescription("Read the portfolio owner's profile record."),
	), s.getProfile)

	s.mcp.AddTool(mcp.NewTool("list_records",
		mcp.WithDescription("List the active records of one content collection, sorted by display order. "+
			"Valid collections: education, experiences, certifications, skills, projects, whatImDoing."),
		mcp.WithString("collection", mcp.Required(), mcp.Description("Collection name")),
	), s.listRecords)

	s.mcp.AddTool(mcp.NewTool("create_record",
		mcp.WithDescription("Create a new content record. Fields MUST follow the record shape for the "+
			"collection; read the folio://content-schema resource or the get_content_schema tool first."),
		mcp.WithString("collection", mcp.Required(), mcp.Description("Collection name")),
		mcp.WithString("fields", mcp.Required(), mcp.Description("JSON object with the record's fields")),
	), s.createRecord)

	s.mcp.AddTool(mcp.NewTool("update_record",
		mcp.WithDescription("Merge a partial field set into an existing record. Unnamed fields are untouched."),
		mcp.WithString("collection", mcp.Required(), mcp.Description("Collection name")),
		mcp.WithString("id", mcp.Required(), mcp.Description("Record id")),
		mcp.WithString("fields", mcp.Required(), mcp.Description("JSON object with the fields to change")),
	), s.updateRecord)

	s.mcp.AddTool(mcp.NewTool("archive_record",
		mcp.WithDescription("Archive a record (soft delete). The record disappears from lists but is retained."),
		mcp.WithString("collection", mcp.Required(), mcp.Description("Collection name")),
		mcp.WithString("id", mcp.Required(), mcp.Description("Record id")),
	), s.archiveRecord)

	s.mcp.AddTool(mcp.NewTool("move_record",
		mcp.WithDescription("Move a record one position up or down in its collection's display order."),
		mcp.WithString("collection", mcp.Required(), mcp.Description("Collection name")),
		mcp.WithString("id", mcp.Required(), mcp.Description("Record id")),
		mcp.WithString("direction", mcp.Required(), mcp.Description("\"up\" or \"down\"")),
	), s.moveRecord)

	s.mcp.AddTool(mcp.NewTool("list_messages",
		mcp.WithDescription("List the contact-form inquiries in arrival order."),
	), s.listMessages)

	s.mcp.AddTool(mcp.NewTool("get_content_schema",
		mcp.WithDescription("Returns the record shapes for every content collection. "+
			"Call this before creating or updating records."),
	), s.getContentSchema)

	if s.uploads != nil {
		registerUploadAsset(s)
	}

	// Resource: content schema contract.
	s.mcp.AddResource(
		mcp.NewResource("folio://content-schema", "Content Schema",
			mcp.WithResourceDescription("Record shapes all content collections must follow."),
			mcp.WithMIMEType("text/markdown"),
		),
		s.readContentSchemaResource,
	)

	return s
}

// ServeStdio starts the MCP server on stdin/stdout.
func (s *Server) ServeStdio() error {
	return server.ServeStdio(s.mcp)
}

// MCPServer returns the underlying server for testing.
func (s *Server) MCPServer() *server.MCPServer {
	return s.mcp
}

// collections maps a tool-facing collection name to a generic accessor.
type collectionOps struct {
	list    func(ctx context.Context) (any, error)
	create  func(ctx context.Context, fields map[string]any) (any, error)
	update  func(ctx context.Context, id string, fields map[string]any) (any, error)
	archive func(ctx context.Context, id string) error
	move    func(ctx context.Context, id string, dir content.Direction) error
}

func ops[T any](col *content.Collection[T]) collectionOps {
	return collectionOps{
		list: func(ctx context.Context) (any, error) { return col.List(ctx, nil) },
		create: func(ctx context.Context, fields map[string]any) (any, error) {
			raw, err := json.Marshal(fields)
			if err != nil {
				return nil, err
			}
			var rec T
			if err := json.Unmarshal(raw, &rec); err != nil {
				return nil, err
			}
			return col.Create(ctx, &rec)
		},
		update: func(ctx context.Context, id string, fields map[string]any) (any, error) {
			return col.Update(ctx, id, fields)
		},
		archive: col.Archive,
		move:    col.Move,
	}
}

func (s *Server) collection(name string) (collectionOps, error) {
	switch name {
	case models.CollectionEducation:
		return ops(s.svc.Education), nil
	case models.CollectionExperiences:
		return ops(s.svc.Experiences), nil
	case models.CollectionCertifications:
		return ops(s.svc.Certifications), nil
	case models.CollectionSkills:
		return ops(s.svc.Skills), nil
	case models.CollectionProjects:
		return ops(s.svc.Projects), nil
	case models.CollectionWhatImDoing:
		return ops(s.svc.WhatImDoing), nil
	default:
		return collectionOps{}, fmt.Errorf("unknown collection: %s", name)
	}
}

func fieldsArg(req mcp.CallToolRequest) (map[string]any, error) {
	raw, err := req.RequireString("fields")
	if err != nil {
		return nil, err
	}
	var fields map[string]any
	if err := json.Unmarshal([]byte(raw), &fields); err != nil {
		return nil, fmt.Errorf("fields must be a JSON object: %w", err)
	}
	return fields, nil
}

func (s *Server) getProfile(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	p, err := s.svc.GetProfile(ctx)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	if p == nil {
		return mcp.NewToolResultText("profile has not been written yet"), nil
	}
	out, _ := json.MarshalIndent(p, "", "  ")
	return mcp.NewToolResultText(string(out)), nil
}

func (s *Server) listRecords(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	name, err := req.RequireString("collection")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	col, err := s.collection(name)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	records, err := col.list(ctx)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return mcp.NewToolResultText(renderRecords(name, records)), nil
}

func (s *Server) createRecord(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	name, err := req.RequireString("collection")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	col, err := s.collection(name)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	fields, err := fieldsArg(req)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	coerceListFields(name, fields)
	rec, err := col.create(ctx, fields)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return mcp.NewToolResultText(renderRecords(name, rec)), nil
}

func (s *Server) updateRecord(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	name, err := req.RequireString("collection")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	id, err := req.RequireString("id")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	col, err := s.collection(name)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	fields, err := fieldsArg(req)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	coerceListFields(name, fields)
	rec, err := col.update(ctx, id, fields)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return mcp.NewToolResultText(renderRecords(name, rec)), nil
}

func (s *Server) archiveRecord(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	name, err := req.RequireString("collection")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	id, err := req.RequireString("id")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	col, err := s.collection(name)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	if err := col.archive(ctx, id); err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return mcp.NewToolResultText(fmt.Sprintf("archived: %s/%s", name, id)), nil
}

func (s *Server) moveRecord(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	name, err := req.RequireString("collection")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	id, err := req.RequireString("id")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	dirArg, err := req.RequireString("direction")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	var dir content.Direction
	switch strings.ToLower(dirArg) {
	case "up":
		dir = content.MoveUp
	case "down":
		dir = content.MoveDown
	default:
		return mcp.NewToolResultError("direction must be \"up\" or \"down\""), nil
	}
	col, err := s.collection(name)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	if err := col.move(ctx, id, dir); err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return mcp.NewToolResultText(fmt.Sprintf("moved %s: %s/%s", dirArg, name, id)), nil
}

func (s *Server) listMessages(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	msgs, err := s.svc.ListContactMessages(ctx)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	out, _ := json.MarshalIndent(msgs, "", "  ")
	return mcp.NewToolResultText(string(out)), nil
}

func (s *Server) getContentSchema(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return mcp.NewToolResultText(ContentSchemaContract), nil
}

func (s *Server) readContentSchemaResource(ctx context.Context, req mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
	return []mcp.ResourceContents{
		mcp.TextResourceContents{
			URI:      "folio://content-schema",
			MIMEType: "text/markdown",
			Text:     ContentSchemaContract,
		},
	}, nil
}
