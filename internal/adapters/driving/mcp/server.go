// Package mcp provides an MCP (Model Context Protocol) server adapter
// for fetch-doc. It lets AI assistants fetch rendered documents from
// the configured collection by name.
package mcp

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/oldgaffers/fetch-doc/internal/core/ports/driving"
)

// Version is the MCP server version.
const Version = "0.1.0"

// ErrMissingDocumentService is returned when the document service is
// not provided.
var ErrMissingDocumentService = errors.New("mcp: document service is required")

// Server is the MCP server for fetch-doc.
type Server struct {
	document driving.DocumentService
	server   *mcp.Server
}

// NewServer creates a new MCP server around the document service.
func NewServer(document driving.DocumentService) (*Server, error) {
	if document == nil {
		return nil, ErrMissingDocumentService
	}

	impl := &mcp.Implementation{
		Name:    "fetch-doc",
		Version: Version,
	}

	s := &Server{
		document: document,
		server:   mcp.NewServer(impl, nil),
	}

	s.registerTools()

	return s, nil
}

// Run starts the MCP server over stdio.
// It blocks until the context is cancelled or an error occurs.
func (s *Server) Run(ctx context.Context) error {
	return s.server.Run(ctx, &mcp.StdioTransport{})
}

// RunHTTP starts the MCP server over HTTP on the specified address.
// It blocks until the context is cancelled or an error occurs.
func (s *Server) RunHTTP(ctx context.Context, addr string) error {
	handler := mcp.NewStreamableHTTPHandler(func(_ *http.Request) *mcp.Server {
		return s.server
	}, nil)

	httpServer := &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	// Graceful shutdown when context is cancelled
	go func() {
		<-ctx.Done()
		httpServer.Shutdown(context.Background()) //nolint:errcheck
	}()

	err := httpServer.ListenAndServe()
	if err == http.ErrServerClosed {
		return nil
	}
	return err
}
