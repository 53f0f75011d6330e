package mcp

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// FetchDocumentInput is the input schema for the fetch_document tool.
type FetchDocumentInput struct {
	DocName string `json:"doc_name" jsonschema:"exact name of the document to fetch"`
}

// FetchDocumentOutput is the output schema for the fetch_document tool.
type FetchDocumentOutput struct {
	Title string `json:"title"`
	HTML  string `json:"html"`
}

// registerTools registers all tool handlers with the MCP server.
func (s *Server) registerTools() {
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "fetch_document",
		Description: "Fetch a document from the shared folder by exact name, rendered as HTML",
	}, s.handleFetchDocument)
}

// handleFetchDocument handles the fetch_document tool invocation.
func (s *Server) handleFetchDocument(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input FetchDocumentInput,
) (*mcp.CallToolResult, FetchDocumentOutput, error) {
	doc, err := s.document.FetchHTML(ctx, input.DocName)
	if err != nil {
		return nil, FetchDocumentOutput{}, err
	}

	return nil, FetchDocumentOutput{Title: doc.Title, HTML: doc.HTML}, nil
}
