package agent

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"time"
)

// QueryExecutor runs SQL against the analytics warehouse.
type QueryExecutor interface {
	ExecuteQuery(ctx context.Context, query string) ([]map[string]any, error)
}

const maxToolResultRows = 200

// AssistantTools exposes the assistant's two tools: warehouse queries
// and pushing approved content to the website API. Both translate every
// failure into a result the model can read; nothing escapes the tool
// boundary as an error of the loop itself.
type AssistantTools struct {
	Executor   QueryExecutor
	WebsiteURL string
	APIKey     string
	HTTPClient *http.Client
}

func NewAssistantTools(executor QueryExecutor, websiteURL, apiKey string) *AssistantTools {
	return &AssistantTools{
		Executor:   executor,
		WebsiteURL: websiteURL,
		APIKey:     apiKey,
		HTTPClient: &http.Client{Timeout: 30 * time.Second},
	}
}

// ListTools returns the available tools.
func (t *AssistantTools) ListTools(ctx context.Context) ([]Tool, error) {
	return []Tool{
		{
			Name:        "execute_query",
			Description: "Execute a ClickHouse SQL query against the hospital analytics warehouse. Returns rows as a JSON array of column-name to value objects, or {\"error\": message} on failure.",
			InputSchema: map[string]any{
				"type": "object",
				"properties": map[string]any{
					"sql": map[string]any{
						"type":        "string",
						"description": "The SQL query to execute",
					},
				},
				"required": []string{"sql"},
			},
		},
		{
			Name:        "update_website_metadata",
			Description: "Update the hospital website's SEO metadata and visible hero content. Call only after the user explicitly confirms the change.",
			InputSchema: map[string]any{
				"type": "object",
				"properties": map[string]any{
					"title":          map[string]any{"type": "string", "description": "The new SEO title"},
					"description":    map[string]any{"type": "string", "description": "The new meta description"},
					"page_h1":        map[string]any{"type": "string", "description": "The new main heading (h1) for the page"},
					"page_paragraph": map[string]any{"type": "string", "description": "The new introductory paragraph for the page"},
				},
				"required": []string{"title", "description", "page_h1", "page_paragraph"},
			},
		},
	}, nil
}

// CallToolText dispatches a tool call.
func (t *AssistantTools) CallToolText(ctx context.Context, name string, args map[string]any) (string, bool, error) {
	switch name {
	case "execute_query":
		return t.executeQuery(ctx, args)
	case "update_website_metadata":
		return t.updateMetadata(ctx, args)
	default:
		return "", true, fmt.Errorf("unknown tool: %s", name)
	}
}

func (t *AssistantTools) executeQuery(ctx context.Context, args map[string]any) (string, bool, error) {
	sql, ok := args["sql"].(string)
	if !ok || sql == "" {
		return "", true, fmt.Errorf("sql parameter is required and must be a string")
	}

	log.Printf("--- EXECUTING QUERY ---\n%s\n-----------------------", sql)

	rows, err := t.Executor.ExecuteQuery(ctx, sql)
	if err != nil {
		// Failure contract at this boundary: return {error: message}
		// rather than raising, so the model can fix the SQL and retry.
		errJSON, _ := json.Marshal(map[string]string{"error": err.Error()})
		return string(errJSON), true, nil
	}

	truncated := false
	if len(rows) > maxToolResultRows {
		rows = rows[:maxToolResultRows]
		truncated = true
	}

	payload := map[string]any{"rows": rows, "count": len(rows)}
	if truncated {
		payload["truncated"] = true
	}
	out, err := json.Marshal(payload)
	if err != nil {
		errJSON, _ := json.Marshal(map[string]string{"error": fmt.Sprintf("failed to encode result: %v", err)})
		return string(errJSON), true, nil
	}
	return string(out), false, nil
}

func (t *AssistantTools) updateMetadata(ctx context.Context, args map[string]any) (string, bool, error) {
	payload, err := json.Marshal(args)
	if err != nil {
		return "", true, fmt.Errorf("failed to encode payload: %w", err)
	}

	url := t.WebsiteURL + "/api/update-metadata"
	log.Printf("--- CALLING METADATA API ---\nURL: %s\nPayload: %s\n----------------------------", url, payload)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return toolError(fmt.Sprintf("failed to build request: %v", err)), true, nil
	}
	req.Header.Set("Content-Type", "application/json")
	if t.APIKey != "" {
		req.Header.Set("X-API-KEY", t.APIKey)
	}

	resp, err := t.HTTPClient.Do(req)
	if err != nil {
		return toolError(fmt.Sprintf("API call failed: %v", err)), true, nil
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return toolError(fmt.Sprintf("failed to read response: %v", err)), true, nil
	}
	if resp.StatusCode != http.StatusOK {
		return toolError(fmt.Sprintf("API call failed with status %d: %s", resp.StatusCode, body)), true, nil
	}

	return string(body), false, nil
}

// toolError formats a failure as the structured status result the
// assistant expects from the content API boundary.
func toolError(message string) string {
	out, _ := json.Marshal(map[string]string{"status": "error", "message": message})
	return string(out)
}
