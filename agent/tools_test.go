package agent

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeExecutor struct {
	queries []string
	rows    []map[string]any
	err     error
}

func (f *fakeExecutor) ExecuteQuery(ctx context.Context, query string) ([]map[string]any, error) {
	f.queries = append(f.queries, query)
	return f.rows, f.err
}

func TestListToolsExposesBothTools(t *testing.T) {
	tools := NewAssistantTools(&fakeExecutor{}, "http://localhost:8081", "key")

	got, err := tools.ListTools(context.Background())
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "execute_query", got[0].Name)
	assert.Equal(t, "update_website_metadata", got[1].Name)
	assert.ElementsMatch(t, []string{"title", "description", "page_h1", "page_paragraph"},
		got[1].InputSchema["required"])
}

func TestExecuteQueryReturnsRowsAsJSON(t *testing.T) {
	exec := &fakeExecutor{rows: []map[string]any{{"clicks": int64(12)}, {"clicks": int64(7)}}}
	tools := NewAssistantTools(exec, "", "")

	out, isErr, err := tools.CallToolText(context.Background(), "execute_query",
		map[string]any{"sql": "SELECT clicks FROM gsc_performance"})
	require.NoError(t, err)
	assert.False(t, isErr)
	assert.Equal(t, []string{"SELECT clicks FROM gsc_performance"}, exec.queries)

	var payload struct {
		Rows  []map[string]any `json:"rows"`
		Count int              `json:"count"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &payload))
	assert.Equal(t, 2, payload.Count)
	assert.Len(t, payload.Rows, 2)
}

// Warehouse failures come back as an error payload the model can read,
// never as an error of the loop.
func TestExecuteQueryFailureIsAValue(t *testing.T) {
	exec := &fakeExecutor{err: errors.New("syntax error near FROM")}
	tools := NewAssistantTools(exec, "", "")

	out, isErr, err := tools.CallToolText(context.Background(), "execute_query",
		map[string]any{"sql": "SELEC oops"})
	require.NoError(t, err)
	assert.True(t, isErr)

	var payload map[string]string
	require.NoError(t, json.Unmarshal([]byte(out), &payload))
	assert.Contains(t, payload["error"], "syntax error")
}

func TestExecuteQueryTruncatesLargeResults(t *testing.T) {
	rows := make([]map[string]any, maxToolResultRows+50)
	for i := range rows {
		rows[i] = map[string]any{"n": i}
	}
	tools := NewAssistantTools(&fakeExecutor{rows: rows}, "", "")

	out, isErr, err := tools.CallToolText(context.Background(), "execute_query",
		map[string]any{"sql": "SELECT n FROM big"})
	require.NoError(t, err)
	assert.False(t, isErr)

	var payload struct {
		Rows      []map[string]any `json:"rows"`
		Count     int              `json:"count"`
		Truncated bool             `json:"truncated"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &payload))
	assert.Len(t, payload.Rows, maxToolResultRows)
	assert.Equal(t, maxToolResultRows, payload.Count)
	assert.True(t, payload.Truncated)
}

func TestExecuteQueryRequiresSQL(t *testing.T) {
	tools := NewAssistantTools(&fakeExecutor{}, "", "")

	_, isErr, err := tools.CallToolText(context.Background(), "execute_query", map[string]any{})
	require.Error(t, err)
	assert.True(t, isErr)
}

func TestUnknownToolIsAnError(t *testing.T) {
	tools := NewAssistantTools(&fakeExecutor{}, "", "")

	_, isErr, err := tools.CallToolText(context.Background(), "delete_warehouse", nil)
	require.Error(t, err)
	assert.True(t, isErr)
}

func TestUpdateMetadataPostsToWebsite(t *testing.T) {
	var gotPath, gotKey string
	var gotBody map[string]string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotKey = r.Header.Get("X-API-KEY")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		fmt.Fprint(w, `{"status":"success","message":"Website content updated."}`)
	}))
	defer srv.Close()

	tools := NewAssistantTools(&fakeExecutor{}, srv.URL, "secret-key")

	args := map[string]any{
		"title":          "Best Orthopedic Hospital in Chennai | Apollo",
		"description":    "Expert knee and hip care.",
		"page_h1":        "Orthopedic Excellence",
		"page_paragraph": "Our surgeons lead the region.",
	}
	out, isErr, err := tools.CallToolText(context.Background(), "update_website_metadata", args)
	require.NoError(t, err)
	assert.False(t, isErr)

	assert.Equal(t, "/api/update-metadata", gotPath)
	assert.Equal(t, "secret-key", gotKey)
	assert.Equal(t, "Orthopedic Excellence", gotBody["page_h1"])

	var resp map[string]string
	require.NoError(t, json.Unmarshal([]byte(out), &resp))
	assert.Equal(t, "success", resp["status"])
}

func TestUpdateMetadataAPIFailureIsAValue(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
	}))
	defer srv.Close()

	tools := NewAssistantTools(&fakeExecutor{}, srv.URL, "wrong-key")

	out, isErr, err := tools.CallToolText(context.Background(), "update_website_metadata",
		map[string]any{"title": "x", "description": "x", "page_h1": "x", "page_paragraph": "x"})
	require.NoError(t, err)
	assert.True(t, isErr)

	var resp map[string]string
	require.NoError(t, json.Unmarshal([]byte(out), &resp))
	assert.Equal(t, "error", resp["status"])
	assert.Contains(t, resp["message"], "401")
}

func TestUpdateMetadataUnreachableWebsiteIsAValue(t *testing.T) {
	tools := NewAssistantTools(&fakeExecutor{}, "http://127.0.0.1:1", "")

	out, isErr, err := tools.CallToolText(context.Background(), "update_website_metadata",
		map[string]any{"title": "x", "description": "x", "page_h1": "x", "page_paragraph": "x"})
	require.NoError(t, err)
	assert.True(t, isErr)

	var resp map[string]string
	require.NoError(t, json.Unmarshal([]byte(out), &resp))
	assert.Equal(t, "error", resp["status"])
}
