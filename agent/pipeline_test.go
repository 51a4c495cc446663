package agent

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// scriptedExecutor answers each query from a per-SQL script.
type scriptedExecutor struct {
	queries []string
	rowsFor map[string][]map[string]any
	errFor  map[string]error
}

func (s *scriptedExecutor) ExecuteQuery(ctx context.Context, query string) ([]map[string]any, error) {
	s.queries = append(s.queries, query)
	if err, ok := s.errFor[query]; ok {
		return nil, err
	}
	return s.rowsFor[query], nil
}

const queriesJSON = `[
  {"table": "gsc_performance", "sql": "SELECT query, sum(clicks) FROM gsc_performance GROUP BY query"},
  {"table": "youtube_analytics", "sql": "SELECT video_title, sum(views) FROM youtube_analytics GROUP BY video_title"},
  {"table": "ga_sessions", "sql": "SELECT count() FROM ga_sessions"}
]`

func TestAnalyzeRunsThreeQueriesAndRecommends(t *testing.T) {
	llm := &mockLLM{responses: []Response{
		// Models wrap JSON in a fence often enough that the pipeline must cope.
		mockResponse{blocks: []ContentBlock{mockBlock{text: "```json\n" + queriesJSON + "\n```"}}},
		mockResponse{blocks: []ContentBlock{mockBlock{text: "Summary.\n1. Do A.\n2. Do B.\n3. Do C."}}},
	}}
	exec := &scriptedExecutor{
		rowsFor: map[string][]map[string]any{
			"SELECT count() FROM ga_sessions": {{"count()": uint64(31234)}},
		},
	}

	p := NewPipeline(llm, exec)
	resp, err := p.Analyze(context.Background(), "orthopedics")
	require.NoError(t, err)

	require.Len(t, resp.Queries, 3)
	assert.Equal(t, "gsc_performance", resp.Queries[0].Table)
	require.Len(t, resp.Results, 3)
	assert.Len(t, exec.queries, 3)
	assert.Equal(t, "Summary.\n1. Do A.\n2. Do B.\n3. Do C.", resp.Recommendations)

	// Each stage carries its own system prompt.
	require.Len(t, llm.systems, 2)
	assert.Equal(t, queryGeneratorPrompt, llm.systems[0])
	assert.Equal(t, recommendationPrompt, llm.systems[1])
}

func TestAnalyzeCarriesQueryFailuresIntoResults(t *testing.T) {
	llm := &mockLLM{responses: []Response{
		mockResponse{blocks: []ContentBlock{mockBlock{text: queriesJSON}}},
		mockResponse{blocks: []ContentBlock{mockBlock{text: "Partial recommendations."}}},
	}}
	exec := &scriptedExecutor{
		errFor: map[string]error{
			"SELECT count() FROM ga_sessions": errors.New("table not found"),
		},
	}

	p := NewPipeline(llm, exec)
	resp, err := p.Analyze(context.Background(), "cardiology")
	require.NoError(t, err, "a failed query must not abort the pipeline")

	require.Len(t, resp.Results, 3)
	assert.Empty(t, resp.Results[0].Error)
	assert.Empty(t, resp.Results[1].Error)
	assert.Contains(t, resp.Results[2].Error, "table not found")
	assert.Equal(t, "Partial recommendations.", resp.Recommendations)
}

func TestAnalyzeRejectsWrongQueryCount(t *testing.T) {
	llm := &mockLLM{responses: []Response{
		mockResponse{blocks: []ContentBlock{mockBlock{text: `[{"table":"ga_sessions","sql":"SELECT 1"}]`}}},
	}}

	p := NewPipeline(llm, &scriptedExecutor{})
	_, err := p.Analyze(context.Background(), "maternity")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "expected 3 queries")
}

func TestAnalyzeRejectsInvalidQueryJSON(t *testing.T) {
	llm := &mockLLM{responses: []Response{
		mockResponse{blocks: []ContentBlock{mockBlock{text: "I think you should query the GSC table."}}},
	}}

	p := NewPipeline(llm, &scriptedExecutor{})
	_, err := p.Analyze(context.Background(), "orthopedics")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid query JSON")
}

func TestStripCodeFence(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"bare json", `[{"a":1}]`, `[{"a":1}]`},
		{"json fence", "```json\n[{\"a\":1}]\n```", `[{"a":1}]`},
		{"plain fence", "```\n[{\"a\":1}]\n```", `[{"a":1}]`},
		{"surrounding whitespace", "  \n```json\n[]\n```\n ", "[]"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, stripCodeFence(tt.in))
		})
	}
}
