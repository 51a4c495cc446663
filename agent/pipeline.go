package agent

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"strings"

	"github.com/Amar3x3/seoAgent/models"
)

// Pipeline is the fixed performance-analysis sequence: generate three
// SQL queries for a topic, execute them, and synthesize a summary with
// three recommendations. Query failures do not abort the run; they are
// carried into the results so the recommendation step can work with
// whatever data came back.
type Pipeline struct {
	LLM      LLMClient
	Executor QueryExecutor
}

func NewPipeline(llm LLMClient, executor QueryExecutor) *Pipeline {
	return &Pipeline{LLM: llm, Executor: executor}
}

// Analyze runs the full pipeline for one hospital department or topic.
func (p *Pipeline) Analyze(ctx context.Context, topic string) (*models.AnalysisResponse, error) {
	queries, err := p.generateQueries(ctx, topic)
	if err != nil {
		return nil, fmt.Errorf("failed to generate queries: %w", err)
	}

	results := p.executeQueries(ctx, queries)

	recommendations, err := p.recommend(ctx, topic, results)
	if err != nil {
		return nil, fmt.Errorf("failed to generate recommendations: %w", err)
	}

	return &models.AnalysisResponse{
		Queries:         queries,
		Results:         results,
		Recommendations: recommendations,
	}, nil
}

func (p *Pipeline) generateQueries(ctx context.Context, topic string) ([]models.GeneratedQuery, error) {
	prompt := fmt.Sprintf("Write the three analysis queries for the %s department.", topic)
	response, err := p.LLM.Call(ctx, queryGeneratorPrompt, []Message{p.LLM.CreateUserMessage(prompt)}, nil)
	if err != nil {
		return nil, err
	}

	text := collectText(response.Content())

	var queries []models.GeneratedQuery
	if err := json.Unmarshal([]byte(stripCodeFence(text)), &queries); err != nil {
		return nil, fmt.Errorf("model returned invalid query JSON: %w", err)
	}
	if len(queries) != 3 {
		return nil, fmt.Errorf("expected 3 queries, got %d", len(queries))
	}
	return queries, nil
}

func (p *Pipeline) executeQueries(ctx context.Context, queries []models.GeneratedQuery) []models.QueryResult {
	results := make([]models.QueryResult, 0, len(queries))
	for _, q := range queries {
		result := models.QueryResult{Table: q.Table, SQL: q.SQL}

		log.Printf("--- EXECUTING QUERY (%s) ---\n%s\n----------------------------", q.Table, q.SQL)
		rows, err := p.Executor.ExecuteQuery(ctx, q.SQL)
		if err != nil {
			log.Printf("Query against %s failed: %v", q.Table, err)
			result.Error = err.Error()
		} else {
			if len(rows) > maxToolResultRows {
				rows = rows[:maxToolResultRows]
			}
			result.Rows = rows
		}
		results = append(results, result)
	}
	return results
}

func (p *Pipeline) recommend(ctx context.Context, topic string, results []models.QueryResult) (string, error) {
	data, err := json.Marshal(results)
	if err != nil {
		return "", fmt.Errorf("failed to encode results: %w", err)
	}

	prompt := fmt.Sprintf("Department: %s\n\nQuery results:\n%s", topic, data)
	response, err := p.LLM.Call(ctx, recommendationPrompt, []Message{p.LLM.CreateUserMessage(prompt)}, nil)
	if err != nil {
		return "", err
	}

	return strings.TrimSpace(collectText(response.Content())), nil
}

// stripCodeFence removes a surrounding markdown code fence, which models
// sometimes wrap JSON output in despite instructions.
func stripCodeFence(s string) string {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "```") {
		return s
	}
	s = strings.TrimPrefix(s, "```json")
	s = strings.TrimPrefix(s, "```")
	s = strings.TrimSuffix(strings.TrimSpace(s), "```")
	return strings.TrimSpace(s)
}
