// Package agent implements the conversational marketing assistant: a
// tool-calling loop over an LLM plus the fixed performance-analysis
// pipeline. The LLM and tool surfaces are interfaces so the loop can be
// tested without a provider.
package agent

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"strings"
)

const defaultMaxRounds = 10

// Message represents a message in the conversation.
type Message interface {
	// ToParam converts the message to a provider-specific parameter type.
	ToParam() any
}

// Response represents a response from the LLM.
type Response interface {
	Content() []ContentBlock
	// ToMessage converts the response to a Message for the conversation history.
	ToMessage() Message
}

// ContentBlock is one block of a response: text or a tool use request.
type ContentBlock interface {
	AsText() (text string, ok bool)
	AsToolUse() (id, name string, input []byte, ok bool)
}

// ToolUse is a tool invocation requested by the LLM.
type ToolUse struct {
	ID    string
	Name  string
	Input map[string]any
}

// ToolResult is the outcome of executing one tool call.
type ToolResult struct {
	ID      string
	Content string
	IsError bool
}

// Tool describes an available tool to the LLM.
type Tool struct {
	Name        string
	Description string
	InputSchema map[string]any
}

// ToolClient exposes the assistant's tools.
type ToolClient interface {
	ListTools(ctx context.Context) ([]Tool, error)
	// CallToolText executes a tool; isError marks failures the LLM should
	// see and recover from, err marks failures of the loop itself.
	CallToolText(ctx context.Context, name string, args map[string]any) (result string, isError bool, err error)
}

// LLMClient is the provider boundary.
type LLMClient interface {
	Call(ctx context.Context, system string, messages []Message, tools []Tool) (Response, error)
	ConvertToolResults(toolUses []ToolUse, results []ToolResult) ([]Message, error)
	CreateUserMessage(content string) Message
	CreateAssistantMessage(content string) Message
}

// RunResult is the outcome of one assistant turn.
type RunResult struct {
	FinalText string
	// ExecutedQueries lists the SQL the assistant ran, for transparency.
	ExecutedQueries []string
}

// Config configures the tool-calling loop.
type Config struct {
	LLM        LLMClient
	ToolClient ToolClient
	System     string
	MaxRounds  int
}

func (cfg *Config) Validate() error {
	if cfg.LLM == nil {
		return errors.New("LLM is required")
	}
	if cfg.ToolClient == nil {
		return errors.New("tool client is required")
	}
	if cfg.MaxRounds == 0 {
		cfg.MaxRounds = defaultMaxRounds
	}
	if cfg.MaxRounds < 0 {
		return errors.New("max rounds must be greater than 0")
	}
	return nil
}

// Agent runs the tool-calling loop until the model answers in plain text
// or the round budget is exhausted.
type Agent struct {
	cfg *Config
}

func NewAgent(cfg *Config) (*Agent, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &Agent{cfg: cfg}, nil
}

// Run executes the loop for one user turn.
func (a *Agent) Run(ctx context.Context, initialMessages []Message) (*RunResult, error) {
	msgs := make([]Message, len(initialMessages))
	copy(msgs, initialMessages)

	tools, err := a.cfg.ToolClient.ListTools(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list tools: %w", err)
	}

	var executedQueries []string

	for round := 1; round <= a.cfg.MaxRounds; round++ {
		response, err := a.cfg.LLM.Call(ctx, a.cfg.System, msgs, tools)
		if err != nil {
			return nil, fmt.Errorf("failed to get response: %w", err)
		}

		msgs = append(msgs, response.ToMessage())

		toolUses := extractToolUses(response.Content())
		if len(toolUses) == 0 || round == a.cfg.MaxRounds {
			return &RunResult{
				FinalText:       strings.TrimSpace(collectText(response.Content())),
				ExecutedQueries: executedQueries,
			}, nil
		}

		results := make([]ToolResult, 0, len(toolUses))
		for _, tu := range toolUses {
			if sql, ok := tu.Input["sql"].(string); ok {
				executedQueries = append(executedQueries, sql)
			}

			out, isErr, callErr := a.cfg.ToolClient.CallToolText(ctx, tu.Name, tu.Input)
			if callErr != nil {
				log.Printf("Tool %s failed: %v", tu.Name, callErr)
				results = append(results, ToolResult{
					ID:      tu.ID,
					Content: fmt.Sprintf("Error: %v", callErr),
					IsError: true,
				})
				continue
			}
			if isErr {
				out = fmt.Sprintf("Error: %s", out)
			}
			results = append(results, ToolResult{ID: tu.ID, Content: out, IsError: isErr})
		}

		resultMsgs, err := a.cfg.LLM.ConvertToolResults(toolUses, results)
		if err != nil {
			return nil, fmt.Errorf("failed to convert tool results: %w", err)
		}
		msgs = append(msgs, resultMsgs...)
	}

	return nil, fmt.Errorf("exceeded maximum rounds (%d)", a.cfg.MaxRounds)
}

func extractToolUses(content []ContentBlock) []ToolUse {
	var toolUses []ToolUse
	for _, blk := range content {
		id, name, inputBytes, ok := blk.AsToolUse()
		if !ok || id == "" || name == "" {
			continue
		}
		var input map[string]any
		if err := json.Unmarshal(inputBytes, &input); err != nil {
			continue
		}
		toolUses = append(toolUses, ToolUse{ID: id, Name: name, Input: input})
	}
	return toolUses
}

func collectText(content []ContentBlock) string {
	var b strings.Builder
	for _, blk := range content {
		if text, ok := blk.AsText(); ok && text != "" {
			b.WriteString(text)
		}
	}
	return b.String()
}
