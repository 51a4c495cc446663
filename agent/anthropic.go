package agent

import (
	"context"
	"fmt"

	anthropic "github.com/anthropics/anthropic-sdk-go"
)

// AnthropicLLM implements LLMClient for Anthropic.
type AnthropicLLM struct {
	client          anthropic.Client
	model           anthropic.Model
	maxOutputTokens int64
}

// NewAnthropicLLM creates a new Anthropic LLM client.
func NewAnthropicLLM(client anthropic.Client, model anthropic.Model, maxOutputTokens int64) *AnthropicLLM {
	return &AnthropicLLM{
		client:          client,
		model:           model,
		maxOutputTokens: maxOutputTokens,
	}
}

// Call sends messages to Anthropic and returns a response.
func (a *AnthropicLLM) Call(ctx context.Context, system string, messages []Message, tools []Tool) (Response, error) {
	anthropicMsgs := make([]anthropic.MessageParam, len(messages))
	for i, msg := range messages {
		param, ok := msg.ToParam().(anthropic.MessageParam)
		if !ok {
			return nil, fmt.Errorf("expected anthropic.MessageParam, got %T", msg.ToParam())
		}
		anthropicMsgs[i] = param
	}

	params := anthropic.MessageNewParams{
		Model:     a.model,
		MaxTokens: a.maxOutputTokens,
		Messages:  anthropicMsgs,
		Tools:     toAnthropicTools(tools),
	}
	if system != "" {
		// Cache the system prompt: it carries the full warehouse schema
		// and is identical across turns.
		params.System = []anthropic.TextBlockParam{
			{
				Text:         system,
				CacheControl: anthropic.NewCacheControlEphemeralParam(),
			},
		}
	}

	resp, err := a.client.Messages.New(ctx, params)
	if err != nil {
		return nil, fmt.Errorf("failed to get response: %w", err)
	}

	return anthropicResponse{resp: resp}, nil
}

// ConvertToolResults converts tool results to Anthropic messages.
func (a *AnthropicLLM) ConvertToolResults(toolUses []ToolUse, results []ToolResult) ([]Message, error) {
	blocks := make([]anthropic.ContentBlockParamUnion, 0, len(results))
	for _, result := range results {
		blocks = append(blocks, anthropic.NewToolResultBlock(result.ID, result.Content, result.IsError))
	}

	return []Message{anthropicMessage{msg: anthropic.NewUserMessage(blocks...)}}, nil
}

// CreateUserMessage creates a user message in Anthropic format.
func (a *AnthropicLLM) CreateUserMessage(content string) Message {
	return anthropicMessage{msg: anthropic.NewUserMessage(anthropic.NewTextBlock(content))}
}

// CreateAssistantMessage creates an assistant message in Anthropic format.
func (a *AnthropicLLM) CreateAssistantMessage(content string) Message {
	return anthropicMessage{msg: anthropic.NewAssistantMessage(anthropic.NewTextBlock(content))}
}

// anthropicMessage wraps Anthropic's MessageParam to implement Message.
type anthropicMessage struct {
	msg anthropic.MessageParam
}

func (m anthropicMessage) ToParam() any {
	return m.msg
}

// anthropicResponse wraps Anthropic's response to implement Response.
type anthropicResponse struct {
	resp *anthropic.Message
}

func (r anthropicResponse) Content() []ContentBlock {
	blocks := make([]ContentBlock, len(r.resp.Content))
	for i, blk := range r.resp.Content {
		blocks[i] = anthropicContentBlock{blk}
	}
	return blocks
}

func (r anthropicResponse) ToMessage() Message {
	return anthropicMessage{msg: r.resp.ToParam()}
}

// anthropicContentBlock wraps Anthropic's ContentBlockUnion.
type anthropicContentBlock struct {
	blk anthropic.ContentBlockUnion
}

func (b anthropicContentBlock) AsText() (string, bool) {
	text := b.blk.AsText()
	if text.Text == "" {
		return "", false
	}
	return text.Text, true
}

func (b anthropicContentBlock) AsToolUse() (string, string, []byte, bool) {
	tu := b.blk.AsToolUse()
	if tu.ID == "" || tu.Name == "" {
		return "", "", nil, false
	}
	return tu.ID, tu.Name, tu.Input, true
}

// toAnthropicTools converts tools to Anthropic tool parameters.
func toAnthropicTools(tools []Tool) []anthropic.ToolUnionParam {
	out := make([]anthropic.ToolUnionParam, 0, len(tools))
	for _, t := range tools {
		props, _ := t.InputSchema["properties"].(map[string]any)
		required, _ := t.InputSchema["required"].([]string)
		toolParam := anthropic.ToolParam{
			Name:        t.Name,
			Description: anthropic.Opt(t.Description),
			InputSchema: anthropic.ToolInputSchemaParam{
				Type:       "object",
				Properties: props,
				Required:   required,
			},
		}
		out = append(out, anthropic.ToolUnionParam{OfTool: &toolParam})
	}
	return out
}
