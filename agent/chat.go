package agent

import "github.com/Amar3x3/seoAgent/models"

// NewChatAgent builds the conversational assistant over the given
// provider and tool set.
func NewChatAgent(llm LLMClient, tools ToolClient) (*Agent, error) {
	return NewAgent(&Config{
		LLM:        llm,
		ToolClient: tools,
		System:     chatSystemPrompt,
	})
}

// BuildConversation converts stored chat history plus the new user
// message into provider messages for one assistant turn.
func BuildConversation(llm LLMClient, history []models.ChatMessage, message string) []Message {
	msgs := make([]Message, 0, len(history)+1)
	for _, m := range history {
		if m.Role == "assistant" {
			msgs = append(msgs, llm.CreateAssistantMessage(m.Content))
		} else {
			msgs = append(msgs, llm.CreateUserMessage(m.Content))
		}
	}
	return append(msgs, llm.CreateUserMessage(message))
}
