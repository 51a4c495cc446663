// api/handlers/chat_handlers.go
package handlers

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Amar3x3/seoAgent/agent"
	"github.com/Amar3x3/seoAgent/models"
)

// Assistant turns can involve several model calls and queries.
const assistantTimeout = 3 * time.Minute

type ChatHandlers struct {
	LLM      agent.LLMClient
	Tools    agent.ToolClient
	Pipeline *agent.Pipeline
}

func NewChatHandlers(llm agent.LLMClient, tools agent.ToolClient, pipeline *agent.Pipeline) *ChatHandlers {
	return &ChatHandlers{
		LLM:      llm,
		Tools:    tools,
		Pipeline: pipeline,
	}
}

// Chat handles one free-form assistant turn: data questions, follow-ups
// on recommendations, and confirmed content updates.
func (h *ChatHandlers) Chat(c *gin.Context) {
	var req models.ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	chatAgent, err := agent.NewChatAgent(h.LLM, h.Tools)
	if err != nil {
		log.Printf("Error building chat agent: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Assistant is not available"})
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), assistantTimeout)
	defer cancel()

	result, err := chatAgent.Run(ctx, agent.BuildConversation(h.LLM, req.History, req.Message))
	if err != nil {
		log.Printf("Error running chat agent: %v", err)
		c.JSON(http.StatusInternalServerError, models.ChatResponse{Error: "Assistant failed to respond"})
		return
	}

	c.JSON(http.StatusOK, models.ChatResponse{
		Answer:          result.FinalText,
		ExecutedQueries: result.ExecutedQueries,
	})
}

// Analyze runs the full performance-analysis pipeline for a department:
// query generation, execution, and recommendations.
func (h *ChatHandlers) Analyze(c *gin.Context) {
	var req models.AnalysisRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), assistantTimeout)
	defer cancel()

	result, err := h.Pipeline.Analyze(ctx, req.Topic)
	if err != nil {
		log.Printf("Error running analysis pipeline: %v", err)
		c.JSON(http.StatusInternalServerError, models.AnalysisResponse{Error: "Analysis pipeline failed"})
		return
	}

	c.JSON(http.StatusOK, result)
}
