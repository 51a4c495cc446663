package models

// ChatMessage is one turn of assistant conversation history.
type ChatMessage struct {
	Role    string `json:"role"` // "user" or "assistant"
	Content string `json:"content"`
}

// ChatRequest is an incoming assistant message with prior history.
type ChatRequest struct {
	Message string        `json:"message" binding:"required"`
	History []ChatMessage `json:"history"`
}

// ChatResponse is the assistant's reply, with any SQL it executed along
// the way exposed for transparency.
type ChatResponse struct {
	Answer          string   `json:"answer"`
	ExecutedQueries []string `json:"executed_queries,omitempty"`
	Error           string   `json:"error,omitempty"`
}

// AnalysisRequest asks for the full performance analysis pipeline run
// for one hospital department or topic.
type AnalysisRequest struct {
	Topic string `json:"topic" binding:"required"`
}

// GeneratedQuery is one SQL statement produced by the query generation
// step, tagged with the table it targets.
type GeneratedQuery struct {
	Table string `json:"table"`
	SQL   string `json:"sql"`
}

// QueryResult carries the outcome of one executed query. On failure Error
// is set and Rows is empty; execution failures are values, not panics.
type QueryResult struct {
	Table string           `json:"table"`
	SQL   string           `json:"sql"`
	Rows  []map[string]any `json:"rows"`
	Error string           `json:"error,omitempty"`
}

// AnalysisResponse is the full pipeline result: the generated queries,
// their results, and the synthesized summary with recommendations.
type AnalysisResponse struct {
	Queries         []GeneratedQuery `json:"queries"`
	Results         []QueryResult    `json:"results"`
	Recommendations string           `json:"recommendations"`
	Error           string           `json:"error,omitempty"`
}
