package assistant

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"time"

	"gorm.io/gorm"

	"warehouseiq/internal/ai"
)

// Assistant answers free-form questions about warehouse data. It is stateless:
// each call asks the model for either a direct reply or a SQL query, runs the
// query read-only, then asks the model to summarize the rows.
type Assistant struct {
	DB  *gorm.DB
	LLM *ai.Client
}

type Reply struct {
	Text string           `json:"text"`
	Data []map[string]any `json:"data,omitempty"`
}

type routedReply struct {
	Type    string `json:"type"`
	Content string `json:"content"`
}

const maxResultRows = 50

func New(db *gorm.DB, llm *ai.Client) *Assistant {
	return &Assistant{DB: db, LLM: llm}
}

func (a *Assistant) Ask(ctx context.Context, message string) (Reply, error) {
	if a.LLM == nil || !a.LLM.Enabled() {
		return Reply{}, errors.New("llm not configured")
	}

	system := "You are WarehouseIQ, an intelligent warehouse assistant. Return strict JSON only."
	user := "Database Schema:\n" + databaseSchema + "\n\n" +
		"User Input: \"" + message + "\"\n\n" +
		"Your Goal:\n" +
		"- If the user asks a question about data (inventory, orders, locations, etc.), generate a SQL query.\n" +
		"- If the user starts a conversation (hi, who are you, help), reply directly.\n" +
		"- If the request is unclear or impossible, explain why.\n\n" +
		"Output Format (JSON only):\n" +
		"{\"type\": \"sql\" | \"chat\", \"content\": \"THE_SQL_QUERY or THE_NATURAL_LANGUAGE_RESPONSE\"}\n\n" +
		"Rules for SQL:\n" +
		"- MySQL dialect.\n" +
		"- SELECT only.\n" +
		"- Limit to 10 rows by default.\n" +
		"- Today is " + time.Now().UTC().Format(time.RFC3339) + "."

	raw, err := a.LLM.ChatJSON(ctx, system, user, 0.2)
	if err != nil {
		return Reply{}, err
	}
	raw = ai.ExtractJSON(raw)
	if raw == "" {
		return Reply{Text: "I'm having trouble understanding that right now. Could you rephrase?"}, nil
	}

	var routed routedReply
	if err := json.Unmarshal([]byte(raw), &routed); err != nil {
		return Reply{Text: "I'm having trouble understanding that right now. Could you rephrase?"}, nil
	}
	if routed.Type == "chat" {
		return Reply{Text: routed.Content}, nil
	}

	query := strings.TrimSuffix(strings.TrimSpace(routed.Content), ";")
	if !isReadOnlyQuery(query) {
		return Reply{Text: "I can only run read-only queries against the warehouse data."}, nil
	}

	rows, err := a.runQuery(ctx, query)
	if err != nil {
		return Reply{Text: "I tried to fetch that data but ran into an issue: " + err.Error()}, nil
	}

	return a.summarize(ctx, message, query, rows)
}

func (a *Assistant) runQuery(ctx context.Context, query string) ([]map[string]any, error) {
	var rows []map[string]any
	if err := a.DB.WithContext(ctx).Raw(query).Scan(&rows).Error; err != nil {
		return nil, err
	}
	if len(rows) > maxResultRows {
		rows = rows[:maxResultRows]
	}
	return rows, nil
}

func (a *Assistant) summarize(ctx context.Context, question, query string, rows []map[string]any) (Reply, error) {
	payload, _ := json.Marshal(rows)
	if len(payload) > 3000 {
		payload = payload[:3000]
	}

	system := "You are WarehouseIQ, an intelligent warehouse assistant."
	user := "User Question: \"" + question + "\"\n" +
		"SQL Query Used: " + query + "\n" +
		"Data Returned: " + string(payload) + "\n\n" +
		"Provide a concise, helpful answer summarizing the data.\n" +
		"If no data was found, say so clearly."

	answer, err := a.LLM.ChatJSON(ctx, system, user, 0.2)
	if err != nil {
		return Reply{}, err
	}
	return Reply{Text: answer, Data: rows}, nil
}

// isReadOnlyQuery rejects anything other than a single SELECT statement. The
// model is told SELECT-only, but the guard runs regardless.
func isReadOnlyQuery(query string) bool {
	q := strings.ToLower(strings.TrimSpace(query))
	if !strings.HasPrefix(q, "select") && !strings.HasPrefix(q, "with") {
		return false
	}
	if strings.ContainsAny(q, ";") {
		return false
	}
	for _, kw := range []string{"insert ", "update ", "delete ", "drop ", "alter ", "truncate ", "create ", "grant ", "revoke "} {
		if strings.Contains(q, kw) {
			return false
		}
	}
	return true
}
