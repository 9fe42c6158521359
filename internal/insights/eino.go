package insights

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/cloudwego/eino/compose"

	"warehouseiq/internal/ai"
)

// Snapshot is the aggregated warehouse state the insight pipeline works from.
type Snapshot struct {
	TotalOrders   int64
	PendingOrders int64
	LowStockItems []string
	Date          string
	LLM           *ai.Client
}

type Insight struct {
	Title    string `json:"title"`
	Content  string `json:"content"`
	Severity string `json:"severity"`
	Type     string `json:"type"`
}

type contextualized struct {
	DataContext string
	LLM         *ai.Client
}

// Generator runs the collector -> analyst -> formatter graph over a snapshot
// and yields a handful of manager-facing insights.
type Generator struct {
	runnable compose.Runnable[Snapshot, []Insight]
}

func NewGenerator() (*Generator, error) {
	graph := compose.NewGraph[Snapshot, []Insight]()
	if err := graph.AddLambdaNode("collector", compose.InvokableLambda(collectorNode)); err != nil {
		return nil, err
	}
	if err := graph.AddLambdaNode("analyst", compose.InvokableLambda(analystNode)); err != nil {
		return nil, err
	}
	if err := graph.AddLambdaNode("formatter", compose.InvokableLambda(formatterNode)); err != nil {
		return nil, err
	}
	if err := graph.AddEdge(compose.START, "collector"); err != nil {
		return nil, err
	}
	if err := graph.AddEdge("collector", "analyst"); err != nil {
		return nil, err
	}
	if err := graph.AddEdge("analyst", "formatter"); err != nil {
		return nil, err
	}
	if err := graph.AddEdge("formatter", compose.END); err != nil {
		return nil, err
	}

	runnable, err := graph.Compile(context.Background(), compose.WithGraphName("daily_insights"))
	if err != nil {
		return nil, err
	}

	return &Generator{runnable: runnable}, nil
}

func (g *Generator) Generate(ctx context.Context, snap Snapshot) ([]Insight, error) {
	if g == nil || g.runnable == nil {
		return nil, errors.New("insight graph not initialized")
	}
	return g.runnable.Invoke(ctx, snap)
}

func collectorNode(ctx context.Context, snap Snapshot) (contextualized, error) {
	low := snap.LowStockItems
	if len(low) > 20 {
		low = low[:20]
	}
	dataContext := fmt.Sprintf(
		"Current Warehouse Status:\n"+
			"- Total Orders: %d\n"+
			"- Pending Orders: %d\n"+
			"- Low Stock Items Count: %d\n"+
			"- Specific Low Stock Items: %s\n"+
			"- Date: %s",
		snap.TotalOrders, snap.PendingOrders, len(snap.LowStockItems),
		strings.Join(low, ", "), snap.Date,
	)
	return contextualized{DataContext: dataContext, LLM: snap.LLM}, nil
}

func analystNode(ctx context.Context, input contextualized) ([]Insight, error) {
	if input.LLM == nil || !input.LLM.Enabled() {
		return nil, errors.New("llm not configured")
	}

	system := "You are an intelligent warehouse analyst. Return strict JSON only."
	user := "Analyze the following data and generate 3 key insights for the warehouse manager.\n\n" +
		"Data:\n" + input.DataContext + "\n\n" +
		"Rules:\n" +
		"1. Return a JSON array of objects with keys: \"title\", \"content\", \"severity\" (info, warning, critical), \"type\" (summary, anomaly, trend).\n" +
		"2. No markdown, just raw JSON.\n" +
		"3. Focus on actionable insights."

	raw, err := input.LLM.ChatJSON(ctx, system, user, 0.2)
	if err != nil {
		return nil, err
	}
	raw = ai.ExtractJSON(raw)
	if raw == "" {
		return nil, errors.New("llm invalid json")
	}

	var out []Insight
	if err := json.Unmarshal([]byte(raw), &out); err != nil {
		return nil, err
	}
	return out, nil
}

func formatterNode(ctx context.Context, in []Insight) ([]Insight, error) {
	out := make([]Insight, 0, len(in))
	for _, ins := range in {
		ins.Title = strings.TrimSpace(ins.Title)
		ins.Content = strings.TrimSpace(ins.Content)
		if ins.Title == "" || ins.Content == "" {
			continue
		}
		switch ins.Severity {
		case "info", "warning", "critical":
		default:
			ins.Severity = "info"
		}
		switch ins.Type {
		case "summary", "anomaly", "trend":
		default:
			ins.Type = "summary"
		}
		out = append(out, ins)
	}
	if len(out) > 5 {
		out = out[:5]
	}
	return out, nil
}
