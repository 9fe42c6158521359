package docs

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"path"
	"strings"

	"golang.org/x/net/html"

	"warehouseiq/internal/ai"
	"warehouseiq/internal/storage"
)

// ExtractedItem is one line item pulled out of a packing slip or invoice.
type ExtractedItem struct {
	SKU        string  `json:"sku"`
	Name       string  `json:"name"`
	Quantity   int     `json:"quantity"`
	UnitCost   float64 `json:"unit_cost"`
	Confidence float64 `json:"confidence"`
}

type Result struct {
	ObjectPath string          `json:"objectPath"`
	Items      []ExtractedItem `json:"items"`
}

// ObjectStore is the slice of object storage the processor needs.
type ObjectStore interface {
	PutBytes(ctx context.Context, objectPath string, data []byte, contentType string) error
	RemovePrefix(ctx context.Context, prefix string) error
}

// Processor stores uploaded receiving documents and extracts their line items.
// HTML payloads are stripped to text before hitting the model; anything else
// is treated as plain text.
type Processor struct {
	Store ObjectStore
	LLM   *ai.Client
}

func New(store ObjectStore, llm *ai.Client) *Processor {
	return &Processor{Store: store, LLM: llm}
}

const maxPromptText = 6000

func (p *Processor) Process(ctx context.Context, documentID, fileName, contentType string, raw []byte) (*Result, error) {
	if len(raw) == 0 {
		return nil, errors.New("empty document")
	}

	objectPath := path.Join(storage.DocumentPrefix(documentID), safeName(fileName))
	if err := p.Store.PutBytes(ctx, objectPath, raw, contentType); err != nil {
		return nil, err
	}

	text := string(raw)
	if isHTML(contentType, fileName) {
		if extracted, err := htmlToText(raw); err == nil {
			text = extracted
		}
	}
	text = strings.TrimSpace(text)
	if len(text) > maxPromptText {
		text = text[:maxPromptText]
	}

	items, err := p.extractItems(ctx, text)
	if err != nil {
		// failed uploads must not leave unreferenced objects behind
		_ = p.Store.RemovePrefix(ctx, storage.DocumentPrefix(documentID))
		return nil, err
	}
	return &Result{ObjectPath: objectPath, Items: items}, nil
}

func (p *Processor) extractItems(ctx context.Context, text string) ([]ExtractedItem, error) {
	if p.LLM == nil || !p.LLM.Enabled() {
		return nil, errors.New("llm not configured")
	}

	system := "You are an expert data entry clerk. Return strict JSON only."
	user := "Analyze this document (it is likely a packing slip, invoice, or waybill).\n" +
		"Extract the line items purchased or shipped. Ignore subtotals, taxes, and irrelevant text.\n\n" +
		"Return ONLY a JSON array of objects. Each object MUST have these precise keys:\n" +
		"- \"sku\": (string) The product code, part number, or SKU. If missing, generate a short 6-char alphabetical identifier based on the name.\n" +
		"- \"name\": (string) The description or name of the product.\n" +
		"- \"quantity\": (number) The quantity shipped or billed. If missing, assume 1.\n" +
		"- \"unit_cost\": (number) The price per unit. If missing or not applicable, assume 0.\n" +
		"- \"confidence\": (number) A score between 0.0 and 1.0 for how confident you are in this row.\n\n" +
		"Document text:\n" + text

	raw, err := p.LLM.ChatJSON(ctx, system, user, 0.1)
	if err != nil {
		return nil, err
	}
	raw = ai.ExtractJSON(raw)
	if raw == "" {
		return nil, errors.New("llm invalid json")
	}

	var items []ExtractedItem
	if err := json.Unmarshal([]byte(raw), &items); err != nil {
		return nil, err
	}

	out := make([]ExtractedItem, 0, len(items))
	for _, item := range items {
		item.SKU = strings.TrimSpace(item.SKU)
		item.Name = strings.TrimSpace(item.Name)
		if item.Name == "" {
			continue
		}
		if item.Quantity <= 0 {
			item.Quantity = 1
		}
		out = append(out, item)
	}
	return out, nil
}

func htmlToText(raw []byte) (string, error) {
	doc, err := html.Parse(bytes.NewReader(raw))
	if err != nil {
		return "", err
	}

	var sb strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode {
			switch strings.ToLower(n.Data) {
			case "script", "style", "head":
				return
			}
		}
		if n.Type == html.TextNode {
			if t := strings.TrimSpace(n.Data); t != "" {
				sb.WriteString(t)
				sb.WriteByte('\n')
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(doc)
	return sb.String(), nil
}

func isHTML(contentType, fileName string) bool {
	if strings.Contains(strings.ToLower(contentType), "html") {
		return true
	}
	ext := strings.ToLower(path.Ext(fileName))
	return ext == ".html" || ext == ".htm"
}

func safeName(fileName string) string {
	name := path.Base(strings.ReplaceAll(fileName, "\\", "/"))
	if name == "" || name == "." || name == "/" {
		return "document"
	}
	return name
}
