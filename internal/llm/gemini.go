package llm

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"

	"google.golang.org/genai"

	"github.com/licagency/policy-tracker/constants"
	"github.com/licagency/policy-tracker/internal/entity"
	"github.com/licagency/policy-tracker/internal/parse"
)

const defaultGeminiModel = "gemini-2.0-flash"

const systemPrompt = `You read Indian life-insurance agency statements
(commission statements, premium due lists, claims due lists). Extract every
table row into the JSON schema you are given. Policy numbers are exactly 9
digits. Dates must be ISO YYYY-MM-DD. Omit any field you cannot read; never
guess amounts. Return JSON only.`

// GeminiExtractor asks Gemini for structured rows when pattern parsing
// found nothing. Responses are sanitized, schema validated, and then run
// through the same name and date normalization as pattern rows, so a
// hallucinated row cannot reach the store unchecked.
type GeminiExtractor struct {
	client *genai.Client
	model  string
	logger *slog.Logger
}

func NewGeminiExtractor(ctx context.Context, apiKey, model string, logger *slog.Logger) (*GeminiExtractor, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("gemini: api key is required")
	}
	if model == "" {
		model = defaultGeminiModel
	}
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("gemini: create client: %w", err)
	}
	return &GeminiExtractor{
		client: client,
		model:  model,
		logger: logger.With("component", "llm.gemini"),
	}, nil
}

func (g *GeminiExtractor) ExtractRows(ctx context.Context, doc *entity.SourceDocument) ([]entity.RowExtraction, error) {
	prompt := fmt.Sprintf("Document type hint: %s\nFilename: %s\n\n%s",
		doc.Type, doc.Filename, doc.Text)

	cfg := &genai.GenerateContentConfig{
		Temperature:      genai.Ptr(float32(0.1)),
		ResponseMIMEType: "application/json",
		SystemInstruction: &genai.Content{
			Parts: []*genai.Part{{Text: systemPrompt}},
		},
	}

	result, err := g.client.Models.GenerateContent(ctx, g.model, genai.Text(prompt), cfg)
	if err != nil {
		return nil, fmt.Errorf("gemini: generate: %w", err)
	}

	raw := strings.TrimSpace(result.Text())
	raw = strings.TrimPrefix(raw, "```json")
	raw = strings.TrimPrefix(raw, "```")
	raw = strings.TrimSuffix(raw, "```")

	clean, _, err := NormalizeAndSanitizeJSON([]byte(raw), g.logger)
	if err != nil {
		return nil, err
	}
	if err := ValidateJSONAgainstSchema(BuildRowsJSONSchema(), clean); err != nil {
		return nil, err
	}

	var payload struct {
		Rows []rowPayload `json:"rows"`
	}
	if err := json.Unmarshal(clean, &payload); err != nil {
		return nil, fmt.Errorf("gemini: decode rows: %w", err)
	}

	rows := make([]entity.RowExtraction, 0, len(payload.Rows))
	for _, r := range payload.Rows {
		row, ok := r.toExtraction()
		if !ok {
			continue
		}
		rows = append(rows, row)
	}
	g.logger.Info("model extraction complete",
		"filename", doc.Filename, "rows", len(rows), "model", g.model)
	return rows, nil
}

type rowPayload struct {
	PolicyNumber        string   `json:"policy_number"`
	CustomerName        string   `json:"customer_name"`
	PlanName            string   `json:"plan_name"`
	DateOfCommencement  string   `json:"date_of_commencement"`
	PaymentPeriod       string   `json:"payment_period"`
	FUPDate             string   `json:"fup_date"`
	PremiumAmount       *float64 `json:"premium_amount"`
	GSTAmount           *float64 `json:"gst_amount"`
	TotalAmount         *float64 `json:"total_amount"`
	DueCount            *int     `json:"due_count"`
	EstimatedCommission *float64 `json:"estimated_commission"`
	SumAssured          *float64 `json:"sum_assured"`
}

// toExtraction re-normalizes a model row with the same rules as pattern
// rows. A row whose name fails cleaning is dropped.
func (r rowPayload) toExtraction() (entity.RowExtraction, bool) {
	name := parse.CleanName(r.CustomerName)
	if name == "" {
		return entity.RowExtraction{}, false
	}
	row := entity.RowExtraction{
		PolicyNumber:        r.PolicyNumber,
		CustomerName:        name,
		PlanName:            r.PlanName,
		DateOfCommencement:  parse.ParseDate(r.DateOfCommencement),
		PaymentPeriod:       string(constants.MapPaymentPeriod(r.PaymentPeriod)),
		FUPDate:             parse.ParseDate(r.FUPDate),
		PremiumAmount:       r.PremiumAmount,
		GSTAmount:           r.GSTAmount,
		TotalAmount:         r.TotalAmount,
		DueCount:            r.DueCount,
		EstimatedCommission: r.EstimatedCommission,
		SumAssured:          r.SumAssured,
	}
	if r.PaymentPeriod != "" && row.PaymentPeriod == "" {
		// Schema enum values are already canonical; keep them as-is.
		row.PaymentPeriod = r.PaymentPeriod
	}
	return row, true
}
