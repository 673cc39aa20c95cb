package itinerary

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/ijalalfrz/travel-planner-service/internal/pkg/exception"
	"google.golang.org/genai"
)

const DefaultModel = "gemini-2.0-flash"

var ErrGenerationFailed = exception.ApplicationError{
	StatusCode: http.StatusBadGateway,
	Message:    "failed to generate travel plan",
}

var ErrEmptyResponse = exception.ApplicationError{
	StatusCode: http.StatusBadGateway,
	Message:    "language model returned an empty response",
}

// ContentGenerator is satisfied by genai.Client.Models.
type ContentGenerator interface {
	GenerateContent(ctx context.Context, model string, contents []*genai.Content,
		config *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error)
}

type Config struct {
	APIKey      string
	Model       string
	Temperature float32
	Timeout     time.Duration
}

// Request carries everything the itinerary prompt needs.
type Request struct {
	Destination string
	Days        int
	FlightInfo  string
	HotelInfo   string
}

type Planner struct {
	generator   ContentGenerator
	model       string
	temperature float32
	timeout     time.Duration
}

func NewPlanner(generator ContentGenerator, model string, temperature float32) *Planner {
	if model == "" {
		model = DefaultModel
	}

	return &Planner{
		generator:   generator,
		model:       model,
		temperature: temperature,
	}
}

// NewGeminiPlanner builds a Planner backed by the Gemini API.
func NewGeminiPlanner(ctx context.Context, config Config) (*Planner, error) {
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  config.APIKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("create genai client: %w", err)
	}

	p := NewPlanner(client.Models, config.Model, config.Temperature)
	p.timeout = config.Timeout

	return p, nil
}

// RecommendHotel asks the model to pick the best option from hotelInfo.
func (p *Planner) RecommendHotel(ctx context.Context, hotelInfo string) (string, error) {
	prompt := fmt.Sprintf(hotelPrompt, hotelInfo)

	return p.generate(ctx, "recommend_hotel", hotelSystemInstruction, prompt)
}

// CreateItinerary produces a day-by-day markdown plan.
func (p *Planner) CreateItinerary(ctx context.Context, req Request) (string, error) {
	prompt := fmt.Sprintf(itineraryPrompt, req.Days, req.Destination,
		req.FlightInfo, req.HotelInfo, req.Days)

	return p.generate(ctx, "create_itinerary", itinerarySystemInstruction, prompt)
}

func (p *Planner) generate(ctx context.Context, task, system, prompt string) (string, error) {
	if p.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, p.timeout)
		defer cancel()
	}

	start := time.Now()

	resp, err := p.generator.GenerateContent(ctx, p.model, genai.Text(prompt), &genai.GenerateContentConfig{
		SystemInstruction: genai.NewContentFromText(system, genai.RoleUser),
		Temperature:       genai.Ptr[float32](p.temperature),
	})
	if err != nil {
		return "", exception.Wrap(ErrGenerationFailed, fmt.Errorf("%s: %w", task, err))
	}

	text := strings.TrimSpace(extractText(resp))
	if text == "" {
		return "", ErrEmptyResponse
	}

	slog.InfoContext(ctx, "llm generation finished",
		slog.String("task", task),
		slog.String("model", p.model),
		slog.Duration("elapsed", time.Since(start)))

	return text, nil
}

func extractText(resp *genai.GenerateContentResponse) string {
	if resp == nil {
		return ""
	}

	var sb strings.Builder

	for _, candidate := range resp.Candidates {
		if candidate == nil || candidate.Content == nil {
			continue
		}

		for _, part := range candidate.Content.Parts {
			if part != nil {
				sb.WriteString(part.Text)
			}
		}

		break
	}

	return sb.String()
}
