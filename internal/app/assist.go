package app

import (
	"context"
	"math"

	"travel_companion/internal/domain"
)

var sentimentQuotes = map[string]string{
	"POSITIVE": "“The world is but a canvas to your imagination.”",
	"NEGATIVE": "“Every adversity carries with it the seed of equal or greater benefit.”",
}

// AssistService fronts the injected text-inference handle.
type AssistService struct {
	assistant domain.Assistant
}

func NewAssistService(a domain.Assistant) *AssistService {
	return &AssistService{assistant: a}
}

func (s *AssistService) Reply(ctx context.Context, message string) (string, error) {
	out, err := s.assistant.GenerateReply(ctx, message)
	if err != nil {
		return "", &domain.UpstreamError{Stage: "chat", Err: err}
	}
	return out, nil
}

// Sentiment classifies text and decorates the result for display. Score is
// rounded to two decimals; anything not POSITIVE reads as NEGATIVE.
func (s *AssistService) Sentiment(ctx context.Context, text string) (domain.Sentiment, error) {
	label, score, err := s.assistant.ClassifySentiment(ctx, text)
	if err != nil {
		return domain.Sentiment{}, &domain.UpstreamError{Stage: "sentiment", Err: err}
	}
	out := domain.Sentiment{
		Label: label,
		Score: math.Round(score*100) / 100,
		Emoji: "😞",
		Quote: sentimentQuotes["NEGATIVE"],
	}
	if label == "POSITIVE" {
		out.Emoji = "😊"
		out.Quote = sentimentQuotes["POSITIVE"]
	}
	return out, nil
}
