// Package services holds the application services that sit between the
// HTTP handlers and external systems.
package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/uniscope/uniscope-api/model"
	"github.com/uniscope/uniscope-api/services/openai"
)

// MaxResponseTokens bounds the length of each advisor completion.
const MaxResponseTokens = 500

// Fallback is returned when the upstream completes successfully but
// yields no usable content.
const Fallback = "I apologize, but I couldn't generate a response. Please try again."

// advisorSystemPrompt frames every completion request. It is prepended
// server-side and never appears in the relayed history.
const advisorSystemPrompt = `You are an expert university advisor AI. You help students find the perfect university based on their needs and preferences.

You have access to information about 1000+ universities worldwide with details about:
- QS Rankings
- Tuition fees (in USD)
- Countries and cities
- Strong majors and programs
- Degree levels (Bachelor, Master, PhD)
- Admission requirements (GPA, test scores, English proficiency)
- Scholarship availability
- International student percentages

When answering questions:
- Be helpful, concise, and friendly
- Provide specific recommendations when asked
- Compare universities objectively using rankings, tuition, programs, and fit
- Suggest considerations like budget, location, program strength, and admission requirements
- If asked about specific universities, provide detailed comparisons
- Keep responses focused and actionable (2-4 paragraphs max)

Examples of what you can help with:
- "Which universities are best for Computer Science under $50k?"
- "Compare MIT and Stanford for engineering"
- "Show me affordable universities in Europe"
- "What are my chances at Harvard with a 3.8 GPA?"`

// ErrorKind classifies advisor failures so handlers can map them to
// status codes without matching on message text.
type ErrorKind string

const (
	// ErrNotConfigured means the service has no API credential.
	ErrNotConfigured ErrorKind = "not_configured"
	// ErrUpstream means the completion API rejected or failed the call.
	ErrUpstream ErrorKind = "upstream_error"
	// ErrTimeout means the call exceeded its deadline or was cancelled.
	ErrTimeout ErrorKind = "timeout"
)

// AdvisorError is the error type returned by GenerateResponse.
type AdvisorError struct {
	Kind    ErrorKind
	Message string
	Err     error
}

func (e *AdvisorError) Error() string {
	return e.Message
}

func (e *AdvisorError) Unwrap() error {
	return e.Err
}

// AdvisorService generates advisor replies through an OpenAI-compatible
// completion API. Requests are never retried; a failed completion is
// reported once and the client decides whether to resend.
type AdvisorService struct {
	client   *openai.Client
	enableAI bool
	timeout  time.Duration
}

// AdvisorConfig holds the advisor service configuration.
type AdvisorConfig struct {
	APIKey  string
	BaseURL string
	Model   string
	Timeout time.Duration
}

// NewAdvisorService creates the advisor service. A missing API key does
// not fail startup; the service comes up disabled and reports the
// missing credential on first use.
func NewAdvisorService(config AdvisorConfig) *AdvisorService {
	if config.Timeout == 0 {
		config.Timeout = openai.DefaultTimeout
	}

	enableAI := config.APIKey != ""
	if !enableAI {
		log.Println("Warning: OPENAI_API_KEY is not set. AI advisor features will be disabled.")
	}

	return &AdvisorService{
		client: openai.NewClient(openai.Config{
			APIKey:  config.APIKey,
			BaseURL: config.BaseURL,
			Model:   config.Model,
			Timeout: config.Timeout,
		}),
		enableAI: enableAI,
		timeout:  config.Timeout,
	}
}

// GenerateResponse relays the conversation to the completion API and
// returns the assistant reply. The history is forwarded verbatim after
// the system prompt, followed by the new user message.
func (s *AdvisorService) GenerateResponse(ctx context.Context, message string, history []model.ChatMessage) (string, error) {
	if !s.enableAI {
		return "", &AdvisorError{
			Kind:    ErrNotConfigured,
			Message: "OPENAI_API_KEY environment variable is not set. Please configure your API key to use the AI Advisor feature.",
		}
	}

	messages := make([]openai.Message, 0, len(history)+2)
	messages = append(messages, openai.Message{
		Role:    string(model.MessageRoleSystem),
		Content: advisorSystemPrompt,
	})
	for _, msg := range history {
		messages = append(messages, openai.Message{
			Role:    string(msg.Role),
			Content: msg.Content,
		})
	}
	messages = append(messages, openai.Message{
		Role:    string(model.MessageRoleUser),
		Content: message,
	})

	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	resp, err := s.client.ChatCompletion(ctx, messages,
		openai.WithMaxCompletionTokens(MaxResponseTokens),
	)
	if err != nil {
		log.Printf("OpenAI API error: %v", err)
		if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
			return "", &AdvisorError{
				Kind:    ErrTimeout,
				Message: "AI service error: request timed out",
				Err:     err,
			}
		}
		return "", &AdvisorError{
			Kind:    ErrUpstream,
			Message: fmt.Sprintf("AI service error: %s", err.Error()),
			Err:     err,
		}
	}

	content := resp.ExtractContent()
	if content == "" {
		return Fallback, nil
	}
	return content, nil
}

// Enabled reports whether the advisor has a credential configured.
func (s *AdvisorService) Enabled() bool {
	return s.enableAI
}
