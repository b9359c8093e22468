// Package suggest proposes short PIX payment messages with Gemini. It is an
// optional convenience: without an API key it degrades to a deterministic
// local fallback and never blocks card generation.
package suggest

import (
	"context"
	"fmt"
	"os"
	"strings"

	"google.golang.org/genai"

	"github.com/gmfurtado/pixcards/internal/pix"
)

// DefaultModelName is the Gemini model used for message suggestions.
const DefaultModelName = "gemini-2.5-flash"

// maxMessageLen keeps suggestions well inside the payload's 72-char
// message limit.
const maxMessageLen = 60

// Suggester generates payment message suggestions.
type Suggester struct {
	disabled bool
}

// New creates a Suggester. Without GEMINI_API_KEY or GOOGLE_API_KEY in the
// environment the suggester runs in fallback-only mode.
func New() *Suggester {
	return &Suggester{
		disabled: os.Getenv("GEMINI_API_KEY") == "" && os.Getenv("GOOGLE_API_KEY") == "",
	}
}

// Message suggests a short, accent-free payment message for the given
// recipient and optional amount. Model errors fall back to the local
// default; this function never fails.
func (s *Suggester) Message(ctx context.Context, amount, recipient string) string {
	if s.disabled {
		return fallback(recipient)
	}

	text, err := s.generate(ctx, amount, recipient)
	if err != nil || text == "" {
		return fallback(recipient)
	}
	return text
}

func (s *Suggester) generate(ctx context.Context, amount, recipient string) (string, error) {
	valuePart := "a ser definido"
	if amount != "" {
		valuePart = "de R$" + amount
	}
	prompt := fmt.Sprintf(
		"Crie uma mensagem curta e amigável para um pagamento PIX. "+
			"O valor é %s e o recebedor é %q. "+
			"A mensagem deve ser informal, ter no máximo %d caracteres e não usar acentos. "+
			"Responda apenas com a mensagem, sem aspas.",
		valuePart, recipient, maxMessageLen,
	)

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		HTTPOptions: genai.HTTPOptions{APIVersion: "v1"},
	})
	if err != nil {
		return "", fmt.Errorf("generate: create genai client: %w", err)
	}

	contents := []*genai.Content{
		{
			Role:  "user",
			Parts: []*genai.Part{{Text: prompt}},
		},
	}

	resp, err := client.Models.GenerateContent(ctx, DefaultModelName, contents, nil)
	if err != nil {
		return "", fmt.Errorf("generate: generate content: %w", err)
	}

	return clean(resp.Text()), nil
}

// clean normalizes a model response into a payload-safe message: quotes
// dropped, accents stripped, truncated to the suggestion limit.
func clean(raw string) string {
	text := strings.TrimSpace(strings.ReplaceAll(raw, `"`, ""))
	text = pix.StripAccents(text)
	if runes := []rune(text); len(runes) > maxMessageLen {
		text = string(runes[:maxMessageLen])
	}
	return text
}

func fallback(recipient string) string {
	return clean("Pagamento para " + recipient)
}
