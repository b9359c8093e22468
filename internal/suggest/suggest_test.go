package suggest

import (
	"context"
	"strings"
	"testing"
)

func TestMessage_FallbackWithoutKey(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", "")
	t.Setenv("GOOGLE_API_KEY", "")

	s := New()
	got := s.Message(context.Background(), "10.00", "Congregação Brás")
	if got != "Pagamento para Congregacao Bras" {
		t.Errorf("Message() = %q", got)
	}
}

func TestClean(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "quotes dropped", in: `"Obrigado pela contribuicao"`, want: "Obrigado pela contribuicao"},
		{name: "accents stripped", in: "Contribuição para a obra", want: "Contribuicao para a obra"},
		{name: "whitespace trimmed", in: "  mensagem \n", want: "mensagem"},
		{name: "empty", in: "", want: ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := clean(tt.in); got != tt.want {
				t.Errorf("clean(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestClean_Truncates(t *testing.T) {
	long := strings.Repeat("mensagem ", 10)
	got := clean(long)
	if len([]rune(got)) > maxMessageLen {
		t.Errorf("clean() returned %d runes, limit is %d", len([]rune(got)), maxMessageLen)
	}
}
