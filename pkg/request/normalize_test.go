package request

import "testing"

func TestNormalizeProvider(t *testing.T) {
	tests := []struct {
		host string
		want string
	}{
		{"generativelanguage.googleapis.com", "gemini"},
		{"aiplatform.googleapis.com", "gemini"},
		{"westeurope.tts.speech.microsoft.com", "azure-speech"},
		{"speech.microsoft.com", "azure-speech"},
		{"example.com", "example.com"},
		{"127.0.0.1:8080", "127.0.0.1:8080"},
	}

	for _, tt := range tests {
		if got := normalizeProvider(tt.host); got != tt.want {
			t.Errorf("normalizeProvider(%q) = %q, want %q", tt.host, got, tt.want)
		}
	}
}
