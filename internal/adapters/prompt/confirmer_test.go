package prompt

import (
	"context"
	"strings"
	"testing"
)

func TestConfirmer_Confirm(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    bool
		wantErr bool
	}{
		{
			name:  "exact token proceeds",
			input: "yes\n",
			want:  true,
		},
		{
			name:  "token with CRLF proceeds",
			input: "yes\r\n",
			want:  true,
		},
		{
			name:  "short answer declines",
			input: "y\n",
			want:  false,
		},
		{
			name:  "case matters",
			input: "Yes\n",
			want:  false,
		},
		{
			name:  "leading whitespace declines",
			input: " yes\n",
			want:  false,
		},
		{
			name:  "empty line declines",
			input: "\n",
			want:  false,
		},
		{
			name:  "token without trailing newline proceeds",
			input: "yes",
			want:  true,
		},
		{
			name:    "EOF before any input is an error",
			input:   "",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out strings.Builder
			c := NewConfirmer(strings.NewReader(tt.input), &out)

			got, err := c.Confirm(context.Background(), "20260824")
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error, got nil")
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("Confirm(%q) = %v, want %v", tt.input, got, tt.want)
			}

			// The version token is shown for awareness
			if !strings.Contains(out.String(), "20260824") {
				t.Errorf("prompt does not show the release token:\n%s", out.String())
			}
		})
	}
}

func TestConfirmer_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	c := NewConfirmer(strings.NewReader("yes\n"), &strings.Builder{})
	if _, err := c.Confirm(ctx, "20260824"); err == nil {
		t.Fatal("expected error for cancelled context")
	}
}

func TestStatic(t *testing.T) {
	ok, err := Static{Proceed: true}.Confirm(context.Background(), "v1")
	if err != nil || !ok {
		t.Errorf("Static{true} = (%v, %v), want (true, nil)", ok, err)
	}

	ok, err = Static{}.Confirm(context.Background(), "v1")
	if err != nil || ok {
		t.Errorf("Static{} = (%v, %v), want (false, nil)", ok, err)
	}
}
