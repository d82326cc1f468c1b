package domain

import "testing"

func TestParseVersionToken(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want string
	}{
		{
			name: "long marker is truncated to eight characters",
			raw:  "20260824.post1\n",
			want: "20260824",
		},
		{
			name: "surrounding whitespace is trimmed first",
			raw:  "  v1.42.0-dev  \n",
			want: "v1.42.0-",
		},
		{
			name: "short marker kept as-is",
			raw:  "v1.2\n",
			want: "v1.2",
		},
		{
			name: "empty marker",
			raw:  "\n",
			want: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ParseVersionToken(tt.raw); got != tt.want {
				t.Errorf("ParseVersionToken(%q) = %q, want %q", tt.raw, got, tt.want)
			}
		})
	}
}
