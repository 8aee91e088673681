package llm

import (
	"errors"
	"testing"
)

func TestExtractArray(t *testing.T) {
	tests := []struct {
		name    string
		text    string
		want    string
		wantErr bool
	}{
		{
			name: "bare array",
			text: `[1, 2, 3]`,
			want: `[1, 2, 3]`,
		},
		{
			name: "prose wrapped",
			text: "Here are your questions:\n```json\n[{\"a\": 1}]\n```\nLet me know!",
			want: `[{"a": 1}]`,
		},
		{
			name: "nested arrays",
			text: `The result is [[1, 2], [3, 4]] as requested.`,
			want: `[[1, 2], [3, 4]]`,
		},
		{
			name: "brackets inside strings",
			text: `[{"text": "pick [one] option"}]`,
			want: `[{"text": "pick [one] option"}]`,
		},
		{
			name: "escaped quote inside string",
			text: `[{"text": "she said \"hi [there]\""}]`,
			want: `[{"text": "she said \"hi [there]\""}]`,
		},
		{
			name:    "no array",
			text:    `sorry, I cannot help with that`,
			wantErr: true,
		},
		{
			name:    "unbalanced",
			text:    `[1, 2, {"a": 3}`,
			wantErr: true,
		},
		{
			name:    "balanced but invalid json",
			text:    `[1, 2, three]`,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ExtractArray(tt.text)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("ExtractArray(%q) = %s, want error", tt.text, got)
				}
				var invalid *ErrInvalidResponse
				if !errors.As(err, &invalid) {
					t.Errorf("error = %v, want ErrInvalidResponse", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("ExtractArray(%q) error: %v", tt.text, err)
			}
			if string(got) != tt.want {
				t.Errorf("ExtractArray(%q) = %s, want %s", tt.text, got, tt.want)
			}
		})
	}
}

func TestExtractObject(t *testing.T) {
	text := `Sure! Here is the object: {"title": "Dev", "score": {"value": 9}} — anything else?`
	got, err := ExtractObject(text)
	if err != nil {
		t.Fatalf("ExtractObject error: %v", err)
	}
	want := `{"title": "Dev", "score": {"value": 9}}`
	if string(got) != want {
		t.Errorf("ExtractObject = %s, want %s", got, want)
	}
}

func TestExtractObjectMissing(t *testing.T) {
	if _, err := ExtractObject("no braces here"); err == nil {
		t.Fatal("expected error for text without an object")
	}
}
