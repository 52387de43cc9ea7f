package frontmatter

import (
	"testing"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		wantBody string
		wantKey  string
		wantVal  string
		wantErr  bool
	}{
		{
			name: "Basic Frontmatter",
			input: `---
title: Hello World
---
# Content Here`,
			wantBody: "# Content Here",
			wantKey:  "title",
			wantVal:  "Hello World",
		},
		{
			name:     "No Frontmatter",
			input:    `# Just Markdown`,
			wantBody: "# Just Markdown",
		},
		{
			name:     "Empty Content",
			input:    ``,
			wantBody: "",
		},
		{
			name: "Invalid YAML",
			input: `---
key: : value
---
Content`,
			wantErr: true,
		},
		{
			name: "Unclosed Frontmatter",
			input: `---
title: Unclosed
Content`,
			wantErr: true,
		},
		{
			name: "Multiline Body",
			input: `---
tag: test
---
Line 1
Line 2`,
			wantBody: "Line 1\nLine 2",
			wantKey:  "tag",
			wantVal:  "test",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			meta, body, err := Parse(tt.input)
			if tt.wantErr {
				if err == nil {
					t.Fatal("Expected error, got none")
				}
				return
			}
			if err != nil {
				t.Fatalf("Parse failed: %v", err)
			}
			if body != tt.wantBody {
				t.Errorf("Body = %q, want %q", body, tt.wantBody)
			}
			if tt.wantKey != "" {
				if got, ok := meta[tt.wantKey].(string); !ok || got != tt.wantVal {
					t.Errorf("meta[%q] = %v, want %q", tt.wantKey, meta[tt.wantKey], tt.wantVal)
				}
			}
		})
	}
}

func TestScalars(t *testing.T) {
	t.Run("Flattens Scalar Fields", func(t *testing.T) {
		got := Scalars(Metadata{
			"title":  "Hello",
			"draft":  true,
			"weight": 3,
			"score":  1.5,
		})

		want := map[string]string{
			"title":  "Hello",
			"draft":  "true",
			"weight": "3",
			"score":  "1.5",
		}
		for k, v := range want {
			if got[k] != v {
				t.Errorf("Scalars[%q] = %q, want %q", k, got[k], v)
			}
		}
	})

	t.Run("Skips Nested Values", func(t *testing.T) {
		got := Scalars(Metadata{
			"tags":   []interface{}{"a", "b"},
			"nested": map[string]interface{}{"k": "v"},
		})
		if got != nil {
			t.Errorf("Expected nil for non-scalar-only metadata, got %+v", got)
		}
	})

	t.Run("Empty Metadata", func(t *testing.T) {
		if got := Scalars(nil); got != nil {
			t.Errorf("Expected nil, got %+v", got)
		}
	})
}
