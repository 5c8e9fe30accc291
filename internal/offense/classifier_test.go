package offense

import (
	"bytes"
	"log"
	"testing"
)

func TestParseCitation(t *testing.T) {
	tests := []struct {
		name     string
		citation string
		want     Key
		wantErr  bool
	}{
		{
			name:     "title 18 four-digit section",
			citation: "18 § 2702",
			want:     Key{Title: 18, Chapter: 27},
		},
		{
			name:     "title 18 short section",
			citation: "18 § 901",
			want:     Key{Title: 18, Chapter: 9},
		},
		{
			name:     "title 35 whole section",
			citation: "35 § 780-113",
			want:     Key{Title: 35, Chapter: 780},
		},
		{
			name:     "title 75 dui boundary",
			citation: "75 § 3731",
			want:     Key{Title: 75, Chapter: 1},
		},
		{
			name:     "title 75 serious traffic",
			citation: "75 § 3735",
			want:     Key{Title: 75, Chapter: 2},
		},
		{
			name:     "title 75 accident report",
			citation: "75 § 3742",
			want:     Key{Title: 75, Chapter: 3},
		},
		{
			name:     "title 75 post-renumbering dui",
			citation: "75 § 3802",
			want:     Key{Title: 75, Chapter: 38},
		},
		{
			name:     "unknown statute sentinel",
			citation: "0 § 0",
			want:     Key{Title: 0, Chapter: 0},
		},
		{
			name:     "section with subsection suffix",
			citation: "18 § 2701(a)",
			want:     Key{Title: 18, Chapter: 27},
		},
		{
			name:     "default title takes first two digits",
			citation: "23 § 6114",
			want:     Key{Title: 23, Chapter: 61},
		},
		{
			name:     "missing section",
			citation: "18",
			wantErr:  true,
		},
		{
			name:     "non-numeric title",
			citation: "XVIII § 2702",
			wantErr:  true,
		},
		{
			name:     "empty citation",
			citation: "",
			wantErr:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseCitation(tt.citation)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("Expected error for %q, got key %+v", tt.citation, got)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseCitation(%q) failed: %v", tt.citation, err)
			}
			if got != tt.want {
				t.Errorf("ParseCitation(%q) = %+v, want %+v", tt.citation, got, tt.want)
			}
		})
	}
}

func TestClassify(t *testing.T) {
	c := NewClassifier(nil, nil)

	tests := []struct {
		citation string
		want     string
	}{
		{"18 § 2702", "assault"},
		{"75 § 3731", "general traffic offense"},
		{"75 § 3802", "driving after imbibing alcohol or utilizing drugs"},
		{"35 § 780-113", "drug and substance"},
		{"0 § 0", "unknown statute"},
		{"garbage", ""},
	}
	for _, tt := range tests {
		if got := c.Classify(tt.citation); got != tt.want {
			t.Errorf("Classify(%q) = %q, want %q", tt.citation, got, tt.want)
		}
	}
}

func TestClassifyUnknownKeyWarnsAndReturnsNA(t *testing.T) {
	var buf bytes.Buffer
	c := NewClassifier(nil, log.New(&buf, "", 0))

	if got := c.Classify("99 § 1234"); got != CategoryNA {
		t.Errorf("Expected %q for a key missing from the table, got %q", CategoryNA, got)
	}
	if buf.Len() == 0 {
		t.Error("Expected a logged warning for the missing key")
	}
}
