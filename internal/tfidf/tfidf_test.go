package tfidf

import (
	"math"
	"reflect"
	"testing"
)

func TestNewCorpus(t *testing.T) {
	tests := []struct {
		name      string
		documents []string
		wantDocs  int
		wantTerms int
	}{
		{
			name:      "empty corpus",
			documents: []string{},
			wantDocs:  0,
			wantTerms: 0,
		},
		{
			name:      "single document",
			documents: []string{"hello world"},
			wantDocs:  1,
			wantTerms: 2,
		},
		{
			name:      "multiple documents",
			documents: []string{"hello world", "goodbye world", "hello goodbye"},
			wantDocs:  3,
			wantTerms: 3,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			corpus := NewCorpus(tt.documents)
			if corpus.TotalDocuments != tt.wantDocs {
				t.Errorf("NewCorpus() total documents = %d, want %d", corpus.TotalDocuments, tt.wantDocs)
			}
			if len(corpus.DocFrequencies) != tt.wantTerms {
				t.Errorf("NewCorpus() distinct terms = %d, want %d", len(corpus.DocFrequencies), tt.wantTerms)
			}
		})
	}
}

func TestIDF(t *testing.T) {
	corpus := NewCorpus([]string{"apple banana", "banana cherry"})

	tests := []struct {
		term string
		want float64
	}{
		{"apple", math.Log(3)},
		{"banana", math.Log(2)},
		{"missing", 0},
	}

	for _, tt := range tests {
		t.Run(tt.term, func(t *testing.T) {
			got := corpus.IDF(tt.term)
			if math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("IDF(%q) = %f, want %f", tt.term, got, tt.want)
			}
		})
	}
}

func TestTopTerms(t *testing.T) {
	corpus := NewCorpus([]string{"apple banana apple", "banana cherry"})

	top := corpus.TopTerms(0)
	var terms []string
	for _, ts := range top {
		terms = append(terms, ts.Term)
	}

	want := []string{"apple", "banana", "cherry"}
	if !reflect.DeepEqual(terms, want) {
		t.Errorf("TopTerms(0) terms = %v, want %v", terms, want)
	}

	wantApple := 2.0 / 3.0 * math.Log(3)
	if math.Abs(top[0].Score-wantApple) > 1e-9 {
		t.Errorf("TopTerms(0)[0].Score = %f, want %f", top[0].Score, wantApple)
	}

	if got := corpus.TopTerms(2); len(got) != 2 {
		t.Errorf("TopTerms(2) returned %d terms, want 2", len(got))
	}

	if got := NewCorpus(nil).TopTerms(5); len(got) != 0 {
		t.Errorf("TopTerms on empty corpus returned %d terms, want 0", len(got))
	}
}

func TestTopTermsTieBreak(t *testing.T) {
	corpus := NewCorpus([]string{"zebra yak xenon"})

	top := corpus.TopTerms(0)
	want := []string{"xenon", "yak", "zebra"}
	for i, ts := range top {
		if ts.Term != want[i] {
			t.Errorf("TopTerms(0)[%d] = %q, want %q", i, ts.Term, want[i])
		}
	}
}

func TestTokenize(t *testing.T) {
	tests := []struct {
		name string
		text string
		want []string
	}{
		{"empty", "", []string{}},
		{"short words dropped", "a an the cat", []string{"the", "cat"}},
		{"case folded", "Hello WORLD", []string{"hello", "world"}},
		{"joiners kept inside tokens", "Hi, a world-class_test! x-", []string{"world-class_test"}},
		{"unicode words", "Café café naïve ü 東京都", []string{"café", "café", "naïve", "東京都"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tokenize(tt.text)
			if len(got) == 0 && len(tt.want) == 0 {
				return
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("tokenize(%q) = %v, want %v", tt.text, got, tt.want)
			}
		})
	}
}

func TestCalculateTermFrequency(t *testing.T) {
	tf := calculateTermFrequency([]string{"go", "go", "rust", "zig"})

	if tf["go"] != 0.5 {
		t.Errorf("tf[go] = %f, want 0.5", tf["go"])
	}
	if tf["rust"] != 0.25 {
		t.Errorf("tf[rust] = %f, want 0.25", tf["rust"])
	}
	if len(calculateTermFrequency(nil)) != 0 {
		t.Error("calculateTermFrequency(nil) should be empty")
	}
}
