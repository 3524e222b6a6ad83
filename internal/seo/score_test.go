package seo

import (
	"strings"
	"testing"
)

// fixedScorer returns a Scorer whose reading-ease function always reports
// the given value, so factor math can be tested in isolation.
func fixedScorer(ease float64) *Scorer {
	return &Scorer{ReadingEase: func(string) float64 { return ease }}
}

// longBody returns a body comfortably over the analysis threshold that
// contains the word "keyword" once.
func longBody() string {
	return strings.Repeat("word ", 60) + "keyword"
}

// TestAnalyze_EmptyBody verifies that scoring is skipped entirely when no
// body text is present; both scores stay unset.
func TestAnalyze_EmptyBody(t *testing.T) {
	got := fixedScorer(75).Analyze(Input{
		Title: "AI",
		Body:  "",
	})

	if got.Readability != nil {
		t.Errorf("Readability = %v, want nil for empty body", *got.Readability)
	}
	if got.SEOScore != nil {
		t.Errorf("SEOScore = %v, want nil for empty body", *got.SEOScore)
	}
}

// TestAnalyze_ShortBody verifies that readability requires more than 50
// characters while the SEO score is still computed.
func TestAnalyze_ShortBody(t *testing.T) {
	tests := []struct {
		name            string
		bodyLen         int
		wantReadability bool
	}{
		{name: "exactly 50 runes", bodyLen: 50, wantReadability: false},
		{name: "51 runes", bodyLen: 51, wantReadability: true},
		{name: "well under threshold", bodyLen: 10, wantReadability: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := fixedScorer(75).Analyze(Input{
				Title: "Some title",
				Body:  strings.Repeat("a", tt.bodyLen),
			})

			if (got.Readability != nil) != tt.wantReadability {
				t.Errorf("Readability set = %v, want %v", got.Readability != nil, tt.wantReadability)
			}
			if got.SEOScore == nil {
				t.Fatal("SEOScore = nil, want computed for non-empty body")
			}
		})
	}
}

// TestAnalyze_PerfectScore builds an input that earns every factor's
// maximum: 50 of 50 points normalizes to 100.
func TestAnalyze_PerfectScore(t *testing.T) {
	title := "keyword " + strings.Repeat("x", 47) // 55 chars, ideal window
	if len(title) != 55 {
		t.Fatalf("test title length = %d, want 55", len(title))
	}

	got := fixedScorer(75).Analyze(Input{
		Title:             title,
		MetaDescription:   strings.Repeat("d", 150),
		FocusKeyword:      "keyword",
		SecondaryKeywords: "go, web, backend",
		Body:              longBody(),
		HasImage:          true,
	})

	if got.SEOScore == nil {
		t.Fatal("SEOScore = nil")
	}
	if *got.SEOScore != 100 {
		t.Errorf("SEOScore = %d, want 100", *got.SEOScore)
	}
	if got.Readability == nil || *got.Readability != 75 {
		t.Errorf("Readability = %v, want 75", got.Readability)
	}
}

// TestAnalyze_FactorTable walks the factor table one knob at a time,
// starting from the perfect input and weakening a single factor.
func TestAnalyze_FactorTable(t *testing.T) {
	perfect := func() Input {
		return Input{
			Title:             "keyword " + strings.Repeat("x", 47),
			MetaDescription:   strings.Repeat("d", 150),
			FocusKeyword:      "keyword",
			SecondaryKeywords: "go, web",
			Body:              longBody(),
			HasImage:          true,
		}
	}

	tests := []struct {
		name   string
		mutate func(*Input)
		ease   float64
		want   int
	}{
		{
			name:   "baseline perfect",
			mutate: func(in *Input) {},
			ease:   75,
			want:   100,
		},
		{
			name:   "no focus keyword",
			mutate: func(in *Input) { in.FocusKeyword = "" },
			ease:   75,
			want:   80, // loses all 10 keyword points
		},
		{
			name:   "keyword in body only",
			mutate: func(in *Input) { in.Title = strings.Repeat("x", 55) },
			ease:   75,
			want:   90, // loses the 5 title-presence points
		},
		{
			name:   "no og image",
			mutate: func(in *Input) { in.HasImage = false },
			ease:   75,
			want:   90,
		},
		{
			name:   "no secondary keywords",
			mutate: func(in *Input) { in.SecondaryKeywords = "" },
			ease:   75,
			want:   90,
		},
		{
			name:   "readability 65 scores 8",
			mutate: func(in *Input) {},
			ease:   65,
			want:   96,
		},
		{
			name:   "readability 55 scores 6",
			mutate: func(in *Input) {},
			ease:   55,
			want:   92,
		},
		{
			name:   "readability 45 scores 4",
			mutate: func(in *Input) {},
			ease:   45,
			want:   88,
		},
		{
			name:   "readability 30 scores 2",
			mutate: func(in *Input) {},
			ease:   30,
			want:   84,
		},
		{
			name:   "title 45 chars scores 7",
			mutate: func(in *Input) { in.Title = "keyword " + strings.Repeat("x", 37) },
			ease:   75,
			want:   94,
		},
		{
			name:   "title 75 chars scores 5",
			mutate: func(in *Input) { in.Title = "keyword " + strings.Repeat("x", 67) },
			ease:   75,
			want:   90,
		},
		{
			name:   "title 10 chars scores 2",
			mutate: func(in *Input) { in.Title = "keyword xx" },
			ease:   75,
			want:   84,
		},
		{
			name:   "meta description 130 chars scores 7",
			mutate: func(in *Input) { in.MetaDescription = strings.Repeat("d", 130) },
			ease:   75,
			want:   94,
		},
		{
			name:   "meta description 190 chars scores 5",
			mutate: func(in *Input) { in.MetaDescription = strings.Repeat("d", 190) },
			ease:   75,
			want:   90,
		},
		{
			name:   "meta description 30 chars scores 2",
			mutate: func(in *Input) { in.MetaDescription = strings.Repeat("d", 30) },
			ease:   75,
			want:   84,
		},
		{
			name:   "empty meta description scores 0",
			mutate: func(in *Input) { in.MetaDescription = "" },
			ease:   75,
			want:   80,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := perfect()
			tt.mutate(&in)

			got := fixedScorer(tt.ease).Analyze(in)
			if got.SEOScore == nil {
				t.Fatal("SEOScore = nil")
			}
			if *got.SEOScore != tt.want {
				t.Errorf("SEOScore = %d, want %d", *got.SEOScore, tt.want)
			}
		})
	}
}

// TestAnalyze_KeywordCaseInsensitive verifies case-insensitive keyword
// matching in both title and body.
func TestAnalyze_KeywordCaseInsensitive(t *testing.T) {
	got := fixedScorer(75).Analyze(Input{
		Title:        "Learning KEYWORD Basics",
		FocusKeyword: "Keyword",
		Body:         strings.Repeat("pad ", 20) + "the kEyWoRd appears here",
	})

	if got.SEOScore == nil {
		t.Fatal("SEOScore = nil")
	}
	// title 23 chars (2) + no meta (0) + keyword both places (10) +
	// readability 75 (10) = 22 of 50 -> 44.
	if *got.SEOScore != 44 {
		t.Errorf("SEOScore = %d, want 44", *got.SEOScore)
	}
}

// TestAnalyze_ScoreBounds verifies computed scores always land in [0, 100].
func TestAnalyze_ScoreBounds(t *testing.T) {
	inputs := []Input{
		{Title: "", Body: "x"},
		{Title: "a", Body: strings.Repeat("z", 500)},
		{Title: strings.Repeat("t", 200), MetaDescription: strings.Repeat("d", 160), Body: longBody(), HasImage: true, SecondaryKeywords: "a", FocusKeyword: "word"},
	}

	for i, in := range inputs {
		got := NewScorer().Analyze(in)
		if got.SEOScore == nil {
			t.Fatalf("case %d: SEOScore = nil", i)
		}
		if *got.SEOScore < 0 || *got.SEOScore > 100 {
			t.Errorf("case %d: SEOScore = %d, out of [0, 100]", i, *got.SEOScore)
		}
	}
}

// TestAnalyze_Deterministic verifies that repeated analysis of the same
// input yields identical results.
func TestAnalyze_Deterministic(t *testing.T) {
	in := Input{
		Title:           "A Practical Guide to Content Scoring",
		MetaDescription: strings.Repeat("d", 150),
		FocusKeyword:    "content",
		Body:            longBody() + " content",
		HasImage:        true,
	}

	s := NewScorer()
	first := s.Analyze(in)
	second := s.Analyze(in)

	if *first.SEOScore != *second.SEOScore {
		t.Errorf("SEOScore changed between runs: %d then %d", *first.SEOScore, *second.SEOScore)
	}
	if (first.Readability == nil) != (second.Readability == nil) {
		t.Fatal("Readability presence changed between runs")
	}
	if first.Readability != nil && *first.Readability != *second.Readability {
		t.Errorf("Readability changed between runs: %v then %v", *first.Readability, *second.Readability)
	}
}
