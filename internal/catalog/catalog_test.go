package catalog

import (
	"strings"
	"testing"
)

func TestLoadEmbedded(t *testing.T) {
	c, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if c.StageCount() != 10 {
		t.Errorf("StageCount = %d, want 10", c.StageCount())
	}
	if c.Len() != 100 {
		t.Errorf("Len = %d, want 100", c.Len())
	}
}

func TestEmbeddedEntriesWellFormed(t *testing.T) {
	c, err := Load()
	if err != nil {
		t.Fatal(err)
	}
	for stage := 0; stage < c.StageCount(); stage++ {
		for _, e := range c.StageWords(stage) {
			if e.Word == "" {
				t.Fatalf("stage %d has an empty word", stage)
			}
			if e.Word != strings.ToUpper(e.Word) {
				t.Errorf("word %q not uppercased", e.Word)
			}
			if !strings.HasSuffix(e.Clip, ".mp3") {
				t.Errorf("clip %q missing .mp3 suffix", e.Clip)
			}
		}
	}
}

func TestWordIndexing(t *testing.T) {
	c, err := Load()
	if err != nil {
		t.Fatal(err)
	}

	first, ok := c.Word(0, 0)
	if !ok {
		t.Fatal("Word(0,0) not found")
	}
	if first.Word == "" {
		t.Error("first word empty")
	}

	if _, ok := c.Word(0, WordsPerStage); ok {
		t.Error("index past the stage window should report not found")
	}
	if _, ok := c.Word(c.StageCount(), 0); ok {
		t.Error("stage past the end should report not found")
	}
	if _, ok := c.Word(-1, 0); ok {
		t.Error("negative stage should report not found")
	}
}

func TestStageWordsOutOfRange(t *testing.T) {
	c, err := Load()
	if err != nil {
		t.Fatal(err)
	}
	if got := c.StageWords(-1); got != nil {
		t.Error("StageWords(-1) should be nil")
	}
	if got := c.StageWords(c.StageCount()); got != nil {
		t.Error("StageWords past the end should be nil")
	}
}

func TestParseRejectsBadData(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"not json", `{{`},
		{"missing words", `{}`},
		{"empty list", `{"words": []}`},
		{"missing clip", `{"words": [{"word": "CAT"}]}`},
		{"empty word", `{"words": [{"word": "", "clip": "x.mp3"}]}`},
		{"unknown field", `{"words": [{"word": "CAT", "clip": "cat.mp3", "hint": "meows"}]}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Parse([]byte(tt.data)); err == nil {
				t.Error("expected an error")
			}
		})
	}
}

func TestParseRejectsPartialStage(t *testing.T) {
	data := `{"words": [{"word": "CAT", "clip": "cat.mp3"}]}`
	if _, err := Parse([]byte(data)); err == nil {
		t.Error("a catalog that does not fill whole stages should be rejected")
	}
}

func TestParseNormalizesWords(t *testing.T) {
	var sb strings.Builder
	sb.WriteString(`{"words": [`)
	for i := 0; i < WordsPerStage; i++ {
		if i > 0 {
			sb.WriteString(",")
		}
		sb.WriteString(`{"word": "ice cream", "clip": "icecream.mp3"}`)
	}
	sb.WriteString(`]}`)

	c, err := Parse([]byte(sb.String()))
	if err != nil {
		t.Fatal(err)
	}
	e, ok := c.Word(0, 0)
	if !ok {
		t.Fatal("Word(0,0) not found")
	}
	if e.Word != "ICECREAM" {
		t.Errorf("Word = %q, want ICECREAM", e.Word)
	}
}
