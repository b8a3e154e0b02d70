package pipeline

import (
	"encoding/json"
	"math"
	"testing"
)

func TestValidateFormat(t *testing.T) {
	tests := []struct {
		format  string
		wantErr bool
	}{
		{"dot", false},
		{"svg", false},
		{"png", false},
		{"pdf", false},
		{"json", false},
		{"invalid", true},
		{"SVG", true}, // case-sensitive
		{"", true},
	}

	for _, tt := range tests {
		err := ValidateFormat(tt.format)
		if (err != nil) != tt.wantErr {
			t.Errorf("ValidateFormat(%q) error = %v, wantErr %v", tt.format, err, tt.wantErr)
		}
	}
}

func TestValidateFormats(t *testing.T) {
	if err := ValidateFormats([]string{"svg", "dot"}); err != nil {
		t.Errorf("Valid formats should pass: %v", err)
	}

	if err := ValidateFormats([]string{"svg", "invalid"}); err == nil {
		t.Error("Invalid format should fail")
	}

	// Empty slice is valid
	if err := ValidateFormats(nil); err != nil {
		t.Errorf("Empty formats should pass: %v", err)
	}
}

func TestValidateLayout(t *testing.T) {
	tests := []struct {
		layout  string
		wantErr bool
	}{
		{"neato", false},
		{"fdp", false},
		{"sfdp", false},
		{"circo", false},
		{"dot", false},
		{"twopi", true},
		{"", true},
	}

	for _, tt := range tests {
		err := ValidateLayout(tt.layout)
		if (err != nil) != tt.wantErr {
			t.Errorf("ValidateLayout(%q) error = %v, wantErr %v", tt.layout, err, tt.wantErr)
		}
	}
}

func TestValidateScorer(t *testing.T) {
	tests := []struct {
		name    string
		cutoff  float64
		wantErr bool
	}{
		{"mean", 0, false},
		{"nearest", 3, false},
		{"MEAN", 0, false},
		{"", 0, false},
		{"median", 0, true},
		{"mean", -1, true},
	}

	for _, tt := range tests {
		err := ValidateScorer(tt.name, tt.cutoff)
		if (err != nil) != tt.wantErr {
			t.Errorf("ValidateScorer(%q, %v) error = %v, wantErr %v", tt.name, tt.cutoff, err, tt.wantErr)
		}
	}
}

func TestOptionsDefaults(t *testing.T) {
	var o Options
	if err := o.ValidateForAnalysis(); err != nil {
		t.Fatalf("ValidateForAnalysis: %v", err)
	}
	if o.MaxPaths != DefaultMaxPaths || o.Scorer != DefaultScorer || o.Logger == nil {
		t.Errorf("analysis defaults not applied: %+v", o)
	}

	if err := o.ValidateForRender(); err != nil {
		t.Fatalf("ValidateForRender: %v", err)
	}
	if len(o.Formats) != 1 || o.Formats[0] != FormatSVG || o.Layout != "neato" {
		t.Errorf("render defaults not applied: formats=%v layout=%q", o.Formats, o.Layout)
	}

	// Explicit values survive
	o2 := Options{MaxPaths: -1, Scorer: "nearest"}
	o2.SetAnalysisDefaults()
	if o2.MaxPaths != -1 || o2.Scorer != "nearest" {
		t.Errorf("explicit values overwritten: %+v", o2)
	}
}

func TestAnalysisKeyOpts(t *testing.T) {
	o := Options{All: true, MaxPaths: 5, Scorer: "Nearest", Cutoff: 2}

	args := make([]string, 2, 4)
	args[0], args[1] = "a", "b"
	k := o.AnalysisKeyOpts(OpPath, args...)
	if k.MaxPaths != 5 || len(k.Args) != 3 || k.Args[2] != "all" {
		t.Errorf("path key = %+v", k)
	}
	if k.Scorer != "" {
		t.Error("path key should not depend on the scorer")
	}
	if args[:4][2] == "all" {
		t.Error("AnalysisKeyOpts should not write into the caller's slice")
	}

	k = o.AnalysisKeyOpts(OpColor)
	if k.Scorer != "nearest" || k.Cutoff != 2 || k.MaxPaths != 0 {
		t.Errorf("color key = %+v", k)
	}
}

func TestDistanceJSON(t *testing.T) {
	in := map[string]Distance{"a": 0, "b": 2.5, "c": Unreachable}
	data, err := json.Marshal(in)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	if string(data) != `{"a":0,"b":2.5,"c":null}` {
		t.Errorf("Marshal = %s", data)
	}

	var out map[string]Distance
	if err := json.Unmarshal(data, &out); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if out["b"] != 2.5 || !math.IsInf(float64(out["c"]), 1) || out["c"].Reachable() {
		t.Errorf("Unmarshal = %v", out)
	}
	if !out["a"].Reachable() {
		t.Error("zero distance should be reachable")
	}
}
