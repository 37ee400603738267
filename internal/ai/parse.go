package ai

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"project-hub/internal/analysis"
	"project-hub/internal/model"
)

// stripFences 移除模型常加上的 ```json 區塊標記
func stripFences(text string) string {
	s := strings.TrimSpace(text)
	if strings.HasPrefix(s, "```") {
		s = strings.TrimPrefix(s, "```json")
		s = strings.TrimPrefix(s, "```")
		s = strings.TrimSuffix(strings.TrimSpace(s), "```")
	}
	return strings.TrimSpace(s)
}

func parseSuggestions(text string) ([]Suggestion, error) {
	var out []Suggestion
	if err := json.Unmarshal([]byte(stripFences(text)), &out); err != nil {
		return nil, &ParseError{Raw: text, Err: err}
	}
	if len(out) == 0 {
		return nil, &ParseError{Raw: text, Err: errors.New("no suggestions")}
	}
	for i := range out {
		if strings.TrimSpace(out[i].Title) == "" {
			return nil, &ParseError{Raw: text, Err: fmt.Errorf("suggestion %d has no title", i)}
		}
		switch out[i].Priority {
		case model.PriorityLow, model.PriorityMedium, model.PriorityHigh:
		default:
			out[i].Priority = model.PriorityMedium
		}
		if out[i].EstimatedHours < 0 {
			out[i].EstimatedHours = 0
		}
	}
	return out, nil
}

func parseAnalysis(text string) (analysis.Analysis, error) {
	var raw struct {
		Progress        *float64 `json:"progress"`
		Insights        []string `json:"insights"`
		Recommendations []string `json:"recommendations"`
	}
	if err := json.Unmarshal([]byte(stripFences(text)), &raw); err != nil {
		return analysis.Analysis{}, &ParseError{Raw: text, Err: err}
	}
	if raw.Progress == nil {
		return analysis.Analysis{}, &ParseError{Raw: text, Err: errors.New("missing progress")}
	}
	if *raw.Progress < 0 || *raw.Progress > 100 {
		return analysis.Analysis{}, &ParseError{Raw: text, Err: fmt.Errorf("progress %v out of range", *raw.Progress)}
	}

	a := analysis.Analysis{
		Progress:        int(*raw.Progress + 0.5),
		Insights:        raw.Insights,
		Recommendations: raw.Recommendations,
	}
	if a.Insights == nil {
		a.Insights = []string{}
	}
	if a.Recommendations == nil {
		a.Recommendations = []string{}
	}
	return a, nil
}
