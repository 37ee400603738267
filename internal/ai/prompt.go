package ai

import (
	"encoding/json"
	"fmt"

	"project-hub/internal/model"
)

const suggestPrompt = `You are a project management expert. Given a project titled %q with description: %q,
generate 5-7 relevant tasks that would help complete this project successfully.

For each task, provide:
- title: A clear, actionable task title (concise, under 100 characters)
- description: A detailed description explaining what needs to be done, why it's important, and any relevant details (2-3 sentences)
- priority: high, medium, or low
- estimatedHours: Estimated hours to complete (as a number)

Return ONLY a valid JSON array with no markdown formatting or additional text. Example format:
[
  {"title": "Task name", "description": "Detailed description of what needs to be done and why", "priority": "high", "estimatedHours": 8},
  {"title": "Another task", "description": "Another detailed description with context", "priority": "medium", "estimatedHours": 4}
]`

const analyzePrompt = `Analyze this project: %q

Tasks (%d total):
%s

Provide analysis in this EXACT JSON format with no markdown formatting:
{
  "progress": <number 0-100>,
  "insights": ["insight 1", "insight 2", "insight 3"],
  "recommendations": ["recommendation 1", "recommendation 2", "recommendation 3"]
}

Make insights specific and actionable based on the actual task data.`

type taskInfo struct {
	Title          string   `json:"title"`
	Status         string   `json:"status"`
	Priority       string   `json:"priority"`
	EstimatedHours *float64 `json:"estimatedHours"`
}

func buildSuggestPrompt(title, description string) string {
	return fmt.Sprintf(suggestPrompt, title, description)
}

func buildAnalyzePrompt(title string, tasks []model.Task) (string, error) {
	infos := make([]taskInfo, 0, len(tasks))
	for _, t := range tasks {
		infos = append(infos, taskInfo{
			Title:          t.Title,
			Status:         t.Status,
			Priority:       t.Priority,
			EstimatedHours: t.EstimatedHours,
		})
	}
	data, err := json.MarshalIndent(infos, "", "  ")
	if err != nil {
		return "", err
	}
	return fmt.Sprintf(analyzePrompt, title, len(tasks), data), nil
}
