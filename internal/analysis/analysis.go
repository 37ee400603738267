// Package analysis 提供專案進度分析結果，以及 AI 無法使用時的備援計算
package analysis

import (
	"fmt"
	"math"

	"project-hub/internal/model"
)

// Analysis 為專案進度摘要
type Analysis struct {
	Progress        int      `json:"progress"`
	Insights        []string `json:"insights"`
	Recommendations []string `json:"recommendations"`
}

// Fallback 依任務狀態計算完成比例；純函式，不會失敗
func Fallback(tasks []model.Task) Analysis {
	completed := 0
	for _, t := range tasks {
		if t.Status == model.StatusCompleted {
			completed++
		}
	}

	return Analysis{
		Progress: Progress(completed, len(tasks)),
		Insights: []string{
			fmt.Sprintf("%d of %d tasks completed", completed, len(tasks)),
			"Continue working on high-priority tasks",
			"Regular progress updates recommended",
		},
		Recommendations: []string{
			"Break down complex tasks into smaller chunks",
			"Schedule regular team check-ins",
			"Update task statuses daily",
		},
	}
}

// Progress 回傳 completed/total 的百分比，四捨五入（.5 進位），total 為 0 時回傳 0
func Progress(completed, total int) int {
	if total == 0 {
		return 0
	}
	return int(math.Floor(float64(completed)*100/float64(total) + 0.5))
}
