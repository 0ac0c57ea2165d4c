package config

import (
	"sync"

	"github.com/fadilmartias/resume-matcher/internal/keyword"
)

type ScoringConfig struct {
	TopN           int
	MinJDChars     int
	MinResumeChars int
}

var (
	scoringConfig *ScoringConfig
	scoringOnce   sync.Once
)

func LoadScoringConfig() *ScoringConfig {
	scoringOnce.Do(func() {
		scoringConfig = &ScoringConfig{
			TopN:           envInt("SCORING_TOP_N", keyword.DefaultTopN),
			MinJDChars:     envInt("SCORING_MIN_JD_CHARS", 20),
			MinResumeChars: envInt("SCORING_MIN_RESUME_CHARS", 20),
		}
	})
	return scoringConfig
}
