package usecase

import (
	"errors"
	"fmt"
	"log"
	"strings"
	"unicode/utf8"

	"github.com/fadilmartias/resume-matcher/internal/config"
	"github.com/fadilmartias/resume-matcher/internal/dto"
	"github.com/fadilmartias/resume-matcher/internal/scoring"
)

var (
	ErrJobDescriptionTooShort = errors.New("job description too short")
	ErrResumeUnreadable       = errors.New("resume text unreadable")
	ErrScoringFailed          = errors.New("scoring failed")
)

type ScoreInput struct {
	ResumeText     string
	JobDescription string
	PositionTitle  string
}

type MatchUsecase struct {
	scorer         *scoring.Scorer
	minJDChars     int
	minResumeChars int
}

func NewMatchUsecase(scorer *scoring.Scorer, cfg *config.ScoringConfig) *MatchUsecase {
	return &MatchUsecase{
		scorer:         scorer,
		minJDChars:     cfg.MinJDChars,
		minResumeChars: cfg.MinResumeChars,
	}
}

// ValidateJobDescription checks the trimmed job description length.
func (uc *MatchUsecase) ValidateJobDescription(jd string) error {
	if n := utf8.RuneCountInString(strings.TrimSpace(jd)); n < uc.minJDChars {
		return fmt.Errorf("%w: %d characters, need %d", ErrJobDescriptionTooShort, n, uc.minJDChars)
	}
	return nil
}

// ValidateResumeText checks the extracted resume length.
func (uc *MatchUsecase) ValidateResumeText(text string) error {
	if n := utf8.RuneCountInString(text); n < uc.minResumeChars {
		return fmt.Errorf("%w: %d characters, need %d", ErrResumeUnreadable, n, uc.minResumeChars)
	}
	return nil
}

func (uc *MatchUsecase) Score(in ScoreInput) (*dto.ScoreResponse, error) {
	if err := uc.ValidateJobDescription(in.JobDescription); err != nil {
		return nil, err
	}
	if err := uc.ValidateResumeText(in.ResumeText); err != nil {
		return nil, err
	}

	result, err := uc.safeScore(in.ResumeText, in.JobDescription)
	if err != nil {
		return nil, err
	}

	title := in.PositionTitle
	if title == "" {
		title = dto.UnknownRole
	}

	log.Printf("Scored resume for %q: %.1f/10 (%d/%d keywords)",
		title, result.Score, len(result.MatchedKeywords), len(result.ConsideredKeywords))

	return &dto.ScoreResponse{
		Title:           title,
		Result:          result,
		ResumeCharCount: utf8.RuneCountInString(in.ResumeText),
		JDCharCount:     utf8.RuneCountInString(in.JobDescription),
	}, nil
}

func (uc *MatchUsecase) safeScore(resumeText, jdText string) (result scoring.Result, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%w: %v", ErrScoringFailed, r)
		}
	}()
	return uc.scorer.Score(resumeText, jdText), nil
}
