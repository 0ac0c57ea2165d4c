package dto

import "github.com/fadilmartias/resume-matcher/internal/scoring"

const UnknownRole = "Unknown Role"

// ScoreResponse is the /score payload: the scoring result flattened between
// the role title and the input sizes.
type ScoreResponse struct {
	Title string `json:"title"`
	scoring.Result
	ResumeCharCount int `json:"resume_char_count"`
	JDCharCount     int `json:"jd_char_count"`
}
