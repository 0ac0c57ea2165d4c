package client

import (
	"context"
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/tidwall/gjson"
)

// APIError is a non-2xx answer from the scoring server.
type APIError struct {
	Status int
	Detail string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("server returned %d: %s", e.Status, e.Detail)
}

type ScoreRequest struct {
	ResumePath     string
	JobDescription string
	PositionTitle  string
}

// Summary is the part of a /score answer matchctl prints. Raw keeps the
// full JSON body.
type Summary struct {
	Title              string
	Score              float64
	CoveragePercentage float64
	Matched            []string
	Missing            []string
	Considered         []string
	Suggestions        []string
	ResumeCharCount    int64
	JDCharCount        int64
	Raw                []byte
}

type MatchClient struct {
	http *resty.Client
}

func NewMatchClient(baseURL string, timeout time.Duration) *MatchClient {
	return &MatchClient{
		http: resty.New().
			SetBaseURL(baseURL).
			SetTimeout(timeout).
			SetHeader("Accept", "application/json"),
	}
}

// Score uploads a resume file and job description to /score.
func (c *MatchClient) Score(ctx context.Context, req ScoreRequest) (*Summary, error) {
	form := map[string]string{"job_description": req.JobDescription}
	if req.PositionTitle != "" {
		form["position_title"] = req.PositionTitle
	}

	resp, err := c.http.R().
		SetContext(ctx).
		SetFile("resume", req.ResumePath).
		SetFormData(form).
		Post("/score")
	if err != nil {
		return nil, fmt.Errorf("score request: %w", err)
	}
	if resp.IsError() {
		return nil, apiError(resp)
	}
	return ParseSummary(resp.Body())
}

// Health checks the server's /health endpoint.
func (c *MatchClient) Health(ctx context.Context) error {
	resp, err := c.http.R().SetContext(ctx).Get("/health")
	if err != nil {
		return fmt.Errorf("health request: %w", err)
	}
	if resp.IsError() {
		return apiError(resp)
	}
	if status := gjson.GetBytes(resp.Body(), "status").String(); status != "ok" {
		return fmt.Errorf("unexpected health status %q", status)
	}
	return nil
}

func apiError(resp *resty.Response) error {
	detail := gjson.GetBytes(resp.Body(), "detail").String()
	if detail == "" {
		detail = resp.Status()
	}
	return &APIError{Status: resp.StatusCode(), Detail: detail}
}

// ParseSummary reads a /score JSON body.
func ParseSummary(body []byte) (*Summary, error) {
	if !gjson.ValidBytes(body) {
		return nil, fmt.Errorf("invalid JSON response")
	}
	res := gjson.ParseBytes(body)
	if !res.Get("score").Exists() {
		return nil, fmt.Errorf("response has no score")
	}
	return &Summary{
		Title:              res.Get("title").String(),
		Score:              res.Get("score").Float(),
		CoveragePercentage: res.Get("coverage_percentage").Float(),
		Matched:            stringArray(res.Get("matched_keywords")),
		Missing:            stringArray(res.Get("missing_keywords")),
		Considered:         stringArray(res.Get("considered_keywords")),
		Suggestions:        stringArray(res.Get("suggestions")),
		ResumeCharCount:    res.Get("resume_char_count").Int(),
		JDCharCount:        res.Get("jd_char_count").Int(),
		Raw:                body,
	}, nil
}

func stringArray(r gjson.Result) []string {
	arr := r.Array()
	out := make([]string, 0, len(arr))
	for _, v := range arr {
		out = append(out, v.String())
	}
	return out
}
