package handler

import (
	"errors"
	"fmt"
	"io"
	"log"
	"mime/multipart"

	"github.com/fadilmartias/resume-matcher/internal/extract"
	"github.com/fadilmartias/resume-matcher/internal/usecase"
	"github.com/fadilmartias/resume-matcher/internal/util"
	"github.com/gofiber/fiber/v2"
)

const (
	resumeField         = "resume"
	jobDescriptionField = "job_description"
	positionTitleField  = "position_title"
)

var errFileTooLarge = errors.New("file too large")

type MatchHandler struct {
	uc             *usecase.MatchUsecase
	maxUploadBytes int
}

func NewMatchHandler(uc *usecase.MatchUsecase, maxUploadBytes int) *MatchHandler {
	return &MatchHandler{uc: uc, maxUploadBytes: maxUploadBytes}
}

func (h *MatchHandler) RegisterRoutes(app *fiber.App) {
	app.Post("/score", h.Score)
	app.Get("/health", h.Health)
}

func (h *MatchHandler) Score(c *fiber.Ctx) error {
	jobDescription := c.FormValue(jobDescriptionField)
	positionTitle := c.FormValue(positionTitleField)

	file, fileErr := c.FormFile(resumeField)
	missing := map[string]string{}
	if fileErr != nil {
		missing[resumeField] = "field required"
	}
	if jobDescription == "" {
		missing[jobDescriptionField] = "field required"
	}
	if len(missing) > 0 {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusUnprocessableEntity,
			Message: "Missing required form fields.",
		}, util.NewFormError("missing fields", missing))
	}

	if err := h.uc.ValidateJobDescription(jobDescription); err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusBadRequest,
			Message: "Job description seems too short.",
		}, err)
	}

	data, err := h.readUpload(file, resumeField)
	if err != nil {
		if errors.Is(err, errFileTooLarge) {
			return util.ErrorResponse(c, util.ErrorResponseFormat{
				Code:    fiber.StatusRequestEntityTooLarge,
				Message: fmt.Sprintf("Resume file is too large (max %d bytes).", h.maxUploadBytes),
			}, err)
		}
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusBadRequest,
			Message: "Could not read uploaded resume.",
		}, err)
	}

	resumeText, extractErr := extract.ResumeText(file.Filename, data)
	if extractErr != nil {
		log.Printf("Resume extraction failed for %q: %v", file.Filename, extractErr)
	}

	resp, err := h.uc.Score(usecase.ScoreInput{
		ResumeText:     resumeText,
		JobDescription: jobDescription,
		PositionTitle:  positionTitle,
	})
	switch {
	case err == nil:
		return util.SuccessResponse(c, util.SuccessResponseFormat{Data: resp})
	case errors.Is(err, usecase.ErrJobDescriptionTooShort):
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusBadRequest,
			Message: "Job description seems too short.",
		}, err)
	case errors.Is(err, usecase.ErrResumeUnreadable):
		if extractErr != nil {
			err = errors.Join(err, extractErr)
		}
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusUnprocessableEntity,
			Message: "Could not extract text from resume. Try .pdf, .docx, or .txt.",
		}, err)
	default:
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusInternalServerError,
			Message: fmt.Sprintf("Error scoring resume: %v", err),
		}, err)
	}
}

func (h *MatchHandler) Health(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"status": "ok"})
}

func (h *MatchHandler) readUpload(file *multipart.FileHeader, fieldName string) ([]byte, error) {
	if h.maxUploadBytes > 0 && file.Size > int64(h.maxUploadBytes) {
		return nil, fmt.Errorf("%s: %d bytes: %w", fieldName, file.Size, errFileTooLarge)
	}

	f, err := file.Open()
	if err != nil {
		return nil, fmt.Errorf("cannot open %s file: %w", fieldName, err)
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		return nil, fmt.Errorf("cannot read %s file: %w", fieldName, err)
	}
	return data, nil
}
