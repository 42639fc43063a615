package api

import (
	"fmt"

	"github.com/gin-gonic/gin"

	"verdant/internal/domain"
)

type adviceRequest struct {
	screenRequest
}

type narrativeSection struct {
	Heading string `json:"heading"`
	Body    string `json:"body"`
}

type adviceResponse struct {
	SnapshotID string             `json:"snapshotID"`
	Structured bool               `json:"structured"`
	Sections   []narrativeSection `json:"sections,omitempty"`
	Disclaimer string             `json:"disclaimer,omitempty"`
	Raw        string             `json:"raw"`
}

// advice runs a fresh screen for the supplied parameters and asks the
// narrative model to write it up. A model failure is reported to the caller
// but never invalidates the screen itself, which remains available.
func (m ApiHandler) advice(c *gin.Context) {
	var requestBody adviceRequest
	if err := c.ShouldBindJSON(&requestBody); err != nil {
		returnErrorJson(fmt.Errorf("%w: %v", domain.ErrInvalidParameter, err), c)
		return
	}

	params, err := parseUserParameters(requestBody.screenRequest)
	if err != nil {
		returnErrorJson(err, c)
		return
	}

	result, err := m.ScreeningService.Calculate(c.Request.Context(), params)
	if err != nil {
		returnErrorJson(fmt.Errorf("failed to run screen: %w", err), c)
		return
	}

	narrative, err := m.AdviceService.GenerateAdvice(c.Request.Context(), result)
	if err != nil {
		returnErrorJson(err, c)
		return
	}

	sections := []narrativeSection{}
	for _, s := range narrative.Sections {
		sections = append(sections, narrativeSection{Heading: s.Heading, Body: s.Body})
	}

	c.JSON(200, adviceResponse{
		SnapshotID: result.SnapshotID.String(),
		Structured: narrative.Structured,
		Sections:   sections,
		Disclaimer: narrative.Disclaimer,
		Raw:        narrative.Raw,
	})
}
