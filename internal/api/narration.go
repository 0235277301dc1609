package api

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"github.com/valyala/fasthttp"

	"wrestling-booker/internal/config"
	"wrestling-booker/internal/constants"
)

// NarrationClient asks an external text-generation service for flavor text
// describing an already-decided outcome. Narration is cosmetic: any
// failure, timeout or missing configuration degrades to a canned line and
// never affects resolution.
type NarrationClient struct {
	baseURL string
	apiKey  string
	client  *fasthttp.Client
	logger  zerolog.Logger
}

type NarrationRequest struct {
	Kind           string   `json:"kind"`
	Stipulation    string   `json:"stipulation,omitempty"`
	Winner         string   `json:"winner"`
	Participants   []string `json:"participants"`
	QualityRoll    int      `json:"quality_roll"`
	WinProbability float64  `json:"win_probability"`
}

type NarrationResponse struct {
	Text string `json:"text"`
}

func NewNarrationClient(cfg *config.Config, logger zerolog.Logger) *NarrationClient {
	return &NarrationClient{
		baseURL: cfg.NarrationBaseURL,
		apiKey:  cfg.NarrationAPIKey,
		client: &fasthttp.Client{
			MaxConnsPerHost:     100,
			ReadTimeout:         constants.NarrationTimeout,
			WriteTimeout:        constants.NarrationTimeout,
			MaxIdleConnDuration: 1 * time.Minute,
		},
		logger: logger,
	}
}

// Narrate returns flavor text for the outcome, or a canned line when the
// service is unconfigured or unavailable.
func (c *NarrationClient) Narrate(ctx context.Context, request NarrationRequest) string {
	if c.baseURL == "" {
		return fallbackLine(request)
	}

	body, err := json.Marshal(request)
	if err != nil {
		c.logger.Warn().Err(err).Msg("failed to encode narration request")
		return fallbackLine(request)
	}

	req := fasthttp.AcquireRequest()
	resp := fasthttp.AcquireResponse()
	defer fasthttp.ReleaseRequest(req)
	defer fasthttp.ReleaseResponse(resp)

	req.SetRequestURI(c.baseURL + "/v1/narrate")
	req.Header.SetMethod(fasthttp.MethodPost)
	req.Header.SetContentType("application/json")
	if c.apiKey != "" {
		req.Header.Set("Authorization", c.apiKey)
	}
	req.SetBody(body)

	deadline, ok := ctx.Deadline()
	if !ok {
		deadline = time.Now().Add(constants.NarrationTimeout)
	}
	err = c.client.DoDeadline(req, resp, deadline)
	if err != nil {
		c.logger.Warn().Err(err).Msg("narration request failed, using fallback")
		return fallbackLine(request)
	}

	if resp.StatusCode() != fasthttp.StatusOK {
		c.logger.Warn().Int("status", resp.StatusCode()).Msg("narration service error, using fallback")
		return fallbackLine(request)
	}

	var result NarrationResponse
	if err := json.Unmarshal(resp.Body(), &result); err != nil || result.Text == "" {
		c.logger.Warn().Err(err).Msg("unusable narration response, using fallback")
		return fallbackLine(request)
	}
	return result.Text
}

func fallbackLine(request NarrationRequest) string {
	if request.Kind == "promo" {
		return fmt.Sprintf("%s cuts a promo that has the crowd talking.", request.Winner)
	}
	return fmt.Sprintf("%s takes the win after a hard-fought segment.", request.Winner)
}
