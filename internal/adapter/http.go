package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/go-resty/resty/v2"

	"github.com/akhmedov/repsync/internal/config"
	"github.com/akhmedov/repsync/internal/logger"
	"github.com/akhmedov/repsync/models"
)

type httpServerAdapter struct {
	client *resty.Client

	logger *logger.Logger
}

// NewHTTPServerAdapter constructs an HTTP/REST implementation of
// [ServerAdapter]. It normalises and validates the base URL from
// adapterCfg.HTTPAddress and configures the underlying client with the
// resolved base URL, the request timeout, and the bearer token from appCfg
// (when present).
//
// Returns an error if adapterCfg.HTTPAddress is empty or cannot be parsed as
// a valid URL.
func NewHTTPServerAdapter(adapterCfg config.ClientAdapter, appCfg config.ClientApp, logger *logger.Logger) (ServerAdapter, error) {
	baseURL, err := normalizeBaseURL(adapterCfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	client := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(adapterCfg.RequestTimeout)

	if appCfg.APIToken != "" {
		client.SetAuthToken(appCfg.APIToken)
	}

	return &httpServerAdapter{client: client, logger: logger}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// ActivePlan implements [ServerAdapter]. It GETs /api/plan/active for the
// given owner. Returns an error if the request fails, the server returns a
// non-2xx status, or the response body cannot be decoded.
func (h *httpServerAdapter) ActivePlan(ctx context.Context, ownerID int64) (models.ActivePlanResponse, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetQueryParam("owner_id", strconv.FormatInt(ownerID, 10)).
		Get("/api/plan/active")
	if err != nil {
		return models.ActivePlanResponse{}, fmt.Errorf("active plan request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.ActivePlanResponse{}, err
	}

	var plan models.ActivePlanResponse
	if err = json.Unmarshal(resp.Body(), &plan); err != nil {
		return models.ActivePlanResponse{}, fmt.Errorf("decode active plan response: %w", err)
	}

	return plan, nil
}

// LastWorkoutSets implements [ServerAdapter]. It POSTs the exercise names to
// /api/workouts/last and returns the most recent logged records per exercise.
func (h *httpServerAdapter) LastWorkoutSets(ctx context.Context, req models.LastWorkoutRequest) (models.LastWorkoutResponse, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(req).
		Post("/api/workouts/last")
	if err != nil {
		return models.LastWorkoutResponse{}, fmt.Errorf("last workout request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.LastWorkoutResponse{}, err
	}

	var last models.LastWorkoutResponse
	if err = json.Unmarshal(resp.Body(), &last); err != nil {
		return models.LastWorkoutResponse{}, fmt.Errorf("decode last workout response: %w", err)
	}

	return last, nil
}

// UpsertDailyRecord implements [ServerAdapter]. It POSTs the full record set
// of one exercise-day to /api/workouts/daily and returns the persisted
// records with their server-assigned ids.
func (h *httpServerAdapter) UpsertDailyRecord(ctx context.Context, req models.UpsertDailyRecordRequest) (models.UpsertDailyRecordResponse, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(req).
		Post("/api/workouts/daily")
	if err != nil {
		return models.UpsertDailyRecordResponse{}, fmt.Errorf("upsert daily record request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.UpsertDailyRecordResponse{}, err
	}

	var upserted models.UpsertDailyRecordResponse
	if err = json.Unmarshal(resp.Body(), &upserted); err != nil {
		return models.UpsertDailyRecordResponse{}, fmt.Errorf("decode upsert daily record response: %w", err)
	}

	return upserted, nil
}
