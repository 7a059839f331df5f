// Package gateway talks to the remote ticket REST API.
//
// Every operation is exactly one HTTP request. Nothing is cached and failed
// requests are never retried; errors are mapped onto the shared error types.
package gateway

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"

	"ticketdesk/internal/infrastructure/metrics"
	"ticketdesk/internal/shared/constants"
	"ticketdesk/internal/shared/errors"
	"ticketdesk/internal/shared/logger"
	"ticketdesk/internal/shared/utils/logutil"
)

const maxLoggedBody = 256

type Config struct {
	BaseURL   string
	UserAgent string
	// Timeout of zero keeps the transport default.
	Timeout time.Duration
	Debug   bool
}

// Client is the shared resty client. The base URL is fixed at construction.
type Client struct {
	http    *resty.Client
	baseURL string
	logger  logger.Interface
}

func NewClient(cfg Config, log logger.Interface) *Client {
	if cfg.UserAgent == "" {
		cfg.UserAgent = "ticketdesk/1.0"
	}

	httpClient := resty.New().
		SetBaseURL(strings.TrimRight(cfg.BaseURL, "/")).
		SetRetryCount(0).
		SetLogger(restyLogger{log: log}).
		SetHeader(constants.HeaderUserAgent, cfg.UserAgent).
		SetHeader("Accept", constants.ContentTypeJSON).
		SetHeader(constants.HeaderContentType, constants.ContentTypeJSON)

	if cfg.Timeout > 0 {
		httpClient.SetTimeout(cfg.Timeout)
	}
	if cfg.Debug {
		httpClient.SetDebug(true)
	}

	return &Client{
		http:    httpClient,
		baseURL: cfg.BaseURL,
		logger:  log,
	}
}

// request describes one API call.
type request struct {
	op         string
	method     string
	path       string
	pathParams map[string]string
	body       any
	result     any
}

// do runs req and maps any failure. A 2xx response is decoded into
// req.result when set.
func (c *Client) do(ctx context.Context, req request) error {
	started := time.Now()

	r := c.http.R().SetContext(ctx)
	if req.pathParams != nil {
		r.SetPathParams(req.pathParams)
	}
	if req.body != nil {
		r.SetBody(req.body)
	}

	resp, err := r.Execute(req.method, req.path)
	if err != nil {
		metrics.ObserveGateway(req.op, metrics.OutcomeTransport, time.Since(started))
		c.logger.Warnw("ticket api request failed", "operation", req.op, "method", req.method, "path", req.path, "error", err)
		return errors.NewTransportError("operation failed, network error", err.Error()).WithCause(err)
	}

	if resp.IsSuccess() {
		if req.result != nil {
			if err := json.Unmarshal(resp.Body(), req.result); err != nil {
				metrics.ObserveGateway(req.op, metrics.OutcomeError, time.Since(started))
				c.logger.Errorw("failed to decode ticket api response", "operation", req.op, "error", err)
				return errors.NewTransportError("invalid response from ticket API", err.Error()).WithCause(err)
			}
		}
		metrics.ObserveGateway(req.op, metrics.OutcomeOK, time.Since(started))
		return nil
	}

	mapped := mapErrorResponse(resp.StatusCode(), resp.Body())
	outcome := metrics.OutcomeError
	if errors.IsNotFoundError(mapped) {
		outcome = metrics.OutcomeNotFound
	}
	metrics.ObserveGateway(req.op, outcome, time.Since(started))
	c.logger.Infow("ticket api returned error",
		"operation", req.op,
		"status", resp.StatusCode(),
		"error", mapped,
		"body", logutil.TruncateForLog(string(resp.Body()), maxLoggedBody),
	)
	return mapped
}

type errorBody struct {
	Message string `json:"message"`
}

// mapErrorResponse prefers the server's message and falls back to the status code.
func mapErrorResponse(status int, body []byte) error {
	msg := fmt.Sprintf("operation failed, status %d", status)
	var eb errorBody
	if len(body) > 0 && json.Unmarshal(body, &eb) == nil && strings.TrimSpace(eb.Message) != "" {
		msg = eb.Message
	}

	if status == http.StatusNotFound {
		return errors.NewNotFoundError(msg)
	}
	appErr := errors.NewTransportError(msg)
	appErr.Details = fmt.Sprintf("status %d", status)
	return appErr
}

// restyLogger routes resty's internal logging into the application logger.
type restyLogger struct {
	log logger.Interface
}

func (l restyLogger) Errorf(format string, v ...interface{}) {
	l.log.Error(fmt.Sprintf(format, v...), "component", "resty")
}

func (l restyLogger) Warnf(format string, v ...interface{}) {
	l.log.Warn(fmt.Sprintf(format, v...), "component", "resty")
}

func (l restyLogger) Debugf(format string, v ...interface{}) {
	l.log.Debug(fmt.Sprintf(format, v...), "component", "resty")
}
