// Vidrank - Video Search Enrichment and Ranking
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/vidrank

package api

import (
	"net/http"
	"time"

	"github.com/goccy/go-json"

	"github.com/tomtom215/vidrank/internal/logging"
)

// APIResponse is the envelope of every /api/v1 response. Exactly one of Data
// and Error is set.
type APIResponse struct {
	Success bool      `json:"success"`
	Data    any       `json:"data,omitempty"`
	Error   *APIError `json:"error,omitempty"`
	Meta    *APIMeta  `json:"meta,omitempty"`
}

// APIError describes a failed request. Code is one of the ErrCode constants.
type APIError struct {
	Code      string `json:"code"`
	Message   string `json:"message"`
	Details   any    `json:"details,omitempty"`
	RequestID string `json:"request_id,omitempty"`
}

// APIMeta carries timing and tracing data. Cached marks a search answered
// from the result cache; Count is set on list endpoints.
type APIMeta struct {
	RequestID  string    `json:"request_id,omitempty"`
	Timestamp  time.Time `json:"timestamp"`
	DurationMs int64     `json:"duration_ms"`
	Cached     bool      `json:"cached,omitempty"`
	Count      *int      `json:"count,omitempty"`
}

// Error codes
const (
	ErrCodeNotFound            = "NOT_FOUND"
	ErrCodeMethodNotAllowed    = "METHOD_NOT_ALLOWED"
	ErrCodeTooManyRequests     = "TOO_MANY_REQUESTS"
	ErrCodeInternalError       = "INTERNAL_ERROR"
	ErrCodeServiceUnavailable  = "SERVICE_UNAVAILABLE"
	ErrCodeValidationFailed    = "VALIDATION_FAILED"
	ErrCodeExternalServiceFail = "EXTERNAL_SERVICE_FAILED"
	ErrCodeUpstreamUnparseable = "UPSTREAM_UNPARSEABLE"
)

// ResponseWriter writes enveloped responses for one request. Create it at
// the top of a handler so DurationMs covers the handler's work.
type ResponseWriter struct {
	w       http.ResponseWriter
	r       *http.Request
	started time.Time
}

// NewResponseWriter starts timing a response for r.
func NewResponseWriter(w http.ResponseWriter, r *http.Request) *ResponseWriter {
	return &ResponseWriter{w: w, r: r, started: time.Now()}
}

func (rw *ResponseWriter) requestID() string {
	return logging.RequestIDFromContext(rw.r.Context())
}

// stamp fills the fields every envelope carries.
func (rw *ResponseWriter) stamp(meta *APIMeta) *APIMeta {
	if meta == nil {
		meta = &APIMeta{}
	}
	meta.RequestID = rw.requestID()
	meta.Timestamp = time.Now().UTC()
	meta.DurationMs = time.Since(rw.started).Milliseconds()
	return meta
}

// Success writes data with status 200.
func (rw *ResponseWriter) Success(data any) {
	rw.SuccessWithMeta(data, nil)
}

// SuccessWithMeta writes data with status 200 and caller-supplied metadata.
func (rw *ResponseWriter) SuccessWithMeta(data any, meta *APIMeta) {
	rw.JSON(http.StatusOK, APIResponse{Success: true, Data: data, Meta: rw.stamp(meta)})
}

// Fail writes an error envelope.
func (rw *ResponseWriter) Fail(status int, code, message string, details any) {
	rw.JSON(status, APIResponse{
		Error: &APIError{
			Code:      code,
			Message:   message,
			Details:   details,
			RequestID: rw.requestID(),
		},
		Meta: rw.stamp(nil),
	})
}

// NotFound writes a 404.
func (rw *ResponseWriter) NotFound(message string) {
	rw.Fail(http.StatusNotFound, ErrCodeNotFound, message, nil)
}

// MethodNotAllowed writes a 405.
func (rw *ResponseWriter) MethodNotAllowed() {
	rw.Fail(http.StatusMethodNotAllowed, ErrCodeMethodNotAllowed, "Method not allowed", nil)
}

// TooManyRequests writes a 429.
func (rw *ResponseWriter) TooManyRequests(message string) {
	rw.Fail(http.StatusTooManyRequests, ErrCodeTooManyRequests, message, nil)
}

// ServiceUnavailable writes a 503.
func (rw *ResponseWriter) ServiceUnavailable(message string) {
	rw.Fail(http.StatusServiceUnavailable, ErrCodeServiceUnavailable, message, nil)
}

// ValidationError writes a 400 with per-field details, which may be nil.
func (rw *ResponseWriter) ValidationError(message string, details any) {
	rw.Fail(http.StatusBadRequest, ErrCodeValidationFailed, message, details)
}

// JSON writes body without the envelope. The legacy search route and the
// envelope helpers above both end here.
func (rw *ResponseWriter) JSON(status int, body any) {
	h := rw.w.Header()
	h.Set("Content-Type", "application/json; charset=utf-8")
	h.Set("Cache-Control", "no-store")
	rw.w.WriteHeader(status)

	if err := json.NewEncoder(rw.w).Encode(body); err != nil {
		logging.Ctx(rw.r.Context()).Error().Err(err).Msg("Failed to encode JSON response")
	}
}

// WriteSuccess writes data in a success envelope.
func WriteSuccess(w http.ResponseWriter, r *http.Request, data any) {
	NewResponseWriter(w, r).Success(data)
}
