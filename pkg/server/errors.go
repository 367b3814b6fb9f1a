// Copyright (c) 2025, FSG Modding.  All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package server

import (
	"errors"
	"net/http"
	"time"

	moderrors "github.com/fsgmodding/modcheck/pkg/errors"
	"github.com/fsgmodding/modcheck/pkg/serializer"
	"github.com/google/uuid"
)

// ErrorResponse is the JSON body written for every failed request.
type ErrorResponse struct {
	Code      string         `json:"code"`
	Message   string         `json:"message"`
	Details   map[string]any `json:"details,omitempty"`
	RequestID string         `json:"requestId"`
	Timestamp time.Time      `json:"timestamp"`
	Retryable bool           `json:"retryable"`
}

// WriteError writes a structured error response with the given status code.
// The request ID is taken from the request context when present.
func WriteError(w http.ResponseWriter, r *http.Request, statusCode int,
	code moderrors.ErrorCode, message string, retryable bool, details map[string]any) {

	requestID, _ := r.Context().Value(contextKeyRequestID).(string)
	if requestID == "" {
		requestID = uuid.New().String()
	}

	serializer.RespondJSON(w, statusCode, ErrorResponse{
		Code:      string(code),
		Message:   message,
		Details:   details,
		RequestID: requestID,
		Timestamp: time.Now().UTC(),
		Retryable: retryable,
	})
}

// WriteErrorFromErr derives the response from err. Structured errors map to
// their HTTP status and carry their context as details; anything else becomes
// an internal error with the fallback message.
func WriteErrorFromErr(w http.ResponseWriter, r *http.Request, err error,
	fallbackMessage string, details map[string]any) {

	if err == nil {
		WriteError(w, r, http.StatusInternalServerError, moderrors.ErrCodeInternal,
			fallbackMessage, true, details)
		return
	}

	var structured *moderrors.StructuredError
	if errors.As(err, &structured) {
		merged := mergeDetails(structured.Context, details)
		if structured.Cause != nil {
			if merged == nil {
				merged = make(map[string]any)
			}
			merged["error"] = structured.Cause.Error()
		}
		WriteError(w, r, HTTPStatusFromCode(structured.Code), structured.Code,
			structured.Message, retryableFromCode(structured.Code), merged)
		return
	}

	WriteError(w, r, http.StatusInternalServerError, moderrors.ErrCodeInternal,
		fallbackMessage, true, mergeDetails(details, map[string]any{"error": err.Error()}))
}

// HTTPStatusFromCode maps an error code to its HTTP status.
// Unknown codes are treated as internal errors.
func HTTPStatusFromCode(code moderrors.ErrorCode) int {
	switch code {
	case moderrors.ErrCodeInvalidRequest, moderrors.ErrCodeParse:
		return http.StatusBadRequest
	case moderrors.ErrCodeNotFound:
		return http.StatusNotFound
	case moderrors.ErrCodeMethodNotAllowed:
		return http.StatusMethodNotAllowed
	case moderrors.ErrCodeUnreadable:
		return http.StatusUnprocessableEntity
	case moderrors.ErrCodeRateLimitExceeded:
		return http.StatusTooManyRequests
	case moderrors.ErrCodeUnavailable:
		return http.StatusServiceUnavailable
	case moderrors.ErrCodeTimeout:
		return http.StatusGatewayTimeout
	default:
		return http.StatusInternalServerError
	}
}

// retryableFromCode reports whether a client should retry the request.
func retryableFromCode(code moderrors.ErrorCode) bool {
	switch code {
	case moderrors.ErrCodeTimeout, moderrors.ErrCodeUnavailable,
		moderrors.ErrCodeRateLimitExceeded, moderrors.ErrCodeInternal:
		return true
	default:
		return false
	}
}

// mergeDetails combines two detail maps without mutating either.
// Keys in b overwrite keys in a. Returns nil when both are empty.
func mergeDetails(a, b map[string]any) map[string]any {
	if len(a) == 0 && len(b) == 0 {
		return nil
	}
	merged := make(map[string]any, len(a)+len(b))
	for k, v := range a {
		merged[k] = v
	}
	for k, v := range b {
		merged[k] = v
	}
	return merged
}
