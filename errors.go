// SPDX-FileCopyrightText: Winni Neessen <wn@neessen.dev>
//
// SPDX-License-Identifier: MIT

package what3words

import "fmt"

// APIError is an error reported by the what3words API itself, decoded from
// the error envelope of a non-2xx response.
type APIError struct {
	StatusCode int
	Code       string
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("what3words API error: %s - %s", e.Code, e.Message)
}

// DecodeError indicates that a response body did not match the shape
// expected for the requested format. It is distinct from any transport-level
// failure and never coerced into an empty result.
type DecodeError struct {
	Format Format
	err    error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("failed to decode %s response: %s", e.Format, e.err)
}

func (e *DecodeError) Unwrap() error {
	return e.err
}

// errorResponse is the wire shape of an API error body.
type errorResponse struct {
	Error struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}
