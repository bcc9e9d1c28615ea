// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package extract

import (
	"bytes"
	"encoding/json"
	"io"
	"unicode/utf8"
)

// fallbackError is reported when a failure carries no description.
const fallbackError = "extraction failed"

// Result is the outcome of one extraction. It has two shapes: a success
// carrying Text and its Length, or a failure carrying Error. Build it with
// Success or Failure so the shapes stay consistent.
type Result struct {
	Success bool
	Text    string
	Length  int
	Error   string
}

// Success returns a successful result for text. Length counts Unicode code
// points, not bytes.
func Success(text string) Result {
	return Result{Success: true, Text: text, Length: utf8.RuneCountInString(text)}
}

// Failure returns a failed result describing err. The description is never
// empty.
func Failure(err error) Result {
	msg := ""
	if err != nil {
		msg = err.Error()
	}
	return FailureMessage(msg)
}

// FailureMessage returns a failed result with a fixed description.
func FailureMessage(msg string) Result {
	if msg == "" {
		msg = fallbackError
	}
	return Result{Error: msg}
}

type successRecord struct {
	Success bool   `json:"success"`
	Text    string `json:"text"`
	Length  int    `json:"length"`
}

type failureRecord struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}

// MarshalJSON emits {"success":true,"text":...,"length":...} or
// {"success":false,"error":...}. Fields of the other shape never appear.
func (r Result) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	if err := r.encode(&buf); err != nil {
		return nil, err
	}
	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}

// WriteTo writes r as one JSON line to w.
func (r Result) WriteTo(w io.Writer) (int64, error) {
	var buf bytes.Buffer
	if err := r.encode(&buf); err != nil {
		return 0, err
	}
	n, err := w.Write(buf.Bytes())
	return int64(n), err
}

// encode writes the record with a trailing newline. HTML escaping is off so
// text such as "<pdf_path>" survives verbatim.
func (r Result) encode(buf *bytes.Buffer) error {
	enc := json.NewEncoder(buf)
	enc.SetEscapeHTML(false)
	if r.Success {
		return enc.Encode(successRecord{Success: true, Text: r.Text, Length: r.Length})
	}
	return enc.Encode(failureRecord{Success: false, Error: r.Error})
}
