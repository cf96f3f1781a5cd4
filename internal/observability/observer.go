// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package observability

import (
	"encoding/json"
	"io"
	"time"
)

// Level controls how much operational logging is emitted
type Level int

const (
	// Off disables all operational logging
	Off Level = iota
	// Metrics records operation outcomes without emitting log lines
	Metrics
	// Debug emits a JSON line per operation to the writer
	Debug
)

// StandardObserver implements operational logging for all components. Debug
// output is line-delimited JSON on the configured writer (stderr in the CLI).
type StandardObserver struct {
	level  Level
	writer io.Writer
}

// NewStandardObserver creates a new observer at the given level
func NewStandardObserver(level Level, writer io.Writer) *StandardObserver {
	return &StandardObserver{
		level:  level,
		writer: writer,
	}
}

// StartTiming returns a function to complete timing for an operation
func (o *StandardObserver) StartTiming(component, operation, filePath string) func(success bool, metadata map[string]any) {
	start := time.Now()

	return func(success bool, metadata map[string]any) {
		o.LogOperation(OperationData{
			Component:  component,
			Operation:  operation,
			FilePath:   filePath,
			DurationMs: time.Since(start).Milliseconds(),
			Success:    success,
			Metadata:   metadata,
		})
	}
}

// LogOperation logs operation data
func (o *StandardObserver) LogOperation(data OperationData) {
	if o == nil || o.level != Debug {
		return
	}

	data.RequestID = "req-" + time.Now().Format("20060102-150405")
	json.NewEncoder(o.writer).Encode(data)
}

// OperationData describes one observed operation
type OperationData struct {
	Component  string         `json:"component"`
	Operation  string         `json:"operation"`
	RequestID  string         `json:"request_id"`
	FilePath   string         `json:"file_path,omitempty"`
	DurationMs int64          `json:"duration_ms,omitempty"`
	Success    bool           `json:"success"`
	Error      string         `json:"error,omitempty"`
	Metadata   map[string]any `json:"metadata,omitempty"`
}
