// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package obj

import "fmt"

// IOError is returned when an OBJ file cannot be opened or read.
type IOError struct {

	// Path is the file being read, if known.
	Path string

	Err error
}

func (e *IOError) Error() string {
	if e.Path == "" {
		return "obj: read: " + e.Err.Error()
	}
	return "obj: read " + e.Path + ": " + e.Err.Error()
}

func (e *IOError) Unwrap() error {
	return e.Err
}

// FormatError is returned for malformed or unsupported content.
// Line is the 1-based line of the offending directive.
type FormatError struct {
	Line   int
	Reason string
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("obj: line %d: %s", e.Line, e.Reason)
}

func formatError(line int, format string, args ...any) error {
	return &FormatError{Line: line, Reason: fmt.Sprintf(format, args...)}
}
