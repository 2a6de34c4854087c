// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"errors"
	"fmt"
)

// Sentinel errors matched by the typed errors below via [errors.Is].
var (
	// ErrParse indicates a configuration file whose content is not valid TOML.
	ErrParse = errors.New("config parse error")
	// ErrIO indicates a configuration file that could not be read or written.
	ErrIO = errors.New("config io error")
	// ErrValidation indicates a value that cannot be coerced into the declared
	// type of its field, or that violates a field constraint.
	ErrValidation = errors.New("config validation error")
	// ErrUnknownKey indicates a dotted path that names no declared section or
	// field.
	ErrUnknownKey = errors.New("unknown config key")
)

// ParseError reports a malformed configuration file.
type ParseError struct {
	Path string
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse config file %s: %v", e.Path, e.Err)
}

func (e *ParseError) Unwrap() []error {
	return []error{ErrParse, e.Err}
}

// IOError reports a failed filesystem operation on a configuration file.
// Op is one of "read", "mkdir", "encode" or "write".
type IOError struct {
	Op   string
	Path string
	Err  error
}

func (e *IOError) Error() string {
	return fmt.Sprintf("%s config file %s: %v", e.Op, e.Path, e.Err)
}

func (e *IOError) Unwrap() []error {
	return []error{ErrIO, e.Err}
}

// ValidationError reports a leaf that cannot be turned into a valid value
// for its declared field.
type ValidationError struct {
	Field string
	Value any
	Err   error
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid value %#v for %s: %v", e.Value, e.Field, e.Err)
}

func (e *ValidationError) Unwrap() []error {
	return []error{ErrValidation, e.Err}
}

// KeyError reports a dotted path that does not resolve to a declared
// section or field.
type KeyError struct {
	Path string
}

func (e *KeyError) Error() string {
	return fmt.Sprintf("unknown config key %q", e.Path)
}

func (e *KeyError) Unwrap() error {
	return ErrUnknownKey
}
