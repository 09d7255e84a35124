package repository

// Package repository contains data access layer abstractions.
// Implementations live in subpackages (e.g., mysql) inside this directory.

import "errors"

var (
	// ErrNotFound is returned when the addressed row does not exist.
	ErrNotFound = errors.New("record not found")
	// ErrDuplicate is returned when a unique constraint rejects a write.
	ErrDuplicate = errors.New("duplicate record")
	// ErrReferenceNotFound is returned when a foreign key points at a missing row.
	ErrReferenceNotFound = errors.New("referenced record not found")
)

// PageQuery holds limit/offset pagination parameters.
type PageQuery struct {
	Limit  int
	Offset int
}
