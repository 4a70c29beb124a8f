package domain

import (
	"errors"
	"fmt"
)

// ErrSaveInProgress is returned when a save is requested while another one
// is still walking the tree. Callers retry after the first save returns.
var ErrSaveInProgress = errors.New("save already in progress")

// ErrStaleForm is returned when a form rendered for one node is submitted
// while another node is selected.
var ErrStaleForm = errors.New("form was rendered for another node")

// ValidationError reports a required relation or field missing at save
// time. It is raised before any backend call and leaves the tree as is.
type ValidationError struct {
	Entity NodeKind
	Name   string
	Fields []string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s %q: %s", e.Entity, e.Name, e.Reason)
}

// StructuralIntegrityError reports a selection or removal that references a
// node which cannot be resolved in the tree.
type StructuralIntegrityError struct {
	Selection Selection
	Reason    string
}

func (e *StructuralIntegrityError) Error() string {
	return fmt.Sprintf("%s %s: %s", e.Selection.Kind, e.Selection.TargetID, e.Reason)
}

// ServiceError wraps a failed backend call made while saving. Name is the
// display name of the entity the call was made for.
type ServiceError struct {
	Entity NodeKind
	Op     string // create, update, delete
	Name   string
	ID     ID
	Err    error
}

func (e *ServiceError) Error() string {
	if e.Name != "" {
		return fmt.Sprintf("%s %s %q: %v", e.Op, e.Entity, e.Name, e.Err)
	}
	return fmt.Sprintf("%s %s %s: %v", e.Op, e.Entity, e.ID, e.Err)
}

func (e *ServiceError) Unwrap() error { return e.Err }
