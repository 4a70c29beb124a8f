package usecase

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"

	"campaign-editor/internal/core/domain"
	"campaign-editor/internal/core/port"
)

// Command is an editor action addressed by name, as issued by the tree
// view, breadcrumbs and form buttons of the UI.
type Command func(ctx context.Context, s *Session, args json.RawMessage) error

type (
	saveArgs struct {
		Force bool `json:"force"`
	}
	addCreativeArgs struct {
		AdGroupID domain.ID `json:"ad_group_id"`
	}
)

func defaultCommands() map[string]Command {
	return map[string]Command{
		"select":                        selectCommand,
		"go_back":                       goBackCommand,
		"add_ad_group":                  addAdGroupCommand,
		"add_creative":                  addCreativeCommand,
		"remove":                        removeCommand,
		"save":                          saveCommand,
		"save_and_add_ad_group":         saveAndAddAdGroupCommand,
		"save_and_add_creative":         saveAndAddCreativeCommand,
		"save_and_add_another_creative": saveAndAddAnotherCreativeCommand,
	}
}

func decodeArgs(args json.RawMessage, v any) error {
	if len(bytes.TrimSpace(args)) == 0 {
		return nil
	}
	if err := json.Unmarshal(args, v); err != nil {
		return fmt.Errorf("%w: %v", port.ErrInvalidArguments, err)
	}
	return nil
}

func selectCommand(_ context.Context, s *Session, args json.RawMessage) error {
	var sel domain.Selection
	if err := decodeArgs(args, &sel); err != nil {
		return err
	}
	return s.Select(sel)
}

func goBackCommand(_ context.Context, s *Session, _ json.RawMessage) error {
	_, err := s.GoBack()
	return err
}

func addAdGroupCommand(_ context.Context, s *Session, _ json.RawMessage) error {
	_, err := s.AddAdGroup()
	return err
}

func addCreativeCommand(_ context.Context, s *Session, args json.RawMessage) error {
	var a addCreativeArgs
	if err := decodeArgs(args, &a); err != nil {
		return err
	}
	_, err := s.AddCreative(a.AdGroupID)
	return err
}

func removeCommand(_ context.Context, s *Session, args json.RawMessage) error {
	// Without arguments the displayed node is removed.
	if len(bytes.TrimSpace(args)) == 0 {
		return s.Remove(s.currentSelection())
	}
	var sel domain.Selection
	if err := decodeArgs(args, &sel); err != nil {
		return err
	}
	return s.Remove(sel)
}

func saveCommand(ctx context.Context, s *Session, args json.RawMessage) error {
	var a saveArgs
	if err := decodeArgs(args, &a); err != nil {
		return err
	}
	_, err := s.Save(ctx, a.Force)
	return err
}

// The save-and-add commands always persist: the node added next needs its
// parent to carry a Saved identifier.

func saveAndAddAdGroupCommand(ctx context.Context, s *Session, _ json.RawMessage) error {
	if _, err := s.Save(ctx, true); err != nil {
		return err
	}
	_, err := s.AddAdGroup()
	return err
}

func saveAndAddCreativeCommand(ctx context.Context, s *Session, _ json.RawMessage) error {
	if _, err := s.Save(ctx, true); err != nil {
		return err
	}
	sel := s.currentSelection()
	if sel.Kind != domain.KindAdGroup {
		return &domain.StructuralIntegrityError{Selection: sel, Reason: "no ad group selected"}
	}
	_, err := s.AddCreative(sel.TargetID)
	return err
}

func saveAndAddAnotherCreativeCommand(ctx context.Context, s *Session, _ json.RawMessage) error {
	if _, err := s.Save(ctx, true); err != nil {
		return err
	}
	sel := s.currentSelection()
	if sel.Kind != domain.KindCreative {
		return &domain.StructuralIntegrityError{Selection: sel, Reason: "no creative selected"}
	}
	_, err := s.AddCreative(sel.ParentAdGroupID)
	return err
}
