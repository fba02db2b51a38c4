package core

import (
	"errors"
	"fmt"
	"testing"
)

func TestErrorConstructorsWrapSentinels(t *testing.T) {
	cases := []struct {
		name     string
		err      error
		sentinel error
		check    func(error) bool
	}{
		{"condition not found", NewConditionNotFound("news"), ErrConditionNotFound, IsConditionNotFound},
		{"source unavailable", NewSourceUnavailable("1789.txt", errors.New("no such file")), ErrSourceUnavailable, IsSourceUnavailable},
		{"malformed selection", NewMalformedSelection("blank sample label"), ErrMalformedSelection, IsMalformedSelection},
		{"render sink failure", NewRenderSinkFailure(errors.New("disk full")), ErrRenderSinkFailure, IsRenderSinkFailure},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if !errors.Is(tc.err, tc.sentinel) {
				t.Errorf("expected %v to wrap %v", tc.err, tc.sentinel)
			}
			if !tc.check(tc.err) {
				t.Errorf("helper rejected %v", tc.err)
			}
		})
	}
}

func TestErrorHelpersRejectOtherErrors(t *testing.T) {
	err := errors.New("unrelated")
	if IsConditionNotFound(err) || IsSourceUnavailable(err) || IsMalformedSelection(err) || IsRenderSinkFailure(err) {
		t.Errorf("helpers matched an unrelated error")
	}
}

func TestSourceUnavailableWithoutCause(t *testing.T) {
	err := NewSourceUnavailable("counts.db", nil)
	if !IsSourceUnavailable(err) {
		t.Fatalf("expected source-unavailable, got %v", err)
	}
	wrapped := fmt.Errorf("loading backend: %w", err)
	if !IsSourceUnavailable(wrapped) {
		t.Errorf("wrapping lost the sentinel: %v", wrapped)
	}
}
