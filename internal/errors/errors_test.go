package errors

import (
	"errors"
	"fmt"
	"strings"
	"testing"
)

// TestSentinelErrors_Are verifies that sentinel errors are properly defined
// and can be checked with errors.Is()
func TestSentinelErrors_Are(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		sentinel error
	}{
		{"ErrIllegalMove", ErrIllegalMove, ErrIllegalMove},
		{"ErrInvalidNotation", ErrInvalidNotation, ErrInvalidNotation},
		{"ErrInvalidSquare", ErrInvalidSquare, ErrInvalidSquare},
		{"ErrInvalidPosition", ErrInvalidPosition, ErrInvalidPosition},
		{"ErrInvalidConfig", ErrInvalidConfig, ErrInvalidConfig},
		{"ErrUnknownCommand", ErrUnknownCommand, ErrUnknownCommand},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if !errors.Is(tt.err, tt.sentinel) {
				t.Errorf("errors.Is(%v, %v) = false, want true", tt.err, tt.sentinel)
			}
		})
	}
}

func TestSentinelErrors_Distinct(t *testing.T) {
	if errors.Is(ErrIllegalMove, ErrInvalidNotation) {
		t.Error("ErrIllegalMove matches ErrInvalidNotation")
	}
	if errors.Is(ErrInvalidSquare, ErrInvalidPosition) {
		t.Error("ErrInvalidSquare matches ErrInvalidPosition")
	}
}

// TestMoveError_Error verifies the error message format
func TestMoveError_Error(t *testing.T) {
	tests := []struct {
		name     string
		err      *MoveError
		contains []string
	}{
		{
			name:     "full context",
			err:      &MoveError{Err: ErrIllegalMove, Ply: 12, MoveText: "e1g1"},
			contains: []string{"ply 12", "e1g1", "illegal move"},
		},
		{
			name:     "cause only",
			err:      &MoveError{Err: ErrInvalidNotation},
			contains: []string{"invalid move notation"},
		},
		{
			name:     "no cause",
			err:      &MoveError{MoveText: "zz"},
			contains: []string{"zz"},
		},
		{
			name:     "empty",
			err:      &MoveError{},
			contains: []string{"move error"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			msg := tt.err.Error()
			for _, s := range tt.contains {
				if !strings.Contains(msg, s) {
					t.Errorf("MoveError.Error() = %q, should contain %q", msg, s)
				}
			}
		})
	}
}

// TestMoveError_Unwrap verifies that MoveError properly implements Unwrap
func TestMoveError_Unwrap(t *testing.T) {
	moveErr := &MoveError{Err: ErrIllegalMove, Ply: 1}

	if unwrapped := errors.Unwrap(moveErr); !errors.Is(unwrapped, ErrIllegalMove) {
		t.Errorf("Unwrap() = %v, want %v", unwrapped, ErrIllegalMove)
	}
	if !errors.Is(moveErr, ErrIllegalMove) {
		t.Error("errors.Is(moveErr, ErrIllegalMove) = false, want true")
	}
}

// TestMoveError_As verifies that errors.As works with MoveError
func TestMoveError_As(t *testing.T) {
	moveErr := &MoveError{Err: ErrIllegalMove, Ply: 24, MoveText: "e8c8"}
	wrapped := fmt.Errorf("session: %w", moveErr)

	var extracted *MoveError
	if !As(wrapped, &extracted) {
		t.Fatal("As(wrapped, &MoveError) = false, want true")
	}
	if extracted.Ply != 24 {
		t.Errorf("Ply = %d, want 24", extracted.Ply)
	}
	if extracted.MoveText != "e8c8" {
		t.Errorf("MoveText = %q, want %q", extracted.MoveText, "e8c8")
	}
}

func TestWrap(t *testing.T) {
	if Wrap(nil, "context") != nil {
		t.Error("Wrap(nil) should return nil")
	}
	if Wrapf(nil, "context %d", 1) != nil {
		t.Error("Wrapf(nil) should return nil")
	}

	err := Wrapf(ErrInvalidSquare, "%q", "i9")
	if !Is(err, ErrInvalidSquare) {
		t.Errorf("Is(%v, ErrInvalidSquare) = false, want true", err)
	}
	if want := `"i9": invalid square`; err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}
}
