package dotbracket

import (
	"errors"
	"reflect"
	"testing"
)

func TestValidate(t *testing.T) {
	tests := []struct {
		in   string
		want error
		pos  int
	}{
		{"", nil, 0},
		{"...", nil, 0},
		{"((..))", nil, 0},
		{"(()())..", nil, 0},
		{"((a))", ErrInvalidAlphabet, 2},
		{"[..]", ErrInvalidAlphabet, 0},
		{")(x", ErrInvalidAlphabet, 2},
		{"(()", ErrUnbalanced, 0},
		{"())", ErrUnbalanced, 2},
		{")(", ErrUnbalanced, 0},
		{"()..((", ErrUnbalanced, 4},
	}
	for _, tt := range tests {
		err := Validate(tt.in)
		if tt.want == nil {
			if err != nil {
				t.Fatalf("Validate(%q): unexpected %v", tt.in, err)
			}
			if !IsValid(tt.in) {
				t.Fatalf("IsValid(%q) = false", tt.in)
			}
			continue
		}
		if !errors.Is(err, tt.want) {
			t.Fatalf("Validate(%q) = %v, want %v", tt.in, err, tt.want)
		}
		var ve *Error
		if !errors.As(err, &ve) || ve.Pos != tt.pos {
			t.Fatalf("Validate(%q): want position %d, got %+v", tt.in, tt.pos, ve)
		}
		if IsValid(tt.in) {
			t.Fatalf("IsValid(%q) = true", tt.in)
		}
	}
}

func TestCountsAndNormalize(t *testing.T) {
	o, c, u := Counts("((..)).")
	if o != 2 || c != 2 || u != 3 {
		t.Fatalf("Counts = %d %d %d", o, c, u)
	}
	if got := Normalize(" (..)\r\n"); got != "(..)" {
		t.Fatalf("Normalize = %q", got)
	}
}

func TestPairTable(t *testing.T) {
	got, err := PairTable("((.)).")
	if err != nil {
		t.Fatalf("PairTable: %v", err)
	}
	want := []int{4, 3, -1, 1, 0, -1}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("PairTable = %v, want %v", got, want)
	}
	if _, err := PairTable("(("); err == nil {
		t.Fatalf("PairTable((( ): expected error")
	}
}
