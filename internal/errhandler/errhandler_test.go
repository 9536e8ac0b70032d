package errhandler

import (
	"errors"
	"fmt"
	"testing"

	"github.com/AlecAivazis/survey/v2/terminal"
	"github.com/charmbracelet/huh"
)

func TestIsInterrupt(t *testing.T) {
	cases := []struct {
		err  error
		want bool
	}{
		{nil, false},
		{terminal.InterruptErr, true},
		{fmt.Errorf("prompt: %w", huh.ErrUserAborted), true},
		{errors.New("read: interrupt"), true},
		{errors.New("disk full"), false},
	}
	for _, tc := range cases {
		if got := IsInterrupt(tc.err); got != tc.want {
			t.Errorf("IsInterrupt(%v) = %v, want %v", tc.err, got, tc.want)
		}
	}
}

func TestCapitalize(t *testing.T) {
	if got := Capitalize("invalid date format"); got != "Invalid date format" {
		t.Errorf("Capitalize = %q", got)
	}
	if got := Capitalize(""); got != "" {
		t.Errorf("Capitalize(\"\") = %q", got)
	}
}
