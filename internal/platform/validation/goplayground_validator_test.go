package validation_test

import (
	"strings"
	"testing"

	"github.com/ferdiebergado/notesvc/internal/platform/validation"
)

func TestGoplaygroundValidator_ValidateStruct(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		given    any
		field    string
		hasError bool
		errMsg   string
	}{
		{"Required field is present", struct {
			Text string `json:"text" validate:"required"`
		}{Text: "buy milk"}, "text", false, ""},
		{"Required field is missing", struct {
			Text string `json:"text" validate:"required"`
		}{}, "text", true, "text is required"},
		{"Field within max length", struct {
			Text string `json:"text" validate:"max=10"`
		}{Text: "short"}, "text", false, ""},
		{"Field exceeds max length", struct {
			Text string `json:"text" validate:"max=10"`
		}{Text: strings.Repeat("a", 11)}, "text", true, "text must be at most 10 characters long"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			v := validation.NewGoPlaygroundValidator()

			errs := v.ValidateStruct(tc.given)
			if errs != nil && !tc.hasError {
				t.Errorf("v.ValidateStruct(%v) = %+v, want: %+v", tc.given, errs, nil)
			}

			gotMsg, wantMsg := errs[tc.field], tc.errMsg
			if gotMsg != wantMsg {
				t.Errorf("errs[%q] = %q, want: %q", tc.field, gotMsg, wantMsg)
			}
		})
	}
}
