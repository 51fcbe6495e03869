package errors

import (
	"errors"
	"testing"
)

func TestNew(t *testing.T) {
	err := New(ErrCodeParse, "test message: %s", "value")

	if err.Code != ErrCodeParse {
		t.Errorf("Code = %v, want %v", err.Code, ErrCodeParse)
	}

	if err.Message != "test message: value" {
		t.Errorf("Message = %v, want %v", err.Message, "test message: value")
	}

	expected := "PARSE_ERROR: test message: value"
	if err.Error() != expected {
		t.Errorf("Error() = %v, want %v", err.Error(), expected)
	}
}

func TestWrap(t *testing.T) {
	cause := errors.New("underlying error")
	err := Wrap(ErrCodeNetwork, cause, "failed to fetch")

	if err.Code != ErrCodeNetwork {
		t.Errorf("Code = %v, want %v", err.Code, ErrCodeNetwork)
	}

	if err.Cause != cause {
		t.Errorf("Cause = %v, want %v", err.Cause, cause)
	}

	if errors.Unwrap(err) != cause {
		t.Errorf("Unwrap() = %v, want %v", errors.Unwrap(err), cause)
	}

	if !errors.Is(err, cause) {
		t.Error("errors.Is(err, cause) = false, want true")
	}

	expected := "NETWORK_ERROR: failed to fetch: underlying error"
	if err.Error() != expected {
		t.Errorf("Error() = %v, want %v", err.Error(), expected)
	}
}

func TestIs(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		code     Code
		expected bool
	}{
		{"matching code", New(ErrCodeInput, "test"), ErrCodeInput, true},
		{"non-matching code", New(ErrCodeInput, "test"), ErrCodeNetwork, false},
		{"wrapped error", Wrap(ErrCodeNetwork, New(ErrCodeInput, "inner"), "outer"), ErrCodeNetwork, true},
		{"non-Error type", errors.New("plain error"), ErrCodeInput, false},
		{"nil error", nil, ErrCodeInput, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Is(tt.err, tt.code); got != tt.expected {
				t.Errorf("Is() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestStage(t *testing.T) {
	tests := []struct {
		err  error
		want string
	}{
		{New(ErrCodeInput, "x"), "read input"},
		{New(ErrCodeParse, "x"), "parse tree"},
		{New(ErrCodeNetwork, "x"), "query registry"},
		{New(ErrCodeResponseFormat, "x"), "decode registry response"},
		{New(ErrCodeOutput, "x"), "write report"},
		{errors.New("plain"), ""},
	}

	for _, tt := range tests {
		if got := Stage(tt.err); got != tt.want {
			t.Errorf("Stage(%v) = %q, want %q", tt.err, got, tt.want)
		}
	}
}

func TestUserMessage(t *testing.T) {
	if got := UserMessage(New(ErrCodeOutput, "closed pipe")); got != "closed pipe" {
		t.Errorf("UserMessage() = %q", got)
	}
	wrapped := Wrap(ErrCodeInput, errors.New("no such file"), "open deps.json")
	if got := UserMessage(wrapped); got != "open deps.json: no such file" {
		t.Errorf("UserMessage() = %q", got)
	}
	if got := UserMessage(errors.New("plain")); got != "plain" {
		t.Errorf("UserMessage() = %q", got)
	}
}

func TestValidateCoordinate(t *testing.T) {
	tests := []struct {
		value   string
		wantErr bool
	}{
		{"com.google.guava", false},
		{"31.1-jre", false},
		{"", true},
		{"   ", true},
		{"bad\x00value", true},
		{"a,b", true},
		{"a:b", true},
		{string(make([]byte, 300)), true},
	}

	for _, tt := range tests {
		err := ValidateCoordinate("groupId", tt.value)
		if (err != nil) != tt.wantErr {
			t.Errorf("ValidateCoordinate(%q) error = %v, wantErr %v", tt.value, err, tt.wantErr)
		}
		if err != nil && !Is(err, ErrCodeParse) {
			t.Errorf("ValidateCoordinate(%q) code = %v, want %v", tt.value, GetCode(err), ErrCodeParse)
		}
	}
}

func TestPrefix(t *testing.T) {
	cause := errors.New("connection refused")
	err := Prefix(Wrap(ErrCodeNetwork, cause, "GET /select"), "lookup %s", "g:a")

	if !Is(err, ErrCodeNetwork) {
		t.Errorf("Prefix() lost code: %v", err)
	}
	if !errors.Is(err, cause) {
		t.Error("Prefix() lost cause")
	}
	want := "NETWORK_ERROR: lookup g:a: GET /select: connection refused"
	if err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}

	plain := Prefix(cause, "dial")
	if plain.Error() != "dial: connection refused" || !errors.Is(plain, cause) {
		t.Errorf("Prefix() on plain error = %v", plain)
	}
}
