package validator

import (
	"errors"
	"testing"
)

type sample struct {
	UID string `json:"uid" validate:"required"`
}

func TestFailedFieldsUsesJSONNames(t *testing.T) {
	err := New().Struct(sample{})
	if err == nil {
		t.Fatal("expected validation error for empty uid")
	}

	fields := FailedFields(err)
	if len(fields) != 1 || fields[0] != "uid:required" {
		t.Fatalf("unexpected failed fields: %#v", fields)
	}
}

func TestStructAcceptsPresentValue(t *testing.T) {
	if err := New().Struct(sample{UID: "abc123"}); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
}

func TestFailedFieldsIgnoresOtherErrors(t *testing.T) {
	if fields := FailedFields(errors.New("boom")); fields != nil {
		t.Fatalf("expected nil, got %#v", fields)
	}
}
