// Vidrank - Video Search Enrichment and Ranking
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/vidrank

package validation

import (
	"strings"
	"testing"
)

func TestGetValidator_Singleton(t *testing.T) {
	v1 := GetValidator()
	v2 := GetValidator()

	if v1 == nil {
		t.Fatal("GetValidator() should not return nil")
	}
	if v1 != v2 {
		t.Error("GetValidator() should return the same singleton instance")
	}
}

type searchLike struct {
	Query      string `query:"query" validate:"required,notblank,max=20"`
	UploadDate string `query:"uploadDate" validate:"omitempty,oneof=all last_6_months before_6_months"`
	Limit      int    `json:"limit" validate:"min=0,max=50"`
	Internal   string `json:"-" validate:"omitempty,min=2"`
}

func TestValidateStruct_Valid(t *testing.T) {
	tests := []searchLike{
		{Query: "cats"},
		{Query: "cats", UploadDate: "last_6_months", Limit: 50},
		{Query: " dogs ", UploadDate: "all"},
	}
	for _, in := range tests {
		if err := ValidateStruct(&in); err != nil {
			t.Errorf("ValidateStruct(%+v) = %v, want nil", in, err)
		}
	}
}

func TestValidateStruct_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		input   searchLike
		field   string
		tag     string
		message string
	}{
		{"missing query", searchLike{}, "query", "required", "query is required"},
		{"blank query", searchLike{Query: "   "}, "query", "notblank", "query must not be blank"},
		{"long query", searchLike{Query: strings.Repeat("x", 21)}, "query", "max", "query must be at most 20 characters"},
		{"bad upload date", searchLike{Query: "a", UploadDate: "yesterday"}, "uploadDate", "oneof", "uploadDate must be one of: all last_6_months before_6_months"},
		{"json tag name", searchLike{Query: "a", Limit: 51}, "limit", "max", "limit must be at most 50"},
		{"dash tag falls back to field name", searchLike{Query: "a", Internal: "x"}, "Internal", "min", "Internal must be at least 2 characters"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateStruct(&tt.input)
			if err == nil {
				t.Fatal("expected validation error")
			}
			if !err.Has(tt.field, tt.tag) {
				t.Fatalf("errors %+v do not include %s/%s", err.Fields, tt.field, tt.tag)
			}
			if err.Error() != tt.message {
				t.Errorf("Error() = %q, want %q", err.Error(), tt.message)
			}
		})
	}
}

func TestRequestValidationError_Multiple(t *testing.T) {
	err := ValidateStruct(&searchLike{UploadDate: "x", Limit: -1})
	if err == nil || len(err.Fields) != 3 {
		t.Fatalf("ValidateStruct() = %+v, want 3 field errors", err)
	}
	if err.Fields[0].Field != "query" || err.Fields[1].Field != "uploadDate" {
		t.Errorf("fields out of struct order: %+v", err.Fields)
	}
	if msg := err.Error(); !strings.Contains(msg, "uploadDate: ") || strings.Count(msg, "; ") != 2 {
		t.Errorf("Error() = %q, want three field-prefixed parts", msg)
	}
	if err.Has("query", "max") {
		t.Error("Has matched a tag that did not fail")
	}
}

func TestRequestValidationError_Empty(t *testing.T) {
	ve := &RequestValidationError{}
	if ve.Error() != "validation failed" {
		t.Errorf("Error() = %q", ve.Error())
	}
	if ve.Has("query", "required") {
		t.Error("empty error reported a field")
	}
}
