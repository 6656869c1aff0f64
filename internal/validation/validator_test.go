// MovieBot - Movie Catalog and Recommendation Service
// Copyright 2026 Suhail (suhail100506)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/suhail100506/moviebot

package validation

import (
	"strings"
	"testing"
)

type sampleRequest struct {
	Username string  `validate:"required,min=3,max=32"`
	Email    string  `validate:"required,email"`
	Rating   float64 `validate:"gte=1,lte=5"`
}

func TestValidateStructPasses(t *testing.T) {
	req := sampleRequest{Username: "alice", Email: "alice@email.com", Rating: 4.5}
	if err := ValidateStruct(&req); err != nil {
		t.Errorf("ValidateStruct() = %v, want nil", err)
	}
}

func TestValidateStructFailures(t *testing.T) {
	tests := []struct {
		name      string
		req       sampleRequest
		wantField string
	}{
		{
			name:      "missing username",
			req:       sampleRequest{Email: "alice@email.com", Rating: 3},
			wantField: "Username",
		},
		{
			name:      "short username",
			req:       sampleRequest{Username: "ab", Email: "alice@email.com", Rating: 3},
			wantField: "Username",
		},
		{
			name:      "bad email",
			req:       sampleRequest{Username: "alice", Email: "not-an-email", Rating: 3},
			wantField: "Email",
		},
		{
			name:      "rating above bound",
			req:       sampleRequest{Username: "alice", Email: "alice@email.com", Rating: 5.5},
			wantField: "Rating",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateStruct(&tt.req)
			if err == nil {
				t.Fatal("ValidateStruct() = nil, want error")
			}

			found := false
			for _, fe := range err.Errors() {
				if fe.Field() == tt.wantField {
					found = true
				}
			}
			if !found {
				t.Errorf("no error for field %s in %v", tt.wantField, err)
			}
		})
	}
}

func TestToAPIError(t *testing.T) {
	req := sampleRequest{Username: "alice", Email: "alice@email.com", Rating: 9}
	err := ValidateStruct(&req)
	if err == nil {
		t.Fatal("ValidateStruct() = nil, want error")
	}

	apiErr := err.ToAPIError()
	if apiErr.Code != "VALIDATION_ERROR" {
		t.Errorf("code = %q, want VALIDATION_ERROR", apiErr.Code)
	}
	if !strings.Contains(apiErr.Message, "Rating") {
		t.Errorf("message %q does not mention Rating", apiErr.Message)
	}
	if apiErr.Details["field"] != "Rating" {
		t.Errorf("details field = %v, want Rating", apiErr.Details["field"])
	}
}

func TestToAPIErrorMultipleFields(t *testing.T) {
	req := sampleRequest{Rating: 0.5}
	err := ValidateStruct(&req)
	if err == nil {
		t.Fatal("ValidateStruct() = nil, want error")
	}
	if len(err.Errors()) < 2 {
		t.Fatalf("got %d errors, want at least 2", len(err.Errors()))
	}

	apiErr := err.ToAPIError()
	if _, ok := apiErr.Details["fields"]; !ok {
		t.Error("multi-error details must list fields")
	}
}

func TestGetValidatorSingleton(t *testing.T) {
	if GetValidator() != GetValidator() {
		t.Error("GetValidator() must return the same instance")
	}
}
