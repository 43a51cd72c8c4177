package middleware

import (
	"testing"
)

type priceRangeForm struct {
	Min string `validate:"required"`
	Max string `validate:"required"`
}

func TestValidateRequest_Valid(t *testing.T) {
	form := priceRangeForm{Min: "5.00", Max: "20.00"}

	if err := ValidateRequest(form); err != nil {
		t.Errorf("Expected valid form, got error: %v", err)
	}
}

func TestValidateRequest_MissingFields(t *testing.T) {
	form := priceRangeForm{Min: "5.00"}

	err := ValidateRequest(form)
	if err == nil {
		t.Fatal("Expected validation error for missing Max")
	}

	errors := FormatValidationErrors(err)
	if len(errors) != 1 {
		t.Fatalf("Expected 1 validation error, got %d", len(errors))
	}
	if errors[0].Field != "Max" {
		t.Errorf("Expected error on Max, got %q", errors[0].Field)
	}
	if errors[0].Message != "This field is required" {
		t.Errorf("Unexpected message: %q", errors[0].Message)
	}
}

func TestFormatValidationErrors_BoundTags(t *testing.T) {
	type limited struct {
		Limit int `validate:"gte=1,lte=100"`
	}

	err := ValidateRequest(limited{Limit: 0})
	if err == nil {
		t.Fatal("Expected validation error")
	}

	errors := FormatValidationErrors(err)
	if len(errors) != 1 {
		t.Fatalf("Expected 1 validation error, got %d", len(errors))
	}
	if errors[0].Message != "Value must be greater than or equal to 1" {
		t.Errorf("Unexpected message: %q", errors[0].Message)
	}
}

func TestFormatValidationErrors_NonValidatorError(t *testing.T) {
	errors := FormatValidationErrors(errDummy{})
	if len(errors) != 0 {
		t.Errorf("Expected no formatted errors, got %d", len(errors))
	}
}

type errDummy struct{}

func (errDummy) Error() string { return "dummy" }
