package http

import (
	"errors"
	"strings"
	"testing"
)

func TestHex32Validation(t *testing.T) {
	type P struct {
		ApplicantID string `validate:"hex32"`
	}
	cv := NewValidator()

	// valid: 32-char lowercase hex
	ok := P{ApplicantID: strings.Repeat("a", 32)}
	if err := cv.Validate(ok); err != nil {
		t.Fatalf("expected valid hex32, got err: %v", err)
	}

	// invalid samples
	for _, s := range []string{
		"",                                  // empty
		strings.Repeat("A", 32),             // uppercase
		"deadbeef",                          // too short
		strings.Repeat("g", 32),             // non-hex char
		"3f9a6a1b3d544fbe8b3a6b3e8d6b2c8",   // 31 chars
		"3f9a6a1b3d544fbe8b3a6b3e8d6b2c88x", // 33 with extra
	} {
		bad := P{ApplicantID: s}
		err := cv.Validate(bad)
		if err == nil {
			t.Fatalf("expected error for %q", s)
		}
		fe := ToFieldErrors(err)
		if !containsFieldMsg(fe, "ApplicantID", "32-char lowercase hex") {
			t.Fatalf("expected hex32 message for %q, got: %+v", s, fe)
		}
	}
}

func TestDec2Validation(t *testing.T) {
	type P struct {
		Principal float64 `validate:"dec2"`
	}
	cv := NewValidator()

	for _, v := range []float64{1.29, 2.00, 0.9, 12000, 12000.55} {
		if err := cv.Validate(P{Principal: v}); err != nil {
			t.Fatalf("expected dec2 OK for %v, got %v", v, err)
		}
	}
	for _, v := range []float64{1.234, 2.9999} {
		err := cv.Validate(P{Principal: v})
		if err == nil {
			t.Fatalf("expected dec2 error for %v", v)
		}
		fe := ToFieldErrors(err)
		if !containsFieldMsg(fe, "Principal", "at most 2 decimal places") {
			t.Fatalf("expected 'at most 2 decimal places' for %v, got %+v", v, fe)
		}
	}
}

func TestRequiredAndBoundsMapping(t *testing.T) {
	type P struct {
		Purpose    string  `validate:"required"`
		TermMonths int     `validate:"gte=3"`
		RatePct    float64 `validate:"dec2,lte=36"`
	}
	cv := NewValidator()

	err := cv.Validate(P{
		Purpose:    "",     // required
		TermMonths: 2,      // gte=3
		RatePct:    36.555, // dec2 triggers before lte
	})
	if err == nil {
		t.Fatalf("expected validation errors")
	}
	fe := ToFieldErrors(err)

	if !containsFieldMsg(fe, "Purpose", "is required") {
		t.Fatalf("missing 'is required' for Purpose: %+v", fe)
	}
	if !containsFieldMsg(fe, "TermMonths", "greater than or equal to 3") {
		t.Fatalf("missing gte message for TermMonths: %+v", fe)
	}
	if !containsFieldMsg(fe, "RatePct", "at most 2 decimal places") {
		t.Fatalf("missing dec2 message for RatePct: %+v", fe)
	}
}

func TestDatetimeMapping(t *testing.T) {
	type P struct {
		PayoffDate string `validate:"required,datetime=2006-01-02"`
	}
	cv := NewValidator()

	if err := cv.Validate(P{PayoffDate: "2026-03-01"}); err != nil {
		t.Fatalf("expected valid date, got %v", err)
	}
	err := cv.Validate(P{PayoffDate: "01/03/2026"})
	if err == nil {
		t.Fatalf("expected datetime error")
	}
	fe := ToFieldErrors(err)
	if !containsFieldMsg(fe, "PayoffDate", "2006-01-02") {
		t.Fatalf("expected datetime message, got %+v", fe)
	}
}

func TestToFieldErrors_NonValidation(t *testing.T) {
	err := errors.New("boom")
	fe := ToFieldErrors(err)
	if len(fe) != 1 {
		t.Fatalf("expected 1 field error, got %d", len(fe))
	}
	if fe[0].Field != "_" || fe[0].Message != "boom" {
		t.Fatalf("unexpected mapping: %+v", fe[0])
	}
}
