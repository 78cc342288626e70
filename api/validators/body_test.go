package validators

import (
	"net/http/httptest"
	"strings"
	"testing"

	pkgerrors "github.com/zachbowman/brandboard-backend/pkg/errors"
)

type createPayload struct {
	Name    string `json:"name" validate:"required"`
	BrandID int64  `json:"brandId" validate:"required,gt=0"`
}

func TestDecodeJSONBodyValid(t *testing.T) {
	req := httptest.NewRequest("POST", "/", strings.NewReader(`{"name":"Summer Launch","brandId":1}`))

	var payload createPayload
	if err := DecodeJSONBody(req, &payload); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if payload.Name != "Summer Launch" || payload.BrandID != 1 {
		t.Fatalf("unexpected payload: %+v", payload)
	}
}

func TestDecodeJSONBodyMalformed(t *testing.T) {
	req := httptest.NewRequest("POST", "/", strings.NewReader(`{"name":`))

	var payload createPayload
	err := DecodeJSONBody(req, &payload)
	if typed := pkgerrors.As(err); typed == nil || typed.Code() != pkgerrors.CodeValidation {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestDecodeJSONBodyUnknownField(t *testing.T) {
	req := httptest.NewRequest("POST", "/", strings.NewReader(`{"name":"x","brandId":1,"surprise":true}`))

	var payload createPayload
	err := DecodeJSONBody(req, &payload)
	if typed := pkgerrors.As(err); typed == nil || typed.Code() != pkgerrors.CodeValidation {
		t.Fatalf("expected validation error for unknown field, got %v", err)
	}
}

func TestDecodeJSONBodyFieldDetailsUseJSONNames(t *testing.T) {
	req := httptest.NewRequest("POST", "/", strings.NewReader(`{"name":"x"}`))

	var payload createPayload
	err := DecodeJSONBody(req, &payload)
	typed := pkgerrors.As(err)
	if typed == nil || typed.Code() != pkgerrors.CodeValidation {
		t.Fatalf("expected validation error, got %v", err)
	}
	details, ok := typed.Details().(map[string]string)
	if !ok {
		t.Fatalf("expected field map details, got %T", typed.Details())
	}
	if _, present := details["brandId"]; !present {
		t.Fatalf("details must be keyed by json tag, got %v", details)
	}
}
