package validators

import (
	"context"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"

	pkgerrors "github.com/zachbowman/brandboard-backend/pkg/errors"
)

func TestParseIDParam(t *testing.T) {
	cases := []struct {
		raw     string
		want    int64
		wantErr bool
	}{
		{"7", 7, false},
		{" 12 ", 12, false},
		{"0", 0, true},
		{"-3", 0, true},
		{"abc", 0, true},
		{"", 0, true},
	}
	for _, tc := range cases {
		req := httptest.NewRequest("GET", "/", nil)
		routeCtx := chi.NewRouteContext()
		routeCtx.URLParams.Add("id", tc.raw)
		req = req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, routeCtx))

		got, err := ParseIDParam(req, "id")
		if tc.wantErr {
			if typed := pkgerrors.As(err); typed == nil || typed.Code() != pkgerrors.CodeValidation {
				t.Errorf("%q: expected validation error, got %v", tc.raw, err)
			}
			continue
		}
		if err != nil {
			t.Errorf("%q: %v", tc.raw, err)
			continue
		}
		if got != tc.want {
			t.Errorf("%q: got %d, want %d", tc.raw, got, tc.want)
		}
	}
}

func TestQueryString(t *testing.T) {
	req := httptest.NewRequest("GET", "/?period=%20weekly%20", nil)
	if got := QueryString(req, "period"); got != "weekly" {
		t.Fatalf("got %q", got)
	}
	if got := QueryString(req, "missing"); got != "" {
		t.Fatalf("got %q", got)
	}
}
