package errors

import (
	"errors"
	"fmt"
	"net/http"
	"testing"
)

func TestErrorFormatting(t *testing.T) {
	tests := []struct {
		name string
		err  *Error
		want string
	}{
		{"new", New(ErrCodeInvalidGeometry, "radius must be positive, got %g", -1.0), "INVALID_GEOMETRY: radius must be positive, got -1"},
		{"wrap", Wrap(ErrCodeNetwork, errors.New("connection refused"), "fetch %s", "styles"), "NETWORK_ERROR: fetch styles: connection refused"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.want {
				t.Errorf("Error() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestWrapUnwraps(t *testing.T) {
	cause := errors.New("unexpected EOF")
	err := Wrap(ErrCodeInvalidCatalog, cause, "decode JSON catalog")

	if errors.Unwrap(err) != cause || !errors.Is(err, cause) {
		t.Error("wrapped cause should be reachable through the standard errors package")
	}
}

func TestCodeLookup(t *testing.T) {
	inner := New(ErrCodeInvalidStyle, "duplicate style %q", "Spooky")
	outer := Wrap(ErrCodeInvalidConfig, inner, "[catalog]")
	stdWrapped := fmt.Errorf("load config: %w", outer)

	tests := []struct {
		name     string
		err      error
		code     Code
		wantIs   bool
		wantCode Code
		wantMsg  string
	}{
		{"direct", inner, ErrCodeInvalidStyle, true, ErrCodeInvalidStyle, `duplicate style "Spooky"`},
		{"outermost code wins", outer, ErrCodeInvalidConfig, true, ErrCodeInvalidConfig, "[catalog]"},
		{"inner code hidden", outer, ErrCodeInvalidStyle, false, ErrCodeInvalidConfig, "[catalog]"},
		{"through fmt wrapping", stdWrapped, ErrCodeInvalidConfig, true, ErrCodeInvalidConfig, "[catalog]"},
		{"plain error", errors.New("boom"), ErrCodeInternal, false, "", "boom"},
		{"nil", nil, ErrCodeInternal, false, "", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Is(tt.err, tt.code); got != tt.wantIs {
				t.Errorf("Is(%s) = %v, want %v", tt.code, got, tt.wantIs)
			}
			if got := GetCode(tt.err); got != tt.wantCode {
				t.Errorf("GetCode() = %q, want %q", got, tt.wantCode)
			}
			if tt.err != nil {
				if got := UserMessage(tt.err); got != tt.wantMsg {
					t.Errorf("UserMessage() = %q, want %q", got, tt.wantMsg)
				}
			}
		})
	}
}

func TestCodeHTTPStatus(t *testing.T) {
	tests := map[Code]int{
		ErrCodeInvalidInput:    http.StatusBadRequest,
		ErrCodeInvalidGeometry: http.StatusBadRequest,
		ErrCodeInvalidStyle:    http.StatusBadRequest,
		ErrCodeNotFound:        http.StatusNotFound,
		ErrCodeNetwork:         http.StatusBadGateway,
		ErrCodeTimeout:         http.StatusGatewayTimeout,
		ErrCodeInternal:        http.StatusInternalServerError,
		"":                     http.StatusInternalServerError,
	}
	for code, want := range tests {
		if got := code.HTTPStatus(); got != want {
			t.Errorf("%q.HTTPStatus() = %d, want %d", code, got, want)
		}
	}
}
