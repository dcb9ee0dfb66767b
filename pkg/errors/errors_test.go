package errors

import (
	"errors"
	"fmt"
	"strings"
	"testing"
)

func TestNew_PopulatesCodeMessageStack(t *testing.T) {
	err := New(ErrCodeBoundaryNotFound, "no boundary matches")
	if err.Code != ErrCodeBoundaryNotFound {
		t.Fatalf("Code = %s, want %s", err.Code, ErrCodeBoundaryNotFound)
	}
	if err.Message != "no boundary matches" {
		t.Fatalf("Message = %q", err.Message)
	}
	if err.Stack == "" {
		t.Fatal("Stack should be captured")
	}
}

func TestError_Format(t *testing.T) {
	tests := []struct {
		name string
		err  *AppError
		want string
	}{
		{
			name: "without detail",
			err:  &AppError{Code: ErrCodeInputFormat, Message: "bad file"},
			want: "[TAB_001] bad file",
		},
		{
			name: "with detail",
			err:  &AppError{Code: ErrCodeInputFormat, Message: "bad file", Detail: "data.xlsx"},
			want: "[TAB_001] bad file: data.xlsx",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.want {
				t.Errorf("Error() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestWrap_NilReturnsNil(t *testing.T) {
	if Wrap(nil, ErrCodeDatabaseError, "query failed") != nil {
		t.Fatal("Wrap(nil, ...) should return nil")
	}
}

func TestWrap_PreservesCodeOnUnknown(t *testing.T) {
	inner := New(ErrCodeUpstreamFetch, "status 503")
	wrapped := Wrap(inner, ErrCodeUnknown, "fetch AHH series")
	if wrapped.Code != ErrCodeUpstreamFetch {
		t.Fatalf("Code = %s, want preserved %s", wrapped.Code, ErrCodeUpstreamFetch)
	}
}

func TestWrap_ChainTraversal(t *testing.T) {
	root := fmt.Errorf("connection refused")
	wrapped := Wrap(root, ErrCodeDatabaseError, "save analysis")
	if !errors.Is(wrapped, root) {
		t.Fatal("errors.Is should find the root cause")
	}
	var ae *AppError
	if !errors.As(wrapped, &ae) {
		t.Fatal("errors.As should find the AppError")
	}
}

func TestIsCode_NestedChain(t *testing.T) {
	inner := New(ErrCodeResultNotFound, "missing document")
	outer := Wrap(inner, ErrCodeInternal, "get result")
	if !IsCode(outer, ErrCodeResultNotFound) {
		t.Fatal("IsCode should traverse the chain")
	}
	if IsCode(outer, ErrCodeCacheError) {
		t.Fatal("IsCode matched an absent code")
	}
}

func TestPredicates(t *testing.T) {
	tests := []struct {
		name string
		err  error
		pred func(error) bool
		want bool
	}{
		{"not found generic", NotFound("x"), IsNotFound, true},
		{"not found boundary", New(ErrCodeBoundaryNotFound, "x"), IsNotFound, true},
		{"not found result", New(ErrCodeResultNotFound, "x"), IsNotFound, true},
		{"validation direct", NewValidation("missing dep"), IsValidation, true},
		{"validation input format", New(ErrCodeInputFormat, "x"), IsValidation, true},
		{"validation too few columns", New(ErrCodeTooFewColumns, "x"), IsValidation, true},
		{"upstream config", New(ErrCodeUpstreamConfig, "x"), IsUpstream, true},
		{"upstream fetch", New(ErrCodeUpstreamFetch, "x"), IsUpstream, true},
		{"persistence", New(ErrCodeResultSaveFailed, "x"), IsPersistence, true},
		{"not found is not validation", NotFound("x"), IsValidation, false},
		{"plain error", errors.New("plain"), IsNotFound, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.pred(tt.err); got != tt.want {
				t.Errorf("predicate = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestWithDetail_DoesNotMutateReceiver(t *testing.T) {
	base := New(ErrCodeInputFormat, "bad file")
	detailed := base.WithDetail("row 7")
	if base.Detail != "" {
		t.Fatal("WithDetail mutated the receiver")
	}
	if detailed.Detail != "row 7" {
		t.Fatalf("Detail = %q", detailed.Detail)
	}
}

func TestGetCode(t *testing.T) {
	if GetCode(nil) != CodeOK {
		t.Fatal("GetCode(nil) should be CodeOK")
	}
	if GetCode(errors.New("plain")) != ErrCodeUnknown {
		t.Fatal("GetCode(plain) should be ErrCodeUnknown")
	}
	if GetCode(New(ErrCodeUpstreamParse, "x")) != ErrCodeUpstreamParse {
		t.Fatal("GetCode should return the AppError code")
	}
}

func TestCaptureStack_ExcludesRuntimeFrames(t *testing.T) {
	err := New(ErrCodeInternal, "boom")
	if strings.Contains(err.Stack, "runtime/") {
		t.Fatalf("stack contains runtime frames: %s", err.Stack)
	}
}
