package errors

import (
	"errors"
	"fmt"
	"strings"
	"testing"
)

func TestError_Error(t *testing.T) {
	tests := []struct {
		name    string
		err     *Error
		wantStr string
	}{
		{
			name: "simple error",
			err: &Error{
				Code:    "TEST_001",
				Message: "test error",
			},
			wantStr: "[TEST_001] test error",
		},
		{
			name: "error with cause",
			err: &Error{
				Code:    "TEST_002",
				Message: "wrapped error",
				Cause:   errors.New("underlying"),
			},
			wantStr: "[TEST_002] wrapped error: underlying",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.wantStr {
				t.Errorf("Error() = %q, want %q", got, tt.wantStr)
			}
		})
	}
}

func TestError_Unwrap(t *testing.T) {
	underlying := errors.New("underlying error")
	err := &Error{
		Code:    "TEST_001",
		Message: "test",
		Cause:   underlying,
	}

	if got := err.Unwrap(); got != underlying {
		t.Errorf("Unwrap() = %v, want %v", got, underlying)
	}
}

func TestError_Details(t *testing.T) {
	err := IOWriteError("/home/u/.config/npm-registry.txt", errors.New("read-only file system"))
	if err.Details["path"] != "/home/u/.config/npm-registry.txt" {
		t.Errorf("Details[path] = %v", err.Details["path"])
	}
}

func TestError_WithDetail(t *testing.T) {
	err := Newf("TEST_001", "test").
		WithDetail("key1", "value1").
		WithDetail("key2", 42)

	if err.Details["key1"] != "value1" {
		t.Errorf("Details[key1] = %v, want value1", err.Details["key1"])
	}
	if err.Details["key2"] != 42 {
		t.Errorf("Details[key2] = %v, want 42", err.Details["key2"])
	}
}

func TestWrapf(t *testing.T) {
	cause := errors.New("original")
	err := Wrapf("CODE_001", cause, "wrapped %s", "value")

	if err.Cause != cause {
		t.Errorf("Cause = %v, want %v", err.Cause, cause)
	}
	if err.Message != "wrapped value" {
		t.Errorf("Message = %s, want 'wrapped value'", err.Message)
	}
}

func TestHasCode(t *testing.T) {
	err := Newf("TEST_001", "test")
	if !HasCode(err, "TEST_001") {
		t.Error("HasCode(err, TEST_001) = false, want true")
	}
	if HasCode(err, "TEST_002") {
		t.Error("HasCode(err, TEST_002) = true, want false")
	}
	if HasCode(errors.New("plain"), "TEST_001") {
		t.Error("HasCode(regular error) = true, want false")
	}

	wrapped := fmt.Errorf("outer: %w", err)
	if !HasCode(wrapped, "TEST_001") {
		t.Error("HasCode should find code in wrapped error")
	}
}

func TestCode(t *testing.T) {
	if got := Code(Newf("TEST_001", "test")); got != "TEST_001" {
		t.Errorf("Code() = %s, want TEST_001", got)
	}
	if got := Code(errors.New("regular")); got != "" {
		t.Errorf("Code(regular) = %s, want empty", got)
	}
}

func TestFactoryFunctions(t *testing.T) {
	tests := []struct {
		name     string
		err      *Error
		wantCode string
	}{
		{"ConfigParse", ConfigParse("/s.toml", errors.New("err")), CodeConfigParse},
		{"ConfigInvalidValue", ConfigInvalidValue("field", "val", "reason"), CodeConfigInvalidValue},
		{"InputRead", InputRead("registry", errors.New("err")), CodeInputRead},
		{"SpawnFailed", SpawnFailed("npm", errors.New("err")), CodeNpmSpawnFailed},
		{"DecodeFailed", DecodeFailed("npm", "stdout"), CodeNpmDecodeFailed},
		{"IOReadError", IOReadError("/path", errors.New("err")), CodeIOReadError},
		{"IOWriteError", IOWriteError("/path", errors.New("err")), CodeIOWriteError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.err.Code != tt.wantCode {
				t.Errorf("%s Code = %s, want %s", tt.name, tt.err.Code, tt.wantCode)
			}
			if tt.err.Error() == "" {
				t.Errorf("%s Error() is empty", tt.name)
			}
		})
	}
}

func TestIOErrorsNamePath(t *testing.T) {
	path := "/home/u/.config/npm-registry.txt"
	for _, err := range []*Error{
		IOReadError(path, errors.New("permission denied")),
		IOWriteError(path, errors.New("read-only file system")),
	} {
		if !strings.Contains(err.Error(), path) {
			t.Errorf("Error() = %q, should name %s", err.Error(), path)
		}
	}
}

func TestErrorsUnwrapChain(t *testing.T) {
	root := errors.New("root cause")
	wrapped := Wrapf("WRAP_001", root, "wrapped")

	if !errors.Is(wrapped, root) {
		t.Error("errors.Is should find root cause")
	}
}
