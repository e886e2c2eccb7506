package vrmodels

import (
	"errors"
	"fmt"
	"testing"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		code ErrorCode
		want Status
	}{
		{ErrorNone, StatusSuccess},
		{ErrorLoading, StatusLoading},
		{ErrorNotSupported, StatusFailure},
		{ErrorInvalidArg, StatusFailure},
		{ErrorInvalidModel, StatusFailure},
		{ErrorNoShapes, StatusFailure},
		{ErrorMultipleShapes, StatusFailure},
		{ErrorTooManyVertices, StatusFailure},
		{ErrorMultipleTextures, StatusFailure},
		{ErrorBufferTooSmall, StatusFailure},
		{ErrorNotEnoughNormals, StatusFailure},
		{ErrorNotEnoughTexCoords, StatusFailure},
		{ErrorInvalidTexture, StatusFailure},
		{ErrorCode(-1), StatusFailure},
		{ErrorCode(101), StatusFailure},
	}

	for _, tt := range tests {
		t.Run(tt.code.String(), func(t *testing.T) {
			if got := Classify(tt.code); got != tt.want {
				t.Errorf("Classify(%d) = %v, want %v", tt.code, got, tt.want)
			}
			if got := tt.code.IsLoading(); got != (tt.want == StatusLoading) {
				t.Errorf("%v.IsLoading() = %v", tt.code, got)
			}
		})
	}
}

func TestErrorCodeString(t *testing.T) {
	if got := ErrorInvalidModel.String(); got != "InvalidModel" {
		t.Errorf("String() = %q, want InvalidModel", got)
	}
	if got := ErrorCode(999).String(); got != "ErrorCode(999)" {
		t.Errorf("String() = %q, want ErrorCode(999)", got)
	}

}

func TestErrorCodeError(t *testing.T) {
	tests := []struct {
		code ErrorCode
		want string
	}{
		{ErrorNoShapes, "vrmodels: render model error NoShapes (302)"},
		{ErrorInvalidModel, "vrmodels: render model error InvalidModel (301)"},
		{ErrorCode(999), "vrmodels: render model error ErrorCode(999) (999)"},
	}

	for _, tt := range tests {
		t.Run(tt.code.String(), func(t *testing.T) {
			if got := tt.code.Error(); got != tt.want {
				t.Errorf("Error() = %q, want %q", got, tt.want)
			}
			if got := fmt.Sprintf("%v", error(tt.code)); got != tt.want {
				t.Errorf("%%v = %q, want %q", got, tt.want)
			}
			if got := fmt.Errorf("load: %w", tt.code).Error(); got != "load: "+tt.want {
				t.Errorf("wrapped = %q", got)
			}
		})
	}
}

func TestIsLoading(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{"nil", nil, false},
		{"loading", ErrorLoading, true},
		{"wrapped loading", fmt.Errorf("load: %w", ErrorLoading), true},
		{"terminal", ErrorInvalidModel, false},
		{"sentinel", ErrClosed, false},
		{"none", ErrorNone, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsLoading(tt.err); got != tt.want {
				t.Errorf("IsLoading(%v) = %v, want %v", tt.err, got, tt.want)
			}
		})
	}
}

func TestErrorCodeMatchesWithErrorsIs(t *testing.T) {
	err := fmt.Errorf("controller: %w", ErrorTooManyVertices)
	if !errors.Is(err, ErrorTooManyVertices) {
		t.Error("errors.Is should match a wrapped ErrorCode")
	}
	if errors.Is(err, ErrorInvalidModel) {
		t.Error("errors.Is matched a different ErrorCode")
	}

	var code ErrorCode
	if !errors.As(err, &code) || code != ErrorTooManyVertices {
		t.Errorf("errors.As() code = %v, want TooManyVertices", code)
	}
}

func TestStatusString(t *testing.T) {
	for s, want := range map[Status]string{
		StatusSuccess: "Success",
		StatusLoading: "Loading",
		StatusFailure: "Failure",
		Status(9):     "Unknown",
	} {
		if got := s.String(); got != want {
			t.Errorf("Status(%d).String() = %q, want %q", s, got, want)
		}
	}
}
