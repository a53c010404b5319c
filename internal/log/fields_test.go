package log

import (
	"errors"
	"testing"
)

func fieldMap(t *testing.T, f LogFields) map[string]any {
	t.Helper()
	slice := f.ToSlice()
	if len(slice)%2 != 0 {
		t.Fatalf("ToSlice() returned odd length %d", len(slice))
	}
	m := make(map[string]any, len(slice)/2)
	for i := 0; i < len(slice); i += 2 {
		key, ok := slice[i].(string)
		if !ok {
			t.Fatalf("key at %d is %T, want string", i, slice[i])
		}
		m[key] = slice[i+1]
	}
	return m
}

func TestLogFields_HTTPCall(t *testing.T) {
	tests := []struct {
		name        string
		statusCode  int
		wantSuccess bool
	}{
		{name: "ok response", statusCode: 200, wantSuccess: true},
		{name: "client error", statusCode: 404, wantSuccess: false},
		{name: "transport failure", statusCode: 0, wantSuccess: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := fieldMap(t, NewFields().WithHTTPCall("GET", "/transactions", tt.statusCode, 12))

			if m[FieldMethod] != "GET" {
				t.Errorf("%s = %v, want GET", FieldMethod, m[FieldMethod])
			}
			if m[FieldURL] != "/transactions" {
				t.Errorf("%s = %v, want /transactions", FieldURL, m[FieldURL])
			}
			if m[FieldStatusCode] != tt.statusCode {
				t.Errorf("%s = %v, want %d", FieldStatusCode, m[FieldStatusCode], tt.statusCode)
			}
			if m[FieldSuccess] != tt.wantSuccess {
				t.Errorf("%s = %v, want %v", FieldSuccess, m[FieldSuccess], tt.wantSuccess)
			}
		})
	}
}

func TestLogFields_Error(t *testing.T) {
	m := fieldMap(t, NewFields().WithError(errors.New("boom")))
	if m[FieldError] != "boom" {
		t.Errorf("%s = %v, want boom", FieldError, m[FieldError])
	}

	m = fieldMap(t, NewFields().WithError(nil))
	if _, ok := m[FieldError]; ok {
		t.Error("nil error should not add a field")
	}
}

func TestLogFields_Chaining(t *testing.T) {
	m := fieldMap(t, NewFields().
		WithComponent(ComponentStore).
		WithOperation(OpFetch).
		WithCollection("transactions", 3))

	if m[FieldComponent] != ComponentStore {
		t.Errorf("%s = %v", FieldComponent, m[FieldComponent])
	}
	if m[FieldOperation] != OpFetch {
		t.Errorf("%s = %v", FieldOperation, m[FieldOperation])
	}
	if m[FieldCollection] != "transactions" {
		t.Errorf("%s = %v", FieldCollection, m[FieldCollection])
	}
	if m[FieldItemCount] != 3 {
		t.Errorf("%s = %v", FieldItemCount, m[FieldItemCount])
	}
}
