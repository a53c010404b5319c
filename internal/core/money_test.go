package core

import (
	"encoding/json"
	"testing"
)

func TestParseDecimalToCents(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    int64
		wantErr bool
	}{
		{name: "dot separator", input: "12.34", want: 1234},
		{name: "comma separator", input: "12,34", want: 1234},
		{name: "integer", input: "12", want: 1200},
		{name: "single decimal", input: "12.3", want: 1230},
		{name: "rounds half up", input: "12.345", want: 1235},
		{name: "rounds down", input: "12.344", want: 1234},
		{name: "rounds up", input: "12.346", want: 1235},
		{name: "zero", input: "0", want: 0},
		{name: "leading dot", input: ".50", want: 50},
		{name: "negative", input: "-1.25", want: -125},
		{name: "whitespace", input: " 7.00 ", want: 700},
		{name: "empty", input: "", wantErr: true},
		{name: "letters", input: "abc", wantErr: true},
		{name: "two dots", input: "1.2.3", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseDecimalToCents(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseDecimalToCents(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if err == nil && got != tt.want {
				t.Errorf("ParseDecimalToCents(%q) = %d, want %d", tt.input, got, tt.want)
			}
		})
	}
}

func TestMoneyDecimal(t *testing.T) {
	tests := []struct {
		cents int64
		want  string
	}{
		{cents: 1234, want: "12.34"},
		{cents: 5, want: "0.05"},
		{cents: 0, want: "0.00"},
		{cents: -1234, want: "-12.34"},
		{cents: 100000, want: "1000.00"},
	}

	for _, tt := range tests {
		if got := Cents(tt.cents).Decimal(); got != tt.want {
			t.Errorf("Money{%d}.Decimal() = %q, want %q", tt.cents, got, tt.want)
		}
	}
}

func TestMoneyJSONRoundTrip(t *testing.T) {
	tests := []struct {
		name  string
		body  string
		cents int64
	}{
		{name: "number", body: `123.45`, cents: 12345},
		{name: "integer number", body: `200`, cents: 20000},
		{name: "quoted string", body: `"9.99"`, cents: 999},
		{name: "zero", body: `0`, cents: 0},
		{name: "null", body: `null`, cents: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var m Money
			if err := json.Unmarshal([]byte(tt.body), &m); err != nil {
				t.Fatalf("Unmarshal(%s): %v", tt.body, err)
			}
			if m.Cents != tt.cents {
				t.Errorf("Unmarshal(%s) = %d cents, want %d", tt.body, m.Cents, tt.cents)
			}
		})
	}

	out, err := json.Marshal(Cents(12345))
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	if string(out) != "123.45" {
		t.Errorf("Marshal = %s, want 123.45", out)
	}
}

func TestMoneyArithmetic(t *testing.T) {
	a := Cents(500)
	b := Cents(725)

	if got := a.Add(b); got.Cents != 1225 {
		t.Errorf("Add = %d, want 1225", got.Cents)
	}
	if got := a.Sub(b); got.Cents != -225 {
		t.Errorf("Sub = %d, want -225", got.Cents)
	}
	if !a.Sub(b).IsNegative() {
		t.Error("Sub result should be negative")
	}
	if a.IsNegative() {
		t.Error("positive amount reported negative")
	}
}
