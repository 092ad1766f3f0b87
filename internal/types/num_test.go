package types

import (
	"math"
	"testing"

	"github.com/goccy/go-json"
)

func TestNumUnmarshalLenient(t *testing.T) {
	tests := []struct {
		name      string
		in        string
		want      float64
		wantValid bool
	}{
		{"integer", `12`, 12, true},
		{"float", `0.25`, 0.25, true},
		{"negative", `-3`, -3, true},
		{"exponent", `1e3`, 1000, true},
		{"null", `null`, 0, false},
		{"string", `"12"`, 0, false},
		{"bool", `true`, 0, false},
		{"object", `{"v":1}`, 0, false},
		{"array", `[1]`, 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var row struct {
				V Num `json:"v"`
			}
			if err := json.Unmarshal([]byte(`{"v":`+tt.in+`}`), &row); err != nil {
				t.Fatalf("Unmarshal() error = %v", err)
			}
			got, ok := row.V.Float()
			if ok != tt.wantValid || got != tt.want {
				t.Errorf("Float() = %v, %v, want %v, %v", got, ok, tt.want, tt.wantValid)
			}
		})
	}
}

func TestNumMarshal(t *testing.T) {
	tests := []struct {
		in   Num
		want string
	}{
		{NumOf(1.5), `1.5`},
		{NumOf(100), `100`},
		{Num{}, `null`},
		{NumOf(math.NaN()), `null`},
		{Num{Value: math.Inf(1), Valid: true}, `null`},
	}
	for _, tt := range tests {
		out, err := json.Marshal(tt.in)
		if err != nil {
			t.Fatalf("Marshal(%+v) error = %v", tt.in, err)
		}
		if string(out) != tt.want {
			t.Errorf("Marshal(%+v) = %s, want %s", tt.in, out, tt.want)
		}
	}
}

func TestParseNum(t *testing.T) {
	tests := []struct {
		in        string
		want      float64
		wantValid bool
	}{
		{"42", 42, true},
		{" 3.5 ", 3.5, true},
		{"1,234", 1234, true},
		{"1,234,567.5", 1234567.5, true},
		{"", 0, false},
		{"n/a", 0, false},
		{"NaN", 0, false},
		{"Inf", 0, false},
	}
	for _, tt := range tests {
		got, ok := ParseNum(tt.in).Float()
		if ok != tt.wantValid || got != tt.want {
			t.Errorf("ParseNum(%q) = %v, %v, want %v, %v", tt.in, got, ok, tt.want, tt.wantValid)
		}
	}
}

func TestNumPtr(t *testing.T) {
	if p := (Num{}).Ptr(); p != nil {
		t.Errorf("Ptr() of null = %v, want nil", *p)
	}
	if p := NumOf(7).Ptr(); p == nil || *p != 7 {
		t.Errorf("Ptr() = %v, want 7", p)
	}
}
