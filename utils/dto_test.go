package utils

import (
	"reflect"
	"strings"
	"testing"
)

func TestRound2(t *testing.T) {
	tests := []struct {
		in   float64
		want float64
	}{
		{1.005, 1.0},
		{1.015, 1.01},
		{3333.333333, 3333.33},
		{0, 0},
		{-2.34, -2.34},
	}
	for _, tt := range tests {
		if got := Round2(tt.in); got != tt.want {
			t.Errorf("Round2(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestNormalizeDTO(t *testing.T) {
	type dto struct {
		Name   string
		Amount float64
	}
	d := dto{Name: "  padded  ", Amount: 12.345}
	NormalizeDTO(&d)
	if d.Name != "padded" {
		t.Errorf("Name = %q, want trimmed", d.Name)
	}
	if d.Amount != 12.35 {
		t.Errorf("Amount = %v, want 12.35", d.Amount)
	}
}

func TestUpdatesFromPtrDTO(t *testing.T) {
	type patch struct {
		FullName *string  `json:"full_name"`
		Phone    *string  `json:"phone"`
		Amount   *float64 `json:"amount"`
		Hidden   *string  `json:"-"`
	}
	name := "A"
	amount := 5.0
	hidden := "x"
	p := patch{FullName: &name, Amount: &amount, Hidden: &hidden}

	got := UpdatesFromPtrDTO(&p, nil)
	want := map[string]any{"full_name": "A", "amount": 5.0}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("updates = %v, want %v", got, want)
	}
}

func TestParseIntDefault(t *testing.T) {
	tests := []struct {
		in   string
		def  int
		want int
	}{
		{"5", 1, 5},
		{" 12 ", 1, 12},
		{"-3", 1, 1},
		{"abc", 7, 7},
		{"", 9, 9},
	}
	for _, tt := range tests {
		if got := ParseIntDefault(tt.in, tt.def); got != tt.want {
			t.Errorf("ParseIntDefault(%q, %d) = %d, want %d", tt.in, tt.def, got, tt.want)
		}
	}
}

func TestReceiptNumber(t *testing.T) {
	r := ReceiptNumber()
	if !strings.HasPrefix(r, "RCP-") {
		t.Errorf("receipt %q missing prefix", r)
	}
	if r == ReceiptNumber() {
		t.Error("consecutive receipt numbers collided")
	}
}
