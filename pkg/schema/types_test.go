package schema

import "testing"

func TestStringType(t *testing.T) {
	typ := String()

	if typ.Name() != "string" {
		t.Errorf("Name() = %q, want %q", typ.Name(), "string")
	}

	tests := []struct {
		value   any
		wantErr bool
	}{
		{"hello", false},
		{"", false},
		{42, true},
		{true, true},
		{nil, true},
	}

	for _, tt := range tests {
		err := typ.Validate(tt.value)
		if (err != nil) != tt.wantErr {
			t.Errorf("Validate(%v) error = %v, wantErr %v", tt.value, err, tt.wantErr)
		}
	}
}

func TestNonBlankType(t *testing.T) {
	typ := NonBlank()

	tests := []struct {
		value   any
		wantErr bool
	}{
		{"x", false},
		{" padded ", false},
		{"", true},
		{"   ", true},
		{7, true},
	}

	for _, tt := range tests {
		err := typ.Validate(tt.value)
		if (err != nil) != tt.wantErr {
			t.Errorf("Validate(%q) error = %v, wantErr %v", tt.value, err, tt.wantErr)
		}
	}
}

func TestBoolType_Strict(t *testing.T) {
	typ := Bool()

	tests := []struct {
		value   any
		wantErr bool
	}{
		{true, false},
		{false, false},
		{"true", true},
		{1, true},
		{nil, true},
	}

	for _, tt := range tests {
		err := typ.Validate(tt.value)
		if (err != nil) != tt.wantErr {
			t.Errorf("Validate(%v) error = %v, wantErr %v", tt.value, err, tt.wantErr)
		}
	}
}

func TestEnumType(t *testing.T) {
	typ := Enum("read", "write")

	if typ.Name() != "enum(read|write)" {
		t.Errorf("Name() = %q", typ.Name())
	}

	tests := []struct {
		value   any
		wantErr bool
	}{
		{"read", false},
		{"write", false},
		{"READ", true},
		{"none", true},
		{true, true},
	}

	for _, tt := range tests {
		err := typ.Validate(tt.value)
		if (err != nil) != tt.wantErr {
			t.Errorf("Validate(%v) error = %v, wantErr %v", tt.value, err, tt.wantErr)
		}
	}

	values := typ.Values()
	values[0] = "mutated"
	if typ.Values()[0] != "read" {
		t.Error("Values() must return a copy")
	}
}

func TestMapType(t *testing.T) {
	typ := Map()

	if err := typ.Validate(map[string]any{"path": "/a"}); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
	if err := typ.Validate("/a"); err == nil {
		t.Error("expected error for string")
	}
}
