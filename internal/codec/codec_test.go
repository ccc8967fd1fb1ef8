package codec

import (
	"bytes"
	"testing"
)

func TestDecodeHex(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want []byte
	}{
		{"simple", "48656c6c6f", []byte("Hello")},
		{"with noise", "48:65:6c:6c:6f", []byte("Hello")},
		{"odd nibble trailing", "48656c6c6f4", []byte("Hello")},
		{"too short", "4", nil},
		{"empty", "", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := DecodeHex([]byte(tt.in))
			if !bytes.Equal(got, tt.want) {
				t.Errorf("DecodeHex(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestDecodeBinary(t *testing.T) {
	// "Hi" = 01001000 01101001
	got := DecodeBinary([]byte("01001000 01101001"))
	if !bytes.Equal(got, []byte("Hi")) {
		t.Errorf("DecodeBinary() = %q, want %q", got, "Hi")
	}
}

func TestDecodeBinaryIncomplete(t *testing.T) {
	if got := DecodeBinary([]byte("0100")); got != nil {
		t.Errorf("DecodeBinary() = %v, want nil for fewer than 8 bits", got)
	}
}

func TestDecodeOctal(t *testing.T) {
	// 'H' = 110 (0x48 = octal 110), 'i' = 151 (0x69 = octal 151)
	got := DecodeOctal([]byte("110151"))
	if !bytes.Equal(got, []byte("Hi")) {
		t.Errorf("DecodeOctal() = %q, want %q", got, "Hi")
	}
}

func TestDecodeOctalDropsOverflow(t *testing.T) {
	// 777 octal = 511, dropped; 101 octal = 65 = 'A'
	got := DecodeOctal([]byte("777101"))
	if !bytes.Equal(got, []byte("A")) {
		t.Errorf("DecodeOctal() = %q, want %q", got, "A")
	}
}

func TestDecodeBase64RoundTrip(t *testing.T) {
	got := DecodeBase64([]byte("SGVsbG8gV29ybGQ="))
	if !bytes.Equal(got, []byte("Hello World")) {
		t.Errorf("DecodeBase64() = %q, want %q", got, "Hello World")
	}
}

func TestDecodeBase64RejectsNonMultipleOf4(t *testing.T) {
	if got := DecodeBase64([]byte("SGVsbG8")); got != nil {
		t.Errorf("DecodeBase64() = %v, want nil for non-multiple-of-4 length", got)
	}
}

func TestDecodeBase64DiscardsZeroLength(t *testing.T) {
	if got := DecodeBase64([]byte("====")); got != nil {
		t.Errorf("DecodeBase64() = %v, want nil for all-padding input", got)
	}
}

func TestDecodeBase(t *testing.T) {
	tests := []struct {
		name string
		in   string
		base int
		want string
	}{
		{"binary", "1010", 2, "10"},
		{"hex lowercase", "ff", 16, "255"},
		{"hex uppercase", "FF", 16, "255"},
		{"base36", "z", 36, "35"},
		{"invalid digit", "129", 2, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := DecodeBase([]byte(tt.in), tt.base)
			if tt.want == "" {
				if got != nil {
					t.Errorf("DecodeBase(%q, %d) = %q, want nil", tt.in, tt.base, got)
				}
				return
			}
			if string(got) != tt.want {
				t.Errorf("DecodeBase(%q, %d) = %q, want %q", tt.in, tt.base, got, tt.want)
			}
		})
	}
}
