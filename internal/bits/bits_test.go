package bits_test

import (
	"testing"

	"github.com/lookbusy1344/arm-emulator/internal/bits"
)

func TestSlice(t *testing.T) {
	tests := []struct {
		name    string
		word    uint32
		high    int
		width   int
		want    string
		wantErr bool
	}{
		{name: "opcode of add x10,x11,x12", word: 0x00c58533, high: 6, width: 7, want: "0110011"},
		{name: "rd field", word: 0x00c58533, high: 11, width: 5, want: "01010"},
		{name: "full word low bit", word: 0xFFFFFFFF, high: 0, width: 1, want: "1"},
		{name: "zero width fails", word: 0, high: 5, width: 0, wantErr: true},
		{name: "high out of range fails", word: 0, high: 32, width: 1, wantErr: true},
		{name: "underflow fails", word: 0, high: 3, width: 5, wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := bits.Slice(tt.word, tt.high, tt.width)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("Slice() expected error, got %q", got)
				}
				return
			}
			if err != nil {
				t.Fatalf("Slice() unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("Slice() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestPutRoundTrip(t *testing.T) {
	word := bits.Put(0, 11, 5, 0x1F)
	got, err := bits.Slice(word, 11, 5)
	if err != nil {
		t.Fatalf("Slice() error: %v", err)
	}
	if got != "11111" {
		t.Errorf("round trip = %q, want 11111", got)
	}
}

func TestParseImm(t *testing.T) {
	tests := []struct {
		name       string
		text       string
		signExtend bool
		want       int64
	}{
		{name: "positive small", text: "0001", signExtend: true, want: 1},
		{name: "negative one 12-bit", text: "111111111111", signExtend: true, want: -1},
		{name: "negative 2048 12-bit", text: "100000000000", signExtend: true, want: -2048},
		{name: "positive max 12-bit", text: "011111111111", signExtend: true, want: 2047},
		{name: "unsigned MSB set", text: "1000", signExtend: false, want: 8},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := bits.ParseImm(tt.text, tt.signExtend)
			if err != nil {
				t.Fatalf("ParseImm() error: %v", err)
			}
			if got != tt.want {
				t.Errorf("ParseImm(%q) = %d, want %d", tt.text, got, tt.want)
			}
		})
	}
}

func TestEmitImmRange(t *testing.T) {
	if _, err := bits.EmitImm(2048, 12, true); err == nil {
		t.Errorf("EmitImm(2048, 12, signed) expected range error")
	}
	if _, err := bits.EmitImm(-2048, 12, true); err != nil {
		t.Errorf("EmitImm(-2048, 12, signed) unexpected error: %v", err)
	}
	got, err := bits.EmitImm(-1, 12, true)
	if err != nil {
		t.Fatalf("EmitImm() error: %v", err)
	}
	if got != "111111111111" {
		t.Errorf("EmitImm(-1, 12, true) = %q", got)
	}
}

func TestParseWord(t *testing.T) {
	word, hex, bin, err := bits.ParseWord("0x00c58533")
	if err != nil {
		t.Fatalf("ParseWord() error: %v", err)
	}
	if word != 0x00c58533 {
		t.Errorf("word = %#x, want 0xc58533", word)
	}
	if hex != "00c58533" {
		t.Errorf("hex = %q", hex)
	}
	if len(bin) != 32 {
		t.Errorf("bin length = %d, want 32", len(bin))
	}

	if _, _, _, err := bits.ParseWord("not-a-word"); err == nil {
		t.Errorf("ParseWord() expected error for malformed input")
	}
}

func TestIsHexWordIsBinWord(t *testing.T) {
	if !bits.IsHexWord("0x00c58533") {
		t.Errorf("expected 0x00c58533 to be recognised as hex word")
	}
	if !bits.IsHexWord("00c58533") {
		t.Errorf("expected unprefixed hex word to be recognised")
	}
	if bits.IsHexWord("add x10, x11, x12") {
		t.Errorf("assembly line misidentified as hex word")
	}
	if !bits.IsBinWord(bits.ToBinary(0x00c58533, 32)) {
		t.Errorf("expected 32-character binary text to be recognised")
	}
	if bits.IsBinWord("0101") {
		t.Errorf("short binary text misidentified as a full word")
	}
}
