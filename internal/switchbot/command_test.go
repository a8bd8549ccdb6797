package switchbot

import (
	"bytes"
	"testing"
)

func TestFixedCommand(t *testing.T) {
	tests := []struct {
		kind Kind
		want []byte
	}{
		{TurnOn, []byte{0x57, 0x0F, 0x47, 0x01, 0x01}},
		{TurnOff, []byte{0x57, 0x0F, 0x47, 0x01, 0x02}},
		{Toggle, []byte{0x57, 0x0F, 0x47, 0x01, 0x03}},
	}

	for _, tt := range tests {
		t.Run(tt.kind.String(), func(t *testing.T) {
			got := FixedCommand(tt.kind)
			if !bytes.Equal(got, tt.want) {
				t.Errorf("FixedCommand(%v) = % X, want % X", tt.kind, got, tt.want)
			}
			if len(got) != FixedCommandLen {
				t.Errorf("len = %d, want %d", len(got), FixedCommandLen)
			}
		})
	}
}

func TestFixedCommandUnknownKind(t *testing.T) {
	if got := FixedCommand(Kind(42)); got != nil {
		t.Errorf("FixedCommand(42) = % X, want nil", got)
	}
}

func TestFixedCommandReturnsCopy(t *testing.T) {
	cmd := FixedCommand(TurnOn)
	cmd[4] = 0xFF

	if TurnOnCommand[4] != 0x01 {
		t.Fatalf("TurnOnCommand was mutated through returned slice: % X", TurnOnCommand)
	}
	if again := FixedCommand(TurnOn); again[4] != 0x01 {
		t.Errorf("second call = % X, want opcode 01", again)
	}
}

func TestSetRGBCommand(t *testing.T) {
	got := SetRGBCommand(255, 0, 128)
	want := []byte{0x57, 0x0F, 0x47, 0x01, 0x16, 0xFF, 0x00, 0x80}
	if !bytes.Equal(got, want) {
		t.Errorf("SetRGBCommand(255, 0, 128) = % X, want % X", got, want)
	}
}

func TestSetRGBCommandFullRange(t *testing.T) {
	// Each channel across its whole domain while the others hold
	// distinct values, so a swapped channel would show up.
	for v := 0; v <= 255; v++ {
		c := uint8(v)
		cases := [][3]uint8{
			{c, 0x11, 0x22},
			{0x33, c, 0x44},
			{0x55, 0x66, c},
		}
		for _, rgb := range cases {
			got := SetRGBCommand(rgb[0], rgb[1], rgb[2])
			want := []byte{0x57, 0x0F, 0x47, 0x01, 0x16, rgb[0], rgb[1], rgb[2]}
			if !bytes.Equal(got, want) {
				t.Fatalf("SetRGBCommand(%d, %d, %d) = % X, want % X", rgb[0], rgb[1], rgb[2], got, want)
			}
		}
	}
}

func TestSetBrightnessCommand(t *testing.T) {
	got := SetBrightnessCommand(50)
	want := []byte{0x57, 0x0F, 0x47, 0x01, 0x14, 0x32}
	if !bytes.Equal(got, want) {
		t.Errorf("SetBrightnessCommand(50) = % X, want % X", got, want)
	}
}

func TestSetBrightnessCommandFullRange(t *testing.T) {
	for v := 0; v <= 255; v++ {
		got := SetBrightnessCommand(uint8(v))
		want := []byte{0x57, 0x0F, 0x47, 0x01, 0x14, uint8(v)}
		if !bytes.Equal(got, want) {
			t.Fatalf("SetBrightnessCommand(%d) = % X, want % X", v, got, want)
		}
		if len(got) != BrightnessCommandLen {
			t.Fatalf("SetBrightnessCommand(%d) has length %d", v, len(got))
		}
	}
}

func TestEncodersAreDeterministic(t *testing.T) {
	if a, b := SetRGBCommand(1, 2, 3), SetRGBCommand(1, 2, 3); !bytes.Equal(a, b) || &a[0] == &b[0] {
		t.Errorf("SetRGBCommand not deterministic or shares storage: % X / % X", a, b)
	}
	if a, b := SetBrightnessCommand(77), SetBrightnessCommand(77); !bytes.Equal(a, b) || &a[0] == &b[0] {
		t.Errorf("SetBrightnessCommand not deterministic or shares storage: % X / % X", a, b)
	}
	for _, k := range []Kind{TurnOn, TurnOff, Toggle} {
		if a, b := FixedCommand(k), FixedCommand(k); !bytes.Equal(a, b) {
			t.Errorf("FixedCommand(%v) not deterministic: % X / % X", k, a, b)
		}
	}
}

func TestValidBrightness(t *testing.T) {
	for v := 0; v <= 255; v++ {
		if got, want := ValidBrightness(uint8(v)), v <= 100; got != want {
			t.Errorf("ValidBrightness(%d) = %v, want %v", v, got, want)
		}
	}
}

func TestParseKind(t *testing.T) {
	tests := []struct {
		in      string
		want    Kind
		wantErr bool
	}{
		{"on", TurnOn, false},
		{"OFF", TurnOff, false},
		{" toggle ", Toggle, false},
		{"turn-on", TurnOn, false},
		{"turnoff", TurnOff, false},
		{"dim", 0, true},
		{"", 0, true},
	}

	for _, tt := range tests {
		got, err := ParseKind(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseKind(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if !tt.wantErr && got != tt.want {
			t.Errorf("ParseKind(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}

	for _, k := range []Kind{TurnOn, TurnOff, Toggle} {
		if got, err := ParseKind(k.String()); err != nil || got != k {
			t.Errorf("ParseKind(%q) = %v, %v", k.String(), got, err)
		}
	}
}

func TestDescribe(t *testing.T) {
	tests := []struct {
		cmd  []byte
		want string
	}{
		{FixedCommand(TurnOn), "turn-on"},
		{FixedCommand(TurnOff), "turn-off"},
		{FixedCommand(Toggle), "toggle"},
		{SetRGBCommand(255, 0, 128), "set-rgb r=255 g=0 b=128"},
		{SetBrightnessCommand(150), "set-brightness 150"},
		{[]byte{0x57, 0x02}, "unknown (2 bytes)"},
		{[]byte{0x57, 0x0F, 0x47, 0x01, 0x99}, "unknown opcode 0x99 (5 bytes)"},
		{[]byte{0x57, 0x0F, 0x47, 0x01, 0x16, 0x01}, "unknown opcode 0x16 (6 bytes)"},
	}

	for _, tt := range tests {
		if got := Describe(tt.cmd); got != tt.want {
			t.Errorf("Describe(% X) = %q, want %q", tt.cmd, got, tt.want)
		}
	}
}
