package pix

import "testing"

func TestCRC16(t *testing.T) {
	tests := []struct {
		name    string
		payload string
		want    string
	}{
		{
			name:    "standard check string",
			payload: "123456789",
			want:    "29B1",
		},
		{
			name:    "empty payload keeps the initial value",
			payload: "",
			want:    "FFFF",
		},
		{
			name:    "single byte",
			payload: "A",
			want:    "B915",
		},
		{
			name:    "payload body prefix",
			payload: "00020101021126360014br.gov.bcb.pix0114034932310001405204",
			want:    "11A2",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CRC16(tt.payload); got != tt.want {
				t.Errorf("CRC16(%q) = %q, want %q", tt.payload, got, tt.want)
			}
		})
	}
}

func TestCRC16_SingleByteChange(t *testing.T) {
	base := CRC16("00020101021126360014br.gov.bcb.pix")
	changed := CRC16("00020101021126360014br.gov.bcb.piy")
	if base == changed {
		t.Errorf("checksum did not change for a different payload: %q", base)
	}
}
