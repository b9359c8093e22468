package pix

import "testing"

func TestApplyMask(t *testing.T) {
	tests := []struct {
		name   string
		digits string
		mask   string
		want   string
	}{
		{name: "branch with check digit", digits: "11177", mask: "0000-0", want: "1117-7"},
		{name: "account with separators", digits: "417416", mask: "00.000-0", want: "41.741-6"},
		{name: "partial input renders partially", digits: "123", mask: "0000-0", want: "123"},
		{name: "input longer than mask", digits: "123456789", mask: "0000", want: "1234"},
		{name: "hash placeholder", digits: "987", mask: "#-#-#", want: "9-8-7"},
		{name: "non-digits stripped first", digits: "1a2b3c", mask: "000", want: "123"},
		{name: "empty input", digits: "", mask: "0000-0", want: ""},
		{name: "empty mask", digits: "123", mask: "", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ApplyMask(tt.digits, tt.mask); got != tt.want {
				t.Errorf("ApplyMask(%q, %q) = %q, want %q", tt.digits, tt.mask, got, tt.want)
			}
		})
	}
}

func TestFormatCNPJ(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "full", in: "03493231000172", want: "03.493.231/0001-72"},
		{name: "partial", in: "034932", want: "03.493.2"},
		{name: "already formatted", in: "03.493.231/0001-72", want: "03.493.231/0001-72"},
		{name: "empty", in: "", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FormatCNPJ(tt.in); got != tt.want {
				t.Errorf("FormatCNPJ(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}
