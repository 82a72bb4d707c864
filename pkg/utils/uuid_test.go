package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSlugify(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"USB-C Cable", "usb-c-cable"},
		{"Screen   Protector", "screen-protector"},
		{"Charger (fast, 65W)", "charger-fast-65w"},
		{"  padded  ", "padded"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, Slugify(tt.in), "input %q", tt.in)
	}
}

func TestGeneratedReferencesHavePrefixes(t *testing.T) {
	receipt := GenerateReceiptNo()
	assert.Regexp(t, `^RCT-[0-9A-F]{8}$`, receipt)

	transfer := GenerateTransferNo()
	assert.Regexp(t, `^TRF-[0-9A-F]{8}$`, transfer)

	assert.NotEqual(t, GenerateReceiptNo(), GenerateReceiptNo())
}
