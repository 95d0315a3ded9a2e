package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestProduct_MIMEType(t *testing.T) {
	tests := []struct {
		name     string
		filename string
		expected string
	}{
		{
			name:     "text product",
			filename: "SFOWRKWBC.TXT",
			expected: "text/plain",
		},
		{
			name:     "gif product",
			filename: "RADAR.GIF",
			expected: "image/gif",
		},
		{
			name:     "jpeg product",
			filename: "SATELLITE.JPG",
			expected: "image/jpeg",
		},
		{
			name:     "png product",
			filename: "CHART.PNG",
			expected: "image/png",
		},
		{
			name:     "unknown suffix",
			filename: "DATA.BIN",
			expected: "",
		},
		{
			name:     "no suffix",
			filename: "README",
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := &Product{Filename: tt.filename}
			assert.Equal(t, tt.expected, p.MIMEType())
		})
	}
}

func TestProduct_StringContents(t *testing.T) {
	p := &Product{Filename: "A.TXT", Contents: []byte("FXUS61 KWBC 010000")}
	assert.Equal(t, "FXUS61 KWBC 010000", p.StringContents())
}

func TestProduct_StringContents_InvalidUTF8(t *testing.T) {
	p := &Product{Filename: "A.TXT", Contents: []byte{0x68, 0x69, 0xff, 0xfe}}
	got := p.StringContents()
	assert.Contains(t, got, "hi")
	assert.True(t, len(got) > 2, "invalid bytes should be replaced, not dropped silently")
}
