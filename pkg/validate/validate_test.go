package validate

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsPositiveAmount(t *testing.T) {
	assert.True(t, IsPositiveAmount(1))
	assert.False(t, IsPositiveAmount(0))
	assert.False(t, IsPositiveAmount(-5))
}

func TestIsCarID(t *testing.T) {
	assert.True(t, IsCarID(1))
	assert.False(t, IsCarID(0))
	assert.False(t, IsCarID(-1))
}

func TestIsImageURL(t *testing.T) {
	tests := []struct {
		name string
		url  string
		ok   bool
	}{
		{name: "empty is allowed", url: "", ok: true},
		{name: "https url", url: "https://example.com/img.jpg", ok: true},
		{name: "http url", url: "http://example.com/img.jpg", ok: true},
		{name: "no scheme", url: "example.com/img.jpg", ok: false},
		{name: "unsupported scheme", url: "ftp://example.com/img.jpg", ok: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.ok, IsImageURL(tt.url))
		})
	}
}
