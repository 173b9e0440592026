package locale

import (
	"testing"

	"github.com/Zachkp/portfolio/internal/apperr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	for _, code := range []string{"es", "en", " EN "} {
		l, err := Parse(code)
		require.NoError(t, err, code)
		assert.Contains(t, Supported(), l)
	}
}

func TestParse_Unsupported(t *testing.T) {
	for _, code := range []string{"fr", "", "es-ES", "english"} {
		_, err := Parse(code)
		require.Error(t, err, code)
		assert.True(t, apperr.IsKind(err, apperr.KindConfiguration), code)
	}
}

func TestNegotiate(t *testing.T) {
	tests := []struct {
		header string
		want   Locale
	}{
		{"", ES},
		{"en-US,en;q=0.9", EN},
		{"es-MX,es;q=0.9,en;q=0.5", ES},
		{"fr-FR,en;q=0.8", EN},
		{"de", ES},
		{"not a header;;", ES},
	}
	for _, tt := range tests {
		t.Run(tt.header, func(t *testing.T) {
			assert.Equal(t, tt.want, Negotiate(tt.header))
		})
	}
}

func TestSupported_ReturnsCopy(t *testing.T) {
	s := Supported()
	s[0] = "xx"
	assert.Equal(t, ES, Supported()[0])
}
