package locale

import (
	"testing"
	"time"

	"github.com/Zachkp/portfolio/internal/apperr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatDate(t *testing.T) {
	assert.Contains(t, FormatDate("2023-06", ES), "2023")
	assert.Equal(t, "jun 2023", FormatDate("2023-06", ES))
	assert.Equal(t, "Jun 2023", FormatDate("2023-06", EN))
	assert.Equal(t, "Actualidad", FormatDate("present", ES))
	assert.Equal(t, "Present", FormatDate("present", EN))
	assert.Equal(t, "garbage", FormatDate("garbage", EN))
}

func TestDurationBetween(t *testing.T) {
	now := time.Date(2024, time.March, 10, 0, 0, 0, 0, time.UTC)
	tests := []struct {
		from, to string
		l        Locale
		want     string
	}{
		{"2020-01", "2022-04", EN, "2 years 3 months"},
		{"2020-01", "2022-04", ES, "2 años 3 meses"},
		{"2020-01", "2021-02", EN, "1 year 1 month"},
		{"2020-01", "2021-02", ES, "1 año 1 mes"},
		{"2020-01", "2023-01", EN, "3 years"},
		{"2023-11", "2024-01", EN, "2 months"},
		{"2023-11", "2023-11", EN, "0 months"},
		{"2023-03", "present", EN, "1 year"},
		{"2024-05", "2024-01", EN, "0 months"},
	}
	for _, tt := range tests {
		t.Run(tt.from+"_"+tt.to+"_"+string(tt.l), func(t *testing.T) {
			got, err := DurationBetween(tt.from, tt.to, tt.l, now)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestCalculateDuration(t *testing.T) {
	assert.Equal(t, "2 years 3 months", CalculateDuration("2020-01", "2022-04", EN))
	assert.Empty(t, CalculateDuration("2020", "2022-04", EN))
}

func TestParseMonth_Malformed(t *testing.T) {
	for _, token := range []string{"", "2020", "2020-13", "20-01", "abcd-01", "2020-00"} {
		_, _, err := ParseMonth(token, time.Now())
		require.Error(t, err, token)
		assert.True(t, apperr.IsKind(err, apperr.KindData), token)
	}
}
