package export

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestSanitizeFilename(t *testing.T) {
	cases := []struct {
		name  string
		title string
		want  string
	}{
		{"spaces and punctuation collapse", "My Resume! (v2)", "My_Resume_v2"},
		{"already clean", "Backend_Engineer-2024", "Backend_Engineer-2024"},
		{"only disallowed chars", "!!! ???", "resume"},
		{"empty", "", "resume"},
		{"leading and trailing junk trimmed", "  resume  ", "resume"},
		{"unicode collapses", "Резюме 2024", "2024"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, SanitizeFilename(tc.title))
		})
	}
}

func TestFormatDate(t *testing.T) {
	d := time.Date(2023, time.March, 15, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, "Mar 2023", FormatDate(&d))
	assert.Equal(t, "", FormatDate(nil))

	var zero time.Time
	assert.Equal(t, "", FormatDate(&zero))
}

func TestFormatGrade(t *testing.T) {
	assert.Equal(t, "8.5", FormatGrade(8.50))
	assert.Equal(t, "75", FormatGrade(75.00))
	assert.Equal(t, "9.25", FormatGrade(9.25))
}

func TestSplitBullets(t *testing.T) {
	got := SplitBullets("Did a thing\r\n\r\n<b>Shipped</b> another\rAnd one more\n")
	assert.Equal(t, []string{"Did a thing", "Shipped another", "And one more"}, got)

	assert.Nil(t, SplitBullets(""))
	assert.Nil(t, SplitBullets("<p></p>\n\n"))
}
