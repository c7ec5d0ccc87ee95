package prompt_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fjaeril/pdsnd-github/internal/domain"
	"github.com/fjaeril/pdsnd-github/internal/prompt"
)

func newPrompter(input string) (*prompt.Prompter, *bytes.Buffer) {
	var out bytes.Buffer
	p := prompt.New(strings.NewReader(input), &out, prompt.DefaultOptions(domain.DefaultCities()))
	return p, &out
}

func TestAcquireFilters_AllAnswers(t *testing.T) {
	p, out := newPrompter("New York City\n6\n5\n")

	got, err := p.AcquireFilters()

	require.NoError(t, err)
	assert.Equal(t, domain.FilterSpec{City: "new york city", Month: 6, Weekday: 5}, got)
	assert.Contains(t, out.String(), "[Chicago, New York City, Washington]")
	assert.Contains(t, out.String(), strings.Repeat("-", 40))
}

func TestAcquireFilters_BlankMeansNoFilter(t *testing.T) {
	p, _ := newPrompter("chicago\n\n\n")

	got, err := p.AcquireFilters()

	require.NoError(t, err)
	assert.Equal(t, domain.FilterSpec{City: "chicago"}, got)
}

func TestAcquireFilters_RetryAfterInvalidCity(t *testing.T) {
	p, out := newPrompter("paris\n\nwashington\n1\n\n")

	got, err := p.AcquireFilters()

	require.NoError(t, err)
	assert.Equal(t, domain.FilterSpec{City: "washington", Month: 1}, got)
	assert.Contains(t, out.String(), "ERROR: City 'paris' was not found.")
	assert.Contains(t, out.String(), "Do you want to try again? (Y/n)")
}

func TestAcquireFilters_RetryAfterInvalidNumber(t *testing.T) {
	p, out := newPrompter("chicago\n13\ny\nfeb\nY\n2\n7\n")

	got, err := p.AcquireFilters()

	require.NoError(t, err)
	assert.Equal(t, domain.FilterSpec{City: "chicago", Month: 2, Weekday: 7}, got)
	assert.Contains(t, out.String(), "ERROR: Incorrect value '13'.")
	assert.Contains(t, out.String(), "ERROR: Incorrect value 'feb'.")
}

func TestAcquireFilters_DeclineRetryCancels(t *testing.T) {
	p, _ := newPrompter("chicago\n8\n0\nn\n")

	_, err := p.AcquireFilters()

	require.ErrorIs(t, err, domain.ErrCancelled)
}

func TestAcquireFilters_CancelWord(t *testing.T) {
	for _, input := range []string{"cancel\n", "chicago\nCANCEL\n", "chicago\n3\nCancel\n"} {
		p, _ := newPrompter(input)

		_, err := p.AcquireFilters()

		require.ErrorIs(t, err, domain.ErrCancelled, "input %q", input)
	}
}

func TestAcquireFilters_EndOfInputCancels(t *testing.T) {
	p, _ := newPrompter("chicago\n")

	_, err := p.AcquireFilters()

	require.ErrorIs(t, err, domain.ErrCancelled)
}

func TestAcquireFilters_LastLineWithoutNewline(t *testing.T) {
	p, _ := newPrompter("chicago\n3\n2")

	got, err := p.AcquireFilters()

	require.NoError(t, err)
	assert.Equal(t, domain.FilterSpec{City: "chicago", Month: 3, Weekday: 2}, got)
}

func TestConfirm(t *testing.T) {
	cases := []struct {
		name  string
		input string
		def   bool
		want  bool
	}{
		{"yes", "y\n", false, true},
		{"no", "N\n", true, false},
		{"empty takes default yes", "\n", true, true},
		{"empty takes default no", "\n", false, false},
		{"repeats on junk", "maybe\nyes\ny\n", false, true},
		{"end of input", "", true, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			p, _ := newPrompter(tc.input)
			assert.Equal(t, tc.want, p.Confirm("Continue?", tc.def))
		})
	}
}

func TestConfirm_HintShowsDefault(t *testing.T) {
	p, out := newPrompter("\n\n")

	p.Confirm("First?", true)
	p.Confirm("Second?", false)

	assert.Contains(t, out.String(), "First? (Y/n)")
	assert.Contains(t, out.String(), "Second? (y/N)")
}
