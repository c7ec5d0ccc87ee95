// Package prompt asks the user for a city, month and weekday on a console,
// validating each answer and offering a retry or a way out.
package prompt

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/fjaeril/pdsnd-github/internal/domain"
)

// Options configures the wording of a Prompter.
type Options struct {
	// Cities is the closed set of cities the user may pick from.
	Cities domain.CityTable
	// CancelWord aborts filter acquisition when typed at any filter prompt.
	CancelWord string
	// Yes and No are the accepted answers to yes/no questions, compared
	// case-insensitively.
	Yes string
	No  string
}

// DefaultOptions returns Options with the CANCEL keyword and Y/N answers.
func DefaultOptions(cities domain.CityTable) Options {
	return Options{Cities: cities, CancelWord: "CANCEL", Yes: "Y", No: "N"}
}

// errEOF signals that the input stream ended.
var errEOF = errors.New("end of input")

// Prompter reads answers line by line from in and writes questions to out.
type Prompter struct {
	in   *bufio.Reader
	out  io.Writer
	opts Options
}

// New constructs a Prompter.
func New(in io.Reader, out io.Writer, opts Options) *Prompter {
	return &Prompter{in: bufio.NewReader(in), out: out, opts: opts}
}

// AcquireFilters asks for a city, a month and a weekday.
// Blank month or weekday answers mean "no filter" (0). After an invalid answer
// the user is asked whether to try again; declining, typing the cancel word,
// or reaching the end of input returns domain.ErrCancelled.
func (p *Prompter) AcquireFilters() (domain.FilterSpec, error) {
	fmt.Fprintln(p.out, "Hello! Let's explore some US bikeshare data!")

	var spec domain.FilterSpec
	city, err := p.askCity()
	if err != nil {
		return domain.FilterSpec{}, err
	}
	spec.City = city

	spec.Month, err = p.askNumber(
		"Filter a specific month? Enter a number (1 = Jan, ..., 12 = Dec)   -OR-   leave empty to skip: ",
		12, "Please enter a whole number from 1 to 12!")
	if err != nil {
		return domain.FilterSpec{}, err
	}

	spec.Weekday, err = p.askNumber(
		"Filter a specific week day? Enter a number (1 = Mon, ..., 7 = Sun)   -OR-   leave empty to skip: ",
		7, "Please enter a whole number from 1 (Monday) to 7 (Sunday)!")
	if err != nil {
		return domain.FilterSpec{}, err
	}

	fmt.Fprintln(p.out, strings.Repeat("-", 40))
	return spec, nil
}

// Confirm asks a yes/no question. An empty answer selects def; anything other
// than the yes or no word repeats the question. End of input answers no.
func (p *Prompter) Confirm(question string, def bool) bool {
	yes, no := strings.ToUpper(p.opts.Yes), strings.ToUpper(p.opts.No)
	hint := fmt.Sprintf("(%s/%s)", yes, strings.ToLower(no))
	if !def {
		hint = fmt.Sprintf("(%s/%s)", strings.ToLower(yes), no)
	}
	for {
		fmt.Fprintf(p.out, "%s %s ", question, hint)
		answer, err := p.readLine()
		if err != nil {
			fmt.Fprintln(p.out)
			return false
		}
		switch strings.ToUpper(answer) {
		case "":
			return def
		case yes:
			return true
		case no:
			return false
		}
	}
}

func (p *Prompter) askCity() (string, error) {
	names := make([]string, len(p.opts.Cities))
	for i, n := range p.opts.Cities.Names() {
		names[i] = domain.Title(n)
	}
	list := "[" + strings.Join(names, ", ") + "]"

	for {
		fmt.Fprintf(p.out, "Please enter city %s for which you would like to analyze bike sharing data: ", list)
		answer, err := p.readAnswer()
		if err != nil {
			return "", err
		}
		if c, ok := p.opts.Cities.Lookup(answer); ok {
			return c.Name, nil
		}
		fmt.Fprintf(p.out, "ERROR: City '%s' was not found. Please check for typos. Valid options are: %s\n", answer, list)
		if !p.Confirm("Do you want to try again?", true) {
			return "", domain.ErrCancelled
		}
	}
}

// askNumber reads a whole number in 0..upper, where a blank answer is 0.
func (p *Prompter) askNumber(question string, upper int, hint string) (int, error) {
	for {
		fmt.Fprint(p.out, question)
		answer, err := p.readAnswer()
		if err != nil {
			return 0, err
		}
		n, err := parseBounded(answer, upper)
		if err == nil {
			return n, nil
		}
		fmt.Fprintf(p.out, "ERROR: Incorrect value '%s'. %s\n", answer, hint)
		if !p.Confirm("Do you want to try again?", true) {
			return 0, domain.ErrCancelled
		}
	}
}

// readAnswer reads a filter answer, mapping end of input and the cancel word
// to domain.ErrCancelled.
func (p *Prompter) readAnswer() (string, error) {
	answer, err := p.readLine()
	if err != nil {
		fmt.Fprintln(p.out)
		return "", domain.ErrCancelled
	}
	if p.opts.CancelWord != "" && strings.EqualFold(answer, p.opts.CancelWord) {
		return "", domain.ErrCancelled
	}
	return answer, nil
}

// readLine returns the next line without its terminator or surrounding
// whitespace. A final line without a newline is still returned.
func (p *Prompter) readLine() (string, error) {
	line, err := p.in.ReadString('\n')
	if err != nil && (line == "" || !errors.Is(err, io.EOF)) {
		return "", errEOF
	}
	return strings.TrimSpace(line), nil
}

// parseBounded parses s as a whole number in 0..upper. Blank means 0.
func parseBounded(s string, upper int) (int, error) {
	if s == "" {
		return 0, nil
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("%w: %q is not a whole number", domain.ErrValidation, s)
	}
	if n < 0 || n > upper {
		return 0, fmt.Errorf("%w: %d is outside 0..%d", domain.ErrValidation, n, upper)
	}
	return n, nil
}
