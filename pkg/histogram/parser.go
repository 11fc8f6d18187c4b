package histogram

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

const (
	// SampleMarker opens a new sample section.
	SampleMarker = "#Sample"

	// HeaderLine is the column header repeated at the top of every section.
	HeaderLine = "FragmentLength,Count"
)

// maxLineSize bounds a single input line.
const maxLineSize = 1 << 20

// State is the position of a Parser within the input.
type State int

const (
	// StateAwaitingSample is the state before the first sample marker.
	// Header lines are tolerated here, data rows are not.
	StateAwaitingSample State = iota
	// StateInSample means rows belong to the most recently declared sample.
	StateInSample
)

// String returns a human-readable representation of the state.
func (s State) String() string {
	switch s {
	case StateAwaitingSample:
		return "AwaitingSample"
	case StateInSample:
		return "InSample"
	default:
		return "Unknown"
	}
}

// Parser turns histogram lines into a Dataset, one line at a time.
// A Parser is not safe for concurrent use.
type Parser struct {
	state  State
	sample string
	line   int
	data   Dataset
	order  []string
}

// NewParser returns a parser in StateAwaitingSample with an empty dataset.
func NewParser() *Parser {
	return &Parser{
		state: StateAwaitingSample,
		data:  make(Dataset),
	}
}

// State returns the current parser state.
func (p *Parser) State() State {
	return p.state
}

// Sample returns the sample rows are currently assigned to, or "" before the
// first marker.
func (p *Parser) Sample() string {
	return p.sample
}

// Samples returns the sample names in the order they were declared.
func (p *Parser) Samples() []string {
	return p.order
}

// Dataset returns everything parsed so far. The caller must not feed the
// parser after taking ownership of the result.
func (p *Parser) Dataset() Dataset {
	return p.data
}

// Feed consumes one line without its trailing newline.
func (p *Parser) Feed(line string) error {
	p.line++
	line = strings.TrimSuffix(line, "\r")

	switch {
	case strings.HasPrefix(line, SampleMarker):
		return p.openSample(line)
	case line == HeaderLine:
		return nil
	case line == "":
		return nil
	}

	if p.state != StateInSample {
		return fmt.Errorf("line %d: %w", p.line, ErrRowOutsideSample)
	}

	length, count, err := parseRow(line)
	if err != nil {
		return fmt.Errorf("line %d: %w", p.line, err)
	}
	// Truncate the uninformative long tail.
	if count < MinCountToShow {
		return nil
	}
	p.data[p.sample][length] = count
	return nil
}

// openSample moves the parser into StateInSample for the sample named on a
// marker line. The name is everything after the first space.
func (p *Parser) openSample(line string) error {
	_, name, ok := strings.Cut(line, " ")
	if !ok || name == "" {
		return fmt.Errorf("line %d: %w: empty sample name in %q", p.line, ErrMalformedRecord, line)
	}
	if _, seen := p.data[name]; seen {
		return fmt.Errorf("line %d: %w: %q", p.line, ErrDuplicateSample, name)
	}

	p.state = StateInSample
	p.sample = name
	p.data[name] = make(Distribution)
	p.order = append(p.order, name)
	return nil
}

func parseRow(line string) (int, int, error) {
	fields := strings.Split(line, ",")
	if len(fields) != 2 {
		return 0, 0, fmt.Errorf("%w: want 2 fields, got %d in %q", ErrMalformedRecord, len(fields), line)
	}
	length, err := parseCount(fields[0])
	if err != nil {
		return 0, 0, fmt.Errorf("%w: fragment length %q", ErrMalformedRecord, fields[0])
	}
	count, err := parseCount(fields[1])
	if err != nil {
		return 0, 0, fmt.Errorf("%w: count %q", ErrMalformedRecord, fields[1])
	}
	return length, count, nil
}

func parseCount(s string) (int, error) {
	v, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, err
	}
	if v < 0 {
		return 0, fmt.Errorf("negative value %d", v)
	}
	return v, nil
}

// Parse parses the full text of one histogram file.
func Parse(text string) (Dataset, error) {
	return ParseReader(strings.NewReader(text))
}

// ParseReader parses one histogram file from r. Parsing stops at the first
// malformed line; no partial dataset is returned.
func ParseReader(r io.Reader) (Dataset, error) {
	p := NewParser()
	if err := p.Consume(r); err != nil {
		return nil, err
	}
	return p.Dataset(), nil
}

// Consume feeds every line of r to the parser and stops at the first error.
func (p *Parser) Consume(r io.Reader) error {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxLineSize)
	for sc.Scan() {
		if err := p.Feed(sc.Text()); err != nil {
			return err
		}
	}
	if err := sc.Err(); err != nil {
		return fmt.Errorf("read histogram: %w", err)
	}
	return nil
}
