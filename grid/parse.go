package grid

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"slices"
	"strconv"
	"strings"
)

const (
	typeLine = "type octile"
	mapLine  = "map"

	// Impassable is the byte Format writes for impassable cells.
	Impassable = '@'
	// Passable is the byte marking a passable cell.
	Passable = '.'

	maxLineLength = 1 << 24

	// maxCells bounds height*width so that a header
	// cannot demand an arbitrarily large allocation.
	maxCells = 1 << 30
)

// ErrFormat is returned (wrapped in a *FormatError) when map text is malformed.
var ErrFormat = errors.New("malformed map")

// FormatError describes a problem found while parsing map text.
type FormatError struct {
	// Line holds the 1-based line number.
	Line int
	// Text holds the offending line without its line terminator.
	Text string
	Err  error
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("grid: line %d %q: %v", e.Line, e.Text, e.Err)
}

func (e *FormatError) Unwrap() error {
	return e.Err
}

// Parse reads a map in the octile text format:
//
//	type octile
//	height <N>
//	width <N>
//	map
//
// followed by exactly height rows in which '.' marks a passable cell
// and any other byte an impassable one. Bytes beyond the declared width
// are ignored; a short row leaves its trailing cells impassable.
// Maps of more than 2^30 cells are rejected.
func Parse(r io.Reader) (*Bool2D, error) {
	p := &parser{
		scanner: bufio.NewScanner(r),
	}
	p.scanner.Buffer(nil, maxLineLength)
	if err := p.literal(typeLine); err != nil {
		return nil, err
	}
	height, err := p.dimension("height")
	if err != nil {
		return nil, err
	}
	width, err := p.dimension("width")
	if err != nil {
		return nil, err
	}
	if cells := uint64(height) * uint64(width); cells > maxCells {
		return nil, p.errorf(p.text, "%dx%d map exceeds %d cells", height, width, maxCells)
	}
	if err := p.literal(mapLine); err != nil {
		return nil, err
	}
	// Rows are added as they are read, so a truncated
	// body fails before the whole map is allocated.
	var values []bool
	for row := uint32(0); row < height; row++ {
		line, err := p.next()
		if err != nil {
			return nil, err
		}
		n := len(values)
		values = slices.Grow(values, int(width))[:n+int(width)]
		for col := 0; col < len(line) && col < int(width); col++ {
			values[n+col] = line[col] == Passable
		}
	}
	return &Bool2D{
		height: height,
		width:  width,
		values: values,
	}, nil
}

type parser struct {
	scanner *bufio.Scanner
	line    int
	// text holds the most recently read line.
	text string
}

func (p *parser) next() (string, error) {
	p.line++
	if !p.scanner.Scan() {
		err := p.scanner.Err()
		if err == nil {
			err = io.ErrUnexpectedEOF
		}
		return "", &FormatError{
			Line: p.line,
			Err:  fmt.Errorf("%w: %w", ErrFormat, err),
		}
	}
	p.text = strings.TrimSuffix(p.scanner.Text(), "\r")
	return p.text, nil
}

func (p *parser) errorf(text string, format string, args ...any) error {
	return &FormatError{
		Line: p.line,
		Text: text,
		Err:  fmt.Errorf("%w: %s", ErrFormat, fmt.Sprintf(format, args...)),
	}
}

func (p *parser) literal(want string) error {
	line, err := p.next()
	if err != nil {
		return err
	}
	if line != want {
		return p.errorf(line, "expected %q", want)
	}
	return nil
}

func (p *parser) dimension(key string) (uint32, error) {
	line, err := p.next()
	if err != nil {
		return 0, err
	}
	fields := strings.Fields(line)
	if len(fields) != 2 || fields[0] != key {
		return 0, p.errorf(line, "expected %q followed by a number", key)
	}
	n, err := strconv.ParseUint(fields[1], 10, 32)
	if err != nil {
		return 0, p.errorf(line, "bad %s: %v", key, err)
	}
	return uint32(n), nil
}

// Format writes m in the format read by Parse,
// using Passable and Impassable for the cells.
func Format(w io.Writer, m *Bool2D) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "%s\nheight %d\nwidth %d\n%s\n", typeLine, m.height, m.width, mapLine)
	row := make([]byte, m.width+1)
	row[m.width] = '\n'
	for r := 0; r < int(m.height); r++ {
		for c, v := range m.values[r*int(m.width) : (r+1)*int(m.width)] {
			if v {
				row[c] = Passable
			} else {
				row[c] = Impassable
			}
		}
		bw.Write(row)
	}
	return bw.Flush()
}
