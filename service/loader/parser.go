package loader

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/kernsim/kernsim/model"
	"github.com/viant/parsly"
)

// ErrInvalidInput indicates malformed or missing numeric fields in a text
// workload. The wrapping message carries the offending token.
var ErrInvalidInput = errors.New("loader: invalid input")

// Parse reads a workload in the plain text format: a process count N
// followed by N whitespace-separated (pid, work) pairs. All validation
// happens here - a workload that parses is ready for the registry. Tokens
// past the declared count are ignored.
func Parse(data []byte) (*model.Workload, error) {
	cursor := parsly.NewCursor("", data, 0)

	count, err := nextInt(cursor, "process count")
	if err != nil {
		return nil, err
	}
	if count <= 0 {
		return nil, fmt.Errorf("process count %d: %w", count, ErrInvalidInput)
	}

	workload := &model.Workload{}
	for i := 0; i < count; i++ {
		pid, err := nextInt(cursor, fmt.Sprintf("pid of process %d", i+1))
		if err != nil {
			return nil, err
		}
		work, err := nextInt(cursor, fmt.Sprintf("work of process %d", i+1))
		if err != nil {
			return nil, err
		}
		workload.AddProcess(pid, work)
	}

	if err := workload.Validate(); err != nil {
		return nil, err
	}
	return workload, nil
}

func nextInt(cursor *parsly.Cursor, field string) (int, error) {
	matched := cursor.MatchAfterOptional(whitespaceToken, numberToken)
	if matched.Code != numberToken.Code {
		if offending := peekToken(cursor); offending != "" {
			return 0, fmt.Errorf("%s: unexpected token %q: %w", field, offending, ErrInvalidInput)
		}
		return 0, fmt.Errorf("%s: missing value: %w", field, ErrInvalidInput)
	}
	text := matched.Text(cursor)
	value, err := strconv.Atoi(text)
	if err != nil {
		return 0, fmt.Errorf("%s %q: %w", field, text, ErrInvalidInput)
	}
	return value, nil
}

// peekToken returns the next whitespace-delimited chunk for error messages,
// without advancing the cursor.
func peekToken(cursor *parsly.Cursor) string {
	input := cursor.Input
	pos := cursor.Pos
	size := cursor.InputSize
	for pos < size && isSpace(input[pos]) {
		pos++
	}
	start := pos
	for pos < size && !isSpace(input[pos]) {
		pos++
	}
	return string(input[start:pos])
}

func isSpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == '\r'
}
