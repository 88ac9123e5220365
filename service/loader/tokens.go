package loader

import (
	"github.com/viant/parsly"
	"github.com/viant/parsly/matcher"
)

// Token codes
const (
	whitespaceCode = iota
	numberCode
)

// Token definitions
var (
	whitespaceToken = parsly.NewToken(whitespaceCode, "Whitespace", matcher.NewWhiteSpace())
	numberToken     = parsly.NewToken(numberCode, "Number", newNumberMatcher())
)

func newNumberMatcher() parsly.Matcher {
	return &numberMatcher{}
}

// numberMatcher matches a signed decimal integer. The sign is accepted so
// that negative inputs reach validation and are reported with their value
// instead of failing as unparseable.
type numberMatcher struct{}

func (m *numberMatcher) Match(cursor *parsly.Cursor) int {
	input := cursor.Input
	pos := cursor.Pos
	size := cursor.InputSize

	if pos >= size {
		return 0
	}

	matched := 0
	if input[pos] == '-' || input[pos] == '+' {
		matched++
		pos++
	}

	digits := 0
	for i := pos; i < size; i++ {
		if input[i] < '0' || input[i] > '9' {
			break
		}
		digits++
	}
	if digits == 0 {
		return 0
	}
	return matched + digits
}
