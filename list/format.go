package list

import (
	"fmt"
	"iter"
	"strconv"
	"strings"
)

// String returns the elements of the List as a bracketed, comma separated list, e.g. [1, 2, 3].
func (l *List[T]) String() string {
	return FormatSeq(l.All())
}

// FormatSeq renders the values of the given sequence as a bracketed, comma separated list.
func FormatSeq[T any](seq iter.Seq[T]) string {
	var builder strings.Builder

	builder.WriteString("[")
	separator := ""
	for value := range seq {
		builder.WriteString(separator)
		builder.WriteString(Describe(value))
		separator = ", "
	}
	builder.WriteString("]")

	return builder.String()
}

// Describe renders a single value the way it appears in the rendering of a collection. Strings are quoted.
func Describe(value any) string {
	switch typedValue := value.(type) {
	case string:
		return strconv.Quote(typedValue)
	default:
		return fmt.Sprintf("%v", value)
	}
}
