package stack

import (
	"fmt"
	"strings"

	"github.com/samber/lo"
)

// String renders the stack as "Stack(<size>) [<bottom>, ..., <top>]".
func (s *Stack[T]) String() string {
	elems := lo.Map(s.values, func(v T, _ int) string {
		return fmt.Sprint(v)
	})
	return fmt.Sprintf("Stack(%d) [%s]", len(s.values), strings.Join(elems, ", "))
}
