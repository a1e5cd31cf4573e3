package stack_test

import (
	"fmt"
	"slices"

	"github.com/tedmax100/generic-stack/stack"
)

func Example() {
	s := stack.New[int]().Push(1).Push(2).Push(3)
	fmt.Println(s)

	top, _ := s.Pop()
	fmt.Println(top, s.Size())

	for v := range s.All() {
		fmt.Println(v)
	}
	// Output:
	// Stack(3) [1, 2, 3]
	// 3 2
	// 1
	// 2
}

func ExampleStack_Pop() {
	s := stack.New("only")

	v, ok := s.Pop()
	fmt.Printf("%q %v\n", v, ok)

	v, ok = s.Pop()
	fmt.Printf("%q %v\n", v, ok)
	// Output:
	// "only" true
	// "" false
}

func ExampleFrom() {
	s := stack.From(slices.Values([]rune("abc")))
	fmt.Println(string(s.ToSlice()))
	// Output: abc
}

func ExampleStack_Clone() {
	s := stack.New(1, 2)
	c := s.Clone()
	c.Push(3)

	fmt.Println(s)
	fmt.Println(c)
	// Output:
	// Stack(2) [1, 2]
	// Stack(3) [1, 2, 3]
}
