package collection

import "fmt"

const (
	DefaultInitialCapacity = 10
	DefaultMaxCapacity     = 1000
	DefaultMaxElementBytes = 100
)

type stack struct {
	elems           []string
	maxCapacity     int
	maxElementBytes int
}

type Option func(*options)

type options struct {
	initialCapacity int
	maxCapacity     int
	maxElementBytes int
}

func WithInitialCapacity(n int) Option {
	return func(o *options) {
		o.initialCapacity = n
	}
}

func WithMaxCapacity(n int) Option {
	return func(o *options) {
		o.maxCapacity = n
	}
}

func WithMaxElementBytes(n int) Option {
	return func(o *options) {
		o.maxElementBytes = n
	}
}

func NewStack(opts ...Option) Stack {
	o := options{
		initialCapacity: DefaultInitialCapacity,
		maxCapacity:     DefaultMaxCapacity,
		maxElementBytes: DefaultMaxElementBytes,
	}
	for _, opt := range opts {
		opt(&o)
	}

	if o.initialCapacity <= 0 || o.maxCapacity < o.initialCapacity || o.maxElementBytes < 0 {
		panic("invalid parameter")
	}

	return &stack{
		elems:           make([]string, 0, o.initialCapacity),
		maxCapacity:     o.maxCapacity,
		maxElementBytes: o.maxElementBytes,
	}
}

func (s *stack) Push(value string) error {
	if len(value) > s.maxElementBytes {
		return fmt.Errorf("%w: %d bytes, limit %d", ValueTooLargeErr, len(value), s.maxElementBytes)
	}

	if len(s.elems) == cap(s.elems) {
		if cap(s.elems) >= s.maxCapacity {
			return CapacityExceededErr
		}
		s.grow()
	}

	s.elems = append(s.elems, value)
	return nil
}

// grow 容量翻倍, 不超过 maxCapacity
func (s *stack) grow() {
	elems := make([]string, len(s.elems), min(cap(s.elems)*2, s.maxCapacity))
	copy(elems, s.elems)
	s.elems = elems
}

func (s *stack) Pop() (string, error) {
	if len(s.elems) == 0 {
		return "", EmptyStackErr
	}

	n := len(s.elems) - 1
	e := s.elems[n]
	s.elems[n] = ""
	s.elems = s.elems[:n]

	return e, nil
}

func (s *stack) Size() int {
	return len(s.elems)
}

func (s *stack) Capacity() int {
	return cap(s.elems)
}

func (s *stack) Empty() bool {
	return len(s.elems) == 0
}
