package collection

// Stack 有界、自动扩容的字符串栈
type Stack interface {
	Push(value string) error
	Pop() (string, error)
	Size() int
	// Capacity 当前已分配的容量, 与已占用的数量无关
	Capacity() int
	Empty() bool
}
