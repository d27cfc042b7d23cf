package state

type UndoStack struct {
	list []*Store
}

func (stack *UndoStack) Push(snapshot *Store) {
	stack.list = append(stack.list, snapshot)
}

// Pop returns nil when empty.
func (stack *UndoStack) Pop() *Store {
	n := len(stack.list)

	if n == 0 {
		return nil
	}

	top := stack.list[n-1]
	stack.list = stack.list[:n-1]

	return top
}

func (stack *UndoStack) Len() int {
	return len(stack.list)
}

func (stack *UndoStack) Clear() {
	stack.list = nil
}
