package Queues

// Queue is a first in first out container.
type Queue[T any] interface {
	//Push item to the back of the queue.
	Push(item T)
	//Pop the item at the front of the queue. Returns an *EmptyQueueError if
	//the queue is empty.
	Pop() (T, error)
	//Peek at the front item without removing it. The bool is false if the
	//queue is empty.
	Peek() (T, bool)
	//Empty reports whether the queue has no items.
	Empty() bool
}

// ArrayQueue is a Queue backed by a circular array.
type ArrayQueue[T any] interface {
	Queue[T]
	//Shrink the backing array to fit the items.
	Shrink()
	//Clear all items, keeping the backing array.
	Clear()
	//Size is the number of items in the queue.
	Size() uint
}

type EmptyQueueError struct {
}

func (e *EmptyQueueError) Error() string {
	return "Queue is Empty: cannot Pop."
}
