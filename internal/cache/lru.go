package cache

// node is an entry in the recency list.
type node struct {
	key        uint64
	value      []byte
	prev, next *node
}

// list is a doubly-linked recency list; head is the most recently used.
// It is not thread-safe; Cache holds its mutex around every call.
type list struct {
	head, tail *node
}

func (l *list) pushFront(n *node) {
	n.prev = nil
	n.next = l.head
	if l.head != nil {
		l.head.prev = n
	}
	l.head = n
	if l.tail == nil {
		l.tail = n
	}
}

func (l *list) remove(n *node) {
	if n.prev != nil {
		n.prev.next = n.next
	} else {
		l.head = n.next
	}
	if n.next != nil {
		n.next.prev = n.prev
	} else {
		l.tail = n.prev
	}
	n.prev, n.next = nil, nil
}

func (l *list) moveToFront(n *node) {
	if l.head == n {
		return
	}
	l.remove(n)
	l.pushFront(n)
}

func (l *list) back() *node {
	return l.tail
}
