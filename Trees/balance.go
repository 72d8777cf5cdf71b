package Trees

// InsertionStats describes what a call to InsertWithStats did.
// Rotations counts a single rotation as 1 and a double rotation as 2.
type InsertionStats struct {
	Inserted  bool
	Rotations int
}

// insert the value v to the subtree rooting at cur recursively. cur is
// passed by reference. A successful insertion returns true. A failed insertion
// happens when the value is already in u, in which case it returns false and
// nothing is modified. rotations is increased by the rotations performed.
func (u *AVLTree[T]) insert(curPtr **node[T], v T, rotations *int) bool {
	cur := *curPtr
	if cur == nil {
		*curPtr = &node[T]{v: v}
		return true
	}
	inserted := false
	if c := u.cmp(v, cur.v); c < 0 {
		inserted = u.insert(&cur.l, v, rotations)
	} else if c == 0 {
		return false
	} else {
		inserted = u.insert(&cur.r, v, rotations)
	}
	if inserted {
		update(cur)
		*rotations += u.fixInsert(curPtr, v)
	}
	return inserted
}

// fixInsert restores the AVL property at cur after v was inserted below it.
// The case is picked by comparing v to the child on the heavy side. Returns
// the number of rotations performed.
func (u *AVLTree[T]) fixInsert(curPtr **node[T], v T) int {
	cur := *curPtr
	switch b := balanceOf(cur); {
	case b > 1 && u.cmp(v, cur.l.v) < 0: // left-left
		rotateRight(curPtr)
		return 1
	case b < -1 && u.cmp(v, cur.r.v) > 0: // right-right
		rotateLeft(curPtr)
		return 1
	case b > 1: // left-right
		rotateLeft(&cur.l)
		rotateRight(curPtr)
		return 2
	case b < -1: // right-left
		rotateRight(&cur.r)
		rotateLeft(curPtr)
		return 2
	}
	return 0
}

// Insert [Tree.Insert]. Recursive.
// Time: O(D)
func (u *AVLTree[T]) Insert(v T) bool {
	return u.InsertWithStats(v).Inserted
}

// InsertWithStats is Insert that also reports the rotations it took. Recursive.
// Time: O(D)
func (u *AVLTree[T]) InsertWithStats(v T) (s InsertionStats) {
	if s.Inserted = u.insert(&u.root, v, &s.Rotations); s.Inserted {
		u.size++
	}
	return
}

// remove an element v from the subtree rooting at cur recursively. cur is
// passed by reference. Returns false if the removal failed(v doesn't exist
// in u), otherwise true. A node with two children takes the value of its
// in-order successor, which is then removed from the right subtree.
func (u *AVLTree[T]) remove(curPtr **node[T], v T) bool {
	cur := *curPtr
	if cur == nil {
		return false
	}
	if c := u.cmp(v, cur.v); c < 0 {
		if !u.remove(&cur.l, v) {
			return false
		}
	} else if c > 0 {
		if !u.remove(&cur.r, v) {
			return false
		}
	} else if cur.l == nil {
		*curPtr = cur.r
		return true
	} else if cur.r == nil {
		*curPtr = cur.l
		return true
	} else {
		s := cur.r
		for s.l != nil {
			s = s.l
		}
		cur.v = s.v
		// always true: s is in the right subtree. Size is adjusted in Remove.
		u.remove(&cur.r, s.v)
	}
	update(cur)
	u.fixRemove(curPtr)
	return true
}

// fixRemove restores the AVL property at cur after a removal below it. No
// single value marks where the tree shrank, so the case is picked by the
// balance of the child on the heavy side. Returns the number of rotations.
func (u *AVLTree[T]) fixRemove(curPtr **node[T]) int {
	cur := *curPtr
	switch b := balanceOf(cur); {
	case b > 1 && balanceOf(cur.l) >= 0: // left-left
		rotateRight(curPtr)
		return 1
	case b > 1: // left-right
		rotateLeft(&cur.l)
		rotateRight(curPtr)
		return 2
	case b < -1 && balanceOf(cur.r) <= 0: // right-right
		rotateLeft(curPtr)
		return 1
	case b < -1: // right-left
		rotateRight(&cur.r)
		rotateLeft(curPtr)
		return 2
	}
	return 0
}

// Remove [Tree.Remove]. Recursive.
// The size is decreased once per removed value, however many nodes the
// successor promotion touched.
// Time: O(D)
func (u *AVLTree[T]) Remove(v T) bool {
	if u.remove(&u.root, v) {
		u.size--
		return true
	}
	return false
}
