package Sets

// Set is a collection of distinct elements.
type Set[E any] interface {
	//Put e into the set. Returns false if e was already there.
	Put(E) bool
	Has(E) bool
	//Remove e from the set. Returns false if e wasn't there.
	Remove(E) bool
	Size() uint
	//Take an element from the set without removing it. Which one depends on
	//the implementation. Returns the zero value if the set is empty.
	Take() E
	//Range calls f on the elements until f returns false.
	Range(func(E) bool)
}

// ExtendedSet adds bulk operations to Set. The Set[E] arguments are only read.
type ExtendedSet[E any] interface {
	Set[E]
	//PutAll elements of s, returns how many were new.
	PutAll(Set[E]) uint
	//RemoveAll elements of s, returns how many were removed.
	RemoveAll(Set[E]) uint
	//Eq reports whether both sets hold the same elements.
	Eq(Set[E]) bool
	Union(Set[E])
	Intersect(Set[E])
	//Filter returns a new set of the elements for which f is true.
	Filter(func(E) bool) ExtendedSet[E]
}
