package label

// Class is the coarse classifier derived from a label, used purely as an
// index key by the graph store's secondary index.
type Class int

const (
	ClassEmpty Class = iota
	ClassInt
	ClassString
	ClassAtomicVar
	ClassList2
	ClassList3
	ClassList4
	ClassList5
	ClassListVar
)

func (c Class) String() string {
	switch c {
	case ClassEmpty:
		return "empty"
	case ClassInt:
		return "int"
	case ClassString:
		return "string"
	case ClassAtomicVar:
		return "atomic_var"
	case ClassList2:
		return "list2"
	case ClassList3:
		return "list3"
	case ClassList4:
		return "list4"
	case ClassList5:
		return "list5"
	case ClassListVar:
		return "list_var"
	default:
		return "unknown"
	}
}

var lengthClass = map[int]Class{
	2: ClassList2,
	3: ClassList3,
	4: ClassList4,
	5: ClassList5,
}

// ClassOf computes the label class of l's atom list. It returns
// ErrLabelTooLong if the list has more than five elements.
func ClassOf(l Label) (Class, error) {
	n := len(l.List)
	if n == 0 {
		return ClassEmpty, nil
	}
	if n > 5 {
		return 0, ErrLabelTooLong
	}

	for _, a := range l.List {
		if a.Kind == AtomListVar {
			return ClassListVar, nil
		}
	}

	if n == 1 {
		return classOfSingleton(l.List[0]), nil
	}

	return lengthClass[n], nil
}

func classOfSingleton(a Atom) Class {
	switch a.Kind {
	case AtomInt, AtomNeg:
		return ClassInt
	case AtomChar, AtomString, AtomConcat:
		return ClassString
	case AtomVar:
		return ClassAtomicVar
	default:
		// indeg/outdeg/llength/slength and the remaining binary operators
		// (add/sub/mul/div) fall through the original runtime's
		// getLabelClass switch to its default case, which classifies as
		// ListVar, not Int.
		return ClassListVar
	}
}
