package size

import "sort"

// List is a slice of ByteSize values
type List []ByteSize

func (l List) Len() int           { return len(l) }
func (l List) Swap(i, j int)      { l[i], l[j] = l[j], l[i] }
func (l List) Less(i, j int) bool { return l[i] < l[j] }

// Sort sorts the list, smallest first
func (l List) Sort() {
	sort.Sort(l)
}

// Sum returns the total of the list
func (l List) Sum() (ByteSize, error) {
	return Sum(l...)
}

// Strings returns the canonical form of each entry
func (l List) Strings() []string {
	out := make([]string, len(l))
	for i, x := range l {
		out[i] = x.String()
	}
	return out
}
