package histogram

import "sort"

// MinCountToShow is the smallest read count a fragment length needs to be kept.
const MinCountToShow = 5

// Distribution maps a fragment length in base pairs to its read count.
type Distribution map[int]int

// Lengths returns the fragment lengths in ascending order.
func (d Distribution) Lengths() []int {
	out := make([]int, 0, len(d))
	for l := range d {
		out = append(out, l)
	}
	sort.Ints(out)
	return out
}

// Total returns the number of reads in the distribution.
func (d Distribution) Total() int {
	n := 0
	for _, c := range d {
		n += c
	}
	return n
}

// Dataset maps a sample name to its distribution.
type Dataset map[string]Distribution

// Names returns the sample names in lexical order.
func (ds Dataset) Names() []string {
	out := make([]string, 0, len(ds))
	for name := range ds {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}

// MergeSample stores d under name, replacing any distribution already there.
// The two distributions are never combined: the later one wins outright.
// It returns the dataset, allocated if ds was nil, and whether an existing
// entry was replaced.
func MergeSample(ds Dataset, name string, d Distribution) (Dataset, bool) {
	if ds == nil {
		ds = make(Dataset)
	}
	_, replaced := ds[name]
	ds[name] = d
	return ds, replaced
}
