package catalog

// NavIndexToNum maps a zero-based sidebar position to the one-based question
// numbering assigned by the backend. No bounds checking happens here: an
// index with no matching num resolves to "no such question" during lookup.
//
// The mapping is only onto when nums are contiguous from 1 in display order.
// With gaps (archived questions), some positions resolve to nothing and some
// nums become unreachable from the sidebar; that is a known constraint of
// the numbering scheme, not something to patch here.
func NavIndexToNum(navIndex int) int {
	return navIndex + 1
}
