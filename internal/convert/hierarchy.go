package convert

import (
	"sort"

	"github.com/eZtaR1/ticktick-to-todoist/internal/ticktick"
)

// MaxIndent is the deepest nesting Todoist supports. Descendants below
// this depth all collapse to level 4.
const MaxIndent = 4

// HierarchyIndex maps a task id to its computed indent level (1–4).
type HierarchyIndex map[string]int

// ResolveHierarchy computes indent levels and a pre-order flattening of
// the parent/child forest: every parent precedes its descendants and
// siblings keep their source order. A record whose parentId refers to
// no known task is treated as a root.
func ResolveHierarchy(records []ticktick.Record) (HierarchyIndex, []string) {
	known := make(map[string]bool, len(records))
	for _, r := range records {
		known[r.TaskID] = true
	}

	var roots []string
	children := make(map[string][]string)
	for _, r := range records {
		if r.ParentID == "" || !known[r.ParentID] {
			roots = append(roots, r.TaskID)
		} else {
			children[r.ParentID] = append(children[r.ParentID], r.TaskID)
		}
	}

	index := make(HierarchyIndex, len(records))
	order := make([]string, 0, len(records))
	visited := make(map[string]bool, len(records))

	var visit func(id string, level int)
	visit = func(id string, level int) {
		if visited[id] {
			return
		}
		visited[id] = true
		index[id] = min(level, MaxIndent)
		order = append(order, id)
		for _, child := range children[id] {
			visit(child, level+1)
		}
	}

	for _, id := range roots {
		visit(id, 1)
	}

	// Tasks caught in a parentId cycle are never reached from a root.
	// Surface them as roots in source order instead of dropping them.
	for _, r := range records {
		if !visited[r.TaskID] {
			visit(r.TaskID, 1)
		}
	}

	return index, order
}

// Reorder returns the records sorted into the given id ordering.
// Records sharing an id keep their relative source order.
func Reorder(records []ticktick.Record, order []string) []ticktick.Record {
	position := make(map[string]int, len(order))
	for i, id := range order {
		position[id] = i
	}

	sorted := make([]ticktick.Record, len(records))
	copy(sorted, records)
	sort.SliceStable(sorted, func(i, j int) bool {
		return position[sorted[i].TaskID] < position[sorted[j].TaskID]
	})
	return sorted
}
