package optree

import "sort"

// CollectUnique walks the DAG reachable from root and returns every node
// exactly once, deduplicated by OperatorID and sorted ascending. Because
// children are always constructed (and therefore assigned an OperatorID)
// before their parent, ascending order is also a valid dependency order:
// every node appears after all of its children.
//
// This single traversal backs both the day-boundary broadcast and the
// checkpoint codec's node enumeration, so "evaluated/serialised exactly
// once despite sharing" is enforced in one place.
func CollectUnique(root Node) []Node {
	seen := make(map[OperatorID]Node)
	var visit func(n Node)
	visit = func(n Node) {
		if n == nil {
			return
		}
		if _, ok := seen[n.OpID()]; ok {
			return
		}
		seen[n.OpID()] = n
		for _, c := range n.Children() {
			visit(c)
		}
	}
	visit(root)

	out := make([]Node, 0, len(seen))
	for _, n := range seen {
		out = append(out, n)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].OpID() < out[j].OpID() })

	return out
}

// BroadcastDayBegin invokes OnDayBegin on every unique node reachable from
// root, exactly once, in ascending OperatorID order.
func BroadcastDayBegin(root Node) {
	for _, n := range CollectUnique(root) {
		n.OnDayBegin()
	}
}

// BroadcastDayEnd invokes OnDayEnd on every unique node reachable from
// root, exactly once, in ascending OperatorID order.
func BroadcastDayEnd(root Node) {
	for _, n := range CollectUnique(root) {
		n.OnDayEnd()
	}
}
