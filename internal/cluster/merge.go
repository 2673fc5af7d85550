package cluster

// MergeLinked absorbs each candidate's own candidate list into the lists
// that reference it, naive concatenation only. Absorbed keys are returned as
// a tombstone set: the reporter skips them as line targets, though their
// names remain inside other lists. Off by default — weak intermediate links
// can chain arbitrarily unrelated lemmas together, so callers must opt in.
//
// Keys are processed in store order and each list is rescanned as it grows,
// so a key absorbs transitively through candidates discovered mid-merge.
func MergeLinked(edges Edges, order []string) map[string]bool {
	absorbed := make(map[string]bool)

	for _, key := range order {
		if absorbed[key] {
			continue
		}
		list, ok := edges[key]
		if !ok {
			continue
		}
		for i := 0; i < len(list); i++ {
			val := list[i]
			if val == key || absorbed[val] {
				continue
			}
			sub, ok := edges[val]
			if !ok {
				continue
			}
			list = append(list, sub...)
			absorbed[val] = true
		}
		edges[key] = list
	}
	return absorbed
}
