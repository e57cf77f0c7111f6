package service

// reconcileImages derives an update's final image list and the superseded
// set. keep is the client's retained-path list; only paths actually on the
// record count, so a request cannot graft foreign paths onto a row. The
// final list is retained paths first, then newly uploaded ones, without
// duplicates; toDelete is every current path the client dropped.
func reconcileImages(current, keep, added []string) (final []string, toDelete []string) {
	currentSet := make(map[string]struct{}, len(current))
	for _, p := range current {
		currentSet[p] = struct{}{}
	}

	final = []string{}
	kept := make(map[string]struct{}, len(keep))
	for _, p := range keep {
		if _, ok := currentSet[p]; !ok {
			continue
		}
		if _, dup := kept[p]; dup {
			continue
		}
		kept[p] = struct{}{}
		final = append(final, p)
	}

	for _, p := range added {
		if _, dup := kept[p]; dup {
			continue
		}
		kept[p] = struct{}{}
		final = append(final, p)
	}

	for _, p := range current {
		if _, ok := kept[p]; !ok {
			toDelete = append(toDelete, p)
		}
	}
	return final, toDelete
}
