package pokedex

// MergeStats summarises a merge.
type MergeStats struct {
	Visited int
	Added   int
	Skipped int
}

// Merge walks src level by level and inserts a node sharing each visited
// entry into dst. Ids already in dst are skipped. src is left intact; its
// entries are now shared with dst, so dst never takes ownership of them.
func Merge(dst, src *Tree) MergeStats {
	var stats MergeStats
	if src == nil || src.root == nil {
		return stats
	}
	queue := make([]*Node, 0, src.size)
	queue = append(queue, src.root)
	for i := 0; i < len(queue); i++ {
		cur := queue[i]
		stats.Visited++
		if err := dst.insertNode(&Node{ref: cur.ref.Share()}); err != nil {
			stats.Skipped++
		} else {
			stats.Added++
		}
		if cur.left != nil {
			queue = append(queue, cur.left)
		}
		if cur.right != nil {
			queue = append(queue, cur.right)
		}
	}
	return stats
}
