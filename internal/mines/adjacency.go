package mines

// RecomputeAdjacency rebuilds the adjacency grid from the current mine
// layout. A cell's own mine never counts towards its value.
func (b *Board) RecomputeAdjacency() {
	for y := range b.height {
		for x := range b.width {
			var v uint8
			b.neighbors(x, y, true, func(xx, yy int) {
				if b.cells[yy*b.width+xx].Mine {
					v++
				}
			})
			b.adj[y*b.width+x] = v
		}
	}
}
