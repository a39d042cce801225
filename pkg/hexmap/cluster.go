// pkg/hexmap/cluster.go
package hexmap

// RandomSource supplies uniform draws in [0, 1). *rand.Rand satisfies it.
type RandomSource interface {
	Float64() float64
}

// ClusterOptions bounds the flood fill.
type ClusterOptions struct {
	// MaxIterations caps the number of frontier pops; generation stops
	// silently once it is reached, whatever is still queued.
	MaxIterations int
	// AcceptProbability is the chance a non-origin cell joins the cluster.
	AcceptProbability float64
}

const (
	DefaultMaxIterations     = 100
	DefaultAcceptProbability = 0.7
)

// DefaultClusterOptions returns the bounds used by the demo.
func DefaultClusterOptions() ClusterOptions {
	return ClusterOptions{
		MaxIterations:     DefaultMaxIterations,
		AcceptProbability: DefaultAcceptProbability,
	}
}

// Cluster is the list of accepted cells in the order they were accepted.
type Cluster []Hex

// GenerateCluster grows a random connected region around Origin using a
// breadth-first expansion over a FIFO frontier.
//
// The origin is always accepted. Every other cell is accepted with
// probability opts.AcceptProbability; a rejected cell is still marked
// visited and does not enqueue its neighbors, so a single rejection can
// prune a whole branch. Neighbors may be queued more than once; duplicates
// are dropped when popped.
func GenerateCluster(rng RandomSource, opts ClusterOptions) Cluster {
	if opts.MaxIterations <= 0 {
		opts.MaxIterations = DefaultMaxIterations
	}

	frontier := []Hex{Origin}
	visited := make(map[Hex]struct{})
	var cluster Cluster

	for i := 0; len(frontier) > 0 && i < opts.MaxIterations; i++ {
		candidate := frontier[0]
		frontier = frontier[1:]

		if _, seen := visited[candidate]; seen {
			continue
		}
		visited[candidate] = struct{}{}

		if candidate != Origin && rng.Float64() >= opts.AcceptProbability {
			continue
		}
		cluster = append(cluster, candidate)
		frontier = append(frontier, candidate.Neighbors()...)
	}

	return cluster
}

// contains reports whether h was accepted into the cluster.
func (c Cluster) contains(h Hex) bool {
	for _, cell := range c {
		if cell == h {
			return true
		}
	}
	return false
}

// Radius returns the largest hex distance from Origin to any cell.
func (c Cluster) Radius() int {
	radius := 0
	for _, cell := range c {
		if d := cell.Distance(Origin); d > radius {
			radius = d
		}
	}
	return radius
}
