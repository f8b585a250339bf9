package artifact

import (
	"strconv"

	"github.com/dominikbraun/graph"
)

// ClusterResult is one immutable community-detection snapshot, loaded at
// startup from a JSON document produced by the upstream analysis pipeline.
// The adjacency matrix is square and symmetric; Clusters maps node index to
// cluster id; ClusterNames maps cluster id to display name.
type ClusterResult struct {
	Adjacency    [][]float64       `json:"adjacencym"`
	Clusters     []int             `json:"clusters"`
	ClusterNames []string          `json:"cluster_names"`
	IDToName     map[string]string `json:"id_to_name"`
	ClusterSize  []float64         `json:"cluster_size"`
	ClusterMax   []float64         `json:"cluster_max"`
	ClusterMin   []float64         `json:"cluster_min"`
	ClusterAvg   []float64         `json:"cluster_avg"`
	Closeness    [][]float64       `json:"closeness"`
}

// UserStats is the per-user connection statistics table. Columns are
// positional (the source CSV header is not meaningful) and column-major so
// each column can feed one chart series directly.
type UserStats struct {
	Users   []string
	Columns [4][]float64
}

// Bundle holds everything the dashboard renders: the two cluster resolutions
// and the global user statistics table.
type Bundle struct {
	Community ClusterResult
	Granular  ClusterResult
	Users     UserStats
}

// EmptyClusterResult returns the canonical structurally-valid default used
// when a cluster document is absent or malformed.
func EmptyClusterResult() ClusterResult {
	return ClusterResult{
		Adjacency:    [][]float64{},
		Clusters:     []int{},
		ClusterNames: []string{},
		IDToName:     map[string]string{},
		ClusterSize:  []float64{},
		ClusterMax:   []float64{},
		ClusterMin:   []float64{},
		ClusterAvg:   []float64{},
		Closeness:    [][]float64{},
	}
}

// EmptyUserStats returns the canonical empty statistics table.
func EmptyUserStats() UserStats {
	return UserStats{Users: []string{}}
}

// Nodes returns the number of nodes in the snapshot.
func (r ClusterResult) Nodes() int {
	return len(r.Adjacency)
}

// NodeName returns the display name for a node index, falling back to the
// index itself when the identity is not in the mapping.
func (r ClusterResult) NodeName(i int) string {
	if name, ok := r.IDToName[strconv.Itoa(i)]; ok {
		return name
	}
	return strconv.Itoa(i)
}

// ClusterName returns the display name for a cluster id.
func (r ClusterResult) ClusterName(id int) string {
	if id >= 0 && id < len(r.ClusterNames) {
		return r.ClusterNames[id]
	}
	return "Cluster " + strconv.Itoa(id)
}

// Graph exposes the adjacency matrix as a weighted undirected graph for the
// network renderer. Only the upper triangle is walked so each edge is added
// once.
func (r ClusterResult) Graph() graph.Graph[int, int] {
	g := graph.New(graph.IntHash, graph.Weighted())
	for i := range r.Adjacency {
		_ = g.AddVertex(i)
	}
	for i := range r.Adjacency {
		row := r.Adjacency[i]
		for j := i + 1; j < len(row); j++ {
			if row[j] != 0 {
				_ = g.AddEdge(i, j, graph.EdgeWeight(int(row[j])))
			}
		}
	}
	return g
}

// Rows returns the number of users in the statistics table.
func (s UserStats) Rows() int {
	return len(s.Users)
}
