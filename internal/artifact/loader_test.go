package artifact

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"go.uber.org/zap"

	"netdash/pkg/config"
)

const validClusterJSON = `{
	"adjacencym": [[0, 1, 0, 0], [1, 0, 1, 0], [0, 1, 0, 1], [0, 0, 1, 0]],
	"clusters": [0, 0, 1, 1],
	"cluster_names": ["Inner Circle", "Acquaintances"],
	"id_to_name": {"0": "alice", "1": "bob", "2": "carol", "3": "dave"},
	"cluster_size": [2, 2],
	"cluster_max": [1, 1],
	"cluster_min": [1, 1],
	"cluster_avg": [1, 1],
	"closeness": [[1, 0.25], [0.25, 1]]
}`

const validUserStatsCSV = `user,c0,c1,c2,c3
alice,10,4,40.0,1
bob,8,3,37.5,2
carol,5,1,20.0,3
`

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("Failed to write fixture: %v", err)
	}
	return path
}

func testConfig(dir string) *config.Config {
	return &config.Config{
		Port:          "8080",
		Env:           "test",
		SessionSecret: "test-secret",
		DataDir:       dir,
		Cluster1File:  "cluster1.json",
		Cluster2File:  "cluster2.json",
		UserStatsFile: "user_stats.csv",
	}
}

func TestLoadClusterResult_Valid(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "cluster1.json", validClusterJSON)

	res, err := LoadClusterResult(path)
	if err != nil {
		t.Fatalf("LoadClusterResult failed: %v", err)
	}

	if res.Nodes() != 4 {
		t.Errorf("Expected 4 nodes, got %d", res.Nodes())
	}
	if len(res.ClusterNames) != 2 {
		t.Errorf("Expected 2 cluster names, got %d", len(res.ClusterNames))
	}
	if res.NodeName(2) != "carol" {
		t.Errorf("Expected node 2 to be 'carol', got %q", res.NodeName(2))
	}
	if res.ClusterName(1) != "Acquaintances" {
		t.Errorf("Unexpected cluster name: %q", res.ClusterName(1))
	}
}

func TestLoadClusterResult_Missing(t *testing.T) {
	_, err := LoadClusterResult(filepath.Join(t.TempDir(), "nope.json"))
	if err == nil {
		t.Fatal("Expected error for missing file")
	}
}

func TestLoadClusterResult_Malformed(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "cluster1.json", "{not json")

	if _, err := LoadClusterResult(path); err == nil {
		t.Fatal("Expected error for malformed JSON")
	}
}

func TestLoadClusterResult_Invariants(t *testing.T) {
	cases := []struct {
		name string
		doc  string
	}{
		{
			name: "non-square adjacency",
			doc:  `{"adjacencym": [[0, 1], [1]], "clusters": [0, 0], "cluster_names": ["A"]}`,
		},
		{
			name: "assignment length mismatch",
			doc:  `{"adjacencym": [[0, 1], [1, 0]], "clusters": [0], "cluster_names": ["A"]}`,
		},
		{
			name: "unnamed cluster",
			doc:  `{"adjacencym": [[0, 1], [1, 0]], "clusters": [0, 3], "cluster_names": ["A"]}`,
		},
		{
			name: "non-square closeness",
			doc:  `{"adjacencym": [], "clusters": [], "cluster_names": [], "closeness": [[1, 2]]}`,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			path := writeFile(t, t.TempDir(), "cluster.json", tc.doc)
			if _, err := LoadClusterResult(path); err == nil {
				t.Errorf("Expected invariant error for %s", tc.name)
			}
		})
	}
}

func TestLoadUserStats_Valid(t *testing.T) {
	path := writeFile(t, t.TempDir(), "user_stats.csv", validUserStatsCSV)

	stats, err := LoadUserStats(path)
	if err != nil {
		t.Fatalf("LoadUserStats failed: %v", err)
	}

	if stats.Rows() != 3 {
		t.Fatalf("Expected 3 rows, got %d", stats.Rows())
	}
	if stats.Users[1] != "bob" {
		t.Errorf("Expected user 'bob', got %q", stats.Users[1])
	}
	if stats.Columns[2][1] != 37.5 {
		t.Errorf("Expected column 2 row 1 to be 37.5, got %v", stats.Columns[2][1])
	}
}

func TestLoadUserStats_MalformedCell(t *testing.T) {
	path := writeFile(t, t.TempDir(), "user_stats.csv", "user,a,b,c,d\nalice,1,oops,3,4\n")

	if _, err := LoadUserStats(path); err == nil {
		t.Fatal("Expected error for non-numeric cell")
	}
}

func TestLoadUserStats_HeaderOnly(t *testing.T) {
	path := writeFile(t, t.TempDir(), "user_stats.csv", "user,a,b,c,d\n")

	stats, err := LoadUserStats(path)
	if err != nil {
		t.Fatalf("LoadUserStats failed: %v", err)
	}
	if stats.Rows() != 0 {
		t.Errorf("Expected 0 rows, got %d", stats.Rows())
	}
}

func TestLoad_AllMissing(t *testing.T) {
	bundle := Load(testConfig(t.TempDir()), zap.NewNop())

	if !reflect.DeepEqual(bundle.Community, EmptyClusterResult()) {
		t.Error("Community should equal the canonical empty default")
	}
	if !reflect.DeepEqual(bundle.Granular, EmptyClusterResult()) {
		t.Error("Granular should equal the canonical empty default")
	}
	if !reflect.DeepEqual(bundle.Users, EmptyUserStats()) {
		t.Error("Users should equal the canonical empty default")
	}
}

// A failure in one artifact must not mask a successful load of another.
func TestLoad_IndependentFallback(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "cluster1.json", validClusterJSON)
	writeFile(t, dir, "user_stats.csv", "user,a,b,c,d\nalice,1,broken,3,4\n")
	// cluster2.json deliberately absent

	bundle := Load(testConfig(dir), zap.NewNop())

	if bundle.Community.Nodes() != 4 {
		t.Errorf("Community should have loaded, got %d nodes", bundle.Community.Nodes())
	}
	if !reflect.DeepEqual(bundle.Granular, EmptyClusterResult()) {
		t.Error("Granular should have fallen back to the empty default")
	}
	if !reflect.DeepEqual(bundle.Users, EmptyUserStats()) {
		t.Error("Users should have fallen back to the empty default")
	}
}

func TestClusterResult_Graph(t *testing.T) {
	path := writeFile(t, t.TempDir(), "cluster1.json", validClusterJSON)
	res, err := LoadClusterResult(path)
	if err != nil {
		t.Fatalf("LoadClusterResult failed: %v", err)
	}

	edges, err := res.Graph().Edges()
	if err != nil {
		t.Fatalf("Edges failed: %v", err)
	}
	if len(edges) != 3 {
		t.Errorf("Expected 3 edges, got %d", len(edges))
	}
}
