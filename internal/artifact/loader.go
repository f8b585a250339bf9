package artifact

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"strconv"

	"go.uber.org/zap"

	"netdash/pkg/config"
	"netdash/pkg/errors"
)

// LoadClusterResult reads and validates one cluster-result document.
func LoadClusterResult(path string) (ClusterResult, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return ClusterResult{}, errors.NewArtifactRead(path, err)
	}

	var res ClusterResult
	if err := json.Unmarshal(data, &res); err != nil {
		return ClusterResult{}, errors.NewArtifactParse(path, err)
	}
	if res.IDToName == nil {
		res.IDToName = map[string]string{}
	}

	if err := validate(res); err != nil {
		return ClusterResult{}, errors.NewArtifactInvariant(path, err.Error())
	}

	return res, nil
}

// validate enforces the structural invariants of a cluster document: the
// adjacency matrix is square, its dimension matches the cluster assignment,
// and every assigned cluster id has a display name.
func validate(res ClusterResult) error {
	n := len(res.Adjacency)
	for i, row := range res.Adjacency {
		if len(row) != n {
			return fmt.Errorf("adjacency matrix is not square: row %d has %d entries, want %d", i, len(row), n)
		}
	}
	if len(res.Clusters) != n {
		return fmt.Errorf("cluster assignment length %d does not match adjacency dimension %d", len(res.Clusters), n)
	}
	for i, id := range res.Clusters {
		if id < 0 || id >= len(res.ClusterNames) {
			return fmt.Errorf("node %d assigned to cluster %d with no name", i, id)
		}
	}
	for i, row := range res.Closeness {
		if len(row) != len(res.Closeness) {
			return fmt.Errorf("closeness matrix is not square: row %d has %d entries, want %d", i, len(row), len(res.Closeness))
		}
	}
	return nil
}

// LoadUserStats reads the user statistics table: a header row, an index
// column, and four numeric data columns.
func LoadUserStats(path string) (UserStats, error) {
	f, err := os.Open(path)
	if err != nil {
		return UserStats{}, errors.NewArtifactRead(path, err)
	}
	defer f.Close()

	reader := csv.NewReader(f)
	records, err := reader.ReadAll()
	if err != nil {
		return UserStats{}, errors.NewArtifactParse(path, err)
	}
	if len(records) == 0 {
		return EmptyUserStats(), nil
	}

	stats := EmptyUserStats()
	// records[0] is the header row; column labels are not meaningful.
	for line, record := range records[1:] {
		if len(record) != 5 {
			return UserStats{}, errors.NewArtifactParse(path,
				fmt.Errorf("line %d: want 5 fields, got %d", line+2, len(record)))
		}
		var values [4]float64
		for col := 0; col < 4; col++ {
			v, err := strconv.ParseFloat(record[col+1], 64)
			if err != nil {
				return UserStats{}, errors.NewArtifactParse(path,
					fmt.Errorf("line %d column %d: %w", line+2, col+1, err))
			}
			values[col] = v
		}
		stats.Users = append(stats.Users, record[0])
		for col := 0; col < 4; col++ {
			stats.Columns[col] = append(stats.Columns[col], values[col])
		}
	}

	return stats, nil
}

// Load reads all three artifacts with independent success-or-default
// semantics: a missing or malformed file degrades only its own structure to
// the canonical empty default, so the dashboard always starts. Failures are
// logged, never propagated.
func Load(cfg *config.Config, log *zap.Logger) Bundle {
	var b Bundle

	if res, err := LoadClusterResult(cfg.Cluster1Path()); err != nil {
		log.Warn("using empty cluster result",
			zap.String("path", cfg.Cluster1Path()),
			zap.Error(err),
		)
		b.Community = EmptyClusterResult()
	} else {
		b.Community = res
	}

	if res, err := LoadClusterResult(cfg.Cluster2Path()); err != nil {
		log.Warn("using empty cluster result",
			zap.String("path", cfg.Cluster2Path()),
			zap.Error(err),
		)
		b.Granular = EmptyClusterResult()
	} else {
		b.Granular = res
	}

	if stats, err := LoadUserStats(cfg.UserStatsPath()); err != nil {
		log.Warn("using empty user statistics",
			zap.String("path", cfg.UserStatsPath()),
			zap.Error(err),
		)
		b.Users = EmptyUserStats()
	} else {
		b.Users = stats
	}

	return b
}
