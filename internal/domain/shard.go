package domain

import (
	"fmt"
	"strconv"
	"strings"

	m "gooze.dev/pkg/reconmut/internal/model"
)

// ShardMutations returns the mutations assigned to shard index out of total
// using round-robin over the slice order. A total of zero disables sharding.
func ShardMutations(mutations []m.Mutation, index, total uint) []m.Mutation {
	if total == 0 {
		return mutations
	}

	var shard []m.Mutation

	for i, mutation := range mutations {
		if inShard(uint(i), index, total) {
			shard = append(shard, mutation)
		}
	}

	return shard
}

// inShard reports whether the candidate at position belongs to shard index.
func inShard(position, index, total uint) bool {
	return total == 0 || position%total == index
}

// ParseShard parses an "INDEX/TOTAL" shard selector. An empty string disables
// sharding.
func ParseShard(value string) (uint, uint, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return 0, 0, nil
	}

	parts := strings.Split(value, "/")
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("invalid shard %q: expected INDEX/TOTAL", value)
	}

	index, err := strconv.ParseUint(strings.TrimSpace(parts[0]), 10, 32)
	if err != nil {
		return 0, 0, fmt.Errorf("invalid shard index %q: %w", parts[0], err)
	}

	total, err := strconv.ParseUint(strings.TrimSpace(parts[1]), 10, 32)
	if err != nil {
		return 0, 0, fmt.Errorf("invalid shard total %q: %w", parts[1], err)
	}

	if total == 0 || index >= total {
		return 0, 0, fmt.Errorf("invalid shard %q: index must be lower than total", value)
	}

	return uint(index), uint(total), nil
}
