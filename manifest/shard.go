package manifest

// Shard identifies which contiguous slice of a manifest a run owns.
type Shard struct {
	// Index is this run's shard number, starting at 0.
	Index int `json:"index" yaml:"index" mapstructure:"index"`
	// Total is the total number of shards the manifest is split across.
	Total int `json:"total" yaml:"total" mapstructure:"total"`
}

// Normalize clamps the descriptor into a valid range: Total is floored at
// 1, a negative Index becomes 0, and an Index past the last shard becomes
// Total-1. Out-of-range descriptors are a soft misconfiguration, not an
// error.
func (s Shard) Normalize() Shard {
	if s.Total < 1 {
		s.Total = 1
	}
	if s.Index < 0 {
		s.Index = 0
	}
	if s.Index >= s.Total {
		s.Index = s.Total - 1
	}
	return s
}

// Partition returns the subsequence of records assigned to shard. With a
// single shard the whole manifest is returned. Otherwise each shard gets
// linesPerShard = max(1, len/Total) consecutive records, and the last
// shard additionally absorbs the remainder, so every record lands in
// exactly one shard and none is dropped.
func Partition(records []Record, shard Shard) []Record {
	shard = shard.Normalize()
	if shard.Total <= 1 {
		return records
	}

	perShard := len(records) / shard.Total
	if perShard < 1 {
		perShard = 1
	}

	start := shard.Index * perShard
	if start > len(records) {
		start = len(records)
	}

	if shard.Index == shard.Total-1 {
		return records[start:]
	}

	end := start + perShard
	if end > len(records) {
		end = len(records)
	}
	return records[start:end]
}
