// Package manifest loads batch manifest files and partitions them into
// disjoint shards for distributed decoding runs.
//
// A manifest is a plain text file with one record per line. Each record
// names an input to decode, optionally followed by a whitespace-separated
// reference transcript:
//
//	audio/sw02001.wav  HELLO WORLD
//	audio/sw02002.wav
//
// Records keep their file order. Partition assigns each record to exactly
// one shard; the last shard absorbs the remainder when the manifest does
// not divide evenly.
package manifest
