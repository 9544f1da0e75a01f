// Package batch iterates a manifest shard and dispatches each selected
// record to a decoding engine.
//
// Records are processed strictly in manifest order, one at a time: a
// record's input is opened, decoded, and closed before the next record is
// touched, so a run holds at most one input descriptor open regardless of
// manifest size. After the last record the engine is asked for its run
// summary and pending metrics are flushed.
package batch
