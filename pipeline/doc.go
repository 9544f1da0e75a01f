// Package pipeline provides a small pull-based iteration core for walking
// manifest records.
//
// Pipelines are lazy: no work happens until values are pulled via Collect,
// Drain, or ForEach. Each stage pulls from the previous stage on demand, so
// exactly one value is in flight at a time: the batch dispatcher relies on
// this to keep record processing strictly sequential.
//
// Thin is the sampling-stride operator: it keeps one record out of every
// stride records, counting from the first.
package pipeline
