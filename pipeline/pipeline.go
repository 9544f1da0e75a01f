package pipeline

import "context"

// Iterator is a pull-based source of values. Next returns the next value,
// whether one was produced, and any error; (zero, false, nil) means the
// source is exhausted. Close releases whatever the iterator holds open.
type Iterator[T any] interface {
	Next(ctx context.Context) (T, bool, error)
	Close() error
}

// Pipeline is a lazily built chain of iterator stages. Nothing runs until
// a terminal (Drain, Collect, ForEach) pulls values through the chain.
type Pipeline[T any] struct {
	create func(ctx context.Context) Iterator[T]
}

// Runnable is a terminal pipeline waiting to be executed.
type Runnable struct {
	run func(ctx context.Context) error
}

// Run pulls the pipeline to completion. It stops at the first error from
// any stage or from the sink.
func (r *Runnable) Run(ctx context.Context) error {
	return r.run(ctx)
}

// From wraps an existing Iterator in a Pipeline.
func From[T any](iter Iterator[T]) *Pipeline[T] {
	return &Pipeline[T]{
		create: func(_ context.Context) Iterator[T] {
			return iter
		},
	}
}

// FromSlice builds a pipeline over an in-memory slice. Values are yielded
// in slice order.
func FromSlice[T any](items []T) *Pipeline[T] {
	return &Pipeline[T]{
		create: func(_ context.Context) Iterator[T] {
			return &sliceIter[T]{items: items}
		},
	}
}

// Drain builds a Runnable that feeds every value to sink, one at a time.
// The sink sees values strictly in source order, and each call returns
// before the next value is pulled.
func Drain[T any](p *Pipeline[T], sink func(context.Context, T) error) *Runnable {
	return &Runnable{
		run: func(ctx context.Context) error {
			iter := p.create(ctx)
			defer iter.Close()
			for {
				val, ok, err := iter.Next(ctx)
				if err != nil {
					return err
				}
				if !ok {
					return nil
				}
				if err := sink(ctx, val); err != nil {
					return err
				}
			}
		},
	}
}

// Collect pulls the whole pipeline into a slice. On error it returns the
// values gathered so far along with the error.
func Collect[T any](ctx context.Context, p *Pipeline[T]) ([]T, error) {
	iter := p.create(ctx)
	defer iter.Close()
	var out []T
	for {
		val, ok, err := iter.Next(ctx)
		if err != nil {
			return out, err
		}
		if !ok {
			return out, nil
		}
		out = append(out, val)
	}
}

// ForEach drains the pipeline through fn.
func ForEach[T any](ctx context.Context, p *Pipeline[T], fn func(context.Context, T) error) error {
	return Drain(p, fn).Run(ctx)
}

type sliceIter[T any] struct {
	items []T
	index int
}

func (it *sliceIter[T]) Next(_ context.Context) (T, bool, error) {
	if it.index >= len(it.items) {
		var zero T
		return zero, false, nil
	}
	val := it.items[it.index]
	it.index++
	return val, true, nil
}

func (it *sliceIter[T]) Close() error { return nil }
