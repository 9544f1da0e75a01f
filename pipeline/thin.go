package pipeline

import "context"

// Thin keeps roughly one value out of every stride values, starting with
// the first. A stride of 0 or 1 keeps every value.
//
// The exact rule: a counter starts at stride; each value increments it, and
// the value is kept when the counter reaches stride, which resets it to
// zero. For stride K > 1 this selects source indices 0, K, 2K, ...
func Thin[T any](p *Pipeline[T], stride int) *Pipeline[T] {
	return &Pipeline[T]{
		create: func(ctx context.Context) Iterator[T] {
			return &thinIter[T]{source: p.create(ctx), stride: stride, count: stride}
		},
	}
}

type thinIter[T any] struct {
	source Iterator[T]
	stride int
	count  int
}

func (it *thinIter[T]) Next(ctx context.Context) (result T, ok bool, err error) {
	for {
		val, ok, err := it.source.Next(ctx)
		if err != nil || !ok {
			return val, false, err
		}
		it.count++
		if it.count >= it.stride {
			it.count = 0
			return val, true, nil
		}
	}
}

func (it *thinIter[T]) Close() error { return it.source.Close() }
