package interfaces

import "context"

// ISequenceAllocator hands out the next value of a named counter. Values for a bucket
// start at 1 and each call returns a value no other call has received.
type ISequenceAllocator interface {
	Next(ctx context.Context, bucket string) (int64, error)
}
