package ingestion

// Split partitions ids into ceil(len(ids)/size) contiguous batches, in order.
// Every batch except possibly the last holds exactly size identifiers. Each
// batch receives a token from newID and starts as yet_to_start.
//
// Identifier slices are copied, so later changes to ids do not reach the
// batches.
func Split(ids []int, size int, newID func() string) ([]*Batch, error) {
	if len(ids) == 0 {
		return nil, ErrEmptyIDs
	}
	if size < 1 {
		return nil, ErrInvalidBatchSize
	}

	batches := make([]*Batch, 0, (len(ids)+size-1)/size)
	for start := 0; start < len(ids); start += size {
		end := min(start+size, len(ids))
		chunk := make([]int, end-start)
		copy(chunk, ids[start:end])
		batches = append(batches, &Batch{
			ID:     newID(),
			IDs:    chunk,
			Status: StatusNotStarted,
		})
	}
	return batches, nil
}
