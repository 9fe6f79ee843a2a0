package ingestion

// Derive computes a submission's overall status from its batch statuses:
// completed when every batch is completed, triggered when any batch is
// triggered, yet_to_start otherwise. An empty list derives to completed.
func Derive(statuses []Status) Status {
	allCompleted := true
	for _, s := range statuses {
		if s == StatusInProgress {
			return StatusInProgress
		}
		if s != StatusCompleted {
			allCompleted = false
		}
	}
	if allCompleted {
		return StatusCompleted
	}
	return StatusNotStarted
}

// Status derives the submission's overall status from its current batches.
func (s *Submission) Status() Status {
	statuses := make([]Status, len(s.Batches))
	for i, b := range s.Batches {
		statuses[i] = b.Status
	}
	return Derive(statuses)
}

// Report builds the client-facing status view of the submission.
func (s *Submission) Report() *StatusReport {
	report := &StatusReport{
		IngestionID: s.ID,
		Status:      s.Status(),
		Batches:     make([]Batch, len(s.Batches)),
	}
	for i, b := range s.Batches {
		report.Batches[i] = *b.clone()
	}
	return report
}
