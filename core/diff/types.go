package diff

// Status classifies a reported change.
type Status string

const (
	// StatusAdded marks a name absent from the old snapshot.
	StatusAdded Status = "added"
	// StatusIncremented marks a name whose quantity grew between snapshots.
	StatusIncremented Status = "incremented"
)

// Entry represents one reported change for a single decoration name.
type Entry struct {
	// Name is the decoration name.
	Name string `json:"name"`

	// Status is the kind of change.
	Status Status `json:"status"`

	// Quantity is the owned amount for added entries.
	Quantity int `json:"quantity,omitempty"`

	// OldQuantity and NewQuantity bracket an incremented entry.
	OldQuantity int `json:"old_quantity,omitempty"`
	NewQuantity int `json:"new_quantity,omitempty"`

	// Delta is NewQuantity - OldQuantity, always positive for
	// incremented entries.
	Delta int `json:"delta,omitempty"`
}

// Report is the ordered outcome of one comparison run. It is the sole
// artifact handed to renderers; both groups preserve the order names first
// appear in the new export.
type Report struct {
	// Added holds entries for newly present names.
	Added []Entry `json:"added"`

	// Incremented holds entries for grown quantities.
	Incremented []Entry `json:"incremented"`

	// Summary provides aggregate counts.
	Summary Summary `json:"summary"`
}

// Empty reports whether the comparison found nothing to report.
func (r *Report) Empty() bool {
	return len(r.Added) == 0 && len(r.Incremented) == 0
}

// Summary provides aggregate statistics for a report.
type Summary struct {
	// AddedItems is the number of newly present names.
	AddedItems int `json:"added_items"`

	// IncrementedItems is the number of names whose quantity grew.
	IncrementedItems int `json:"incremented_items"`

	// AddedQuantity is the summed quantity of added entries.
	AddedQuantity int `json:"added_quantity"`

	// IncrementedDelta is the summed delta of incremented entries.
	IncrementedDelta int `json:"incremented_delta"`
}
