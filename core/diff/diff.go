package diff

import "decochanges/core/snapshot"

// Diff compares two snapshots of the same collection and reports decorations
// that are newly present or whose quantity increased.
//
// It iterates the after snapshot in insertion order: a name absent from
// before becomes an added entry, a name present in both with a strictly
// greater quantity becomes an incremented entry, and everything else
// (equal quantities, decreases, names only in before) produces nothing.
// Zero quantities are valid and compared numerically like any other value,
// so a 0 -> n change is an increment, not an addition.
func Diff(before, after *snapshot.Snapshot) *Report {
	report := &Report{
		Added:       []Entry{},
		Incremented: []Entry{},
	}

	for _, name := range after.Names() {
		quantity, _ := after.Get(name)

		oldQuantity, present := before.Get(name)
		switch {
		case !present:
			report.Added = append(report.Added, Entry{
				Name:     name,
				Status:   StatusAdded,
				Quantity: quantity,
			})
			report.Summary.AddedItems++
			report.Summary.AddedQuantity += quantity
		case quantity > oldQuantity:
			report.Incremented = append(report.Incremented, Entry{
				Name:        name,
				Status:      StatusIncremented,
				OldQuantity: oldQuantity,
				NewQuantity: quantity,
				Delta:       quantity - oldQuantity,
			})
			report.Summary.IncrementedItems++
			report.Summary.IncrementedDelta += quantity - oldQuantity
		}
	}

	return report
}
