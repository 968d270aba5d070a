package render

import (
	"strconv"

	"decochanges/core/diff"

	"github.com/pterm/pterm"
)

// Console prints the report to the terminal as tables, one per non-empty
// group, followed by the totals.
func Console(report *diff.Report) error {
	pterm.DefaultSection.Println(headingIncremented)
	if len(report.Incremented) == 0 {
		pterm.Info.Println("No changes to existing decorations.")
	} else {
		data := pterm.TableData{{"Decoration", "Added", "Total"}}
		for _, e := range sortedByName(report.Incremented) {
			data = append(data, []string{e.Name, strconv.Itoa(e.Delta), strconv.Itoa(e.NewQuantity)})
		}
		if err := pterm.DefaultTable.WithHasHeader().WithData(data).Render(); err != nil {
			return err
		}
	}

	pterm.DefaultSection.Println(headingAdded)
	if len(report.Added) == 0 {
		pterm.Info.Println("No newly added decorations.")
	} else {
		data := pterm.TableData{{"Decoration", "Amount"}}
		for _, e := range sortedByName(report.Added) {
			data = append(data, []string{e.Name, strconv.Itoa(e.Quantity)})
		}
		if err := pterm.DefaultTable.WithHasHeader().WithData(data).Render(); err != nil {
			return err
		}
	}

	pterm.Println()
	pterm.Printfln("Total added (changed decorations): %d", report.Summary.IncrementedDelta)
	pterm.Printfln("Total added (new decorations): %d", report.Summary.AddedItems)
	return nil
}
