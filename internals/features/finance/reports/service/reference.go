package service

import (
	"fmt"
	"strings"
	"time"

	"pmics_backend/internals/features/finance/reports/dto"
	"pmics_backend/internals/helpers/tabular"
)

// FiscalYears: tahun berjalan − 5 … + 1.
func FiscalYears(now time.Time) []int {
	y := now.Year()
	out := make([]int, 0, 7)
	for i := y - 5; i <= y+1; i++ {
		out = append(out, i)
	}
	return out
}

// Programs: program_code unik (non-kosong), urutan kemunculan.
func Programs(batches []dto.BatchOption) []string {
	seen := map[string]bool{}
	out := []string{}
	for _, b := range batches {
		if b.ProgramCode == "" || seen[b.ProgramCode] {
			continue
		}
		seen[b.ProgramCode] = true
		out = append(out, b.ProgramCode)
	}
	return out
}

// ResolveSelection menerapkan filter bertingkat:
//   - program dipilih → batch dibatasi ke program itu; batch di luar daftar → all
//   - batch dipilih → period dibatasi ke batch itu; period di luar daftar → all
func ResolveSelection(sel dto.Selection, batches []dto.BatchOption, periods []dto.PeriodOption) (dto.Selection, []dto.BatchOption, []dto.PeriodOption) {
	visibleBatches := batches
	if !tabular.IsDisabled(sel.Program) {
		visibleBatches = []dto.BatchOption{}
		for _, b := range batches {
			if b.ProgramCode == sel.Program {
				visibleBatches = append(visibleBatches, b)
			}
		}
		if !tabular.IsDisabled(sel.Batch) && !hasBatch(visibleBatches, sel.Batch) {
			sel.Batch = dto.All
		}
	}

	visiblePeriods := periods
	if !tabular.IsDisabled(sel.Batch) {
		var batchUUID string
		for _, b := range batches {
			if b.BatchID == sel.Batch {
				batchUUID = b.ID
				break
			}
		}
		if batchUUID != "" {
			visiblePeriods = []dto.PeriodOption{}
			for _, p := range periods {
				if p.BatchID == batchUUID {
					visiblePeriods = append(visiblePeriods, p)
				}
			}
			if !tabular.IsDisabled(sel.Period) && !hasPeriod(visiblePeriods, sel.Period) {
				sel.Period = dto.All
			}
		}
	}
	return sel, visibleBatches, visiblePeriods
}

func hasBatch(list []dto.BatchOption, code string) bool {
	for _, b := range list {
		if b.BatchID == code {
			return true
		}
	}
	return false
}

func hasPeriod(list []dto.PeriodOption, name string) bool {
	for _, p := range list {
		if p.Name == name {
			return true
		}
	}
	return false
}

func activeFilters(sel dto.Selection) []string {
	parts := []string{}
	if !tabular.IsDisabled(sel.Program) {
		parts = append(parts, "Program: "+sel.Program)
	}
	if !tabular.IsDisabled(sel.Batch) {
		parts = append(parts, "Batch: "+sel.Batch)
	}
	if !tabular.IsDisabled(sel.Period) {
		parts = append(parts, "Period: "+sel.Period)
	}
	return parts
}

// FilterDescription: "Program: X | Batch: Y | 2025" atau
// "All batches and programs for 2025".
func FilterDescription(sel dto.Selection) string {
	parts := activeFilters(sel)
	if len(parts) == 0 {
		return fmt.Sprintf("All batches and programs for %d", sel.FiscalYear)
	}
	return fmt.Sprintf("%s | %d", strings.Join(parts, " | "), sel.FiscalYear)
}

// ExportFilterText: versi pendek untuk kotak filter di PDF.
func ExportFilterText(sel dto.Selection) string {
	parts := activeFilters(sel)
	if len(parts) == 0 {
		return "All batches and programs"
	}
	return strings.Join(parts, ", ")
}
