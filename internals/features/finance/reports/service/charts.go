package service

import (
	"pmics_backend/internals/features/finance/reports/dto"
)

// Lebih dari ini, chart income diringkas per program.
const maxBatchPoints = 10

// IncomeChart: ≤ 10 baris → per batch, selebihnya agregat per program
// (urutan kemunculan pertama).
func IncomeChart(rows []Row) (string, []dto.IncomePoint) {
	if len(rows) <= maxBatchPoints {
		out := make([]dto.IncomePoint, 0, len(rows))
		for _, r := range rows {
			out = append(out, dto.IncomePoint{Name: r.BatchID, TotalIncome: r.TotalIncome, ActualCollected: r.ActualCollected})
		}
		return "batch", out
	}

	index := map[string]int{}
	out := []dto.IncomePoint{}
	for _, r := range rows {
		i, ok := index[r.ProgramCode]
		if !ok {
			i = len(out)
			index[r.ProgramCode] = i
			out = append(out, dto.IncomePoint{Name: r.ProgramCode})
		}
		out[i].TotalIncome += r.TotalIncome
		out[i].ActualCollected += r.ActualCollected
	}
	return "program", out
}

// AllocationChart: pembagian 55/5/5/35 sesuai hasil fungsi laporan.
func AllocationChart(rows []Row) ([]dto.AllocationSlice, bool) {
	s := Summarize(rows)
	out := []dto.AllocationSlice{
		{Name: "Program Expenses (55%)", Value: s.RunningExpense},
		{Name: "Department Development (5%)", Value: s.DepartmentDevelopment},
		{Name: "Research Allocation (5%)", Value: s.ResearchAllocation},
		{Name: "University Income (35%)", Value: s.UniversityIncome},
	}
	empty := true
	for _, sl := range out {
		if sl.Value != 0 {
			empty = false
			break
		}
	}
	return out, empty
}

func Charts(rows []Row) dto.ChartsResponse {
	by, income := IncomeChart(rows)
	alloc, empty := AllocationChart(rows)
	return dto.ChartsResponse{GroupedBy: by, Income: income, Allocation: alloc, Empty: empty}
}
