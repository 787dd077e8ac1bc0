package service

import (
	"github.com/shopspring/decimal"

	"pmics_backend/internals/features/finance/reports/dto"
)

const (
	StatusSuccess     = "success"
	StatusWarning     = "warning"
	StatusDestructive = "destructive"
)

// Threshold collection rate.
const (
	successThreshold = 0.90
	warningThreshold = 0.70
)

// Summarize menjumlah semua kolom numerik dari set yang SUDAH difilter.
// Penjumlahan pakai decimal supaya total tidak drift.
func Summarize(rows []dto.ReportRow) dto.SummaryMetrics {
	var income, collected, running, dept, research, univ decimal.Decimal
	for _, r := range rows {
		income = income.Add(decimal.NewFromFloat(r.TotalIncome))
		collected = collected.Add(decimal.NewFromFloat(r.ActualCollected))
		running = running.Add(decimal.NewFromFloat(r.ProgramRunningExpense))
		dept = dept.Add(decimal.NewFromFloat(r.DepartmentDevelopment))
		research = research.Add(decimal.NewFromFloat(r.ResearchAllocation))
		univ = univ.Add(decimal.NewFromFloat(r.UniversityIncome))
	}

	return dto.SummaryMetrics{
		TotalIncome:           income.InexactFloat64(),
		TotalCollected:        collected.InexactFloat64(),
		CollectionRate:        rate(income, collected),
		RunningExpense:        running.InexactFloat64(),
		DepartmentDevelopment: dept.InexactFloat64(),
		ResearchAllocation:    research.InexactFloat64(),
		UniversityIncome:      univ.InexactFloat64(),
	}
}

func rate(expected, collected decimal.Decimal) float64 {
	if expected.Sign() <= 0 {
		return 0
	}
	return collected.DivRound(expected, 8).InexactFloat64()
}

// CollectionRate: collected / expected; expected ≤ 0 → 0.
func CollectionRate(expected, collected float64) float64 {
	return rate(decimal.NewFromFloat(expected), decimal.NewFromFloat(collected))
}

// Classify: ≥ 0.90 success, ≥ 0.70 warning, sisanya destructive.
func Classify(rate float64) string {
	switch {
	case rate >= successThreshold:
		return StatusSuccess
	case rate >= warningThreshold:
		return StatusWarning
	default:
		return StatusDestructive
	}
}

func BadgeVariant(status string) string {
	switch status {
	case StatusSuccess:
		return "default"
	case StatusWarning:
		return "secondary"
	case StatusDestructive:
		return "destructive"
	default:
		return "outline"
	}
}

func SummaryOf(rows []dto.ReportRow) dto.SummaryResponse {
	s := Summarize(rows)
	status := Classify(s.CollectionRate)
	return dto.SummaryResponse{
		SummaryMetrics: s,
		Status:         status,
		Badge:          BadgeVariant(status),
		Records:        len(rows),
	}
}

func ToTableRow(r dto.ReportRow) dto.TableRow {
	rt := CollectionRate(r.TotalIncome, r.ActualCollected)
	status := Classify(rt)
	return dto.TableRow{ReportRow: r, CollectionRate: rt, Status: status, Badge: BadgeVariant(status)}
}
