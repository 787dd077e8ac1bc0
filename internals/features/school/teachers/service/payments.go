package service

import (
	"fmt"
	"time"

	"pmics_backend/internals/configs"
	"pmics_backend/internals/features/finance/exports"
	"pmics_backend/internals/features/school/teachers/dto"
	"pmics_backend/internals/helpers/format"
)

// PaymentRow: satu baris riwayat pembayaran pengajar.
type PaymentRow struct {
	Date         string
	CourseTitle  string
	CourseCode   string
	Remuneration float64
	Tax          float64
	Payment      float64
	Status       string
}

var PaymentColumns = []exports.ColumnDef[PaymentRow]{
	exports.TextColumn("date", "Date", func(r PaymentRow) string { return r.Date }),
	exports.TextColumn("course_title", "Course", func(r PaymentRow) string { return r.CourseTitle }),
	exports.TextColumn("course_code", "Course Code", func(r PaymentRow) string { return r.CourseCode }),
	exports.MoneyColumn("remuneration", "Remuneration", func(r PaymentRow) float64 { return r.Remuneration }),
	exports.MoneyColumn("tax", "Tax (20%)", func(r PaymentRow) float64 { return r.Tax }),
	exports.MoneyColumn("payment", "Net Payment", func(r PaymentRow) float64 { return r.Payment }),
	exports.TextColumn("status", "Status", func(r PaymentRow) string { return r.Status }),
}

// PaymentRows: class → baris pembayaran, course dicari dari hasil lookup.
func PaymentRows(classes []dto.ClassRecord, courses map[int]dto.CourseInfo) []PaymentRow {
	out := make([]PaymentRow, 0, len(classes))
	for _, c := range classes {
		row := PaymentRow{
			Date:         c.AssignedDate,
			CourseTitle:  "Unknown Course",
			Remuneration: c.Remuneration,
			Tax:          c.Tax,
			Payment:      c.Payment,
			Status:       c.Status,
		}
		if bc := c.BatchCourse(); bc != nil {
			if course, ok := courses[bc.CourseID]; ok {
				row.CourseTitle = course.CourseTitle
				row.CourseCode = course.CourseCode
			}
		}
		out = append(out, row)
	}
	return out
}

func BuildPaymentDocument(cfg configs.AppConfig, detail dto.TeacherDetail, columns []string, now time.Time) (*exports.Document, error) {
	rows := PaymentRows(detail.Classes, detail.Courses)
	tbl, err := exports.Flatten(rows, PaymentColumns, columns)
	if err != nil {
		return nil, err
	}

	var gross, tax float64
	for _, r := range rows {
		gross += r.Remuneration
		tax += r.Tax
	}
	money := func(v float64) string { return format.Money(cfg.Currency, v) }
	st := detail.Stats

	return &exports.Document{
		Title:       detail.Teacher.Name + " - Payment Records",
		Subtitle:    "Instructor ID: " + detail.Teacher.InstructorID,
		Institution: cfg.Institution,
		Program:     cfg.Program,
		Sheet:       "Payments",
		Badge:       cfg.Badge,
		Currency:    cfg.Currency,
		FilterText:  fmt.Sprintf("All assigned classes (%d)", len(rows)),
		GeneratedAt: now,
		Summary: []exports.Metric{
			{Label: "Total Earnings", Value: money(st.TotalEarnings)},
			{Label: "Courses", Value: fmt.Sprint(st.TotalCourses)},
			{Label: "Batches", Value: fmt.Sprint(st.TotalBatches)},
			{Label: "Upcoming Classes", Value: fmt.Sprint(st.UpcomingClasses)},
		},
		Allocation: []exports.Metric{
			{Label: "Gross Remuneration", Value: money(format.RoundCents(gross))},
			{Label: "Tax", Value: money(format.RoundCents(tax))},
			{Label: "Net Payment", Value: money(st.TotalEarnings)},
		},
		Table: tbl,
	}, nil
}

func PaymentBasename(instructorID string) string {
	return exports.Filename("Teacher_Payments", 0, instructorID)
}
