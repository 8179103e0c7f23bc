package service

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	ics "github.com/arran4/golang-ical"
	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"

	"stillmind/backend/internal/model"
	"stillmind/backend/internal/repository"
)

// ── export module business errors ──

var (
	ErrExportNoSchedules  = errors.New("no schedules to export")
	ErrExportGenerateFail = errors.New("generate export file failed")
)

// ExportService renders a user's schedules as downloadable files.
//
// Two formats:
//   - .xlsx weekly plan workbook (one row per day x schedule)
//   - .ics calendar feed (one VEVENT per schedule with a weekly RRULE)
//
// Both return a bytes.Buffer plus a suggested filename; the handler sets
// the download headers and writes the body.
type ExportService interface {
	ExportXLSX(ctx context.Context, userID string) (*bytes.Buffer, string, error)
	ExportICS(ctx context.Context, userID string) (*bytes.Buffer, string, error)
}

type exportService struct {
	repo   *repository.Repository
	now    func() time.Time
	logger *zap.Logger
}

// NewExportService creates the ExportService instance.
func NewExportService(repo *repository.Repository, logger *zap.Logger) ExportService {
	return &exportService{repo: repo, now: time.Now, logger: logger}
}

// loadSchedules fetches and time-sorts the user's schedules.
func (s *exportService) loadSchedules(ctx context.Context, userID string) ([]model.ScheduleRecord, error) {
	if userID == "" {
		return nil, ErrUserIDRequired
	}
	records, err := s.repo.Schedule.ListByUser(ctx, userID)
	if err != nil {
		s.logger.Error("list schedules failed", zap.String("user_id", userID), zap.Error(err))
		return nil, err
	}
	if len(records) == 0 {
		return nil, ErrExportNoSchedules
	}
	sort.Slice(records, func(i, j int) bool {
		return records[i].Value.Time < records[j].Value.Time
	})
	return records, nil
}

// ═══════════════════════════════════════════════════════════
// ExportXLSX — weekly plan workbook
// ═══════════════════════════════════════════════════════════
//
// Layout: title row, header row, then one row per (day, schedule) pair,
// days in Monday..Sunday order and schedules by start time within a day.

func (s *exportService) ExportXLSX(ctx context.Context, userID string) (*bytes.Buffer, string, error) {
	records, err := s.loadSchedules(ctx, userID)
	if err != nil {
		return nil, "", err
	}

	// index: day → schedules on that day, already time-sorted
	byDay := make(map[string][]model.ScheduleRecord)
	for _, r := range records {
		for _, day := range r.Value.DayOfWeek {
			byDay[day] = append(byDay[day], r)
		}
	}

	f := excelize.NewFile()
	defer f.Close()

	sheetName := "Weekly Plan"
	idx, err := f.NewSheet(sheetName)
	if err != nil {
		s.logger.Error("create sheet failed", zap.Error(err))
		return nil, "", ErrExportGenerateFail
	}
	f.SetActiveSheet(idx)
	f.DeleteSheet("Sheet1")

	f.SetColWidth(sheetName, "A", "A", 12)
	f.SetColWidth(sheetName, "B", "B", 28)
	f.SetColWidth(sheetName, "C", "C", 12)
	f.SetColWidth(sheetName, "D", "D", 14)
	f.SetColWidth(sheetName, "E", "E", 10)

	headerStyle, _ := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 11},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"#4472C4"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
	})

	f.SetCellValue(sheetName, "A1", "Meditation Plan")
	f.MergeCell(sheetName, "A1", "E1")
	f.SetCellStyle(sheetName, "A1", "A1", headerStyle)

	headers := []string{"Day", "Schedule", "Time", "Duration (min)", "Reminder"}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 2)
		f.SetCellValue(sheetName, cell, h)
		f.SetCellStyle(sheetName, cell, cell, headerStyle)
	}

	row := 3
	for _, day := range model.Weekdays {
		for _, r := range byDay[day] {
			reminder := "Off"
			if r.Value.ReminderEnabled {
				reminder = "On"
			}
			f.SetCellValue(sheetName, fmt.Sprintf("A%d", row), day)
			f.SetCellValue(sheetName, fmt.Sprintf("B%d", row), r.Value.Title)
			f.SetCellValue(sheetName, fmt.Sprintf("C%d", row), FormatTime(r.Value.Time))
			f.SetCellValue(sheetName, fmt.Sprintf("D%d", row), r.Value.Duration)
			f.SetCellValue(sheetName, fmt.Sprintf("E%d", row), reminder)
			row++
		}
	}

	buf := new(bytes.Buffer)
	if err := f.Write(buf); err != nil {
		s.logger.Error("write xlsx failed", zap.Error(err))
		return nil, "", ErrExportGenerateFail
	}

	filename := fmt.Sprintf("meditation-plan_%s.xlsx", userID)
	return buf, filename, nil
}

// ═══════════════════════════════════════════════════════════
// ExportICS — recurring calendar feed
// ═══════════════════════════════════════════════════════════
//
// One VEVENT per schedule. DTSTART is the next occurrence of the
// schedule's earliest day; the weekly RRULE carries the full BYDAY set.

var icalDayCodes = map[string]string{
	"Monday":    "MO",
	"Tuesday":   "TU",
	"Wednesday": "WE",
	"Thursday":  "TH",
	"Friday":    "FR",
	"Saturday":  "SA",
	"Sunday":    "SU",
}

func (s *exportService) ExportICS(ctx context.Context, userID string) (*bytes.Buffer, string, error) {
	records, err := s.loadSchedules(ctx, userID)
	if err != nil {
		return nil, "", err
	}

	cal := ics.NewCalendar()
	cal.SetMethod(ics.MethodPublish)

	now := s.now().UTC()
	for _, r := range records {
		start := nextOccurrence(now, r.Value.DayOfWeek, r.Value.Time)
		end := start.Add(time.Duration(r.Value.Duration) * time.Minute)

		byDays := make([]string, 0, len(r.Value.DayOfWeek))
		for _, day := range r.Value.DayOfWeek {
			if code, ok := icalDayCodes[day]; ok {
				byDays = append(byDays, code)
			}
		}

		event := cal.AddEvent(fmt.Sprintf("%s@stillmind", r.ID))
		event.SetDtStampTime(now)
		event.SetStartAt(start)
		event.SetEndAt(end)
		event.SetSummary(r.Value.Title)
		event.AddRrule("FREQ=WEEKLY;BYDAY=" + strings.Join(byDays, ","))
		if r.Value.VideoID != "" {
			event.SetDescription("Video: " + r.Value.VideoID)
		}
	}

	buf := bytes.NewBufferString(cal.Serialize())
	filename := fmt.Sprintf("meditation-plan_%s.ics", userID)
	return buf, filename, nil
}

// nextOccurrence finds the first date at or after now falling on any of
// the given days, at the schedule's wall-clock time (UTC).
func nextOccurrence(now time.Time, days []string, hhmm string) time.Time {
	wanted := make(map[time.Weekday]bool, len(days))
	for i, name := range model.Weekdays {
		for _, d := range days {
			if d == name {
				// model.Weekdays starts at Monday; time.Weekday at Sunday
				wanted[time.Weekday((i+1)%7)] = true
			}
		}
	}

	var hour, minute int
	fmt.Sscanf(hhmm, "%2d:%2d", &hour, &minute)

	for offset := 0; offset < 8; offset++ {
		day := now.AddDate(0, 0, offset)
		candidate := time.Date(day.Year(), day.Month(), day.Day(), hour, minute, 0, 0, time.UTC)
		if wanted[candidate.Weekday()] && candidate.After(now) {
			return candidate
		}
	}
	return now
}
