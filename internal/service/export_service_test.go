package service

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"

	"stillmind/backend/internal/model"
	"stillmind/backend/internal/repository"
)

func newExportFixture(now time.Time) (*mockScheduleRepo, ExportService) {
	schedules := newMockScheduleRepo()
	repo := &repository.Repository{Schedule: schedules}
	svc := &exportService{repo: repo, now: func() time.Time { return now }, logger: zap.NewNop()}
	return schedules, svc
}

func seedSchedule(t *testing.T, schedules *mockScheduleRepo, doc model.ScheduleDocument) {
	t.Helper()
	if err := schedules.Create(context.Background(), &model.ScheduleRecord{Value: doc}); err != nil {
		t.Fatalf("seed schedule: %v", err)
	}
}

// 2026-08-30 is a Sunday.
var exportNow = time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)

func TestExportXLSX(t *testing.T) {
	schedules, svc := newExportFixture(exportNow)
	seedSchedule(t, schedules, model.ScheduleDocument{
		UserID:          "user-1",
		Title:           "Morning Meditation",
		DayOfWeek:       []string{"Monday", "Wednesday", "Friday"},
		Time:            "07:00",
		Duration:        15,
		ReminderEnabled: true,
	})
	seedSchedule(t, schedules, model.ScheduleDocument{
		UserID:          "user-1",
		Title:           "Evening Wind Down",
		DayOfWeek:       []string{"Monday"},
		Time:            "21:30",
		Duration:        10,
		ReminderEnabled: false,
	})

	buf, filename, err := svc.ExportXLSX(context.Background(), "user-1")
	if err != nil {
		t.Fatalf("export: %v", err)
	}
	if filename != "meditation-plan_user-1.xlsx" {
		t.Errorf("filename = %q", filename)
	}

	f, err := excelize.OpenReader(buf)
	if err != nil {
		t.Fatalf("open workbook: %v", err)
	}
	defer f.Close()

	// Monday carries both schedules, earliest first
	checks := map[string]string{
		"A3": "Monday",
		"B3": "Morning Meditation",
		"C3": "7:00 AM",
		"E3": "On",
		"A4": "Monday",
		"B4": "Evening Wind Down",
		"E4": "Off",
		"A5": "Wednesday",
		"A6": "Friday",
	}
	for cell, want := range checks {
		got, err := f.GetCellValue("Weekly Plan", cell)
		if err != nil {
			t.Fatalf("read %s: %v", cell, err)
		}
		if got != want {
			t.Errorf("%s = %q, want %q", cell, got, want)
		}
	}
}

func TestExportICS(t *testing.T) {
	schedules, svc := newExportFixture(exportNow)
	seedSchedule(t, schedules, model.ScheduleDocument{
		UserID:          "user-1",
		Title:           "Morning Meditation",
		DayOfWeek:       []string{"Monday", "Wednesday", "Friday"},
		Time:            "07:00",
		Duration:        15,
		ReminderEnabled: true,
		VideoID:         "inpok4MKVLM",
	})

	buf, filename, err := svc.ExportICS(context.Background(), "user-1")
	if err != nil {
		t.Fatalf("export: %v", err)
	}
	if filename != "meditation-plan_user-1.ics" {
		t.Errorf("filename = %q", filename)
	}

	body := buf.String()
	for _, want := range []string{
		"BEGIN:VCALENDAR",
		"METHOD:PUBLISH",
		"SUMMARY:Morning Meditation",
		"RRULE:FREQ=WEEKLY;BYDAY=MO,WE,FR",
		"@stillmind",
		// next Monday after Sunday noon
		"DTSTART:20260831T070000Z",
		"DTEND:20260831T071500Z",
		"DESCRIPTION:Video: inpok4MKVLM",
	} {
		if !strings.Contains(body, want) {
			t.Errorf("calendar missing %q:\n%s", want, body)
		}
	}
}

func TestExport_NoSchedules(t *testing.T) {
	_, svc := newExportFixture(exportNow)

	if _, _, err := svc.ExportXLSX(context.Background(), "user-1"); !errors.Is(err, ErrExportNoSchedules) {
		t.Errorf("xlsx: expected ErrExportNoSchedules, got %v", err)
	}
	if _, _, err := svc.ExportICS(context.Background(), "user-1"); !errors.Is(err, ErrExportNoSchedules) {
		t.Errorf("ics: expected ErrExportNoSchedules, got %v", err)
	}
	if _, _, err := svc.ExportXLSX(context.Background(), ""); !errors.Is(err, ErrUserIDRequired) {
		t.Errorf("empty user: expected ErrUserIDRequired, got %v", err)
	}
}
