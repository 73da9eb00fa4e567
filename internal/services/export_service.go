package services

import (
	"context"
	"sort"
	"strconv"
	"strings"
	"time"
)

const exportDateLayout = "2006-01-02"

var ExportCSVHeaders = []string{
	"Date",
	"Mood",
	"Energy physical",
	"Energy mental",
	"Energy emotional",
	"Energy drive",
	"Cycle day",
	"Bleeding",
	"Food entries",
	"Bowel movements",
	"Exercise minutes",
	"Intake adherence %",
	"Completion adherence %",
	"Physical symptoms",
	"Emotional symptoms",
}

type ExportDailyReader interface {
	DailyRange(ctx context.Context, patientID uint, from, to time.Time, location *time.Location) ([]DailySummary, error)
}

type ExportCycleReader interface {
	CycleRange(ctx context.Context, patientID uint, from, to time.Time, location *time.Location) ([]CycleDaySummary, error)
}

type ExportService struct {
	daily  ExportDailyReader
	cycles ExportCycleReader
}

func NewExportService(daily ExportDailyReader, cycles ExportCycleReader) *ExportService {
	return &ExportService{daily: daily, cycles: cycles}
}

type ExportEntry struct {
	Date                 string   `json:"date"`
	Mood                 *int     `json:"mood"`
	EnergyPhysical       *int     `json:"energy_physical"`
	EnergyMental         *int     `json:"energy_mental"`
	EnergyEmotional      *int     `json:"energy_emotional"`
	EnergyDrive          *int     `json:"energy_drive"`
	CycleDay             *int     `json:"cycle_day"`
	BleedingQuantity     string   `json:"bleeding_quantity"`
	FoodCount            int      `json:"food_count"`
	BowelCount           int      `json:"bowel_count"`
	ExerciseMinutes      int      `json:"exercise_minutes"`
	IntakePercent        int      `json:"intake_percent"`
	CompletionPercent    int      `json:"completion_percent"`
	PhysicalSymptomKeys  []string `json:"physical_symptom_keys"`
	EmotionalSymptomKeys []string `json:"emotional_symptom_keys"`
}

// BuildEntries merges the daily and cycle projections for [from, to]
// into one chronological list, oldest first.
func (service *ExportService) BuildEntries(ctx context.Context, patientID uint, from, to time.Time, location *time.Location) ([]ExportEntry, error) {
	summaries, err := service.daily.DailyRange(ctx, patientID, from, to, location)
	if err != nil {
		return nil, err
	}
	cycleDays, err := service.cycles.CycleRange(ctx, patientID, from, to, location)
	if err != nil {
		return nil, err
	}

	cycleByEntry := make(map[uint]CycleDaySummary, len(cycleDays))
	for _, day := range cycleDays {
		cycleByEntry[day.EntryID] = day
	}

	entries := make([]ExportEntry, 0, len(summaries))
	for _, summary := range summaries {
		entry := ExportEntry{
			Date:                 summary.Date.Format(exportDateLayout),
			Mood:                 summary.Mood,
			EnergyPhysical:       summary.EnergyPhysical,
			EnergyMental:         summary.EnergyMental,
			EnergyEmotional:      summary.EnergyEmotional,
			EnergyDrive:          summary.EnergyDrive,
			CycleDay:             summary.CycleDay,
			FoodCount:            summary.FoodCount,
			BowelCount:           summary.BowelCount,
			ExerciseMinutes:      summary.ExerciseMinutes,
			IntakePercent:        summary.IntakePercent,
			CompletionPercent:    summary.CompletionPercent,
			PhysicalSymptomKeys:  []string{},
			EmotionalSymptomKeys: []string{},
		}
		if cycle, found := cycleByEntry[summary.EntryID]; found {
			entry.CycleDay = cycle.CycleDay
			entry.BleedingQuantity = cycle.BleedingQuantity
			entry.PhysicalSymptomKeys = cycle.PhysicalSymptomKeys
			entry.EmotionalSymptomKeys = cycle.EmotionalSymptomKeys
		}
		entries = append(entries, entry)
	}

	sort.Slice(entries, func(left, right int) bool {
		return entries[left].Date < entries[right].Date
	})
	return entries, nil
}

func BuildCSVRows(entries []ExportEntry) [][]string {
	rows := make([][]string, 0, len(entries))
	for _, entry := range entries {
		rows = append(rows, []string{
			entry.Date,
			formatOptionalInt(entry.Mood),
			formatOptionalInt(entry.EnergyPhysical),
			formatOptionalInt(entry.EnergyMental),
			formatOptionalInt(entry.EnergyEmotional),
			formatOptionalInt(entry.EnergyDrive),
			formatOptionalInt(entry.CycleDay),
			entry.BleedingQuantity,
			strconv.Itoa(entry.FoodCount),
			strconv.Itoa(entry.BowelCount),
			strconv.Itoa(entry.ExerciseMinutes),
			strconv.Itoa(entry.IntakePercent),
			strconv.Itoa(entry.CompletionPercent),
			strings.Join(entry.PhysicalSymptomKeys, "; "),
			strings.Join(entry.EmotionalSymptomKeys, "; "),
		})
	}
	return rows
}

func formatOptionalInt(value *int) string {
	if value == nil {
		return ""
	}
	return strconv.Itoa(*value)
}
