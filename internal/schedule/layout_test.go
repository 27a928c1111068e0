package schedule

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hray3182/FamilyBoard/internal/models"
)

var testWeek = ComputeWeek(date(2025, time.September, 1), 0) // Mon 2025-09-01

func TestBuildGrid_TimeSlots(t *testing.T) {
	grid := BuildGrid(nil, testWeek, DefaultOptions())
	require.Len(t, grid.TimeSlots, 34) // 06:00 .. 22:30 inclusive, 30 min steps
	assert.Equal(t, "06:00", grid.TimeSlots[0])
	assert.Equal(t, "06:30", grid.TimeSlots[1])
	assert.Equal(t, "22:30", grid.TimeSlots[len(grid.TimeSlots)-1])
}

func TestBuildGrid_EmptyEventSet(t *testing.T) {
	grid := BuildGrid(nil, testWeek, DefaultOptions())
	for i, col := range grid.Columns {
		assert.Equal(t, testWeek.Day(i), col.Date)
		assert.Empty(t, col.Events)
	}
	assert.Empty(t, grid.List)
}

func TestBuildGrid_VerticalPlacement(t *testing.T) {
	// Worked example: 09:00-10:30 on Monday, 30 min slots at 30px, 06:00 start.
	e := mkEvent(1, testWeek.Start, "Anna", "09:00", "10:30")
	grid := BuildGrid([]*models.Event{e}, testWeek, DefaultOptions())

	require.Len(t, grid.Columns[0].Events, 1)
	p := grid.Columns[0].Events[0]
	assert.Equal(t, 540, p.StartMinutes)
	assert.Equal(t, 180.0, p.Top)    // 180 minutes past 06:00 at 1px/min
	assert.Equal(t, 90.0, p.Height)  // 90 minutes
	assert.Equal(t, 630, p.EndMinutes)
}

func TestBuildGrid_HeightProportionalToDuration(t *testing.T) {
	a := mkEvent(1, testWeek.Start, "", "08:00", "09:00")
	b := mkEvent(2, testWeek.Start, "", "10:00", "12:00")
	grid := BuildGrid([]*models.Event{a, b}, testWeek, DefaultOptions())

	require.Len(t, grid.Columns[0].Events, 2)
	assert.Equal(t, grid.Columns[0].Events[0].Height*2, grid.Columns[0].Events[1].Height)
}

func TestBuildGrid_ClampsToWindowTop(t *testing.T) {
	// Starts before the display window: offset floors at 0, height is kept.
	e := mkEvent(1, testWeek.Start, "", "05:00", "07:00")
	grid := BuildGrid([]*models.Event{e}, testWeek, DefaultOptions())

	require.Len(t, grid.Columns[0].Events, 1)
	p := grid.Columns[0].Events[0]
	assert.Equal(t, 0.0, p.Top)
	assert.Equal(t, 120.0, p.Height)
}

func TestBuildGrid_EventPastWindowEndKeepsHeight(t *testing.T) {
	e := mkEvent(1, testWeek.Start, "", "22:00", "23:30")
	grid := BuildGrid([]*models.Event{e}, testWeek, DefaultOptions())

	require.Len(t, grid.Columns[0].Events, 1)
	p := grid.Columns[0].Events[0]
	assert.Equal(t, 90.0, p.Height)
	// Block may extend past the last slot boundary; no truncation.
	rulerHeight := float64(len(grid.TimeSlots)-1) * DefaultSlotPixels
	assert.Greater(t, p.Top+p.Height, rulerHeight)
}

func TestBuildGrid_EndBeforeStartClampedToMinimum(t *testing.T) {
	e := mkEvent(1, testWeek.Start, "", "10:00", "09:00")
	grid := BuildGrid([]*models.Event{e}, testWeek, DefaultOptions())

	require.Len(t, grid.Columns[0].Events, 1, "bad duration still appears in the grid")
	assert.Equal(t, float64(DefaultMinDuration), grid.Columns[0].Events[0].Height)
}

func TestBuildGrid_MalformedClockSkippedFromGridNotList(t *testing.T) {
	good := mkEvent(1, testWeek.Start, "", "09:00", "10:00")
	bad := mkEvent(2, testWeek.Start, "", "whenever", "10:00")
	grid := BuildGrid([]*models.Event{good, bad}, testWeek, DefaultOptions())

	require.Len(t, grid.Columns[0].Events, 1)
	assert.Equal(t, 1, grid.Columns[0].Events[0].Event.EventID)
	assert.Equal(t, []int{1, 2}, ids(grid.List), "still listed in the flat detail list")
}

func TestBuildGrid_OutOfWindowDateDropped(t *testing.T) {
	stray := mkEvent(1, testWeek.Start.AddDate(0, 0, 9), "", "09:00", "10:00")
	grid := BuildGrid([]*models.Event{stray}, testWeek, DefaultOptions())
	for _, col := range grid.Columns {
		assert.Empty(t, col.Events)
	}
}

func TestBuildGrid_LaneAssignment(t *testing.T) {
	day := testWeek.Day(2)
	events := []*models.Event{
		mkEvent(1, day, "", "09:00", "10:00"),
		mkEvent(2, day, "", "09:30", "10:30"),
		mkEvent(3, day, "", "11:00", "12:00"),
	}
	grid := BuildGrid(events, testWeek, DefaultOptions())
	col := grid.Columns[2].Events
	require.Len(t, col, 3)

	assert.Equal(t, 0, col[0].Lane)
	assert.Equal(t, 1, col[1].Lane)
	assert.Equal(t, 0, col[2].Lane)
	assert.Equal(t, 2, col[0].LaneCount)
	assert.Equal(t, 2, col[1].LaneCount)
	assert.Equal(t, 1, col[2].LaneCount)
}

func TestBuildGrid_IdenticalIntervalsGetDistinctLanes(t *testing.T) {
	day := testWeek.Day(4)
	events := []*models.Event{
		mkEvent(7, day, "", "14:00", "15:00"),
		mkEvent(3, day, "", "14:00", "15:00"),
	}
	grid := BuildGrid(events, testWeek, DefaultOptions())
	col := grid.Columns[4].Events
	require.Len(t, col, 2)

	// Ties broken by id for determinism.
	assert.Equal(t, 3, col[0].Event.EventID)
	assert.Equal(t, 0, col[0].Lane)
	assert.Equal(t, 1, col[1].Lane)
	assert.Equal(t, 2, col[0].LaneCount)
	assert.Equal(t, 2, col[1].LaneCount)
}

func TestBuildGrid_BackToBackShareLane(t *testing.T) {
	day := testWeek.Day(1)
	events := []*models.Event{
		mkEvent(1, day, "", "09:00", "10:00"),
		mkEvent(2, day, "", "10:00", "11:00"),
	}
	grid := BuildGrid(events, testWeek, DefaultOptions())
	col := grid.Columns[1].Events
	require.Len(t, col, 2)
	assert.Equal(t, 0, col[0].Lane)
	assert.Equal(t, 0, col[1].Lane)
	assert.Equal(t, 1, col[0].LaneCount)
	assert.Equal(t, 1, col[1].LaneCount)
}

func TestBuildGrid_OverlapAlwaysMeansDistinctLanes(t *testing.T) {
	day := testWeek.Day(5)
	events := []*models.Event{
		mkEvent(1, day, "", "08:00", "12:00"),
		mkEvent(2, day, "", "09:00", "09:30"),
		mkEvent(3, day, "", "09:15", "10:00"),
		mkEvent(4, day, "", "11:00", "13:00"),
		mkEvent(5, day, "", "14:00", "15:00"),
	}
	grid := BuildGrid(events, testWeek, DefaultOptions())
	col := grid.Columns[5].Events
	require.Len(t, col, 5)

	for i := 0; i < len(col); i++ {
		for j := i + 1; j < len(col); j++ {
			overlaps := col[i].StartMinutes < col[j].EndMinutes &&
				col[j].StartMinutes < col[i].EndMinutes
			if overlaps {
				assert.NotEqual(t, col[i].Lane, col[j].Lane,
					"events %d and %d overlap", col[i].Event.EventID, col[j].Event.EventID)
			}
		}
	}
}

func TestBuildGrid_Deterministic(t *testing.T) {
	day := testWeek.Day(3)
	events := []*models.Event{
		mkEvent(2, day, "Anna", "09:00", "10:00"),
		mkEvent(1, day, "Ben", "09:00", "11:00"),
		mkEvent(3, day, "", "10:30", "12:00"),
	}
	a := BuildGrid(events, testWeek, DefaultOptions())
	b := BuildGrid(events, testWeek, DefaultOptions())
	assert.Equal(t, a, b)
}

func TestBuildGrid_ListChronological(t *testing.T) {
	events := []*models.Event{
		mkEvent(1, testWeek.Day(3), "", "08:00", "09:00"),
		mkEvent(2, testWeek.Day(0), "", "15:00", "16:00"),
		mkEvent(3, testWeek.Day(0), "", "07:00", "08:00"),
	}
	grid := BuildGrid(events, testWeek, DefaultOptions())
	assert.Equal(t, []int{3, 2, 1}, ids(grid.List))
}

func TestBuildGrid_CustomSlotPixels(t *testing.T) {
	opts := DefaultOptions()
	opts.SlotPixels = 60 // 2px per minute
	e := mkEvent(1, testWeek.Start, "", "09:00", "10:30")
	grid := BuildGrid([]*models.Event{e}, testWeek, opts)

	p := grid.Columns[0].Events[0]
	assert.Equal(t, 360.0, p.Top)
	assert.Equal(t, 180.0, p.Height)
}
