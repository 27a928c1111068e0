// Package ics turns one laid-out week of schedule events into an iCalendar
// document so the family plan can be pulled into phone calendars.
package ics

import (
	"fmt"
	"time"

	ical "github.com/arran4/golang-ical"

	"github.com/hray3182/FamilyBoard/internal/models"
	"github.com/hray3182/FamilyBoard/internal/schedule"
)

const prodID = "-//FamilyBoard//Weekly Schedule//EN"

// ExportWeek serializes the given (already filtered) events. Events whose
// clock strings fail to parse are exported as all-day entries instead of
// being dropped, mirroring the grid's degrade-don't-hide behavior.
func ExportWeek(events []*models.Event, now time.Time) string {
	cal := ical.NewCalendar()
	cal.SetMethod(ical.MethodPublish)
	cal.SetProductId(prodID)

	for _, e := range events {
		ev := cal.AddEvent(fmt.Sprintf("event-%d@familyboard", e.EventID))
		ev.SetDtStampTime(now)
		ev.SetSummary(e.Title)
		if e.Description != "" {
			ev.SetDescription(e.Description)
		}
		if e.Category != "" {
			ev.SetProperty(ical.ComponentPropertyCategories, e.Category)
		}
		if e.Person != "" {
			ev.SetProperty(ical.ComponentProperty("X-FAMILYBOARD-PERSON"), e.Person)
		}

		start, okStart := schedule.ParseClock(e.StartTime)
		end, okEnd := schedule.ParseClock(e.EndTime)
		if !okStart || !okEnd {
			day := e.Day()
			ev.SetAllDayStartAt(day)
			ev.SetAllDayEndAt(day.AddDate(0, 0, 1))
			continue
		}

		day := e.Day()
		startAt := day.Add(time.Duration(start.Minutes()) * time.Minute)
		endAt := day.Add(time.Duration(end.Minutes()) * time.Minute)
		if !endAt.After(startAt) {
			endAt = startAt.Add(schedule.DefaultMinDuration * time.Minute)
		}
		ev.SetStartAt(startAt)
		ev.SetEndAt(endAt)
	}

	return cal.Serialize()
}
