// Package view computes derived read models from in-memory record snapshots.
// Every function is pure and recomputed on each update.
package view

import (
	"sort"
	"time"

	"petcare/internal/domain/entity"
)

// AppointmentsOnDay returns the appointments starting on the calendar day of
// day, compared in day's location.
func AppointmentsOnDay(list []*entity.Appointment, day time.Time) []*entity.Appointment {
	loc := day.Location()
	y, m, d := day.Date()

	out := make([]*entity.Appointment, 0)
	for _, a := range list {
		ay, am, ad := a.Start.In(loc).Date()
		if ay == y && am == m && ad == d {
			out = append(out, a)
		}
	}

	return out
}

// AppointmentsInMonth returns the appointments starting within
// [first of month, first of next month) of anyDateInMonth's month.
func AppointmentsInMonth(list []*entity.Appointment, anyDateInMonth time.Time) []*entity.Appointment {
	first := StartOfMonth(anyDateInMonth)
	next := first.AddDate(0, 1, 0)

	out := make([]*entity.Appointment, 0)
	for _, a := range list {
		if !a.Start.Before(first) && a.Start.Before(next) {
			out = append(out, a)
		}
	}

	return out
}

// GroupByDay groups appointments by calendar day in loc, days ascending and
// appointments within a day by start time.
func GroupByDay(list []*entity.Appointment, loc *time.Location) []entity.DayAppointments {
	byDay := make(map[time.Time][]*entity.Appointment)
	for _, a := range list {
		key := StartOfDay(a.Start.In(loc))
		byDay[key] = append(byDay[key], a)
	}

	out := make([]entity.DayAppointments, 0, len(byDay))
	for day, items := range byDay {
		sort.SliceStable(items, func(i, j int) bool { return items[i].Start.Before(items[j].Start) })
		out = append(out, entity.DayAppointments{Day: day, Appointments: items})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Day.Before(out[j].Day) })

	return out
}

// StartOfDay returns midnight of t's day in t's location.
func StartOfDay(t time.Time) time.Time {
	y, m, d := t.Date()

	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// StartOfMonth returns midnight of the first day of t's month in t's location.
func StartOfMonth(t time.Time) time.Time {
	y, m, _ := t.Date()

	return time.Date(y, m, 1, 0, 0, 0, 0, t.Location())
}
