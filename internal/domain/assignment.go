package domain

import (
	"sort"
	"time"
)

// DepartmentAssignment is one department/shift interval of an employee.
// A nil EndDate marks the currently open assignment.
type DepartmentAssignment struct {
	BusinessEntityID int
	DepartmentID     int
	ShiftID          int
	StartDate        time.Time
	EndDate          *time.Time
	ModifiedDate     time.Time
}

// IsOpen reports whether the interval has no end date yet.
func (a DepartmentAssignment) IsOpen() bool {
	return a.EndDate == nil
}

// SortAssignments orders intervals by start date, oldest first.
func SortAssignments(list []DepartmentAssignment) {
	sort.SliceStable(list, func(i, j int) bool {
		return list[i].StartDate.Before(list[j].StartDate)
	})
}

// OpenAssignments returns the intervals without an end date.
func OpenAssignments(list []DepartmentAssignment) []DepartmentAssignment {
	var open []DepartmentAssignment
	for _, a := range list {
		if a.IsOpen() {
			open = append(open, a)
		}
	}
	return open
}

// LatestClosed returns the closed interval with the latest end date.
func LatestClosed(list []DepartmentAssignment) (DepartmentAssignment, bool) {
	var (
		latest DepartmentAssignment
		found  bool
	)
	for _, a := range list {
		if a.EndDate == nil {
			continue
		}
		if !found || a.EndDate.After(*latest.EndDate) {
			latest = a
			found = true
		}
	}
	return latest, found
}
