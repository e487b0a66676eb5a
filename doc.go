// Package main provides the entry point of clubhub, the backend of the campus
// club portal. It serves a JSON API built on Fiber for clubs, memberships,
// events with attendance and announcements, and persists them with gorm.
//
// Joining, leaving, attending and unattending are idempotent: repeating a call
// never creates a duplicate row, and leaving soft-deletes the row so a later
// join reactivates it in place.
package main
