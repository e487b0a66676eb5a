// Package reconcile implements idempotent activation and deactivation of (subject, object)
// relation rows such as club memberships and event attendances.
//
// Every pair owns at most one row. Activating inserts it, or reactivates it in place when it was
// soft deleted. Deactivating soft deletes it. Redundant calls are no-ops reported through an
// Outcome, never errors, and a unique constraint violation raised by a concurrent insert is
// resolved by re-reading the row that won.
//
// Reads state their soft delete visibility explicitly through models.Alive.
package reconcile
