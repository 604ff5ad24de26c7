package accounting

import "time"

// The frontend submits due dates as bare calendar strings (YYYY-MM-DD),
// which deserialize to UTC midnight and render one day early in
// west-of-UTC timezones. The two functions below compensate: one day is
// added on the way into storage and subtracted on the way back out.
// They are the only place this adjustment may live; call sites must
// never shift dates themselves.

// ToStorageDate converts a due date received from a form into the value
// persisted in the store.
func ToStorageDate(d time.Time) time.Time {
	return d.AddDate(0, 0, 1)
}

// ToDisplayDate reverses ToStorageDate for presentation.
func ToDisplayDate(d time.Time) time.Time {
	return d.AddDate(0, 0, -1)
}
