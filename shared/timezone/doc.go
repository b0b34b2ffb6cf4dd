// Package timezone keeps every timestamp the service produces in one location.
//
//	now := timezone.Now()                       // current time in app timezone
//	today := timezone.Today()                   // midnight, used for default check-in dates
//	t, err := timezone.Parse(time.DateOnly, "2025-03-01")
//	month := timezone.StartOfMonth(t)           // history grouping key
//
// The location comes from APP_TIMEZONE (IANA names such as "Europe/Lisbon")
// and is loaded when the package is imported. UTC is used when it is unset or invalid.
package timezone
