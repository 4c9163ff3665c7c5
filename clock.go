package kassa

import "time"

// Millis is a point in time with millisecond precision, the native
// resolution of every record timestamp in the ledger.
type Millis int64

// Now returns the current time as Millis.
func Now() Millis {
	return Millis(time.Now().UnixMilli())
}

// Time converts the timestamp back to a time.Time in the local zone.
func (m Millis) Time() time.Time {
	return time.UnixMilli(int64(m))
}

// StartOfDay returns the local midnight preceding m. It is used to compute
// "today so far" figures for the assistant's context.
func StartOfDay(m Millis) Millis {
	t := m.Time()
	y, mo, d := t.Date()
	return Millis(time.Date(y, mo, d, 0, 0, 0, 0, t.Location()).UnixMilli())
}

func (m Millis) String() string {
	return m.Time().Format("2006-01-02 15:04:05")
}
