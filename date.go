package propbag

import (
	"time"

	"gitlab.com/variadico/lctime"
)

// dateFormat is the strftime layout Date renders with.
const dateFormat = "%Y-%m-%d %H:%M:%S"

// A Date wraps an instant with millisecond resolution. The timestamp exposed
// through Millis, getTime, and setTime is milliseconds since the Unix epoch,
// and round-trips exactly through any of those paths.
type Date struct {
	Object
	time time.Time
}

// NewDate creates a Date holding the current instant.
func NewDate() *Date {
	return NewDateMillis(time.Now().UnixMilli())
}

// NewDateMillis creates a Date from a timestamp in milliseconds since the
// Unix epoch.
func NewDateMillis(ms int64) *Date {
	d := &Date{time: time.UnixMilli(ms)}
	d.init(d)
	return d
}

// Kind returns KindDate.
func (d *Date) Kind() Kind {
	return KindDate
}

// Time returns the wrapped instant.
func (d *Date) Time() time.Time {
	return d.time
}

// Millis returns the timestamp in milliseconds since the Unix epoch.
func (d *Date) Millis() int64 {
	return d.time.UnixMilli()
}

// SetMillis replaces the instant with a timestamp in milliseconds since the
// Unix epoch.
func (d *Date) SetMillis(ms int64) {
	d.time = time.UnixMilli(ms)
}

// ToString renders the instant as a calendar timestamp in the current locale,
// to second precision.
func (d *Date) ToString() string {
	return lctime.Strftime(dateFormat, d.time)
}

// resolveBuiltin synthesizes getTime and setTime, then delegates to the base.
// setTime accepts a uint64 or int32 timestamp and ignores arguments of any
// other kind; either way it returns the timestamp current after the call.
func (d *Date) resolveBuiltin(name string) (Value, bool) {
	switch name {
	case "getTime":
		fn := NewFunction("getTime", func([]Value) Value {
			return UInt64Value(uint64(d.Millis()))
		})
		return FunctionValue(fn), true
	case "setTime":
		fn := NewFunction("setTime", func(args []Value) Value {
			if len(args) > 0 {
				switch args[0].Kind() {
				case KindUInt64:
					d.SetMillis(int64(args[0].UInt64()))
				case KindInt32:
					d.SetMillis(int64(args[0].Int32()))
				}
			}
			return UInt64Value(uint64(d.Millis()))
		})
		return FunctionValue(fn), true
	}
	return d.Object.resolveBuiltin(name)
}
