// Package datetime provides small, stateless date/time helpers: parsing
// RFC 2822 and ISO 8601 strings, Gregorian leap-year detection, formatting
// the distance between two instants as HH:mm:ss.sss, and the angle between
// the hands of an analog clock.
//
// Every function is pure and safe for concurrent use. Inputs are never
// mutated; time.Time is passed by value.
package datetime
