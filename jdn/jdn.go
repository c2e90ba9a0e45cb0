/*
Package jdn defines the Julian Day Number, the canonical pivot every
calendar codec in this module converts through. Two dates in different
calendars are never compared or converted directly; they are always
routed via a JDN produced by one codec's forward map and consumed by
another codec's inverse map.
*/
package jdn

// JDN is a signed count of days since the astronomical Julian Day epoch.
// Public values fit comfortably within 64 bits over any realistic range;
// the Hebrew codec widens to a 128-bit intermediate internally before
// multiplying by parts-per-day.
type JDN int64
