// Package representation defines the wire representations returned by the
// API. Every representation is immutable once built: it is assembled through a
// builder whose Build method takes a defensive copy of all collections, and
// its accessors hand out copies rather than internal slices.
package representation
