// Package events decouples services from the background work their changes
// cause. Services emit an Event; registered handlers decide what to do with it.
package events
