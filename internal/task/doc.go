// Package task runs background work on a bounded in-memory queue served by a
// pool of workers. Its only job today is reclaiming images that no photo
// references anymore, off the request path.
package task
