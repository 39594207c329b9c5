// Package core contains plumbing shared by providers and collections: run
// options carried on the context (worker limit, poll interval, logger) and
// small channel helpers. It holds no scheduling logic itself.
package core
