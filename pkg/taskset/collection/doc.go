// Package collection provides Collection, a composite task that pulls child
// tasks from a provider and runs them one at a time or with a bounded number
// in flight, folding their outcomes into one sticky success flag and their
// completions into one progress value.
//
// A Collection is itself a taskset.Task, so collections nest to any depth.
//
// Highlights:
// - AddChild/SetProvider: static children or a custom provider (provider wins)
// - SetParallel/SetMaxThreads/SetPollInterval: execution mode, effective next run
// - Run/RunSync/RunAsync: a run in flight rejects another start
// - Stats: snapshot safe to poll from another goroutine while running
package collection
