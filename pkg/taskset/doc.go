// Package taskset defines the task contract shared by every package in this
// module: a unit of work with a run life-cycle, a success flag fixed when the
// run ends, and a progress percentage.
//
// Highlights:
// - Task: RunSync/RunAsync/IsRunning/IsSuccess/SetProgress
// - ProgressReporter, Notifier: optional capabilities a task may expose
// - Result: immutable record of one finished run (success, failure, cancel)
//
// Concrete tasks live in package work, providers in package provider and the
// composite task that schedules children in package collection.
package taskset
