// Package risk implements the burnout early-warning core: the deterministic
// daily question rotation and the risk scoring engine that aggregates a
// trailing window of self-report answers and behavioral signals into a
// normalized score, a discrete level, and insight strings. Everything in this
// package is a pure, synchronous computation with no I/O; loading records and
// persisting assessments belong to the service and store layers.
package risk
