// Package kernel provides shared value objects used across all aggregates:
// UUID identity, monetary rounding, and inclusive day-granularity date
// ranges. Value objects here are immutable and validated at construction.
package kernel
