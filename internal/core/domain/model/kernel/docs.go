// Package kernel contains the shared value objects of the domain model:
// entity identifiers, human-readable order numbers, settlement periods and
// geographic coordinates. All types in this package are immutable and must be
// created through their factory functions; the zero value of each type is
// invalid and fails Validate.
package kernel
