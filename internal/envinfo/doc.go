// SPDX-License-Identifier: MPL-2.0

// Package envinfo gathers the runtime facts behind the environment report:
// the runtime version, the working directory, the environment prefix and
// virtual-environment status, and the project root derived from the running
// binary's location.
//
// Gathering is purely observational. The package performs no writes, no
// network access, and spawns no processes; every fact is read once per
// Gather call and never mutated.
package envinfo
