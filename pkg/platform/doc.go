// SPDX-License-Identifier: MPL-2.0

// Package platform provides cross-platform compatibility utilities.
//
// This package centralizes platform-specific concerns such as operating
// system name constants used for runtime.GOOS comparisons.
package platform
