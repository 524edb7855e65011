// Package inventory provides the domain types shared by the product store and
// the command-line shell.
//
// This package contains type definitions and input checks only. It imports
// nothing internal, so both internal/store and internal/cli can depend on it.
//
// Key constraints:
//   - Product IDs are assigned by the store and never reused
//   - Names are NFC normalized before they are persisted or searched
//   - Quantity has no lower bound; adjustments may drive it negative
package inventory
