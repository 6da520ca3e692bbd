// Package components holds the themed terminal primitives of the booking kit:
// buttons, alerts, checkboxes, typography, loaders, form shells, number
// inputs, option lists and vehicle cards.
//
// Components are plain values rendered with View. Styling flows from the
// active Theme through StyleApplier modifiers, so swapping the theme with
// SetTheme restyles every component without touching call sites.
package components
