// Package ui composes the landing page with Bubble Tea.
//
// Core abstractions:
//   - App: root model; owns the scrollable page, the viewport monitor
//     bridge, and the shared telemetry tracer
//   - Header: chrome state (transparent/solid) plus the navigation drawer
//   - Drawer, Dialog: animated overlays driven by internal/overlay managers
//   - FAQSection: accordion-backed collapsible questions
//   - QuoteForm: textinput composition over the internal/form state machine
//
// All state lives on the UI loop; timer-driven work (throttled snapshots)
// re-enters through Program.Send.
package ui
