// Package widgets provides the concrete widget implementations for
// the homedeck dashboard. Each widget implements the app.Widget
// interface, owns its display state exclusively, and stays consistent
// with the others by reading the Preference Store on construction and
// subscribing to Change Notifier events for everything that can
// change while it is mounted.
package widgets
