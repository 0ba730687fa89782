// Package capture collects values for a published form, validates them
// against the element descriptors and hands valid payloads to a Recorder.
//
// A Session moves between three states. Editing accepts value changes and
// submit attempts. A failed validation run moves it to Invalid, bumps the
// generation counter and flags the offending elements; the next value change
// returns it to Editing. A successful hand-off moves it to Submitted, which is
// terminal.
package capture
