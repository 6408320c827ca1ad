// Package pkm models the creature record that gift eligibility is checked
// against.
//
// A Record is read-only input: the engine never mutates it. Fields hold the
// values exactly as stored by the game; derived facts (format, nativeness,
// shininess) are computed by methods so they can never drift from the
// stored fields.
//
// The package also owns game version numbering and the default
// form-changeability table, because both are properties of the creature's
// data rather than of any gift catalog.
package pkm
