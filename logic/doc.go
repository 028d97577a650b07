// Package logic implements the value model shared by every hardware block:
// strictly 2-valued bit vectors (Word), definition-time bit literals with
// wildcards (Pattern), and pattern-encoded enumerations (Enum) with
// first-match-wins decoding.
//
// Patterns use the hardware-description literal alphabet: '_' is 0, '@' is 1,
// and '?' matches either value. A Pattern never appears as a runtime value;
// runtime values are always Words.
package logic
