// Package pretty renders arbitrary values in a compact, deterministic
// bracketed notation meant for debug output and test fixtures.
//
// Strings render double-quoted with any literal ESC byte replaced by the
// four characters `\033`; no other characters are translated. Tuples,
// slices, arrays and queues render as "[ a, b, c ]" with a space of padding
// inside the brackets, or "[]" when empty. Pairs render as "(first, second)"
// with no padding. Maps render as a key-ordered sequence of pairs. Nil
// values and nil pointers render as "null". Anything else falls through to
// its native fmt representation.
//
//	pretty.Sprint(pretty.Tuple{1, "hello", 9})  // `[ 1, "hello", 9 ]`
//	pretty.Sprint(pretty.Pair[int, int]{1, 2})  // `(1, 2)`
//	pretty.SprintWithSeparator(", ", 1, 2, 3)   // `1, 2, 3`
//
// The dispatch order is fixed: explicit shapes (Tuple, Pair, Queue) and
// strings first, then pointers, then generic containers, then the fmt
// fallback. Strings are matched before containers, so a string never
// renders as a sequence of runes.
package pretty
