// Package yanumparse converts text into numbers under fixed, per-type failure policies.
//
// Every numeric type has two parsers:
//
//   - TryParse* reports success with the comma-ok idiom and never errors. Failure always
//     comes with the zero value, nil input included.
//   - Parse* is best effort. It returns a type specific sentinel instead of failing, and
//     only returns an error for nil input plus the few categories listed below.
//
// Inputs are *string so that absent text (nil) can be told apart from empty text; use
// Text to build one. Surrounding whitespace is trimmed. The grammar is locale
// independent: optional sign, ASCII digits, '.' as the decimal separator, no grouping.
//
// Sentinel policy of the Parse* functions:
//
//	type     blank             malformed         too large    too negative   nil
//	int32    0                 0                 -1           -1             ErrNilInput
//	uint32   0                 0                 MaxUint32    MaxUint32 (*)  ErrNilInput
//	uint8    255               255               255          0              ErrNilInput
//	int8     127               127               ErrOverflow  ErrOverflow    ErrNilInput
//	int16    ErrInvalidFormat  ErrInvalidFormat  ErrOverflow  ErrOverflow    ErrNilInput
//	uint16   0                 0                 MaxUint16    MaxUint16      ErrNilInput
//	int64    MinInt64          MinInt64          -1           MinInt64       ErrNilInput
//	uint64   ErrInvalidFormat  ErrInvalidFormat  ErrOverflow  ErrOverflow    ErrNilInput
//	float32  NaN               NaN               +Inf         -Inf           ErrNilInput
//	float64  epsilon           epsilon           epsilon      epsilon        ErrNilInput
//	decimal  0                 0                 DecimalMax   DecimalMin     ErrNilInput
//
// (*) any leading '-' is answered with MaxUint32 before conversion, any other non-digit
// character with 0.
//
// The table is intentionally irregular. Callers rely on each row as it is.
//
// All functions are pure and safe for concurrent use.
package yanumparse
