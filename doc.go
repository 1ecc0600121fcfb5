/*
Package bigint implements arbitrary-precision signed integer arithmetic
for runtimes that lack a native big-integer type.

A value is stored in sign-magnitude form: a boolean sign and a
little-endian vector of 30-bit digits. No operation modifies an
existing value, so from the caller's perspective an Int is immutable
and may be freely shared between goroutines; a result may be one of
the operands or share an operand's digits.

The arithmetic surface mirrors the operator set of a language-native
big integer: Add, Sub, Mul, Div (truncating), Rem, Exp, Neg, Not, And,
Or, Xor, Lsh, Rsh, AsIntN and AsUintN. Division and remainder truncate
toward zero; the right shift of a negative value rounds toward negative
infinity; the bitwise operations treat values as infinite
two's-complement bit strings.

Values are created from Go integers (New, NewUint64), from booleans
(NewFromBool), from float64 (NewFromFloat64, which rejects NaN,
infinities and non-integral values), or from strings (NewFromString,
radix 2 through 36 with optional 0x/0o/0b auto-detection). Text renders
a value in any radix in the same range; String is the decimal form.

Operations that can fail — division by zero, a negative or oversized
exponent, a result exceeding MaxLength digits, an invalid radix —
return an error wrapping one of the three error kinds ErrRange,
ErrSyntax and ErrType, so callers can classify failures with errors.Is.

The heterogeneous helpers EQ, NE, LT, LE, GT, GE and ADD implement
abstract equality, relational comparison and addition over operands of
mixed type (Int, strings, Go numbers, booleans), following the usual
coercion rules of dynamically-typed hosts: strings concatenate and
compare by code point, numbers compare numerically against big values,
and mixing a big value with a number in arithmetic is a type error.

GetUint64, PutUint64, GetInt64 and PutInt64 move fixed-width 64-bit
values between an Int and a byte view in either byte order, for data
view emulation.
*/
package bigint
