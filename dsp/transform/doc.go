// Package transform provides block transforms with precomputed bases.
//
// [DCT2] computes the type-II discrete cosine transform as a matrix-vector
// product against cosine tables built once at construction. The tables are
// owned by the instance and never written afterwards, so one DCT2 may be
// shared by concurrent callers.
//
// Two scaling conventions are offered and must not be mixed:
//
//   - Direct / Inverse: raw DCT-II sum and its exact inverse
//     (Inverse(Direct(x)) == x when length == size).
//   - DirectN: orthonormal DCT-II, DC term scaled by an extra sqrt(1/2).
package transform
