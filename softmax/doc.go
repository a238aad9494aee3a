// Package softmax implements the symmetric two-sided log-sum-exp that
// Sherman's solver uses as a smooth surrogate for ‖·‖∞ (spec.md §4.1):
//
//	lmax(x)    = log Σ_i (e^{x_i} + e^{-x_i})
//	∇lmax(x)_i = (e^{x_i} − e^{−x_i}) / Σ_j (e^{x_j} + e^{−x_j})
//
// Both are shifted by max|x_i| before exponentiating, so neither overflows
// regardless of input magnitude — the naive Σe^{x_i} form this deliberately
// avoids would overflow long before the symmetric form does, since every
// term here is bounded by 1 after the shift.
package softmax
