// Package matrix provides the dense float64 grid used by the road ledgers.
//
// A Dense is a row-major r×c matrix stored in one flat slice. It starts at 0×0
// and is grown one row and one column at a time with Grown, which returns a new
// matrix and leaves the receiver untouched. core.Graph keeps two of them:
//
//   - the adjacency grid, entries in {0,1}, symmetric, zero diagonal;
//   - the budget grid, symmetric, non-zero only where the adjacency grid is 1.
//
// Validators (ValidateSymmetric, ValidateZeroDiagonal, ValidateMask) check those
// structural rules and return the package sentinels wrapped with a tag, so
// callers match them with errors.Is.
//
// Errors:
//
//	ErrNilMatrix         - nil *Dense.
//	ErrOutOfRange        - row or column outside bounds.
//	ErrNonSquare         - square grid required.
//	ErrDimensionMismatch - two grids differ in shape.
//	ErrNaNInf            - NaN or ±Inf value.
//	ErrAsymmetry         - m[i,j] != m[j,i].
//	ErrNonZeroDiagonal   - m[i,i] != 0.
//	ErrMaskViolation     - value present outside its mask.
package matrix
