// Package digest implements recursive tesseract hashing (RTH).
//
// A digest is produced by repeatedly multiplying a byte window by a square
// hypercube sign matrix: the first round consumes the first D bytes of input
// (zero-padded when short), every later round consumes the previous round's
// output quantized back to bytes, and the final round's raw vector is the
// digest. The matrix is a pure function of the dimension, so verification
// always recomputes against the same transform.
package digest
