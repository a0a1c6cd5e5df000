// Package vectortools is a small numeric toolkit for dense, row-major float64
// matrices: vector arithmetic, a linear-algebra kernel and a damped Newton
// solver for matrix square roots.
//
// 🚀 What is inside?
//
//   - Row-major utilities: flatten/inflate, identity, fuzzy comparison, reductions
//   - Dense kernel: multiply with transpose flags, LU determinant, QR rank and solve, SVD
//   - Matrix square root: residual and Jacobian of X·X − A, damped Newton with line search
//   - Polar decomposition on top of the square root
//
// Packages:
//
//   - matrix: Dense type, validators, vector and nested-matrix helpers
//   - matrix/ops: multiply, LU, QR, inverse, solve, SVD, eigen, sqrt, polar, batch sqrt
//   - cmd/vtools: command-line front end reading matrices from YAML
//
// Dense products go through gonum BLAS; LU, pivoted QR, SVD and the symmetric
// eigen decomposition go through gonum LAPACK.
//
//	go get github.com/katalvlaran/vectortools
package vectortools
