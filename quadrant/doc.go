// SPDX-License-Identifier: MIT

// Package quadrant splits an input polytope by orthant and lifts each piece
// through the ReLU.
//
// Within one orthant (a fixed sign per coordinate) ReLU is linear:
// y_i = x_i on PLUS coordinates and y_i = 0 on MINUS ones. Split cuts the
// polytope with the K coordinate hyperplanes, exactly, and returns for every
// one of the 2^K orthants its vertex set together with the vertex→constraint
// incidence against the input rows plus the K sign rows. Lift applies the
// per-orthant linear map to a vertex.
//
// Map is an ordered container keyed by Quadrant; iteration always follows
// the lexicographic order of the sign sequences (MINUS < PLUS), so results
// never depend on insertion order.
package quadrant
