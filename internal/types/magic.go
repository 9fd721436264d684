/*
 * Gofalcon - a UCI chess engine written for learning purposes
 *
 * MIT License
 *
 * Copyright (c) 2020-2024 Gofalcon contributors
 *
 * Permission is hereby granted, free of charge, to any person obtaining a copy
 * of this software and associated documentation files (the "Software"), to deal
 * in the Software without restriction, including without limitation the rights
 * to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
 * copies of the Software, and to permit persons to whom the Software is
 * furnished to do so, subject to the following conditions:
 *
 * The above copyright notice and this permission notice shall be included in all
 * copies or substantial portions of the Software.
 *
 * THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
 * IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
 * FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
 * AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
 * LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
 * OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
 * SOFTWARE.
 */

package types

// Magic holds the relevant-occupancy mask and attack table for a single
// square of a sliding piece (rook or bishop). Unlike the classic "fancy
// magic" approach there is no magic multiplier: the table is indexed
// directly by the PEXT of the occupancy with the mask, which is already a
// dense, collision free index into a table of size 2^popcount(mask).
type Magic struct {
	Mask    Bitboard
	Attacks []Bitboard
}

// index returns the position in m.Attacks for the given full-board
// occupancy. This is the single place that decides between the hardware
// BMI2 PEXT instruction and the portable software fallback - see pext.go.
func (m *Magic) index(occupied Bitboard) uint {
	return uint(pext(uint64(occupied), uint64(m.Mask)))
}

// initPextTable computes the rook/bishop attack table at startup. For each
// square it first determines the relevant-occupancy mask (the sliding
// attack on an empty board with board edges removed, since edge squares
// never change whether a ray is blocked), then enumerates every subset of
// that mask with the Carry-Rippler trick and stores the true attack for
// that subset - found by walking the rays to the first blocker - at the
// PEXT index of the subset.
func initPextTable(table *[]Bitboard, magics *[64]Magic, directions *[4]Direction) {
	var edges, b Bitboard
	size := 0

	for sq := SqA1; sq <= SqH8; sq++ {
		// Board edges are not considered in the relevant occupancies - a
		// blocker on the far edge can never hide a square behind it.
		edges = ((Rank1_Bb | Rank8_Bb) &^ sq.RankOf().Bb()) | ((FileA_Bb | FileH_Bb) &^ sq.FileOf().Bb())

		m := &(*magics)[sq]
		m.Mask = slidingAttack(directions, sq, BbZero) &^ edges

		// Set the offset for the attacks table of the square - tables are
		// concatenated so each square gets exactly 2^popcount(mask) entries.
		if sq == SqA1 {
			m.Attacks = *table
		} else {
			m.Attacks = magics[sq-1].Attacks[size:]
		}

		// Use Carry-Rippler trick to enumerate all subsets of mask and
		// store the corresponding sliding attack bitboard at its PEXT index.
		// https://www.chessprogramming.org/Traversing_Subsets_of_a_Set
		b = 0
		size = 0
		for {
			m.Attacks[pext(uint64(b), uint64(m.Mask))] = slidingAttack(directions, sq, b)
			size++
			b = (b - m.Mask) & m.Mask
			if b == 0 { // do - while(b)
				break
			}
		}
	}
}

// slidingAttack calculates sliding attacks along the given directions for
// the given square and board occupation by walking each ray to its first
// blocker. Used only to build the precomputed tables, never during move
// generation or search.
func slidingAttack(directions *[4]Direction, sq Square, occupied Bitboard) Bitboard {
	attack := BbZero
	for i := 0; i < 4; i++ {
		s := sq
		for {
			s = s.To(directions[i])
			if !s.IsValid() {
				break
			}
			attack.PushSquare(s)
			if occupied.Has(s) {
				break
			}
			if !s.To(directions[i]).IsValid() || SquareDistance(s, s.To(directions[i])) != 1 {
				break
			}
		}
	}
	return attack
}
