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

package search

import (
	"github.com/corvidae/gofalcon/internal/position"
	. "github.com/corvidae/gofalcon/internal/types"
)

// maxSwapDepth bounds the exchange sequence on a single square: 2 attackers
// per side per piece type plus the original mover is always well under this.
const maxSwapDepth = 32

// see runs the static exchange evaluation for a capture (or a move into an
// attacked square) and returns the material balance of playing out the full
// exchange sequence on move.To(), always picking the least valuable attacker
// left for the side on move at each step - never just the lowest-indexed bit
// of whichever attackers remain, which would let a queen jump in ahead of a
// pawn and misjudge the exchange. The swap list is built once and then
// collapsed back to front via a minimax-over-negation fold.
func see(p *position.Position, move Move) Value {

	// enpassant moves are ignored in a sense that it will be winning
	// capture and therefore should lead to no cut-offs when using see()
	if move.MoveType() == EnPassant {
		return 100
	}

	var swapList [maxSwapDepth]Value

	toSquare := move.To()
	fromSquare := move.From()
	attacker := p.GetPiece(fromSquare)
	sideToCapture := p.NextPlayer()

	// bitboard of everything still on the board; squares are cleared from it
	// as pieces are speculatively swapped off, which is what lets x-ray
	// attacks (e.g. a rook behind a rook) show up in remainingAttackers
	occupied := p.OccupiedAll()
	remainingAttackers := AttacksTo(p, toSquare, White) | AttacksTo(p, toSquare, Black)

	depth := 0
	swapList[depth] = p.GetPiece(toSquare).ValueOf()

	for {
		depth++
		sideToCapture = sideToCapture.Flip()

		if move.MoveType() == Promotion && depth == 1 {
			swapList[depth] = move.PromotionType().ValueOf() - Pawn.ValueOf() - swapList[depth-1]
		} else {
			swapList[depth] = attacker.ValueOf() - swapList[depth-1]
		}

		// a side will never continue an exchange that loses material for it,
		// so once this capture can no longer change the outcome we can stop
		// building the swap list early
		if max(-swapList[depth-1], swapList[depth]) < 0 {
			break
		}

		occupied.PopSquare(fromSquare)
		remainingAttackers.PopSquare(fromSquare)
		remainingAttackers |= revealedAttacks(p, toSquare, occupied, White) |
			revealedAttacks(p, toSquare, occupied, Black)

		fromSquare = leastValuableAttacker(p, remainingAttackers, sideToCapture)
		if fromSquare == SqNone {
			break
		}
		attacker = p.GetPiece(fromSquare)

		if depth >= maxSwapDepth-1 {
			break
		}
	}

	// fold the swap list back to front: at each step the side on move may
	// choose to stop capturing, so its result is the better (for it) of
	// "stop here" and "let the next capture happen"
	for depth > 0 {
		swapList[depth-1] = -max(-swapList[depth-1], swapList[depth])
		depth--
	}

	return swapList[0]
}

// AttacksTo determine all attacks for SEE. EnPassant is not included as this is not
// relevant for SEE as the move preceding enpassant is always non capturing.
func AttacksTo(p *position.Position, square Square, color Color) Bitboard {
	occupiedAll := p.OccupiedAll()
	return (GetPawnAttacks(color.Flip(), square) & p.PiecesBb(color, Pawn)) |
		// Knight
		(GetAttacksBb(Knight, square, occupiedAll) & p.PiecesBb(color, Knight)) |
		// King
		(GetAttacksBb(King, square, occupiedAll) & p.PiecesBb(color, King)) |
		// Sliding rooks and queens
		(GetAttacksBb(Rook, square, occupiedAll) & (p.PiecesBb(color, Rook) | p.PiecesBb(color, Queen))) |
		// Sliding bishops and queens
		(GetAttacksBb(Bishop, square, occupiedAll) & (p.PiecesBb(color, Bishop) | p.PiecesBb(color, Queen)))
}

// Returns sliding attacks after a piece has been removed to reveal new attacks.
// It is only necessary to look at slider pieces as only their attacks can be revealed
func revealedAttacks(p *position.Position, square Square, occupied Bitboard, color Color) Bitboard {
	// Sliding rooks and queens
	return (GetAttacksBb(Rook, square, occupied) & (p.PiecesBb(color, Rook) | p.PiecesBb(color, Queen)) & occupied) |
		// Sliding bishops and queens
		(GetAttacksBb(Bishop, square, occupied) & (p.PiecesBb(color, Bishop) | p.PiecesBb(color, Queen)) & occupied)
}

// attackerOrder lists piece types from least to most valuable so the exchange
// sequence always swaps off the cheapest piece available rather than whatever
// happens to sit at the lowest bit index of the combined attackers bitboard.
var attackerOrder = [...]PieceType{Pawn, Knight, Bishop, Rook, Queen, King}

// leastValuableAttacker returns the square of the cheapest piece of color
// that attacks through bitboard. Ties within the same piece type are broken
// by bitboard index, which is immaterial to the exchange value since same
// type implies same value.
func leastValuableAttacker(pos *position.Position, attackers Bitboard, color Color) Square {
	for _, pt := range attackerOrder {
		if ofType := attackers & pos.PiecesBb(color, pt); ofType != 0 {
			return ofType.Lsb()
		}
	}
	return SqNone
}

func max(x, y Value) Value {
	if x > y {
		return x
	}
	return y
}
