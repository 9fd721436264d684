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

package evaluator

import (
	. "github.com/corvidae/gofalcon/internal/config"
	. "github.com/corvidae/gofalcon/internal/types"
)

func (e *Evaluator) evaluatePawns() *Score {
	tmpScore.MidGameValue = 0
	tmpScore.EndGameValue = 0

	// look on cache table
	if Settings.Eval.UsePawnCache {
		entry := e.pawnCache.getEntry(e.position.PawnKey())
		if entry != nil {
			tmpScore.MidGameValue += entry.score.MidGameValue
			tmpScore.EndGameValue += entry.score.EndGameValue
			return &tmpScore
		}
	}

	// no cache hit - calculate per side: doubled/isolated maluses,
	// passed/supported bonuses
	wMid, wEnd := e.pawnStructureScore(White)
	bMid, bEnd := e.pawnStructureScore(Black)
	tmpScore.MidGameValue = wMid - bMid
	tmpScore.EndGameValue = wEnd - bEnd

	// store in cache
	if Settings.Eval.UsePawnCache {
		e.pawnCache.put(e.position.PawnKey(), &tmpScore)
	}

	return &tmpScore
}

// pawnStructureScore walks every pawn of the given side once and adds the
// configured penalty/bonus for each structural feature it participates in:
// doubled (another own pawn shares its file), isolated (no own pawn on an
// adjacent file), passed (no enemy pawn can ever block or capture it on its
// way to promotion) and supported (defended by another own pawn).
func (e *Evaluator) pawnStructureScore(us Color) (int16, int16) {
	them := us.Flip()
	ownPawns := e.position.PiecesBb(us, Pawn)
	enemyPawns := e.position.PiecesBb(them, Pawn)

	var mid, end int16
	bb := ownPawns
	for bb != BbZero {
		sq := bb.PopLsb()

		if sq.FileOf().Bb()&ownPawns&^sq.Bb() != BbZero {
			mid += Settings.Eval.PawnDoubledMidMalus
			end += Settings.Eval.PawnDoubledEndMalus
		}

		if sq.NeighbourFilesMask()&ownPawns == BbZero {
			mid += Settings.Eval.PawnIsolatedMidMalus
			end += Settings.Eval.PawnIsolatedEndMalus
		}

		if sq.PassedPawnMask(us)&enemyPawns == BbZero {
			mid += Settings.Eval.PawnPassedMidBonus
			end += Settings.Eval.PawnPassedEndBonus
		}

		// a pawn is supported if a friendly pawn would capture on its
		// square from the opposite direction - the same reverse-lookup
		// trick used by AttacksTo/IsInCheck.
		if GetPawnAttacks(them, sq)&ownPawns != BbZero {
			mid += Settings.Eval.PawnSupportedMidBonus
			end += Settings.Eval.PawnSupportedEndBonus
		}

		// the reverse direction: this pawn itself supports another own
		// pawn, i.e. it attacks a square one of our pawns stands on.
		if GetPawnAttacks(us, sq)&ownPawns != BbZero {
			mid += Settings.Eval.SupportingPawnBonus
			end += Settings.Eval.SupportingPawnBonus
		}
	}
	return mid, end
}
