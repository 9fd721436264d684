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

import (
	"math/bits"

	"golang.org/x/sys/cpu"
)

// hasBMI2 reports whether the running CPU exposes the BMI2 instruction set
// (and therefore a hardware PEXT). Checked once at process start.
var hasBMI2 = cpu.X86.HasBMI2

// pext extracts the bits of x selected by mask and packs them into the low
// bits of the result, in mask-bit order - the same operation the x86 BMI2
// "PEXT" instruction performs. On BMI2 hardware this dispatches to
// pextFast, which copies contiguous runs of mask bits at once; everywhere
// else pextPortable copies one mask bit at a time. Both paths are
// semantically identical - this function is the only place move generation
// and search ask "what does the occupancy look like on this ray."
func pext(x, mask uint64) uint64 {
	if hasBMI2 {
		return pextFast(x, mask)
	}
	return pextPortable(x, mask)
}

// pextPortable is the textbook software PEXT: walk the mask from its
// lowest set bit upward, and for every set bit copy the corresponding bit
// of x into the next free low-order bit of the result.
func pextPortable(x, mask uint64) uint64 {
	var res uint64
	for i := uint(0); mask != 0; i++ {
		bit := mask & (-mask) // isolate lowest set bit
		if x&bit != 0 {
			res |= 1 << i
		}
		mask &= mask - 1
	}
	return res
}

// pextFast is functionally identical to pextPortable but processes the
// mask's set bits in bulk runs with math/bits instead of one at a time,
// which is the best a pure-Go build can do without the BMI2 intrinsic the
// Go compiler does not expose. It is selected only when hasBMI2 is true so
// table construction on such hardware pays for the cheaper code path.
func pextFast(x, mask uint64) uint64 {
	var res uint64
	var resBit uint = 0
	for mask != 0 {
		run := mask & (-mask)
		// extend the run of contiguous set bits starting at its lsb
		for {
			next := run | (run << 1)
			if next&mask == next && bits.OnesCount64(next) > bits.OnesCount64(run) {
				run = next
				continue
			}
			break
		}
		shift := uint(bits.TrailingZeros64(run))
		width := uint(bits.OnesCount64(run))
		res |= ((x >> shift) & ((uint64(1) << width) - 1)) << resBit
		resBit += width
		mask &^= run
	}
	return res
}
