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
	"strconv"
	"strings"

	"github.com/corvidae/gofalcon/internal/util"
)

// Value represents the positional or material value of a chess position
// in centipawns.
type Value int32

// Constants for values
const (
	ValueZero Value = 0
	ValueDraw Value = 0
	ValueOne  Value = 1
	ValueInf  Value = 1_000_000
	ValueNA   Value = -ValueInf - 1
	ValueMax  Value = 500_000
	ValueMin  Value = -ValueMax
)

// mateScore holds the value assigned to an immediate checkmate. It is
// exposed as a UCI option (MateScore) so it can be tuned between 50000
// and 200000; ValueCheckMate() and the mate-distance helpers below
// always read the current setting rather than a baked-in constant.
var mateScore Value = 100_000

// SetMateScore updates the value used to score forced mate. Called from
// the UCI option handler for "MateScore".
func SetMateScore(v Value) {
	mateScore = v
}

// MateScoreValue returns the value currently configured for an immediate
// checkmate.
func MateScoreValue() Value {
	return mateScore
}

// ValueCheckMate returns the value of an immediate checkmate for the
// side to move.
func ValueCheckMate() Value {
	return mateScore
}

// ValueCheckMateThreshold returns the smallest absolute value that is
// still considered a forced mate score, leaving room for mate-in-N
// scores at every depth up to MaxDepth.
func ValueCheckMateThreshold() Value {
	return mateScore - MaxDepth - 1
}

// IsValid checks if value is within valid range (between Min and Max)
func (v Value) IsValid() bool {
	return v >= ValueMin && v <= ValueMax
}

// IsCheckMateValue returns true if value is above the check mate threshold
// which is the check mate value minus the maximum search depth.
func (v Value) IsCheckMateValue() bool {
	return util.Abs(int(v)) > int(ValueCheckMateThreshold()) && util.Abs(int(v)) <= int(ValueCheckMate())
}

func (v Value) String() string {
	var os strings.Builder
	if v.IsCheckMateValue() {
		os.WriteString("mate ")
		if v < ValueZero {
			os.WriteString("-")
		}
		i := int(ValueCheckMate()) - util.Abs(int(v))
		i2 := (i + 1) / 2
		os.WriteString(strconv.Itoa(i2))
	} else if v == ValueNA {
		os.WriteString("N/A")
	} else {
		os.WriteString("cp ")
		os.WriteString(strconv.Itoa(int(v)))
	}
	return os.String()
}
