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

package uci

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"

	. "github.com/corvidae/gofalcon/internal/config"
)

// init will define all available uci options and store them into the uciOption map
func init() {
	uciOptions = map[string]*uciOption{
		"Print Config": {NameID: "Print Config", HandlerFunc: printConfig, OptionType: Button},
		"Clear Hash":   {NameID: "Clear Hash", HandlerFunc: clearCache, OptionType: Button},
		"Use_Hash":     {NameID: "Use_Hash", HandlerFunc: useCache, OptionType: Check, DefaultValue: strconv.FormatBool(Settings.Search.UseTT), CurrentValue: strconv.FormatBool(Settings.Search.UseTT)},
		"Hash":         {NameID: "Hash", HandlerFunc: cacheSize, OptionType: Spin, DefaultValue: strconv.Itoa(Settings.Search.TTSize), CurrentValue: strconv.Itoa(Settings.Search.TTSize), MinValue: "0", MaxValue: "65000"},

		"Use_Book": {NameID: "Use_Book", HandlerFunc: useBook, OptionType: Check, DefaultValue: strconv.FormatBool(Settings.Search.UseBook), CurrentValue: strconv.FormatBool(Settings.Search.UseBook)},

		"Ponder": {NameID: "Ponder", HandlerFunc: usePonder, OptionType: Check, DefaultValue: strconv.FormatBool(Settings.Search.UsePonder), CurrentValue: strconv.FormatBool(Settings.Search.UsePonder)},

		"Quiescence": {NameID: "Quiescence", HandlerFunc: useQuiescence, OptionType: Check, DefaultValue: strconv.FormatBool(Settings.Search.UseQuiescence), CurrentValue: strconv.FormatBool(Settings.Search.UseQuiescence)},
		"Use_QHash":  {NameID: "Use_QHash", HandlerFunc: useQSHash, OptionType: Check, DefaultValue: strconv.FormatBool(Settings.Search.UseQSTT), CurrentValue: strconv.FormatBool(Settings.Search.UseQSTT)},
		"Use_SEE":    {NameID: "Use_SEE", HandlerFunc: useSee, OptionType: Check, DefaultValue: strconv.FormatBool(Settings.Search.UseSEE), CurrentValue: strconv.FormatBool(Settings.Search.UseSEE)},

		"Use_PVS":         {NameID: "Use_PVS", HandlerFunc: usePvs, OptionType: Check, DefaultValue: strconv.FormatBool(Settings.Search.UsePVS), CurrentValue: strconv.FormatBool(Settings.Search.UsePVS)},
		"Use_IID":         {NameID: "Use_IID", HandlerFunc: useIID, OptionType: Check, DefaultValue: strconv.FormatBool(Settings.Search.UseIID), CurrentValue: strconv.FormatBool(Settings.Search.UseIID)},
		"Use_Killer":      {NameID: "Use_Killer", HandlerFunc: useKiller, OptionType: Check, DefaultValue: strconv.FormatBool(Settings.Search.UseKiller), CurrentValue: strconv.FormatBool(Settings.Search.UseKiller)},
		"Use_HistCount":   {NameID: "Use_HistCount", HandlerFunc: useHC, OptionType: Check, DefaultValue: strconv.FormatBool(Settings.Search.UseHistoryCounter), CurrentValue: strconv.FormatBool(Settings.Search.UseHistoryCounter)},
		"Use_CounterMove": {NameID: "Use_CounterMove", HandlerFunc: useCM, OptionType: Check, DefaultValue: strconv.FormatBool(Settings.Search.UseCounterMoves), CurrentValue: strconv.FormatBool(Settings.Search.UseCounterMoves)},

		"Use_Rfp":      {NameID: "Use_Rfp", HandlerFunc: useRfp, OptionType: Check, DefaultValue: strconv.FormatBool(Settings.Search.UseRFP), CurrentValue: strconv.FormatBool(Settings.Search.UseRFP)},
		"Use_NullMove": {NameID: "Use_NullMove", HandlerFunc: useNullMove, OptionType: Check, DefaultValue: strconv.FormatBool(Settings.Search.UseNullMove), CurrentValue: strconv.FormatBool(Settings.Search.UseNullMove)},
		"Use_Mdp":      {NameID: "Use_Mdp", HandlerFunc: useMdp, OptionType: Check, DefaultValue: strconv.FormatBool(Settings.Search.UseMDP), CurrentValue: strconv.FormatBool(Settings.Search.UseMDP)},
		"Use_Fp":       {NameID: "Use_Fp", HandlerFunc: useFp, OptionType: Check, DefaultValue: strconv.FormatBool(Settings.Search.UseFP), CurrentValue: strconv.FormatBool(Settings.Search.UseFP)},
		"Use_Lmr":      {NameID: "Use_Lmr", HandlerFunc: useLmr, OptionType: Check, DefaultValue: strconv.FormatBool(Settings.Search.UseLmr), CurrentValue: strconv.FormatBool(Settings.Search.UseLmr)},
		"Use_Lmp":      {NameID: "Use_Lmp", HandlerFunc: useLmp, OptionType: Check, DefaultValue: strconv.FormatBool(Settings.Search.UseLmp), CurrentValue: strconv.FormatBool(Settings.Search.UseLmp)},

		"Use_Ext":         {NameID: "Use_Ext", HandlerFunc: useExt, OptionType: Check, DefaultValue: strconv.FormatBool(Settings.Search.UseExt), CurrentValue: strconv.FormatBool(Settings.Search.UseExt)},
		"Use_ExtAddDepth": {NameID: "Use_ExtAddDepth", HandlerFunc: useExtAddDepth, OptionType: Check, DefaultValue: strconv.FormatBool(Settings.Search.UseExtAddDepth), CurrentValue: strconv.FormatBool(Settings.Search.UseExtAddDepth)},
		"Use_CheckExt":    {NameID: "Use_CheckExt", HandlerFunc: useCheckExt, OptionType: Check, DefaultValue: strconv.FormatBool(Settings.Search.UseCheckExt), CurrentValue: strconv.FormatBool(Settings.Search.UseCheckExt)},
		"Use_ThreatExt":   {NameID: "Use_ThreatExt", HandlerFunc: useThreatExt, OptionType: Check, DefaultValue: strconv.FormatBool(Settings.Search.UseThreatExt), CurrentValue: strconv.FormatBool(Settings.Search.UseThreatExt)},

		"Eval_Lazy":     {NameID: "Eval_Lazy", HandlerFunc: evalLazy, OptionType: Check, DefaultValue: strconv.FormatBool(Settings.Eval.UseLazyEval), CurrentValue: strconv.FormatBool(Settings.Eval.UseLazyEval)},
		"Eval_Mobility": {NameID: "Eval_Mobility", HandlerFunc: evalMob, OptionType: Check, DefaultValue: strconv.FormatBool(Settings.Eval.UseMobility), CurrentValue: strconv.FormatBool(Settings.Eval.UseMobility)},
		"Eval_AdvPiece": {NameID: "Eval_AdvPiece", HandlerFunc: evalAdv, OptionType: Check, DefaultValue: strconv.FormatBool(Settings.Eval.UseAdvancedPieceEval), CurrentValue: strconv.FormatBool(Settings.Eval.UseAdvancedPieceEval)},

		"PawnValue":   {NameID: "PawnValue", HandlerFunc: pawnValue, OptionType: Spin, DefaultValue: strconv.Itoa(int(Pawn.ValueOf())), CurrentValue: strconv.Itoa(int(Pawn.ValueOf())), MinValue: "1", MaxValue: "2000"},
		"KnightValue": {NameID: "KnightValue", HandlerFunc: knightValue, OptionType: Spin, DefaultValue: strconv.Itoa(int(Knight.ValueOf())), CurrentValue: strconv.Itoa(int(Knight.ValueOf())), MinValue: "1", MaxValue: "2000"},
		"BishopValue": {NameID: "BishopValue", HandlerFunc: bishopValue, OptionType: Spin, DefaultValue: strconv.Itoa(int(Bishop.ValueOf())), CurrentValue: strconv.Itoa(int(Bishop.ValueOf())), MinValue: "1", MaxValue: "2000"},
		"RookValue":   {NameID: "RookValue", HandlerFunc: rookValue, OptionType: Spin, DefaultValue: strconv.Itoa(int(Rook.ValueOf())), CurrentValue: strconv.Itoa(int(Rook.ValueOf())), MinValue: "1", MaxValue: "3000"},
		"QueenValue":  {NameID: "QueenValue", HandlerFunc: queenValue, OptionType: Spin, DefaultValue: strconv.Itoa(int(Queen.ValueOf())), CurrentValue: strconv.Itoa(int(Queen.ValueOf())), MinValue: "1", MaxValue: "4000"},
		"KingValue":   {NameID: "KingValue", HandlerFunc: kingValue, OptionType: Spin, DefaultValue: strconv.Itoa(int(King.ValueOf())), CurrentValue: strconv.Itoa(int(King.ValueOf())), MinValue: "1", MaxValue: "10000"},

		"MateScore": {NameID: "MateScore", HandlerFunc: mateScoreOption, OptionType: Spin, DefaultValue: strconv.Itoa(int(MateScoreValue())), CurrentValue: strconv.Itoa(int(MateScoreValue())), MinValue: "50000", MaxValue: "200000"},

		"KingShieldBonus":      {NameID: "KingShieldBonus", HandlerFunc: kingShieldBonus, OptionType: Spin, DefaultValue: strconv.Itoa(int(Settings.Eval.KingShieldBonus)), CurrentValue: strconv.Itoa(int(Settings.Eval.KingShieldBonus)), MinValue: "0", MaxValue: "200"},
		"RestrictKingBonus":    {NameID: "RestrictKingBonus", HandlerFunc: restrictKingBonus, OptionType: Spin, DefaultValue: strconv.Itoa(int(Settings.Eval.RestrictKingBonus)), CurrentValue: strconv.Itoa(int(Settings.Eval.RestrictKingBonus)), MinValue: "0", MaxValue: "100"},
		"AiryKingPenalty":      {NameID: "AiryKingPenalty", HandlerFunc: airyKingPenalty, OptionType: Spin, DefaultValue: strconv.Itoa(int(Settings.Eval.AiryKingPenalty)), CurrentValue: strconv.Itoa(int(Settings.Eval.AiryKingPenalty)), MinValue: "0", MaxValue: "100"},
		"CheckedPenalty":       {NameID: "CheckedPenalty", HandlerFunc: checkedPenalty, OptionType: Spin, DefaultValue: strconv.Itoa(int(Settings.Eval.CheckedPenalty)), CurrentValue: strconv.Itoa(int(Settings.Eval.CheckedPenalty)), MinValue: "0", MaxValue: "200"},
		"CheckingBonus":        {NameID: "CheckingBonus", HandlerFunc: checkingBonus, OptionType: Spin, DefaultValue: strconv.Itoa(int(Settings.Eval.CheckingBonus)), CurrentValue: strconv.Itoa(int(Settings.Eval.CheckingBonus)), MinValue: "0", MaxValue: "200"},
		"BishopPairBonus":      {NameID: "BishopPairBonus", HandlerFunc: bishopPairBonus, OptionType: Spin, DefaultValue: strconv.Itoa(int(Settings.Eval.BishopPairBonus)), CurrentValue: strconv.Itoa(int(Settings.Eval.BishopPairBonus)), MinValue: "0", MaxValue: "100"},
		"RookOpenFileBonus":    {NameID: "RookOpenFileBonus", HandlerFunc: rookOpenFileBonus, OptionType: Spin, DefaultValue: strconv.Itoa(int(Settings.Eval.RookOnOpenFileBonus)), CurrentValue: strconv.Itoa(int(Settings.Eval.RookOnOpenFileBonus)), MinValue: "0", MaxValue: "100"},

		"PassedPawnBonus":      {NameID: "PassedPawnBonus", HandlerFunc: passedPawnBonus, OptionType: Spin, DefaultValue: strconv.Itoa(int(Settings.Eval.PawnPassedMidBonus)), CurrentValue: strconv.Itoa(int(Settings.Eval.PawnPassedMidBonus)), MinValue: "0", MaxValue: "100"},
		"SupportedPawnBonus":   {NameID: "SupportedPawnBonus", HandlerFunc: supportedPawnBonus, OptionType: Spin, DefaultValue: strconv.Itoa(int(Settings.Eval.PawnSupportedMidBonus)), CurrentValue: strconv.Itoa(int(Settings.Eval.PawnSupportedMidBonus)), MinValue: "0", MaxValue: "100"},
		"SupportingPawnBonus":  {NameID: "SupportingPawnBonus", HandlerFunc: supportingPawnBonus, OptionType: Spin, DefaultValue: strconv.Itoa(int(Settings.Eval.SupportingPawnBonus)), CurrentValue: strconv.Itoa(int(Settings.Eval.SupportingPawnBonus)), MinValue: "0", MaxValue: "100"},
		"SupportingPieceBonus": {NameID: "SupportingPieceBonus", HandlerFunc: supportingPieceBonus, OptionType: Spin, DefaultValue: strconv.Itoa(int(Settings.Eval.SupportingPieceBonus)), CurrentValue: strconv.Itoa(int(Settings.Eval.SupportingPieceBonus)), MinValue: "0", MaxValue: "100"},
		"DoubledPawnPenalty":   {NameID: "DoubledPawnPenalty", HandlerFunc: doubledPawnPenalty, OptionType: Spin, DefaultValue: strconv.Itoa(int(-Settings.Eval.PawnDoubledMidMalus)), CurrentValue: strconv.Itoa(int(-Settings.Eval.PawnDoubledMidMalus)), MinValue: "0", MaxValue: "100"},
		"IsolatedPawnPenalty":  {NameID: "IsolatedPawnPenalty", HandlerFunc: isolatedPawnPenalty, OptionType: Spin, DefaultValue: strconv.Itoa(int(-Settings.Eval.PawnIsolatedMidMalus)), CurrentValue: strconv.Itoa(int(-Settings.Eval.PawnIsolatedMidMalus)), MinValue: "0", MaxValue: "100"},
	}
	sortOrderUciOptions = []string{
		"Print Config",
		"Clear Hash",
		"Use_Hash",
		"Hash",
		"Use_Book",
		"Ponder",

		"Quiescence",
		"Use_QHash",
		"Use_SEE",

		"Use_IID",
		"Use_PVS",
		"Use_Killer",
		"Use_HistCount",
		"Use_CounterMove",

		"Use_Mdp",
		"Use_Rfp",
		"Use_NullMove",
		"Use_Fp",
		"Use_Lmr",
		"Use_Lmp",

		"Use_Ext",
		"Use_ExtAddDepth",
		"Use_CheckExt",
		"Use_ThreatExt",

		"Eval_Mobility",
		"Eval_AdvPiece",

		"PawnValue",
		"KnightValue",
		"BishopValue",
		"RookValue",
		"QueenValue",
		"KingValue",

		"MateScore",

		"KingShieldBonus",
		"RestrictKingBonus",
		"AiryKingPenalty",
		"CheckedPenalty",
		"CheckingBonus",
		"BishopPairBonus",
		"RookOpenFileBonus",

		"PassedPawnBonus",
		"SupportedPawnBonus",
		"SupportingPawnBonus",
		"SupportingPieceBonus",
		"DoubledPawnPenalty",
		"IsolatedPawnPenalty",
	}
}

// GetOptions returns all available uci options a slice of strings
// to be send to the UCI user interface during the initialization
// phase of the UCI protocol
func (o *optionMap) GetOptions() *[]string {
	var options []string
	for _, opt := range sortOrderUciOptions {
		options = append(options, uciOptions[opt].String())
	}
	return &options
}

// String for uciOption will return a representation of the uci option as required by
// the UCI protocol during the initialization phase of the UCI protocol
func (o *uciOption) String() string {
	var os strings.Builder
	os.WriteString("option name ")
	os.WriteString(o.NameID)
	os.WriteString(" type ")
	switch o.OptionType {
	case Check:
		os.WriteString("check ")
		os.WriteString("default ")
		os.WriteString(o.DefaultValue)
	case Spin:
		os.WriteString("spin ")
		os.WriteString("default ")
		os.WriteString(o.DefaultValue)
		os.WriteString(" min ")
		os.WriteString(o.MinValue)
		os.WriteString(" max ")
		os.WriteString(o.MaxValue)
	case Combo:
		os.WriteString("combo ")
		os.WriteString("default ")
		os.WriteString(o.DefaultValue)
		os.WriteString(" var ")
		os.WriteString(o.VarValue)
	case Button:
		os.WriteString("button")
	case String:
		os.WriteString("string ")
		os.WriteString("default ")
		os.WriteString(o.DefaultValue)
	}

	return os.String()
}

// uciOptionType is a enum representing the different UCI Option types
type uciOptionType int

// uci option types constants
const (
	Check  uciOptionType = 0
	Spin   uciOptionType = 1
	Combo  uciOptionType = 2
	Button uciOptionType = 3
	String uciOptionType = 4
)

// optionHandler is a function type to by used as function pointer
// in each uci option defined. This is called when the uci option
// is changed by the "setoption" command
type optionHandler func(*UciHandler, *uciOption)

// uciOption defines UCI Options as described in the UCI protocol.
// Each options has a function pointer to a handler which will be
// called when the "setoption" command changes the option.
type uciOption struct {
	NameID       string
	HandlerFunc  optionHandler
	OptionType   uciOptionType
	DefaultValue string
	MinValue     string
	MaxValue     string
	VarValue     string
	CurrentValue string
}

// optionMap convenience type for a map of pointers to uci options
type optionMap map[string]*uciOption

// uciOptions stores all available uci options
var uciOptions optionMap

// to control the sort order of all options
var sortOrderUciOptions []string

// ////////////////////////////////////////////////////////////////
// HandlerFunc for uci options changes
// ////////////////////////////////////////////////////////////////

func printConfig(handler *UciHandler, option *uciOption) {
	s := reflect.ValueOf(&Settings.Eval).Elem()
	typeOfT := s.Type()
	for i := s.NumField() - 1; i >= 0; i-- {
		f := s.Field(i)
		handler.SendInfoString(fmt.Sprintf("%-2d: %-22s %-6s = %v\n", i, typeOfT.Field(i).Name, f.Type(), f.Interface()))
	}
	handler.SendInfoString("Evaluation Config:\n")
	s = reflect.ValueOf(&Settings.Search).Elem()
	typeOfT = s.Type()
	for i := s.NumField() - 1; i >= 0; i-- {
		f := s.Field(i)
		handler.SendInfoString(fmt.Sprintf("%-2d: %-22s %-6s = %v\n", i, typeOfT.Field(i).Name, f.Type(), f.Interface()))
	}
	handler.SendInfoString("Search Config:\n")
	log.Debug(Settings.String())

}

func clearCache(u *UciHandler, o *uciOption) {
	u.mySearch.ClearHash()
	log.Debug("Cleared Cache")
}

func useCache(u *UciHandler, o *uciOption) {
	v, _ := strconv.ParseBool(o.CurrentValue)
	Settings.Search.UseTT = v
	log.Debugf("Set Use Hash to %v", Settings.Search.UseTT)
}

func cacheSize(u *UciHandler, o *uciOption) {
	v, _ := strconv.Atoi(o.CurrentValue)
	Settings.Search.TTSize = v
	u.mySearch.ResizeCache()
}

func useBook(u *UciHandler, o *uciOption) {
	v, _ := strconv.ParseBool(o.CurrentValue)
	Settings.Search.UseBook = v
	log.Debugf("Set Use Book to %v", Settings.Search.UseBook)
}

func usePonder(u *UciHandler, o *uciOption) {
	v, _ := strconv.ParseBool(o.CurrentValue)
	Settings.Search.UsePonder = v
	log.Debugf("Set Use Ponder to %v", Settings.Search.UsePonder)
}

func useQuiescence(u *UciHandler, o *uciOption) {
	v, _ := strconv.ParseBool(o.CurrentValue)
	Settings.Search.UseQuiescence = v
	log.Debugf("Set Use Quiescence to %v", Settings.Search.UseQuiescence)
}

func useQSHash(u *UciHandler, o *uciOption) {
	v, _ := strconv.ParseBool(o.CurrentValue)
	Settings.Search.UseQSTT = v
	log.Debugf("Set Use Hash in Quiescence to %v", Settings.Search.UseQSTT)
}

func usePvs(u *UciHandler, o *uciOption) {
	v, _ := strconv.ParseBool(o.CurrentValue)
	Settings.Search.UsePVS = v
	log.Debugf("Set Use PVS to %v", Settings.Search.UsePVS)
}

func useMdp(u *UciHandler, o *uciOption) {
	v, _ := strconv.ParseBool(o.CurrentValue)
	Settings.Search.UseMDP = v
	log.Debugf("Set Use MDP to %v", Settings.Search.UseMDP)
}

func useKiller(u *UciHandler, o *uciOption) {
	v, _ := strconv.ParseBool(o.CurrentValue)
	Settings.Search.UseKiller = v
	log.Debugf("Set Use Killer Moves to %v", Settings.Search.UseKiller)
}

func useHC(u *UciHandler, o *uciOption) {
	v, _ := strconv.ParseBool(o.CurrentValue)
	Settings.Search.UseHistoryCounter = v
	log.Debugf("Set Use History Counter to %v", Settings.Search.UseHistoryCounter)
}

func useCM(u *UciHandler, o *uciOption) {
	v, _ := strconv.ParseBool(o.CurrentValue)
	Settings.Search.UseCounterMoves = v
	log.Debugf("Set Use Counter Moves to %v", Settings.Search.UseCounterMoves)
}

func useNullMove(u *UciHandler, o *uciOption) {
	v, _ := strconv.ParseBool(o.CurrentValue)
	Settings.Search.UseNullMove = v
	log.Debugf("Set Use Null Move Pruning to %v", Settings.Search.UseNullMove)
}

func useIID(u *UciHandler, o *uciOption) {
	v, _ := strconv.ParseBool(o.CurrentValue)
	Settings.Search.UseIID = v
	log.Debugf("Set Use IID to %v", Settings.Search.UseIID)
}

func useLmr(u *UciHandler, o *uciOption) {
	v, _ := strconv.ParseBool(o.CurrentValue)
	Settings.Search.UseLmr = v
	log.Debugf("Set use Late Move Reduction to %v", Settings.Search.UseLmr)
}

func useLmp(u *UciHandler, o *uciOption) {
	v, _ := strconv.ParseBool(o.CurrentValue)
	Settings.Search.UseLmp = v
	log.Debugf("Set use Late Move Pruning to %v", Settings.Search.UseLmp)
}

func useSee(u *UciHandler, o *uciOption) {
	v, _ := strconv.ParseBool(o.CurrentValue)
	Settings.Search.UseSEE = v
	log.Debugf("Set use SEE to %v", Settings.Search.UseSEE)
}

func useExt(u *UciHandler, o *uciOption) {
	v, _ := strconv.ParseBool(o.CurrentValue)
	Settings.Search.UseExt = v
	log.Debugf("Set use Extensions to %v", Settings.Search.UseExt)
}

func useExtAddDepth(u *UciHandler, o *uciOption) {
	v, _ := strconv.ParseBool(o.CurrentValue)
	Settings.Search.UseExtAddDepth = v
	log.Debugf("Set use Extensions Add to Depth to %v", Settings.Search.UseExtAddDepth)
}

func useCheckExt(u *UciHandler, o *uciOption) {
	v, _ := strconv.ParseBool(o.CurrentValue)
	Settings.Search.UseCheckExt = v
	log.Debugf("Set use Check Extension to %v", Settings.Search.UseCheckExt)
}

func useThreatExt(u *UciHandler, o *uciOption) {
	v, _ := strconv.ParseBool(o.CurrentValue)
	Settings.Search.UseThreatExt = v
	log.Debugf("Set use Threat Extension to %v", Settings.Search.UseThreatExt)
}

func useRfp(u *UciHandler, o *uciOption) {
	v, _ := strconv.ParseBool(o.CurrentValue)
	Settings.Search.UseRFP = v
	log.Debugf("Set use Reverse Futility Pruning (RFP) to %v", Settings.Search.UseRFP)
}

func useFp(u *UciHandler, o *uciOption) {
	v, _ := strconv.ParseBool(o.CurrentValue)
	Settings.Search.UseFP = v
	log.Debugf("Set use Futility Pruning (FP) to %v", Settings.Search.UseFP)
}

func evalLazy(u *UciHandler, o *uciOption) {
	v, _ := strconv.ParseBool(o.CurrentValue)
	Settings.Eval.UseLazyEval = v
	log.Debugf("Set use Lazy Eval to %v", Settings.Eval.UseLazyEval)
}

func evalMob(u *UciHandler, o *uciOption) {
	v, _ := strconv.ParseBool(o.CurrentValue)
	Settings.Eval.UseMobility = v
	log.Debugf("Set use Eval Mobility to %v", Settings.Eval.UseMobility)
}

func evalAdv(u *UciHandler, o *uciOption) {
	v, _ := strconv.ParseBool(o.CurrentValue)
	Settings.Eval.UseAdvancedPieceEval = v
	log.Debugf("Set use Adv Piece Eval to %v", Settings.Eval.UseAdvancedPieceEval)
}

// parseSpinValue parses o.CurrentValue as an int bounded by the option's own
// MinValue/MaxValue. setOptionCommand writes CurrentValue before the handler
// runs, so on a malformed or out-of-range value this reverts CurrentValue to
// fallback and returns fallback - the bad setoption is rejected rather than
// silently clamped or left applied.
func parseSpinValue(o *uciOption, fallback int) int {
	v, err := strconv.Atoi(o.CurrentValue)
	if err != nil {
		log.Warningf("Option %s: value %q is not an integer, keeping %d", o.NameID, o.CurrentValue, fallback)
		o.CurrentValue = strconv.Itoa(fallback)
		return fallback
	}
	min, minErr := strconv.Atoi(o.MinValue)
	max, maxErr := strconv.Atoi(o.MaxValue)
	if minErr == nil && maxErr == nil && (v < min || v > max) {
		log.Warningf("Option %s: value %d outside [%d, %d], keeping %d", o.NameID, v, min, max, fallback)
		o.CurrentValue = strconv.Itoa(fallback)
		return fallback
	}
	return v
}

func pawnValue(u *UciHandler, o *uciOption) {
	v := parseSpinValue(o, int(Pawn.ValueOf()))
	SetPieceValue(Pawn, Value(v))
	log.Debugf("Set Pawn value to %d", v)
}

func knightValue(u *UciHandler, o *uciOption) {
	v := parseSpinValue(o, int(Knight.ValueOf()))
	SetPieceValue(Knight, Value(v))
	log.Debugf("Set Knight value to %d", v)
}

func bishopValue(u *UciHandler, o *uciOption) {
	v := parseSpinValue(o, int(Bishop.ValueOf()))
	SetPieceValue(Bishop, Value(v))
	log.Debugf("Set Bishop value to %d", v)
}

func rookValue(u *UciHandler, o *uciOption) {
	v := parseSpinValue(o, int(Rook.ValueOf()))
	SetPieceValue(Rook, Value(v))
	log.Debugf("Set Rook value to %d", v)
}

func queenValue(u *UciHandler, o *uciOption) {
	v := parseSpinValue(o, int(Queen.ValueOf()))
	SetPieceValue(Queen, Value(v))
	log.Debugf("Set Queen value to %d", v)
}

func kingValue(u *UciHandler, o *uciOption) {
	v := parseSpinValue(o, int(King.ValueOf()))
	SetPieceValue(King, Value(v))
	log.Debugf("Set King value to %d", v)
}

func mateScoreOption(u *UciHandler, o *uciOption) {
	v := parseSpinValue(o, int(MateScoreValue()))
	SetMateScore(Value(v))
	log.Debugf("Set MateScore to %d", v)
}

func kingShieldBonus(u *UciHandler, o *uciOption) {
	v := parseSpinValue(o, int(Settings.Eval.KingShieldBonus))
	Settings.Eval.KingShieldBonus = int16(v)
	log.Debugf("Set KingShieldBonus to %d", v)
}

func restrictKingBonus(u *UciHandler, o *uciOption) {
	v := parseSpinValue(o, int(Settings.Eval.RestrictKingBonus))
	Settings.Eval.RestrictKingBonus = int16(v)
	log.Debugf("Set RestrictKingBonus to %d", v)
}

func airyKingPenalty(u *UciHandler, o *uciOption) {
	v := parseSpinValue(o, int(Settings.Eval.AiryKingPenalty))
	Settings.Eval.AiryKingPenalty = int16(v)
	log.Debugf("Set AiryKingPenalty to %d", v)
}

func checkedPenalty(u *UciHandler, o *uciOption) {
	v := parseSpinValue(o, int(Settings.Eval.CheckedPenalty))
	Settings.Eval.CheckedPenalty = int16(v)
	log.Debugf("Set CheckedPenalty to %d", v)
}

func checkingBonus(u *UciHandler, o *uciOption) {
	v := parseSpinValue(o, int(Settings.Eval.CheckingBonus))
	Settings.Eval.CheckingBonus = int16(v)
	log.Debugf("Set CheckingBonus to %d", v)
}

func bishopPairBonus(u *UciHandler, o *uciOption) {
	v := parseSpinValue(o, int(Settings.Eval.BishopPairBonus))
	Settings.Eval.BishopPairBonus = int16(v)
	log.Debugf("Set BishopPairBonus to %d", v)
}

func rookOpenFileBonus(u *UciHandler, o *uciOption) {
	v := parseSpinValue(o, int(Settings.Eval.RookOnOpenFileBonus))
	Settings.Eval.RookOnOpenFileBonus = int16(v)
	log.Debugf("Set RookOpenFileBonus to %d", v)
}

func passedPawnBonus(u *UciHandler, o *uciOption) {
	v := parseSpinValue(o, int(Settings.Eval.PawnPassedMidBonus))
	Settings.Eval.PawnPassedMidBonus = int16(v)
	Settings.Eval.PawnPassedEndBonus = int16(v) * 2
	log.Debugf("Set PassedPawnBonus to %d", v)
}

func supportedPawnBonus(u *UciHandler, o *uciOption) {
	v := parseSpinValue(o, int(Settings.Eval.PawnSupportedMidBonus))
	Settings.Eval.PawnSupportedMidBonus = int16(v)
	Settings.Eval.PawnSupportedEndBonus = int16(v)
	log.Debugf("Set SupportedPawnBonus to %d", v)
}

func supportingPawnBonus(u *UciHandler, o *uciOption) {
	v := parseSpinValue(o, int(Settings.Eval.SupportingPawnBonus))
	Settings.Eval.SupportingPawnBonus = int16(v)
	log.Debugf("Set SupportingPawnBonus to %d", v)
}

func supportingPieceBonus(u *UciHandler, o *uciOption) {
	v := parseSpinValue(o, int(Settings.Eval.SupportingPieceBonus))
	Settings.Eval.SupportingPieceBonus = int16(v)
	log.Debugf("Set SupportingPieceBonus to %d", v)
}

func doubledPawnPenalty(u *UciHandler, o *uciOption) {
	v := parseSpinValue(o, int(-Settings.Eval.PawnDoubledMidMalus))
	Settings.Eval.PawnDoubledMidMalus = -int16(v)
	Settings.Eval.PawnDoubledEndMalus = -int16(v) * 3
	log.Debugf("Set DoubledPawnPenalty to %d", v)
}

func isolatedPawnPenalty(u *UciHandler, o *uciOption) {
	v := parseSpinValue(o, int(-Settings.Eval.PawnIsolatedMidMalus))
	Settings.Eval.PawnIsolatedMidMalus = -int16(v)
	Settings.Eval.PawnIsolatedEndMalus = -int16(v) * 2
	log.Debugf("Set IsolatedPawnPenalty to %d", v)
}
