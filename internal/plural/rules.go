package plural

import "math"

func fmod(n, d float64) float64 {
	return math.Mod(n, d)
}

func inRange(n, lo, hi float64) bool {
	return n >= lo && n <= hi
}

func inRangeInt(n, lo, hi int64) bool {
	return n >= lo && n <= hi
}

// ruleNone is used by languages without grammatical number.
func ruleNone(Operands) Category {
	return Other
}

// ruleOneExact: one when n is exactly 1.
func ruleOneExact(o Operands) Category {
	if o.N == 1 {
		return One
	}
	return Other
}

// ruleOneInteger: one for the integer 1 without visible fraction digits.
func ruleOneInteger(o Operands) Category {
	if o.I == 1 && o.V == 0 {
		return One
	}
	return Other
}

func ruleZeroOrOne(o Operands) Category {
	if o.I == 0 || o.I == 1 {
		return One
	}
	return Other
}

func ruleZeroOrOneN(o Operands) Category {
	if inRange(o.N, 0, 1) {
		return One
	}
	return Other
}

func ruleHindi(o Operands) Category {
	if o.I == 0 || o.N == 1 {
		return One
	}
	return Other
}

func rulePortuguese(o Operands) Category {
	if inRange(o.N, 0, 2) && o.N != 2 {
		return One
	}
	return Other
}

func rulePortugal(o Operands) Category {
	if o.N == 1 && o.V == 0 {
		return One
	}
	return Other
}

func ruleDanish(o Operands) Category {
	if o.N == 1 || o.T != 0 && (o.I == 0 || o.I == 1) {
		return One
	}
	return Other
}

func ruleIcelandic(o Operands) Category {
	if o.T == 0 && o.I%10 == 1 && o.I%100 != 11 || o.T != 0 {
		return One
	}
	return Other
}

func ruleSinhala(o Operands) Category {
	if o.N == 0 || o.N == 1 || o.I == 0 && o.F == 1 {
		return One
	}
	return Other
}

func ruleFilipino(o Operands) Category {
	iMod10, fMod10 := o.I%10, o.F%10
	if o.V == 0 && (o.I == 1 || o.I == 2 || o.I == 3) ||
		o.V == 0 && iMod10 != 4 && iMod10 != 6 && iMod10 != 9 ||
		o.V != 0 && fMod10 != 4 && fMod10 != 6 && fMod10 != 9 {
		return One
	}
	return Other
}

func ruleMacedonian(o Operands) Category {
	if o.V == 0 && o.I%10 == 1 || o.F%10 == 1 {
		return One
	}
	return Other
}

func ruleLatvian(o Operands) Category {
	n10, n100 := fmod(o.N, 10), fmod(o.N, 100)
	if n10 == 0 || inRange(n100, 11, 19) || o.V == 2 && inRangeInt(o.F%100, 11, 19) {
		return Zero
	}
	if n10 == 1 && n100 != 11 || o.V == 2 && o.F%10 == 1 && o.F%100 != 11 || o.V != 2 && o.F%10 == 1 {
		return One
	}
	return Other
}

func ruleLithuanian(o Operands) Category {
	n10, n100 := fmod(o.N, 10), fmod(o.N, 100)
	if n10 == 1 && !inRange(n100, 11, 19) {
		return One
	}
	if inRange(n10, 2, 9) && !inRange(n100, 11, 19) {
		return Few
	}
	if o.F != 0 {
		return Many
	}
	return Other
}

func ruleRomanian(o Operands) Category {
	if o.I == 1 && o.V == 0 {
		return One
	}
	if o.V != 0 || o.N == 0 || o.N != 1 && inRange(fmod(o.N, 100), 1, 19) {
		return Few
	}
	return Other
}

func ruleCzech(o Operands) Category {
	if o.I == 1 && o.V == 0 {
		return One
	}
	if inRangeInt(o.I, 2, 4) && o.V == 0 {
		return Few
	}
	if o.V != 0 {
		return Many
	}
	return Other
}

// ruleEastSlavic covers Russian and Ukrainian.
func ruleEastSlavic(o Operands) Category {
	i10, i100 := o.I%10, o.I%100
	if o.V == 0 && i10 == 1 && i100 != 11 {
		return One
	}
	if o.V == 0 && inRangeInt(i10, 2, 4) && !inRangeInt(i100, 12, 14) {
		return Few
	}
	if o.V == 0 && i10 == 0 || o.V == 0 && inRangeInt(i10, 5, 9) || o.V == 0 && inRangeInt(i100, 11, 14) {
		return Many
	}
	return Other
}

func ruleBelarusian(o Operands) Category {
	n10, n100 := fmod(o.N, 10), fmod(o.N, 100)
	if n10 == 1 && n100 != 11 {
		return One
	}
	if inRange(n10, 2, 4) && !inRange(n100, 12, 14) {
		return Few
	}
	if n10 == 0 || inRange(n10, 5, 9) || inRange(n100, 11, 14) {
		return Many
	}
	return Other
}

func rulePolish(o Operands) Category {
	i10, i100 := o.I%10, o.I%100
	if o.I == 1 && o.V == 0 {
		return One
	}
	if o.V == 0 && inRangeInt(i10, 2, 4) && !inRangeInt(i100, 12, 14) {
		return Few
	}
	if o.V == 0 && o.I != 1 && inRangeInt(i10, 0, 1) ||
		o.V == 0 && inRangeInt(i10, 5, 9) ||
		o.V == 0 && inRangeInt(i100, 12, 14) {
		return Many
	}
	return Other
}

// ruleSerboCroatian covers Serbian, Croatian and Bosnian.
func ruleSerboCroatian(o Operands) Category {
	i10, i100 := o.I%10, o.I%100
	f10, f100 := o.F%10, o.F%100
	if o.V == 0 && i10 == 1 && i100 != 11 || f10 == 1 && f100 != 11 {
		return One
	}
	if o.V == 0 && inRangeInt(i10, 2, 4) && !inRangeInt(i100, 12, 14) ||
		inRangeInt(f10, 2, 4) && !inRangeInt(f100, 12, 14) {
		return Few
	}
	return Other
}

func ruleSlovenian(o Operands) Category {
	i100 := o.I % 100
	if o.V == 0 && i100 == 1 {
		return One
	}
	if o.V == 0 && i100 == 2 {
		return Two
	}
	if o.V == 0 && inRangeInt(i100, 3, 4) || o.V != 0 {
		return Few
	}
	return Other
}

func ruleHebrew(o Operands) Category {
	if o.I == 1 && o.V == 0 {
		return One
	}
	if o.I == 2 && o.V == 0 {
		return Two
	}
	if o.V == 0 && (o.N < 0 || o.N > 10) && fmod(o.N, 10) == 0 {
		return Many
	}
	return Other
}

func ruleArabic(o Operands) Category {
	n100 := fmod(o.N, 100)
	switch {
	case o.N == 0:
		return Zero
	case o.N == 1:
		return One
	case o.N == 2:
		return Two
	case inRange(n100, 3, 10):
		return Few
	case inRange(n100, 11, 99):
		return Many
	}
	return Other
}

func ruleWelsh(o Operands) Category {
	switch o.N {
	case 0:
		return Zero
	case 1:
		return One
	case 2:
		return Two
	case 3:
		return Few
	case 6:
		return Many
	}
	return Other
}

func ruleIrish(o Operands) Category {
	switch {
	case o.N == 1:
		return One
	case o.N == 2:
		return Two
	case inRange(o.N, 3, 6):
		return Few
	case inRange(o.N, 7, 10):
		return Many
	}
	return Other
}

func ruleMaltese(o Operands) Category {
	n100 := fmod(o.N, 100)
	if o.N == 1 {
		return One
	}
	if o.N == 0 || inRange(n100, 2, 10) {
		return Few
	}
	if inRange(n100, 11, 19) {
		return Many
	}
	return Other
}

func ruleBreton(o Operands) Category {
	n10, n100 := fmod(o.N, 10), fmod(o.N, 100)
	if n10 == 1 && n100 != 11 && n100 != 71 && n100 != 91 {
		return One
	}
	if n10 == 2 && n100 != 12 && n100 != 72 && n100 != 92 {
		return Two
	}
	if (inRange(n10, 3, 4) || n10 == 9) &&
		!inRange(n100, 10, 19) && !inRange(n100, 70, 79) && !inRange(n100, 90, 99) {
		return Few
	}
	if o.N != 0 && fmod(o.N, 1000000) == 0 {
		return Many
	}
	return Other
}

var rules = map[string]Rule{
	"af":      ruleOneExact,
	"am":      ruleHindi,
	"ar":      ruleArabic,
	"az":      ruleOneExact,
	"be":      ruleBelarusian,
	"bg":      ruleOneExact,
	"bn":      ruleHindi,
	"br":      ruleBreton,
	"bs":      ruleSerboCroatian,
	"ca":      ruleOneInteger,
	"chr":     ruleOneExact,
	"cs":      ruleCzech,
	"cy":      ruleWelsh,
	"da":      ruleDanish,
	"de":      ruleOneInteger,
	"de-AT":   ruleOneInteger,
	"de-CH":   ruleOneInteger,
	"el":      ruleOneExact,
	"en":      ruleOneInteger,
	"en-AU":   ruleOneInteger,
	"en-CA":   ruleOneInteger,
	"en-GB":   ruleOneInteger,
	"en-IE":   ruleOneInteger,
	"en-IN":   ruleOneInteger,
	"en-SG":   ruleOneInteger,
	"en-US":   ruleOneInteger,
	"en-ZA":   ruleOneInteger,
	"es":      ruleOneExact,
	"es-419":  ruleOneExact,
	"es-ES":   ruleOneExact,
	"es-MX":   ruleOneExact,
	"es-US":   ruleOneExact,
	"et":      ruleOneInteger,
	"eu":      ruleOneExact,
	"fa":      ruleHindi,
	"fi":      ruleOneInteger,
	"fil":     ruleFilipino,
	"fr":      ruleZeroOrOne,
	"fr-CA":   ruleZeroOrOne,
	"ga":      ruleIrish,
	"gl":      ruleOneInteger,
	"gsw":     ruleOneExact,
	"gu":      ruleHindi,
	"haw":     ruleOneExact,
	"he":      ruleHebrew,
	"hi":      ruleHindi,
	"hr":      ruleSerboCroatian,
	"hu":      ruleOneExact,
	"hy":      ruleZeroOrOne,
	"id":      ruleNone,
	"in":      ruleNone,
	"is":      ruleIcelandic,
	"it":      ruleOneInteger,
	"iw":      ruleHebrew,
	"ja":      ruleNone,
	"ka":      ruleOneExact,
	"kk":      ruleOneExact,
	"km":      ruleNone,
	"kn":      ruleHindi,
	"ko":      ruleNone,
	"ky":      ruleOneExact,
	"ln":      ruleZeroOrOneN,
	"lo":      ruleNone,
	"lt":      ruleLithuanian,
	"lv":      ruleLatvian,
	"mk":      ruleMacedonian,
	"ml":      ruleOneExact,
	"mn":      ruleOneExact,
	"mo":      ruleRomanian,
	"mr":      ruleHindi,
	"ms":      ruleNone,
	"mt":      ruleMaltese,
	"my":      ruleNone,
	"nb":      ruleOneExact,
	"ne":      ruleOneExact,
	"nl":      ruleOneInteger,
	"no":      ruleOneExact,
	"no-NO":   ruleOneExact,
	"or":      ruleOneExact,
	"pa":      ruleZeroOrOneN,
	"pl":      rulePolish,
	"pt":      rulePortuguese,
	"pt-BR":   rulePortuguese,
	"pt-PT":   rulePortugal,
	"ro":      ruleRomanian,
	"ru":      ruleEastSlavic,
	"sh":      ruleSerboCroatian,
	"si":      ruleSinhala,
	"sk":      ruleCzech,
	"sl":      ruleSlovenian,
	"sq":      ruleOneExact,
	"sr":      ruleSerboCroatian,
	"sr-Latn": ruleSerboCroatian,
	"sv":      ruleOneInteger,
	"sw":      ruleOneInteger,
	"ta":      ruleOneExact,
	"te":      ruleOneExact,
	"th":      ruleNone,
	"tl":      ruleFilipino,
	"tr":      ruleOneExact,
	"uk":      ruleEastSlavic,
	"ur":      ruleOneInteger,
	"uz":      ruleOneExact,
	"vi":      ruleNone,
	"zh":      ruleNone,
	"zh-CN":   ruleNone,
	"zh-HK":   ruleNone,
	"zh-TW":   ruleNone,
	"zu":      ruleHindi,
}
