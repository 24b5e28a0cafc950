package presentation

import (
	"unicode"

	"github.com/npillmayer/arabtext"
)

// joiningType represents the Arabic joining behaviour of a character.
type joiningType uint8

const (
	joiningTypeU joiningType = iota // non-joining
	joiningTypeR                    // right-joining only
	joiningTypeD                    // dual-joining
	joiningTypeC                    // join-causing, e.g. TATWEEL or ZWJ
	joiningTypeT                    // transparent, e.g. combining marks
)

const (
	tatweel = '\u0640'
	zwnj    = '\u200C'
	zwj     = '\u200D'
)

// joiningTypeOf derives the joining type of a character from the presentation
// forms available for it: letters having initial or medial forms join on both
// sides, letters with a final form only join to the right.
func joiningTypeOf(r rune) joiningType {
	switch {
	case r == tatweel || r == zwj:
		return joiningTypeC
	case r == zwnj:
		return joiningTypeU
	case unicode.In(r, unicode.Mn, unicode.Me, unicode.Cf):
		return joiningTypeT
	}
	forms, ok := presentationByBase[r]
	if !ok {
		return joiningTypeU
	}
	if forms[formInit] != 0 || forms[formMedi] != 0 {
		return joiningTypeD
	}
	if forms[formFina] != 0 {
		return joiningTypeR
	}
	return joiningTypeU
}

// joinsLeft is true for characters which connect to the following character.
func (jt joiningType) joinsLeft() bool {
	return jt == joiningTypeD || jt == joiningTypeC
}

// joinsRight is true for characters which connect to the preceding character.
func (jt joiningType) joinsRight() bool {
	return jt == joiningTypeR || jt == joiningTypeD || jt == joiningTypeC
}

func isDiacritic(r rune) bool {
	return unicode.Is(unicode.Mn, r) && arabtext.DefaultScriptRanges().Contains(r)
}

// applyJoining replaces letters of in (logical order) by their positional
// presentation forms and appends the result to out.
// types is scratch space.
func applyJoining(in []rune, out []rune, types []joiningType) ([]rune, []joiningType) {
	types = types[:0]
	for _, r := range in {
		types = append(types, joiningTypeOf(r))
	}
	prev := func(i int) int { // previous non-transparent character
		for j := i - 1; j >= 0; j-- {
			if types[j] != joiningTypeT {
				return j
			}
		}
		return -1
	}
	next := func(i int) int { // next non-transparent character
		for j := i + 1; j < len(in); j++ {
			if types[j] != joiningTypeT {
				return j
			}
		}
		return -1
	}
	for i := 0; i < len(in); i++ {
		r, jt := in[i], types[i]
		if jt != joiningTypeR && jt != joiningTypeD {
			out = append(out, r)
			continue
		}
		p, q := prev(i), next(i)
		joined := p >= 0 && types[p].joinsLeft()
		if r == lam && q >= 0 {
			if lig, ok := lamAlefLigature(in[q], joined); ok {
				out = append(out, lig)
				out = append(out, in[i+1:q]...) // marks between LAM and ALEF
				i = q
				continue
			}
		}
		joining := jt == joiningTypeD && q >= 0 && types[q].joinsRight()
		form := formIsol
		switch {
		case joined && joining:
			form = formMedi
		case joined:
			form = formFina
		case joining:
			form = formInit
		}
		out = append(out, formOf(r, form))
	}
	return out, types
}

// nativeDigit maps ASCII digits to Arabic-Indic digits.
func nativeDigit(r rune) rune {
	if r >= '0' && r <= '9' {
		return '٠' + (r - '0')
	}
	return r
}
