package presentation

import (
	"strings"
	"sync"
	"unicode"

	"golang.org/x/text/unicode/norm"
	"golang.org/x/text/unicode/runenames"
)

// Positional forms of a letter.
const (
	formIsol = iota
	formFina
	formInit
	formMedi
	formCount
)

type presentationForms [formCount]rune

const lam = 'ل'

var (
	presentationFormsOnce sync.Once
	presentationByBase    map[rune]presentationForms
	lamAlefByAlef         map[rune]presentationForms // only isol and fina are set
)

func loadPresentationForms() {
	presentationFormsOnce.Do(func() {
		presentationByBase, lamAlefByAlef = buildPresentationFormMaps()
		tracer().Debugf("derived presentation forms for %d letters and %d LAM-ALEF ligatures",
			len(presentationByBase), len(lamAlefByAlef))
	})
}

func buildPresentationFormMaps() (map[rune]presentationForms, map[rune]presentationForms) {
	byBase := make(map[rune]presentationForms, 256)
	lamAlef := make(map[rune]presentationForms, 4)
	addRange := func(from, to rune) {
		for u := from; u <= to; u++ {
			name := runenames.Name(u)
			if name == "" || !strings.Contains(name, "ARABIC") {
				continue
			}
			form, ok := presentationFormFromName(name)
			if !ok {
				continue
			}
			decomp := []rune(norm.NFKC.String(string(u)))
			if strings.Contains(name, "LIGATURE") {
				if isLamAlefLigature(u) && len(decomp) == 2 && decomp[0] == lam {
					forms := lamAlef[decomp[1]]
					forms[form] = u
					lamAlef[decomp[1]] = forms
				}
				continue
			}
			if len(decomp) != 1 || !unicode.IsLetter(decomp[0]) {
				continue
			}
			forms := byBase[decomp[0]]
			forms[form] = u
			byBase[decomp[0]] = forms
		}
	}
	addRange(0xFB50, 0xFDFF) // Arabic Presentation Forms-A
	addRange(0xFE70, 0xFEFF) // Arabic Presentation Forms-B, takes precedence
	return byBase, lamAlef
}

// FEF5..FEFC are the mandatory LAM-ALEF ligatures. Other LAM ligatures of
// Presentation Forms-A are optional and not applied.
func isLamAlefLigature(u rune) bool {
	return u >= 0xFEF5 && u <= 0xFEFC
}

func presentationFormFromName(name string) (int, bool) {
	switch {
	case strings.HasSuffix(name, "ISOLATED FORM"):
		return formIsol, true
	case strings.HasSuffix(name, "FINAL FORM"):
		return formFina, true
	case strings.HasSuffix(name, "INITIAL FORM"):
		return formInit, true
	case strings.HasSuffix(name, "MEDIAL FORM"):
		return formMedi, true
	}
	return 0, false
}

// formOf returns the presentation form of a letter, falling back to the
// isolated form and finally to the letter itself.
func formOf(r rune, form int) rune {
	forms, ok := presentationByBase[r]
	if !ok {
		return r
	}
	if forms[form] != 0 {
		return forms[form]
	}
	if forms[formIsol] != 0 {
		return forms[formIsol]
	}
	return r
}

// lamAlefLigature returns the ligature for LAM followed by alef, if any.
// joined tells if the LAM is connected to its predecessor.
func lamAlefLigature(alef rune, joined bool) (rune, bool) {
	forms, ok := lamAlefByAlef[alef]
	if !ok {
		return 0, false
	}
	if joined && forms[formFina] != 0 {
		return forms[formFina], true
	}
	return forms[formIsol], forms[formIsol] != 0
}
