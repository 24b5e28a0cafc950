package presentation

import (
	"golang.org/x/text/unicode/bidi"
)

// direction is the resolved direction of a character within a right-to-left
// paragraph.
type direction uint8

const (
	dirNeutral direction = iota
	dirRTL
	dirLTR
	dirNumber
)

// cluster is a base character together with its trailing combining marks.
type cluster struct {
	from, to int // rune positions [from, to)
	dir      direction
}

func (c cluster) level() int {
	if c.dir == dirRTL {
		return 1
	}
	return 2
}

func classOf(r rune) bidi.Class {
	p, _ := bidi.LookupRune(r)
	return p.Class()
}

// resolveDirections implements a reduced version of the bidi weak- and
// neutral-type rules for a paragraph of embedding level 1. Explicit
// embeddings and isolates are ignored.
func resolveDirections(line []rune) []direction {
	dirs := make([]direction, len(line))
	classes := make([]bidi.Class, len(line))
	lastStrong := bidi.R
	for i, r := range line {
		cls := classOf(r)
		classes[i] = cls
		switch cls {
		case bidi.L:
			dirs[i], lastStrong = dirLTR, bidi.L
		case bidi.R, bidi.AL:
			dirs[i], lastStrong = dirRTL, bidi.R
		case bidi.EN:
			if lastStrong == bidi.L {
				dirs[i] = dirLTR
			} else {
				dirs[i] = dirNumber
			}
		case bidi.AN:
			dirs[i] = dirNumber
		case bidi.NSM:
			if i > 0 {
				dirs[i] = dirs[i-1]
			}
		}
	}
	// single separators between numbers belong to the number
	for i := 1; i+1 < len(line); i++ {
		if classes[i] != bidi.ES && classes[i] != bidi.CS {
			continue
		}
		if dirs[i-1] == dirs[i+1] && (dirs[i-1] == dirNumber || dirs[i-1] == dirLTR && classes[i-1] == bidi.EN) {
			dirs[i] = dirs[i-1]
		}
	}
	// neutrals take the direction of surrounding strong text if both sides
	// agree, and the paragraph direction otherwise
	strongAt := func(i int) direction {
		if i < 0 || i >= len(dirs) {
			return dirRTL
		}
		if dirs[i] == dirNumber {
			return dirRTL
		}
		return dirs[i]
	}
	for i := 0; i < len(dirs); {
		if dirs[i] != dirNeutral {
			i++
			continue
		}
		j := i
		for j < len(dirs) && dirs[j] == dirNeutral {
			j++
		}
		d := dirRTL
		if strongAt(i-1) == dirLTR && strongAt(j) == dirLTR {
			d = dirLTR
		}
		for k := i; k < j; k++ {
			dirs[k] = d
		}
		i = j
	}
	return dirs
}

// visualOrder re-orders a single line of shaped text from logical order to
// left-to-right display order. Combining marks stay behind their base
// character.
func visualOrder(line []rune, out []rune) []rune {
	if len(line) == 0 {
		return out
	}
	dirs := resolveDirections(line)
	clusters := make([]cluster, 0, len(line))
	for i := range line {
		if i > 0 && len(clusters) > 0 && classOf(line[i]) == bidi.NSM {
			clusters[len(clusters)-1].to = i + 1
			continue
		}
		clusters = append(clusters, cluster{from: i, to: i + 1, dir: dirs[i]})
	}
	// reverse runs of level 2, then the whole line
	for i := 0; i < len(clusters); {
		if clusters[i].level() < 2 {
			i++
			continue
		}
		j := i
		for j < len(clusters) && clusters[j].level() >= 2 {
			j++
		}
		reverseClusters(clusters[i:j])
		i = j
	}
	reverseClusters(clusters)
	for _, c := range clusters {
		base := line[c.from]
		if c.dir == dirRTL {
			base = mirrored(base)
		}
		out = append(out, base)
		out = append(out, line[c.from+1:c.to]...)
	}
	return out
}

func reverseClusters(c []cluster) {
	for i, j := 0, len(c)-1; i < j; i, j = i+1, j-1 {
		c[i], c[j] = c[j], c[i]
	}
}

var mirrorPairs = map[rune]rune{
	'(': ')', ')': '(',
	'[': ']', ']': '[',
	'{': '}', '}': '{',
	'<': '>', '>': '<',
	'«': '»', '»': '«',
	'‹': '›', '›': '‹',
}

func mirrored(r rune) rune {
	if m, ok := mirrorPairs[r]; ok {
		return m
	}
	return r
}
