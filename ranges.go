package arabtext

import (
	"fmt"
	"strings"
	"sync"
	"unicode"

	"github.com/npillmayer/arabtext/internal/ucddata"
	"github.com/npillmayer/arabtext/internal/ucdparse"
	"golang.org/x/text/unicode/rangetable"
)

// Range is an inclusive interval of Unicode code-points.
type Range struct {
	Lo, Hi rune
}

// Contains returns true if r is within the interval.
func (rng Range) Contains(r rune) bool {
	return r >= rng.Lo && r <= rng.Hi
}

func (rng Range) String() string {
	return fmt.Sprintf("%04X..%04X", rng.Lo, rng.Hi)
}

// ScriptRanges is an ordered set of code-point intervals, which together
// define the target script. Intervals are kept sorted and disjoint.
//
// The zero value is an empty set. ScriptRanges are immutable and may be
// copied freely.
type ScriptRanges struct {
	ranges []Range
	table  *unicode.RangeTable
}

// NewScriptRanges creates a set of script ranges from a list of intervals.
// Intervals may overlap and may be given in any order. Bounds are clamped to
// 0..unicode.MaxRune; intervals lying completely outside are dropped.
func NewScriptRanges(rngs ...Range) ScriptRanges {
	rc := &ucdparse.RangeCollector{}
	for _, rng := range rngs {
		lo, hi := rng.Lo, rng.Hi
		if lo > hi {
			lo, hi = hi, lo
		}
		if hi < 0 || lo > unicode.MaxRune {
			continue
		}
		if lo < 0 {
			lo = 0
		}
		if hi > unicode.MaxRune {
			hi = unicode.MaxRune
		}
		rc.Append(lo, hi)
	}
	sr := ScriptRanges{}
	var tables []*unicode.RangeTable
	for _, r := range rc.Ranges() {
		sr.ranges = append(sr.ranges, Range{Lo: r[0], Hi: r[1]})
		tables = append(tables, intervalTable(r[0], r[1]))
	}
	if len(tables) > 0 {
		sr.table = rangetable.Merge(tables...)
	}
	return sr
}

// intervalTable creates a range table for a single interval of valid
// code-points.
func intervalTable(lo, hi rune) *unicode.RangeTable {
	rt := &unicode.RangeTable{}
	if lo <= 0xFFFF {
		h := hi
		if h > 0xFFFF {
			h = 0xFFFF
		}
		rt.R16 = []unicode.Range16{{Lo: uint16(lo), Hi: uint16(h), Stride: 1}}
		if h <= unicode.MaxLatin1 {
			rt.LatinOffset = 1
		}
	}
	if hi > 0xFFFF {
		l := lo
		if l < 0x10000 {
			l = 0x10000
		}
		rt.R32 = []unicode.Range32{{Lo: uint32(l), Hi: uint32(hi), Stride: 1}}
	}
	return rt
}

// DefaultBlocks are the names of the Unicode blocks which make up the
// default target script.
var DefaultBlocks = []string{
	"Arabic",
	"Arabic Supplement",
	"Arabic Extended-A",
	"Arabic Presentation Forms-A",
	"Arabic Presentation Forms-B",
}

var defaultRanges = sync.OnceValue(func() ScriptRanges {
	return NewScriptRanges(
		Range{0x0600, 0x06FF}, // Arabic
		Range{0x0750, 0x077F}, // Arabic Supplement
		Range{0x08A0, 0x08FF}, // Arabic Extended-A
		Range{0xFB50, 0xFDFF}, // Arabic Presentation Forms-A
		Range{0xFE70, 0xFEFF}, // Arabic Presentation Forms-B
	)
})

// DefaultScriptRanges returns the code-point ranges of DefaultBlocks.
func DefaultScriptRanges() ScriptRanges {
	return defaultRanges()
}

// Contains returns true if r is part of the target script.
func (sr ScriptRanges) Contains(r rune) bool {
	if sr.table == nil {
		return false
	}
	return unicode.Is(sr.table, r)
}

// ContainsAny returns true if at least one code-point of s is part of the
// target script.
func (sr ScriptRanges) ContainsAny(s string) bool {
	if sr.table == nil {
		return false
	}
	for _, r := range s {
		if unicode.Is(sr.table, r) {
			return true
		}
	}
	return false
}

// IsEmpty returns true if the set does not contain any code-point.
func (sr ScriptRanges) IsEmpty() bool {
	return len(sr.ranges) == 0
}

// Ranges returns a copy of the intervals, sorted by lower bound.
func (sr ScriptRanges) Ranges() []Range {
	return append([]Range(nil), sr.ranges...)
}

// RangeTable returns the set as a Unicode range table.
// Returns nil for an empty set.
func (sr ScriptRanges) RangeTable() *unicode.RangeTable {
	return sr.table
}

func (sr ScriptRanges) String() string {
	s := make([]string, len(sr.ranges))
	for i, r := range sr.ranges {
		s[i] = r.String()
	}
	return "[" + strings.Join(s, " ") + "]"
}

// --- Unicode blocks --------------------------------------------------------

var blocks struct {
	once   sync.Once
	ranges map[string]Range
	err    error
}

func loadBlocks() (map[string]Range, error) {
	blocks.once.Do(func() {
		blocks.ranges = make(map[string]Range)
		blocks.err = ucdparse.Parse(ucddata.Blocks(), func(token *ucdparse.Token) {
			from, to := token.Range()
			blocks.ranges[looseName(token.Field(1))] = Range{Lo: from, Hi: to}
		})
		tracer().Debugf("loaded %d block definitions of Unicode %s", len(blocks.ranges), ucddata.UnicodeVersion)
	})
	return blocks.ranges, blocks.err
}

// looseName implements loose matching of block names as recommended by UAX#44:
// case, whitespace, hyphens and underscores are ignored.
func looseName(name string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) || r == '-' || r == '_' {
			return -1
		}
		return unicode.ToLower(r)
	}, name)
}

// BlockRanges returns the script ranges for a list of Unicode block names.
// Block names are matched loosely, i.e. "Arabic Extended-A" and
// "arabic_extended_a" denote the same block. A trailing "Block" is ignored,
// thus "ArabicBlock" is the same as "Arabic".
//
// An unknown block name results in an error.
func BlockRanges(names ...string) (ScriptRanges, error) {
	known, err := loadBlocks()
	if err != nil {
		return ScriptRanges{}, fmt.Errorf("cannot read Unicode blocks: %w", err)
	}
	rngs := make([]Range, 0, len(names))
	for _, name := range names {
		key := looseName(name)
		rng, ok := known[key]
		if !ok {
			rng, ok = known[strings.TrimSuffix(key, "block")]
		}
		if !ok {
			return ScriptRanges{}, fmt.Errorf("unknown Unicode block: %q", name)
		}
		rngs = append(rngs, rng)
	}
	return NewScriptRanges(rngs...), nil
}
