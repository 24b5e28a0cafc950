package ucdparse

import (
	"strings"
	"testing"
)

func TestParseLine(t *testing.T) {
	input := strings.NewReader("000E..001F;CM     # Cc    [18] <control-000E>..<control-001F>")
	sc, err := New(input)
	if err != nil {
		t.Fatal(err)
	}
	if !sc.Next() {
		t.Logf("token = %v", sc.Token)
		t.Fatal(sc.LastError)
	}
	t.Logf("token = %v", sc.Token)
	if sc.Token.Field(1) != "CM" {
		t.Errorf("expected field #1 to be 'CM', is %q", sc.Token.Field(1))
	}
	from, to := sc.Token.Range()
	if from != 0x0e || to != 0x1f {
		t.Errorf("expected range to be 0E..1F, is %02X..%02X", from, to)
	}
	if sc.Token.Comment != "Cc    [18] <control-000E>..<control-001F>" {
		t.Errorf("unexpected comment %q", sc.Token.Comment)
	}
}

func TestParseBlocks(t *testing.T) {
	input := strings.NewReader(`# Blocks-15.0.0.txt

0600..06FF; Arabic
0621;AL;Arabic Letter Hamza

# EOF
`)
	var tokens []*Token
	if err := Parse(input, func(token *Token) {
		tokens = append(tokens, token)
	}); err != nil {
		t.Fatal(err)
	}
	if len(tokens) != 2 {
		t.Fatalf("expected 2 data items, have %d", len(tokens))
	}
	if tokens[0].TokenType != RangeDataItem || tokens[0].Field(1) != "Arabic" {
		t.Errorf("expected range item 'Arabic', is %v", tokens[0])
	}
	if tokens[1].TokenType != SingleDataItem || tokens[1].Field(2) != "Arabic Letter Hamza" {
		t.Errorf("expected single item with 2 fields, is %v", tokens[1])
	}
	if tokens[1].LineNo != 4 {
		t.Errorf("expected single item on line 4, is on %d", tokens[1].LineNo)
	}
}

func TestParseError(t *testing.T) {
	err := Parse(strings.NewReader("06ZZ..06FF; Broken"), func(*Token) {})
	if err == nil {
		t.Errorf("expected hex decoding error, have none")
	}
	err = Parse(strings.NewReader("06FF..0600; Reversed"), func(*Token) {})
	if err == nil {
		t.Errorf("expected error for reversed range, have none")
	}
}

func TestCollectRanges(t *testing.T) {
	rc := &RangeCollector{}
	rc.Append(0xFE70, 0xFEFF)
	rc.Append(0x0600, 0x06FF)
	rc.Append(0x0650, 0x0700) // overlaps
	rc.Append(0x0701, 0x0710) // adjacent
	rc.Append(0x08A0, 0x08A0)
	ranges := rc.Ranges()
	expected := [][2]rune{{0x0600, 0x0710}, {0x08A0, 0x08A0}, {0xFE70, 0xFEFF}}
	if len(ranges) != len(expected) {
		t.Fatalf("expected %d ranges, have %d: %v", len(expected), len(ranges), ranges)
	}
	for i, r := range expected {
		if ranges[i] != r {
			t.Errorf("expected range #%d to be %04X..%04X, is %04X..%04X", i, r[0], r[1],
				ranges[i][0], ranges[i][1])
		}
	}
}
