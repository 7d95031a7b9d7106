package manuscript

import (
	"fmt"
	"testing"
)

func TestPlace_ForbiddenAfterNonLineStartGoesToCell(t *testing.T) {
	s := NewState(2, 2)
	s = s.Apply(CommitText{Text: "A"})
	if got := s.CurrentPage().Cells[0]; got != "A" {
		t.Fatalf("cell[0]=%q, want %q", got, "A")
	}
	if got := s.Cursor(); got != 1 {
		t.Fatalf("cursor=%d, want 1", got)
	}

	s = s.Apply(CommitText{Text: "、"})
	if got := s.CurrentPage().Cells[1]; got != "、" {
		t.Fatalf("cell[1]=%q, want %q", got, "、")
	}
	if got := s.Cursor(); got != 2 {
		t.Fatalf("cursor=%d, want 2", got)
	}
}

func TestPlace_ForbiddenAtLineStartGoesToRowAbove(t *testing.T) {
	s := NewState(2, 2).Apply(SetCursor{Offset: 2})
	s = s.Apply(CommitText{Text: "）"})

	p := s.CurrentPage()
	if got := p.Overflow[0]; got != "）" {
		t.Fatalf("overflow[0]=%q, want %q", got, "）")
	}
	if got := p.Cells[2]; got != "" {
		t.Fatalf("cell[2]=%q, want empty", got)
	}
	if got := s.Cursor(); got != 3 {
		t.Fatalf("cursor=%d, want 3", got)
	}
}

func TestPlace_ForbiddenAtRowZeroTargetsOwnSlot(t *testing.T) {
	s := NewState(3, 2).Apply(CommitText{Text: "。"})

	p := s.CurrentPage()
	if got := p.Overflow[0]; got != "。" {
		t.Fatalf("overflow[0]=%q, want %q", got, "。")
	}
	if p.CharCount() != 1 {
		t.Fatalf("char count=%d, want 1", p.CharCount())
	}
	if got := s.Cursor(); got != 1 {
		t.Fatalf("cursor=%d, want 1", got)
	}
}

func TestPlace_ForbiddenNeverOccupiesLineStartCell(t *testing.T) {
	for _, ch := range KinsokuHead {
		for cols := 1; cols <= 4; cols++ {
			for rows := 2; rows <= 4; rows++ {
				for row := 1; row < rows; row++ {
					name := fmt.Sprintf("%s/%dx%d/row%d", ch, cols, rows, row)
					s := NewState(cols, rows).Apply(SetCursor{Offset: row * cols})
					before := s.Cursor()
					s = s.Apply(CommitText{Text: ch})

					p := s.CurrentPage()
					for i, c := range p.Cells {
						if c != "" {
							t.Fatalf("%s: cell[%d]=%q, want all cells empty", name, i, c)
						}
					}
					if got := p.Overflow[row-1]; got != ch {
						t.Fatalf("%s: overflow[%d]=%q, want %q", name, row-1, got, ch)
					}
					want := ClampCursor(before+1, cols*rows)
					if got := s.Cursor(); got != want {
						t.Fatalf("%s: cursor=%d, want %d", name, got, want)
					}
				}
			}
		}
	}
}

func TestPlace_OverflowLastWriteWins(t *testing.T) {
	s := NewState(2, 3).Apply(SetCursor{Offset: 2})
	s = s.Apply(CommitText{Text: "、"})
	s = s.Apply(SetCursor{Offset: 2})
	s = s.Apply(CommitText{Text: "」"})

	if got := s.CurrentPage().Overflow[0]; got != "」" {
		t.Fatalf("overflow[0]=%q, want %q", got, "」")
	}
}

func TestPlace_PinsAtLastCell(t *testing.T) {
	s := NewState(2, 2).Apply(CommitText{Text: "ABCDE"})

	want := []string{"A", "B", "C", "E"}
	if got := s.CurrentPage().Cells; fmt.Sprintf("%q", got) != fmt.Sprintf("%q", want) {
		t.Fatalf("cells=%q, want %q", got, want)
	}
	if got := s.Cursor(); got != 3 {
		t.Fatalf("cursor=%d, want 3", got)
	}
	if got := s.Document().PageCount(); got != 1 {
		t.Fatalf("page count=%d, want 1 (no automatic page)", got)
	}
}

func TestPlace_MultiCharacterAppliesRulePerCharacter(t *testing.T) {
	s := NewState(2, 2).Apply(CommitText{Text: "ab）c"})

	p := s.CurrentPage()
	wantCells := []string{"a", "b", "", "c"}
	if fmt.Sprintf("%q", p.Cells) != fmt.Sprintf("%q", wantCells) {
		t.Fatalf("cells=%q, want %q", p.Cells, wantCells)
	}
	if got := p.Overflow[0]; got != "）" {
		t.Fatalf("overflow[0]=%q, want %q", got, "）")
	}
	if got := s.Cursor(); got != 3 {
		t.Fatalf("cursor=%d, want 3", got)
	}
}

func TestDeleteOne_ClearsOverflowAtLineStart(t *testing.T) {
	s := NewState(2, 2).Apply(CommitText{Text: "AB）"})
	if got := s.Cursor(); got != 3 {
		t.Fatalf("cursor=%d, want 3", got)
	}

	s = s.Apply(DeleteBackward{})
	if got := s.Cursor(); got != 2 {
		t.Fatalf("cursor after first delete=%d, want 2", got)
	}
	if got := s.CurrentPage().Overflow[0]; got != "）" {
		t.Fatalf("overflow[0] after first delete=%q, want kept", got)
	}

	s = s.Apply(DeleteBackward{})
	p := s.CurrentPage()
	if got := p.Overflow[0]; got != "" {
		t.Fatalf("overflow[0]=%q, want cleared", got)
	}
	if got := p.Cells[1]; got != "B" {
		t.Fatalf("cell[1]=%q, want untouched %q", got, "B")
	}
	if got := s.Cursor(); got != 1 {
		t.Fatalf("cursor=%d, want 1", got)
	}
}

func TestDeleteOne_AtOriginIsNoOp(t *testing.T) {
	s := NewState(2, 2)
	v := s.Version()
	s = s.Apply(DeleteBackward{})
	if s.Version() != v {
		t.Fatalf("version=%d, want %d", s.Version(), v)
	}
	if s.Cursor() != 0 {
		t.Fatalf("cursor=%d, want 0", s.Cursor())
	}
}

func TestInsertDelete_AreInversesWithoutTruncation(t *testing.T) {
	alphabet := []string{"あ", "い", "x", "漢", "ー", "「"}
	for cols := 1; cols <= 4; cols++ {
		for rows := 1; rows <= 4; rows++ {
			per := cols * rows
			for n := 0; n < per; n++ {
				s := NewState(cols, rows)
				before := s.Document().Pages()

				for i := 0; i < n; i++ {
					s = s.Apply(CommitText{Text: alphabet[(i+cols+rows)%len(alphabet)]})
				}
				for i := 0; i < n; i++ {
					s = s.Apply(DeleteBackward{})
				}

				after := s.Document().Pages()
				if fmt.Sprintf("%q", after) != fmt.Sprintf("%q", before) {
					t.Fatalf("%dx%d n=%d: pages=%q, want %q", cols, rows, n, after, before)
				}
				if s.Cursor() != 0 {
					t.Fatalf("%dx%d n=%d: cursor=%d, want 0", cols, rows, n, s.Cursor())
				}
			}
		}
	}
}

func TestIsKinsokuHead(t *testing.T) {
	for _, ch := range []string{"、", "。", "）", "」", "』"} {
		if !IsKinsokuHead(ch) {
			t.Fatalf("%q should be forbidden at line start", ch)
		}
	}
	for _, ch := range []string{"あ", "「", "(", ""} {
		if IsKinsokuHead(ch) {
			t.Fatalf("%q should be allowed at line start", ch)
		}
	}
}
