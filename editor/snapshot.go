package editor

import (
	"encoding/binary"
	"hash/fnv"
)

// SnapshotToken identifies everything that affects a rendered frame. Equal
// tokens mean an identical View.
type SnapshotToken uint64

// RowMap maps one visible grid row to its screen line.
type RowMap struct {
	ScreenRow   int
	GridRow     int
	StartOffset int
	// Line is the 1-based line number across pages.
	Line int
}

type RenderSnapshot struct {
	Token    SnapshotToken
	Version  uint64
	Page     int
	Viewport ViewportState
	Rows     []RowMap
}

// RenderSnapshot returns the token and row mapping of the current frame.
func (m Model) RenderSnapshot() RenderSnapshot {
	vp := m.ViewportState()
	snap := RenderSnapshot{
		Token:    m.snapshotToken(),
		Version:  m.state.Version(),
		Page:     m.state.PageIndex(),
		Viewport: vp,
	}

	doc := m.state.Document()
	stride := m.rowStride()
	for sy := 0; sy < vp.VisibleRows; sy++ {
		line := vp.TopLine + sy
		if line%stride != 0 {
			continue
		}
		r := line / stride
		if r >= doc.Rows() {
			break
		}
		snap.Rows = append(snap.Rows, RowMap{
			ScreenRow:   sy,
			GridRow:     r,
			StartOffset: r * doc.Cols(),
			Line:        m.state.PageIndex()*doc.Rows() + r + 1,
		})
	}
	return snap
}

func (m Model) snapshotToken() SnapshotToken {
	h := fnv.New64a()
	writeU64 := func(v uint64) {
		var b [8]byte
		binary.LittleEndian.PutUint64(b[:], v)
		_, _ = h.Write(b[:])
	}
	writeI := func(v int) { writeU64(uint64(v)) }
	writeB := func(v bool) {
		if v {
			writeU64(1)
			return
		}
		writeU64(0)
	}
	writeS := func(v string) {
		writeU64(uint64(len(v)))
		_, _ = h.Write([]byte(v))
	}

	writeU64(m.state.Version())
	writeI(m.state.Cursor())
	writeI(m.state.PageIndex())
	writeB(m.state.Composing())
	writeS(m.state.Composition())
	writeI(m.viewport.Width)
	writeI(m.viewport.Height)
	writeI(m.viewport.YOffset)
	writeB(m.focused)
	writeB(m.cfg.ShowLineNumbers)
	writeB(m.cfg.ShowRules)
	writeB(m.cfg.ShowStatus)
	writeB(m.cfg.ReadOnly)
	return SnapshotToken(h.Sum64())
}
