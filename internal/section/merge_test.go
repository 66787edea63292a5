package section

import (
	"testing"
)

// enableDebug turns on invariant checking for the duration of one test.
func enableDebug(t *testing.T) {
	t.Helper()
	Debug = true
	t.Cleanup(func() { Debug = false })
}

func TestMergeEmptyBaseIdentity(t *testing.T) {
	enableDebug(t)

	incoming := NewStore(
		Section{Offset: 1, Length: 2, Style: styleY},
		Section{Offset: 5, Length: 3, Style: styleY},
	)
	base := NewStore()
	Merge(base, incoming, 10)

	if !base.Equal(incoming) {
		t.Errorf("merge into empty base = %+v, want %+v", base.Sections(), incoming.Sections())
	}
}

func TestMergeGapSplitting(t *testing.T) {
	enableDebug(t)

	// Line "abcdef": base covers "cde", incoming covers the whole line.
	base := NewStore(Section{Offset: 2, Length: 3, Style: styleX})
	incoming := NewStore(Section{Offset: 0, Length: 6, Style: styleY})
	Merge(base, incoming, 6)

	want := NewStore(
		Section{Offset: 0, Length: 2, Style: styleY},
		Section{Offset: 2, Length: 3, Style: styleX},
		Section{Offset: 5, Length: 1, Style: styleY},
	)
	if !base.Equal(want) {
		t.Errorf("merge = %+v, want %+v", base.Sections(), want.Sections())
	}
}

func TestMergeBaseWins(t *testing.T) {
	enableDebug(t)

	t.Run("incoming fully inside base", func(t *testing.T) {
		base := NewStore(Section{Offset: 2, Length: 3, Style: styleX})
		incoming := NewStore(Section{Offset: 3, Length: 1, Style: styleY})
		Merge(base, incoming, 10)

		want := NewStore(Section{Offset: 2, Length: 3, Style: styleX})
		if !base.Equal(want) {
			t.Errorf("merge = %+v, want base unchanged", base.Sections())
		}
	})

	t.Run("incoming identical to base section", func(t *testing.T) {
		base := NewStore(Section{Offset: 2, Length: 3, Style: styleX})
		incoming := NewStore(Section{Offset: 2, Length: 3, Style: styleY})
		Merge(base, incoming, 10)

		want := NewStore(Section{Offset: 2, Length: 3, Style: styleX})
		if !base.Equal(want) {
			t.Errorf("merge = %+v, want base unchanged", base.Sections())
		}
	})

	t.Run("incoming covering base keeps base sub-range", func(t *testing.T) {
		base := NewStore(Section{Offset: 2, Length: 3, Style: styleX})
		incoming := NewStore(Section{Offset: 0, Length: 10, Style: styleY})
		Merge(base, incoming, 10)

		for i, s := range base.Sections() {
			if s.Style == styleY && s.Offset < 5 && s.End() > 2 {
				t.Errorf("section %d %+v overlaps the base-owned range [2,5)", i, s)
			}
		}
	})
}

func TestMergePartialOverlapTail(t *testing.T) {
	enableDebug(t)

	base := NewStore(Section{Offset: 0, Length: 4, Style: styleX})
	incoming := NewStore(Section{Offset: 2, Length: 4, Style: styleY})
	Merge(base, incoming, 8)

	want := NewStore(
		Section{Offset: 0, Length: 4, Style: styleX},
		Section{Offset: 4, Length: 2, Style: styleY},
	)
	if !base.Equal(want) {
		t.Errorf("merge = %+v, want %+v", base.Sections(), want.Sections())
	}
}

func TestMergeMultipleGaps(t *testing.T) {
	enableDebug(t)

	base := NewStore(
		Section{Offset: 1, Length: 1, Style: styleX},
		Section{Offset: 4, Length: 1, Style: styleZ},
	)
	incoming := NewStore(Section{Offset: 0, Length: 6, Style: styleY})
	Merge(base, incoming, 6)

	want := NewStore(
		Section{Offset: 0, Length: 1, Style: styleY},
		Section{Offset: 1, Length: 1, Style: styleX},
		Section{Offset: 2, Length: 2, Style: styleY},
		Section{Offset: 4, Length: 1, Style: styleZ},
		Section{Offset: 5, Length: 1, Style: styleY},
	)
	if !base.Equal(want) {
		t.Errorf("merge = %+v, want %+v", base.Sections(), want.Sections())
	}
}

func TestMergeNestedBase(t *testing.T) {
	enableDebug(t)

	// Outer base section with a nested child; the incoming section only
	// contributes past the outer end.
	base := NewStore(
		Section{Offset: 0, Length: 10, Style: styleX},
		Section{Offset: 2, Length: 2, Style: styleZ},
	)
	incoming := NewStore(Section{Offset: 1, Length: 11, Style: styleY})
	Merge(base, incoming, 12)

	want := NewStore(
		Section{Offset: 0, Length: 10, Style: styleX},
		Section{Offset: 2, Length: 2, Style: styleZ},
		Section{Offset: 10, Length: 2, Style: styleY},
	)
	if !base.Equal(want) {
		t.Errorf("merge = %+v, want %+v", base.Sections(), want.Sections())
	}
}

func TestMergeZeroLengthBase(t *testing.T) {
	enableDebug(t)

	t.Run("incoming spans a zero-length base section", func(t *testing.T) {
		base := NewStore(Section{Offset: 5, Length: 0, Style: styleX})
		incoming := NewStore(Section{Offset: 3, Length: 5, Style: styleY})
		Merge(base, incoming, 10)

		want := NewStore(
			Section{Offset: 3, Length: 2, Style: styleY},
			Section{Offset: 5, Length: 3, Style: styleY},
			Section{Offset: 5, Length: 0, Style: styleX},
		)
		if !base.Equal(want) {
			t.Errorf("merge = %+v, want %+v", base.Sections(), want.Sections())
		}
	})

	t.Run("incoming starts at a zero-length base section", func(t *testing.T) {
		base := NewStore(Section{Offset: 5, Length: 0, Style: styleX})
		incoming := NewStore(Section{Offset: 5, Length: 3, Style: styleY})
		Merge(base, incoming, 10)

		want := NewStore(
			Section{Offset: 5, Length: 3, Style: styleY},
			Section{Offset: 5, Length: 0, Style: styleX},
		)
		if !base.Equal(want) {
			t.Errorf("merge = %+v, want %+v", base.Sections(), want.Sections())
		}
	})
}

func TestMergeZeroLengthIncoming(t *testing.T) {
	enableDebug(t)

	base := NewStore(Section{Offset: 2, Length: 3, Style: styleX})
	incoming := NewStore(Section{Offset: 1, Length: 0, Style: styleY})
	Merge(base, incoming, 10)

	want := NewStore(Section{Offset: 2, Length: 3, Style: styleX})
	if !base.Equal(want) {
		t.Errorf("zero-length incoming changed the base: %+v", base.Sections())
	}
}

func TestMergeEmptyIncoming(t *testing.T) {
	enableDebug(t)

	base := NewStore(Section{Offset: 2, Length: 3, Style: styleX})
	Merge(base, NewStore(), 10)

	if base.Len() != 1 {
		t.Errorf("empty incoming changed the base: %+v", base.Sections())
	}
}

func TestMergeDisjointSequentialEqualsConcatenated(t *testing.T) {
	enableDebug(t)

	mkBase := func() *Store {
		return NewStore(Section{Offset: 4, Length: 2, Style: styleX})
	}
	a := NewStore(Section{Offset: 0, Length: 2, Style: styleY})
	b := NewStore(Section{Offset: 8, Length: 2, Style: styleZ})

	sequential := mkBase()
	Merge(sequential, a, 12)
	Merge(sequential, b, 12)

	concatenated := mkBase()
	both := NewStore(
		Section{Offset: 0, Length: 2, Style: styleY},
		Section{Offset: 8, Length: 2, Style: styleZ},
	)
	Merge(concatenated, both, 12)

	if !sequential.Equal(concatenated) {
		t.Errorf("sequential = %+v, concatenated = %+v",
			sequential.Sections(), concatenated.Sections())
	}
}

func TestMergeWithIncomingWins(t *testing.T) {
	enableDebug(t)

	base := NewStore(Section{Offset: 2, Length: 3, Style: styleX})
	incoming := NewStore(Section{Offset: 0, Length: 6, Style: styleY})
	MergeWith(base, incoming, 6, IncomingWins)

	want := NewStore(Section{Offset: 0, Length: 6, Style: styleY})
	if !base.Equal(want) {
		t.Errorf("incoming-wins merge = %+v, want %+v", base.Sections(), want.Sections())
	}
}

func TestMergeWithBaseWinsDefault(t *testing.T) {
	enableDebug(t)

	base := NewStore(Section{Offset: 2, Length: 3, Style: styleX})
	incoming := NewStore(Section{Offset: 0, Length: 6, Style: styleY})
	MergeWith(base, incoming, 6, BaseWins)

	want := NewStore(
		Section{Offset: 0, Length: 2, Style: styleY},
		Section{Offset: 2, Length: 3, Style: styleX},
		Section{Offset: 5, Length: 1, Style: styleY},
	)
	if !base.Equal(want) {
		t.Errorf("base-wins merge = %+v, want %+v", base.Sections(), want.Sections())
	}
}

func TestMergePanicsOnInvalidInputInDebug(t *testing.T) {
	enableDebug(t)

	defer func() {
		if recover() == nil {
			t.Error("merge of an improperly overlapping base should panic with Debug set")
		}
	}()
	base := &Store{sections: []Section{
		{Offset: 0, Length: 5, Style: styleX},
		{Offset: 3, Length: 5, Style: styleY},
	}}
	Merge(base, NewStore(), 10)
}
