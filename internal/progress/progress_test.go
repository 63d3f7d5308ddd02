package progress

import "testing"

func TestDefaultLadder(t *testing.T) {
	l := DefaultLadder()
	if !l.Unlocked(0) {
		t.Error("stage 0 should start unlocked")
	}
	for i := 1; i < StageCount; i++ {
		if l.Unlocked(i) {
			t.Errorf("stage %d should start locked", i)
		}
	}
	if l.TotalStars() != 0 {
		t.Errorf("TotalStars = %d, want 0", l.TotalStars())
	}
}

func TestMergeUnlocksNextStage(t *testing.T) {
	l := DefaultLadder()
	if !l.Merge(0, 2, 8) {
		t.Error("first merge should report a change")
	}
	if !l.Unlocked(1) {
		t.Error("completing stage 0 should unlock stage 1")
	}
	if l.Unlocked(2) {
		t.Error("stage 2 should stay locked")
	}
}

func TestZeroStarMergeKeepsNextLocked(t *testing.T) {
	l := DefaultLadder()
	if !l.Merge(0, 0, 2) {
		t.Error("best-correct improvement should report a change")
	}
	if l.Unlocked(1) {
		t.Error("a starless run must not unlock stage 1")
	}
	if l[0].BestCorrect != 2 {
		t.Errorf("BestCorrect = %d, want 2", l[0].BestCorrect)
	}

	// One star is the unlock threshold.
	l.Merge(0, 1, 3)
	if !l.Unlocked(1) {
		t.Error("a one-star run should unlock stage 1")
	}
}

func TestMergeIsMonotonic(t *testing.T) {
	l := DefaultLadder()
	l.Merge(0, 3, 10)

	// A worse replay must not pull anything down.
	if l.Merge(0, 1, 4) {
		t.Error("worse result should report no change")
	}
	if l[0].Stars != 3 {
		t.Errorf("Stars = %d, want 3", l[0].Stars)
	}
	if l[0].BestCorrect != 10 {
		t.Errorf("BestCorrect = %d, want 10", l[0].BestCorrect)
	}
	if !l.Unlocked(1) {
		t.Error("unlock must not be revoked")
	}
}

func TestMergeImprovesPartially(t *testing.T) {
	l := DefaultLadder()
	l.Merge(0, 1, 5)
	if !l.Merge(0, 1, 7) {
		t.Error("better correct count should report a change")
	}
	if l[0].Stars != 1 || l[0].BestCorrect != 7 {
		t.Errorf("got stars=%d best=%d, want 1/7", l[0].Stars, l[0].BestCorrect)
	}
}

func TestMergeClampsStars(t *testing.T) {
	l := DefaultLadder()
	l.Merge(0, 99, 10)
	if l[0].Stars != MaxStars {
		t.Errorf("Stars = %d, want %d", l[0].Stars, MaxStars)
	}
}

func TestMergeOutOfRange(t *testing.T) {
	l := DefaultLadder()
	if l.Merge(-1, 3, 10) || l.Merge(StageCount, 3, 10) {
		t.Error("out-of-range merge should be a no-op")
	}
}

func TestLastStageMergeHasNoNextToUnlock(t *testing.T) {
	l := DefaultLadder()
	for i := 0; i < StageCount; i++ {
		l.Merge(i, 3, 10)
	}
	if l.TotalStars() != StageCount*MaxStars {
		t.Errorf("TotalStars = %d, want %d", l.TotalStars(), StageCount*MaxStars)
	}
}

func TestEncodeDecodeRoundTrip(t *testing.T) {
	l := DefaultLadder()
	l.Merge(0, 2, 8)
	l.Merge(1, 3, 10)

	data, err := l.Encode()
	if err != nil {
		t.Fatal(err)
	}
	got := Decode(data)
	if got != l {
		t.Errorf("round trip mismatch: %+v != %+v", got, l)
	}
}

func TestDecodeMalformed(t *testing.T) {
	tests := []struct {
		name string
		data []byte
	}{
		{"garbage", []byte("not json")},
		{"empty", nil},
		{"wrong shape", []byte(`{"stars": 5}`)},
		{"negative stars", []byte(`[{"stars": -1, "unlocked": true, "best_correct": 0}]`)},
		{"too many stars", []byte(`[{"stars": 9, "unlocked": true, "best_correct": 0}]`)},
	}

	want := DefaultLadder()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Decode(tt.data); got != want {
				t.Errorf("Decode = %+v, want default ladder", got)
			}
		})
	}
}

func TestDecodeAlwaysOpensFirstStage(t *testing.T) {
	l := DefaultLadder()
	l[0].Unlocked = false
	data, err := l.Encode()
	if err != nil {
		t.Fatal(err)
	}
	if got := Decode(data); !got.Unlocked(0) {
		t.Error("stage 0 must be open after decode")
	}
}
