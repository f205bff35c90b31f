package engine

import "testing"

func TestNextPow2RoundsUp(t *testing.T) {
	cases := map[uint64]uint64{
		0:    2,
		1:    2,
		2:    2,
		3:    4,
		4:    4,
		5:    8,
		1023: 1024,
		1024: 1024,
	}
	for in, want := range cases {
		if got := nextPow2(in); got != want {
			t.Errorf("nextPow2(%d) = %d, want %d", in, got, want)
		}
	}
}

func TestDefaultConfigIsUsable(t *testing.T) {
	cfg := DefaultConfig()
	if cfg.RequestRingSize == 0 || cfg.ResultRingSize == 0 || cfg.PoolCapacity == 0 {
		t.Fatal("expected DefaultConfig to return non-zero sizes")
	}
	e := NewEngine[int](cfg, nil)
	if e == nil {
		t.Fatal("expected NewEngine to construct successfully from DefaultConfig")
	}
}
