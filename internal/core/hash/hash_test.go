package hash

import "testing"

func TestDigest_KnownVector(t *testing.T) {
	// Pinned vector: proves the digest is stable across processes.
	got := Digest([]byte("abc"))
	want := "ba7816bf8f01cfea414140de5dae2223b00361a396177a9cb410ff61f20015ad"
	if got != want {
		t.Errorf("Digest(abc) = %s, want %s", got, want)
	}
}

func TestDigest_Deterministic(t *testing.T) {
	data := []byte("certificate of authenticity for SKU-42")
	first := Digest(data)
	for i := 0; i < 10; i++ {
		if got := Digest(data); got != first {
			t.Fatalf("digest changed between calls: %s vs %s", first, got)
		}
	}
}

func TestDigest_DistinctInputs(t *testing.T) {
	a := Digest([]byte("original product document"))
	b := Digest([]byte("original product document.")) // one byte appended
	if a == b {
		t.Error("different inputs produced the same digest")
	}
}

func TestDigest_Format(t *testing.T) {
	d := Digest([]byte{0x00, 0xff, 0x10})
	if len(d) != EncodedLen {
		t.Fatalf("digest length = %d, want %d", len(d), EncodedLen)
	}
	for _, c := range d {
		if (c < '0' || c > '9') && (c < 'a' || c > 'f') {
			t.Fatalf("digest contains non-hex character %q", c)
		}
	}
}

func TestDigest_EmptyInput(t *testing.T) {
	if Digest(nil) != Digest([]byte{}) {
		t.Error("nil and empty slice should hash identically")
	}
}
