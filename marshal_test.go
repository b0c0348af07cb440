package der

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestUnmarshalRejectsNonPointer(t *testing.T) {
	var v int
	if err := Unmarshal([]byte{0x02, 0x01, 0x05}, v); err == nil {
		t.Error("Unmarshal() error = nil, want error for non-pointer target")
	}
}

func TestUnmarshalRejectsNilPointer(t *testing.T) {
	var v *int
	if err := Unmarshal([]byte{0x02, 0x01, 0x05}, v); err == nil {
		t.Error("Unmarshal() error = nil, want error for nil pointer target")
	}
}

func TestUnmarshalRejectsTrailingData(t *testing.T) {
	var v int
	data := []byte{0x02, 0x01, 0x05, 0x02, 0x01, 0x06}
	if err := Unmarshal(data, &v); err == nil {
		t.Error("Unmarshal() error = nil, want error for trailing data")
	}
}

func TestUnmarshalRejectsAdversarialLength(t *testing.T) {
	var v []byte
	// Long-form length claims 0xFFFFFFFF bytes follow, far more than present.
	data := []byte{0x30, 0x84, 0xff, 0xff, 0xff, 0xff}
	if err := Unmarshal(data, &v); err == nil {
		t.Error("Unmarshal() error = nil, want error for an over-large declared length")
	}
}

func TestMarshalUnmarshalRoundTrip(t *testing.T) {
	type cert struct {
		Serial  int
		Subject string
	}
	in := cert{Serial: 7, Subject: "example"}
	data, err := Marshal(in)
	require.NoError(t, err)
	var out cert
	require.NoError(t, Unmarshal(data, &out))
	require.Equal(t, in, out)
}

func TestIntegerZero(t *testing.T) {
	got, err := Marshal(0)
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}
	if want := []byte{0x02, 0x01, 0x00}; !bytes.Equal(got, want) {
		t.Errorf("Marshal() = % X, want % X", got, want)
	}
}

func TestIntegerNonCanonicalRejected(t *testing.T) {
	var v int
	if err := Unmarshal([]byte{0x02, 0x02, 0x00, 0x01}, &v); err == nil {
		t.Error("Unmarshal() error = nil, want NonCanonical error for a redundant leading 0x00")
	}
}
