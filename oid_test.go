package der

import "testing"

func TestObjectIdentifierCodec(t *testing.T) {
	testCodec(t, map[string]testCase[ObjectIdentifier]{
		"CommonName": {
			val:  ObjectIdentifier{2, 5, 4, 3},
			data: []byte{0x06, 0x03, 0x55, 0x04, 0x03},
		},
		"RSAEncryption": {
			val:  ObjectIdentifier{1, 2, 840, 113549, 1, 1, 1},
			data: []byte{0x06, 0x09, 0x2a, 0x86, 0x48, 0x86, 0xf7, 0x0d, 0x01, 0x01, 0x01},
		},
	}, map[string]testCase[ObjectIdentifier]{
		"TooFewArcs":       {val: ObjectIdentifier{1}, wantErr: errWant},
		"FirstArcTooLarge": {val: ObjectIdentifier{3, 0}, wantErr: errWant},
	}, map[string]testCase[ObjectIdentifier]{
		"Empty":       {data: []byte{0x06, 0x00}, wantErr: errWant},
		"NonMinimal":  {data: []byte{0x06, 0x02, 0x80, 0x01}, wantErr: errWant},
		"Truncated":   {data: []byte{0x06, 0x01, 0x86}, wantErr: errWant},
	})
}

func TestObjectIdentifierEqualAndString(t *testing.T) {
	oid := ObjectIdentifier{2, 5, 4, 3}
	if !oid.Equal(ObjectIdentifier{2, 5, 4, 3}) {
		t.Error("Equal() = false, want true")
	}
	if oid.Equal(ObjectIdentifier{2, 5, 4, 4}) {
		t.Error("Equal() = true, want false")
	}
	if got, want := oid.String(), "2.5.4.3"; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}

func TestRelativeOIDCodec(t *testing.T) {
	testCodec(t, map[string]testCase[RelativeOID]{
		"Empty":    {val: RelativeOID{}, data: []byte{0x0d, 0x00}},
		"TwoArcs": {val: RelativeOID{113549, 1}, data: []byte{0x0d, 0x04, 0x86, 0xf7, 0x0d, 0x01}},
	}, nil, nil)
}
