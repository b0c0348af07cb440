package der

import "testing"

func TestOctetStringBytesCodec(t *testing.T) {
	testCodec(t, map[string]testCase[[]byte]{
		"Empty":    {val: []byte{}, data: []byte{0x04, 0x00}},
		"NonEmpty": {val: []byte{0x01, 0x02, 0x03}, data: []byte{0x04, 0x03, 0x01, 0x02, 0x03}},
	}, nil, nil)
}

func TestOctetStringArrayCodec(t *testing.T) {
	testCodec(t, map[string]testCase[[3]byte]{
		"Exact": {val: [3]byte{0x01, 0x02, 0x03}, data: []byte{0x04, 0x03, 0x01, 0x02, 0x03}},
	}, nil, map[string]testCase[[3]byte]{
		"WrongLength": {data: []byte{0x04, 0x02, 0x01, 0x02}, wantErr: errWant},
	})
}

func TestOctetStringBytesReuseBacking(t *testing.T) {
	backing := make([]byte, 0, 16)
	backing = append(backing, 0xaa, 0xbb)
	if err := UnmarshalWithOptions([]byte{0x04, 0x03, 0x01, 0x02, 0x03}, &backing, Options{}); err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}
	if len(backing) != 3 || backing[0] != 0x01 || backing[1] != 0x02 || backing[2] != 0x03 {
		t.Errorf("Unmarshal() = %v, want [1 2 3]", backing)
	}
}
