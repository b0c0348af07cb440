package der

import "testing"

func TestNullCodec(t *testing.T) {
	testCodec(t, map[string]testCase[Null]{
		"Empty": {val: Null{}, data: []byte{0x05, 0x00}},
	}, nil, map[string]testCase[Null]{
		"NonEmptyContent": {data: []byte{0x05, 0x01, 0x00}, wantErr: errWant},
		"Constructed":     {data: []byte{0x25, 0x00}, wantErr: errWant},
	})
}
