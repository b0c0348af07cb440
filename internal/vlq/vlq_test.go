package vlq

import (
	"bytes"
	"errors"
	"io"
	"reflect"
	"runtime"
	"slices"
	"strconv"
	"testing"
)

type readCase[T unsigned] struct {
	data    []byte
	extra   int
	want    T
	wantErr error
}

func testRead[T unsigned](t *testing.T, f func(io.ByteReader) (T, error), tc readCase[T]) {
	t.Helper()
	name := runtime.FuncForPC(reflect.ValueOf(f).Pointer()).Name()

	r := bytes.NewReader(tc.data)
	got, err := f(r)
	if !errors.Is(err, tc.wantErr) {
		t.Fatalf("%s(%# x) error = %v, wantErr %v", name, tc.data, err, tc.wantErr)
	}
	if err != nil {
		return
	}
	if got != tc.want {
		t.Errorf("%s(%# x) = %v, want %v", name, tc.data, got, tc.want)
	}
	if r.Len() != tc.extra {
		t.Errorf("%s(%# x) left %d extra bytes, want %d", name, tc.data, r.Len(), tc.extra)
	}
}

type writeCase[T unsigned] struct {
	value T
	want  []byte
}

func testWrite[T unsigned](t *testing.T, tc writeCase[T]) {
	t.Helper()

	if l := Len(tc.value); l != len(tc.want) {
		t.Errorf("Len(%d) = %d, want %d", tc.value, l, len(tc.want))
	}
	var buf bytes.Buffer
	n, err := Write(&buf, tc.value)
	if err != nil {
		t.Fatalf("Write(%d) error = %v, want nil", tc.value, err)
	}
	if n != len(tc.want) {
		t.Errorf("Write(%d) n = %d, want %d", tc.value, n, len(tc.want))
	}
	if got := buf.Bytes(); !slices.Equal(got, tc.want) {
		t.Errorf("Write(%d) = %# x, want %# x", tc.value, got, tc.want)
	}
	if got := Append(nil, tc.value); !slices.Equal(got, tc.want) {
		t.Errorf("Append(nil, %d) = %# x, want %# x", tc.value, got, tc.want)
	}
}

func TestRead(t *testing.T) {
	tests := map[string]readCase[uint]{
		"SingleByte":    {[]byte{0x05}, 0, 5, nil},
		"MultiByte":     {[]byte{0x85, 0x01, 0x00}, 1, 641, nil},
		"EOF":           {nil, 0, 0, io.EOF},
		"UnexpectedEOF": {[]byte{0x81, 0x80}, 0, 0, io.ErrUnexpectedEOF},
		"Overflow":      {[]byte{0x81, 0x80, 0x80, 0x80, 0x80, 0x80, 0x80, 0x80, 0x80, 0x80, 0x00}, 0, 0, ErrOverflow},
	}
	for name, tc := range tests {
		t.Run(name, func(t *testing.T) { testRead(t, Read[uint], tc) })
	}
}

func TestRead8(t *testing.T) {
	tests := map[string]readCase[uint8]{
		"SingleByte": {[]byte{0x05}, 0, 5, nil},
		"Overflow":   {[]byte{0x85, 0x01, 0x00}, 0, 0, ErrOverflow},
	}
	for name, tc := range tests {
		t.Run(name, func(t *testing.T) { testRead(t, Read[uint8], tc) })
	}
}

func TestReadMinimal(t *testing.T) {
	tests := map[string]readCase[uint]{
		"NonMinimal": {[]byte{0x80, 0x85, 0x01}, 0, 0, ErrNotMinimal},
	}
	for name, tc := range tests {
		t.Run(name, func(t *testing.T) { testRead(t, ReadMinimal[uint], tc) })
	}
}

func TestWrite(t *testing.T) {
	tests := []writeCase[uint]{
		{0, []byte{0x00}},
		{25, []byte{25}},
		{641, []byte{0x85, 0x01}},
	}
	for _, tc := range tests {
		t.Run(strconv.FormatUint(uint64(tc.value), 10), func(t *testing.T) { testWrite(t, tc) })
	}
}

func TestWrite8(t *testing.T) {
	tests := []writeCase[uint8]{
		{0, []byte{0x00}},
		{200, []byte{0x81, 0x48}},
	}
	for _, tc := range tests {
		t.Run(strconv.FormatUint(uint64(tc.value), 10), func(t *testing.T) { testWrite(t, tc) })
	}
}

func BenchmarkLen(b *testing.B) {
	for range b.N {
		Len(uint8(200))
	}
}
