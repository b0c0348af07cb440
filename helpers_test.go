package der

import (
	"bytes"
	"errors"
	"math/big"
	"reflect"
	"testing"
)

// testCase represents a single encoding or decoding scenario. For encoding
// cases marshaling val should produce data; for decoding cases decoding data
// should produce val.
type testCase[T any] struct {
	val     T
	data    []byte
	opt     Options
	wantErr error
}

// testCodec runs common against both directions, plus marshal/unmarshal
// against their own direction only, mirroring the teacher's test harness.
func testCodec[T any](t *testing.T, common, marshal, unmarshal map[string]testCase[T]) {
	t.Helper()
	t.Run("Marshal", func(t *testing.T) {
		t.Helper()
		testMarshal[T](t, common)
		testMarshal[T](t, marshal)
	})
	t.Run("Unmarshal", func(t *testing.T) {
		t.Helper()
		testUnmarshal[T](t, common)
		testUnmarshal[T](t, unmarshal)
	})
}

func testMarshal[T any](t *testing.T, tests map[string]testCase[T]) {
	t.Helper()
	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			t.Helper()
			got, err := MarshalWithOptions(tc.val, tc.opt)
			if tc.wantErr != nil {
				if !errors.As(err, new(*SyntaxError)) && !errors.As(err, new(*MarshalError)) {
					t.Fatalf("Marshal() error = %v, want error of kind %v", err, tc.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("Marshal() error = %v, want nil", err)
			}
			if !bytes.Equal(got, tc.data) {
				t.Errorf("Marshal() = % X, want % X", got, tc.data)
			}
		})
	}
}

func testUnmarshal[T any](t *testing.T, tests map[string]testCase[T]) {
	t.Helper()
	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			t.Helper()
			target := reflect.New(reflect.TypeFor[T]())
			err := UnmarshalWithOptions(tc.data, target.Interface(), tc.opt)
			if tc.wantErr != nil {
				if !errors.As(err, new(*SyntaxError)) && !errors.As(err, new(*MarshalError)) {
					t.Fatalf("Unmarshal() error = %v, want error of kind %v", err, tc.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("Unmarshal() error = %v, want nil", err)
			}
			got := target.Elem().Interface()
			if bi, ok := any(tc.val).(big.Int); ok {
				gotBI := got.(big.Int)
				if gotBI.Cmp(&bi) != 0 {
					t.Errorf("Unmarshal() = %v, want %v", got, tc.val)
				}
				return
			}
			if !reflect.DeepEqual(got, tc.val) {
				t.Errorf("Unmarshal() = %v, want %v", got, tc.val)
			}
		})
	}
}

var errWant = errors.New("any error")
