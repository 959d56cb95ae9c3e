package jscalar

import (
	"encoding/json"
	"testing"

	segjson "github.com/segmentio/encoding/json"
)

var benchInputs = []struct {
	name string
	data string
}{
	{"integer", "123456789"},
	{"float", "-1.2345678e-10"},
	{"literal", "false"},
	{"padded", "  \t3.1415926535897932\r\n"},
}

func BenchmarkParse(b *testing.B) {
	for _, in := range benchInputs {
		data := []byte(in.data)

		b.Run(in.name, func(b *testing.B) {
			b.Run("standard", func(b *testing.B) {
				b.ReportAllocs()
				b.SetBytes(int64(len(data)))
				for i := 0; i < b.N; i++ {
					var v interface{}
					if err := json.Unmarshal(data, &v); err != nil {
						b.Fatal(err)
					}
				}
			})
			b.Run("jsoniter", func(b *testing.B) {
				b.ReportAllocs()
				b.SetBytes(int64(len(data)))
				for i := 0; i < b.N; i++ {
					var v interface{}
					if err := jsoniterStd.Unmarshal(data, &v); err != nil {
						b.Fatal(err)
					}
				}
			})
			b.Run("segmentio", func(b *testing.B) {
				b.ReportAllocs()
				b.SetBytes(int64(len(data)))
				for i := 0; i < b.N; i++ {
					var v interface{}
					if err := segjson.Unmarshal(data, &v); err != nil {
						b.Fatal(err)
					}
				}
			})
			b.Run("jscalar", func(b *testing.B) {
				b.ReportAllocs()
				b.SetBytes(int64(len(data)))
				for i := 0; i < b.N; i++ {
					if _, err := ParseBytes(data); err != nil {
						b.Fatal(err)
					}
				}
			})
		})
	}
}

func BenchmarkValid(b *testing.B) {
	data := []byte("-1.2345678e-10")

	b.Run("standard", func(b *testing.B) {
		b.ReportAllocs()
		for i := 0; i < b.N; i++ {
			if !json.Valid(data) {
				b.Fatal("invalid")
			}
		}
	})
	b.Run("segmentio", func(b *testing.B) {
		b.ReportAllocs()
		for i := 0; i < b.N; i++ {
			if !segjson.Valid(data) {
				b.Fatal("invalid")
			}
		}
	})
	b.Run("jscalar", func(b *testing.B) {
		b.ReportAllocs()
		s := string(data)
		for i := 0; i < b.N; i++ {
			if !Valid(s) {
				b.Fatal("invalid")
			}
		}
	})
}
