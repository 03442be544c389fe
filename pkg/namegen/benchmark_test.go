package namegen_test

import (
	"testing"

	"github.com/dmitrymomot/ideabloom/pkg/namegen"
)

func BenchmarkGenerate(b *testing.B) {
	req := namegen.Request{
		Industry:   "health tech",
		Theme:      "social app",
		Attributes: "calm, friendly, secure",
	}
	for _, style := range namegen.Styles() {
		b.Run(style.String(), func(b *testing.B) {
			gen := namegen.New(nil, namegen.NewSeededPicker(1))
			req := req
			req.Style = style
			for b.Loop() {
				_ = gen.Generate(req)
			}
		})
	}
}

func BenchmarkGenerate_Parallel(b *testing.B) {
	gen := namegen.New(nil, nil)
	req := namegen.Request{Industry: "food", Theme: "store", Style: namegen.Quirky}
	b.RunParallel(func(pb *testing.PB) {
		for pb.Next() {
			_ = gen.Generate(req)
		}
	})
}
