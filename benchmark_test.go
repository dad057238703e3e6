package rivet_test

import (
	"testing"

	"github.com/rivet-di/rivet"
)

func BenchmarkGetSingleton(b *testing.B) {
	c := rivet.New()
	_ = rivet.RegisterInstance(c, &Config{Port: 1})
	_ = rivet.RegisterSingleton[*Database](c, NewDatabase)

	if _, err := rivet.Get[*Database](c); err != nil {
		b.Fatal(err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = rivet.Get[*Database](c)
	}
}

func BenchmarkGetSingletonParallel(b *testing.B) {
	c := rivet.New()
	_ = rivet.RegisterInstance(c, &Config{Port: 1})
	_ = rivet.RegisterSingleton[*Database](c, NewDatabase)

	b.RunParallel(func(pb *testing.PB) {
		for pb.Next() {
			_, _ = rivet.Get[*Database](c)
		}
	})
}

func BenchmarkGetScoped(b *testing.B) {
	c := rivet.New()
	_ = rivet.RegisterInstance(c, &Config{Port: 1})
	_ = rivet.RegisterScoped[*Database](c, NewDatabase)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = rivet.Get[*Database](c)
	}
}
