package registry

import (
	"sync"
	"testing"
)

func TestRegistrySetGet(t *testing.T) {
	r := NewRegistry[int]()

	r.Set("a", 1)
	r.Set("b", 2)

	if v, ok := r.Get("a"); !ok || v != 1 {
		t.Errorf("ожидалось a=1, получено %d (ok=%v)", v, ok)
	}
	if _, ok := r.Get("missing"); ok {
		t.Error("несуществующий ключ не должен находиться")
	}

	if len(r.Names()) != 2 {
		t.Errorf("ожидалось 2 имени, получено %d", len(r.Names()))
	}
}

func TestRegistryConcurrentAccess(t *testing.T) {
	r := NewRegistry[int]()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(2)
		go func(n int) {
			defer wg.Done()
			r.Set("key", n)
		}(i)
		go func() {
			defer wg.Done()
			r.Get("key")
		}()
	}
	wg.Wait()

	if _, ok := r.Get("key"); !ok {
		t.Error("ключ должен существовать после конкурентной записи")
	}
}
