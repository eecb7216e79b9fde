// Package registry — потокобезопасный реестр именованных ресурсов
// (коллекции MongoDB и т.п.), заполняется при старте приложения.
package registry

import "sync"

// Registry хранит значения по строковому имени.
type Registry[T any] struct {
	mu    sync.RWMutex
	items map[string]T
}

// NewRegistry создаёт пустой реестр.
func NewRegistry[T any]() *Registry[T] {
	return &Registry[T]{
		items: make(map[string]T),
	}
}

// Set сохраняет значение под именем name (перезаписывает существующее).
func (r *Registry[T]) Set(name string, item T) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.items[name] = item
}

// Get возвращает значение по имени и признак его наличия.
func (r *Registry[T]) Get(name string) (T, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	item, ok := r.items[name]
	return item, ok
}

// Names возвращает список зарегистрированных имён.
func (r *Registry[T]) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, 0, len(r.items))
	for name := range r.items {
		names = append(names, name)
	}
	return names
}
