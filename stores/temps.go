package stores

import "errors"

// Temps tracks scratch columns acquired by one lowering routine so they can
// be handed back together on every exit path.
type Temps struct {
	allocator *Allocator
	names     []string
}

func (a *Allocator) Temps() *Temps {
	return &Temps{
		allocator: a,
	}
}

func (t *Temps) New() (int, error) {
	name := t.allocator.FreshTempName()
	slot, err := t.allocator.Allocate(name)
	if err != nil {
		return 0, err
	}
	t.names = append(t.names, name)
	return slot, nil
}

// Release frees every column acquired so far, newest first.
func (t *Temps) Release() error {
	var errs []error
	for i := len(t.names) - 1; i >= 0; i-- {
		if err := t.allocator.Release(t.names[i]); err != nil {
			errs = append(errs, err)
		}
	}
	t.names = t.names[:0]
	return errors.Join(errs...)
}
