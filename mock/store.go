package mock

import "github.com/mwielgus/wordbook"

var _ wordbook.EntryStore = (*EntryStore)(nil)

// EntryStore is a mock implementation of wordbook.EntryStore.
type EntryStore struct {
	ExistingFn func() (map[string]*wordbook.Entry, error)
	OpenFn     func(fresh bool) error
	AppendFn   func(e *wordbook.Entry) error
	CloseFn    func() error
}

func (s *EntryStore) Existing() (map[string]*wordbook.Entry, error) {
	return s.ExistingFn()
}

func (s *EntryStore) Open(fresh bool) error {
	if s.OpenFn == nil {
		return nil
	}
	return s.OpenFn(fresh)
}

func (s *EntryStore) Append(e *wordbook.Entry) error {
	return s.AppendFn(e)
}

func (s *EntryStore) Close() error {
	if s.CloseFn == nil {
		return nil
	}
	return s.CloseFn()
}
