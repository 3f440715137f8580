package catalogue

import "context"

type StubRepository struct {
	Overrides []Override
	Err       error
}

func NewStubRepository() *StubRepository {
	return &StubRepository{}
}

func (s *StubRepository) GetOverrides(ctx context.Context) ([]Override, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	return s.Overrides, nil
}
