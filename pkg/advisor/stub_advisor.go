package advisor

import "context"

// StubAdvisor returns a fixed recommendation, or an error when Err is set.
type StubAdvisor struct {
	Recommendation string
	Err            error
	Calls          []Request
}

func (s *StubAdvisor) Recommend(ctx context.Context, req Request) (string, error) {
	s.Calls = append(s.Calls, req)
	if s.Err != nil {
		return "", s.Err
	}
	return s.Recommendation, nil
}
