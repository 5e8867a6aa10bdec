package service_test

import (
	"context"
	"sync"

	"github.com/stretchr/testify/mock"

	memberdomain "study-service/internal/member/domain"
	studydomain "study-service/internal/study/domain"
)

// mockMemberService is a testify mock of member.Service.
type mockMemberService struct {
	mock.Mock
}

func (m *mockMemberService) FindByID(ctx context.Context, id memberdomain.MemberID) (*memberdomain.Member, error) {
	args := m.Called(ctx, id)
	mem, _ := args.Get(0).(*memberdomain.Member)
	return mem, args.Error(1)
}

func (m *mockMemberService) Validate(ctx context.Context, id memberdomain.MemberID) error {
	return m.Called(ctx, id).Error(0)
}

func (m *mockMemberService) NotifyStudy(ctx context.Context, s *studydomain.Study) {
	m.Called(ctx, s)
}

func (m *mockMemberService) NotifyMember(ctx context.Context, mem *memberdomain.Member) {
	m.Called(ctx, mem)
}

// mockStudyRepository is a testify mock of repository.Repository.
type mockStudyRepository struct {
	mock.Mock
}

func (m *mockStudyRepository) Save(ctx context.Context, s *studydomain.Study) (*studydomain.Study, error) {
	args := m.Called(ctx, s)
	saved, _ := args.Get(0).(*studydomain.Study)
	return saved, args.Error(1)
}

// stubMemberService answers every call with fixed results and records nothing.
type stubMemberService struct{}

func (stubMemberService) FindByID(context.Context, memberdomain.MemberID) (*memberdomain.Member, error) {
	return nil, nil
}
func (stubMemberService) Validate(context.Context, memberdomain.MemberID) error { return nil }
func (stubMemberService) NotifyStudy(context.Context, *studydomain.Study)       {}
func (stubMemberService) NotifyMember(context.Context, *memberdomain.Member)    {}

// memMemberService is an in-memory member.Service that counts calls per method.
type memMemberService struct {
	mu       sync.Mutex
	byID     map[memberdomain.MemberID]*memberdomain.Member
	findN    int
	notified []string
}

func newMemMemberService(members ...*memberdomain.Member) *memMemberService {
	s := &memMemberService{byID: make(map[memberdomain.MemberID]*memberdomain.Member)}
	for _, m := range members {
		s.byID[m.ID] = m
	}
	return s
}

func (s *memMemberService) FindByID(ctx context.Context, id memberdomain.MemberID) (*memberdomain.Member, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.findN++
	return s.byID[id], nil
}

func (s *memMemberService) Validate(ctx context.Context, id memberdomain.MemberID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.byID[id]; !ok || !id.Valid() {
		return memberdomain.ErrInvalidMember
	}
	return nil
}

func (s *memMemberService) NotifyStudy(ctx context.Context, st *studydomain.Study) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.notified = append(s.notified, "study:"+st.Name)
}

func (s *memMemberService) NotifyMember(ctx context.Context, m *memberdomain.Member) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.notified = append(s.notified, "member:"+m.Email)
}

func (s *memMemberService) finds() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.findN
}

// memStudyRepository keeps saved studies in a slice.
type memStudyRepository struct {
	mu    sync.Mutex
	saved []*studydomain.Study
}

func (r *memStudyRepository) Save(ctx context.Context, s *studydomain.Study) (*studydomain.Study, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *s
	r.saved = append(r.saved, &cp)
	return &cp, nil
}

func (r *memStudyRepository) count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.saved)
}
