package doctor

import "github.com/stretchr/testify/mock"

// mockCheck is a testify mock implementing Check.
type mockCheck struct {
	mock.Mock
}

func newMockCheck(t interface {
	mock.TestingT
	Cleanup(func())
}) *mockCheck {
	m := &mockCheck{}
	m.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *mockCheck) Name() string {
	return m.Called().String(0)
}

func (m *mockCheck) Category() string {
	return m.Called().String(0)
}

func (m *mockCheck) Run() *CheckResult {
	ret := m.Called()
	r, _ := ret.Get(0).(*CheckResult)
	return r
}

// mockFixCheck is a mockCheck that also implements Fixer.
type mockFixCheck struct {
	mockCheck
}

func (m *mockFixCheck) CanFix() bool {
	return m.Called().Bool(0)
}

func (m *mockFixCheck) Fix() []FixResult {
	ret := m.Called()
	r, _ := ret.Get(0).([]FixResult)
	return r
}
