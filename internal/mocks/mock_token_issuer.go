package mocks

import (
	domain "github.com/jsamuelsen/quotevault/internal/domain"
	mock "github.com/stretchr/testify/mock"
)

// MockTokenIssuer is an autogenerated mock type for the TokenIssuer type
type MockTokenIssuer struct {
	mock.Mock
}

type MockTokenIssuer_Expecter struct {
	mock *mock.Mock
}

func (_m *MockTokenIssuer) EXPECT() *MockTokenIssuer_Expecter {
	return &MockTokenIssuer_Expecter{mock: &_m.Mock}
}

// Issue provides a mock function with given fields: id
func (_m *MockTokenIssuer) Issue(id domain.Identity) (string, error) {
	ret := _m.Called(id)

	if len(ret) == 0 {
		panic("no return value specified for Issue")
	}

	var r0 string
	var r1 error
	if rf, ok := ret.Get(0).(func(domain.Identity) (string, error)); ok {
		return rf(id)
	}
	if rf, ok := ret.Get(0).(func(domain.Identity) string); ok {
		r0 = rf(id)
	} else {
		r0 = ret.Get(0).(string)
	}

	if rf, ok := ret.Get(1).(func(domain.Identity) error); ok {
		r1 = rf(id)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// MockTokenIssuer_Issue_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'Issue'
type MockTokenIssuer_Issue_Call struct {
	*mock.Call
}

// Issue is a helper method to define mock.On call
//   - id domain.Identity
func (_e *MockTokenIssuer_Expecter) Issue(id interface{}) *MockTokenIssuer_Issue_Call {
	return &MockTokenIssuer_Issue_Call{Call: _e.mock.On("Issue", id)}
}

func (_c *MockTokenIssuer_Issue_Call) Run(run func(id domain.Identity)) *MockTokenIssuer_Issue_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(domain.Identity))
	})
	return _c
}

func (_c *MockTokenIssuer_Issue_Call) Return(_a0 string, _a1 error) *MockTokenIssuer_Issue_Call {
	_c.Call.Return(_a0, _a1)
	return _c
}

func (_c *MockTokenIssuer_Issue_Call) RunAndReturn(run func(domain.Identity) (string, error)) *MockTokenIssuer_Issue_Call {
	_c.Call.Return(run)
	return _c
}

// Verify provides a mock function with given fields: token
func (_m *MockTokenIssuer) Verify(token string) (domain.Identity, error) {
	ret := _m.Called(token)

	if len(ret) == 0 {
		panic("no return value specified for Verify")
	}

	var r0 domain.Identity
	var r1 error
	if rf, ok := ret.Get(0).(func(string) (domain.Identity, error)); ok {
		return rf(token)
	}
	if rf, ok := ret.Get(0).(func(string) domain.Identity); ok {
		r0 = rf(token)
	} else {
		r0 = ret.Get(0).(domain.Identity)
	}

	if rf, ok := ret.Get(1).(func(string) error); ok {
		r1 = rf(token)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// MockTokenIssuer_Verify_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'Verify'
type MockTokenIssuer_Verify_Call struct {
	*mock.Call
}

// Verify is a helper method to define mock.On call
//   - token string
func (_e *MockTokenIssuer_Expecter) Verify(token interface{}) *MockTokenIssuer_Verify_Call {
	return &MockTokenIssuer_Verify_Call{Call: _e.mock.On("Verify", token)}
}

func (_c *MockTokenIssuer_Verify_Call) Run(run func(token string)) *MockTokenIssuer_Verify_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(string))
	})
	return _c
}

func (_c *MockTokenIssuer_Verify_Call) Return(_a0 domain.Identity, _a1 error) *MockTokenIssuer_Verify_Call {
	_c.Call.Return(_a0, _a1)
	return _c
}

func (_c *MockTokenIssuer_Verify_Call) RunAndReturn(run func(string) (domain.Identity, error)) *MockTokenIssuer_Verify_Call {
	_c.Call.Return(run)
	return _c
}

// NewMockTokenIssuer creates a new instance of MockTokenIssuer. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
// The first argument is typically a *testing.T value.
func NewMockTokenIssuer(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockTokenIssuer {
	mock := &MockTokenIssuer{}
	mock.Mock.Test(t)

	t.Cleanup(func() { mock.AssertExpectations(t) })

	return mock
}
