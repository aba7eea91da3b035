package mocks

import (
	context "context"

	domain "github.com/jsamuelsen/quotevault/internal/domain"
	mock "github.com/stretchr/testify/mock"
)

// MockQuoteProvider is an autogenerated mock type for the QuoteProvider type
type MockQuoteProvider struct {
	mock.Mock
}

type MockQuoteProvider_Expecter struct {
	mock *mock.Mock
}

func (_m *MockQuoteProvider) EXPECT() *MockQuoteProvider_Expecter {
	return &MockQuoteProvider_Expecter{mock: &_m.Mock}
}

// RandomQuote provides a mock function with given fields: ctx
func (_m *MockQuoteProvider) RandomQuote(ctx context.Context) (domain.Quote, error) {
	ret := _m.Called(ctx)

	if len(ret) == 0 {
		panic("no return value specified for RandomQuote")
	}

	var r0 domain.Quote
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context) (domain.Quote, error)); ok {
		return rf(ctx)
	}
	if rf, ok := ret.Get(0).(func(context.Context) domain.Quote); ok {
		r0 = rf(ctx)
	} else {
		r0 = ret.Get(0).(domain.Quote)
	}

	if rf, ok := ret.Get(1).(func(context.Context) error); ok {
		r1 = rf(ctx)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// MockQuoteProvider_RandomQuote_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'RandomQuote'
type MockQuoteProvider_RandomQuote_Call struct {
	*mock.Call
}

// RandomQuote is a helper method to define mock.On call
//   - ctx context.Context
func (_e *MockQuoteProvider_Expecter) RandomQuote(ctx interface{}) *MockQuoteProvider_RandomQuote_Call {
	return &MockQuoteProvider_RandomQuote_Call{Call: _e.mock.On("RandomQuote", ctx)}
}

func (_c *MockQuoteProvider_RandomQuote_Call) Run(run func(ctx context.Context)) *MockQuoteProvider_RandomQuote_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context))
	})
	return _c
}

func (_c *MockQuoteProvider_RandomQuote_Call) Return(_a0 domain.Quote, _a1 error) *MockQuoteProvider_RandomQuote_Call {
	_c.Call.Return(_a0, _a1)
	return _c
}

func (_c *MockQuoteProvider_RandomQuote_Call) RunAndReturn(run func(context.Context) (domain.Quote, error)) *MockQuoteProvider_RandomQuote_Call {
	_c.Call.Return(run)
	return _c
}

// QuotesByCategory provides a mock function with given fields: ctx, label
func (_m *MockQuoteProvider) QuotesByCategory(ctx context.Context, label string) ([]domain.Quote, error) {
	ret := _m.Called(ctx, label)

	if len(ret) == 0 {
		panic("no return value specified for QuotesByCategory")
	}

	var r0 []domain.Quote
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context, string) ([]domain.Quote, error)); ok {
		return rf(ctx, label)
	}
	if rf, ok := ret.Get(0).(func(context.Context, string) []domain.Quote); ok {
		r0 = rf(ctx, label)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).([]domain.Quote)
		}
	}

	if rf, ok := ret.Get(1).(func(context.Context, string) error); ok {
		r1 = rf(ctx, label)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// MockQuoteProvider_QuotesByCategory_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'QuotesByCategory'
type MockQuoteProvider_QuotesByCategory_Call struct {
	*mock.Call
}

// QuotesByCategory is a helper method to define mock.On call
//   - ctx context.Context
//   - label string
func (_e *MockQuoteProvider_Expecter) QuotesByCategory(ctx interface{}, label interface{}) *MockQuoteProvider_QuotesByCategory_Call {
	return &MockQuoteProvider_QuotesByCategory_Call{Call: _e.mock.On("QuotesByCategory", ctx, label)}
}

func (_c *MockQuoteProvider_QuotesByCategory_Call) Run(run func(ctx context.Context, label string)) *MockQuoteProvider_QuotesByCategory_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(string))
	})
	return _c
}

func (_c *MockQuoteProvider_QuotesByCategory_Call) Return(_a0 []domain.Quote, _a1 error) *MockQuoteProvider_QuotesByCategory_Call {
	_c.Call.Return(_a0, _a1)
	return _c
}

func (_c *MockQuoteProvider_QuotesByCategory_Call) RunAndReturn(run func(context.Context, string) ([]domain.Quote, error)) *MockQuoteProvider_QuotesByCategory_Call {
	_c.Call.Return(run)
	return _c
}

// Categories provides a mock function with given fields: ctx
func (_m *MockQuoteProvider) Categories(ctx context.Context) ([]string, error) {
	ret := _m.Called(ctx)

	if len(ret) == 0 {
		panic("no return value specified for Categories")
	}

	var r0 []string
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context) ([]string, error)); ok {
		return rf(ctx)
	}
	if rf, ok := ret.Get(0).(func(context.Context) []string); ok {
		r0 = rf(ctx)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).([]string)
		}
	}

	if rf, ok := ret.Get(1).(func(context.Context) error); ok {
		r1 = rf(ctx)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// MockQuoteProvider_Categories_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'Categories'
type MockQuoteProvider_Categories_Call struct {
	*mock.Call
}

// Categories is a helper method to define mock.On call
//   - ctx context.Context
func (_e *MockQuoteProvider_Expecter) Categories(ctx interface{}) *MockQuoteProvider_Categories_Call {
	return &MockQuoteProvider_Categories_Call{Call: _e.mock.On("Categories", ctx)}
}

func (_c *MockQuoteProvider_Categories_Call) Run(run func(ctx context.Context)) *MockQuoteProvider_Categories_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context))
	})
	return _c
}

func (_c *MockQuoteProvider_Categories_Call) Return(_a0 []string, _a1 error) *MockQuoteProvider_Categories_Call {
	_c.Call.Return(_a0, _a1)
	return _c
}

func (_c *MockQuoteProvider_Categories_Call) RunAndReturn(run func(context.Context) ([]string, error)) *MockQuoteProvider_Categories_Call {
	_c.Call.Return(run)
	return _c
}

// NewMockQuoteProvider creates a new instance of MockQuoteProvider. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
// The first argument is typically a *testing.T value.
func NewMockQuoteProvider(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockQuoteProvider {
	mock := &MockQuoteProvider{}
	mock.Mock.Test(t)

	t.Cleanup(func() { mock.AssertExpectations(t) })

	return mock
}
