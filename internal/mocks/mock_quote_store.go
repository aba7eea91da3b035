package mocks

import (
	context "context"

	domain "github.com/jsamuelsen/quotevault/internal/domain"
	mock "github.com/stretchr/testify/mock"
)

// MockQuoteStore is an autogenerated mock type for the QuoteStore type
type MockQuoteStore struct {
	mock.Mock
}

type MockQuoteStore_Expecter struct {
	mock *mock.Mock
}

func (_m *MockQuoteStore) EXPECT() *MockQuoteStore_Expecter {
	return &MockQuoteStore_Expecter{mock: &_m.Mock}
}

// AddUserQuote provides a mock function with given fields: ctx, q
func (_m *MockQuoteStore) AddUserQuote(ctx context.Context, q domain.Quote) domain.Quote {
	ret := _m.Called(ctx, q)

	if len(ret) == 0 {
		panic("no return value specified for AddUserQuote")
	}

	var r0 domain.Quote
	if rf, ok := ret.Get(0).(func(context.Context, domain.Quote) domain.Quote); ok {
		r0 = rf(ctx, q)
	} else {
		r0 = ret.Get(0).(domain.Quote)
	}

	return r0
}

// MockQuoteStore_AddUserQuote_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'AddUserQuote'
type MockQuoteStore_AddUserQuote_Call struct {
	*mock.Call
}

// AddUserQuote is a helper method to define mock.On call
//   - ctx context.Context
//   - q domain.Quote
func (_e *MockQuoteStore_Expecter) AddUserQuote(ctx interface{}, q interface{}) *MockQuoteStore_AddUserQuote_Call {
	return &MockQuoteStore_AddUserQuote_Call{Call: _e.mock.On("AddUserQuote", ctx, q)}
}

func (_c *MockQuoteStore_AddUserQuote_Call) Run(run func(ctx context.Context, q domain.Quote)) *MockQuoteStore_AddUserQuote_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(domain.Quote))
	})
	return _c
}

func (_c *MockQuoteStore_AddUserQuote_Call) Return(_a0 domain.Quote) *MockQuoteStore_AddUserQuote_Call {
	_c.Call.Return(_a0)
	return _c
}

func (_c *MockQuoteStore_AddUserQuote_Call) RunAndReturn(run func(context.Context, domain.Quote) domain.Quote) *MockQuoteStore_AddUserQuote_Call {
	_c.Call.Return(run)
	return _c
}

// GetByCategory provides a mock function with given fields: ctx, label
func (_m *MockQuoteStore) GetByCategory(ctx context.Context, label string) []domain.Quote {
	ret := _m.Called(ctx, label)

	if len(ret) == 0 {
		panic("no return value specified for GetByCategory")
	}

	var r0 []domain.Quote
	if rf, ok := ret.Get(0).(func(context.Context, string) []domain.Quote); ok {
		r0 = rf(ctx, label)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).([]domain.Quote)
		}
	}

	return r0
}

// MockQuoteStore_GetByCategory_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'GetByCategory'
type MockQuoteStore_GetByCategory_Call struct {
	*mock.Call
}

// GetByCategory is a helper method to define mock.On call
//   - ctx context.Context
//   - label string
func (_e *MockQuoteStore_Expecter) GetByCategory(ctx interface{}, label interface{}) *MockQuoteStore_GetByCategory_Call {
	return &MockQuoteStore_GetByCategory_Call{Call: _e.mock.On("GetByCategory", ctx, label)}
}

func (_c *MockQuoteStore_GetByCategory_Call) Run(run func(ctx context.Context, label string)) *MockQuoteStore_GetByCategory_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(string))
	})
	return _c
}

func (_c *MockQuoteStore_GetByCategory_Call) Return(_a0 []domain.Quote) *MockQuoteStore_GetByCategory_Call {
	_c.Call.Return(_a0)
	return _c
}

func (_c *MockQuoteStore_GetByCategory_Call) RunAndReturn(run func(context.Context, string) []domain.Quote) *MockQuoteStore_GetByCategory_Call {
	_c.Call.Return(run)
	return _c
}

// GetRandom provides a mock function with given fields: ctx
func (_m *MockQuoteStore) GetRandom(ctx context.Context) domain.Quote {
	ret := _m.Called(ctx)

	if len(ret) == 0 {
		panic("no return value specified for GetRandom")
	}

	var r0 domain.Quote
	if rf, ok := ret.Get(0).(func(context.Context) domain.Quote); ok {
		r0 = rf(ctx)
	} else {
		r0 = ret.Get(0).(domain.Quote)
	}

	return r0
}

// MockQuoteStore_GetRandom_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'GetRandom'
type MockQuoteStore_GetRandom_Call struct {
	*mock.Call
}

// GetRandom is a helper method to define mock.On call
//   - ctx context.Context
func (_e *MockQuoteStore_Expecter) GetRandom(ctx interface{}) *MockQuoteStore_GetRandom_Call {
	return &MockQuoteStore_GetRandom_Call{Call: _e.mock.On("GetRandom", ctx)}
}

func (_c *MockQuoteStore_GetRandom_Call) Run(run func(ctx context.Context)) *MockQuoteStore_GetRandom_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context))
	})
	return _c
}

func (_c *MockQuoteStore_GetRandom_Call) Return(_a0 domain.Quote) *MockQuoteStore_GetRandom_Call {
	_c.Call.Return(_a0)
	return _c
}

func (_c *MockQuoteStore_GetRandom_Call) RunAndReturn(run func(context.Context) domain.Quote) *MockQuoteStore_GetRandom_Call {
	_c.Call.Return(run)
	return _c
}

// ListCategories provides a mock function with given fields: ctx
func (_m *MockQuoteStore) ListCategories(ctx context.Context) []string {
	ret := _m.Called(ctx)

	if len(ret) == 0 {
		panic("no return value specified for ListCategories")
	}

	var r0 []string
	if rf, ok := ret.Get(0).(func(context.Context) []string); ok {
		r0 = rf(ctx)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).([]string)
		}
	}

	return r0
}

// MockQuoteStore_ListCategories_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'ListCategories'
type MockQuoteStore_ListCategories_Call struct {
	*mock.Call
}

// ListCategories is a helper method to define mock.On call
//   - ctx context.Context
func (_e *MockQuoteStore_Expecter) ListCategories(ctx interface{}) *MockQuoteStore_ListCategories_Call {
	return &MockQuoteStore_ListCategories_Call{Call: _e.mock.On("ListCategories", ctx)}
}

func (_c *MockQuoteStore_ListCategories_Call) Run(run func(ctx context.Context)) *MockQuoteStore_ListCategories_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context))
	})
	return _c
}

func (_c *MockQuoteStore_ListCategories_Call) Return(_a0 []string) *MockQuoteStore_ListCategories_Call {
	_c.Call.Return(_a0)
	return _c
}

func (_c *MockQuoteStore_ListCategories_Call) RunAndReturn(run func(context.Context) []string) *MockQuoteStore_ListCategories_Call {
	_c.Call.Return(run)
	return _c
}

// Merge provides a mock function with given fields: ctx, quotes, label
func (_m *MockQuoteStore) Merge(ctx context.Context, quotes []domain.Quote, label string) {
	_m.Called(ctx, quotes, label)
}

// MockQuoteStore_Merge_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'Merge'
type MockQuoteStore_Merge_Call struct {
	*mock.Call
}

// Merge is a helper method to define mock.On call
//   - ctx context.Context
//   - quotes []domain.Quote
//   - label string
func (_e *MockQuoteStore_Expecter) Merge(ctx interface{}, quotes interface{}, label interface{}) *MockQuoteStore_Merge_Call {
	return &MockQuoteStore_Merge_Call{Call: _e.mock.On("Merge", ctx, quotes, label)}
}

func (_c *MockQuoteStore_Merge_Call) Run(run func(ctx context.Context, quotes []domain.Quote, label string)) *MockQuoteStore_Merge_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].([]domain.Quote), args[2].(string))
	})
	return _c
}

func (_c *MockQuoteStore_Merge_Call) Return() *MockQuoteStore_Merge_Call {
	_c.Call.Return()
	return _c
}

func (_c *MockQuoteStore_Merge_Call) RunAndReturn(run func(context.Context, []domain.Quote, string)) *MockQuoteStore_Merge_Call {
	_c.Run(run)
	return _c
}

// NewMockQuoteStore creates a new instance of MockQuoteStore. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
// The first argument is typically a *testing.T value.
func NewMockQuoteStore(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockQuoteStore {
	mock := &MockQuoteStore{}
	mock.Mock.Test(t)

	t.Cleanup(func() { mock.AssertExpectations(t) })

	return mock
}
