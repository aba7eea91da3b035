package mocks

import (
	context "context"

	domain "github.com/jsamuelsen/quotevault/internal/domain"
	mock "github.com/stretchr/testify/mock"
)

// MockAccountStore is an autogenerated mock type for the AccountStore type
type MockAccountStore struct {
	mock.Mock
}

type MockAccountStore_Expecter struct {
	mock *mock.Mock
}

func (_m *MockAccountStore) EXPECT() *MockAccountStore_Expecter {
	return &MockAccountStore_Expecter{mock: &_m.Mock}
}

// AddFavorite provides a mock function with given fields: ctx, userID, q
func (_m *MockAccountStore) AddFavorite(ctx context.Context, userID int64, q domain.Quote) ([]domain.Quote, error) {
	ret := _m.Called(ctx, userID, q)

	if len(ret) == 0 {
		panic("no return value specified for AddFavorite")
	}

	var r0 []domain.Quote
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context, int64, domain.Quote) ([]domain.Quote, error)); ok {
		return rf(ctx, userID, q)
	}
	if rf, ok := ret.Get(0).(func(context.Context, int64, domain.Quote) []domain.Quote); ok {
		r0 = rf(ctx, userID, q)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).([]domain.Quote)
		}
	}

	if rf, ok := ret.Get(1).(func(context.Context, int64, domain.Quote) error); ok {
		r1 = rf(ctx, userID, q)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// MockAccountStore_AddFavorite_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'AddFavorite'
type MockAccountStore_AddFavorite_Call struct {
	*mock.Call
}

// AddFavorite is a helper method to define mock.On call
//   - ctx context.Context
//   - userID int64
//   - q domain.Quote
func (_e *MockAccountStore_Expecter) AddFavorite(ctx interface{}, userID interface{}, q interface{}) *MockAccountStore_AddFavorite_Call {
	return &MockAccountStore_AddFavorite_Call{Call: _e.mock.On("AddFavorite", ctx, userID, q)}
}

func (_c *MockAccountStore_AddFavorite_Call) Run(run func(ctx context.Context, userID int64, q domain.Quote)) *MockAccountStore_AddFavorite_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(int64), args[2].(domain.Quote))
	})
	return _c
}

func (_c *MockAccountStore_AddFavorite_Call) Return(_a0 []domain.Quote, _a1 error) *MockAccountStore_AddFavorite_Call {
	_c.Call.Return(_a0, _a1)
	return _c
}

func (_c *MockAccountStore_AddFavorite_Call) RunAndReturn(run func(context.Context, int64, domain.Quote) ([]domain.Quote, error)) *MockAccountStore_AddFavorite_Call {
	_c.Call.Return(run)
	return _c
}

// Authenticate provides a mock function with given fields: ctx, email, password
func (_m *MockAccountStore) Authenticate(ctx context.Context, email string, password string) (domain.User, error) {
	ret := _m.Called(ctx, email, password)

	if len(ret) == 0 {
		panic("no return value specified for Authenticate")
	}

	var r0 domain.User
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context, string, string) (domain.User, error)); ok {
		return rf(ctx, email, password)
	}
	if rf, ok := ret.Get(0).(func(context.Context, string, string) domain.User); ok {
		r0 = rf(ctx, email, password)
	} else {
		r0 = ret.Get(0).(domain.User)
	}

	if rf, ok := ret.Get(1).(func(context.Context, string, string) error); ok {
		r1 = rf(ctx, email, password)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// MockAccountStore_Authenticate_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'Authenticate'
type MockAccountStore_Authenticate_Call struct {
	*mock.Call
}

// Authenticate is a helper method to define mock.On call
//   - ctx context.Context
//   - email string
//   - password string
func (_e *MockAccountStore_Expecter) Authenticate(ctx interface{}, email interface{}, password interface{}) *MockAccountStore_Authenticate_Call {
	return &MockAccountStore_Authenticate_Call{Call: _e.mock.On("Authenticate", ctx, email, password)}
}

func (_c *MockAccountStore_Authenticate_Call) Run(run func(ctx context.Context, email string, password string)) *MockAccountStore_Authenticate_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(string), args[2].(string))
	})
	return _c
}

func (_c *MockAccountStore_Authenticate_Call) Return(_a0 domain.User, _a1 error) *MockAccountStore_Authenticate_Call {
	_c.Call.Return(_a0, _a1)
	return _c
}

func (_c *MockAccountStore_Authenticate_Call) RunAndReturn(run func(context.Context, string, string) (domain.User, error)) *MockAccountStore_Authenticate_Call {
	_c.Call.Return(run)
	return _c
}

// GetByID provides a mock function with given fields: ctx, id
func (_m *MockAccountStore) GetByID(ctx context.Context, id int64) (domain.User, error) {
	ret := _m.Called(ctx, id)

	if len(ret) == 0 {
		panic("no return value specified for GetByID")
	}

	var r0 domain.User
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context, int64) (domain.User, error)); ok {
		return rf(ctx, id)
	}
	if rf, ok := ret.Get(0).(func(context.Context, int64) domain.User); ok {
		r0 = rf(ctx, id)
	} else {
		r0 = ret.Get(0).(domain.User)
	}

	if rf, ok := ret.Get(1).(func(context.Context, int64) error); ok {
		r1 = rf(ctx, id)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// MockAccountStore_GetByID_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'GetByID'
type MockAccountStore_GetByID_Call struct {
	*mock.Call
}

// GetByID is a helper method to define mock.On call
//   - ctx context.Context
//   - id int64
func (_e *MockAccountStore_Expecter) GetByID(ctx interface{}, id interface{}) *MockAccountStore_GetByID_Call {
	return &MockAccountStore_GetByID_Call{Call: _e.mock.On("GetByID", ctx, id)}
}

func (_c *MockAccountStore_GetByID_Call) Run(run func(ctx context.Context, id int64)) *MockAccountStore_GetByID_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(int64))
	})
	return _c
}

func (_c *MockAccountStore_GetByID_Call) Return(_a0 domain.User, _a1 error) *MockAccountStore_GetByID_Call {
	_c.Call.Return(_a0, _a1)
	return _c
}

func (_c *MockAccountStore_GetByID_Call) RunAndReturn(run func(context.Context, int64) (domain.User, error)) *MockAccountStore_GetByID_Call {
	_c.Call.Return(run)
	return _c
}

// GetFavorites provides a mock function with given fields: ctx, userID
func (_m *MockAccountStore) GetFavorites(ctx context.Context, userID int64) ([]domain.Quote, error) {
	ret := _m.Called(ctx, userID)

	if len(ret) == 0 {
		panic("no return value specified for GetFavorites")
	}

	var r0 []domain.Quote
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context, int64) ([]domain.Quote, error)); ok {
		return rf(ctx, userID)
	}
	if rf, ok := ret.Get(0).(func(context.Context, int64) []domain.Quote); ok {
		r0 = rf(ctx, userID)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).([]domain.Quote)
		}
	}

	if rf, ok := ret.Get(1).(func(context.Context, int64) error); ok {
		r1 = rf(ctx, userID)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// MockAccountStore_GetFavorites_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'GetFavorites'
type MockAccountStore_GetFavorites_Call struct {
	*mock.Call
}

// GetFavorites is a helper method to define mock.On call
//   - ctx context.Context
//   - userID int64
func (_e *MockAccountStore_Expecter) GetFavorites(ctx interface{}, userID interface{}) *MockAccountStore_GetFavorites_Call {
	return &MockAccountStore_GetFavorites_Call{Call: _e.mock.On("GetFavorites", ctx, userID)}
}

func (_c *MockAccountStore_GetFavorites_Call) Run(run func(ctx context.Context, userID int64)) *MockAccountStore_GetFavorites_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(int64))
	})
	return _c
}

func (_c *MockAccountStore_GetFavorites_Call) Return(_a0 []domain.Quote, _a1 error) *MockAccountStore_GetFavorites_Call {
	_c.Call.Return(_a0, _a1)
	return _c
}

func (_c *MockAccountStore_GetFavorites_Call) RunAndReturn(run func(context.Context, int64) ([]domain.Quote, error)) *MockAccountStore_GetFavorites_Call {
	_c.Call.Return(run)
	return _c
}

// Register provides a mock function with given fields: ctx, username, email, password
func (_m *MockAccountStore) Register(ctx context.Context, username string, email string, password string) (domain.User, error) {
	ret := _m.Called(ctx, username, email, password)

	if len(ret) == 0 {
		panic("no return value specified for Register")
	}

	var r0 domain.User
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context, string, string, string) (domain.User, error)); ok {
		return rf(ctx, username, email, password)
	}
	if rf, ok := ret.Get(0).(func(context.Context, string, string, string) domain.User); ok {
		r0 = rf(ctx, username, email, password)
	} else {
		r0 = ret.Get(0).(domain.User)
	}

	if rf, ok := ret.Get(1).(func(context.Context, string, string, string) error); ok {
		r1 = rf(ctx, username, email, password)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// MockAccountStore_Register_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'Register'
type MockAccountStore_Register_Call struct {
	*mock.Call
}

// Register is a helper method to define mock.On call
//   - ctx context.Context
//   - username string
//   - email string
//   - password string
func (_e *MockAccountStore_Expecter) Register(ctx interface{}, username interface{}, email interface{}, password interface{}) *MockAccountStore_Register_Call {
	return &MockAccountStore_Register_Call{Call: _e.mock.On("Register", ctx, username, email, password)}
}

func (_c *MockAccountStore_Register_Call) Run(run func(ctx context.Context, username string, email string, password string)) *MockAccountStore_Register_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(string), args[2].(string), args[3].(string))
	})
	return _c
}

func (_c *MockAccountStore_Register_Call) Return(_a0 domain.User, _a1 error) *MockAccountStore_Register_Call {
	_c.Call.Return(_a0, _a1)
	return _c
}

func (_c *MockAccountStore_Register_Call) RunAndReturn(run func(context.Context, string, string, string) (domain.User, error)) *MockAccountStore_Register_Call {
	_c.Call.Return(run)
	return _c
}

// RemoveFavorite provides a mock function with given fields: ctx, userID, key
func (_m *MockAccountStore) RemoveFavorite(ctx context.Context, userID int64, key domain.QuoteKey) ([]domain.Quote, error) {
	ret := _m.Called(ctx, userID, key)

	if len(ret) == 0 {
		panic("no return value specified for RemoveFavorite")
	}

	var r0 []domain.Quote
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context, int64, domain.QuoteKey) ([]domain.Quote, error)); ok {
		return rf(ctx, userID, key)
	}
	if rf, ok := ret.Get(0).(func(context.Context, int64, domain.QuoteKey) []domain.Quote); ok {
		r0 = rf(ctx, userID, key)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).([]domain.Quote)
		}
	}

	if rf, ok := ret.Get(1).(func(context.Context, int64, domain.QuoteKey) error); ok {
		r1 = rf(ctx, userID, key)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// MockAccountStore_RemoveFavorite_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'RemoveFavorite'
type MockAccountStore_RemoveFavorite_Call struct {
	*mock.Call
}

// RemoveFavorite is a helper method to define mock.On call
//   - ctx context.Context
//   - userID int64
//   - key domain.QuoteKey
func (_e *MockAccountStore_Expecter) RemoveFavorite(ctx interface{}, userID interface{}, key interface{}) *MockAccountStore_RemoveFavorite_Call {
	return &MockAccountStore_RemoveFavorite_Call{Call: _e.mock.On("RemoveFavorite", ctx, userID, key)}
}

func (_c *MockAccountStore_RemoveFavorite_Call) Run(run func(ctx context.Context, userID int64, key domain.QuoteKey)) *MockAccountStore_RemoveFavorite_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(int64), args[2].(domain.QuoteKey))
	})
	return _c
}

func (_c *MockAccountStore_RemoveFavorite_Call) Return(_a0 []domain.Quote, _a1 error) *MockAccountStore_RemoveFavorite_Call {
	_c.Call.Return(_a0, _a1)
	return _c
}

func (_c *MockAccountStore_RemoveFavorite_Call) RunAndReturn(run func(context.Context, int64, domain.QuoteKey) ([]domain.Quote, error)) *MockAccountStore_RemoveFavorite_Call {
	_c.Call.Return(run)
	return _c
}

// NewMockAccountStore creates a new instance of MockAccountStore. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
// The first argument is typically a *testing.T value.
func NewMockAccountStore(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockAccountStore {
	mock := &MockAccountStore{}
	mock.Mock.Test(t)

	t.Cleanup(func() { mock.AssertExpectations(t) })

	return mock
}
