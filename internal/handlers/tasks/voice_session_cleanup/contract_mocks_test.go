// Code generated by MockGen. DO NOT EDIT.
// Source: contract.go
//
// Generated by this command:
//
//	mockgen -source=contract.go -destination=./contract_mocks_test.go -package=voice_session_cleanup_test
//

// Package voice_session_cleanup_test is a generated GoMock package.
package voice_session_cleanup_test

import (
	context "context"
	logger "dinner-service/pkg/logger"
	reflect "reflect"
	time "time"

	gomock "go.uber.org/mock/gomock"
)

// MocktaskLogger is a mock of taskLogger interface.
type MocktaskLogger struct {
	ctrl     *gomock.Controller
	recorder *MocktaskLoggerMockRecorder
	isgomock struct{}
}

// MocktaskLoggerMockRecorder is the mock recorder for MocktaskLogger.
type MocktaskLoggerMockRecorder struct {
	mock *MocktaskLogger
}

// NewMocktaskLogger creates a new mock instance.
func NewMocktaskLogger(ctrl *gomock.Controller) *MocktaskLogger {
	mock := &MocktaskLogger{ctrl: ctrl}
	mock.recorder = &MocktaskLoggerMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MocktaskLogger) EXPECT() *MocktaskLoggerMockRecorder {
	return m.recorder
}

// Debug mocks base method.
func (m *MocktaskLogger) Debug(msg string, fields ...logger.Field) {
	m.ctrl.T.Helper()
	varargs := []any{msg}
	for _, a := range fields {
		varargs = append(varargs, a)
	}
	m.ctrl.Call(m, "Debug", varargs...)
}

// Debug indicates an expected call of Debug.
func (mr *MocktaskLoggerMockRecorder) Debug(msg any, fields ...any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	varargs := append([]any{msg}, fields...)
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Debug", reflect.TypeOf((*MocktaskLogger)(nil).Debug), varargs...)
}

// Error mocks base method.
func (m *MocktaskLogger) Error(msg string, fields ...logger.Field) {
	m.ctrl.T.Helper()
	varargs := []any{msg}
	for _, a := range fields {
		varargs = append(varargs, a)
	}
	m.ctrl.Call(m, "Error", varargs...)
}

// Error indicates an expected call of Error.
func (mr *MocktaskLoggerMockRecorder) Error(msg any, fields ...any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	varargs := append([]any{msg}, fields...)
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Error", reflect.TypeOf((*MocktaskLogger)(nil).Error), varargs...)
}

// Info mocks base method.
func (m *MocktaskLogger) Info(msg string, fields ...logger.Field) {
	m.ctrl.T.Helper()
	varargs := []any{msg}
	for _, a := range fields {
		varargs = append(varargs, a)
	}
	m.ctrl.Call(m, "Info", varargs...)
}

// Info indicates an expected call of Info.
func (mr *MocktaskLoggerMockRecorder) Info(msg any, fields ...any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	varargs := append([]any{msg}, fields...)
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Info", reflect.TypeOf((*MocktaskLogger)(nil).Info), varargs...)
}

// Warn mocks base method.
func (m *MocktaskLogger) Warn(msg string, fields ...logger.Field) {
	m.ctrl.T.Helper()
	varargs := []any{msg}
	for _, a := range fields {
		varargs = append(varargs, a)
	}
	m.ctrl.Call(m, "Warn", varargs...)
}

// Warn indicates an expected call of Warn.
func (mr *MocktaskLoggerMockRecorder) Warn(msg any, fields ...any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	varargs := append([]any{msg}, fields...)
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Warn", reflect.TypeOf((*MocktaskLogger)(nil).Warn), varargs...)
}

// With mocks base method.
func (m *MocktaskLogger) With(fields ...logger.Field) logger.Logger {
	m.ctrl.T.Helper()
	varargs := []any{}
	for _, a := range fields {
		varargs = append(varargs, a)
	}
	ret := m.ctrl.Call(m, "With", varargs...)
	ret0, _ := ret[0].(logger.Logger)
	return ret0
}

// With indicates an expected call of With.
func (mr *MocktaskLoggerMockRecorder) With(fields ...any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "With", reflect.TypeOf((*MocktaskLogger)(nil).With), fields...)
}

// MockService is a mock of Service interface.
type MockService struct {
	ctrl     *gomock.Controller
	recorder *MockServiceMockRecorder
	isgomock struct{}
}

// MockServiceMockRecorder is the mock recorder for MockService.
type MockServiceMockRecorder struct {
	mock *MockService
}

// NewMockService creates a new mock instance.
func NewMockService(ctrl *gomock.Controller) *MockService {
	mock := &MockService{ctrl: ctrl}
	mock.recorder = &MockServiceMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockService) EXPECT() *MockServiceMockRecorder {
	return m.recorder
}

// EvictIdle mocks base method.
func (m *MockService) EvictIdle(ctx context.Context, now time.Time) (int, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "EvictIdle", ctx, now)
	ret0, _ := ret[0].(int)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// EvictIdle indicates an expected call of EvictIdle.
func (mr *MockServiceMockRecorder) EvictIdle(ctx, now any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "EvictIdle", reflect.TypeOf((*MockService)(nil).EvictIdle), ctx, now)
}

// MockSessionCounter is a mock of SessionCounter interface.
type MockSessionCounter struct {
	ctrl     *gomock.Controller
	recorder *MockSessionCounterMockRecorder
	isgomock struct{}
}

// MockSessionCounterMockRecorder is the mock recorder for MockSessionCounter.
type MockSessionCounterMockRecorder struct {
	mock *MockSessionCounter
}

// NewMockSessionCounter creates a new mock instance.
func NewMockSessionCounter(ctrl *gomock.Controller) *MockSessionCounter {
	mock := &MockSessionCounter{ctrl: ctrl}
	mock.recorder = &MockSessionCounterMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockSessionCounter) EXPECT() *MockSessionCounterMockRecorder {
	return m.recorder
}

// Len mocks base method.
func (m *MockSessionCounter) Len() int {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Len")
	ret0, _ := ret[0].(int)
	return ret0
}

// Len indicates an expected call of Len.
func (mr *MockSessionCounterMockRecorder) Len() *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Len", reflect.TypeOf((*MockSessionCounter)(nil).Len))
}
