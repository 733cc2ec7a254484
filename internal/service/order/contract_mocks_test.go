// Code generated by MockGen. DO NOT EDIT.
// Source: contract.go
//
// Generated by this command:
//
//	mockgen -source=contract.go -destination=./contract_mocks_test.go -package=order_test
//

// Package order_test is a generated GoMock package.
package order_test

import (
	context "context"
	entities "dinner-service/internal/entities"
	logger "dinner-service/pkg/logger"
	reflect "reflect"
	time "time"

	gomock "go.uber.org/mock/gomock"
)

// MockDinnerGateway is a mock of DinnerGateway interface.
type MockDinnerGateway struct {
	ctrl     *gomock.Controller
	recorder *MockDinnerGatewayMockRecorder
	isgomock struct{}
}

// MockDinnerGatewayMockRecorder is the mock recorder for MockDinnerGateway.
type MockDinnerGatewayMockRecorder struct {
	mock *MockDinnerGateway
}

// NewMockDinnerGateway creates a new mock instance.
func NewMockDinnerGateway(ctrl *gomock.Controller) *MockDinnerGateway {
	mock := &MockDinnerGateway{ctrl: ctrl}
	mock.recorder = &MockDinnerGatewayMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockDinnerGateway) EXPECT() *MockDinnerGatewayMockRecorder {
	return m.recorder
}

// CancelOrder mocks base method.
func (m *MockDinnerGateway) CancelOrder(ctx context.Context, session entities.Session, orderID int64) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "CancelOrder", ctx, session, orderID)
	ret0, _ := ret[0].(error)
	return ret0
}

// CancelOrder indicates an expected call of CancelOrder.
func (mr *MockDinnerGatewayMockRecorder) CancelOrder(ctx, session, orderID any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "CancelOrder", reflect.TypeOf((*MockDinnerGateway)(nil).CancelOrder), ctx, session, orderID)
}

// CreateChangeRequest mocks base method.
func (m *MockDinnerGateway) CreateChangeRequest(ctx context.Context, session entities.Session, modify entities.ChangeRequestModify) (*entities.ChangeRequest, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "CreateChangeRequest", ctx, session, modify)
	ret0, _ := ret[0].(*entities.ChangeRequest)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// CreateChangeRequest indicates an expected call of CreateChangeRequest.
func (mr *MockDinnerGatewayMockRecorder) CreateChangeRequest(ctx, session, modify any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "CreateChangeRequest", reflect.TypeOf((*MockDinnerGateway)(nil).CreateChangeRequest), ctx, session, modify)
}

// GetOrder mocks base method.
func (m *MockDinnerGateway) GetOrder(ctx context.Context, session entities.Session, orderID int64) (*entities.Order, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetOrder", ctx, session, orderID)
	ret0, _ := ret[0].(*entities.Order)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// GetOrder indicates an expected call of GetOrder.
func (mr *MockDinnerGatewayMockRecorder) GetOrder(ctx, session, orderID any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetOrder", reflect.TypeOf((*MockDinnerGateway)(nil).GetOrder), ctx, session, orderID)
}

// ListChangeRequests mocks base method.
func (m *MockDinnerGateway) ListChangeRequests(ctx context.Context, session entities.Session, orderID int64) ([]entities.ChangeRequest, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "ListChangeRequests", ctx, session, orderID)
	ret0, _ := ret[0].([]entities.ChangeRequest)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// ListChangeRequests indicates an expected call of ListChangeRequests.
func (mr *MockDinnerGatewayMockRecorder) ListChangeRequests(ctx, session, orderID any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "ListChangeRequests", reflect.TypeOf((*MockDinnerGateway)(nil).ListChangeRequests), ctx, session, orderID)
}

// ListOrders mocks base method.
func (m *MockDinnerGateway) ListOrders(ctx context.Context, session entities.Session) ([]entities.Order, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "ListOrders", ctx, session)
	ret0, _ := ret[0].([]entities.Order)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// ListOrders indicates an expected call of ListOrders.
func (mr *MockDinnerGatewayMockRecorder) ListOrders(ctx, session any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "ListOrders", reflect.TypeOf((*MockDinnerGateway)(nil).ListOrders), ctx, session)
}

// MockEngine is a mock of Engine interface.
type MockEngine struct {
	ctrl     *gomock.Controller
	recorder *MockEngineMockRecorder
	isgomock struct{}
}

// MockEngineMockRecorder is the mock recorder for MockEngine.
type MockEngineMockRecorder struct {
	mock *MockEngine
}

// NewMockEngine creates a new mock instance.
func NewMockEngine(ctrl *gomock.Controller) *MockEngine {
	mock := &MockEngine{ctrl: ctrl}
	mock.recorder = &MockEngineMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockEngine) EXPECT() *MockEngineMockRecorder {
	return m.recorder
}

// CanCancel mocks base method.
func (m *MockEngine) CanCancel(order entities.Order) bool {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "CanCancel", order)
	ret0, _ := ret[0].(bool)
	return ret0
}

// CanCancel indicates an expected call of CanCancel.
func (mr *MockEngineMockRecorder) CanCancel(order any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "CanCancel", reflect.TypeOf((*MockEngine)(nil).CanCancel), order)
}

// CanModify mocks base method.
func (m *MockEngine) CanModify(order entities.Order, now time.Time) bool {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "CanModify", order, now)
	ret0, _ := ret[0].(bool)
	return ret0
}

// CanModify indicates an expected call of CanModify.
func (mr *MockEngineMockRecorder) CanModify(order, now any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "CanModify", reflect.TypeOf((*MockEngine)(nil).CanModify), order, now)
}

// Evaluate mocks base method.
func (m *MockEngine) Evaluate(order entities.Order, now time.Time) (entities.Eligibility, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Evaluate", order, now)
	ret0, _ := ret[0].(entities.Eligibility)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// Evaluate indicates an expected call of Evaluate.
func (mr *MockEngineMockRecorder) Evaluate(order, now any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Evaluate", reflect.TypeOf((*MockEngine)(nil).Evaluate), order, now)
}

// ModificationWindow mocks base method.
func (m *MockEngine) ModificationWindow(order entities.Order, now time.Time) entities.ModificationWindow {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "ModificationWindow", order, now)
	ret0, _ := ret[0].(entities.ModificationWindow)
	return ret0
}

// ModificationWindow indicates an expected call of ModificationWindow.
func (mr *MockEngineMockRecorder) ModificationWindow(order, now any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "ModificationWindow", reflect.TypeOf((*MockEngine)(nil).ModificationWindow), order, now)
}

// PendingApprovalCount mocks base method.
func (m *MockEngine) PendingApprovalCount(orders []entities.Order) int {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "PendingApprovalCount", orders)
	ret0, _ := ret[0].(int)
	return ret0
}

// PendingApprovalCount indicates an expected call of PendingApprovalCount.
func (mr *MockEngineMockRecorder) PendingApprovalCount(orders any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "PendingApprovalCount", reflect.TypeOf((*MockEngine)(nil).PendingApprovalCount), orders)
}

// QuoteCancellation mocks base method.
func (m *MockEngine) QuoteCancellation(order entities.Order, now time.Time) (entities.CancellationQuote, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "QuoteCancellation", order, now)
	ret0, _ := ret[0].(entities.CancellationQuote)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// QuoteCancellation indicates an expected call of QuoteCancellation.
func (mr *MockEngineMockRecorder) QuoteCancellation(order, now any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "QuoteCancellation", reflect.TypeOf((*MockEngine)(nil).QuoteCancellation), order, now)
}

// MockNotifier is a mock of Notifier interface.
type MockNotifier struct {
	ctrl     *gomock.Controller
	recorder *MockNotifierMockRecorder
	isgomock struct{}
}

// MockNotifierMockRecorder is the mock recorder for MockNotifier.
type MockNotifierMockRecorder struct {
	mock *MockNotifier
}

// NewMockNotifier creates a new mock instance.
func NewMockNotifier(ctrl *gomock.Controller) *MockNotifier {
	mock := &MockNotifier{ctrl: ctrl}
	mock.recorder = &MockNotifierMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockNotifier) EXPECT() *MockNotifierMockRecorder {
	return m.recorder
}

// NotifyCancelled mocks base method.
func (m *MockNotifier) NotifyCancelled(ctx context.Context, order entities.Order, quote entities.CancellationQuote, at time.Time) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "NotifyCancelled", ctx, order, quote, at)
	ret0, _ := ret[0].(error)
	return ret0
}

// NotifyCancelled indicates an expected call of NotifyCancelled.
func (mr *MockNotifierMockRecorder) NotifyCancelled(ctx, order, quote, at any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "NotifyCancelled", reflect.TypeOf((*MockNotifier)(nil).NotifyCancelled), ctx, order, quote, at)
}

// MockserviceLogger is a mock of serviceLogger interface.
type MockserviceLogger struct {
	ctrl     *gomock.Controller
	recorder *MockserviceLoggerMockRecorder
	isgomock struct{}
}

// MockserviceLoggerMockRecorder is the mock recorder for MockserviceLogger.
type MockserviceLoggerMockRecorder struct {
	mock *MockserviceLogger
}

// NewMockserviceLogger creates a new mock instance.
func NewMockserviceLogger(ctrl *gomock.Controller) *MockserviceLogger {
	mock := &MockserviceLogger{ctrl: ctrl}
	mock.recorder = &MockserviceLoggerMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockserviceLogger) EXPECT() *MockserviceLoggerMockRecorder {
	return m.recorder
}

// Error mocks base method.
func (m *MockserviceLogger) Error(msg string, fields ...logger.Field) {
	m.ctrl.T.Helper()
	varargs := []any{msg}
	for _, a := range fields {
		varargs = append(varargs, a)
	}
	m.ctrl.Call(m, "Error", varargs...)
}

// Error indicates an expected call of Error.
func (mr *MockserviceLoggerMockRecorder) Error(msg any, fields ...any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	varargs := append([]any{msg}, fields...)
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Error", reflect.TypeOf((*MockserviceLogger)(nil).Error), varargs...)
}

// Warn mocks base method.
func (m *MockserviceLogger) Warn(msg string, fields ...logger.Field) {
	m.ctrl.T.Helper()
	varargs := []any{msg}
	for _, a := range fields {
		varargs = append(varargs, a)
	}
	m.ctrl.Call(m, "Warn", varargs...)
}

// Warn indicates an expected call of Warn.
func (mr *MockserviceLoggerMockRecorder) Warn(msg any, fields ...any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	varargs := append([]any{msg}, fields...)
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Warn", reflect.TypeOf((*MockserviceLogger)(nil).Warn), varargs...)
}
