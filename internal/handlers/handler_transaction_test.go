package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/SscSPs/finance_tracker_app/internal/apperrors"
	"github.com/SscSPs/finance_tracker_app/internal/core/accounting"
	"github.com/SscSPs/finance_tracker_app/internal/core/domain"
	portssvc "github.com/SscSPs/finance_tracker_app/internal/core/ports/services"
	"github.com/SscSPs/finance_tracker_app/internal/dto"
	"github.com/SscSPs/finance_tracker_app/internal/handlers"
	"github.com/SscSPs/finance_tracker_app/internal/middleware"
	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock TransactionService ---
type MockTransactionService struct {
	mock.Mock
}

func (m *MockTransactionService) CreateTransaction(ctx context.Context, ownerID string, req dto.CreateTransactionRequest) ([]domain.Transaction, error) {
	args := m.Called(ctx, ownerID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Transaction), args.Error(1)
}
func (m *MockTransactionService) ListTransactions(ctx context.Context, ownerID string) ([]domain.Transaction, error) {
	args := m.Called(ctx, ownerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Transaction), args.Error(1)
}
func (m *MockTransactionService) QueryTransactions(ctx context.Context, ownerID, search string, sortBy accounting.SortKey, ascending bool) ([]domain.Transaction, error) {
	args := m.Called(ctx, ownerID, search, sortBy, ascending)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Transaction), args.Error(1)
}
func (m *MockTransactionService) GetTransaction(ctx context.Context, ownerID, transactionID string) (*domain.Transaction, error) {
	args := m.Called(ctx, ownerID, transactionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Transaction), args.Error(1)
}
func (m *MockTransactionService) UpdateTransaction(ctx context.Context, ownerID, transactionID string, req dto.UpdateTransactionRequest) (*domain.Transaction, error) {
	args := m.Called(ctx, ownerID, transactionID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Transaction), args.Error(1)
}
func (m *MockTransactionService) DeleteTransaction(ctx context.Context, ownerID, transactionID string) error {
	args := m.Called(ctx, ownerID, transactionID)
	return args.Error(0)
}

// Ensure mock implements the interface
var _ portssvc.TransactionSvcFacade = (*MockTransactionService)(nil)

// --- Test Suite ---
type TransactionHandlerTestSuite struct {
	suite.Suite
	router      *gin.Engine
	mockService *MockTransactionService
	jwtSecret   string
}

// generateTestToken creates a dummy JWT for testing.
func (suite *TransactionHandlerTestSuite) generateTestToken(userID string) string {
	claims := jwt.RegisteredClaims{
		Issuer:    "fta-test",
		Subject:   userID,
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(1 * time.Hour)),
		IssuedAt:  jwt.NewNumericDate(time.Now()),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tsignedString, err := token.SignedString([]byte(suite.jwtSecret))
	if err != nil {
		suite.FailNow("Failed to sign test token", err.Error())
	}
	return tsignedString
}

func (suite *TransactionHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.router = gin.New()
	suite.jwtSecret = "test-secret-key-that-is-long-enough"

	suite.router.Use(middleware.AuthMiddleware(suite.jwtSecret))

	suite.mockService = new(MockTransactionService)

	v1 := suite.router.Group("/api/v1")
	handlers.RegisterTransactionRoutes(v1, suite.mockService)
}

// --- Test Cases ---

func (suite *TransactionHandlerTestSuite) TestQueryTransactions_Success() {
	ownerID := uuid.NewString()
	stored := []domain.Transaction{
		{
			TransactionID: uuid.NewString(),
			OwnerID:       ownerID,
			Amount:        decimal.NewFromInt(100),
			Description:   "Aluguel",
			Kind:          domain.Expense,
			PaymentForm:   domain.Debit,
			DueDate:       time.Date(2025, 3, 11, 0, 0, 0, 0, time.UTC),
			Status:        domain.Pending,
		},
	}

	suite.mockService.On("QueryTransactions",
		mock.AnythingOfType("*context.valueCtx"),
		ownerID,
		"alu",
		accounting.SortDueDateNear,
		true,
	).Return(stored, nil).Once()

	url := "/api/v1/transactions/query?search=alu&sortBy=dueDateNear&ascending=true"
	req, _ := http.NewRequest(http.MethodGet, url, nil)
	req.Header.Set("Authorization", "Bearer "+suite.generateTestToken(ownerID))
	req.Header.Set("Accept", "application/json")

	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusOK, w.Code)

	var responseBody dto.ListTransactionsResponse
	err := json.Unmarshal(w.Body.Bytes(), &responseBody)
	suite.NoError(err, "Failed to unmarshal response body")
	suite.Require().Len(responseBody.Transactions, 1)
	suite.Equal(stored[0].TransactionID, responseBody.Transactions[0].TransactionID)
	// Stored dates are shifted back by one day for display.
	suite.Equal("2025-03-10", responseBody.Transactions[0].DueDate)

	suite.mockService.AssertExpectations(suite.T())
}

func (suite *TransactionHandlerTestSuite) TestQueryTransactions_UnknownSortKey() {
	ownerID := uuid.NewString()

	req, _ := http.NewRequest(http.MethodGet, "/api/v1/transactions/query?sortBy=bogus", nil)
	req.Header.Set("Authorization", "Bearer "+suite.generateTestToken(ownerID))

	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockService.AssertNotCalled(suite.T(), "QueryTransactions", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *TransactionHandlerTestSuite) TestCreateTransaction_Success() {
	ownerID := uuid.NewString()
	body := map[string]any{
		"amount":           "300.00",
		"description":      "New couch",
		"kind":             "EXPENSE",
		"paymentForm":      "DEBIT",
		"dueDate":          "2025-01-15",
		"installmentCount": 3,
	}
	payload, _ := json.Marshal(body)

	created := make([]domain.Transaction, 3)
	groupID := uuid.NewString()
	for i := range created {
		created[i] = domain.Transaction{
			TransactionID:      uuid.NewString(),
			OwnerID:            ownerID,
			Amount:             decimal.NewFromInt(100),
			Description:        "New couch",
			Kind:               domain.Expense,
			PaymentForm:        domain.Debit,
			DueDate:            time.Date(2025, time.Month(i+1), 16, 0, 0, 0, 0, time.UTC),
			Status:             domain.Pending,
			InstallmentIndex:   i + 1,
			InstallmentGroupID: groupID,
		}
	}

	suite.mockService.On("CreateTransaction",
		mock.AnythingOfType("*context.valueCtx"),
		ownerID,
		mock.MatchedBy(func(r dto.CreateTransactionRequest) bool {
			return r.InstallmentCount == 3 && r.DueDate == "2025-01-15"
		}),
	).Return(created, nil).Once()

	req, _ := http.NewRequest(http.MethodPost, "/api/v1/transactions", bytes.NewReader(payload))
	req.Header.Set("Authorization", "Bearer "+suite.generateTestToken(ownerID))
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusCreated, w.Code)

	var responseBody dto.ListTransactionsResponse
	suite.NoError(json.Unmarshal(w.Body.Bytes(), &responseBody))
	suite.Len(responseBody.Transactions, 3)

	suite.mockService.AssertExpectations(suite.T())
}

func (suite *TransactionHandlerTestSuite) TestCreateTransaction_MissingToken() {
	req, _ := http.NewRequest(http.MethodPost, "/api/v1/transactions", bytes.NewReader([]byte(`{}`)))
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusUnauthorized, w.Code)
	suite.mockService.AssertNotCalled(suite.T(), "CreateTransaction", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *TransactionHandlerTestSuite) TestGetTransaction_NotFound() {
	ownerID := uuid.NewString()
	txnID := uuid.NewString()

	suite.mockService.On("GetTransaction",
		mock.AnythingOfType("*context.valueCtx"),
		ownerID,
		txnID,
	).Return(nil, apperrors.ErrNotFound).Once()

	url := fmt.Sprintf("/api/v1/transactions/%s", txnID)
	req, _ := http.NewRequest(http.MethodGet, url, nil)
	req.Header.Set("Authorization", "Bearer "+suite.generateTestToken(ownerID))

	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusNotFound, w.Code)
	suite.mockService.AssertExpectations(suite.T())
}

func (suite *TransactionHandlerTestSuite) TestDeleteTransaction_Success() {
	ownerID := uuid.NewString()
	txnID := uuid.NewString()

	suite.mockService.On("DeleteTransaction",
		mock.AnythingOfType("*context.valueCtx"),
		ownerID,
		txnID,
	).Return(nil).Once()

	req, _ := http.NewRequest(http.MethodDelete, fmt.Sprintf("/api/v1/transactions/%s", txnID), nil)
	req.Header.Set("Authorization", "Bearer "+suite.generateTestToken(ownerID))

	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusNoContent, w.Code)
	suite.mockService.AssertExpectations(suite.T())
}

func TestTransactionHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(TransactionHandlerTestSuite))
}
