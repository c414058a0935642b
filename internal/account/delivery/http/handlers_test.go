package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"cashback-advisor/internal/account"
	"cashback-advisor/internal/model"
	"cashback-advisor/pkg/log"
)

type mockUseCase struct {
	accounts    []account.Account
	created     account.CreateAccountInput
	txFilter    account.ListTransactionsInput
	txs         []account.Transaction
	insights    account.InsightsOutput
	insightsErr error
	err         error
}

func (m *mockUseCase) ListAccounts(ctx context.Context) ([]account.Account, error) {
	return m.accounts, m.err
}

func (m *mockUseCase) CreateAccount(ctx context.Context, input account.CreateAccountInput) (account.Account, error) {
	m.created = input
	if m.err != nil {
		return account.Account{}, m.err
	}
	return account.Account{ID: 9, Name: input.Name, Nickname: input.Nickname, Limit: input.Limit, Cashback: input.Cashback}, nil
}

func (m *mockUseCase) ListTransactions(ctx context.Context, input account.ListTransactionsInput) ([]account.Transaction, error) {
	m.txFilter = input
	return m.txs, m.err
}

func (m *mockUseCase) Balances(ctx context.Context, names []string) (map[string]string, error) {
	return nil, nil
}

func (m *mockUseCase) CheckAffordability(ctx context.Context, input account.AffordabilityInput) (account.AffordabilityOutput, error) {
	return account.AffordabilityOutput{}, nil
}

func (m *mockUseCase) MarketCards(ctx context.Context, category account.Category) (account.MarketCardsOutput, error) {
	return account.MarketCardsOutput{}, nil
}

func (m *mockUseCase) FinancialSummary(ctx context.Context) (account.FinancialSummaryOutput, error) {
	return account.FinancialSummaryOutput{}, nil
}

func (m *mockUseCase) Insights(ctx context.Context, accountID int64) (account.InsightsOutput, error) {
	return m.insights, m.insightsErr
}

func setupRouter(uc account.UseCase) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	RegisterRoutes(r.Group("/api"), New(log.NewNop(), uc))
	return r
}

func doRequest(r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req, _ := http.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	return w
}

func decodeData(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var body struct {
		ErrorCode int                    `json:"error_code"`
		Data      map[string]interface{} `json:"data"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("failed to decode body %s: %v", w.Body.String(), err)
	}
	return body.Data
}

func TestListAccounts(t *testing.T) {
	uc := &mockUseCase{accounts: []account.Account{
		{ID: 1, Name: "Card1", Balance: 200, Limit: 1000, Cashback: map[model.Category]float64{model.CategoryOther: 1}},
	}}
	w := doRequest(setupRouter(uc), http.MethodGet, "/api/accounts", "")

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	data := decodeData(t, w)
	accounts, _ := data["accounts"].([]interface{})
	if len(accounts) != 1 {
		t.Fatalf("expected 1 account, got %v", data["accounts"])
	}
	first := accounts[0].(map[string]interface{})
	if first["available"] != float64(800) {
		t.Errorf("expected available 800, got %v", first["available"])
	}
}

func TestListAccounts_Failure(t *testing.T) {
	uc := &mockUseCase{err: errors.New("redis down")}
	w := doRequest(setupRouter(uc), http.MethodGet, "/api/accounts", "")

	if w.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", w.Code)
	}
	if strings.Contains(w.Body.String(), "redis down") {
		t.Error("internal error cause must not leak")
	}
}

func TestCreateAccount(t *testing.T) {
	t.Run("flattened cashback fields", func(t *testing.T) {
		uc := &mockUseCase{}
		body := `{"name":"Card3","limit":500,"cashback_groceries":3,"cashback_other":1}`
		w := doRequest(setupRouter(uc), http.MethodPost, "/api/accounts", body)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
		}
		if uc.created.Cashback[model.CategoryGroceries] != 3 {
			t.Errorf("expected groceries rate 3, got %v", uc.created.Cashback)
		}
		if uc.created.Name != "Card3" || uc.created.Limit != 500 {
			t.Errorf("unexpected input: %+v", uc.created)
		}
	})

	t.Run("missing name", func(t *testing.T) {
		w := doRequest(setupRouter(&mockUseCase{}), http.MethodPost, "/api/accounts", `{"limit":500}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("balance above limit", func(t *testing.T) {
		w := doRequest(setupRouter(&mockUseCase{}), http.MethodPost, "/api/accounts", `{"name":"x","balance":10,"limit":5}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("use case validation error", func(t *testing.T) {
		uc := &mockUseCase{err: account.ErrInvalidAccount}
		w := doRequest(setupRouter(uc), http.MethodPost, "/api/accounts", `{"name":"x"}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})
}

func TestListTransactions(t *testing.T) {
	uc := &mockUseCase{txs: []account.Transaction{
		{AccountID: 2, Merchant: "Shell", Category: model.CategoryFuel, Amount: 40},
	}}
	w := doRequest(setupRouter(uc), http.MethodGet, "/api/transactions?account_id=2", "")

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if uc.txFilter.AccountID != 2 {
		t.Errorf("expected filter 2, got %d", uc.txFilter.AccountID)
	}
	data := decodeData(t, w)
	txs, _ := data["transactions"].([]interface{})
	if len(txs) != 1 || txs[0].(map[string]interface{})["category"] != "fuel" {
		t.Errorf("unexpected transactions: %v", data["transactions"])
	}

	w = doRequest(setupRouter(uc), http.MethodGet, "/api/transactions?account_id=abc", "")
	if w.Code != http.StatusBadRequest {
		t.Errorf("expected 400 for non-numeric account_id, got %d", w.Code)
	}
}

func TestSavings(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		uc := &mockUseCase{insights: account.InsightsOutput{
			Account:          account.Account{ID: 1, Name: "Card1"},
			CategoryTotals:   map[model.Category]float64{model.CategoryGroceries: 200},
			PotentialSavings: 10,
			Recommendation:   &account.SavingsRecommendation{Category: model.CategoryGroceries, Card: "Grocery Max Rewards", Rate: 6, Savings: 10},
		}}
		w := doRequest(setupRouter(uc), http.MethodGet, "/api/accounts/1/savings", "")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		data := decodeData(t, w)
		if data["potential_savings"] != float64(10) {
			t.Errorf("expected savings 10, got %v", data["potential_savings"])
		}
		rec, _ := data["recommendation"].(map[string]interface{})
		if rec["card"] != "Grocery Max Rewards" {
			t.Errorf("unexpected recommendation: %v", rec)
		}
	})

	t.Run("not found", func(t *testing.T) {
		uc := &mockUseCase{insightsErr: account.ErrAccountNotFound}
		w := doRequest(setupRouter(uc), http.MethodGet, "/api/accounts/42/savings", "")
		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("bad id", func(t *testing.T) {
		w := doRequest(setupRouter(&mockUseCase{}), http.MethodGet, "/api/accounts/zero/savings", "")
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})
}
