// Package server exposes the ledger services over a thin HTTP/JSON surface.
//
// The handlers own no business rules: they decode requests, call the service
// layer, and localize enum labels at the boundary. Clients are expected to
// re-fetch the list and balances after every mutation; the server pushes
// nothing.
package server

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/rizaldy/keuanganku/internal/auth"
	"github.com/rizaldy/keuanganku/internal/middleware"
	"github.com/rizaldy/keuanganku/internal/models"
	"github.com/rizaldy/keuanganku/internal/service"
)

// Server wires the ledger and auth services to HTTP routes.
type Server struct {
	authService   *service.AuthService
	ledgerService *service.LedgerService
	jwtManager    *auth.JWTManager
}

// New creates a Server over the given services.
func New(authService *service.AuthService, ledgerService *service.LedgerService, jwtManager *auth.JWTManager) *Server {
	return &Server{
		authService:   authService,
		ledgerService: ledgerService,
		jwtManager:    jwtManager,
	}
}

// Handler builds the route table. Ledger routes sit behind the JWT
// middleware; login and health do not.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("POST /api/login", s.handleLogin)
	mux.HandleFunc("GET /healthz", s.handleHealth)
	mux.Handle("GET /metrics", middleware.MetricsHandler())

	authed := http.NewServeMux()
	authed.HandleFunc("GET /api/transactions", s.handleListTransactions)
	authed.HandleFunc("POST /api/transactions", s.handleAddTransaction)
	authed.HandleFunc("DELETE /api/transactions/{id}", s.handleDeleteTransaction)
	authed.HandleFunc("GET /api/balances", s.handleBalances)
	mux.Handle("/api/", middleware.RequireAuth(s.jwtManager)(authed))

	return middleware.RequestLogger(middleware.Metrics(mux))
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type loginResponse struct {
	Token    string `json:"token"`
	UserID   int64  `json:"user_id"`
	Username string `json:"username"`
}

func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	session, err := s.authService.Login(r.Context(), req.Username, req.Password)
	if err != nil {
		if errors.Is(err, auth.ErrInvalidCredentials) {
			writeError(w, http.StatusUnauthorized, auth.ErrInvalidCredentials.Error())
			return
		}
		writeError(w, http.StatusInternalServerError, "login failed")
		return
	}

	writeJSON(w, http.StatusOK, loginResponse{
		Token:    session.Token,
		UserID:   session.UserID,
		Username: session.Username,
	})
}

type transactionRequest struct {
	Date        string `json:"date"`
	Description string `json:"description"`
	Kind        string `json:"kind"`
	Account     string `json:"account"`
	Amount      int64  `json:"amount"`
}

type transactionResponse struct {
	ID           int64  `json:"id"`
	Date         string `json:"date"`
	Description  string `json:"description"`
	Kind         string `json:"kind"`
	Account      string `json:"account"`
	KindLabel    string `json:"kind_label"`
	AccountLabel string `json:"account_label"`
	Amount       int64  `json:"amount"`
}

func toTransactionResponse(tx models.Transaction) transactionResponse {
	return transactionResponse{
		ID:           tx.ID,
		Date:         tx.Date,
		Description:  tx.Description,
		Kind:         string(tx.Kind),
		Account:      string(tx.Account),
		KindLabel:    tx.Kind.Label(),
		AccountLabel: tx.Account.Label(),
		Amount:       tx.Amount,
	}
}

func (s *Server) handleAddTransaction(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())

	var req transactionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	// Accept either the display label or the internal tag; anything else is
	// passed through raw so validation rejects it.
	kind, ok := models.ParseKindLabel(req.Kind)
	if !ok {
		kind = models.Kind(req.Kind)
	}
	account, ok := models.ParseAccountLabel(req.Account)
	if !ok {
		account = models.Account(req.Account)
	}

	id, err := s.ledgerService.Add(r.Context(), userID, models.Transaction{
		Date:        req.Date,
		Description: req.Description,
		Kind:        kind,
		Account:     account,
		Amount:      req.Amount,
	})
	if err != nil {
		if isValidationError(err) {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		writeError(w, http.StatusInternalServerError, "failed to record transaction")
		return
	}

	writeJSON(w, http.StatusCreated, map[string]int64{"id": id})
}

func (s *Server) handleListTransactions(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())

	txs, err := s.ledgerService.List(r.Context(), userID)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to list transactions")
		return
	}

	resp := make([]transactionResponse, len(txs))
	for i, tx := range txs {
		resp[i] = toTransactionResponse(tx)
	}
	writeJSON(w, http.StatusOK, map[string]any{"transactions": resp})
}

func (s *Server) handleDeleteTransaction(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())

	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid transaction id")
		return
	}

	// Absent or foreign IDs are a silent no-op.
	if err := s.ledgerService.Delete(r.Context(), userID, id); err != nil {
		writeError(w, http.StatusInternalServerError, "failed to delete transaction")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

type balancesResponse struct {
	Bank  int64 `json:"bank"`
	Cash  int64 `json:"cash"`
	Total int64 `json:"total"`
}

func (s *Server) handleBalances(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())

	balances, err := s.ledgerService.Balances(r.Context(), userID)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to compute balances")
		return
	}

	writeJSON(w, http.StatusOK, balancesResponse{
		Bank:  balances.Bank,
		Cash:  balances.Cash,
		Total: balances.Total,
	})
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func isValidationError(err error) bool {
	return errors.Is(err, models.ErrEmptyDescription) ||
		errors.Is(err, models.ErrInvalidAmount) ||
		errors.Is(err, models.ErrInvalidKind) ||
		errors.Is(err, models.ErrInvalidAccount) ||
		errors.Is(err, models.ErrInvalidDate)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}
