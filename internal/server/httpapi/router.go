package httpapi

import (
	"context"
	"net/http"

	"github.com/dmitrijs2005/fintrack/internal/logging"
	"github.com/dmitrijs2005/fintrack/internal/server/models"
	"github.com/dmitrijs2005/fintrack/internal/server/services"
	"github.com/dmitrijs2005/fintrack/internal/server/summary"
	"github.com/gorilla/mux"
	"github.com/shopspring/decimal"
)

func init() {
	// Amounts are JSON numbers on the wire.
	decimal.MarshalJSONWithoutQuotes = true
}

type UserService interface {
	Register(ctx context.Context, username, email, password string) (*models.User, string, error)
	Login(ctx context.Context, email, password string) (*models.User, string, error)
	Authenticate(ctx context.Context, token string) (*models.User, error)
}

type TransactionService interface {
	Create(ctx context.Context, ownerID, description string, amount decimal.Decimal,
		txType models.TransactionType, category string) (*models.Transaction, error)
	List(ctx context.Context, ownerID string) ([]models.Transaction, error)
	Delete(ctx context.Context, ownerID, id string) error
	Categories(ctx context.Context, ownerID string) ([]string, error)
}

type SummaryService interface {
	Totals(ctx context.Context, ownerID string) (summary.Totals, error)
	CategoryBreakdown(ctx context.Context, ownerID string) ([]summary.CategoryTotal, error)
	Monthly(ctx context.Context, ownerID string) ([]summary.MonthlyRow, error)
}

type ExportService interface {
	Export(ctx context.Context, ownerID string) (*services.ExportResult, error)
}

// Handlers holds the services the API delegates to.
type Handlers struct {
	users        UserService
	transactions TransactionService
	summaries    SummaryService
	exports      ExportService
	logger       logging.Logger
}

func NewHandlers(us UserService, ts TransactionService, ss SummaryService, es ExportService, l logging.Logger) *Handlers {
	return &Handlers{
		users:        us,
		transactions: ts,
		summaries:    ss,
		exports:      es,
		logger:       l.With("module", "http_api"),
	}
}

// NewRouter wires every route and wraps the router with the recover,
// request logging and CORS middleware.
func NewRouter(h *Handlers, allowedOrigins []string) http.Handler {
	r := mux.NewRouter()

	r.NotFoundHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeMessage(w, http.StatusNotFound, "Route not found")
	})
	r.MethodNotAllowedHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeMessage(w, http.StatusMethodNotAllowed, "Method not allowed")
	})

	r.HandleFunc("/", h.banner).Methods(http.MethodGet)

	r.HandleFunc("/api/auth/register", h.register).Methods(http.MethodPost)
	r.HandleFunc("/api/auth/login", h.login).Methods(http.MethodPost)
	r.Handle("/api/auth/me", h.requireAuth(h.me)).Methods(http.MethodGet)

	r.Handle("/api/transactions", h.requireAuth(h.createTransaction)).Methods(http.MethodPost)
	r.Handle("/api/transactions", h.requireAuth(h.listTransactions)).Methods(http.MethodGet)
	r.Handle("/api/transactions/summary", h.requireAuth(h.totals)).Methods(http.MethodGet)
	r.Handle("/api/transactions/summary/category", h.requireAuth(h.categoryBreakdown)).Methods(http.MethodGet)
	r.Handle("/api/transactions/summary/monthly", h.requireAuth(h.monthly)).Methods(http.MethodGet)
	r.Handle("/api/transactions/categories", h.requireAuth(h.categories)).Methods(http.MethodGet)
	r.Handle("/api/transactions/export", h.requireAuth(h.export)).Methods(http.MethodGet)
	r.Handle("/api/transactions/{id}", h.requireAuth(h.deleteTransaction)).Methods(http.MethodDelete)

	var handler http.Handler = r
	handler = corsMiddleware(allowedOrigins)(handler)
	handler = h.loggingMiddleware(handler)
	handler = h.recoverMiddleware(handler)
	return handler
}

func (h *Handlers) banner(w http.ResponseWriter, r *http.Request) {
	writeMessage(w, http.StatusOK, "Personal Finance Tracker API is running!")
}
