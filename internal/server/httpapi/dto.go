package httpapi

import (
	"time"

	"github.com/dmitrijs2005/fintrack/internal/server/models"
	"github.com/dmitrijs2005/fintrack/internal/server/summary"
	"github.com/shopspring/decimal"
)

type registerRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type createTransactionRequest struct {
	Description string           `json:"description"`
	Amount      *decimal.Decimal `json:"amount"`
	Type        string           `json:"type"`
	Category    string           `json:"category"`
}

type userDTO struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
}

func newUserDTO(u *models.User) userDTO {
	return userDTO{ID: u.ID, Username: u.UserName, Email: u.Email}
}

type authResponse struct {
	Message string  `json:"message"`
	Token   string  `json:"token"`
	User    userDTO `json:"user"`
}

type meResponse struct {
	User userDTO `json:"user"`
}

type transactionDTO struct {
	ID          string          `json:"id"`
	Description string          `json:"description"`
	Amount      decimal.Decimal `json:"amount"`
	Type        string          `json:"type"`
	Category    string          `json:"category"`
	Date        time.Time       `json:"date"`
	User        string          `json:"user"`
	CreatedAt   time.Time       `json:"createdAt"`
	UpdatedAt   time.Time       `json:"updatedAt"`
}

func newTransactionDTO(t *models.Transaction) transactionDTO {
	return transactionDTO{
		ID:          t.ID,
		Description: t.Description,
		Amount:      t.Amount,
		Type:        string(t.Type),
		Category:    t.Category,
		Date:        t.Date,
		User:        t.UserID,
		CreatedAt:   t.CreatedAt,
		UpdatedAt:   t.UpdatedAt,
	}
}

type createTransactionResponse struct {
	Message     string         `json:"message"`
	Transaction transactionDTO `json:"transaction"`
}

type transactionsResponse struct {
	Transactions []transactionDTO `json:"transactions"`
}

type categoriesResponse struct {
	Categories []string `json:"categories"`
}

type categoryBreakdownResponse struct {
	CategoryData []summary.CategoryTotal `json:"categoryData"`
}

type monthlyResponse struct {
	ChartData []summary.MonthlyRow `json:"chartData"`
}
