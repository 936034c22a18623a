package httpapi

import (
	"errors"
	"net/http"

	"github.com/dmitrijs2005/fintrack/internal/common"
	"github.com/dmitrijs2005/fintrack/internal/server/models"
	"github.com/gorilla/mux"
)

func (h *Handlers) createTransaction(w http.ResponseWriter, r *http.Request) {
	var req createTransactionRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	if req.Amount == nil {
		writeMessage(w, http.StatusBadRequest, common.MsgFillAllFields)
		return
	}

	owner := UserFromContext(r.Context())
	tx, err := h.transactions.Create(r.Context(), owner.ID, req.Description, *req.Amount,
		models.TransactionType(req.Type), req.Category)
	if err != nil {
		h.writeServiceError(r.Context(), w, err)
		return
	}

	writeJSON(w, http.StatusCreated, createTransactionResponse{
		Message:     "Transaction created successfully",
		Transaction: newTransactionDTO(tx),
	})
}

func (h *Handlers) listTransactions(w http.ResponseWriter, r *http.Request) {
	owner := UserFromContext(r.Context())

	txs, err := h.transactions.List(r.Context(), owner.ID)
	if err != nil {
		h.writeServiceError(r.Context(), w, err)
		return
	}

	out := make([]transactionDTO, 0, len(txs))
	for i := range txs {
		out = append(out, newTransactionDTO(&txs[i]))
	}
	writeJSON(w, http.StatusOK, transactionsResponse{Transactions: out})
}

func (h *Handlers) deleteTransaction(w http.ResponseWriter, r *http.Request) {
	owner := UserFromContext(r.Context())
	id := mux.Vars(r)["id"]

	if err := h.transactions.Delete(r.Context(), owner.ID, id); err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			writeMessage(w, http.StatusNotFound, msgTxNotFound)
			return
		}
		h.writeServiceError(r.Context(), w, err)
		return
	}

	writeMessage(w, http.StatusOK, "Transaction deleted successfully")
}

func (h *Handlers) categories(w http.ResponseWriter, r *http.Request) {
	owner := UserFromContext(r.Context())

	cats, err := h.transactions.Categories(r.Context(), owner.ID)
	if err != nil {
		h.writeServiceError(r.Context(), w, err)
		return
	}
	writeJSON(w, http.StatusOK, categoriesResponse{Categories: cats})
}

func (h *Handlers) totals(w http.ResponseWriter, r *http.Request) {
	owner := UserFromContext(r.Context())

	totals, err := h.summaries.Totals(r.Context(), owner.ID)
	if err != nil {
		h.writeServiceError(r.Context(), w, err)
		return
	}
	writeJSON(w, http.StatusOK, totals)
}

func (h *Handlers) categoryBreakdown(w http.ResponseWriter, r *http.Request) {
	owner := UserFromContext(r.Context())

	data, err := h.summaries.CategoryBreakdown(r.Context(), owner.ID)
	if err != nil {
		h.writeServiceError(r.Context(), w, err)
		return
	}
	writeJSON(w, http.StatusOK, categoryBreakdownResponse{CategoryData: data})
}

func (h *Handlers) monthly(w http.ResponseWriter, r *http.Request) {
	owner := UserFromContext(r.Context())

	data, err := h.summaries.Monthly(r.Context(), owner.ID)
	if err != nil {
		h.writeServiceError(r.Context(), w, err)
		return
	}
	writeJSON(w, http.StatusOK, monthlyResponse{ChartData: data})
}

func (h *Handlers) export(w http.ResponseWriter, r *http.Request) {
	owner := UserFromContext(r.Context())

	res, err := h.exports.Export(r.Context(), owner.ID)
	if err != nil {
		h.writeServiceError(r.Context(), w, err)
		return
	}

	h.logger.Info(r.Context(), "Statement exported", "user_id", owner.ID, "key", res.Key)
	writeJSON(w, http.StatusOK, res)
}
