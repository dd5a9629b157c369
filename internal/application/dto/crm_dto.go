package dto

import "time"

// ClientRequest alta/edición de cliente.
type ClientRequest struct {
	Name    string `json:"name" validate:"required"`
	TaxID   string `json:"tax_id"`
	Address string `json:"address"`
	Phone   string `json:"phone"`
	Email   string `json:"email"`
}

// ClientResponse cliente del CRM.
type ClientResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	TaxID     string    `json:"tax_id"`
	Address   string    `json:"address"`
	Phone     string    `json:"phone"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
}

// ClientHistoryResponse cliente con su historial de compras.
type ClientHistoryResponse struct {
	Client ClientResponse `json:"client"`
	Sales  []SaleResponse `json:"sales"`
}
