package http

import "github.com/nvalencia/apartment-booking-backend/internal/customer"

type CreateCustomerRequest struct {
	FirstName string `json:"first_name" binding:"required"`
	LastName  string `json:"last_name" binding:"required"`
	Phone     string `json:"phone" binding:"required"`
	Address   string `json:"address" binding:"required"`
}

type SearchCustomersRequest struct {
	FirstName string `form:"first_name"`
	Phone     string `form:"phone"`
}

type CustomerResponse struct {
	ID        int64  `json:"id"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Phone     string `json:"phone"`
	Address   string `json:"address"`
}

func NewCustomerResponse(cust *customer.Customer) CustomerResponse {
	return CustomerResponse{
		ID:        cust.ID,
		FirstName: cust.FirstName,
		LastName:  cust.LastName,
		Phone:     cust.Phone,
		Address:   cust.Address,
	}
}

func NewCustomerListResponse(customers []*customer.Customer) []CustomerResponse {
	items := make([]CustomerResponse, len(customers))
	for i, cust := range customers {
		items[i] = NewCustomerResponse(cust)
	}
	return items
}
