package models

import (
	"errors"
)

var (
	ErrGeneral                  = errors.New("an error occurred on the server during your request")
	ErrResourceNotFound         = errors.New("there is no")
	ErrBudgetCategoryNotUnique  = errors.New("there already is a budget for this category")
	ErrTransactionTypeInvalid   = errors.New("the transaction type must be 'income' or 'expense'")
	ErrTransactionStatusInvalid = errors.New("the transaction status must be 'completed', 'unpaid' or 'autopay'")
	ErrTransactionAmountInvalid = errors.New("the transaction amount must be positive")
	ErrTitleEmpty               = errors.New("the title must not be empty")
	ErrNameEmpty                = errors.New("the name must not be empty")
	ErrCategoryEmpty            = errors.New("the category must not be empty")
)
