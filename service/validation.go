package service

import (
	"fmt"
	"math"

	"debt-planner/domain"
)

func validateRate(rate float64) error {
	if math.IsNaN(rate) || math.IsInf(rate, 0) {
		return fmt.Errorf("%w: interest rate must be a number", ErrInvalidInput)
	}
	if rate > MaxInterestRate {
		return fmt.Errorf("%w: interest rate exceeds the maximum of %.2f", ErrInvalidInput, MaxInterestRate)
	}
	return nil
}

// validateProjection enforces request limits only. Non-positive balances
// and payments are left to the engine, which rejects them itself.
func validateProjection(input domain.ProjectionInput) error {
	if input.Balance > MaxDebtAmount {
		return fmt.Errorf("%w: balance exceeds the maximum of $%.2f", ErrInvalidInput, MaxDebtAmount)
	}
	if err := validateRate(input.AnnualInterestRate); err != nil {
		return err
	}
	if input.MaxMonths > MaxProjectionMonths {
		return fmt.Errorf("%w: maxMonths exceeds the limit of %d", ErrInvalidInput, MaxProjectionMonths)
	}
	if input.ExtraPayment > MaxDebtAmount {
		return fmt.Errorf("%w: extra payment exceeds the maximum of $%.2f", ErrInvalidInput, MaxDebtAmount)
	}
	return nil
}

// validateDebts checks the shape of a debt set. An empty set is valid: the
// engine reports it as having nothing to pay off.
func validateDebts(debts []domain.Debt) error {
	if len(debts) > MaxDebtsPerRequest {
		return fmt.Errorf("%w: number of debts exceeds the maximum of %d", ErrInvalidInput, MaxDebtsPerRequest)
	}

	ids := make(map[string]bool, len(debts))
	for _, debt := range debts {
		if debt.ID == "" {
			return fmt.Errorf("%w: debt id cannot be empty", ErrInvalidInput)
		}
		if ids[debt.ID] {
			return fmt.Errorf("%w: duplicate debt id %s", ErrInvalidInput, debt.ID)
		}
		ids[debt.ID] = true

		if debt.Balance > MaxDebtAmount {
			return fmt.Errorf("%w: balance of %s exceeds the maximum of $%.2f", ErrInvalidInput, debt.ID, MaxDebtAmount)
		}
		if err := validateRate(debt.AnnualInterestRate); err != nil {
			return fmt.Errorf("debt %s: %w", debt.ID, err)
		}
	}
	return nil
}
