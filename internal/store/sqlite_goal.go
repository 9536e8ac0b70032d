package store

import (
	"fmt"

	"github.com/hance08/fintrack/internal/model"
	"github.com/shopspring/decimal"
)

func (s *Store) CreateSavingGoal(goal *model.SavingGoal) (int64, error) {
	result, err := s.db.Exec(`
		INSERT INTO saving_goals (name, target_amount, deadline, saved_amount)
		VALUES (?, ?, ?, ?)
	`, goal.Name(), goal.Target().String(), model.FormatDate(goal.Deadline()), goal.SavedAmount().String())
	if err != nil {
		return 0, fmt.Errorf("failed to create saving goal: %w", err)
	}

	goalID, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("failed to get last insert id: %w", err)
	}

	return goalID, nil
}

// GetAllSavingGoals returns every goal in insertion order.
func (s *Store) GetAllSavingGoals() ([]*model.SavingGoal, error) {
	rows, err := s.db.Query(`
		SELECT id, name, target_amount, deadline, saved_amount
		FROM saving_goals
		ORDER BY id
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query saving goals: %w", err)
	}
	defer rows.Close()

	var goals []*model.SavingGoal
	for rows.Next() {
		var row savingGoalRow
		if err := rows.Scan(&row.ID, &row.Name, &row.Target, &row.Deadline, &row.Saved); err != nil {
			return nil, fmt.Errorf("failed to scan saving goal: %w", err)
		}

		goal, err := row.toModel()
		if err != nil {
			return nil, err
		}
		goals = append(goals, goal)
	}

	return goals, rows.Err()
}

// UpdateSavedAmount sets the saved amount of the oldest goal with the given name.
func (s *Store) UpdateSavedAmount(name string, saved decimal.Decimal) error {
	result, err := s.db.Exec(`
		UPDATE saving_goals
		SET saved_amount = ?
		WHERE id = (SELECT MIN(id) FROM saving_goals WHERE name = ?)
	`, saved.String(), name)
	if err != nil {
		return fmt.Errorf("failed to update saving goal: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}

	if rowsAffected == 0 {
		return fmt.Errorf("saving goal '%s': %w", name, ErrRecordNotFound)
	}

	return nil
}
