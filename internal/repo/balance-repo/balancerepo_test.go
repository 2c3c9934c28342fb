package balancerepo

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"github.com/GlebRadaev/carrental/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/assert"
)

func NewMock(t *testing.T) (*Repository, pgxmock.PgxPoolIface) {
	mockDB, err := pgxmock.NewPool()
	assert.NoError(t, err)
	repo := New(mockDB)
	defer mockDB.Close()

	return repo, mockDB
}

func TestRepository_GetByUserID(t *testing.T) {
	repo, mock := NewMock(t)

	tests := []struct {
		name      string
		userID    int
		mockSetup func()
		expectErr bool
		result    *domain.Balance
	}{
		{
			name:   "Valid userID returns balance",
			userID: 1,
			mockSetup: func() {
				rows := pgxmock.NewRows([]string{"id", "user_id", "current_balance", "debt_total"}).
					AddRow(1, 1, int64(100), int64(30))
				mock.ExpectQuery(regexp.QuoteMeta(`SELECT id, user_id, current_balance, debt_total`)).
					WithArgs(1).
					WillReturnRows(rows)
			},
			expectErr: false,
			result: &domain.Balance{
				ID:             1,
				UserID:         1,
				CurrentBalance: 100,
				DebtTotal:      30,
			},
		},
		{
			name:   "Non-existing userID returns nil",
			userID: 99,
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(`SELECT id, user_id, current_balance, debt_total`)).
					WithArgs(99).
					WillReturnError(pgx.ErrNoRows)
			},
			expectErr: false,
			result:    nil,
		},
		{
			name:   "Database error",
			userID: 1,
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(`SELECT id, user_id, current_balance, debt_total`)).
					WithArgs(1).
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
			result:    nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			result, err := repo.GetByUserID(context.Background(), tt.userID)

			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}

			if tt.result == nil {
				assert.Nil(t, result)
			} else {
				assert.NotNil(t, result)
				assert.Equal(t, tt.result, result)
			}
		})
	}
}

func TestRepository_GetByUserIDForUpdate(t *testing.T) {
	repo, mock := NewMock(t)

	rows := pgxmock.NewRows([]string{"id", "user_id", "current_balance", "debt_total"}).
		AddRow(1, 1, int64(50), int64(0))
	mock.ExpectQuery(`FOR UPDATE`).
		WithArgs(1).
		WillReturnRows(rows)

	result, err := repo.GetByUserIDForUpdate(context.Background(), 1)
	assert.NoError(t, err)
	assert.Equal(t, &domain.Balance{ID: 1, UserID: 1, CurrentBalance: 50, DebtTotal: 0}, result)
}

func TestRepository_Create(t *testing.T) {
	repo, mock := NewMock(t)

	tests := []struct {
		name      string
		userID    int
		mockSetup func()
		expectErr bool
		result    *domain.Balance
	}{
		{
			name:   "Successfully creates balance",
			userID: 1,
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO balances (user_id, current_balance, debt_total)`)).
					WithArgs(1).
					WillReturnRows(pgxmock.NewRows([]string{"id", "user_id", "current_balance", "debt_total"}).
						AddRow(1, 1, int64(0), int64(0)),
					)
			},
			expectErr: false,
			result: &domain.Balance{
				ID:             1,
				UserID:         1,
				CurrentBalance: 0,
				DebtTotal:      0,
			},
		},
		{
			name:   "Database error",
			userID: 1,
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO balances (user_id, current_balance, debt_total)`)).
					WithArgs(1).
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
			result:    nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()

			result, err := repo.Create(context.Background(), tt.userID)

			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.NotNil(t, result)
				assert.Equal(t, tt.result, result)
			}
		})
	}
}

func TestRepository_Update(t *testing.T) {
	repo, mock := NewMock(t)

	tests := []struct {
		name         string
		userID       int
		inputBalance *domain.Balance
		mockSetup    func()
		expectErr    bool
		expected     *domain.Balance
	}{
		{
			name:   "Successfully updates balance",
			userID: 1,
			inputBalance: &domain.Balance{
				CurrentBalance: 200,
				DebtTotal:      100,
			},
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(`UPDATE balances`)).
					WithArgs(int64(200), int64(100), 1).
					WillReturnRows(
						pgxmock.NewRows([]string{"id", "user_id", "current_balance", "debt_total"}).
							AddRow(1, 1, int64(200), int64(100)),
					)
			},
			expectErr: false,
			expected: &domain.Balance{
				ID:             1,
				UserID:         1,
				CurrentBalance: 200,
				DebtTotal:      100,
			},
		},
		{
			name:   "Database error",
			userID: 1,
			inputBalance: &domain.Balance{
				CurrentBalance: 200,
				DebtTotal:      100,
			},
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(`UPDATE balances`)).
					WithArgs(int64(200), int64(100), 1).
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
			expected:  nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()

			result, err := repo.Update(context.Background(), tt.userID, tt.inputBalance)

			if tt.expectErr {
				assert.Error(t, err)
				assert.Nil(t, result)
			} else {
				assert.NoError(t, err)
				assert.NotNil(t, result)
				assert.Equal(t, tt.expected, result)
			}
		})
	}
}
