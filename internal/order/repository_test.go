package order

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRepository_Save(t *testing.T) {
	ctx := context.Background()
	o := &Order{
		PaymentTime: time.Date(2026, 3, 14, 12, 0, 0, 0, time.UTC),
		Amount:      1000,
		Currency:    840,
		Description: "test order",
		ShopOrderID: 42,
	}

	t.Run("Success", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()
		repo := NewRepository(db)

		mock.ExpectQuery(`INSERT INTO orders`).
			WithArgs(o.PaymentTime, o.Amount, o.Currency, o.Description, o.ShopOrderID).
			WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(int64(7)))

		err = repo.Save(ctx, o)
		assert.NoError(t, err)
		assert.Equal(t, int64(7), o.ID)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("InsertError", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()
		repo := NewRepository(db)

		mock.ExpectQuery(`INSERT INTO orders`).
			WillReturnError(errors.New("db error"))

		err = repo.Save(ctx, o)
		assert.Error(t, err)
	})
}
