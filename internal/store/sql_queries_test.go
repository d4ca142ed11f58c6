// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"strings"
	"testing"

	sq "github.com/Masterminds/squirrel"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-customers/models"
)

func Test_buildSelectCustomersQuery(t *testing.T) {
	tests := []struct {
		name      string
		dialect   Dialect
		where     sq.Sqlizer
		wantWhere string
		wantArgs  []any
	}{
		{
			name:     "all customers",
			dialect:  DialectPostgres,
			where:    nil,
			wantArgs: nil,
		},
		{
			name:      "by id postgres",
			dialect:   DialectPostgres,
			where:     sq.Eq{"id": int64(3)},
			wantWhere: "WHERE id = $1",
			wantArgs:  []any{int64(3)},
		},
		{
			name:      "by id sqlite",
			dialect:   DialectSQLite,
			where:     sq.Eq{"id": int64(3)},
			wantWhere: "WHERE id = ?",
			wantArgs:  []any{int64(3)},
		},
		{
			name:      "by both names",
			dialect:   DialectPostgres,
			where:     sq.Eq{"last_name": "Doe", "first_name": "Jane"},
			wantWhere: "WHERE first_name = $1 AND last_name = $2",
			wantArgs:  []any{"Jane", "Doe"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db := &DB{dialect: tt.dialect}

			query, args, err := buildSelectCustomersQuery(db.builder(), tt.where)
			require.NoError(t, err)

			assert.True(t, strings.HasPrefix(query, "SELECT "+strings.Join(customerColumns, ", ")+" FROM customers"))
			assert.True(t, strings.HasSuffix(query, "ORDER BY id"))
			if tt.wantWhere != "" {
				assert.Contains(t, query, tt.wantWhere)
			} else {
				assert.NotContains(t, query, "WHERE")
			}
			assert.Equal(t, tt.wantArgs, args)
		})
	}
}

func Test_buildInsertCustomerQuery_OmitsID(t *testing.T) {
	customer := models.Customer{ID: 99, FirstName: "Jane", LastName: "Doe", City: "Oslo"}

	query, args, err := buildInsertCustomerQuery((&DB{dialect: DialectPostgres}).builder(), customer)
	require.NoError(t, err)

	assert.Equal(t,
		"INSERT INTO customers (first_name,last_name,email,phone,city) VALUES ($1,$2,$3,$4,$5) "+returningCustomer,
		query)
	assert.Equal(t, []any{"Jane", "Doe", "", "", "Oslo"}, args)
}

func Test_buildUpsertCustomerQuery(t *testing.T) {
	customer := models.Customer{ID: 5, FirstName: "John", LastName: "Smith", Email: "js@example.com"}

	query, args, err := buildUpsertCustomerQuery((&DB{dialect: DialectSQLite}).builder(), customer)
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(query, "INSERT INTO customers (id,first_name,last_name,email,phone,city) VALUES (?,?,?,?,?,?)"))
	assert.Contains(t, query, "ON CONFLICT (id) DO UPDATE SET")
	assert.Contains(t, query, "updated_at = CURRENT_TIMESTAMP")
	assert.True(t, strings.HasSuffix(query, returningCustomer))
	assert.Equal(t, []any{int64(5), "John", "Smith", "js@example.com", "", ""}, args)
}

func Test_buildDeleteCustomerQuery(t *testing.T) {
	query, args, err := buildDeleteCustomerQuery((&DB{dialect: DialectPostgres}).builder(), 12)
	require.NoError(t, err)

	assert.Equal(t, "DELETE FROM customers WHERE id = $1", query)
	assert.Equal(t, []any{int64(12)}, args)
}
