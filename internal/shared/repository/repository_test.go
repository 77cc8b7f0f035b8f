package repository

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testEntity struct {
	ID   uuid.UUID `db:"id"`
	Name string    `db:"name"`
}

func newTestBase() *Base[testEntity] {
	return NewBase[testEntity](nil, "widgets", []string{"id", "name", "status", "created_at", "updated_at"})
}

func TestInsertQuery(t *testing.T) {
	b := newTestBase()

	query, args, err := b.insertQuery(map[string]interface{}{
		"name":   "hero",
		"status": "pending",
	})
	require.NoError(t, err)

	// Keys are sorted, so placeholders are deterministic.
	assert.Equal(t,
		"INSERT INTO widgets (name, status) VALUES ($1, $2) RETURNING id, name, status, created_at, updated_at",
		query,
	)
	assert.Equal(t, []interface{}{"hero", "pending"}, args)
}

func TestInsertQueryRejectsUnknownColumn(t *testing.T) {
	b := newTestBase()

	_, _, err := b.insertQuery(map[string]interface{}{"nope; DROP TABLE widgets": 1})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalid)
}

func TestInsertQueryRejectsEmptyFields(t *testing.T) {
	b := newTestBase()

	_, _, err := b.insertQuery(map[string]interface{}{})
	assert.ErrorIs(t, err, ErrInvalid)
}

func TestUpdateQueryStampsUpdatedAt(t *testing.T) {
	b := newTestBase()
	id := uuid.New()

	query, args, err := b.updateQuery(map[string]interface{}{"status": "approved"}, id)
	require.NoError(t, err)

	assert.Equal(t,
		"UPDATE widgets SET status = $1, updated_at = now() WHERE id = $2 RETURNING id, name, status, created_at, updated_at",
		query,
	)
	assert.Equal(t, []interface{}{"approved", id}, args)
}

func TestUpdateQueryExplicitUpdatedAtWins(t *testing.T) {
	b := newTestBase()

	query, _, err := b.updateQuery(map[string]interface{}{"updated_at": "2025-01-01"}, uuid.New())
	require.NoError(t, err)
	assert.NotContains(t, query, "now()")
}

func TestWhereClause(t *testing.T) {
	b := newTestBase()

	tests := []struct {
		name     string
		criteria []Criterion
		want     string
		wantArgs []interface{}
	}{
		{
			name:     "single equality",
			criteria: []Criterion{Eq("status", "pending")},
			want:     "status = $1",
			wantArgs: []interface{}{"pending"},
		},
		{
			name: "conjunction with operator triple",
			criteria: []Criterion{
				Eq("status", "published"),
				Where("name", "ILIKE", "%studio%"),
			},
			want:     "status = $1 AND name ILIKE $2",
			wantArgs: []interface{}{"published", "%studio%"},
		},
		{
			name: "blank operator defaults to equality",
			criteria: []Criterion{
				{Field: "name", Value: "hero"},
			},
			want:     "name = $1",
			wantArgs: []interface{}{"hero"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			where, args, err := b.whereClause(tt.criteria, 1)
			require.NoError(t, err)
			assert.Equal(t, tt.want, where)
			assert.Equal(t, tt.wantArgs, args)
		})
	}
}

func TestWhereClauseRejectsUnsupportedOperator(t *testing.T) {
	b := newTestBase()

	_, _, err := b.whereClause([]Criterion{Where("name", "OR 1=1 --", "x")}, 1)
	assert.ErrorIs(t, err, ErrInvalid)
}

func TestWhereClauseEmptyCriteria(t *testing.T) {
	b := newTestBase()

	where, args, err := b.whereClause(nil, 1)
	require.NoError(t, err)
	assert.Empty(t, where)
	assert.Nil(t, args)
}

func TestSelectClause(t *testing.T) {
	b := newTestBase()

	all, err := b.selectClause(nil)
	require.NoError(t, err)
	assert.Equal(t, "id, name, status, created_at, updated_at", all)

	projected, err := b.selectClause([]string{"id", "name"})
	require.NoError(t, err)
	assert.Equal(t, "id, name", projected)

	_, err = b.selectClause([]string{"password"})
	assert.ErrorIs(t, err, ErrInvalid)
}
