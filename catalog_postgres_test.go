package main

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/require"
)

func TestPostgresTableColumns(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	rows := sqlmock.NewRows([]string{"column_name", "data_type", "nullable", "ordinal_position", "column_default"}).
		AddRow("id", "integer", false, 1, "nextval('profiles_id_seq'::regclass)").
		AddRow("bio", "text", true, 2, nil)
	mock.ExpectQuery("FROM information_schema.columns").
		WithArgs("public", "profiles").
		WillReturnRows(rows)

	src := &postgresCatalog{}
	cols, err := src.TableColumns(context.Background(), db, "public", "profiles")
	require.NoError(t, err)
	require.Len(t, cols, 2)

	require.Equal(t, "id", cols[0].Name)
	require.Equal(t, "integer", cols[0].DataType)
	require.False(t, cols[0].Nullable)
	require.Equal(t, 1, cols[0].OrdinalPos)
	require.NotNil(t, cols[0].Default)

	require.Equal(t, "bio", cols[1].Name)
	require.True(t, cols[1].Nullable)
	require.Equal(t, 2, cols[1].OrdinalPos)
	require.Nil(t, cols[1].Default)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresTableColumnsMissingTable(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery("FROM information_schema.columns").
		WithArgs("public", "missing").
		WillReturnRows(sqlmock.NewRows([]string{"column_name", "data_type", "nullable", "ordinal_position", "column_default"}))

	src := &postgresCatalog{}
	cols, err := src.TableColumns(context.Background(), db, "public", "missing")
	require.NoError(t, err)
	require.Empty(t, cols, "missing table reports zero rows; the builder turns that into TableNotFoundError")

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresListTables(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery("FROM information_schema.tables").
		WithArgs("public").
		WillReturnRows(sqlmock.NewRows([]string{"table_name"}).AddRow("profiles").AddRow("users"))

	src := &postgresCatalog{}
	tables, err := src.ListTables(context.Background(), db, "public", false)
	require.NoError(t, err)
	require.Equal(t, []string{"profiles", "users"}, tables)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresListTablesWithViews(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery("FROM information_schema.tables").
		WithArgs("public").
		WillReturnRows(sqlmock.NewRows([]string{"table_name"}).AddRow("profiles"))
	mock.ExpectQuery("FROM information_schema.views").
		WithArgs("public").
		WillReturnRows(sqlmock.NewRows([]string{"table_name"}).AddRow("active_profiles"))

	src := &postgresCatalog{}
	tables, err := src.ListTables(context.Background(), db, "public", true)
	require.NoError(t, err)
	require.Equal(t, []string{"profiles", "active_profiles"}, tables)

	require.NoError(t, mock.ExpectationsWereMet())
}
