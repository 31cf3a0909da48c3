//go:build unit || e2e

package dbtest

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
)

// DBLike is satisfied by both *pgxpool.Pool and pgx.Tx so fixtures can run inside a test transaction.
type DBLike interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// DispatcherID is the supervisor seeded with the reference data.
var DispatcherID = uuid.MustParse("00000000-0000-4000-8000-000000000001")

type CrewMember struct {
	UserID uuid.UUID
	Role   string
}

func CreateTestUser(t *testing.T, db DBLike, username, role string) uuid.UUID {
	t.Helper()

	userID := uuid.New()
	ctx := context.Background()

	tag, err := db.Exec(ctx, "INSERT INTO users (id, username, full_name, role) VALUES ($1, $2, $3, $4) ON CONFLICT (username) DO NOTHING",
		userID, username, strings.ToUpper(username[:1])+username[1:], role)
	require.NoError(t, err)

	if tag.RowsAffected() == 0 {
		_ = db.QueryRow(ctx, "SELECT id FROM users WHERE username = $1", username).Scan(&userID)
	}

	return userID
}

// CreateTestAssignment inserts a SCHEDULED assignment with the given crew.
func CreateTestAssignment(t *testing.T, db DBLike, crew ...CrewMember) uuid.UUID {
	t.Helper()

	assignmentID := uuid.New()
	ctx := context.Background()

	_, err := db.Exec(ctx, "INSERT INTO assignments (id, unit_id, base_name, route_code) VALUES ($1, $2, 'Central', 'CA-1')",
		assignmentID, uuid.New())
	require.NoError(t, err)

	for _, m := range crew {
		_, err := db.Exec(ctx, "INSERT INTO assignment_crew (assignment_id, user_id, crew_role) VALUES ($1, $2, $3)",
			assignmentID, m.UserID, m.Role)
		require.NoError(t, err)
	}

	return assignmentID
}

func AssignmentStatus(t *testing.T, db DBLike, assignmentID uuid.UUID) string {
	t.Helper()

	var status string
	err := db.QueryRow(context.Background(), "SELECT status FROM assignments WHERE id = $1", assignmentID).Scan(&status)
	require.NoError(t, err)
	return status
}

func CountRows(t *testing.T, db DBLike, table, where string, args ...any) int {
	t.Helper()

	var n int
	query := "SELECT count(*) FROM " + table
	if where != "" {
		query += " WHERE " + where
	}
	err := db.QueryRow(context.Background(), query, args...).Scan(&n)
	require.NoError(t, err)
	return n
}

// inserts basic reference data needed by tests
func SeedReferenceData(pool *pgxpool.Pool) error {
	ctx := context.Background()

	_, err := pool.Exec(ctx, `
		INSERT INTO users (id, username, full_name, role) VALUES
		    ($1, 'dispatch', 'Central Dispatch', 'dispatcher')
		ON CONFLICT (username) DO NOTHING;
	`, DispatcherID)
	if err != nil {
		return err
	}

	return nil
}

var (
	buildTruncateOnce sync.Once
	truncateSQL       atomic.Value // string
)

// truncates all tables and reseeds reference data
func ResetDB(pool *pgxpool.Pool) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	buildTruncateOnce.Do(func() {
		rows, err := pool.Query(ctx, `
		  SELECT 'public.' || quote_ident(tablename)
		  FROM pg_tables
		  WHERE schemaname = 'public'
		    AND tablename NOT IN ('atlas_schema_revisions')`)
		if err != nil {
			truncateSQL.Store("")
			return
		}
		defer rows.Close()
		var tables []string
		for rows.Next() {
			var t string
			if err := rows.Scan(&t); err != nil {
				truncateSQL.Store("")
				return
			}
			tables = append(tables, t)
		}
		if rows.Err() != nil {
			truncateSQL.Store("")
			return
		}
		if len(tables) == 0 {
			truncateSQL.Store("SELECT 1")
			return
		}
		truncateSQL.Store("TRUNCATE " + strings.Join(tables, ", ") + " RESTART IDENTITY CASCADE;")
	})
	sqlAny := truncateSQL.Load()
	if sqlAny == nil || sqlAny.(string) == "" {
		return fmt.Errorf("failed to build TRUNCATE SQL")
	}
	if _, err := pool.Exec(ctx, sqlAny.(string)); err != nil {
		return err
	}

	return SeedReferenceData(pool)
}
