package pgsql

import (
	"context"
	"errors"
	"net/http"

	"github.com/SscSPs/household_ledger/internal/apperrors"
	"github.com/SscSPs/household_ledger/internal/core/domain"
	portsrepo "github.com/SscSPs/household_ledger/internal/core/ports/repositories"
	"github.com/SscSPs/household_ledger/internal/models"
	"github.com/SscSPs/household_ledger/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxWorkspaceRepository struct {
	BaseRepository
}

// newPgxWorkspaceRepository creates a new repository for workspace and membership data.
func newPgxWorkspaceRepository(pool *pgxpool.Pool) portsrepo.WorkspaceRepositoryFacade {
	return &PgxWorkspaceRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure PgxWorkspaceRepository implements portsrepo.WorkspaceRepositoryFacade
var _ portsrepo.WorkspaceRepositoryFacade = (*PgxWorkspaceRepository)(nil)

const workspaceSelectQuery = `
SELECT
	w.workspace_id, w.name, w.workspace_type, w.split_method, w.custom_split_config,
	w.monthly_target, w.monthly_budget,
	w.created_at, w.created_by, w.last_updated_at, w.last_updated_by, w.version
FROM workspaces w
`

const memberSelectQuery = `
SELECT m.workspace_id, m.user_id, m.user_name, m.role, m.joined_at
FROM workspace_members m
`

func (r *PgxWorkspaceRepository) getWorkspaces(ctx context.Context, filterQuery string, args ...any) ([]domain.Workspace, error) {
	rows, err := r.Pool.Query(ctx, workspaceSelectQuery+filterQuery, args...)
	if err != nil {
		return nil, apperrors.NewAppError(http.StatusInternalServerError, "failed to query workspaces", err)
	}
	modelWorkspaces, err := pgx.CollectRows(rows, pgx.RowToStructByName[models.Workspace])
	if err != nil {
		return nil, apperrors.NewAppError(http.StatusInternalServerError, "failed to collect workspace rows", err)
	}
	return mapping.ToDomainWorkspaceSlice(modelWorkspaces), nil
}

func (r *PgxWorkspaceRepository) getMembers(ctx context.Context, filterQuery string, args ...any) ([]domain.Member, error) {
	rows, err := r.Pool.Query(ctx, memberSelectQuery+filterQuery, args...)
	if err != nil {
		return nil, apperrors.NewAppError(http.StatusInternalServerError, "failed to query workspace members", err)
	}
	modelMembers, err := pgx.CollectRows(rows, pgx.RowToStructByName[models.WorkspaceMember])
	if err != nil {
		return nil, apperrors.NewAppError(http.StatusInternalServerError, "failed to collect member rows", err)
	}
	return mapping.ToDomainMemberSlice(modelMembers), nil
}

// SaveWorkspace inserts the workspace and its owner membership in one transaction.
func (r *PgxWorkspaceRepository) SaveWorkspace(ctx context.Context, workspace domain.Workspace, owner domain.Member) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	m := mapping.ToModelWorkspace(workspace)
	query := `
		INSERT INTO workspaces (
			workspace_id, name, workspace_type, split_method, custom_split_config,
			monthly_target, monthly_budget,
			created_at, created_by, last_updated_at, last_updated_by, version
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12);
	`
	_, err = tx.Exec(ctx, query,
		m.WorkspaceID,
		m.Name,
		m.WorkspaceType,
		m.SplitMethod,
		m.CustomSplitConfig,
		m.MonthlyTarget,
		m.MonthlyBudget,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
		1,
	)
	if err != nil {
		if pgErrorCode(err) == pgUniqueViolation {
			return apperrors.NewConflictError("workspace ID " + workspace.WorkspaceID + " already exists")
		}
		return apperrors.NewAppError(http.StatusInternalServerError, "failed to save workspace "+workspace.WorkspaceID, err)
	}

	if err := insertMember(ctx, tx, owner); err != nil {
		return err
	}
	return r.Commit(ctx, tx)
}

func insertMember(ctx context.Context, tx pgx.Tx, member domain.Member) error {
	m := mapping.ToModelMember(member)
	query := `
		INSERT INTO workspace_members (workspace_id, user_id, user_name, role, joined_at)
		VALUES ($1, $2, $3, $4, $5);
	`
	if _, err := tx.Exec(ctx, query, m.WorkspaceID, m.UserID, m.UserName, m.Role, m.JoinedAt); err != nil {
		return apperrors.NewAppError(http.StatusInternalServerError, "failed to add owner "+member.UserID+" to workspace "+member.WorkspaceID, err)
	}
	return nil
}

func (r *PgxWorkspaceRepository) FindWorkspaceByID(ctx context.Context, workspaceID string) (*domain.Workspace, error) {
	workspaces, err := r.getWorkspaces(ctx, `WHERE w.workspace_id = $1`, workspaceID)
	if err != nil {
		return nil, err
	}
	if len(workspaces) == 0 {
		return nil, apperrors.NewNotFoundError("workspace " + workspaceID + " not found")
	}
	return &workspaces[0], nil
}

// ListWorkspacesByUserID lists the workspaces where the user holds a current membership.
func (r *PgxWorkspaceRepository) ListWorkspacesByUserID(ctx context.Context, userID string) ([]domain.Workspace, error) {
	query := `
		JOIN workspace_members m ON w.workspace_id = m.workspace_id
		WHERE m.user_id = $1 AND m.role <> $2
		ORDER BY w.name;
	`
	return r.getWorkspaces(ctx, query, userID, string(domain.RoleRemoved))
}

// UpdateWorkspace writes the settings of a workspace, guarded by its version.
func (r *PgxWorkspaceRepository) UpdateWorkspace(ctx context.Context, workspace domain.Workspace) error {
	m := mapping.ToModelWorkspace(workspace)
	query := `
		UPDATE workspaces
		SET name = $1, split_method = $2, custom_split_config = $3,
			monthly_target = $4, monthly_budget = $5,
			last_updated_at = $6, last_updated_by = $7, version = version + 1
		WHERE workspace_id = $8 AND version = $9;
	`
	result, err := r.Pool.Exec(ctx, query,
		m.Name,
		m.SplitMethod,
		m.CustomSplitConfig,
		m.MonthlyTarget,
		m.MonthlyBudget,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
		m.WorkspaceID,
		m.Version,
	)
	if err != nil {
		return apperrors.NewAppError(http.StatusInternalServerError, "failed to update workspace "+workspace.WorkspaceID, err)
	}
	if result.RowsAffected() == 0 {
		return apperrors.NewNotFoundError("workspace " + workspace.WorkspaceID + " not found or version mismatch")
	}
	return nil
}

// AddMember inserts a membership or reactivates a removed one.
func (r *PgxWorkspaceRepository) AddMember(ctx context.Context, member domain.Member) error {
	m := mapping.ToModelMember(member)
	query := `
		INSERT INTO workspace_members (workspace_id, user_id, user_name, role, joined_at)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (workspace_id, user_id) DO UPDATE
		SET role = EXCLUDED.role, user_name = EXCLUDED.user_name, joined_at = EXCLUDED.joined_at;
	`
	_, err := r.Pool.Exec(ctx, query, m.WorkspaceID, m.UserID, m.UserName, m.Role, m.JoinedAt)
	if err != nil {
		if pgErrorCode(err) == pgForeignKeyViolation {
			return apperrors.NewNotFoundError("workspace " + member.WorkspaceID + " not found")
		}
		return apperrors.NewAppError(http.StatusInternalServerError, "failed to add user "+member.UserID+" to workspace "+member.WorkspaceID, err)
	}
	return nil
}

func (r *PgxWorkspaceRepository) FindMember(ctx context.Context, workspaceID, userID string) (*domain.Member, error) {
	query := `
		SELECT workspace_id, user_id, user_name, role, joined_at
		FROM workspace_members
		WHERE workspace_id = $1 AND user_id = $2;
	`
	var m models.WorkspaceMember
	err := r.Pool.QueryRow(ctx, query, workspaceID, userID).Scan(
		&m.WorkspaceID,
		&m.UserID,
		&m.UserName,
		&m.Role,
		&m.JoinedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFoundError("membership not found")
		}
		return nil, apperrors.NewAppError(http.StatusInternalServerError, "failed to find user "+userID+" in workspace "+workspaceID, err)
	}
	member := mapping.ToDomainMember(m)
	return &member, nil
}

// ListMembers returns all memberships of a workspace, removed ones included, oldest first.
func (r *PgxWorkspaceRepository) ListMembers(ctx context.Context, workspaceID string) ([]domain.Member, error) {
	return r.getMembers(ctx, `WHERE m.workspace_id = $1 ORDER BY m.joined_at, m.user_id;`, workspaceID)
}

func (r *PgxWorkspaceRepository) UpdateMemberRole(ctx context.Context, workspaceID, userID string, role domain.MemberRole) error {
	query := `UPDATE workspace_members SET role = $1 WHERE workspace_id = $2 AND user_id = $3;`
	result, err := r.Pool.Exec(ctx, query, string(role), workspaceID, userID)
	if err != nil {
		return apperrors.NewAppError(http.StatusInternalServerError, "failed to update role of user "+userID+" in workspace "+workspaceID, err)
	}
	if result.RowsAffected() == 0 {
		return apperrors.NewNotFoundError("membership not found")
	}
	return nil
}
