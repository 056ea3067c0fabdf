package db

import (
	"context"
	"errors"
	"fmt"

	"github.com/go-pg/pg/v10"
)

// RoleOwner mirrors blog.RoleOwner; the schema keeps a partial unique index on it.
const RoleOwner = 2

func (r *Repository) MemberByID(ctx context.Context, id int) (*Member, error) {
	member := &Member{}
	err := r.db.ModelContext(ctx, member).
		Where(`"t"."id" = ?`, id).
		Select()

	if ok, err := selectOne(err, "get member by id"); !ok {
		return nil, err
	}

	return member, nil
}

func (r *Repository) MemberByName(ctx context.Context, name string) (*Member, error) {
	member := &Member{}
	err := r.db.ModelContext(ctx, member).
		Where(`"t"."name" = ?`, name).
		Select()

	if ok, err := selectOne(err, "get member by name"); !ok {
		return nil, err
	}

	return member, nil
}

func (r *Repository) Members(ctx context.Context, search MemberSearch) ([]Member, error) {
	members := []Member{}
	query := r.db.ModelContext(ctx, &members)
	query = search.apply(query)

	err := query.
		OrderExpr(`"t"."id" ASC`).
		Select()

	if err != nil {
		return nil, fmt.Errorf("failed to query members: %w", err)
	}

	return members, nil
}

func (r *Repository) AddMember(ctx context.Context, member *Member) (*Member, error) {
	if _, err := r.db.ModelContext(ctx, member).Insert(); err != nil {
		return nil, writeErr("insert member", err)
	}

	return member, nil
}

// UpdateMember writes the given columns of member; all columns when none are given.
func (r *Repository) UpdateMember(ctx context.Context, member *Member, columns ...string) error {
	query := r.db.ModelContext(ctx, member).WherePK()
	if len(columns) > 0 {
		query = query.Column(columns...)
	}

	if _, err := query.Update(); err != nil {
		return writeErr("update member", err)
	}

	return nil
}

// SeedOwner inserts member as the owner unless an owner already exists.
// It reports whether a row was written.
func (r *Repository) SeedOwner(ctx context.Context, member *Member) (bool, error) {
	exists, err := r.db.ModelContext(ctx, (*Member)(nil)).
		Where(`"t"."role" = ?`, RoleOwner).
		Exists()
	if err != nil {
		return false, fmt.Errorf("failed to check owner: %w", err)
	}

	if exists {
		return false, nil
	}

	member.Role = RoleOwner
	res, err := r.db.ModelContext(ctx, member).
		OnConflict("DO NOTHING").
		Insert()

	if errors.Is(err, pg.ErrNoRows) {
		return false, nil
	} else if err != nil {
		return false, writeErr("insert owner", err)
	}

	return res.RowsAffected() > 0, nil
}
