package blog

import (
	"context"
	"fmt"

	"github.com/daniilsolovey/blog-portal/internal/db"
)

// MaxPasswordBytes is the longest password bcrypt accepts.
const MaxPasswordBytes = 72

func (m *Manager) hashPassword(password string) (string, error) {
	if len(password) > MaxPasswordBytes {
		return "", deny(ErrInvalidRequest, fmt.Sprintf("password exceeds %d bytes", MaxPasswordBytes))
	}

	digest, err := m.hasher.Hash(password)
	if err != nil {
		return "", fmt.Errorf("hash password: %w: %w", ErrStorage, err)
	}

	return digest, nil
}

// Bootstrap seeds the owner account unless one exists. It runs once after migrations.
func (m *Manager) Bootstrap(ctx context.Context, owner OwnerConfig) error {
	if owner.Name == "" || owner.Password == "" {
		return deny(ErrInvalidRequest, "owner name and password are required")
	}

	digest, err := m.hashPassword(owner.Password)
	if err != nil {
		return err
	}

	return m.repo.RunInTx(ctx, func(tx Repo) error {
		seeded, err := tx.SeedOwner(ctx, &db.Member{
			Name:           owner.Name,
			HashedPassword: digest,
			IsActive:       true,
		})
		if err != nil {
			return storageErr("seed owner", err)
		}

		if seeded {
			m.logger.InfoContext(ctx, "owner account created", "name", owner.Name)
		}

		return nil
	})
}

// Authenticate checks credentials. Unknown names and wrong passwords fail alike;
// a deactivated member with the right password is Forbidden.
func (m *Manager) Authenticate(ctx context.Context, name, password string) (*Member, error) {
	dbMember, err := m.repo.MemberByName(ctx, name)
	if err != nil {
		return nil, storageErr("get member", err)
	}

	if dbMember == nil || !m.hasher.Verify(password, dbMember.HashedPassword) {
		return nil, deny(ErrUnauthenticated, "incorrect name or password")
	}

	if !dbMember.IsActive {
		return nil, deny(ErrForbidden, "member is deactivated")
	}

	member := NewMember(dbMember)
	return &member, nil
}

// ResolveActor returns the member a verified token names.
func (m *Manager) ResolveActor(ctx context.Context, name string) (*Member, error) {
	member, err := m.MemberByName(ctx, name)
	if err != nil {
		return nil, err
	} else if member == nil {
		return nil, deny(ErrUnauthenticated, "unknown member")
	}

	return member, nil
}

func (m *Manager) Member(ctx context.Context, id int) (*Member, error) {
	dbMember, err := m.repo.MemberByID(ctx, id)
	if err != nil {
		return nil, storageErr("get member", err)
	} else if dbMember == nil {
		return nil, nil
	}

	member := NewMember(dbMember)
	return &member, nil
}

func (m *Manager) MemberByName(ctx context.Context, name string) (*Member, error) {
	dbMember, err := m.repo.MemberByName(ctx, name)
	if err != nil {
		return nil, storageErr("get member", err)
	} else if dbMember == nil {
		return nil, nil
	}

	member := NewMember(dbMember)
	return &member, nil
}

func (m *Manager) Members(ctx context.Context, search db.MemberSearch) ([]Member, error) {
	search.Limit = pageSize(search.Limit)

	list, err := m.repo.Members(ctx, search)
	if err != nil {
		return nil, storageErr("list members", err)
	}

	return Map(list, NewMember), nil
}

func (m *Manager) CreateMember(ctx context.Context, actor *Member, input MemberInput) (*Member, error) {
	if err := CanCreateMember(actor, input.Role); err != nil {
		return nil, err
	}

	digest, err := m.hashPassword(input.Password)
	if err != nil {
		return nil, err
	}

	var created *db.Member
	err = m.repo.RunInTx(ctx, func(tx Repo) error {
		created, err = tx.AddMember(ctx, &db.Member{
			Name:           input.Name,
			HashedPassword: digest,
			Role:           int(input.Role),
			IsActive:       true,
		})
		if err != nil {
			return storageErr("add member", err)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	member := NewMember(created)
	return &member, nil
}

// UpdateMember applies a partial update. The password is re-hashed only when given.
func (m *Manager) UpdateMember(ctx context.Context, actor *Member, id int, update MemberUpdate) (*Member, error) {
	if err := RequireActor(actor); err != nil {
		return nil, err
	}

	var updated Member
	err := m.repo.RunInTx(ctx, func(tx Repo) error {
		target, err := tx.MemberByID(ctx, id)
		if err != nil {
			return storageErr("get member", err)
		} else if target == nil {
			return notFound("member", id)
		}

		if err := CanUpdateMember(actor, NewMember(target), update); err != nil {
			return err
		}

		var columns []string
		if update.Name != nil {
			target.Name = *update.Name
			columns = append(columns, db.Columns.Member.Name)
		}

		if update.Password != nil {
			digest, err := m.hashPassword(*update.Password)
			if err != nil {
				return err
			}
			target.HashedPassword = digest
			columns = append(columns, db.Columns.Member.HashedPassword)
		}

		if update.Role != nil {
			target.Role = int(*update.Role)
			columns = append(columns, db.Columns.Member.Role)
		}

		if update.IsActive != nil {
			target.IsActive = *update.IsActive
			columns = append(columns, db.Columns.Member.IsActive)
		}

		updated = NewMember(target)
		if len(columns) == 0 {
			return nil
		}

		if err := tx.UpdateMember(ctx, target, columns...); err != nil {
			return storageErr("update member", err)
		}

		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("update member %d: %w", id, err)
	}

	return &updated, nil
}
