package blog

import (
	"testing"

	"github.com/daniilsolovey/blog-portal/internal/db"
	"github.com/stretchr/testify/assert"
)

func TestRole_Moderates(t *testing.T) {
	tests := []struct {
		actor, target Role
		want          bool
	}{
		{RoleOwner, RoleOwner, true},
		{RoleOwner, RoleManager, true},
		{RoleOwner, RoleMember, true},
		{RoleManager, RoleOwner, false},
		{RoleManager, RoleManager, false},
		{RoleManager, RoleMember, true},
		{RoleMember, RoleOwner, false},
		{RoleMember, RoleManager, false},
		{RoleMember, RoleMember, false},
	}

	for _, tt := range tests {
		t.Run(tt.actor.String()+"Over"+tt.target.String(), func(t *testing.T) {
			assert.Equal(t, tt.want, tt.actor.Moderates(tt.target))
		})
	}
}

func TestRole_Text(t *testing.T) {
	for _, role := range []Role{RoleMember, RoleManager, RoleOwner} {
		text, err := role.MarshalText()
		assert.NoError(t, err)

		var parsed Role
		assert.NoError(t, parsed.UnmarshalText(text))
		assert.Equal(t, role, parsed)
	}

	_, err := ParseRole("Creator")
	assert.ErrorIs(t, err, ErrInvalidRequest)

	_, err = Role(7).MarshalText()
	assert.Error(t, err)
}

func actorOf(id int, role Role) *Member {
	return &Member{ID: id, Name: role.String(), Role: role, IsActive: true}
}

func articleBy(writerID int, flagged bool) Article {
	return Article{Article: db.Article{ID: 100, WriterID: writerID, IsDeleted: flagged}}
}

func TestCanFlagAndRemoveArticle(t *testing.T) {
	owner, manager, member, otherManager, otherMember :=
		actorOf(1, RoleOwner), actorOf(2, RoleManager), actorOf(3, RoleMember), actorOf(4, RoleManager), actorOf(5, RoleMember)

	tests := []struct {
		name       string
		actor      *Member
		writer     *Member
		wantFlag   error
		wantRemove error
	}{
		{name: "NoActor", actor: nil, writer: member, wantFlag: ErrUnauthenticated, wantRemove: ErrUnauthenticated},
		{name: "OwnerOnOwnArticle", actor: owner, writer: owner},
		{name: "OwnerOnManagerArticle", actor: owner, writer: manager},
		{name: "OwnerOnMemberArticle", actor: owner, writer: member},
		{name: "ManagerOnOwnArticle", actor: manager, writer: manager, wantRemove: ErrForbidden},
		{name: "ManagerOnOtherManagerArticle", actor: manager, writer: otherManager, wantFlag: ErrForbidden, wantRemove: ErrForbidden},
		{name: "ManagerOnOwnerArticle", actor: manager, writer: owner, wantFlag: ErrForbidden, wantRemove: ErrForbidden},
		{name: "ManagerOnMemberArticle", actor: manager, writer: member},
		{name: "MemberOnOwnArticle", actor: member, writer: member, wantRemove: ErrForbidden},
		{name: "MemberOnOtherMemberArticle", actor: member, writer: otherMember, wantFlag: ErrForbidden, wantRemove: ErrForbidden},
		{name: "MemberOnManagerArticle", actor: member, writer: manager, wantFlag: ErrForbidden, wantRemove: ErrForbidden},
		{name: "Deactivated", actor: &Member{ID: 9, Role: RoleOwner}, writer: member, wantFlag: ErrForbidden, wantRemove: ErrForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := CanFlagArticle(tt.actor, articleBy(tt.writer.ID, false), *tt.writer)
			assertKind(t, tt.wantFlag, err)

			err = CanRemoveArticle(tt.actor, articleBy(tt.writer.ID, true), *tt.writer)
			assertKind(t, tt.wantRemove, err)
		})
	}

	t.Run("RemoveRequiresFlag", func(t *testing.T) {
		err := CanRemoveArticle(owner, articleBy(member.ID, false), *member)
		assert.ErrorIs(t, err, ErrForbidden)
	})
}

func TestCheckArticleUpdate(t *testing.T) {
	tests := []struct {
		name   string
		update ArticleUpdate
		want   error
	}{
		{name: "Edit", update: ArticleUpdate{Title: ptr("t"), Content: ptr("c")}},
		{name: "Flag", update: ArticleUpdate{IsDeleted: ptr(true)}},
		{name: "FlagWithTitle", update: ArticleUpdate{Title: ptr("t"), IsDeleted: ptr(true)}, want: ErrInvalidRequest},
		{name: "FlagWithContent", update: ArticleUpdate{Content: ptr("c"), IsDeleted: ptr(true)}, want: ErrInvalidRequest},
		{name: "Unflag", update: ArticleUpdate{IsDeleted: ptr(false)}, want: ErrInvalidRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assertKind(t, tt.want, CheckArticleUpdate(tt.update))
		})
	}
}

func TestCommentPolicies(t *testing.T) {
	writer, author, stranger := actorOf(1, RoleMember), actorOf(2, RoleMember), actorOf(3, RoleOwner)
	article := articleBy(writer.ID, false)
	memberComment := Comment{Comment: db.Comment{MemberID: &author.ID}}
	visitorComment := Comment{Comment: db.Comment{CommenterName: ptr("guest")}}

	assert.NoError(t, CanCreateMemberComment(author, CommentInput{Content: "hi"}))
	assert.ErrorIs(t, CanCreateMemberComment(author, CommentInput{Content: "hi", CommenterName: ptr("guest")}), ErrInvalidRequest)
	assert.ErrorIs(t, CanCreateMemberComment(nil, CommentInput{Content: "hi"}), ErrUnauthenticated)
	assert.NoError(t, CanCreateVisitorComment(CommentInput{Content: "hi", CommenterName: ptr("guest")}))
	assert.ErrorIs(t, CanCreateVisitorComment(CommentInput{Content: "hi"}), ErrInvalidRequest)
	assert.ErrorIs(t, CanCreateVisitorComment(CommentInput{Content: "hi", CommenterName: ptr("  ")}), ErrInvalidRequest)

	assert.NoError(t, CanEditComment(author, memberComment))
	assert.ErrorIs(t, CanEditComment(writer, memberComment), ErrForbidden)
	assert.ErrorIs(t, CanEditComment(stranger, visitorComment), ErrForbidden)

	assert.NoError(t, CanRemoveComment(author, memberComment, article))
	assert.NoError(t, CanRemoveComment(writer, memberComment, article))
	assert.NoError(t, CanRemoveComment(writer, visitorComment, article))
	assert.ErrorIs(t, CanRemoveComment(author, visitorComment, article), ErrForbidden)
	assert.ErrorIs(t, CanRemoveComment(stranger, memberComment, article), ErrForbidden)
	assert.ErrorIs(t, CanRemoveComment(nil, memberComment, article), ErrUnauthenticated)
}

func TestCanCreateMember(t *testing.T) {
	tests := []struct {
		actor *Member
		role  Role
		want  error
	}{
		{actorOf(1, RoleOwner), RoleOwner, ErrForbidden},
		{actorOf(1, RoleOwner), RoleManager, nil},
		{actorOf(1, RoleOwner), RoleMember, nil},
		{actorOf(2, RoleManager), RoleOwner, ErrForbidden},
		{actorOf(2, RoleManager), RoleManager, ErrForbidden},
		{actorOf(2, RoleManager), RoleMember, nil},
		{actorOf(3, RoleMember), RoleMember, ErrForbidden},
		{actorOf(1, RoleOwner), Role(9), ErrInvalidRequest},
		{nil, RoleMember, ErrUnauthenticated},
	}

	for _, tt := range tests {
		name := "Anonymous"
		if tt.actor != nil {
			name = tt.actor.Role.String()
		}
		t.Run(name+"Creates"+tt.role.String(), func(t *testing.T) {
			assertKind(t, tt.want, CanCreateMember(tt.actor, tt.role))
		})
	}
}

func TestCanUpdateMember(t *testing.T) {
	owner, manager, member, other := actorOf(1, RoleOwner), actorOf(2, RoleManager), actorOf(3, RoleMember), actorOf(4, RoleMember)

	tests := []struct {
		name   string
		actor  *Member
		target *Member
		update MemberUpdate
		want   error
	}{
		{name: "SelfProfile", actor: member, target: member, update: MemberUpdate{Name: ptr("x"), Password: ptr("y")}},
		{name: "SelfSameRole", actor: member, target: member, update: MemberUpdate{Role: ptr(RoleMember)}},
		{name: "SelfPromote", actor: manager, target: manager, update: MemberUpdate{Role: ptr(RoleOwner)}, want: ErrForbidden},
		{name: "SelfDeactivate", actor: owner, target: owner, update: MemberUpdate{IsActive: ptr(false)}, want: ErrForbidden},
		{name: "OwnerPromotesToManager", actor: owner, target: member, update: MemberUpdate{Role: ptr(RoleManager)}},
		{name: "OwnerGrantsOwner", actor: owner, target: manager, update: MemberUpdate{Role: ptr(RoleOwner)}, want: ErrForbidden},
		{name: "ManagerDeactivatesMember", actor: manager, target: member, update: MemberUpdate{IsActive: ptr(false)}},
		{name: "ManagerPromotesMember", actor: manager, target: member, update: MemberUpdate{Role: ptr(RoleManager)}, want: ErrForbidden},
		{name: "ManagerUpdatesOwner", actor: manager, target: owner, update: MemberUpdate{Name: ptr("x")}, want: ErrForbidden},
		{name: "MemberUpdatesOther", actor: member, target: other, update: MemberUpdate{Name: ptr("x")}, want: ErrForbidden},
		{name: "Anonymous", actor: nil, target: member, update: MemberUpdate{Name: ptr("x")}, want: ErrUnauthenticated},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assertKind(t, tt.want, CanUpdateMember(tt.actor, *tt.target, tt.update))
		})
	}
}

func TestCanEditArticle(t *testing.T) {
	writer, owner := actorOf(1, RoleMember), actorOf(2, RoleOwner)

	assert.NoError(t, CanEditArticle(writer, articleBy(writer.ID, false)))
	assert.ErrorIs(t, CanEditArticle(owner, articleBy(writer.ID, false)), ErrForbidden)
	assert.ErrorIs(t, CanEditArticle(nil, articleBy(writer.ID, false)), ErrUnauthenticated)
	assert.ErrorIs(t, CanCreateArticle(&Member{ID: 5}), ErrForbidden)
	assert.ErrorIs(t, CanManageTaxonomy(nil), ErrUnauthenticated)
}

func assertKind(t *testing.T, want, err error) {
	t.Helper()
	if want == nil {
		assert.NoError(t, err)
		return
	}
	assert.ErrorIs(t, err, want)
}
