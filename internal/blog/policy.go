package blog

import "strings"

// RequireActor denies anonymous and deactivated actors.
func RequireActor(actor *Member) error {
	if actor == nil {
		return deny(ErrUnauthenticated, "authentication required")
	}

	if !actor.IsActive {
		return deny(ErrForbidden, "member is deactivated")
	}

	return nil
}

func CanCreateArticle(actor *Member) error {
	return RequireActor(actor)
}

// CanEditArticle covers title, content, category and tag changes: writer only.
func CanEditArticle(actor *Member, article Article) error {
	if err := RequireActor(actor); err != nil {
		return err
	}

	if actor.ID != article.WriterID {
		return deny(ErrForbidden, "only the writer may change the article")
	}

	return nil
}

// CanFlagArticle allows the writer and anyone who moderates the writer's tier.
func CanFlagArticle(actor *Member, article Article, writer Member) error {
	if err := RequireActor(actor); err != nil {
		return err
	}

	if actor.ID == article.WriterID || actor.Role.Moderates(writer.Role) {
		return nil
	}

	return deny(ErrForbidden, "not allowed to flag this article")
}

// CanRemoveArticle requires a flagged article and a moderator of the writer's tier.
// Writing the article grants nothing here.
func CanRemoveArticle(actor *Member, article Article, writer Member) error {
	if err := RequireActor(actor); err != nil {
		return err
	}

	if !article.IsDeleted {
		return deny(ErrForbidden, "article must be flagged for deletion first")
	}

	if !actor.Role.Moderates(writer.Role) {
		return deny(ErrForbidden, "not allowed to delete this article")
	}

	return nil
}

// CheckArticleUpdate rejects structurally contradictory article updates.
func CheckArticleUpdate(update ArticleUpdate) error {
	if update.IsDeleted == nil {
		return nil
	}

	if update.Title != nil || update.Content != nil {
		return deny(ErrInvalidRequest, "is_deleted cannot be combined with other fields")
	}

	if !*update.IsDeleted {
		return deny(ErrInvalidRequest, "a flagged article cannot be restored")
	}

	return nil
}

// CanManageTaxonomy covers creating and deleting tags and categories.
func CanManageTaxonomy(actor *Member) error {
	return RequireActor(actor)
}

func CanCreateMemberComment(actor *Member, input CommentInput) error {
	if err := RequireActor(actor); err != nil {
		return err
	}

	if input.CommenterName != nil {
		return deny(ErrInvalidRequest, "member comments cannot carry a commenter name")
	}

	return nil
}

func CanCreateVisitorComment(input CommentInput) error {
	if input.CommenterName == nil || strings.TrimSpace(*input.CommenterName) == "" {
		return deny(ErrInvalidRequest, "visitor comments require a commenter name")
	}

	return nil
}

// CanEditComment allows only the member author; visitor comments are never editable.
func CanEditComment(actor *Member, comment Comment) error {
	if err := RequireActor(actor); err != nil {
		return err
	}

	if comment.MemberID == nil || *comment.MemberID != actor.ID {
		return deny(ErrForbidden, "only the author may edit the comment")
	}

	return nil
}

// CanRemoveComment allows the article writer and the member author.
func CanRemoveComment(actor *Member, comment Comment, article Article) error {
	if err := RequireActor(actor); err != nil {
		return err
	}

	if actor.ID == article.WriterID || (comment.MemberID != nil && *comment.MemberID == actor.ID) {
		return nil
	}

	return deny(ErrForbidden, "not allowed to delete this comment")
}

func CanCreateMember(actor *Member, role Role) error {
	if err := RequireActor(actor); err != nil {
		return err
	}

	return canGrant(actor, role)
}

// CanUpdateMember lets members edit their own profile but not their own access;
// changes to others follow the tier gate of member creation.
func CanUpdateMember(actor *Member, target Member, update MemberUpdate) error {
	if err := RequireActor(actor); err != nil {
		return err
	}

	if actor.ID == target.ID {
		if update.changesAccess(target) {
			return deny(ErrForbidden, "members cannot change their own role or activity")
		}
		return nil
	}

	if !actor.Role.Moderates(target.Role) {
		return deny(ErrForbidden, "not allowed to update this member")
	}

	if update.Role != nil {
		return canGrant(actor, *update.Role)
	}

	return nil
}

func canGrant(actor *Member, role Role) error {
	switch {
	case !role.Valid():
		return deny(ErrInvalidRequest, "unknown role")
	case role == RoleOwner:
		return deny(ErrForbidden, "the owner role cannot be granted")
	case !actor.Role.Moderates(role):
		return deny(ErrForbidden, "not allowed to grant role "+role.String())
	}

	return nil
}
